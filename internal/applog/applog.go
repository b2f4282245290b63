// Package applog builds the JSON line logger shared by the request log and
// process-level events (startup, shutdown, tracing setup).
package applog

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// Logger writes one JSON object per line with ts, level and msg fields.
// Timestamps are rendered in the configured location.
type Logger struct {
	base *logrus.Logger
	loc  *time.Location
	now  func() time.Time
}

// New returns a Logger writing to w with timestamps in loc.
func New(w io.Writer, loc *time.Location) *Logger {
	if loc == nil {
		loc = time.Local
	}
	base := logrus.New()
	base.SetOutput(w)
	base.SetLevel(logrus.InfoLevel)
	base.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "ts",
		},
	})
	return &Logger{base: base, loc: loc, now: time.Now}
}

// Stdout returns a Logger writing to os.Stdout.
func Stdout(loc *time.Location) *Logger {
	return New(os.Stdout, loc)
}

// Location returns the timestamp location.
func (l *Logger) Location() *time.Location {
	return l.loc
}

func (l *Logger) Info(msg string, fields map[string]any) {
	l.entry(l.now(), fields).Info(msg)
}

func (l *Logger) Error(msg string, err error, fields map[string]any) {
	e := l.entry(l.now(), fields)
	if err != nil {
		e = e.WithError(err)
	}
	e.Error(msg)
}

// At logs an info event stamped with t instead of the current time.
func (l *Logger) At(t time.Time, msg string, fields map[string]any) {
	l.entry(t, fields).Info(msg)
}

func (l *Logger) entry(t time.Time, fields map[string]any) *logrus.Entry {
	return l.base.WithTime(t.In(l.loc)).WithFields(logrus.Fields(fields))
}
