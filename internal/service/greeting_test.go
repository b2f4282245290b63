package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGreeting(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     string
	}{
		{name: "morning", from: 0, to: 11, want: GreetingMorning},
		{name: "afternoon", from: 12, to: 17, want: GreetingAfternoon},
		{name: "evening", from: 18, to: 23, want: GreetingEvening},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for h := tt.from; h <= tt.to; h++ {
				assert.Equal(t, tt.want, Greeting(h), "hour %d", h)
			}
		})
	}
}

func TestGreeting_Boundaries(t *testing.T) {
	assert.Equal(t, "Bom dia!", Greeting(11))
	assert.Equal(t, "Boa tarde!", Greeting(12))
	assert.Equal(t, "Boa tarde!", Greeting(17))
	assert.Equal(t, "Boa noite!", Greeting(18))
}
