package service

const (
	GreetingMorning   = "Bom dia!"
	GreetingAfternoon = "Boa tarde!"
	GreetingEvening   = "Boa noite!"
)

// Greeting maps an hour of the day in [0,23] to its salutation.
func Greeting(hour int) string {
	switch {
	case hour < 12:
		return GreetingMorning
	case hour < 18:
		return GreetingAfternoon
	default:
		return GreetingEvening
	}
}
