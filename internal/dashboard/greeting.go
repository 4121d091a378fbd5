// Package dashboard assembles the composite spending overview.
package dashboard

import "time"

// Greeting texts, selected by hour of day.
const (
	greetingMorning   = "Доброе утро"
	greetingAfternoon = "Добрый день"
	greetingEvening   = "Добрый вечер"
	greetingNight     = "Доброй ночи"
)

// Greeting maps an hour of day to a greeting: [5,12) morning, [12,18)
// afternoon, [18,22) evening, everything else night.
func Greeting(t time.Time) string {
	hour := t.Hour()
	switch {
	case hour >= 5 && hour < 12:
		return greetingMorning
	case hour >= 12 && hour < 18:
		return greetingAfternoon
	case hour >= 18 && hour < 22:
		return greetingEvening
	default:
		return greetingNight
	}
}
