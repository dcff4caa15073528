// Package mealslot maps wall-clock time onto the coarse meal buckets the
// matching engine filters by.
package mealslot

import "time"

type Slot string

const (
	Breakfast Slot = "breakfast"
	Lunch     Slot = "lunch"
	Dinner    Slot = "dinner"
)

// Priority orders slots within a day: breakfast before lunch before dinner.
// Unknown values sort last so malformed rows never hide valid ones.
func (s Slot) Priority() int {
	switch s {
	case Breakfast:
		return 1
	case Lunch:
		return 2
	case Dinner:
		return 3
	}
	return 4
}

func Valid(s string) bool {
	switch Slot(s) {
	case Breakfast, Lunch, Dinner:
		return true
	}
	return false
}

// Resolve returns the meal slot active at t and the logical requirement date
// it belongs to. Dinner runs from 16:00 until 05:59 the next morning; hours
// before 06:00 are attributed to the previous day's dinner, so the logical
// date is computed with calendar subtraction (a plain day-field decrement
// would break on the 1st of a month).
func Resolve(t time.Time) (Slot, time.Time) {
	h := t.Hour()
	switch {
	case h >= 6 && h < 11:
		return Breakfast, DateOf(t)
	case h >= 11 && h < 16:
		return Lunch, DateOf(t)
	case h < 6:
		return Dinner, DateOf(t.AddDate(0, 0, -1))
	}
	return Dinner, DateOf(t)
}

// DateOf truncates t to a calendar date at midnight UTC. All requirement
// dates are stored and compared in this normalized form.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
