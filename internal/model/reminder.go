package model

import (
	"strings"
	"time"
)

const (
	ReminderLayout      = "2006-01-02 15:04"
	ReminderConstraints = "Reminders should be a date and time of the format YYYY-MM-DD HH:MM"
)

// Reminder is a point in time attached to a task.
type Reminder struct {
	at time.Time
}

func NewReminder(raw string) (Reminder, error) {
	at, err := time.ParseInLocation(ReminderLayout, strings.TrimSpace(raw), time.Local)
	if err != nil {
		return Reminder{}, newValidationError("reminder", raw, ReminderConstraints)
	}
	return Reminder{at: at}, nil
}

func (r Reminder) Time() time.Time { return r.at }

// Due reports whether the reminder time is at or before now.
func (r Reminder) Due(now time.Time) bool {
	return !r.at.After(now)
}

func (r Reminder) Equal(other Reminder) bool {
	return r.at.Equal(other.at)
}

func (r Reminder) String() string { return r.at.Format(ReminderLayout) }
