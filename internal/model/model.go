// Package model holds the records persisted by the exercise tracker.
package model

import (
	"time"
)

// UsernameMaxLength is the longest username accepted at registration.
const UsernameMaxLength = 20

// Base carries the bookkeeping columns shared by every table.
type Base struct {
	ID        ID        `json:"id" db:"id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// User is created once at registration and never updated.
type User struct {
	Base
	Username string `json:"username" db:"username"`
}

// Exercise is one logged exercise. UserID is a soft reference checked before insert.
type Exercise struct {
	Base
	UserID      ID        `json:"userId" db:"user_id"`
	Description string    `json:"description" db:"description"`
	Duration    float64   `json:"duration" db:"duration"`
	Date        time.Time `json:"date" db:"date"`
}

// ExerciseDraft is an exercise as submitted, before it is checked and stored.
// Duration stays textual until validation has run. A nil Date means "now".
type ExerciseDraft struct {
	UserID      ID         `json:"-"`
	Description string     `json:"description" validate:"required"`
	Duration    string     `json:"duration" validate:"required"`
	Date        *time.Time `json:"-"`
}

// LogFilter selects a user's exercises. From and To are exclusive bounds;
// nil means unbounded. Limit <= 0 means no cap.
type LogFilter struct {
	UserID ID
	From   *time.Time
	To     *time.Time
	Limit  int
}

// Matches reports whether e satisfies every condition of f except Limit.
func (f LogFilter) Matches(e Exercise) bool {
	if e.UserID != f.UserID {
		return false
	}
	if f.From != nil && !e.Date.After(*f.From) {
		return false
	}
	if f.To != nil && !e.Date.Before(*f.To) {
		return false
	}
	return true
}
