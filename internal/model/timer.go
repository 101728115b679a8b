package model

import "time"

// Timer is a stored time record. A timer is active while End is nil.
type Timer struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	Description string     `json:"description"`
	Start       time.Time  `json:"start"`
	End         *time.Time `json:"end"`
	IsActive    bool       `json:"isActive"`
}

// TimerFilter narrows a timer listing. A nil Active returns every timer.
type TimerFilter struct {
	Active *bool
}

