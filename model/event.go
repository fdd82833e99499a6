package model

import (
	"time"
)

type Event struct {
	EventID      string    `firestore:"eventid,omitempty"`
	UserID       string    `firestore:"userid,omitempty"`
	Title        string    `firestore:"title,omitempty"`
	Description  string    `firestore:"description,omitempty"`
	StartDate    time.Time `firestore:"startdate,omitempty"` // calendar day, time-of-day ignored
	EndDate      time.Time `firestore:"enddate,omitempty"`
	StartTime    string    `firestore:"starttime,omitempty"` // "HH:MM", 24-hour
	EndTime      string    `firestore:"endtime,omitempty"`   // optional; empty means 1 hour assumed
	Type         string    `firestore:"type,omitempty"`
	Category     string    `firestore:"category,omitempty"`
	Priority     string    `firestore:"priority,omitempty"` // "low", "medium", "high"
	Color        string    `firestore:"color,omitempty"`
	Location     string    `firestore:"location,omitempty"`
	Participants string    `firestore:"participants,omitempty"`
	Reminder     string    `firestore:"reminder,omitempty"` // "none", "15min", "30min", "1hour", "2hours", "1day"
	Repeat       string    `firestore:"repeat,omitempty"`   // informational only, never expanded
	Notes        string    `firestore:"notes,omitempty"`
	CreatedAt    time.Time `firestore:"createdat,omitempty"`
	UpdatedAt    time.Time `firestore:"updatedat,omitempty"`
}
