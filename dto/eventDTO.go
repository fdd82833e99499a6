package dto

import (
	"time"

	"myday/calendar"
	"myday/model"
)

type CreateEventRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	StartDate    string `json:"startDate" binding:"required"`
	EndDate      string `json:"endDate"`
	StartTime    string `json:"startTime" binding:"required"`
	EndTime      string `json:"endTime"`
	Type         string `json:"type"`
	Category     string `json:"category"`
	Priority     string `json:"priority"`
	Color        string `json:"color"`
	Location     string `json:"location"`
	Participants string `json:"participants"`
	Reminder     string `json:"reminder"`
	Repeat       string `json:"repeat"`
	Notes        string `json:"notes"`
}

// UpdateEventRequest is an explicit patch: nil fields are untouched, set
// fields are validated and merged. Arbitrary partial objects are never
// spread into stored state.
type UpdateEventRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	StartDate    *string `json:"startDate"`
	EndDate      *string `json:"endDate"`
	StartTime    *string `json:"startTime"`
	EndTime      *string `json:"endTime"`
	Type         *string `json:"type"`
	Category     *string `json:"category"`
	Priority     *string `json:"priority"`
	Color        *string `json:"color"`
	Location     *string `json:"location"`
	Participants *string `json:"participants"`
	Reminder     *string `json:"reminder"`
	Repeat       *string `json:"repeat"`
	Notes        *string `json:"notes"`
}

// EventResponse is the wire shape of an event: dates as "YYYY-MM-DD", times
// as "HH:MM".
type EventResponse struct {
	EventID      string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	Type         string `json:"type"`
	Category     string `json:"category"`
	Priority     string `json:"priority"`
	Color        string `json:"color"`
	Location     string `json:"location,omitempty"`
	Participants string `json:"participants,omitempty"`
	Reminder     string `json:"reminder,omitempty"`
	Repeat       string `json:"repeat,omitempty"`
	Notes        string `json:"notes,omitempty"`
	UserID       string `json:"userId"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

func EventToResponse(e model.Event) EventResponse {
	return EventResponse{
		EventID:      e.EventID,
		Title:        e.Title,
		Description:  e.Description,
		StartDate:    calendar.FormatDate(e.StartDate),
		EndDate:      calendar.FormatDate(e.EndDate),
		StartTime:    e.StartTime,
		EndTime:      e.EndTime,
		Type:         e.Type,
		Category:     e.Category,
		Priority:     e.Priority,
		Color:        e.Color,
		Location:     e.Location,
		Participants: e.Participants,
		Reminder:     e.Reminder,
		Repeat:       e.Repeat,
		Notes:        e.Notes,
		UserID:       e.UserID,
		CreatedAt:    e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    e.UpdatedAt.Format(time.RFC3339),
	}
}

func EventsToResponse(events []model.Event) []EventResponse {
	out := make([]EventResponse, len(events))
	for i, e := range events {
		out[i] = EventToResponse(e)
	}
	return out
}
