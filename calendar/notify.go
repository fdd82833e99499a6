package calendar

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"myday/model"
)

// NotificationType classifies why a notification was generated.
type NotificationType string

const (
	NotificationReminder NotificationType = "reminder"
	NotificationToday    NotificationType = "today"
	NotificationUpcoming NotificationType = "upcoming"
)

// Notification is an ephemeral classification result, regenerated from
// scratch on every pass. The ID is deterministic per type, event and day so
// dismissals survive recomputation.
type Notification struct {
	ID         string           `json:"id"`
	EventID    string           `json:"eventId"`
	EventTitle string           `json:"eventTitle"`
	EventColor string           `json:"eventColor"`
	Message    string           `json:"message"`
	Type       NotificationType `json:"type"`
	EventDate  time.Time        `json:"eventDate"`
	EventTime  string           `json:"eventTime"`
	CreatedAt  time.Time        `json:"createdAt"`
}

// ReminderLeadMinutes maps a reminder setting to its lead time in minutes.
// Unknown settings and "none" have no lead time.
func ReminderLeadMinutes(reminder string) int {
	switch reminder {
	case "15min":
		return 15
	case "30min":
		return 30
	case "1hour":
		return 60
	case "2hours":
		return 120
	case "1day":
		return 1440
	}
	return 0
}

func reminderText(reminder string) string {
	switch reminder {
	case "15min":
		return "15 minutes"
	case "30min":
		return "30 minutes"
	case "1hour":
		return "1 hour"
	case "2hours":
		return "2 hours"
	case "1day":
		return "1 day"
	}
	return ""
}

// eventDateTime combines an event's calendar day with its start time.
func eventDateTime(e model.Event) (time.Time, error) {
	minutes, err := ParseTimeToMinutes(e.StartTime)
	if err != nil {
		return time.Time{}, err
	}
	return DayOf(e.StartDate).Add(time.Duration(minutes) * time.Minute), nil
}

func notificationID(typ NotificationType, e model.Event) string {
	return fmt.Sprintf("%s-%s-%s", typ, e.EventID, FormatDate(e.StartDate))
}

// GenerateNotifications classifies every event against "now" and returns the
// full notification set, sorted ascending by event date and time.
//
// An event within its reminder window produces a reminder notification; an
// event later today produces a today notification unless the reminder window
// is already active for it; an event tomorrow produces an upcoming
// notification. Events with malformed times are skipped, since the write
// path rejects them before they can be stored.
func GenerateNotifications(events []model.Event, now time.Time) []Notification {
	today := DayOf(now)
	tomorrow := today.AddDate(0, 0, 1)

	notifications := []Notification{}
	for _, e := range events {
		start, err := eventDateTime(e)
		if err != nil {
			continue
		}
		diffMinutes := start.Sub(now).Minutes()
		lead := ReminderLeadMinutes(e.Reminder)
		withinReminder := lead > 0 && diffMinutes > 0 && diffMinutes <= float64(lead)

		if withinReminder {
			notifications = append(notifications, Notification{
				ID:         notificationID(NotificationReminder, e),
				EventID:    e.EventID,
				EventTitle: e.Title,
				EventColor: e.Color,
				Message:    fmt.Sprintf("Reminder: %q starts in %s", e.Title, reminderText(e.Reminder)),
				Type:       NotificationReminder,
				EventDate:  DayOf(e.StartDate),
				EventTime:  e.StartTime,
				CreatedAt:  now,
			})
		}

		if SameDay(e.StartDate, today) && diffMinutes > 0 && !withinReminder {
			notifications = append(notifications, Notification{
				ID:         notificationID(NotificationToday, e),
				EventID:    e.EventID,
				EventTitle: e.Title,
				EventColor: e.Color,
				Message:    fmt.Sprintf("Today: %q at %s", e.Title, e.StartTime),
				Type:       NotificationToday,
				EventDate:  DayOf(e.StartDate),
				EventTime:  e.StartTime,
				CreatedAt:  now,
			})
		}

		if SameDay(e.StartDate, tomorrow) {
			notifications = append(notifications, Notification{
				ID:         notificationID(NotificationUpcoming, e),
				EventID:    e.EventID,
				EventTitle: e.Title,
				EventColor: e.Color,
				Message:    fmt.Sprintf("Tomorrow: %q at %s", e.Title, e.StartTime),
				Type:       NotificationUpcoming,
				EventDate:  DayOf(e.StartDate),
				EventTime:  e.StartTime,
				CreatedAt:  now,
			})
		}
	}

	sort.SliceStable(notifications, func(i, j int) bool {
		if !notifications[i].EventDate.Equal(notifications[j].EventDate) {
			return notifications[i].EventDate.Before(notifications[j].EventDate)
		}
		return notifications[i].EventTime < notifications[j].EventTime
	})
	return notifications
}

// ActiveNotifications regenerates the notification set and drops entries the
// user has dismissed this session.
func ActiveNotifications(events []model.Event, now time.Time, dismissed []string) []Notification {
	dismissedSet := make(map[string]struct{}, len(dismissed))
	for _, id := range dismissed {
		dismissedSet[id] = struct{}{}
	}
	active := []Notification{}
	for _, n := range GenerateNotifications(events, now) {
		if _, ok := dismissedSet[n.ID]; !ok {
			active = append(active, n)
		}
	}
	return active
}

// NotificationStore tracks dismissed notification ids per user for the
// lifetime of a session. The set is cleared when the user opens the full
// notifications list or re-authenticates.
type NotificationStore interface {
	Dismiss(userID, notificationID string)
	Dismissed(userID string) []string
	Clear(userID string)
}

// MemoryNotificationStore is the in-process NotificationStore used by the
// server. Nothing here is persisted across restarts.
type MemoryNotificationStore struct {
	mu     sync.RWMutex
	byUser map[string]map[string]struct{}
}

func NewMemoryNotificationStore() *MemoryNotificationStore {
	return &MemoryNotificationStore{byUser: make(map[string]map[string]struct{})}
}

func (s *MemoryNotificationStore) Dismiss(userID, notificationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.byUser[userID] == nil {
		s.byUser[userID] = make(map[string]struct{})
	}
	s.byUser[userID][notificationID] = struct{}{}
}

func (s *MemoryNotificationStore) Dismissed(userID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.byUser[userID]))
	for id := range s.byUser[userID] {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s *MemoryNotificationStore) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byUser, userID)
}
