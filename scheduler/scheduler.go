// Package scheduler runs the periodic notification sweep. The clients
// poll /api/notifications/active themselves; this pass exists so the
// server log shows which reminders are firing even when nobody polls.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/robfig/cron/v3"
	"google.golang.org/api/iterator"

	"myday/calendar"
	"myday/model"
)

const defaultRefreshSeconds = 60

// StartScheduler begins the background sweep and returns the cron
// runner so the caller can Stop it on shutdown.
func StartScheduler(firestoreClient *firestore.Client) *cron.Cron {
	seconds := defaultRefreshSeconds
	if s := os.Getenv("NOTIFY_REFRESH_SECONDS"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			seconds = n
		} else {
			log.Printf("Ignoring invalid NOTIFY_REFRESH_SECONDS=%q", s)
		}
	}

	c := cron.New()
	spec := fmt.Sprintf("@every %ds", seconds)
	if _, err := c.AddFunc(spec, func() {
		sweep(firestoreClient)
	}); err != nil {
		log.Printf("Failed to schedule notification sweep: %v", err)
		return c
	}
	c.Start()
	log.Printf("Notification sweep running every %ds", seconds)
	return c
}

// sweep walks every event, groups them per user and counts the
// notifications due right now.
func sweep(firestoreClient *firestore.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	iter := firestoreClient.Collection("Events").Documents(ctx)
	eventsByUser := make(map[string][]model.Event)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			log.Printf("Notification sweep failed: %v", err)
			return
		}
		var event model.Event
		if err := doc.DataTo(&event); err != nil {
			log.Printf("Skipping malformed event %s: %v", doc.Ref.ID, err)
			continue
		}
		eventsByUser[event.UserID] = append(eventsByUser[event.UserID], event)
	}

	now := time.Now()
	for userID, events := range eventsByUser {
		notifications := calendar.GenerateNotifications(events, now)
		reminders := 0
		for _, n := range notifications {
			if n.Type == calendar.NotificationReminder {
				reminders++
			}
		}
		if reminders > 0 {
			log.Printf("User %s has %d reminder(s) due", userID, reminders)
		}
	}
}
