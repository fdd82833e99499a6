package services

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"myday/model"
)

var ErrEventNotFound = errors.New("event not found")

// ListEvents returns every event owned by the user. The collection is small
// per user; views and the notification classifier filter it in memory.
func ListEvents(ctx context.Context, firestoreClient *firestore.Client, userID string) ([]model.Event, error) {
	iter := firestoreClient.Collection("Events").Where("userid", "==", userID).Documents(ctx)

	events := []model.Event{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var event model.Event
		if err := doc.DataTo(&event); err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, nil
}

func GetEvent(ctx context.Context, firestoreClient *firestore.Client, userID, eventID string) (model.Event, error) {
	doc, err := firestoreClient.Collection("Events").Doc(eventID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return model.Event{}, ErrEventNotFound
		}
		return model.Event{}, err
	}
	var event model.Event
	if err := doc.DataTo(&event); err != nil {
		return model.Event{}, err
	}
	// Ownership check; events of other users are invisible, not forbidden.
	if event.UserID != userID {
		return model.Event{}, ErrEventNotFound
	}
	return event, nil
}

func SaveEvent(ctx context.Context, firestoreClient *firestore.Client, event model.Event) error {
	_, err := firestoreClient.Collection("Events").Doc(event.EventID).Set(ctx, event)
	return err
}

func DeleteEvent(ctx context.Context, firestoreClient *firestore.Client, userID, eventID string) error {
	if _, err := GetEvent(ctx, firestoreClient, userID, eventID); err != nil {
		return err
	}
	_, err := firestoreClient.Collection("Events").Doc(eventID).Delete(ctx)
	return err
}
