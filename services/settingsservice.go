package services

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"myday/model"
)

// UserSettings is the per-user settings document: the editable event type,
// category and repeat option lists plus the general preferences.
type UserSettings struct {
	Types      []model.EventType     `firestore:"types" json:"types"`
	Categories []model.EventCategory `firestore:"categories" json:"categories"`
	Repeats    []model.RepeatOption  `firestore:"repeats" json:"repeats"`
	General    model.GeneralSettings `firestore:"general" json:"general"`
}

// DefaultUserSettings is what a user sees before saving anything.
func DefaultUserSettings() UserSettings {
	return UserSettings{
		Types:      model.DefaultEventTypes(),
		Categories: model.DefaultEventCategories(),
		Repeats:    model.DefaultRepeatOptions(),
		General:    model.DefaultGeneralSettings(),
	}
}

// GetUserSettings loads a user's settings document, seeding the defaults
// when the user has never saved any.
func GetUserSettings(ctx context.Context, firestoreClient *firestore.Client, userID string) (UserSettings, error) {
	doc, err := firestoreClient.Collection("Settings").Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return DefaultUserSettings(), nil
		}
		return UserSettings{}, err
	}
	var settings UserSettings
	if err := doc.DataTo(&settings); err != nil {
		return UserSettings{}, err
	}
	if settings.Types == nil {
		settings.Types = model.DefaultEventTypes()
	}
	if settings.Categories == nil {
		settings.Categories = model.DefaultEventCategories()
	}
	if settings.Repeats == nil {
		settings.Repeats = model.DefaultRepeatOptions()
	}
	if settings.General == (model.GeneralSettings{}) {
		settings.General = model.DefaultGeneralSettings()
	}
	return settings, nil
}

// SaveUserSettings merges one section of the settings document.
func SaveUserSettings(ctx context.Context, firestoreClient *firestore.Client, userID string, updates map[string]interface{}) error {
	_, err := firestoreClient.Collection("Settings").Doc(userID).Set(ctx, updates, firestore.MergeAll)
	return err
}
