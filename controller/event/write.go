package event

import (
	"context"
	"errors"
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"myday/calendar"
	"myday/dto"
	"myday/model"
	"myday/services"
)

func CreateEvent(c *gin.Context, firestoreClient *firestore.Client) {
	userID := c.MustGet("userId").(string)

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	startDate, err := calendar.ParseDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	endDate := startDate
	if req.EndDate != "" {
		endDate, err = calendar.ParseDate(req.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if endDate.Before(startDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "endDate must not be before startDate"})
			return
		}
	}
	if err := validateTimes(req.StartTime, req.EndTime); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := context.Background()
	now := time.Now()
	event := model.Event{
		EventID:      uuid.New().String(),
		UserID:       userID,
		Title:        req.Title,
		Description:  req.Description,
		StartDate:    startDate,
		EndDate:      endDate,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Type:         req.Type,
		Category:     req.Category,
		Priority:     req.Priority,
		Color:        req.Color,
		Location:     req.Location,
		Participants: req.Participants,
		Reminder:     req.Reminder,
		Repeat:       req.Repeat,
		Notes:        req.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	applyEventDefaults(ctx, firestoreClient, userID, &event)

	if err := services.SaveEvent(ctx, firestoreClient, event); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		return
	}
	c.JSON(http.StatusCreated, dto.EventToResponse(event))
}

func UpdateEvent(c *gin.Context, firestoreClient *firestore.Client) {
	userID := c.MustGet("userId").(string)

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := context.Background()
	event, err := services.GetEvent(ctx, firestoreClient, userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load event"})
		return
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.StartDate != nil {
		startDate, err := calendar.ParseDate(*req.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		event.StartDate = startDate
	}
	if req.EndDate != nil {
		endDate, err := calendar.ParseDate(*req.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		event.EndDate = endDate
	}
	if event.EndDate.Before(event.StartDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "endDate must not be before startDate"})
		return
	}
	if req.StartTime != nil {
		event.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		event.EndTime = *req.EndTime
	}
	if err := validateTimes(event.StartTime, event.EndTime); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Type != nil {
		event.Type = *req.Type
	}
	if req.Category != nil {
		event.Category = *req.Category
	}
	if req.Priority != nil {
		event.Priority = *req.Priority
	}
	if req.Color != nil {
		event.Color = *req.Color
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.Participants != nil {
		event.Participants = *req.Participants
	}
	if req.Reminder != nil {
		event.Reminder = *req.Reminder
	}
	if req.Repeat != nil {
		event.Repeat = *req.Repeat
	}
	if req.Notes != nil {
		event.Notes = *req.Notes
	}
	event.UpdatedAt = time.Now()

	if err := services.SaveEvent(ctx, firestoreClient, event); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
		return
	}
	c.JSON(http.StatusOK, dto.EventToResponse(event))
}

// validateTimes checks HH:MM syntax and rejects an end time at or
// before the start. A missing end time is fine, the layout code
// assumes a one hour slot for it.
func validateTimes(startTime, endTime string) error {
	start, err := calendar.ParseTimeToMinutes(startTime)
	if err != nil {
		return err
	}
	if endTime == "" {
		return nil
	}
	end, err := calendar.ParseTimeToMinutes(endTime)
	if err != nil {
		return err
	}
	if end <= start {
		return &calendar.ValidationError{Field: "endTime", Message: "end time must be after start time"}
	}
	return nil
}

// applyEventDefaults fills priority, reminder and color the way the
// quick-add form does: reminder from the user's general settings and
// color from the matching event type.
func applyEventDefaults(ctx context.Context, firestoreClient *firestore.Client, userID string, event *model.Event) {
	if event.Priority == "" {
		event.Priority = "medium"
	}

	needReminder := event.Reminder == ""
	needColor := event.Color == ""
	if !needReminder && !needColor {
		return
	}

	settings, err := services.GetUserSettings(ctx, firestoreClient, userID)
	if err != nil {
		settings = services.DefaultUserSettings()
	}
	if needReminder {
		event.Reminder = settings.General.DefaultReminder
	}
	if needColor {
		for _, t := range settings.Types {
			if t.Name == event.Type && t.IsActive() {
				event.Color = t.Color
				break
			}
		}
	}
}
