package notification

import (
	"context"
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"myday/calendar"
	"myday/middleware"
	"myday/services"
)

func NotificationController(router *gin.Engine, firestoreClient *firestore.Client, store calendar.NotificationStore) {
	routes := router.Group("/api/notifications", middleware.AccessTokenMiddleware())
	{
		routes.GET("", func(c *gin.Context) {
			ListNotifications(c, firestoreClient, store)
		})
		routes.GET("/active", func(c *gin.Context) {
			ActiveNotifications(c, firestoreClient, store)
		})
		routes.POST("/:id/dismiss", func(c *gin.Context) {
			DismissNotification(c, store)
		})
	}
}

// ListNotifications returns every notification for the user's events.
// Opening the full list counts as reading everything, so the dismissal
// overlay is reset here.
func ListNotifications(c *gin.Context, firestoreClient *firestore.Client, store calendar.NotificationStore) {
	userID := c.MustGet("userId").(string)

	ctx := context.Background()
	events, err := services.ListEvents(ctx, firestoreClient, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list events"})
		return
	}
	notifications := calendar.GenerateNotifications(events, time.Now())
	store.Clear(userID)

	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// ActiveNotifications returns the notifications that still belong in
// the bell dropdown, with dismissed ones filtered out.
func ActiveNotifications(c *gin.Context, firestoreClient *firestore.Client, store calendar.NotificationStore) {
	userID := c.MustGet("userId").(string)

	ctx := context.Background()
	events, err := services.ListEvents(ctx, firestoreClient, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list events"})
		return
	}
	notifications := calendar.ActiveNotifications(events, time.Now(), store.Dismissed(userID))

	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

func DismissNotification(c *gin.Context, store calendar.NotificationStore) {
	userID := c.MustGet("userId").(string)

	notificationID := c.Param("id")
	if notificationID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Notification id is required"})
		return
	}
	store.Dismiss(userID, notificationID)

	c.JSON(http.StatusOK, gin.H{"message": "Notification dismissed"})
}
