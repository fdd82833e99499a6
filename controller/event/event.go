package event

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"myday/calendar"
	"myday/dto"
	"myday/middleware"
	"myday/services"
)

func EventController(router *gin.Engine, firestoreClient *firestore.Client) {
	routes := router.Group("/api/events", middleware.AccessTokenMiddleware())
	{
		routes.GET("", func(c *gin.Context) {
			ListEvents(c, firestoreClient)
		})
		routes.GET("/search", func(c *gin.Context) {
			SearchEvents(c, firestoreClient)
		})
		routes.GET("/upcoming", func(c *gin.Context) {
			UpcomingEvents(c, firestoreClient)
		})
		routes.GET("/date/:date", func(c *gin.Context) {
			EventsByDate(c, firestoreClient)
		})
		routes.GET("/range", func(c *gin.Context) {
			EventsByRange(c, firestoreClient)
		})
		routes.GET("/:id", func(c *gin.Context) {
			GetEvent(c, firestoreClient)
		})
		routes.POST("", func(c *gin.Context) {
			CreateEvent(c, firestoreClient)
		})
		routes.PUT("/:id", func(c *gin.Context) {
			UpdateEvent(c, firestoreClient)
		})
		routes.DELETE("/:id", func(c *gin.Context) {
			DeleteEvent(c, firestoreClient)
		})
	}
}

func ListEvents(c *gin.Context, firestoreClient *firestore.Client) {
	userID := c.MustGet("userId").(string)

	ctx := context.Background()
	events, err := services.ListEvents(ctx, firestoreClient, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list events"})
		return
	}
	c.JSON(http.StatusOK, dto.EventsToResponse(events))
}

func GetEvent(c *gin.Context, firestoreClient *firestore.Client) {
	userID := c.MustGet("userId").(string)

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
	c.JSON(http.StatusOK, dto.EventToResponse(event))
}

func EventsByDate(c *gin.Context, firestoreClient *firestore.Client) {
	userID := c.MustGet("userId").(string)

	date, err := calendar.ParseDate(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := context.Background()
	events, err := services.ListEvents(ctx, firestoreClient, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list events"})
		return
	}
	c.JSON(http.StatusOK, dto.EventsToResponse(calendar.EventsOnDate(events, date)))
}

func EventsByRange(c *gin.Context, firestoreClient *firestore.Client) {
	userID := c.MustGet("userId").(string)

	start, err := calendar.ParseDate(c.Query("startDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	end, err := calendar.ParseDate(c.Query("endDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if end.Before(start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "endDate must not be before startDate"})
		return
	}

	ctx := context.Background()
	events, err := services.ListEvents(ctx, firestoreClient, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list events"})
		return
	}
	c.JSON(http.StatusOK, dto.EventsToResponse(calendar.EventsInRange(events, start, end)))
}

// UpcomingEvents feeds the dashboard's "coming up" list: events from today
// onward, soonest first.
func UpcomingEvents(c *gin.Context, firestoreClient *firestore.Client) {
	userID := c.MustGet("userId").(string)

	limit := 5
	if s := c.Query("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}

	ctx := context.Background()
	events, err := services.ListEvents(ctx, firestoreClient, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list events"})
		return
	}
	c.JSON(http.StatusOK, dto.EventsToResponse(calendar.UpcomingEvents(events, time.Now(), limit)))
}

func SearchEvents(c *gin.Context, firestoreClient *firestore.Client) {
	userID := c.MustGet("userId").(string)

	filter := calendar.SearchFilter{
		Term:     c.Query("term"),
		Type:     c.Query("type"),
		Category: c.Query("category"),
		Priority: c.Query("priority"),
	}
	if s := c.Query("startDate"); s != "" {
		date, err := calendar.ParseDate(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		filter.StartDate = &date
	}
	if s := c.Query("endDate"); s != "" {
		date, err := calendar.ParseDate(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		filter.EndDate = &date
	}

	ctx := context.Background()
	events, err := services.ListEvents(ctx, firestoreClient, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list events"})
		return
	}
	c.JSON(http.StatusOK, dto.EventsToResponse(calendar.SearchEvents(events, filter)))
}

func DeleteEvent(c *gin.Context, firestoreClient *firestore.Client) {
	userID := c.MustGet("userId").(string)

	ctx := context.Background()
	if err := services.DeleteEvent(ctx, firestoreClient, userID, c.Param("id")); err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}
