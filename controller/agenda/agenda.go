package agenda

import (
	"context"
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"myday/calendar"
	"myday/dto"
	"myday/middleware"
	"myday/services"
)

func AgendaController(router *gin.Engine, firestoreClient *firestore.Client) {
	routes := router.Group("/api/calendar", middleware.AccessTokenMiddleware())
	{
		routes.GET("/grid", func(c *gin.Context) {
			Grid(c, firestoreClient)
		})
		routes.GET("/layout", func(c *gin.Context) {
			DayLayout(c, firestoreClient)
		})
	}
}

type gridCell struct {
	Date           string `json:"date"`
	IsCurrentMonth bool   `json:"isCurrentMonth"`
}

// Grid returns the visible date cells for a day, week or month view
// around a reference date, plus the reference dates one step back and
// forward so the client can page without re-deriving them.
func Grid(c *gin.Context, firestoreClient *firestore.Client) {
	userID := c.MustGet("userId").(string)

	date := time.Now()
	if s := c.Query("date"); s != "" {
		parsed, err := calendar.ParseDate(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		date = parsed
	}
	view, err := calendar.ParseView(c.DefaultQuery("view", "month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	weekStart, err := resolveWeekStart(c, firestoreClient, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}

	cells := calendar.ComputeGridDates(date, view, weekStart)
	out := make([]gridCell, len(cells))
	for i, cell := range cells {
		out[i] = gridCell{
			Date:           calendar.FormatDate(cell.Date),
			IsCurrentMonth: cell.IsCurrentMonth,
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"view":  string(view),
		"date":  calendar.FormatDate(date),
		"prev":  calendar.FormatDate(calendar.PrevDate(date, view)),
		"next":  calendar.FormatDate(calendar.NextDate(date, view)),
		"cells": out,
	})
}

type laidOutEvent struct {
	dto.EventResponse
	Column       int `json:"column"`
	TotalColumns int `json:"totalColumns"`
}

// DayLayout returns one day's timed events with the column assignments
// the week and day views render overlapping events with.
func DayLayout(c *gin.Context, firestoreClient *firestore.Client) {
	userID := c.MustGet("userId").(string)

	date, err := calendar.ParseDate(c.Query("date"))
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
	laid, err := calendar.LayoutDayEvents(calendar.EventsOnDate(events, date))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to lay out events"})
		return
	}

	out := make([]laidOutEvent, len(laid))
	for i, item := range laid {
		out[i] = laidOutEvent{
			EventResponse: dto.EventToResponse(item.Event),
			Column:        item.Column,
			TotalColumns:  item.TotalColumns,
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"date":   calendar.FormatDate(date),
		"events": out,
	})
}

// resolveWeekStart prefers an explicit query parameter and falls back
// to the user's saved preference.
func resolveWeekStart(c *gin.Context, firestoreClient *firestore.Client, userID string) (time.Weekday, error) {
	if s := c.Query("weekStart"); s != "" {
		return calendar.ParseWeekStart(s), nil
	}
	settings, err := services.GetUserSettings(context.Background(), firestoreClient, userID)
	if err != nil {
		return time.Sunday, err
	}
	return calendar.ParseWeekStart(settings.General.WeekStartsOn), nil
}
