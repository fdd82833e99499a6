package settings

import (
	"context"
	"net/http"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"myday/dto"
	"myday/middleware"
	"myday/services"
)

func SettingsController(router *gin.Engine, firestoreClient *firestore.Client) {
	routes := router.Group("/api/settings", middleware.AccessTokenMiddleware())
	{
		routes.GET("", func(c *gin.Context) {
			GetSettings(c, firestoreClient)
		})
		routes.PUT("/types", func(c *gin.Context) {
			SaveEventTypes(c, firestoreClient)
		})
		routes.PUT("/categories", func(c *gin.Context) {
			SaveEventCategories(c, firestoreClient)
		})
		routes.PUT("/repeats", func(c *gin.Context) {
			SaveRepeatOptions(c, firestoreClient)
		})
		routes.PUT("/general", func(c *gin.Context) {
			SaveGeneralSettings(c, firestoreClient)
		})
	}
}

func GetSettings(c *gin.Context, firestoreClient *firestore.Client) {
	userID := c.MustGet("userId").(string)

	ctx := context.Background()
	settings, err := services.GetUserSettings(ctx, firestoreClient, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

func SaveEventTypes(c *gin.Context, firestoreClient *firestore.Client) {
	userID := c.MustGet("userId").(string)

	var req dto.SaveEventTypesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := context.Background()
	if err := services.SaveUserSettings(ctx, firestoreClient, userID, map[string]interface{}{"types": req.Types}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save event types"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event types saved successfully"})
}

func SaveEventCategories(c *gin.Context, firestoreClient *firestore.Client) {
	userID := c.MustGet("userId").(string)

	var req dto.SaveEventCategoriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := context.Background()
	if err := services.SaveUserSettings(ctx, firestoreClient, userID, map[string]interface{}{"categories": req.Categories}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save categories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Categories saved successfully"})
}

func SaveRepeatOptions(c *gin.Context, firestoreClient *firestore.Client) {
	userID := c.MustGet("userId").(string)

	var req dto.SaveRepeatOptionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := context.Background()
	if err := services.SaveUserSettings(ctx, firestoreClient, userID, map[string]interface{}{"repeats": req.Repeats}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save repeat options"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Repeat options saved successfully"})
}

func SaveGeneralSettings(c *gin.Context, firestoreClient *firestore.Client) {
	userID := c.MustGet("userId").(string)

	var req dto.SaveGeneralSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := context.Background()
	if err := services.SaveUserSettings(ctx, firestoreClient, userID, map[string]interface{}{"general": req.General}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save general settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "General settings saved successfully"})
}
