package auth

import (
	"context"
	"net/http"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"myday/dto"
	"myday/middleware"
	"myday/services"
)

func ValidateController(router *gin.Engine, firestoreClient *firestore.Client) {
	router.GET("/api/auth/validate", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		Validate(c, firestoreClient)
	})
}

// Validate confirms the access token still maps to a live account; the
// frontend calls it on startup to decide whether the stored session holds.
func Validate(c *gin.Context, firestoreClient *firestore.Client) {
	userID := c.MustGet("userId").(string)

	ctx := context.Background()
	user, err := services.GetUserByID(ctx, firestoreClient, userID)
	if err != nil {
		c.JSON(http.StatusOK, dto.ValidateResponse{Valid: false})
		return
	}

	resp := dto.UserToResponse(user)
	c.JSON(http.StatusOK, dto.ValidateResponse{Valid: true, User: &resp})
}
