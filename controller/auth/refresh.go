package auth

import (
	"context"
	"crypto/sha256"
	"net/http"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"myday/dto"
	"myday/middleware"
	"myday/model"
	"myday/services"
)

func RefreshController(router *gin.Engine, firestoreClient *firestore.Client) {
	router.POST("/api/auth/refresh", middleware.RefreshTokenMiddleware(), func(c *gin.Context) {
		Refresh(c, firestoreClient)
	})
}

func Refresh(c *gin.Context, firestoreClient *firestore.Client) {
	userID := c.MustGet("userId").(string)
	refreshToken := c.MustGet("refreshToken").(string)

	ctx := context.Background()
	doc, err := firestoreClient.Collection("refreshTokens").Doc(userID).Get(ctx)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token not found"})
		return
	}

	var stored model.TokenResponse
	if err := doc.DataTo(&stored); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse refresh token record"})
		return
	}
	if stored.Revoked {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token has been revoked"})
		return
	}

	hash := sha256.Sum256([]byte(refreshToken))
	if err := bcrypt.CompareHashAndPassword([]byte(stored.RefreshToken), hash[:]); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token mismatch"})
		return
	}

	user, err := services.GetUserByID(ctx, firestoreClient, userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	accessToken, err := services.CreateAccessToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create access token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": accessToken,
		"token_type":   "Bearer",
		"expires_in":   int64(services.AccessTokenTTL.Seconds()),
		"user":         dto.UserToResponse(user),
	})
}
