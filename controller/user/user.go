package user

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"myday/dto"
	"myday/middleware"
	"myday/model"
	"myday/services"
)

func UserController(router *gin.Engine, firestoreClient *firestore.Client) {
	routes := router.Group("/api/user", middleware.AccessTokenMiddleware())
	{
		routes.GET("", func(c *gin.Context) {
			GetProfile(c, firestoreClient)
		})
		routes.PUT("", func(c *gin.Context) {
			UpdateProfile(c, firestoreClient)
		})
		routes.DELETE("", func(c *gin.Context) {
			DeleteUser(c, firestoreClient)
		})
		routes.POST("/search", middleware.AdminMiddleware(), func(c *gin.Context) {
			SearchUser(c, firestoreClient)
		})
	}
}

func GetProfile(c *gin.Context, firestoreClient *firestore.Client) {
	userID := c.MustGet("userId").(string)

	ctx := context.Background()
	user, err := services.GetUserByID(ctx, firestoreClient, userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}
	c.JSON(http.StatusOK, dto.UserToResponse(user))
}

// SearchUser is the admin page's prefix search over registered emails.
func SearchUser(c *gin.Context, firestoreClient *firestore.Client) {
	var emailReq dto.SearchEmailRequest
	if err := c.ShouldBindJSON(&emailReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	ctx := context.Background()
	iter := firestoreClient.Collection("Users").
		Where("email", ">=", emailReq.Email).
		Where("email", "<=", emailReq.Email+"").
		Documents(ctx)

	userResponses := []dto.UserResponse{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		var user model.User
		if err := doc.DataTo(&user); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse user data"})
			return
		}
		userResponses = append(userResponses, dto.UserToResponse(user))
	}

	c.JSON(http.StatusOK, userResponses)
}

func UpdateProfile(c *gin.Context, firestoreClient *firestore.Client) {
	userID := c.MustGet("userId").(string)

	var updateProfile dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&updateProfile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	updateMap := make(map[string]interface{})

	if updateProfile.Name != "" {
		updateProfile.Name = strings.TrimSpace(updateProfile.Name)
		if len(updateProfile.Name) < 2 || len(updateProfile.Name) > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name must be between 2 and 100 characters"})
			return
		}
		updateMap["name"] = updateProfile.Name
	}
	if updateProfile.Avatar != "" {
		updateMap["avatar"] = strings.TrimSpace(updateProfile.Avatar)
	}
	if updateProfile.Phone != "" {
		updateMap["phone"] = strings.TrimSpace(updateProfile.Phone)
	}
	if updateProfile.Timezone != "" {
		if _, err := time.LoadLocation(updateProfile.Timezone); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown timezone"})
			return
		}
		updateMap["timezone"] = updateProfile.Timezone
	}
	if updateProfile.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(updateProfile.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process password"})
			return
		}
		updateMap["password"] = string(hashedPassword)
	}

	if len(updateMap) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data to update"})
		return
	}

	ctx := context.Background()
	userDocRef := firestoreClient.Collection("Users").Doc(userID)

	err := firestoreClient.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		userDoc, err := tx.Get(userDocRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.New("user not found")
			}
			return errors.New("failed to retrieve user")
		}
		if !userDoc.Exists() {
			return errors.New("user not found")
		}

		var updates []firestore.Update
		for field, value := range updateMap {
			updates = append(updates, firestore.Update{
				Path:  field,
				Value: value,
			})
		}
		return tx.Update(userDocRef, updates)
	})
	if err != nil {
		switch err.Error() {
		case "user not found":
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case "failed to retrieve user":
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user profile"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"userid":  userID,
	})
}

// DeleteUser removes the account along with everything keyed to it:
// events, settings and dismissal state live and die with the user.
func DeleteUser(c *gin.Context, firestoreClient *firestore.Client) {
	userID := c.MustGet("userId").(string)
	ctx := context.Background()

	eventsSnapshot, err := firestoreClient.Collection("Events").
		Where("userid", "==", userID).
		Documents(ctx).GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user events"})
		return
	}

	batch := firestoreClient.Batch()
	for _, doc := range eventsSnapshot {
		batch.Delete(doc.Ref)
	}
	batch.Delete(firestoreClient.Collection("Settings").Doc(userID))
	batch.Delete(firestoreClient.Collection("refreshTokens").Doc(userID))
	batch.Delete(firestoreClient.Collection("Users").Doc(userID))

	if _, err := batch.Commit(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
