package connection

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"myday/calendar"
	"myday/controller/agenda"
	"myday/controller/auth"
	"myday/controller/event"
	"myday/controller/notification"
	"myday/controller/settings"
	"myday/controller/user"
	"myday/scheduler"
)

func StartServer() {
	router := gin.Default()

	fb, err := FBConnection()
	if err != nil {
		log.Fatalf("Failed to initialize Firestore client: %v", err)
	}

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Api is running!"})
	})

	router.Use(cors.Default())

	// Dismissed notification ids live in memory; a restart or a fresh
	// login starts everyone with a clean slate.
	store := calendar.NewMemoryNotificationStore()

	auth.LoginController(router, fb, store)
	auth.RegisterController(router, fb)
	auth.ValidateController(router, fb)
	auth.RefreshController(router, fb)
	user.UserController(router, fb)
	event.EventController(router, fb)
	agenda.AgendaController(router, fb)
	notification.NotificationController(router, fb, store)
	settings.SettingsController(router, fb)

	cronRunner := scheduler.StartScheduler(fb)
	defer cronRunner.Stop()

	router.Run()
}
