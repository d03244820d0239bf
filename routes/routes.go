package routes

import (
	"github.com/gin-gonic/gin"

	config "github.com/suryaone68/Real-Time-Event-management/config"
	controllers "github.com/suryaone68/Real-Time-Event-management/controllers"
	middleware "github.com/suryaone68/Real-Time-Event-management/middleware"
)

func SetupRoutes(r *gin.Engine, cfg *config.Config) {
	auth := middleware.AuthMiddleware(cfg)

	// public
	r.POST("/auth/register", controllers.Register(cfg))
	r.POST("/auth/login", controllers.Login(cfg))

	// protected auth endpoints
	r.POST("/auth/logout", auth, controllers.Logout(cfg))
	r.GET("/auth/me", auth, controllers.Me(cfg))

	// events, all owner-scoped
	events := r.Group("/events")
	events.Use(auth)
	{
		events.POST("", controllers.CreateEvent(cfg))
		events.GET("", controllers.ListEvents(cfg))
		events.GET("/:id", controllers.GetEvent(cfg))
		events.PUT("/:id", controllers.UpdateEvent(cfg))
		events.DELETE("/:id", controllers.DeleteEvent(cfg))
		events.POST("/:id/image", controllers.UploadEventImage(cfg))
	}
}
