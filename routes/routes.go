package routes

import (
	"net/http"
	"time"

	"github.com/pros100kyiv/HUBbase-sub001/config"
	"github.com/pros100kyiv/HUBbase-sub001/handlers"
	"github.com/pros100kyiv/HUBbase-sub001/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers staff session endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.AuthHandler.SignInHandler)

		api.Use(middleware.JWTAuthStaffMiddleware(hb.StaffRepo))
		api.POST("/logout", hb.AuthHandler.SignOutHandler)
	}
}

// RegisterMasterRoutes registers master management endpoints.
func RegisterMasterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/masters")
	{
		api.Use(middleware.JWTAuthStaffMiddleware(hb.StaffRepo))
		api.GET("", hb.MasterHandler.ListMastersHandler)
		api.GET("/:id", hb.MasterHandler.GetMasterHandler)
		api.POST("", hb.MasterHandler.CreateMasterHandler)
		api.PUT("/:id", hb.MasterHandler.UpdateMasterHandler)
		api.DELETE("/:id", hb.MasterHandler.DeleteMasterHandler)
		api.GET("/:id/schedule", hb.MasterHandler.GetDayScheduleHandler)
		api.PUT("/:id/working-hours", hb.MasterHandler.UpdateWorkingHoursHandler)
		api.PUT("/:id/overrides", hb.MasterHandler.UpdateOverridesHandler)
		api.POST("/:id/avatar", hb.MasterHandler.UploadAvatarHandler)
	}
}

// RegisterClientRoutes registers client roster endpoints.
func RegisterClientRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/clients")
	{
		api.Use(middleware.JWTAuthStaffMiddleware(hb.StaffRepo))
		api.GET("", hb.ClientHandler.ListClientsHandler)
		api.GET("/search", hb.ClientHandler.ListClientsHandler)
		api.GET("/:id", hb.ClientHandler.GetClientHandler)
		api.POST("", hb.ClientHandler.CreateClientHandler)
		api.PUT("/:id", hb.ClientHandler.UpdateClientHandler)
		api.DELETE("/:id", hb.ClientHandler.DeleteClientHandler)
	}
}

// RegisterAppointmentRoutes registers appointment book endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.JWTAuthStaffMiddleware(hb.StaffRepo))
		api.GET("", hb.AppointmentHandler.ListAppointmentsHandler)
		api.GET("/:id", hb.AppointmentHandler.GetAppointmentHandler)
		api.POST("", hb.AppointmentHandler.CreateAppointmentHandler)
		api.PUT("/:id", hb.AppointmentHandler.UpdateAppointmentHandler)
		api.PATCH("/:id/status", hb.AppointmentHandler.SetStatusHandler)
		api.DELETE("/:id", hb.AppointmentHandler.DeleteAppointmentHandler)
	}
}

// RegisterCatalogRoutes registers price-list endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.Use(middleware.JWTAuthStaffMiddleware(hb.StaffRepo))
		api.GET("", hb.CatalogHandler.ListServicesHandler)
		api.GET("/:id", hb.CatalogHandler.GetServiceHandler)
		api.POST("", hb.CatalogHandler.CreateServiceHandler)
		api.PUT("/:id", hb.CatalogHandler.UpdateServiceHandler)
		api.DELETE("/:id", hb.CatalogHandler.DeleteServiceHandler)
	}
}

// RegisterInboxRoutes registers message inbox endpoints. Receiving a message
// is public; everything else needs a staff session.
func RegisterInboxRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/inbox")
	{
		api.POST("", hb.InboxHandler.ReceiveMessageHandler)

		api.Use(middleware.JWTAuthStaffMiddleware(hb.StaffRepo))
		api.GET("", hb.InboxHandler.ListMessagesHandler)
		api.PATCH("/:id/read", hb.InboxHandler.MarkReadHandler)
		api.POST("/:id/reply", hb.InboxHandler.ReplyHandler)
		api.DELETE("/:id", hb.InboxHandler.DeleteMessageHandler)
	}
}

// RegisterScheduleRoutes registers availability query endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/schedule")
	{
		api.Use(middleware.JWTAuthStaffMiddleware(hb.StaffRepo))
		api.GET("/free-slots", hb.ScheduleHandler.FreeSlotsHandler)
		api.GET("/gaps", hb.ScheduleHandler.GapsHandler)
		api.GET("/who-working", hb.ScheduleHandler.WhoWorkingHandler)
		api.GET("/overview", hb.ScheduleHandler.OverviewHandler)
	}
}

// RegisterAIRoutes registers assistant endpoints.
func RegisterAIRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/ai")
	{
		api.Use(middleware.JWTAuthStaffMiddleware(hb.StaffRepo))
		api.POST("/chat", hb.AIHandler.ChatHandler)
		api.DELETE("/chat", hb.AIHandler.ClearChatHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "salon": config.AppConfig.SalonName})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterAuthRoutes(r, hb)
	RegisterMasterRoutes(r, hb)
	RegisterClientRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterInboxRoutes(r, hb)
	RegisterScheduleRoutes(r, hb)
	RegisterAIRoutes(r, hb)
	RegisterHealthRoute(r)
}
