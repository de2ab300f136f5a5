package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "agendados/docs" // registers the OpenAPI document
	"agendados/internal/handler"
	"agendados/internal/middleware"
	"agendados/internal/service"
)

// Handlers groups the HTTP handlers mounted by Setup.
type Handlers struct {
	Auth      *handler.AuthHandler
	Dictation *handler.DictationHandler
	Client    *handler.ClientHandler
	Schedule  *handler.ScheduleHandler
	Export    *handler.ExportHandler
	Health    *handler.HealthHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(authSvc service.AuthService, h Handlers, allowedOrigins []string, logger *slog.Logger) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(allowedOrigins))

	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.RefreshToken)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	dictation := protected.Group("/dictation")
	dictation.POST("/parse", h.Dictation.Parse)
	dictation.POST("/apply", h.Dictation.Apply)
	dictation.POST("/phone", h.Dictation.Phone)

	clients := protected.Group("/clients")
	clients.GET("/draft", h.Client.NewDraft)
	clients.GET("/upcoming", h.Client.Upcoming)
	clients.POST("/lookup", h.Client.Lookup)
	clients.POST("/search", h.Client.Search)
	clients.POST("/delete", h.Client.DeleteMany)
	clients.POST("", h.Client.Save)
	clients.GET("", h.Client.List)
	clients.GET("/:id", h.Client.GetByID)
	clients.PUT("/:id/alarm", h.Client.SetAlarm)

	sched := protected.Group("/schedule")
	sched.GET("/options", h.Schedule.Options)
	sched.POST("/evaluate", h.Schedule.Evaluate)
	sched.GET("/holidays", h.Schedule.ListHolidays)
	sched.POST("/holidays", h.Schedule.AddHoliday)
	sched.DELETE("/holidays/:id", h.Schedule.DeleteHoliday)

	exports := protected.Group("/exports")
	exports.POST("/archive", h.Export.Archive)
	exports.GET("/:format", h.Export.Download)

	return r
}
