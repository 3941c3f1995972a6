package server

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/hlifeacademy/dna-backend/internal/handlers"
	"github.com/hlifeacademy/dna-backend/internal/logger"
	"github.com/hlifeacademy/dna-backend/internal/middleware"
	"github.com/hlifeacademy/dna-backend/internal/utils"
)

type RouterConfig struct {
	Log               *logger.Logger
	AuthHandler       *handlers.AuthHandler
	AuthMiddleware    *middleware.AuthMiddleware
	UserHandler       *handlers.UserHandler
	CatalogHandler    *handlers.CatalogHandler
	AssessmentHandler *handlers.AssessmentHandler
	ReportHandler     *handlers.ReportHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	allowOrigins := strings.Split(utils.GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:5173", cfg.Log), ",")
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))
	router.Use(otelgin.Middleware("dna-backend"))
	if cfg.Log != nil {
		router.Use(middleware.RequestLog(cfg.Log))
	}

	// Public
	router.GET("/healthcheck", handlers.HealthCheck)
	api := router.Group("/api")
	{
		api.POST("/register", cfg.AuthHandler.Register)
		api.POST("/login", cfg.AuthHandler.Login)
		api.POST("/password/forgot", cfg.AuthHandler.ForgotPassword)
		api.POST("/password/reset", cfg.AuthHandler.ResetPassword)
		api.GET("/catalog/behavioral", cfg.CatalogHandler.GetBehavioral)
		api.GET("/catalog/values", cfg.CatalogHandler.GetValues)
	}

	// Protected
	protected := router.Group("/api")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	// Auth
	protected.POST("/refresh", cfg.AuthHandler.Refresh)
	protected.POST("/logout", cfg.AuthHandler.Logout)
	// User
	protected.GET("/user", cfg.UserHandler.GetMe)
	protected.PATCH("/user", cfg.UserHandler.UpdateProfile)
	protected.POST("/user/avatar", cfg.UserHandler.UploadAvatar)
	// Assessments
	protected.POST("/assessments", cfg.AssessmentHandler.Submit)
	protected.GET("/assessments", cfg.AssessmentHandler.List)
	protected.GET("/assessments/latest", cfg.AssessmentHandler.Latest)
	protected.GET("/assessments/retake", cfg.AssessmentHandler.Retake)
	protected.GET("/assessments/:id", cfg.AssessmentHandler.Get)
	protected.GET("/dashboard", cfg.AssessmentHandler.Dashboard)
	// Reports
	protected.GET("/assessments/:id/report", cfg.ReportHandler.GetReport)
	protected.GET("/assessments/:id/report.png", cfg.ReportHandler.GetReportPNG)
	protected.POST("/assessments/:id/export", cfg.ReportHandler.Export)

	return router
}
