package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/hlifeacademy/dna-backend/internal/catalog"
	"github.com/hlifeacademy/dna-backend/internal/clients/redis"
	"github.com/hlifeacademy/dna-backend/internal/db"
	"github.com/hlifeacademy/dna-backend/internal/handlers"
	"github.com/hlifeacademy/dna-backend/internal/logger"
	"github.com/hlifeacademy/dna-backend/internal/middleware"
	"github.com/hlifeacademy/dna-backend/internal/observability"
	"github.com/hlifeacademy/dna-backend/internal/repos"
	"github.com/hlifeacademy/dna-backend/internal/server"
	"github.com/hlifeacademy/dna-backend/internal/services"
	"github.com/hlifeacademy/dna-backend/internal/utils"
)

func main() {
	_ = godotenv.Load()

	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	log.Info("Loading environment variables from main...")
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	appBaseURL := utils.GetEnv("APP_BASE_URL", "http://localhost:3000", log)
	accessTokenTTL := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	refreshTokenTTL := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)
	port := utils.GetEnv("PORT", "8080", log)

	// Tracing
	otelShutdown := observability.InitOTel(context.Background(), log, observability.OtelConfig{
		ServiceName: "dna-backend",
		Environment: logMode,
		Version:     os.Getenv("APP_VERSION"),
	})
	if otelShutdown != nil {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = otelShutdown(ctx)
		}()
	}

	// Catalogs
	log.Info("Loading inventories...")
	behavioral, values, err := catalog.Load()
	if err != nil {
		log.Fatal("Invalid inventory catalog", "error", err)
	}

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Fatal("Postgres init failed", "error", err)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Warn("Postgres auto migration failed", "error", err)
	}
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up Repos from main...")
	userRepo := repos.NewUserRepo(thePG, log)
	userTokenRepo := repos.NewUserTokenRepo(thePG, log)
	resetTokenRepo := repos.NewPasswordResetTokenRepo(thePG, log)
	assessmentRepo := repos.NewAssessmentRepo(thePG, log)

	// Redis
	resultCache, err := redis.NewResultCache(log)
	if err != nil {
		log.Warn("Result cache unavailable, continuing without it", "error", err)
		resultCache = nil
	}

	// Services
	log.Info("Setting up Services from main...")
	bucketService, err := services.NewBucketService(log)
	if err != nil {
		log.Warn("Could not init BucketService", "error", err)
	}
	var avatarService services.AvatarService
	if bucketService != nil {
		avatarService, err = services.NewAvatarService(thePG, log, userRepo, bucketService)
		if err != nil {
			log.Warn("Could not init AvatarService", "error", err)
		}
	}
	mailerService := services.NewMailerService(log)
	authService := services.NewAuthService(
		thePG,
		log,
		userRepo,
		userTokenRepo,
		resetTokenRepo,
		avatarService,
		mailerService,
		jwtSecretKey,
		appBaseURL,
		time.Duration(accessTokenTTL)*time.Second,
		time.Duration(refreshTokenTTL)*time.Second,
	)
	userService := services.NewUserService(thePG, log, userRepo, avatarService)
	assessmentService := services.NewAssessmentService(thePG, log, userRepo, assessmentRepo, resultCache, behavioral, values)
	reportService, err := services.NewReportService(log, bucketService)
	if err != nil {
		log.Fatal("Could not init ReportService", "error", err)
	}

	// Handlers
	log.Info("Setting up Handlers from main...")
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	catalogHandler := handlers.NewCatalogHandler(behavioral, values)
	assessmentHandler := handlers.NewAssessmentHandler(assessmentService)
	reportHandler := handlers.NewReportHandler(assessmentService, userService, reportService)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(log, authService)

	// Router
	router := server.NewRouter(server.RouterConfig{
		Log:               log,
		AuthHandler:       authHandler,
		AuthMiddleware:    authMiddleware,
		UserHandler:       userHandler,
		CatalogHandler:    catalogHandler,
		AssessmentHandler: assessmentHandler,
		ReportHandler:     reportHandler,
	})

	log.Info("Starting server...", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Server exited", "error", err)
	}
}
