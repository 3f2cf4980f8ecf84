package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ntmai/folio-api/adapters/event"
	httpAdapter "github.com/ntmai/folio-api/adapters/http"
	"github.com/ntmai/folio-api/adapters/persistence"
	authUC "github.com/ntmai/folio-api/internal/application/usecase/auth"
	expUC "github.com/ntmai/folio-api/internal/application/usecase/experience"
	profileUC "github.com/ntmai/folio-api/internal/application/usecase/profile"
	projectUC "github.com/ntmai/folio-api/internal/application/usecase/project"
	"github.com/ntmai/folio-api/internal/config"
	"github.com/ntmai/folio-api/pkg/auth"
	"github.com/ntmai/folio-api/pkg/logger"
	"github.com/ntmai/folio-api/pkg/tracing"
)

func main() {
	fmt.Println("Start Folio API Server...")

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	// Initialize dependencies
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		appLogger.Fatal("cannot init Kafka", err)
	}
	defer kafkaClient.Close()

	if cfg.Jaeger.OTLPEndpoint != "" {
		tp, err := tracing.NewTracerProvider(cfg, appLogger, "folio-api")
		if err != nil {
			appLogger.Fatal("cannot init tracing", err)
		}
		defer tp.Shutdown(context.Background())
	}

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool)
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	projectRepo := persistence.NewPostgresProjectRepo(dbPool, appLogger)
	experienceRepo := persistence.NewPostgresExperienceRepo(dbPool, appLogger)
	tokenStore := persistence.NewRedisTokenStore(redisClient)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)

	// Use Cases
	registerUseCase := authUC.NewRegisterUseCase(userRepo, jwtSvc, appLogger)
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, appLogger)
	logoutUseCase := authUC.NewLogoutUseCase(tokenStore, appLogger)
	profileUseCase := profileUC.NewProfileUseCase(profileRepo, projectRepo, experienceRepo, kafkaClient, appLogger)
	createProjectUseCase := projectUC.NewCreateProjectUseCase(projectRepo, kafkaClient, appLogger)
	updateProjectUseCase := projectUC.NewUpdateProjectUseCase(projectRepo, kafkaClient, appLogger)
	deleteProjectUseCase := projectUC.NewDeleteProjectUseCase(projectRepo, kafkaClient, appLogger)
	listProjectsUseCase := projectUC.NewListProjectsUseCase(projectRepo, appLogger)
	createExperienceUseCase := expUC.NewCreateExperienceUseCase(experienceRepo, kafkaClient, appLogger)
	updateExperienceUseCase := expUC.NewUpdateExperienceUseCase(experienceRepo, kafkaClient, appLogger)
	deleteExperienceUseCase := expUC.NewDeleteExperienceUseCase(experienceRepo, kafkaClient, appLogger)
	listExperiencesUseCase := expUC.NewListExperiencesUseCase(experienceRepo, appLogger)

	// HTTP Handlers
	authHandler := httpAdapter.NewAuthHandler(registerUseCase, loginUseCase, logoutUseCase)
	profileHandler := httpAdapter.NewProfileHandler(profileUseCase, appLogger)
	projectHandler := httpAdapter.NewProjectHandler(
		createProjectUseCase,
		updateProjectUseCase,
		deleteProjectUseCase,
		listProjectsUseCase,
		appLogger,
	)
	experienceHandler := httpAdapter.NewExperienceHandler(
		createExperienceUseCase,
		updateExperienceUseCase,
		deleteExperienceUseCase,
		listExperiencesUseCase,
		appLogger,
	)

	// Middleware
	authMiddleware := httpAdapter.AuthMiddleware(jwtSvc, tokenStore, appLogger)
	errorMiddleware := httpAdapter.ErrorMiddleware(appLogger)

	// Setup Gin router
	router := gin.Default()
	router.Use(errorMiddleware)
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := router.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
		}

		private := api.Group("/")
		private.Use(authMiddleware)
		{
			private.POST("/auth/logout", authHandler.Logout)

			private.GET("/profile", profileHandler.GetAggregate)
			private.PUT("/profile/bio", profileHandler.UpsertBio)

			projects := private.Group("/projects")
			{
				projects.GET("", projectHandler.ListProjects)
				projects.POST("", projectHandler.CreateProject)
				projects.PUT("/:id", projectHandler.UpdateProject)
				projects.DELETE("/:id", projectHandler.DeleteProject)
			}

			experiences := private.Group("/experiences")
			{
				experiences.GET("", experienceHandler.ListExperiences)
				experiences.POST("", experienceHandler.CreateExperience)
				experiences.PUT("/:id", experienceHandler.UpdateExperience)
				experiences.DELETE("/:id", experienceHandler.DeleteExperience)
			}
		}

		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })
	}

	appLogger.Info("Server running on port " + cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("Cannot run server", err)
	}
}
