package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"teamup.backend/internal/config"
	"teamup.backend/internal/infrastructure/repositories"
	"teamup.backend/internal/interfaces/http/handlers"
	"teamup.backend/internal/interfaces/http/middleware"
	"teamup.backend/internal/usecases"
	"teamup.backend/pkg/jwt"
	"teamup.backend/pkg/logger"
	"teamup.backend/pkg/redis"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	logger.Init(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := redis.Init(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.Database.URL(),
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		logger.Warn(context.Background(), "Database not available, endpoints will return errors", zap.Error(err))
	}

	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	teamRepo := repositories.NewTeamRepository(db)
	membershipRepo := repositories.NewMembershipRepository(db)
	invitationRepo := repositories.NewInvitationRepository(db)
	uow := repositories.NewUnitOfWork(db)

	sessionStore, err := redis.NewSessionStore(cfg.Security.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	// Usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService)
	teamUsecase := usecases.NewTeamUsecase(teamRepo, membershipRepo, invitationRepo, uow)
	membershipUsecase := usecases.NewMembershipUsecase(membershipRepo)
	invitationUsecase := usecases.NewInvitationUsecase(invitationRepo, membershipRepo, teamRepo, uow)

	// Handlers
	authHandler := handlers.NewAuthHandler(authUsecase, sessionStore)
	teamHandler := handlers.NewTeamHandler(teamUsecase)
	membershipHandler := handlers.NewMembershipHandler(membershipUsecase)
	invitationHandler := handlers.NewInvitationHandler(invitationUsecase)

	authMiddleware := middleware.AuthMiddleware(jwtService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:       authHandler,
		teamHandler:       teamHandler,
		membershipHandler: membershipHandler,
		invitationHandler: invitationHandler,
		authMiddleware:    authMiddleware,
	})

	logger.Info(context.Background(), "Server starting", zap.String("port", cfg.Server.Port))
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
