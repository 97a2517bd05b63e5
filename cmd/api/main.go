package main

import (
	"context"
	"log"

	"community-board/config"
	"community-board/internal/aiproxy"
	"community-board/internal/handler"
	"community-board/internal/repository"
	"community-board/internal/server"
	"community-board/internal/services"
	"community-board/pkg/database"
	"community-board/pkg/events"
	"community-board/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()

	l := logger.New(cfg.LogMode)
	logger.SetGlobalLogger(l)
	defer l.Sync()

	// Connect to Database
	db, err := database.Connect(context.Background(), cfg, l)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	passwords, err := services.NewPasswordScheme(cfg.PasswordScheme)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if passwords.Name() == config.PasswordSchemePlaintext {
		l.Warnf("Passwords are stored and compared in plaintext; set PASSWORD_SCHEME=bcrypt to hash them")
	}

	var publisher events.Publisher = events.NopPublisher{}
	var broker *events.RedisBroker
	if cfg.EventsEnabled() {
		broker = events.NewRedisBroker(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		publisher = broker
		l.Infof("Publishing community events to redis %s", cfg.RedisAddr)
	}

	ai, err := aiproxy.New(cfg.AIServiceURL, l)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	questionRepo := repository.NewQuestionRepository(db)

	authService := services.NewAuthService(userRepo, passwords)
	communityService := services.NewCommunityService(questionRepo, publisher, l)

	srv := server.New(cfg, l)
	srv.SetupRoutes(&server.Handlers{
		Auth:      handler.NewAuthHandler(authService, l),
		Community: handler.NewCommunityHandler(communityService, l),
		AI:        ai,
		Health:    database.HealthCheck,
	})
	srv.OnShutdown(database.Disconnect)
	if broker != nil {
		srv.OnShutdown(func(context.Context) error { return broker.Close() })
	}

	if err := srv.Start(); err != nil {
		log.Fatalf("Server stopped with error: %v", err)
	}
}
