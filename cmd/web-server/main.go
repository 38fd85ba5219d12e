package main

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"poemhub/database"
	"poemhub/internal/config"
	"poemhub/internal/webapp/handler"
	"poemhub/internal/webapp/middleware"
	"poemhub/internal/webapp/repository"
	"poemhub/internal/webapp/service"
	"poemhub/internal/webapp/session"
	"poemhub/internal/webapp/templates"
)

func main() {
	// Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := newLogger(cfg)

	// Connect to the database and run migrations
	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// Create repositories
	poemRepo := repository.NewPoemRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	reactionRepo := repository.NewReactionRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	// Create services
	poemService := service.NewPoemService(poemRepo, commentRepo, reactionRepo)
	commentService := service.NewCommentService(commentRepo, poemRepo)
	reactionService := service.NewReactionService(reactionRepo, poemRepo)
	authService := service.NewAuthService(adminRepo)

	// Optional admin bootstrap from env, for deploys where running
	// cmd/admin-cli is awkward
	if cfg.AdminUsername != "" && cfg.AdminPassword != "" {
		_, err := authService.CreateAdmin(cfg.AdminUsername, cfg.AdminPassword)
		switch {
		case errors.Is(err, service.ErrUsernameTaken):
			logger.Info("admin account already provisioned", "username", cfg.AdminUsername)
		case err != nil:
			log.Fatalf("failed to bootstrap admin: %v", err)
		default:
			logger.Info("admin account created", "username", cfg.AdminUsername)
		}
	}

	// Session store: signed cookie by default, Redis when configured
	var store session.Store
	if cfg.RedisURL != "" {
		redisStore, err := session.NewRedisStore(cfg.RedisURL, cfg.RedisPassword, cfg.SessionCookie, cfg.SessionTTL, cfg.IsProduction())
		if err != nil {
			log.Fatalf("failed to connect session store: %v", err)
		}
		store = redisStore
		logger.Info("using Redis session store")
	} else {
		store = session.NewCookieStore(cfg.SessionSecret, cfg.SessionCookie, cfg.SessionTTL, cfg.IsProduction())
		logger.Info("using signed-cookie session store")
	}

	// Setup Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	tmpl, err := templates.Load()
	if err != nil {
		log.Fatalf("failed to parse templates: %v", err)
	}
	r.SetHTMLTemplate(tmpl)

	r.Use(middleware.LoadSession(store))

	r.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	handler.NewPoemHandler(poemService).RegisterRoutes(r)
	handler.NewReactionHandler(reactionService, store).RegisterRoutes(r)
	handler.NewCommentHandler(commentService).RegisterRoutes(r)
	handler.NewAuthHandler(authService, store).RegisterRoutes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("server starting", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(h)
}
