package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"minifeed/internal/handler"
	"minifeed/internal/middleware"
	"minifeed/internal/pkg"
	"minifeed/internal/repository/db"
	rrepo "minifeed/internal/repository/redis"
	"minifeed/internal/router"
	"minifeed/internal/service"
	"minifeed/internal/view"
	"minifeed/pkg/config"
	"minifeed/pkg/logging"
	"minifeed/pkg/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logging.InitLogger(&cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logging.GetLogger().Sync()

	logger := logging.GetLogger()
	logger.Info("Starting minifeed", zap.String("driver", cfg.Database.Driver))
	if cfg.Session.PasswordScheme == "sha256" {
		logger.Warn("Passwords are stored as unsalted SHA-256; set MINIFEED_PASSWORD_SCHEME=bcrypt")
	}

	telemetryShutdown, err := telemetry.Init(&cfg.Telemetry)
	if err != nil {
		logger.Fatal("Failed to initialize telemetry", zap.Error(err))
	}
	defer telemetryShutdown()
	counters, err := telemetry.NewCounters()
	if err != nil {
		logger.Fatal("Failed to create counters", zap.Error(err))
	}

	// 数据库：建表后再对外服务
	gdb, err := db.Open(&cfg.Database, cfg.Logging.Level)
	if err != nil {
		logger.Fatal("Failed to open database", zap.Error(err))
	}
	defer db.Close(gdb)
	if err := db.Migrate(context.Background(), gdb); err != nil {
		logger.Fatal("Failed to migrate schema", zap.Error(err))
	}

	checks := map[string]handler.HealthCheck{
		"database": func(ctx context.Context) error { return db.Health(ctx, gdb) },
	}

	var registry service.SessionRegistry
	if cfg.Redis.Enabled {
		client, err := rrepo.New(cfg.Redis.URL)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer client.Close()
		sessions := &rrepo.SessionRepository{Client: client}
		registry = sessions
		checks["redis"] = sessions.Health
		logger.Info("Session registry enabled")
	}

	var events pkg.Publisher = pkg.NopPublisher{}
	if cfg.Kafka.Enabled {
		events = pkg.NewKafkaProducer(pkg.KafkaConfig{Brokers: cfg.Kafka.Brokers, Topic: cfg.Kafka.Topic})
		logger.Info("Activity stream enabled", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))
	}
	defer events.Close()

	hasher, err := pkg.NewHasher(cfg.Session.PasswordScheme)
	if err != nil {
		logger.Fatal("Failed to create password hasher", zap.Error(err))
	}
	renderer, err := view.New()
	if err != nil {
		logger.Fatal("Failed to parse templates", zap.Error(err))
	}

	userRepo := &db.UserRepository{DB: gdb}
	postRepo := &db.PostRepository{DB: gdb}
	commentRepo := &db.CommentRepository{DB: gdb}
	reactionRepo := &db.ReactionRepository{DB: gdb}
	signer := pkg.NewSessionSigner(cfg.Session.Secret, cfg.Session.TTL)

	if cfg.Server.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := router.InitRouter(router.Services{
		Users:     service.NewUserService(userRepo, hasher, events, counters),
		Sessions:  service.NewSessionService(signer, registry, userRepo),
		Posts:     service.NewPostService(postRepo, events, counters),
		Comments:  service.NewCommentService(commentRepo, events, counters),
		Reactions: service.NewReactionService(reactionRepo, events, counters),
		Feed:      service.NewFeedService(postRepo, commentRepo, reactionRepo),
		Cookie: middleware.SessionCookie{
			Name:   cfg.Session.CookieName,
			Secure: cfg.Session.CookieSecure,
		},
		Renderer:       renderer,
		HealthChecks:   checks,
		MetricsEnabled: cfg.Telemetry.MetricsEnabled,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("Server starting", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
