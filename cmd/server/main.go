package main

import (
	"context"   // Redis ping and health checks
	"net/http"  // HTTP server
	"os"        // Signals
	"os/signal" // Graceful shutdown
	"syscall"   // SIGTERM
	"time"      // Shutdown timeout

	"employee_management/internal/api"      // HTTP handlers and routes
	"employee_management/internal/config"   // Configuration
	"employee_management/internal/db"       // Database connection, migration and seed
	"employee_management/internal/security" // Password hashing
	"employee_management/internal/service"  // Core operations
	"employee_management/internal/session"  // Session manager and stores
	"employee_management/internal/store"    // Repositories

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration
	config.SetupLogger(cfg)    // Setup logger
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}

	// Connect to the database, create the schema and the bootstrap administrator
	gdb, err := db.Open(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		logrus.Fatalf("failed to migrate: %v", err)
	}
	if err := db.SeedAdmin(gdb, cfg.SeedAdminEmail); err != nil {
		logrus.Fatalf("failed to seed: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		logrus.Fatalf("failed to get DB handle: %v", err)
	}

	// Sessions live in Redis when it is configured, in process otherwise
	var sessionStore session.Store
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
		sessionStore = session.NewRedisStore(redisClient)
	} else {
		logrus.Warn("REDIS_ADDR not set, sessions are kept in process")
		sessionStore = session.NewMemoryStore()
	}
	sessions := session.NewManager(sessionStore, session.Config{
		Secret:      cfg.JWTSecret,
		Issuer:      cfg.JWTIssuer,
		TTL:         cfg.SessionTTL,
		IdleTimeout: cfg.SessionIdleTimeout,
	})

	hasher, err := security.NewHasher(security.Scheme(cfg.PasswordHash))
	if err != nil {
		logrus.Fatalf("failed to set up password hashing: %v", err)
	}
	logrus.WithField("scheme", hasher.Scheme()).Info("Password hashing configured")
	svc, err := service.New(store.NewUserRepository(gdb), store.NewLeaveRepository(gdb), hasher, sessions)
	if err != nil {
		logrus.Fatalf("failed to set up services: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}
	router, err := api.NewRouter(svc, sessions, api.RouterConfig{
		Cookie:         api.CookieSettings{Name: cfg.CookieName, Secure: cfg.CookieSecure},
		CORSOrigins:    cfg.CORSOrigins,
		TrustedProxies: []string{"127.0.0.1"},
		Health:         sqlDB.PingContext,
	})
	if err != nil {
		logrus.Fatalf("failed to set up router: %v", err)
	}

	srv := &http.Server{Addr: ":" + cfg.AppPort, Handler: router, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		logrus.Info("Server running on " + cfg.AppPort) // Log server start
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("shutdown: %v", err)
	}
	_ = sqlDB.Close()
}
