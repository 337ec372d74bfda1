package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"donation-service/configs"
	"donation-service/notifications"
	"donation-service/repositories"
	"donation-service/routes"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	cfg, err := configs.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger first
	configs.InitLogger(cfg.LogLevel, cfg.LogFormat)
	logger := configs.LogWithContext("donation-api", "startup")

	logger.Info("Starting donation service initialization")

	mongoClient, err := connectMongoDB(cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize database")
	}

	publisher, redisClient, err := connectEvents(cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize event publisher")
	}

	db := configs.GetDatabase(mongoClient, cfg.MongoURI)
	handler := routes.NewHandler(routes.Dependencies{
		Donations: repositories.NewDonationRepository(db),
		Feedback:  repositories.NewFeedbackRepository(db),
		Contacts:  repositories.NewContactRepository(db),
		Publisher: publisher,
		Ping: func(ctx context.Context) error {
			return mongoClient.Ping(ctx, nil)
		},
	})
	logger.Info("API routes registered")

	// Create server with timeouts
	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.WithField("port", cfg.Port).Infof("Server is running on http://localhost:%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close Redis client")
		}
	}
	if err := configs.DisconnectDB(ctx, mongoClient); err != nil {
		logger.WithError(err).Error("Failed to close MongoDB connection")
	}
	logger.Info("Server shutdown complete")
}

func connectMongoDB(cfg configs.Config, logger *logrus.Entry) (*mongo.Client, error) {
	start := time.Now()
	client, err := configs.ConnectDB(cfg.MongoURI, cfg.ConnectTimeout)
	if err != nil {
		logger.WithError(err).WithField("duration", time.Since(start)).Error("MongoDB connection failed")
		return nil, fmt.Errorf("mongodb connection failed: %w", err)
	}
	logger.WithField("duration", time.Since(start)).Info("MongoDB connected successfully")
	return client, nil
}

// connectEvents returns a Redis backed publisher when REDIS_URL is set and a no-op one otherwise.
func connectEvents(cfg configs.Config, logger *logrus.Entry) (notifications.Publisher, *redis.Client, error) {
	if !cfg.EventsEnabled() {
		logger.Info("REDIS_URL not set, event publication disabled")
		return notifications.NopPublisher{}, nil, nil
	}

	start := time.Now()
	client, err := configs.ConnectRedis(cfg.RedisURL, cfg.ConnectTimeout)
	if err != nil {
		logger.WithError(err).WithField("duration", time.Since(start)).Error("Redis connection failed")
		return nil, nil, fmt.Errorf("redis connection failed: %w", err)
	}
	logger.WithField("channel", cfg.NotificationChannel).Info("Redis connected successfully")
	return notifications.NewRedisPublisher(client, cfg.NotificationChannel), client, nil
}
