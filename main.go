package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Lumora-KR/rps-server/internal/api"
	"github.com/Lumora-KR/rps-server/internal/cache"
	"github.com/Lumora-KR/rps-server/internal/config"
	"github.com/Lumora-KR/rps-server/internal/db"
	"github.com/Lumora-KR/rps-server/internal/email"
	"github.com/Lumora-KR/rps-server/internal/logger"
	"github.com/Lumora-KR/rps-server/internal/storage"
)

func main() {
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	gdb, err := db.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer func() {
		if err := db.Close(gdb); err != nil {
			log.Error().Err(err).Msg("Error closing database")
		}
	}()

	// Redis is optional; without it dashboard responses are simply not cached.
	var responseCache *cache.Cache
	if cfg.RedisAddr != "" {
		redisClient, err := cache.Connect(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Warn().Err(err).Msg("Redis unavailable, dashboard caching disabled")
		} else {
			responseCache = cache.New(redisClient, cfg.CacheTTL)
			defer func() {
				if err := cache.Disconnect(redisClient); err != nil {
					log.Error().Err(err).Msg("Error disconnecting from Redis")
				}
			}()
		}
	}

	compositeSender := email.NewCompositeSender(email.NewSMTPSender(cfg))
	if cfg.LogEmailsPath != "" {
		fileSender, err := email.NewFileSender(cfg.LogEmailsPath)
		if err != nil {
			log.Warn().Err(err).Str("path", cfg.LogEmailsPath).Msg("Failed to initialize file email log")
		} else {
			compositeSender.AddSender(fileSender)
		}
	}
	mailer := email.NewMailer(cfg, compositeSender)

	var store storage.Storage
	var disk *storage.DiskStorage
	if cfg.AwsS3Bucket != "" {
		store, err = storage.NewS3Storage(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize S3 storage")
		}
		log.Info().Str("bucket", cfg.AwsS3Bucket).Msg("Using S3 upload storage")
	} else {
		disk, err = storage.NewDiskStorage(cfg.UploadDir)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize upload storage")
		}
		store = disk
	}

	router := api.SetupRouter(cfg, gdb, mailer, store, disk, responseCache)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Server running")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Forced shutdown")
	}
	log.Info().Msg("Server exited")
}
