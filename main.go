package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-backend/cache"
	"portfolio-backend/chat"
	"portfolio-backend/config"
	_ "portfolio-backend/docs" // Swagger docs
	"portfolio-backend/email"
	"portfolio-backend/handler"
	appLogger "portfolio-backend/logger"
	"portfolio-backend/middleware"
	redisClient "portfolio-backend/redis"
	"portfolio-backend/security"
	"portfolio-backend/wakatime"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Portfolio Backend API
// @version 1.0
// @description Backend for a personal portfolio site: live coding-activity feed, AI chat assistant, contact form, and static content.

// @contact.name Bhanu Nama
// @contact.email bhanunama08@gmail.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Activity
// @tag.description Live coding-activity snapshots aggregated from WakaTime

// @tag.name Content
// @tag.description Static portfolio sections (profile, projects, skills, education)

// @tag.name Chat
// @tag.description AI assistant answering questions about the portfolio owner

// @tag.name Contact
// @tag.description Contact form submission

// @tag.name System
// @tag.description Health checks and system metrics

// @securityDefinitions.apikey AdminKey
// @in header
// @name X-Admin-Key

func main() {
	// Initialize logger
	appLogger.Initialize()

	// Load configuration
	cfg := config.MustLoadConfig()
	log.Info().Msg("Configuration loaded successfully")

	// Initialize Redis client
	rdb := redisClient.NewClient(cfg.Redis)

	// Initialize cache (if enabled)
	var cacheClient *cache.Cache
	if cfg.Cache.Enabled {
		var err error
		cacheClient, err = cache.New(cfg.Cache)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize cache")
		}
	} else {
		log.Info().Msg("Cache disabled in configuration")
	}

	// WakaTime activity client. A missing key is not fatal: the activity
	// endpoints degrade to zero values.
	fetcher := wakatime.NewClient(wakatime.Options{
		APIKey:         os.Getenv(cfg.WakaTime.APIKeyEnv),
		BaseURL:        cfg.WakaTime.BaseURL,
		Editor:         cfg.WakaTime.Editor,
		Project:        cfg.WakaTime.Project,
		HeartbeatLimit: cfg.WakaTime.HeartbeatLimit,
		Timeout:        time.Duration(cfg.WakaTime.RequestTimeout) * time.Second,
		Logger:         log.Logger,
	})

	// Gemini chat client
	chatClient := chat.NewClient(chat.Options{
		APIKey:      os.Getenv(cfg.Chat.APIKeyEnv),
		BaseURL:     cfg.Chat.BaseURL,
		Model:       cfg.Chat.Model,
		Temperature: cfg.Chat.Temperature,
		Timeout:     time.Duration(cfg.Chat.RequestTimeout) * time.Second,
		Logger:      log.Logger,
	})

	// Contact form plumbing
	spamDetector := security.NewSpamDetector(cfg.Contact.SpamEnabled)
	emailService := email.NewService(cfg.Email)

	log.Info().
		Bool("wakatime_configured", fetcher.Configured()).
		Bool("chat_configured", chatClient.Configured()).
		Bool("email_enabled", cfg.Email.Enabled).
		Bool("spam_detection", cfg.Contact.SpamEnabled).
		Msg("Integrations initialized")

	// Create handlers with dependency injection
	activityHandler := handler.NewActivityHandler(fetcher, cacheClient, rdb, cfg)
	contentHandler := handler.NewContentHandler()
	chatHandler := handler.NewChatHandler(chatClient, cacheClient, rdb, cfg)
	contactHandler := handler.NewContactHandler(rdb, cfg, emailService, spamDetector)
	systemHandler := handler.NewSystemHandler(rdb, cacheClient, fetcher, chatClient, cfg)

	// Set up router
	r := mux.NewRouter()

	// Apply global middleware
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	strictLimiter := middleware.NewRateLimiter(cfg.RateLimit.StrictRequestsPerSecond, cfg.RateLimit.StrictBurst)
	adminAuth := middleware.NewAdminAuth(os.Getenv(cfg.Security.AdminAPIKeyEnv), cfg.Security.AdminAuthEnabled)

	r.Use(middleware.CORS)
	r.Use(middleware.RequestLogger)
	r.Use(rateLimiter.Limit)

	// Register routes
	r.HandleFunc("/health", systemHandler.HealthCheck).Methods("GET")
	r.Handle("/cache/metrics", adminAuth.Protect(http.HandlerFunc(systemHandler.CacheMetrics))).Methods("GET")

	r.HandleFunc("/api/activity", activityHandler.GetActivity).Methods("GET")
	r.HandleFunc("/api/activity/history", activityHandler.GetActivityHistory).Methods("GET")
	r.Handle("/api/activity/refresh", adminAuth.Protect(http.HandlerFunc(activityHandler.ForceRefresh))).Methods("POST")

	r.HandleFunc("/api/profile", contentHandler.GetProfile).Methods("GET")
	r.HandleFunc("/api/projects", contentHandler.GetProjects).Methods("GET")
	r.HandleFunc("/api/skills", contentHandler.GetSkills).Methods("GET")
	r.HandleFunc("/api/education", contentHandler.GetEducation).Methods("GET")
	r.HandleFunc("/api/certifications", contentHandler.GetCertifications).Methods("GET")
	r.HandleFunc("/api/qr", contentHandler.GenerateQR).Methods("GET")

	// Chat and contact cost upstream quota and mail, so they get a
	// stricter per-IP budget on top of the global limiter.
	r.Handle("/api/chat", strictLimiter.Limit(http.HandlerFunc(chatHandler.Ask))).Methods("POST")
	r.Handle("/api/contact", strictLimiter.Limit(http.HandlerFunc(contactHandler.SubmitContact))).Methods("POST")

	// Swagger UI
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Start the activity poller; snapshots land in the cache and history.
	pollInterval := time.Duration(cfg.WakaTime.PollIntervalSeconds) * time.Second
	stopPolling := fetcher.StartPolling(activityHandler.RecordSnapshot, pollInterval)
	log.Info().Dur("interval", pollInterval).Msg("Activity polling started")

	// Configure HTTP server
	serverAddress := fmt.Sprintf("%s:%s", cfg.WebServer.IP, cfg.WebServer.Port)
	server := &http.Server{
		Addr:         serverAddress,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.WebServer.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WebServer.WriteTimeout) * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("address", serverAddress).
			Str("scheme", cfg.WebServer.Scheme).
			Msg("Starting server")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.WebServer.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	// Stop the poller
	stopPolling()

	// Close cache
	if cacheClient != nil {
		cacheClient.Close()
	}

	// Close Redis connection
	if err := rdb.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close Redis connection")
	}

	log.Info().Msg("Server stopped gracefully")
}
