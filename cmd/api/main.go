// cmd/api/main.go
// Main entry point for the application
// This file bootstraps all components and starts the server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lovelinkapp/lovelink-backend/internal/auth"
	"github.com/lovelinkapp/lovelink-backend/internal/chat"
	"github.com/lovelinkapp/lovelink-backend/internal/common/database"
	"github.com/lovelinkapp/lovelink-backend/internal/common/utils"
	"github.com/lovelinkapp/lovelink-backend/internal/config"
	"github.com/lovelinkapp/lovelink-backend/internal/discover"
	"github.com/lovelinkapp/lovelink-backend/internal/loverequest"
	"github.com/lovelinkapp/lovelink-backend/internal/match"
	"github.com/lovelinkapp/lovelink-backend/internal/notification"
	"github.com/lovelinkapp/lovelink-backend/internal/profile"
	"github.com/lovelinkapp/lovelink-backend/internal/reaction"
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	log.Println("========================================")
	log.Println("🚀 Starting LoveLink Dating API")
	log.Println("========================================")

	// 1. Load environment variables
	log.Println("📁 Step 1: Loading .env file...")
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️  No .env file found (%v), using environment variables", err)
	} else {
		log.Println("✅ .env file loaded")
	}

	// 2. Load and validate configuration
	log.Println("📋 Step 2: Loading configuration...")
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal("❌ Configuration validation failed: ", err)
	}
	log.Println("✅ Configuration is valid")

	// 3. Connect to PostgreSQL
	log.Println("🗄️  Step 3: Connecting to PostgreSQL...")
	db, err := database.NewPostgresDBFromURL(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("❌ Failed to connect to PostgreSQL: ", err)
	}
	defer db.Close()
	log.Println("✅ Connected to PostgreSQL")

	// 4. Connect to Redis (optional, like counts fall back to the DB)
	log.Println("📮 Step 4: Connecting to Redis...")
	redisClient, err := database.NewRedisClientFromURL(cfg.RedisURL)
	if err != nil {
		log.Printf("⚠️  Redis unavailable (%v), continuing without cache", err)
		redisClient = nil
	} else {
		defer redisClient.Close()
		log.Println("✅ Connected to Redis")
	}

	// 5. Run database migrations
	log.Println("🔨 Step 5: Running database migrations...")
	if err := runMigrations(db); err != nil {
		log.Fatal("❌ Failed to run migrations: ", err)
	}
	log.Println("✅ Database migrations completed")

	// 6. Notification providers
	log.Println("📬 Step 6: Initializing notification providers...")
	notificationRepo := notification.NewPostgresRepository(db)

	var emailService notification.EmailService
	var emailErr error
	switch cfg.EmailProvider {
	case "sendgrid":
		emailService, emailErr = notification.NewSendGridEmailService(cfg.SendGridAPIKey, cfg.EmailFrom, "LoveLink")
	case "smtp":
		emailService, emailErr = notification.NewSMTPEmailService(notification.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.EmailFrom,
		})
	default:
		emailService = notification.NewMockEmailService()
	}
	if emailErr != nil {
		log.Printf("⚠️  Email provider %q unavailable (%v), using mock", cfg.EmailProvider, emailErr)
		emailService = notification.NewMockEmailService()
	}
	if !cfg.EnableEmailNotifications {
		emailService = nil
	}

	var smsService notification.SMSService
	if cfg.EnableSMSNotifications {
		if cfg.SMSProvider == "twilio" {
			smsService, err = notification.NewTwilioSMSService(
				cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber)
			if err != nil {
				log.Printf("⚠️  Twilio unavailable (%v), using mock", err)
				smsService = notification.NewMockSMSService()
			}
		} else {
			smsService = notification.NewMockSMSService()
		}
	}

	var pushService notification.PushService
	if cfg.EnablePush {
		pushService, err = notification.NewFCMPushService(context.Background(), cfg.FirebaseCredentialsPath)
		if err != nil {
			log.Printf("⚠️  FCM unavailable (%v), using mock", err)
			pushService = notification.NewMockPushService()
		}
	}

	dispatcher := notification.NewDispatcher(notificationRepo, pushService, emailService, smsService)
	log.Println("✅ Notification providers ready")

	// 7. Realtime hub
	log.Println("🔌 Step 7: Starting websocket hub...")
	hub := chat.NewHub(dispatcher.Dispatch)
	go hub.Run()
	log.Println("✅ Websocket hub running")

	// 8. Wire the modules
	log.Println("🧩 Step 8: Wiring modules...")

	authRepo := auth.NewPostgresRepository(db)
	authService := auth.NewService(authRepo, &auth.Config{
		JWTSecret:          cfg.JWTSecret,
		BCryptCost:         cfg.BCryptCost,
		AccessTokenExpiry:  cfg.AccessTokenExpiry,
		RefreshTokenExpiry: cfg.RefreshTokenExpiry,
	})
	authMiddleware := auth.NewMiddleware(authService)
	authHandler := auth.NewHandler(authService)

	var uploadService profile.UploadService
	if cfg.UseS3 {
		uploadService, err = profile.NewS3UploadService(cfg.S3Bucket, cfg.AWSRegion)
		if err != nil {
			log.Fatal("❌ Failed to initialize S3 upload service: ", err)
		}
	} else {
		uploadService = profile.NewLocalUploadService(cfg.LocalUploadDir, cfg.BaseURL+"/uploads")
	}

	profileRepo := profile.NewPostgresRepository(db)
	profileService := profile.NewService(profileRepo, uploadService, cfg.MaxAvatarSizeBytes)
	profileHandler := profile.NewHandler(profileService, cfg.MaxAvatarSizeBytes)

	discoverRepo := discover.NewPostgresRepository(db)
	discoverService := discover.NewService(discoverRepo)
	discoverHandler := discover.NewHandler(discoverService)

	var reactionCache *reaction.Cache
	if redisClient != nil {
		reactionCache = reaction.NewCache(redisClient)
	}
	ownerOf := func(ctx context.Context, profileID int64) (int64, error) {
		p, err := profileRepo.GetByID(ctx, profileID)
		if err != nil {
			return 0, err
		}
		return p.UserID, nil
	}
	reactionRepo := reaction.NewPostgresRepository(db)
	reactionService := reaction.NewService(reactionRepo, reactionCache, ownerOf)
	reactionHandler := reaction.NewHandler(reactionService)

	loveRequestRepo := loverequest.NewPostgresRepository(db)
	loveRequestService := loverequest.NewService(loveRequestRepo, hub)
	loveRequestHandler := loverequest.NewHandler(loveRequestService)

	matchRepo := match.NewPostgresRepository(db)
	matchService := match.NewService(matchRepo)
	matchHandler := match.NewHandler(matchService)

	chatRepo := chat.NewPostgresRepository(db)
	chatService := chat.NewService(chatRepo, chat.Config{
		FreeMessageLimit:   cfg.FreeMessageLimit,
		QuotaWarnRemaining: cfg.QuotaWarnRemaining,
	}, hub, profileService.IsPremium)
	chatHandler := chat.NewHandler(chatService, hub)

	notificationHandler := notification.NewHandler(notificationRepo)
	log.Println("✅ Modules wired")

	// 9. Routes
	log.Println("🛣️  Step 9: Registering routes...")
	router := mux.NewRouter()

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.RespondWithData(w, http.StatusOK, map[string]interface{}{
			"status":      "ok",
			"connections": hub.GetActiveConnections(),
		})
	}).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	auth.RegisterRoutes(router, authHandler)
	profile.RegisterRoutes(router, profileHandler, authMiddleware)
	discover.RegisterRoutes(router, discoverHandler, authMiddleware)
	reaction.RegisterRoutes(router, reactionHandler, authMiddleware)
	loverequest.RegisterRoutes(router, loveRequestHandler, authMiddleware)
	match.RegisterRoutes(router, matchHandler, authMiddleware)
	chat.RegisterRoutes(router, chatHandler, authMiddleware)
	notification.RegisterRoutes(router, notificationHandler, authMiddleware)

	if !cfg.UseS3 {
		router.PathPrefix("/uploads/").Handler(
			http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.LocalUploadDir))))
	}
	log.Println("✅ Routes registered")

	// 10. Start the server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("🌐 Server listening on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("❌ Server failed: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("⚠️  Shutdown signal received...")

	hub.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("❌ Forced shutdown: ", err)
	}

	log.Println("👋 Server stopped cleanly")
}
