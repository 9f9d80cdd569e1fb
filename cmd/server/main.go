package main

import (
	"database/sql"
	"net/http"
	"os"
	"time"

	_ "github.com/lib/pq"

	"conferencecentral/config"
	"conferencecentral/internal/adapters/auth"
	"conferencecentral/internal/adapters/cache"
	"conferencecentral/internal/adapters/email"
	httpdelivery "conferencecentral/internal/delivery/http"
	"conferencecentral/internal/delivery/http/controllers"
	"conferencecentral/internal/delivery/http/middleware"
	"conferencecentral/internal/domain"
	"conferencecentral/internal/repository/postgres"
	"conferencecentral/internal/services"
)

const serviceTimeout = 5 * time.Second

func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config", "err", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("ping database", "err", err)
		os.Exit(1)
	}

	conferenceRepo := postgres.NewConferenceRepository(db)
	speakerRepo := postgres.NewSpeakerRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	profileRepo := postgres.NewProfileRepository(db)

	noticeCache := cache.NewNoticeCache(cfg.FeaturedTTL)

	var verifier domain.TokenVerifier
	switch cfg.AuthProvider {
	case "jwt":
		verifier = auth.NewJWTVerifier(cfg.JWTSecret)
	default:
		verifier = auth.NewTokenInfoVerifier(&http.Client{Timeout: 10 * time.Second}, cfg.TokenInfoURL)
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretKey,
		},
	}, logger)
	if err != nil {
		logger.Error("create mailer", "err", err)
		os.Exit(1)
	}
	emailService := services.NewEmailService(mailer)

	conferenceService := services.NewConferenceService(conferenceRepo, serviceTimeout)
	sessionService := services.NewSessionService(conferenceRepo, speakerRepo, sessionRepo, profileRepo, noticeCache, emailService, logger, serviceTimeout)
	speakerService := services.NewSpeakerService(speakerRepo, serviceTimeout)
	wishlistService := services.NewWishlistService(profileRepo, sessionRepo, serviceTimeout)

	router := httpdelivery.NewRouter(
		controllers.NewConferenceController(logger, conferenceService),
		controllers.NewSessionController(logger, sessionService),
		controllers.NewSpeakerController(logger, speakerService),
		controllers.NewWishlistController(logger, wishlistService),
	)

	handler := middleware.Logging(logger,
		middleware.CORS(cfg.AllowedOrigins,
			middleware.Authenticate(verifier, logger)(router)))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}
	logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
