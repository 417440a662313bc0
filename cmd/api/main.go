package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/maxgala/aspire-provisioner/internal/application/notify"
	"github.com/maxgala/aspire-provisioner/internal/application/picture"
	"github.com/maxgala/aspire-provisioner/internal/application/provision"
	"github.com/maxgala/aspire-provisioner/internal/application/record"
	"github.com/maxgala/aspire-provisioner/internal/config"
	"github.com/maxgala/aspire-provisioner/internal/infrastructure/cognito"
	"github.com/maxgala/aspire-provisioner/internal/infrastructure/dynamo"
	"github.com/maxgala/aspire-provisioner/internal/infrastructure/fetch"
	jwtinfra "github.com/maxgala/aspire-provisioner/internal/infrastructure/jwt"
	s3infra "github.com/maxgala/aspire-provisioner/internal/infrastructure/s3"
	sesinfra "github.com/maxgala/aspire-provisioner/internal/infrastructure/ses"
	smtpinfra "github.com/maxgala/aspire-provisioner/internal/infrastructure/smtp"
	snsinfra "github.com/maxgala/aspire-provisioner/internal/infrastructure/sns"
	transporthttp "github.com/maxgala/aspire-provisioner/internal/transport/http"
)

// The dev/replay server: runs the same workflow as the Lambda entrypoint
// behind an HTTP trigger, for LocalStack runs and replaying events from logs.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	// Bootstrap DynamoDB tables (creates them if they don't exist).
	dynamoClient := dynamo.NewClient(cfg)
	dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTables)

	gate := cognito.NewGate(cognito.NewClient(cfg))
	s3Store := s3infra.NewStore(s3infra.NewClient(cfg), cfg)
	userRepo := dynamo.NewUserRepo(dynamoClient, cfg.DynamoTables.Users)
	provisionRepo := dynamo.NewProvisionRepo(dynamoClient, cfg.DynamoTables.Provisions)

	var mailer notify.Mailer
	if cfg.EmailProvider == "smtp" {
		mailer = smtpinfra.NewMailer(cfg)
	} else {
		m, err := sesinfra.NewMailer(cfg)
		if err != nil {
			log.Fatalf("SES mailer: %v", err)
		}
		mailer = m
	}

	svcDeps := provision.ServiceDeps{
		Gate:    gate,
		Records: record.NewService(userRepo),
		Pictures: picture.NewService(picture.ServiceDeps{
			Fetcher:       fetch.New(cfg.FetchTimeout),
			Store:         s3Store,
			Attributes:    gate,
			Quality:       cfg.JPEGQuality,
			DefaultMarker: cfg.DefaultPictureMarker,
		}),
		Notifier: notify.NewService(mailer),
		Audit:    provisionRepo,
	}

	if cfg.ReviewTopicARN != "" {
		if alerter, err := snsinfra.NewAlerter(cfg); err == nil {
			svcDeps.Alerts = alerter
		} else {
			log.Printf("WARN: SNS alerter not available: %v", err)
		}
	}

	// JWT provider (optional — graceful fallback if keys are missing).
	var jwtProvider *jwtinfra.Provider
	if p, err := jwtinfra.NewProvider(cfg); err == nil {
		jwtProvider = p
	} else {
		log.Printf("WARN: JWT provider not available, trigger endpoint is unauthenticated: %v", err)
	}

	router := transporthttp.NewRouter(cfg, &transporthttp.Deps{
		Provisioner: provision.NewService(svcDeps),
		Provisions:  provisionRepo,
		Users:       userRepo,
		JWTProvider: jwtProvider,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second, // the trigger waits on fetch/upload/email
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
