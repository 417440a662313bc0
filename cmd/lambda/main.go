package main

import (
	"context"
	"log"

	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/joho/godotenv"
	"github.com/maxgala/aspire-provisioner/internal/application/notify"
	"github.com/maxgala/aspire-provisioner/internal/application/picture"
	"github.com/maxgala/aspire-provisioner/internal/application/provision"
	"github.com/maxgala/aspire-provisioner/internal/application/record"
	"github.com/maxgala/aspire-provisioner/internal/config"
	"github.com/maxgala/aspire-provisioner/internal/infrastructure/cognito"
	"github.com/maxgala/aspire-provisioner/internal/infrastructure/dynamo"
	"github.com/maxgala/aspire-provisioner/internal/infrastructure/fetch"
	s3infra "github.com/maxgala/aspire-provisioner/internal/infrastructure/s3"
	sesinfra "github.com/maxgala/aspire-provisioner/internal/infrastructure/ses"
	smtpinfra "github.com/maxgala/aspire-provisioner/internal/infrastructure/smtp"
	snsinfra "github.com/maxgala/aspire-provisioner/internal/infrastructure/sns"
	lambdatransport "github.com/maxgala/aspire-provisioner/internal/transport/lambda"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	// Bootstrap DynamoDB tables (creates them if they don't exist).
	// A no-op against a provisioned environment.
	dynamoClient := dynamo.NewClient(cfg)
	dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTables)

	gate := cognito.NewGate(cognito.NewClient(cfg))
	s3Store := s3infra.NewStore(s3infra.NewClient(cfg), cfg)

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

	deps := provision.ServiceDeps{
		Gate:    gate,
		Records: record.NewService(dynamo.NewUserRepo(dynamoClient, cfg.DynamoTables.Users)),
		Pictures: picture.NewService(picture.ServiceDeps{
			Fetcher:       fetch.New(cfg.FetchTimeout),
			Store:         s3Store,
			Attributes:    gate,
			Quality:       cfg.JPEGQuality,
			DefaultMarker: cfg.DefaultPictureMarker,
		}),
		Notifier: notify.NewService(mailer),
		Audit:    dynamo.NewProvisionRepo(dynamoClient, cfg.DynamoTables.Provisions),
	}

	// Review alerts are optional — graceful fallback when no topic is set.
	if cfg.ReviewTopicARN != "" {
		if alerter, err := snsinfra.NewAlerter(cfg); err == nil {
			deps.Alerts = alerter
		} else {
			log.Printf("WARN: SNS alerter not available: %v", err)
		}
	}

	handler := lambdatransport.NewHandler(provision.NewService(deps))
	awslambda.Start(handler.Handle)
}
