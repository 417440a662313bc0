package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort string
	AppEnv  string

	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string

	DynamoTables DynamoTables
	S3BucketName string

	// UserPoolID is only used by the dev replay server; the Lambda trigger
	// carries the pool id on every event.
	UserPoolID string

	SourceEmail   string
	EmailProvider string // "ses" | "smtp"
	SMTPHost      string
	SMTPPort      string
	SMTPUsername  string
	SMTPPassword  string

	SNSRegion      string
	ReviewTopicARN string // empty disables review alerts

	JPEGQuality          int
	DefaultPictureMarker string
	FetchTimeout         time.Duration

	JWTPrivateKeyPath string
	JWTPublicKeyPath  string
	JWTExpiry         time.Duration

	AllowedOrigins []string // CORS allowed origins
}

// DynamoTables holds the DynamoDB table name for each entity.
type DynamoTables struct {
	Users      string
	Provisions string
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort: getEnv("APP_PORT", "3000"),
		AppEnv:  getEnv("APP_ENV", "development"),

		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),

		DynamoTables: DynamoTables{
			Users:      getEnv("DYNAMO_TABLE_USERS", "aspire_users"),
			Provisions: getEnv("DYNAMO_TABLE_PROVISIONS", "aspire_provisions"),
		},
		S3BucketName: getEnv("S3_BUCKET_NAME", "aspire-user-assets"),

		UserPoolID: getEnv("COGNITO_USER_POOL_ID", ""),

		SourceEmail:   getEnv("SOURCE_EMAIL", "aspire@maxgala.com"),
		EmailProvider: getEnv("EMAIL_PROVIDER", "ses"),
		SMTPHost:      getEnv("SMTP_HOST", "localhost"),
		SMTPPort:      getEnv("SMTP_PORT", "1025"),
		SMTPUsername:  getEnv("SMTP_USERNAME", ""),
		SMTPPassword:  getEnv("SMTP_PASSWORD", ""),

		SNSRegion:      getEnv("SNS_REGION", "us-east-1"),
		ReviewTopicARN: getEnv("REVIEW_TOPIC_ARN", ""),

		JPEGQuality:          getEnvInt("JPEG_QUALITY", 25),
		DefaultPictureMarker: getEnv("DEFAULT_PICTURE_MARKER", "default-profile"),
		FetchTimeout:         time.Duration(getEnvInt("FETCH_TIMEOUT_SECONDS", 15)) * time.Second,

		JWTPrivateKeyPath: getEnv("JWT_PRIVATE_KEY_PATH", "./private_key.pem"),
		JWTPublicKeyPath:  getEnv("JWT_PUBLIC_KEY_PATH", "./public_key.pem"),
		JWTExpiry:         time.Duration(getEnvInt("JWT_EXPIRY_HOURS", 24)) * time.Hour,

		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
