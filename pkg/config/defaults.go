package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "beautybar"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultJWTExpiry = 24 * time.Hour

	DefaultSenderEmail = "noreply@beautybar609.com"
	DefaultFrontendURL = "https://beautybar609.com"

	DefaultTermiiSenderID = "talert"
	DefaultBusinessPhone  = "08058578131"

	DefaultCORSOrigins = "*"

	// Password-reset requests per source address per window.
	DefaultRateLimitRequests = 3
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultMaxRequestSize = 10 * 1024 * 1024 // generous: gallery uploads travel inline

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
)
