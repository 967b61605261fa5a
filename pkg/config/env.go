package config

const (
	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"

	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvJWTSecret = "JWT_SECRET"
	EnvJWTExpiry = "JWT_EXPIRY"

	EnvSendGridAPIKey = "SENDGRID_API_KEY"
	EnvSenderEmail    = "SENDER_EMAIL"
	EnvFrontendURL    = "FRONTEND_URL"

	EnvTermiiAPIKey   = "TERMII_API_KEY"
	EnvTermiiSenderID = "TERMII_SENDER_ID"
	EnvBusinessPhone  = "BUSINESS_PHONE"

	EnvCORSOrigins = "CORS_ORIGINS"

	EnvRateLimitRequests = "RATE_LIMIT_REQUESTS"
	EnvRateLimitWindow   = "RATE_LIMIT_WINDOW"
	EnvMaxRequestSize    = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
)
