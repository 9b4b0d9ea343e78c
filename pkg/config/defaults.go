package config

import "time"

const (
	DefaultPort      = "8080"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	DefaultRecipeAPIBaseURL  = "https://www.themealdb.com/api/json/v1/1"
	DefaultProfileAPIBaseURL = "https://api.github.com"
	DefaultUpstreamTimeout   = 10 * time.Second

	// one gacha spin draws ten meals
	DefaultGachaDraws       = 10
	DefaultGachaMaxDraws    = 25
	DefaultGachaConcurrency = 5

	DefaultRequestTimeout = 30 * time.Second

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 45 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	// per client address; 0 disables limiting
	DefaultRateLimitRequests = 60
	DefaultRateLimitWindow   = time.Minute

	// key by X-Forwarded-For only behind a proxy that overwrites it
	DefaultRateLimitTrustProxy = false

	DefaultKafkaTopic                = "recipes.events"
	DefaultKafkaProducerCompression  = "snappy"
	DefaultKafkaProducerRequireAcks  = -1
	DefaultKafkaProducerMaxAttempts  = 3
	DefaultKafkaProducerBatchTimeout = 10 * time.Millisecond
)
