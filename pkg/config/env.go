package config

const (
	EnvPort      = "PORT"
	EnvLogLevel  = "LOG_LEVEL"
	EnvLogFormat = "LOG_FORMAT"

	EnvRecipeAPIBaseURL  = "RECIPE_API_BASE_URL"
	EnvProfileAPIBaseURL = "PROFILE_API_BASE_URL"
	EnvProfileAPIToken   = "PROFILE_API_TOKEN"
	EnvUpstreamTimeout   = "UPSTREAM_TIMEOUT"

	EnvGachaDraws       = "GACHA_DRAWS"
	EnvGachaMaxDraws    = "GACHA_MAX_DRAWS"
	EnvGachaConcurrency = "GACHA_CONCURRENCY"

	EnvRequestTimeout = "REQUEST_TIMEOUT"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvRateLimitRequests   = "RATE_LIMIT_REQUESTS"
	EnvRateLimitWindow     = "RATE_LIMIT_WINDOW"
	EnvRateLimitTrustProxy = "RATE_LIMIT_TRUST_PROXY"

	EnvKafkaBrokers              = "KAFKA_BROKERS"
	EnvKafkaTopic                = "KAFKA_TOPIC"
	EnvKafkaProducerCompression  = "KAFKA_PRODUCER_COMPRESSION"
	EnvKafkaProducerRequireAcks  = "KAFKA_PRODUCER_REQUIRE_ACKS"
	EnvKafkaProducerMaxAttempts  = "KAFKA_PRODUCER_MAX_ATTEMPTS"
	EnvKafkaProducerBatchTimeout = "KAFKA_PRODUCER_BATCH_TIMEOUT"
)
