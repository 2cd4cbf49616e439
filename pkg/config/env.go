package config

// EnvPrefix is passed to envconfig; the struct tags already carry the full
// variable names so the prefix stays empty.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

// Environment variable names referenced outside struct tags (error messages
// and tests).
const (
	EnvAppEnv = "LEADHUB_APP_ENV"
	EnvPort   = "LEADHUB_APP_PORT"

	EnvDBDSN  = "LEADHUB_DB_DSN"
	EnvDBHost = "LEADHUB_DB_HOST"
	EnvDBUser = "LEADHUB_DB_USER"
	EnvDBName = "LEADHUB_DB_NAME"

	EnvRedisURL  = "LEADHUB_REDIS_URL"
	EnvJWTSecret = "LEADHUB_JWT_SECRET"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
