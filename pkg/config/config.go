package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	CORS          CORSConfig
	FeatureFlags  FeatureFlagsConfig
	Seed          SeedConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"LEADHUB_APP_ENV" required:"true"`
	Port         string `envconfig:"LEADHUB_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"LEADHUB_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"LEADHUB_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"LEADHUB_DB_DSN"`
	Driver string `envconfig:"LEADHUB_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"LEADHUB_DB_HOST"`
	LegacyPort     int    `envconfig:"LEADHUB_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"LEADHUB_DB_USER"`
	LegacyPassword string `envconfig:"LEADHUB_DB_PASSWORD"`
	LegacyName     string `envconfig:"LEADHUB_DB_NAME"`
	LegacySSLMode  string `envconfig:"LEADHUB_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"LEADHUB_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"LEADHUB_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"LEADHUB_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"LEADHUB_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"LEADHUB_REDIS_URL"`
	Address      string        `envconfig:"LEADHUB_REDIS_ADDR"`
	Password     string        `envconfig:"LEADHUB_REDIS_PASSWORD"`
	DB           int           `envconfig:"LEADHUB_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"LEADHUB_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"LEADHUB_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"LEADHUB_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"LEADHUB_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"LEADHUB_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Configured reports whether any Redis endpoint was provided. Rate limiting
// is skipped entirely when it returns false.
func (r RedisConfig) Configured() bool {
	return r.URL != "" || r.Address != ""
}

type JWTConfig struct {
	Secret            string `envconfig:"LEADHUB_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"LEADHUB_JWT_ISSUER" default:"leadhub"`
	ExpirationMinutes int    `envconfig:"LEADHUB_JWT_EXPIRATION_MINUTES" default:"1440"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"LEADHUB_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"LEADHUB_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"LEADHUB_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"LEADHUB_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"LEADHUB_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"LEADHUB_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"LEADHUB_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"LEADHUB_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"LEADHUB_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"LEADHUB_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"LEADHUB_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"LEADHUB_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"LEADHUB_AUTO_MIGRATE" default:"false"`
}

type SeedConfig struct {
	UserEmail    string `envconfig:"LEADHUB_SEED_USER_EMAIL" default:"test@example.com"`
	UserPassword string `envconfig:"LEADHUB_SEED_USER_PASSWORD" default:"password123"`
	LeadCount    int    `envconfig:"LEADHUB_SEED_LEAD_COUNT" default:"120"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
