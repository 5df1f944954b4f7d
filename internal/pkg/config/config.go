package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, provider keys)
// - default: Values common across all environments (timezone, timeouts, retry policy)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Redis   RedisConfig
	Cache   CacheConfig
	Billing BillingConfig
	Payment PaymentConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"America/Argentina/Buenos_Aires"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Argentina/Buenos_Aires"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-10800"` // -3*60*60
}

// Operator tokens are issued by the account service; this service only validates them.
type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
	Issuer string `envconfig:"JWT_ISSUER" default:"parking-accounts"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type CacheConfig struct {
	TariffTTL time.Duration `envconfig:"TARIFF_CACHE_TTL" default:"5m"`
	KeyPrefix string        `envconfig:"CACHE_KEY_PREFIX" default:"parking"`
}

type BillingConfig struct {
	FallbackHourlyRateCents int64  `envconfig:"FALLBACK_HOURLY_RATE_CENTS" default:"20000"`
	Currency                string `envconfig:"CURRENCY" default:"ars"`
}

type PaymentConfig struct {
	StripeSecretKey     string        `envconfig:"STRIPE_SECRET_KEY" required:"true"`
	SuccessURL          string        `envconfig:"PAYMENT_SUCCESS_URL" default:"http://localhost:3000/exits/paid"`
	CancelURL           string        `envconfig:"PAYMENT_CANCEL_URL" default:"http://localhost:3000/exits/canceled"`
	ConfirmationTimeout time.Duration `envconfig:"PAYMENT_CONFIRMATION_TIMEOUT" default:"15m"`
	CreateRetries       int           `envconfig:"PAYMENT_CREATE_RETRIES" default:"3"`
	RetryBackoff        time.Duration `envconfig:"PAYMENT_RETRY_BACKOFF" default:"200ms"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret: "test-secret-key-for-operator-tokens",
			Issuer: "parking-accounts",
		},
		Redis: RedisConfig{
			Addr: "localhost:16379",
		},
		Cache: CacheConfig{
			TariffTTL: time.Minute,
			KeyPrefix: "parking-test",
		},
		Billing: BillingConfig{
			FallbackHourlyRateCents: 20000,
			Currency:                "ars",
		},
		Payment: PaymentConfig{
			StripeSecretKey:     "sk_test_dummy",
			SuccessURL:          "http://localhost/paid",
			CancelURL:           "http://localhost/canceled",
			ConfirmationTimeout: 15 * time.Minute,
			CreateRetries:       2,
			RetryBackoff:        time.Millisecond,
		},
	}
}
