package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, gateway endpoint,
//   secrets)
// - default: Values common across all environments (timeouts, cache windows)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	Gateway GatewayConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Stripe  StripeConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type GatewayConfig struct {
	BaseURL        string        `envconfig:"GATEWAY_BASE_URL" required:"true"`
	APIKey         string        `envconfig:"GATEWAY_API_KEY" required:"true"`
	RequestTimeout time.Duration `envconfig:"GATEWAY_REQUEST_TIMEOUT" default:"10s"`
	BreakerName    string        `envconfig:"GATEWAY_BREAKER_NAME" default:"loyalty-gateway"`
	CatalogueTTL   time.Duration `envconfig:"GATEWAY_CATALOGUE_TTL" default:"5m"`
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
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

// JWTConfig holds verification settings for tokens issued by the external
// identity service. This service only validates, it never signs.
type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
	Issuer string `envconfig:"JWT_ISSUER" default:"platform-identity"`
}

type StripeConfig struct {
	APIKey string `envconfig:"STRIPE_API_KEY" default:""`
}

func (c *GatewayConfig) ProgramURL(tenantID string) string {
	return fmt.Sprintf("%s/v1/tenants/%s/loyalty-program", c.BaseURL, tenantID)
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
		Gateway: GatewayConfig{
			BaseURL:        "http://localhost:18080",
			APIKey:         "test-key",
			RequestTimeout: 2 * time.Second,
			BreakerName:    "test-gateway",
			CatalogueTTL:   time.Minute,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret: "test-secret",
			Issuer: "platform-identity",
		},
	}
}
