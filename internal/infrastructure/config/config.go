package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the service configuration. Every key can be overridden through the environment
// with dots replaced by underscores (http.addr -> HTTP_ADDR, postgres.dsn -> POSTGRES_DSN).
type Config struct {
	App struct {
		Env string
	} `mapstructure:"app"`

	Log struct {
		Level string
	} `mapstructure:"log"`

	HTTP struct {
		Addr string
	} `mapstructure:"http"`

	CORS struct {
		AllowedOrigins []string `mapstructure:"allowed_origins"`
	} `mapstructure:"cors"`

	JWT struct {
		Secret string
	} `mapstructure:"jwt"`

	AWS struct {
		Region          string
		AccessKeyID     string `mapstructure:"access_key_id"`
		SecretAccessKey string `mapstructure:"secret_access_key"`
	} `mapstructure:"aws"`

	DynamoDB struct {
		Endpoint string
	} `mapstructure:"dynamodb"`

	Tables Tables `mapstructure:"tables"`

	Postgres struct {
		DSN         string
		AutoMigrate bool `mapstructure:"auto_migrate"`
	} `mapstructure:"postgres"`

	Redis struct {
		Addr      string
		TotalsTTL time.Duration `mapstructure:"totals_ttl"`
	} `mapstructure:"redis"`

	Pricing struct {
		TaxRate     float64 `mapstructure:"tax_rate"`
		MaxAttempts int     `mapstructure:"max_attempts"`
	} `mapstructure:"pricing"`

	Payments struct {
		MercadoPagoAccessToken string `mapstructure:"mercadopago_access_token"`
		Mock                   bool
		// Sandbox payer used when a test-token checkout carries no payer email.
		TestPayerEmail  string `mapstructure:"test_payer_email"`
		TestPayerUserID string `mapstructure:"test_payer_user_id"`
		// How long a checkout holds a quote while the gateway decides.
		ClaimTTL time.Duration `mapstructure:"claim_ttl"`
	} `mapstructure:"payments"`

	Metrics struct {
		Enabled bool
	} `mapstructure:"metrics"`
}

// Tables holds the DynamoDB table names.
type Tables struct {
	Quotes         string
	LineItems      string `mapstructure:"line_items"`
	Certifications string
	Adjustments    string
	Totals         string
	Payments       string
}

var defaults = map[string]any{
	"app.env":                           "production",
	"log.level":                         "info",
	"http.addr":                         ":8080",
	"cors.allowed_origins":              []string{},
	"jwt.secret":                        "",
	"aws.region":                        "us-east-1",
	"aws.access_key_id":                 "local",
	"aws.secret_access_key":             "local",
	"dynamodb.endpoint":                 "",
	"tables.quotes":                     "quotes",
	"tables.line_items":                 "quote_line_items",
	"tables.certifications":             "quote_certifications",
	"tables.adjustments":                "quote_adjustments",
	"tables.totals":                     "quote_totals",
	"tables.payments":                   "payments",
	"postgres.dsn":                      "",
	"postgres.auto_migrate":             false,
	"redis.addr":                        "",
	"redis.totals_ttl":                  10 * time.Minute,
	"pricing.tax_rate":                  0.05,
	"pricing.max_attempts":              3,
	"payments.mercadopago_access_token": "",
	"payments.mock":                     false,
	"payments.test_payer_email":         "",
	"payments.test_payer_user_id":       "",
	"payments.claim_ttl":                15 * time.Minute,
	"metrics.enabled":                   true,
}

var ErrMissingJWTSecret = errors.New("jwt.secret (JWT_SECRET) is required")

// Load reads path (optional, YAML) and the environment. An empty path or a missing file
// leaves defaults and environment only.
func Load(path string) (Config, error) {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if _, statErr := os.Stat(path); statErr == nil {
				return Config{}, err
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	// AutomaticEnv does not split comma separated lists for slices.
	if raw := os.Getenv("CORS_ALLOWED_ORIGINS"); raw != "" {
		c.CORS.AllowedOrigins = splitList(raw)
	}
	if c.Pricing.MaxAttempts < 1 {
		c.Pricing.MaxAttempts = 1
	}
	return c, nil
}

// Validate checks the settings the API cannot start without.
func (c Config) Validate() error {
	if strings.TrimSpace(c.JWT.Secret) == "" {
		return ErrMissingJWTSecret
	}
	return nil
}

func (c Config) IsDev() bool {
	return c.App.Env == "dev" || c.App.Env == "development"
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
