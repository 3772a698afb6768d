package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration values
type Config struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	SiteName string `env:"SITE_NAME" envDefault:"Talmyra"`
	SiteURL  string `env:"SITE_URL" envDefault:"http://localhost:8080"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	TrustedProxies     []string `env:"TRUSTED_PROXIES" envSeparator:","`

	SubmitRateLimit float64 `env:"SUBMIT_RATE_LIMIT" envDefault:"1"`
	SubmitRateBurst int     `env:"SUBMIT_RATE_BURST" envDefault:"5"`

	FormBackend FormBackendConfig
}

// FormBackendConfig describes where leads are posted and which field
// identifiers the backend expects.
type FormBackendConfig struct {
	ContactEndpoint string        `env:"CONTACT_FORM_ENDPOINT" envDefault:"https://docs.google.com/forms/u/0/d/e/1FAIpQLSfwG2TpHYO1r_xDOvqq_zGduR5fZO8oNxYCkeScxADd0D28ww/formResponse"`
	WebinarEndpoint string        `env:"WEBINAR_FORM_ENDPOINT" envDefault:"https://docs.google.com/forms/u/0/d/e/1FAIpQLScrKuEDdIfQ4dU2CoDq4O4TT__-uVRczBN9f5huiM-6wHWoSg/formResponse"`
	Timeout         time.Duration `env:"FORM_BACKEND_TIMEOUT" envDefault:"10s"`

	NameField     string `env:"FORM_FIELD_NAME" envDefault:"entry.998475948"`
	CompanyField  string `env:"FORM_FIELD_COMPANY" envDefault:"entry.1297365854"`
	EmailField    string `env:"FORM_FIELD_EMAIL" envDefault:"entry.1963485054"`
	PhoneField    string `env:"FORM_FIELD_PHONE" envDefault:"entry.2112992557"`
	WebsiteField  string `env:"FORM_FIELD_WEBSITE" envDefault:"entry.1022966270"`
	ActionField   string `env:"FORM_FIELD_ACTION" envDefault:"entry.1996826289"`
	JobTitleField string `env:"FORM_FIELD_JOB_TITLE" envDefault:"entry.2112992557"`
	IndustryField string `env:"FORM_FIELD_INDUSTRY" envDefault:"entry.659775968"`
}

// LoadConfig reads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}
	if cfg.Port != "" && cfg.Port[0] == ':' {
		cfg.Port = cfg.Port[1:]
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// IsProduction reports whether the site runs with production defaults
// (release gin mode, JSON logs).
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
