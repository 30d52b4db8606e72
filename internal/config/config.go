package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port     string `mapstructure:"PORT"`
	GinMode  string `mapstructure:"GIN_MODE"`
	LogLevel string `mapstructure:"LOG_LEVEL"`
	// SQLite file holding visitor metrics; ":memory:" keeps them in process.
	DatabasePath string `mapstructure:"DATABASE_PATH"`
	// Contact deep link
	ContactChannelURL     string  `mapstructure:"CONTACT_CHANNEL_URL"`
	ContactRecipient      string  `mapstructure:"CONTACT_RECIPIENT"`
	ContactRateLimitRPS   float64 `mapstructure:"CONTACT_RATE_LIMIT_RPS"`
	ContactRateLimitBurst int     `mapstructure:"CONTACT_RATE_LIMIT_BURST"`
	// Height of the fixed header used by the active-section tracker
	NavHeaderOffset    float64 `mapstructure:"NAV_HEADER_OFFSET"`
	CORSAllowedOrigins string  `mapstructure:"CORS_ALLOWED_ORIGINS"`
	// Proxies whose X-Forwarded-For is believed; empty trusts none
	TrustedProxiesList string `mapstructure:"TRUSTED_PROXIES"`
	// Admin
	AdminUsername  string `mapstructure:"ADMIN_USERNAME"`
	AdminPassword  string `mapstructure:"ADMIN_PASSWORD"`
	AdminJWTSecret string `mapstructure:"ADMIN_JWT_SECRET"`
	// Visitor records older than this are deleted
	VisitorRetention time.Duration `mapstructure:"VISITOR_RETENTION"`
}

var defaults = map[string]any{
	"PORT":                     "8080",
	"GIN_MODE":                 "debug",
	"LOG_LEVEL":                "info",
	"DATABASE_PATH":            "portfolio.db",
	"CONTACT_CHANNEL_URL":      "https://wa.me",
	"CONTACT_RECIPIENT":        "917449112303",
	"CONTACT_RATE_LIMIT_RPS":   1.0,
	"CONTACT_RATE_LIMIT_BURST": 5,
	"NAV_HEADER_OFFSET":        100.0,
	"CORS_ALLOWED_ORIGINS":     "http://localhost:3000",
	"TRUSTED_PROXIES":          "",
	"ADMIN_USERNAME":           "",
	"ADMIN_PASSWORD":           "",
	"ADMIN_JWT_SECRET":         "",
	"VISITOR_RETENTION":        "8760h",
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	// Only present locally; missing file is fine.
	_ = godotenv.Load()
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	for k, val := range defaults {
		v.SetDefault(k, val)
		if err := v.BindEnv(k); err != nil {
			return nil, fmt.Errorf("v.BindEnv(%s): %w", k, err)
		}
	}

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("v.Unmarshal: %w", err)
	}

	cfg.ContactChannelURL = strings.TrimRight(cfg.ContactChannelURL, "/")
	if cfg.VisitorRetention <= 0 {
		return nil, fmt.Errorf("VISITOR_RETENTION must be positive, got %s", cfg.VisitorRetention)
	}
	if cfg.ContactRateLimitRPS <= 0 || cfg.ContactRateLimitBurst <= 0 {
		return nil, fmt.Errorf("contact rate limit must be positive, got %g rps burst %d",
			cfg.ContactRateLimitRPS, cfg.ContactRateLimitBurst)
	}
	if cfg.Release() && cfg.AdminPassword == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD must be set when GIN_MODE is release")
	}
	return cfg, nil
}

// Release reports whether gin runs in release mode.
func (c *Config) Release() bool {
	return c.GinMode == "release"
}

// AllowedOrigins splits CORS_ALLOWED_ORIGINS on commas.
func (c *Config) AllowedOrigins() []string {
	return splitList(c.CORSAllowedOrigins)
}

// TrustedProxies splits TRUSTED_PROXIES on commas. Nil means the client
// address is always the connection's remote address.
func (c *Config) TrustedProxies() []string {
	return splitList(c.TrustedProxiesList)
}

func splitList(raw string) []string {
	var out []string
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
