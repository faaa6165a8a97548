package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderSMTP   = "smtp"
	ProviderResend = "resend"
)

type Config struct {
	ServerPort    string
	Environment   string
	StaticDir     string
	BusinessEmail string
	// Email transport
	EmailProvider string
	EmailUser     string
	EmailPass     string
	SMTPHost      string
	SMTPPort      int
	ResendAPIKey  string
	EmailFrom     string
	EmailFromName string
	EmailTestMode bool // When true, emails are logged instead of sent
	// Other
	AllowedOrigins   []string
	CarouselInterval time.Duration
	// DotEnvLoaded reports whether a .env file was found at startup
	DotEnvLoaded bool
}

// Load reads configuration from the environment, loading a .env file first when
// one is present. An unparsable SMTP_PORT falls back to its default; an
// unparsable CAROUSEL_INTERVAL becomes zero so that Validate rejects it.
func Load() *Config {
	// Ignore error if not present - use system env vars
	dotEnvLoaded := godotenv.Load() == nil

	emailUser := getEnv("EMAIL_USER", "")

	return &Config{
		ServerPort:       getEnv("PORT", "5000"),
		Environment:      getEnv("ENVIRONMENT", "development"),
		StaticDir:        getEnv("STATIC_DIR", "public"),
		BusinessEmail:    getEnv("BUSINESS_EMAIL", "info@purebizlaundry.com"),
		EmailProvider:    strings.ToLower(getEnv("EMAIL_PROVIDER", ProviderSMTP)),
		EmailUser:        emailUser,
		EmailPass:        getEnv("EMAIL_PASS", ""),
		SMTPHost:         getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:         getEnvInt("SMTP_PORT", 587),
		ResendAPIKey:     getEnv("RESEND_API_KEY", ""),
		EmailFrom:        getEnv("EMAIL_FROM", emailUser),
		EmailFromName:    getEnv("EMAIL_FROM_NAME", "PureBiz Laundry Services"),
		EmailTestMode:    getEnvBool("EMAIL_TEST_MODE", true), // Default true for safety
		AllowedOrigins:   splitList(getEnv("ALLOWED_ORIGINS", "*")),
		CarouselInterval: getEnvDuration("CAROUSEL_INTERVAL", 5*time.Second),
		DotEnvLoaded:     dotEnvLoaded,
	}
}

// IsProduction reports whether the server runs in the production environment
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Validate checks that the configuration can start a server
func (c *Config) Validate() error {
	if c.ServerPort == "" {
		return errors.New("PORT must not be empty")
	}
	if c.BusinessEmail == "" {
		return errors.New("BUSINESS_EMAIL must not be empty")
	}
	if c.CarouselInterval <= 0 {
		return fmt.Errorf("CAROUSEL_INTERVAL must be positive, got %s", c.CarouselInterval)
	}

	switch c.EmailProvider {
	case ProviderSMTP, ProviderResend:
	default:
		return fmt.Errorf("unknown EMAIL_PROVIDER %q (expected %q or %q)", c.EmailProvider, ProviderSMTP, ProviderResend)
	}

	// Test mode never reaches a provider
	if c.EmailTestMode {
		return nil
	}

	if c.EmailFrom == "" {
		return errors.New("EMAIL_FROM or EMAIL_USER must be set when EMAIL_TEST_MODE is off")
	}

	switch c.EmailProvider {
	case ProviderSMTP:
		if c.EmailUser == "" || c.EmailPass == "" {
			return errors.New("EMAIL_USER and EMAIL_PASS must be set for the smtp provider")
		}
		if c.SMTPHost == "" || c.SMTPPort <= 0 {
			return errors.New("SMTP_HOST and SMTP_PORT must be set for the smtp provider")
		}
	case ProviderResend:
		if c.ResendAPIKey == "" {
			return errors.New("RESEND_API_KEY not configured")
		}
	}

	return nil
}

// FromAddress returns the sender in "Name <address>" form
func (c *Config) FromAddress() string {
	if c.EmailFromName == "" {
		return c.EmailFrom
	}
	return fmt.Sprintf("%s <%s>", c.EmailFromName, c.EmailFrom)
}

func getEnv(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return 0 // rejected by Validate
	}
	return d
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
