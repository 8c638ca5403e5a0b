package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config contains runtime settings for the search server and CLI
type Config struct {
	LogLevel    string
	Host        string   // default 0.0.0.0
	Port        string   // default PORT env or 8080
	CORSOrigins []string // frontend origins allowed to call the API

	Cache struct {
		MaxSize   int
		TTL       time.Duration
		PurgeSpec string // cron spec for dropping expired entries
	}

	Seek struct {
		Enabled   bool
		BaseURL   string
		UserAgent string
		Timeout   time.Duration
	}

	JobSpy struct {
		URL      string
		APIKey   string
		Sites    []string
		HoursOld int
		Proxies  []string
		Timeout  time.Duration
	}

	Adzuna struct {
		AppID   string
		AppKey  string
		Timeout time.Duration
	}

	VocabularyFile string // optional YAML with synonyms and stop words

	Sheets struct {
		CredentialsPath string
	}
}

// Load populates config from environment variables, reading .env first if present
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		LogLevel:    "info",
		Host:        "0.0.0.0",
		Port:        "8080",
		CORSOrigins: []string{"http://localhost:3000", "http://127.0.0.1:3000"},
	}
	cfg.Cache.MaxSize = 100
	cfg.Cache.TTL = time.Hour
	cfg.Cache.PurgeSpec = "@every 10m"
	cfg.Seek.Enabled = true
	cfg.Seek.Timeout = 20 * time.Second
	cfg.JobSpy.Timeout = 60 * time.Second
	cfg.Adzuna.Timeout = 20 * time.Second

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if v := os.Getenv("HTTP_HOST"); v != "" {
		cfg.Host = v
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}

	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.CORSOrigins = splitList(v)
	}

	var invalid []string

	parseInt := func(name string, dst *int) {
		if v := os.Getenv(name); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				invalid = append(invalid, name)
				return
			}
			*dst = n
		}
	}
	parseDuration := func(name string, dst *time.Duration) {
		if v := os.Getenv(name); v != "" {
			d, err := time.ParseDuration(v)
			if err != nil || d <= 0 {
				invalid = append(invalid, name)
				return
			}
			*dst = d
		}
	}
	parseBool := func(name string, dst *bool) {
		if v := os.Getenv(name); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				invalid = append(invalid, name)
				return
			}
			*dst = b
		}
	}

	parseInt("CACHE_MAX_SIZE", &cfg.Cache.MaxSize)
	parseDuration("CACHE_TTL", &cfg.Cache.TTL)
	if v := os.Getenv("CACHE_PURGE_SPEC"); v != "" {
		cfg.Cache.PurgeSpec = v
	}

	parseBool("SEEK_ENABLED", &cfg.Seek.Enabled)
	cfg.Seek.BaseURL = os.Getenv("SEEK_BASE_URL")
	cfg.Seek.UserAgent = os.Getenv("SEEK_USER_AGENT")
	parseDuration("SEEK_TIMEOUT", &cfg.Seek.Timeout)

	cfg.JobSpy.URL = os.Getenv("JOBSPY_URL")
	cfg.JobSpy.APIKey = os.Getenv("JOBSPY_API_KEY")
	if v := os.Getenv("JOBSPY_SITES"); v != "" {
		cfg.JobSpy.Sites = splitList(v)
	}
	parseInt("JOBSPY_HOURS_OLD", &cfg.JobSpy.HoursOld)
	if v := os.Getenv("JOBSPY_PROXIES"); v != "" {
		cfg.JobSpy.Proxies = splitList(v)
	}
	parseDuration("JOBSPY_TIMEOUT", &cfg.JobSpy.Timeout)

	cfg.Adzuna.AppID = os.Getenv("ADZUNA_APP_ID")
	cfg.Adzuna.AppKey = os.Getenv("ADZUNA_APP_KEY")
	parseDuration("ADZUNA_TIMEOUT", &cfg.Adzuna.Timeout)

	cfg.VocabularyFile = os.Getenv("VOCABULARY_FILE")
	cfg.Sheets.CredentialsPath = os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH")

	if len(invalid) > 0 {
		return cfg, fmt.Errorf("invalid values for environment variables: %s", strings.Join(invalid, ", "))
	}

	if !cfg.Seek.Enabled && cfg.JobSpy.URL == "" && !cfg.AdzunaEnabled() {
		return cfg, fmt.Errorf("no job source configured: set JOBSPY_URL, ADZUNA_APP_ID/ADZUNA_APP_KEY or SEEK_ENABLED=true")
	}

	return cfg, nil
}

// AdzunaEnabled reports whether both Adzuna credentials are set
func (c Config) AdzunaEnabled() bool {
	return c.Adzuna.AppID != "" && c.Adzuna.AppKey != ""
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
