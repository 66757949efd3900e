package config

import (
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// LoggingAdapter configures a single log output adapter
type LoggingAdapter struct {
	Name    string                 `yaml:"name"`
	Type    string                 `yaml:"type"`
	Enabled bool                   `yaml:"enabled"`
	Options map[string]interface{} `yaml:"options"`
}

// Config represents the application configuration
type Config struct {
	Server struct {
		Port         int           `yaml:"port" default:"8080"`
		Host         string        `yaml:"host" default:"0.0.0.0"`
		ReadTimeout  time.Duration `yaml:"read_timeout" default:"30s"`
		WriteTimeout time.Duration `yaml:"write_timeout" default:"30s"`
		IdleTimeout  time.Duration `yaml:"idle_timeout" default:"60s"`
	} `yaml:"server"`

	JobSource struct {
		URL       string        `yaml:"url"`
		UserAgent string        `yaml:"user_agent" default:"Talexu-JobSearch/1.0"`
		MaxJobs   int           `yaml:"max_jobs" default:"150"`
		Timeout   time.Duration `yaml:"timeout" default:"120s"`
		RateLimit int           `yaml:"rate_limit" default:"30"` // requests per minute
		Burst     int           `yaml:"burst" default:"5"`
	} `yaml:"job_source"`

	Storage struct {
		Backend string `yaml:"backend" default:"redis"` // redis or memory
	} `yaml:"storage"`

	Redis struct {
		URL      string        `yaml:"url" default:"redis://localhost:6379"`
		Password string        `yaml:"password"`
		DB       int           `yaml:"db" default:"0"`
		Timeout  time.Duration `yaml:"timeout" default:"5s"`
	} `yaml:"redis"`

	LLM struct {
		Provider    string        `yaml:"provider" default:"claude"`
		APIKey      string        `yaml:"api_key"`
		Model       string        `yaml:"model" default:"claude-3-haiku-20240307"`
		MaxTokens   int           `yaml:"max_tokens" default:"4096"`
		Temperature float32       `yaml:"temperature" default:"0.7"`
		Timeout     time.Duration `yaml:"timeout" default:"60s"`
	} `yaml:"llm"`

	Retention struct {
		Enabled  bool          `yaml:"enabled" default:"false"`
		Schedule string        `yaml:"schedule" default:"@every 1h"`
		MaxAge   time.Duration `yaml:"max_age" default:"168h"`
	} `yaml:"retention"`

	Logging struct {
		Level    string           `yaml:"level" default:"info"`
		Format   string           `yaml:"format" default:"json"`
		Adapters []LoggingAdapter `yaml:"adapters"`
	} `yaml:"logging"`
}

// expandEnvVars expands environment variables in a string using ${VAR} or $VAR syntax
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	s = re.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	re2 := regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
	s = re2.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[1:]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	return s
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	config := &Config{}

	// Set defaults
	config.Server.Port = 8080
	config.Server.Host = "0.0.0.0"
	config.Server.ReadTimeout = 30 * time.Second
	config.Server.WriteTimeout = 30 * time.Second
	config.Server.IdleTimeout = 60 * time.Second

	config.JobSource.UserAgent = "Talexu-JobSearch/1.0"
	config.JobSource.MaxJobs = 150
	config.JobSource.Timeout = 120 * time.Second
	config.JobSource.RateLimit = 30
	config.JobSource.Burst = 5

	config.Storage.Backend = "redis"

	config.Redis.URL = "redis://localhost:6379"
	config.Redis.DB = 0
	config.Redis.Timeout = 5 * time.Second

	config.LLM.Provider = "claude"
	config.LLM.Model = "claude-3-haiku-20240307"
	config.LLM.MaxTokens = 4096
	config.LLM.Temperature = 0.7
	config.LLM.Timeout = 60 * time.Second

	config.Retention.Schedule = "@every 1h"
	config.Retention.MaxAge = 7 * 24 * time.Hour

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	// Load from YAML file if it exists
	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			yamlContent := expandEnvVars(string(data))

			if err := yaml.Unmarshal([]byte(yamlContent), config); err != nil {
				return nil, err
			}
		}
	}

	config.loadFromEnv()

	return config, nil
}

// loadFromEnv loads configuration overrides from environment variables
func (c *Config) loadFromEnv() {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}

	if host := os.Getenv("HOST"); host != "" {
		c.Server.Host = host
	}

	if scraperURL := os.Getenv("JOB_SCRAPER_URL"); scraperURL != "" {
		c.JobSource.URL = scraperURL
	}

	if userAgent := os.Getenv("JOB_SCRAPER_USER_AGENT"); userAgent != "" {
		c.JobSource.UserAgent = userAgent
	}

	if maxJobs := os.Getenv("JOB_SCRAPER_MAX_JOBS"); maxJobs != "" {
		if n, err := strconv.Atoi(maxJobs); err == nil {
			c.JobSource.MaxJobs = n
		}
	}

	if timeout := os.Getenv("JOB_SCRAPER_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.JobSource.Timeout = d
		}
	}

	if backend := os.Getenv("STORAGE_BACKEND"); backend != "" {
		c.Storage.Backend = backend
	}

	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		c.Redis.URL = redisURL
	}

	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		c.Redis.Password = redisPassword
	}

	if redisDB := os.Getenv("REDIS_DB"); redisDB != "" {
		if db, err := strconv.Atoi(redisDB); err == nil {
			c.Redis.DB = db
		}
	}

	if apiKey := os.Getenv("LLM_API_KEY"); apiKey != "" {
		c.LLM.APIKey = apiKey
	}

	if provider := os.Getenv("LLM_PROVIDER"); provider != "" {
		c.LLM.Provider = provider
	}

	if model := os.Getenv("LLM_MODEL"); model != "" {
		c.LLM.Model = model
	}

	if enabled := os.Getenv("RETENTION_ENABLED"); enabled != "" {
		c.Retention.Enabled = enabled == "true" || enabled == "1"
	}

	if maxAge := os.Getenv("RETENTION_MAX_AGE"); maxAge != "" {
		if d, err := time.ParseDuration(maxAge); err == nil {
			c.Retention.MaxAge = d
		}
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}

	if logFormat := os.Getenv("LOG_FORMAT"); logFormat != "" {
		c.Logging.Format = logFormat
	}
}
