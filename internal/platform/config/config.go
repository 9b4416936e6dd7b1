package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-yaml/yaml"
)

// Config se lee una vez al arrancar: archivo YAML opcional (CONFIG_FILE) y
// luego variables de entorno, que pisan al archivo.
type Config struct {
	Server   Server   `yaml:"server"`
	Database Database `yaml:"database"`
	Redis    Redis    `yaml:"redis"`
	Auth     Auth     `yaml:"auth"`
	Log      Log      `yaml:"log"`
}

type Server struct {
	Port         string        `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"readTimeout"`
	WriteTimeout time.Duration `yaml:"writeTimeout"`
}

type Database struct {
	// DSN vacío => storage in-memory
	DSN     string `yaml:"dsn"`
	Migrate bool   `yaml:"migrate"`
}

type Redis struct {
	// URL vacía => sin publicación de eventos a Redis
	URL    string `yaml:"url"`
	Stream string `yaml:"stream"`
}

type Auth struct {
	// BaseURL vacía => modo dev (X-Debug-User-ID)
	BaseURL      string        `yaml:"baseURL"`
	APIKey       string        `yaml:"apiKey"`
	APIKeyHeader string        `yaml:"apiKeyHeader"`
	Timeout      time.Duration `yaml:"timeout"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	App    string `yaml:"app"`
}

func Defaults() Config {
	return Config{
		Server: Server{
			Port:         "8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Database: Database{Migrate: true},
		Redis:    Redis{Stream: "passport-events"},
		Auth:     Auth{APIKeyHeader: "X-Api-Key", Timeout: 5 * time.Second},
		Log:      Log{Level: "info", Format: "text", App: "rescue-passport"},
	}
}

// Load arma la configuración. path vacío => solo defaults + env.
func Load(path string) (Config, error) {
	cfg := Defaults()

	if strings.TrimSpace(path) != "" {
		f, err := os.Open(path)
		if err != nil {
			return Config{}, fmt.Errorf("open config file: %w", err)
		}
		defer f.Close()

		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("decode config file: %w", err)
		}
	}

	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FromEnv es Load con el archivo indicado en CONFIG_FILE.
func FromEnv() (Config, error) {
	return Load(os.Getenv("CONFIG_FILE"))
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}

	str("PORT", &cfg.Server.Port)
	str("DB_DSN", &cfg.Database.DSN)
	str("REDIS_URL", &cfg.Redis.URL)
	str("REDIS_STREAM", &cfg.Redis.Stream)
	str("AUTH_BASE_URL", &cfg.Auth.BaseURL)
	str("AUTH_API_KEY", &cfg.Auth.APIKey)
	str("AUTH_API_KEY_HEADER", &cfg.Auth.APIKeyHeader)
	str("LOG_LEVEL", &cfg.Log.Level)
	str("LOG_FORMAT", &cfg.Log.Format)
	str("APP_NAME", &cfg.Log.App)

	if v, ok := lookup("DB_MIGRATE"); ok && strings.TrimSpace(v) != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("DB_MIGRATE: %w", err)
		}
		cfg.Database.Migrate = b
	}

	if v, ok := lookup("AUTH_TIMEOUT"); ok && strings.TrimSpace(v) != "" {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("AUTH_TIMEOUT: %w", err)
		}
		cfg.Auth.Timeout = d
	}

	return nil
}

func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Server.Port, ":")
}
