package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

// EnvPrefix prefixes every environment override, e.g. SIGNUP_API_BASE_URL.
const EnvPrefix = "SIGNUP_"

type Config struct {
	Frontend Frontend `yaml:"frontend" envPrefix:"FRONTEND_"`
	API      API      `yaml:"api" envPrefix:"API_"`
	GitHub   GitHub   `yaml:"github" envPrefix:"GITHUB_"`
	Log      Log      `yaml:"log" envPrefix:"LOG_"`
	Backend  Backend  `yaml:"backend" envPrefix:"BACKEND_"`
}

type Frontend struct {
	Port          string        `yaml:"port" env:"PORT" validate:"required"`
	SecureCookies bool          `yaml:"secure_cookies" env:"SECURE_COOKIES"`
	ReadTimeout   time.Duration `yaml:"read_timeout" env:"READ_TIMEOUT" validate:"gt=0"`
	WriteTimeout  time.Duration `yaml:"write_timeout" env:"WRITE_TIMEOUT" validate:"gt=0"`
}

// API points the front-end at the registration API.
type API struct {
	BaseURL string        `yaml:"base_url" env:"BASE_URL" validate:"required,url"`
	Timeout time.Duration `yaml:"timeout" env:"TIMEOUT" validate:"gt=0"`
}

type GitHub struct {
	ClientID string `yaml:"client_id" env:"CLIENT_ID" validate:"required"` // public, not a secret
}

type Log struct {
	Level string `yaml:"level" env:"LEVEL" validate:"oneof=debug info warn warning error"`
	JSON  bool   `yaml:"json" env:"JSON"`
}

type Backend struct {
	Port           string   `yaml:"port" env:"PORT" validate:"required"`
	Store          string   `yaml:"store" env:"STORE" validate:"oneof=memory postgres"`
	AllowedOrigins []string `yaml:"allowed_origins" env:"ALLOWED_ORIGINS"`
	BcryptCost     int      `yaml:"bcrypt_cost" env:"BCRYPT_COST" validate:"min=4,max=31"`
	Pg             Pg       `yaml:"pg" envPrefix:"PG_"`
}

type Pg struct {
	Host     string `yaml:"host" env:"HOST"`
	Port     int    `yaml:"port" env:"PORT"`
	User     string `yaml:"user" env:"USER"`
	Password string `yaml:"password" env:"PASSWORD"`
	Dbname   string `yaml:"dbname" env:"DBNAME"`
}

// Default returns a configuration that runs both services locally.
func Default() *Config {
	return &Config{
		Frontend: Frontend{
			Port:         "8081",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		API: API{
			BaseURL: "http://localhost:8080",
			Timeout: 10 * time.Second,
		},
		GitHub: GitHub{ClientID: "49c1e1c6471b3eb9af6d"},
		Log:    Log{Level: "info"},
		Backend: Backend{
			Port:           "8080",
			Store:          "memory",
			AllowedOrigins: []string{"http://localhost:8081"},
			BcryptCost:     10,
			Pg:             Pg{Host: "localhost", Port: 5432, User: "signup", Dbname: "signup"},
		},
	}
}

// Load builds the config from defaults, then the YAML file at path (skipped
// when path is empty), then SIGNUP_* environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("unmarshal config file: %w", err)
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic("can't load config: " + err.Error())
	}
	return cfg
}

func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Backend.Store == "postgres" && (c.Backend.Pg.Host == "" || c.Backend.Pg.Dbname == "") {
		return errors.New("invalid config: postgres store needs backend.pg.host and backend.pg.dbname")
	}
	return nil
}
