package config

import (
	"fmt"
	"os"
	"path"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	HttpPort       int           `yaml:"http_port" env:"HTTP_PORT" validate:"required"`
	LogLevel       string        `yaml:"log_level" env:"LOG_LEVEL"`
	LogJSON        bool          `yaml:"log_json" env:"LOG_JSON"`
	JwtTTL         time.Duration `yaml:"jwt_ttl" validate:"required"`
	SecureCookies  bool          `yaml:"secure_cookies"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
	ThreadCacheTTL time.Duration `yaml:"thread_cache_ttl" env:"THREAD_CACHE_TTL"` // zero disables the redis cache
}

type Private struct {
	Pg     Pg     `yaml:"pg"`
	Redis  Redis  `yaml:"redis"`
	JwtKey string `yaml:"jwt_key" env:"JWT_KEY" validate:"required"`
}

type Pg struct {
	Host     string `yaml:"host" env:"PG_HOST" validate:"required"`
	Port     int    `yaml:"port" env:"PG_PORT" validate:"required"`
	User     string `yaml:"user" env:"PG_USER" validate:"required"`
	Password string `yaml:"password" env:"PG_PASSWORD"`
	Dbname   string `yaml:"dbname" env:"PG_DBNAME" validate:"required"`
}

type Redis struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB"`
}

func (c *Config) JwtKey() string {
	return c.Private.JwtKey
}

func (c *Config) JwtTTL() time.Duration {
	return c.Public.JwtTTL
}

// CacheEnabled reports whether thread headers should be cached in redis.
func (c *Config) CacheEnabled() bool {
	return c.Private.Redis.Addr != "" && c.Public.ThreadCacheTTL > 0
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file")
	}
}

// MustLoad reads public.yaml and private.yaml from configFolder, overlays
// environment variables and validates the result. It panics on any failure.
func MustLoad(configFolder string) *Config {
	var cfg Config
	mustLoadPath(path.Join(configFolder, "public.yaml"), &cfg.Public)
	mustLoadPath(path.Join(configFolder, "private.yaml"), &cfg.Private)

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		panic(fmt.Sprintf("can't read config from environment: %v", err))
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(&cfg); err != nil {
		panic(fmt.Sprintf("invalid config: %v", err))
	}
	return &cfg
}
