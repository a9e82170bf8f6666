package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:"0.0.0.0:8080"`
	AppName  string `env:"APP_NAME"  envDefault:"CookGen-API"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	Postgres Postgres
	JWT      JWT
	Redis    Redis
	S3       S3

	StoreTimeoutSeconds int `env:"STORE_TIMEOUT_SECONDS" envDefault:"3"`
	BcryptCost          int `env:"BCRYPT_COST"           envDefault:"12"`
}

type Postgres struct {
	Host     string `env:"POSTGRES_HOST"     envDefault:"localhost"`
	Port     string `env:"POSTGRES_PORT"     envDefault:"5432"`
	User     string `env:"POSTGRES_USER"`
	Password string `env:"POSTGRES_PASSWORD"`
	DB       string `env:"POSTGRES_DB"`
}

type JWT struct {
	SecretKey     string `env:"JWT_SECRET_KEY,required"`
	Algorithm     string `env:"JWT_ALGORITHM"      envDefault:"HS256"`
	ExpireMinutes int    `env:"JWT_EXPIRE_MINUTES" envDefault:"30"`
}

type Redis struct {
	Host             string `env:"REDIS_HOST"            envDefault:"localhost"`
	Port             int    `env:"REDIS_PORT"            envDefault:"6379"`
	Password         string `env:"REDIS_PASS"`
	DB               int    `env:"REDIS_DB"              envDefault:"0"`
	RevocationPrefix string `env:"REVOCATION_KEY_PREFIX" envDefault:"revoked_token:"`
}

type S3 struct {
	Region        string `env:"S3_REGION"             envDefault:"us-east-1"`
	Bucket        string `env:"S3_BUCKET"             envDefault:"recipe-images"`
	Endpoint      string `env:"S3_ENDPOINT"`
	AccessKey     string `env:"S3_ACCESS_KEY"`
	SecretKey     string `env:"S3_SECRET_KEY"`
	URLTTLMinutes int    `env:"IMAGE_URL_TTL_MINUTES" envDefault:"15"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse builds a Config from the process environment only.
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ParseInto fills a single config block, such as Postgres, from the environment.
func ParseInto(v any) error {
	if err := env.Parse(v); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func (c *Config) validate() error {
	if c.JWT.SecretKey == "" {
		return errors.New("JWT_SECRET_KEY must not be empty")
	}
	if c.JWT.ExpireMinutes <= 0 {
		return errors.New("JWT_EXPIRE_MINUTES must be positive")
	}
	if c.StoreTimeoutSeconds < 0 {
		return errors.New("STORE_TIMEOUT_SECONDS must not be negative")
	}
	return nil
}

func (p Postgres) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(p.User, p.Password),
		Host:     net.JoinHostPort(p.Host, p.Port),
		Path:     "/" + p.DB,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

func (r Redis) Addr() string {
	return net.JoinHostPort(r.Host, strconv.Itoa(r.Port))
}

func (j JWT) TTL() time.Duration {
	return time.Duration(j.ExpireMinutes) * time.Minute
}

func (s S3) URLTTL() time.Duration {
	return time.Duration(s.URLTTLMinutes) * time.Minute
}

func (c *Config) StoreTimeout() time.Duration {
	return time.Duration(c.StoreTimeoutSeconds) * time.Second
}
