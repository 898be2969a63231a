package config

import (
	"fmt"
	"net"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	AppName     string `env:"APP_NAME" envDefault:"Revelia.life"`
	FrontendURL string `env:"FRONTEND_URL" envDefault:"https://example.com"`
	Server      ServerConfig
	Database    DatabaseConfig `envPrefix:"DATABASE_"`
	Audio       AudioConfig    `envPrefix:"AUDIO_"`
	AWSRegion   string         `env:"AWS_REGION" envDefault:"us-east-1"`
}

type ServerConfig struct {
	Port           string        `env:"PORT" envDefault:"8000"`
	Host           string        `env:"HOST" envDefault:"0.0.0.0"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
}

func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// DatabaseConfig may be left empty; the service then runs without storage.
type DatabaseConfig struct {
	URL  string `env:"URL"`
	Name string `env:"NAME"`
}

func (c DatabaseConfig) Configured() bool {
	return c.URL != "" && c.Name != ""
}

// AudioConfig enables uploading raw dream recordings to S3 when Bucket is set.
type AudioConfig struct {
	Bucket string `env:"BUCKET"`
	Prefix string `env:"PREFIX" envDefault:"audio/"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Errorf("load config: %w", err))
	}
	return cfg
}
