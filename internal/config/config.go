package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type JWTConfig struct {
	Secret   string `yaml:"secret"`
	Issuer   string `yaml:"issuer"`
	Audience string `yaml:"audience"`
}

type CatalogConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type VerificationConfig struct {
	RegistrationTTLMinutes int `yaml:"registration_ttl_minutes"`
	RecoveryTTLMinutes     int `yaml:"recovery_ttl_minutes"`
}

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`
	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUser     string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
	} `yaml:"email"`
	JWT          JWTConfig          `yaml:"jwt"`
	Catalog      CatalogConfig      `yaml:"catalog"`
	Verification VerificationConfig `yaml:"verification"`
}

func LoadConfig() *Config {
	f, err := os.Open("config/config.yaml")
	if err != nil {
		panic("Failed to open config.yaml: " + err.Error())
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		panic("Failed to parse config.yaml: " + err.Error())
	}

	if cfg.Catalog.TimeoutSeconds <= 0 {
		cfg.Catalog.TimeoutSeconds = 15
	}
	if cfg.Verification.RegistrationTTLMinutes <= 0 {
		cfg.Verification.RegistrationTTLMinutes = 15
	}
	if cfg.Verification.RecoveryTTLMinutes <= 0 {
		cfg.Verification.RecoveryTTLMinutes = 15
	}
	return &cfg
}

func (c *Config) CatalogTimeout() time.Duration {
	return time.Duration(c.Catalog.TimeoutSeconds) * time.Second
}

func (c *Config) RegistrationCodeTTL() time.Duration {
	return time.Duration(c.Verification.RegistrationTTLMinutes) * time.Minute
}

func (c *Config) RecoveryCodeTTL() time.Duration {
	return time.Duration(c.Verification.RecoveryTTLMinutes) * time.Minute
}
