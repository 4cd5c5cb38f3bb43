package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	ServerPort string `yaml:"server_port"`
	DBUsername string `yaml:"db_username"`
	DBPassword string `yaml:"db_password"`
	DBHost     string `yaml:"db_host"`
	DBPort     string `yaml:"db_port"`
	DBName     string `yaml:"db_name"`
	DisableTLS bool   `yaml:"disable_tls"`
	DBDebug    bool   `yaml:"db_debug"`
	BaseUrl    string `yaml:"base_url"`
	JWTKey     string `yaml:"jwt_key"`

	// AllowedOrigins for CORS. Empty allows every origin, meant for
	// local development only.
	AllowedOrigins []string `yaml:"allowed_origins"`

	// MediaDir is where the local photo store keeps uploads and what the
	// /media file server exposes.
	MediaDir string `yaml:"media_dir"`

	// Optional redis cache for today-status lookups. Empty disables it.
	RedisAddr string `yaml:"redis_addr"`

	// Optional S3 photo storage. When Bucket is empty the local disk
	// store is used instead.
	S3Bucket   string `yaml:"s3_bucket"`
	S3Region   string `yaml:"s3_region"`
	S3Endpoint string `yaml:"s3_endpoint"`
}

func NewConfig(path string) (*Config, error) {
	var c Config

	yamlFile, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(yamlFile, &c)
	if err != nil {
		return nil, err
	}

	if c.DBUsername == "" || c.DBPassword == "" || c.DBHost == "" || c.DBName == "" {
		return nil, errors.New("missing required database configuration")
	}
	if c.JWTKey == "" {
		return nil, errors.New("missing jwt_key configuration")
	}

	if c.ServerPort == "" {
		c.ServerPort = ":8080"
	}
	if c.MediaDir == "" {
		c.MediaDir = "media"
	}

	return &c, nil
}
