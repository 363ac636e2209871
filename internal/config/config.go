package config

import (
	"github.com/sksohail19/cricket-score-tracking-app/internal/logger"
)

// ServerConfig is the HTTP listener configuration.
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// StorageConfig locates the embedded match database.
type StorageConfig struct {
	Path string `mapstructure:"path"`
}

type Config struct {
	Logger  logger.LoggerConfig `mapstructure:"logger"`
	Server  ServerConfig        `mapstructure:"server"`
	Storage StorageConfig       `mapstructure:"storage"`
}
