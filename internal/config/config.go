package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel        string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort        string        `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort      string        `yaml:"socket-port" env:"SOCKET_PORT" env-default:"9091"`
	SessionTTL      time.Duration `yaml:"session-ttl" env:"SESSION_TTL" env-default:"24h"`
	ShutdownTimeout time.Duration `yaml:"shutdown-timeout" env:"SHUTDOWN_TIMEOUT" env-default:"5s"`
	Redis           Redis         `yaml:"redis"`
}

type Redis struct {
	Host     string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD" env-default:""`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the file and lets environment variables override it.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
