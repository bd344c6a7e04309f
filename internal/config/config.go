package config

import (
	"ctchen222/tictactoe-engine/internal/validator"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string    `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	HTTPAddr  string    `yaml:"http-addr" env:"TICTACTOE_HTTP_ADDR" env-default:":8080" validate:"required"`
	Telemetry Telemetry `yaml:"telemetry"`
	Bot       Bot       `yaml:"bot"`
}

type Telemetry struct {
	Enabled     bool   `yaml:"enabled" env:"TICTACTOE_OTEL_ENABLED" env-default:"false"`
	Endpoint    string `yaml:"endpoint" env:"TICTACTOE_OTEL_ENDPOINT" env-default:"otel-collector:4317" validate:"required_if=Enabled true"`
	ServiceName string `yaml:"service-name" env:"TICTACTOE_OTEL_SERVICE_NAME" env-default:"tic-tac-toe"`
}

type Bot struct {
	Difficulty string        `yaml:"difficulty" env:"TICTACTOE_BOT_DIFFICULTY" env-default:"hard" validate:"oneof=easy medium hard"`
	Delay      time.Duration `yaml:"delay" env:"TICTACTOE_BOT_DELAY" env-default:"400ms"`
	// Seed of zero picks one from the clock.
	Seed uint64 `yaml:"seed" env:"TICTACTOE_BOT_SEED" env-default:"0"`
}

// Load reads the YAML file at path with env overrides. An empty path reads
// the environment only.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if path == "" {
		err = cleanenv.ReadEnv(config)
	} else {
		err = cleanenv.ReadConfig(path, config)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if err := validator.Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}
