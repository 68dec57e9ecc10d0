package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-console/internal/validator"
)

const (
	FirstPlayerRandom = "random"
	FirstPlayerFirst  = "first"
	FirstPlayerSecond = "second"
)

type Config struct {
	LogLevel  string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	LogFormat string `yaml:"log-format" env:"LOG_FORMAT" env-default:"json" validate:"oneof=json text"`
	Game      Game   `yaml:"game"`
}

type Game struct {
	FirstPlayer string `yaml:"first-player" env:"GAME_FIRST_PLAYER" env-default:"random" validate:"oneof=random first second"`
	// MaxAttempts limits consecutive rejected moves per turn; 0 means unlimited.
	MaxAttempts int `yaml:"max-attempts" env:"GAME_MAX_ATTEMPTS" env-default:"0" validate:"min=0"`
	NameWidth   int `yaml:"name-width" env:"GAME_NAME_WIDTH" env-default:"24" validate:"min=1,max=80"`
}

var ErrConfigNotFound = errors.New("config file not found")

// Load reads the config file at path and then the environment. A missing file
// is an error when mustExist is set, otherwise only the environment is read.
func Load(path string, mustExist bool) (*Config, error) {
	config := &Config{}

	if err := read(path, mustExist, config); err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func read(path string, mustExist bool, config *Config) error {
	if path != "" {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			return cleanenv.ReadConfig(path, config)
		case !errors.Is(err, os.ErrNotExist):
			return err
		case mustExist:
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
	} else if mustExist {
		return fmt.Errorf("%w: empty path", ErrConfigNotFound)
	}

	return cleanenv.ReadEnv(config)
}

func (that *Config) Validate() error {
	if err := validator.GetValidator().Struct(that); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}
