package glayer

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	LogLevel      string        `env:"GLAYER_LOG_LEVEL" envDefault:"info"`
	LogFormat     string        `env:"GLAYER_LOG_FORMAT" envDefault:"json"`
	InvokeTimeout time.Duration `env:"GLAYER_INVOKE_TIMEOUT" envDefault:"60s"`
}

func LoadConfig() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("failure in loading config: %w", err)
	}
	return cfg, nil
}

// LoadConfigFrom reads configuration from environ instead of the process
// environment.
func LoadConfigFrom(environ map[string]string) (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](env.Options{Environment: environ})
	if err != nil {
		return Config{}, fmt.Errorf("failure in loading config: %w", err)
	}
	return cfg, nil
}
