package config_fx

import (
	"go.uber.org/fx"
	"globetrotter/internal/config"
)

var Module = fx.Provide(provideConfig)

func provideConfig() (*config.Config, error) {
	config.LoadDotEnvUp(6)
	return config.Load()
}
