package logger_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"globetrotter/internal/config"
)

var Module = fx.Options(
	fx.Provide(provideLogger),
	fx.Invoke(flushOnStop),
)

// provideLogger builds the process logger and installs it as zap's global so
// packages without injection can log through zap.L().
func provideLogger(cfg *config.Config) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if cfg.Server.IsLocal() {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}

	logger = logger.With(zap.String("service", "globetrotter"))
	zap.ReplaceGlobals(logger)
	return logger, nil
}

func flushOnStop(lc fx.Lifecycle, logger *zap.Logger) {
	lc.Append(fx.StopHook(func() {
		_ = logger.Sync()
	}))
}
