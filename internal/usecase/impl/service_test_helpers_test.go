package impl

import (
	"io"
	"log/slog"

	"comanda/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(retentionDays int) *config.Config {
	return &config.Config{
		Retention: config.RetentionConfig{
			Days: retentionDays,
		},
	}
}
