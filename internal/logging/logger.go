package logging

import (
	"log/slog"
	"os"
)

// Setup installs a JSON stdout logger as the slog default and returns its handler.
func Setup() slog.Handler {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	return handler
}

// WithDatabase makes the default logger also persist errors through pg.
func WithDatabase(stdout slog.Handler, pg *PGHandler) {
	slog.SetDefault(slog.New(NewMultiHandler(stdout, pg)))
}
