// Package logger builds the shared slog JSON logger. Every record carries
// the service name and hostname so log lines stay attributable when the
// demo runs next to other services.
package logger

import (
	"log/slog"
	"os"
)

func New(service string) *slog.Logger {
	hostname, _ := os.Hostname()

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})

	return slog.New(handler).With(
		slog.String("service", service),
		slog.String("hostname", hostname),
	)
}
