package telemetry

import (
	"log/slog"
	"os"
)

// installs the default slog handler, `debug` lowers the minimum
// level from info to debug
func InitSlog(debug bool) {
	level := slog.LevelInfo
	if debug || os.Getenv("DEBUG") != "" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}
