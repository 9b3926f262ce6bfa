package cli

import (
	"io"
	"log/slog"
)

// Константы для определения окружения.
const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

// setupLogger настраивает slog по окружению.
// level, если не nil, заменяет уровень окружения.
func setupLogger(env string, w io.Writer, level slog.Leveler) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(w, &slog.HandlerOptions{Level: pick(level, slog.LevelDebug)}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{Level: pick(level, slog.LevelDebug)}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{Level: pick(level, slog.LevelInfo)}),
		)
	default:
		log = slog.New(
			slog.NewTextHandler(w, &slog.HandlerOptions{Level: pick(level, slog.LevelDebug)}),
		)
	}

	return log
}

func pick(level slog.Leveler, fallback slog.Level) slog.Leveler {
	if level != nil {
		return level
	}
	return fallback
}

// fetchLevel — уровень логов для разовых команд: stderr не засоряется без -v.
func fetchLevel(verbose bool) slog.Leveler {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}
