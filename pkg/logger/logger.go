package logger

import (
	"log/slog"
	"os"
)

var log *slog.Logger = slog.Default()

// Init configures the global logger. Development gets human readable text,
// everything else gets JSON.
func Init(environment string) {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if environment == "development" {
		opts.Level = slog.LevelDebug
		log = slog.New(slog.NewTextHandler(os.Stdout, opts))
		return
	}

	log = slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

func Info(msg string, args ...any) {
	log.Info(msg, normalize(args)...)
}

func Warn(msg string, args ...any) {
	log.Warn(msg, normalize(args)...)
}

func Error(msg string, args ...any) {
	log.Error(msg, normalize(args)...)
}

func Fatal(msg string, args ...any) {
	log.Error(msg, normalize(args)...)
	os.Exit(1)
}

// normalize lets call sites pass bare errors or values without a key, which
// slog would otherwise report as malformed pairs.
func normalize(args []any) []any {
	if len(args)%2 == 0 {
		for i := 0; i < len(args); i += 2 {
			if _, ok := args[i].(string); !ok {
				return wrapAll(args)
			}
		}
		return args
	}

	return wrapAll(args)
}

func wrapAll(args []any) []any {
	out := make([]any, 0, len(args))
	for _, a := range args {
		out = append(out, slog.Any("detail", a))
	}
	return out
}
