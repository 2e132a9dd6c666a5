package logger

import (
	"log/slog"
	"os"
)

var log *slog.Logger

// Init wires the global logger. Production gets JSON at info level,
// everything else gets text at debug level.
func Init(environment string) {
	var handler slog.Handler

	if environment == "production" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}

	log = slog.New(handler)
}

func get() *slog.Logger {
	if log == nil {
		Init("development")
	}
	return log
}

func Debug(msg string, args ...any) {
	get().Debug(msg, normalize(args)...)
}

func Info(msg string, args ...any) {
	get().Info(msg, normalize(args)...)
}

func Warn(msg string, args ...any) {
	get().Warn(msg, normalize(args)...)
}

func Error(msg string, args ...any) {
	get().Error(msg, normalize(args)...)
}

func Fatal(msg string, args ...any) {
	get().Error(msg, normalize(args)...)
	os.Exit(1)
}

// normalize lets call sites pass a bare error (or any odd trailing
// value) instead of a key/value pair.
func normalize(args []any) []any {
	if len(args)%2 == 0 {
		return args
	}

	out := make([]any, 0, len(args)+1)
	for i := 0; i < len(args); i++ {
		if i == len(args)-1 {
			if err, ok := args[i].(error); ok {
				out = append(out, "error", err.Error())
				continue
			}
			out = append(out, "detail", args[i])
			continue
		}
		out = append(out, args[i])
	}
	return out
}
