package logger

import (
	"io"
	"log/slog"
	"os"
)

// Log is the shared application logger. Handlers log internal store errors
// here; clients only ever see generic messages.
var Log *slog.Logger

func init() {
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "doxa.log"
	}

	var writer io.Writer = os.Stdout
	if file, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666); err == nil {
		writer = io.MultiWriter(os.Stdout, file)
	}

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})

	Log = slog.New(handler)
}
