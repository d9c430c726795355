package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New создаёт консольный логгер с заданным уровнем.
// Неизвестный уровень трактуется как info.
func New(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	writer := zerolog.ConsoleWriter{Out: os.Stdout}

	return zerolog.New(writer).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
