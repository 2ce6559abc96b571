package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

type Builder struct {
	writer io.Writer
	level  string
	format string
}

func New() *Builder {
	return &Builder{
		writer: os.Stdout,
		level:  "info",
		format: FormatJSON,
	}
}

func (b *Builder) WithWriter(w io.Writer) *Builder {
	b.writer = w
	return b
}

func (b *Builder) WithLevel(level string) *Builder {
	b.level = level
	return b
}

func (b *Builder) WithFormat(format string) *Builder {
	b.format = format
	return b
}

func (b *Builder) Make() zerolog.Logger {
	w := b.writer
	if strings.EqualFold(b.format, FormatConsole) {
		w = zerolog.ConsoleWriter{Out: b.writer, TimeFormat: time.RFC3339}
	}

	level, err := zerolog.ParseLevel(strings.ToLower(b.level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// Nop is used by tests and tools that don't care about log output.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
