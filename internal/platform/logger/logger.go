package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger es la interfaz que consume el resto del código; por detrás
// hay zerolog, pero ningún paquete de dominio lo importa directo.
type Logger interface {
	With(fields map[string]any) Logger

	Debug(msg string, fields map[string]any)
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "info", "":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

type Options struct {
	Level string
	App   string
}

func New(opts Options) Logger {
	ctx := zerolog.New(os.Stdout).
		Level(ParseLevel(opts.Level)).
		With().
		Timestamp()

	if strings.TrimSpace(opts.App) != "" {
		ctx = ctx.Str("app", strings.TrimSpace(opts.App))
	}

	return &zeroLogger{zl: ctx.Logger()}
}

// Nop descarta todo; útil en tests.
func Nop() Logger {
	return &zeroLogger{zl: zerolog.Nop()}
}

type zeroLogger struct {
	zl zerolog.Logger
}

func (l *zeroLogger) With(fields map[string]any) Logger {
	if len(fields) == 0 {
		return l
	}
	return &zeroLogger{zl: l.zl.With().Fields(fields).Logger()}
}

func (l *zeroLogger) Debug(msg string, fields map[string]any) {
	l.zl.Debug().Fields(fields).Msg(msg)
}

func (l *zeroLogger) Info(msg string, fields map[string]any) {
	l.zl.Info().Fields(fields).Msg(msg)
}

func (l *zeroLogger) Warn(msg string, fields map[string]any) {
	l.zl.Warn().Fields(fields).Msg(msg)
}

func (l *zeroLogger) Error(msg string, fields map[string]any) {
	l.zl.Error().Fields(fields).Msg(msg)
}
