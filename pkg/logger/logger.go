// Package logger centraliza el logging estructurado del cockpit sobre
// zerolog. Todas las capas reciben *Logger por inyección; nada escribe
// directo a stdout.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones del logger.
type Config struct {
	Env   string // development -> consola legible; cualquier otro -> JSON
	Level string // trace, debug, info, warn, error (default info)
}

// Logger envuelve un zerolog.Logger con la configuración del servicio.
type Logger struct {
	zl zerolog.Logger
}

// New construye el logger del servicio. En development la salida es la
// consola coloreada de zerolog; en producción JSON por línea, que es lo
// que espera el agregador.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	zl := zerolog.New(w).
		Level(parseLevel(cfg.Level)).
		With().
		Timestamp().
		Logger()

	// También el logger global, para dependencias que loguean por su cuenta.
	log.Logger = zl

	return &Logger{zl: zl}
}

// parseLevel resuelve el nivel configurado; un valor vacío o no
// reconocido cae en info en vez de romper el arranque.
func parseLevel(s string) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With abre un sublogger con campos fijos (p.ej. el nombre del componente).
func (l *Logger) With() zerolog.Context { return l.zl.With() }

// Zerolog expone el logger interno para las APIs que piden el tipo concreto.
func (l *Logger) Zerolog() zerolog.Logger { return l.zl }
