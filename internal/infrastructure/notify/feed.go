// Package notify implementa el Notifier de mutaciones: registra cada evento
// con zerolog y lo conserva en un feed acotado en memoria que la API expone
// para que los clientes muestren los avisos.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Stanko5566/lean-cockpit-api/pkg/logger"
)

// Levels de una notificación.
const (
	LevelSuccess = "success"
	LevelError   = "error"
)

// Notification un aviso de mutación sobre un recurso.
type Notification struct {
	ID        string    `json:"id"`
	Level     string    `json:"level"`
	Resource  string    `json:"resource"`
	Action    string    `json:"action"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Feed buffer circular de notificaciones recientes. Al llenarse descarta la
// más antigua. Seguro para uso concurrente.
type Feed struct {
	mu    sync.Mutex
	items []Notification
	max   int
	log   *logger.Logger
}

// NewFeed crea el feed con capacidad máxima max (mínimo 1).
func NewFeed(max int, log *logger.Logger) *Feed {
	if max < 1 {
		max = 1
	}
	return &Feed{max: max, log: log}
}

// Success registra una mutación confirmada.
func (f *Feed) Success(resource, action, message string) {
	f.log.Info().Str("resource", resource).Str("action", action).Msg(message)
	f.push(LevelSuccess, resource, action, message)
}

// Failure registra una mutación fallida.
func (f *Feed) Failure(resource, action, message string) {
	f.log.Error().Str("resource", resource).Str("action", action).Msg(message)
	f.push(LevelError, resource, action, message)
}

func (f *Feed) push(level, resource, action, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, Notification{
		ID:        uuid.New().String(),
		Level:     level,
		Resource:  resource,
		Action:    action,
		Message:   message,
		CreatedAt: time.Now(),
	})
	if len(f.items) > f.max {
		f.items = f.items[len(f.items)-f.max:]
	}
}

// Recent devuelve las últimas n notificaciones, la más reciente primero.
func (f *Feed) Recent(n int) []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	if n <= 0 || n > len(f.items) {
		n = len(f.items)
	}
	out := make([]Notification, 0, n)
	for i := len(f.items) - 1; i >= len(f.items)-n; i-- {
		out = append(out, f.items[i])
	}
	return out
}
