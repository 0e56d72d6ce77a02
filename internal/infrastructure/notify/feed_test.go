package notify_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Stanko5566/lean-cockpit-api/internal/infrastructure/notify"
	"github.com/Stanko5566/lean-cockpit-api/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func TestFeed_RecentDevuelveMasRecientePrimero(t *testing.T) {
	feed := notify.NewFeed(10, testLogger())
	feed.Success("kanban_tasks", "create", "Aufgabe wurde erstellt")
	feed.Failure("kanban_tasks", "delete", "Fehler beim Löschen von Aufgabe: boom")

	out := feed.Recent(10)
	require.Len(t, out, 2)
	assert.Equal(t, notify.LevelError, out[0].Level, "la más reciente va primero")
	assert.Equal(t, notify.LevelSuccess, out[1].Level)
	assert.NotEmpty(t, out[0].ID)
	assert.False(t, out[0].CreatedAt.IsZero())
}

func TestFeed_DescartaLasMasAntiguasAlLlenarse(t *testing.T) {
	feed := notify.NewFeed(3, testLogger())
	for i := 0; i < 5; i++ {
		feed.Success("pdca_cycles", "update", fmt.Sprintf("mensaje %d", i))
	}

	out := feed.Recent(10)
	require.Len(t, out, 3, "el feed está acotado a su capacidad")
	assert.Equal(t, "mensaje 4", out[0].Message)
	assert.Equal(t, "mensaje 2", out[2].Message, "las más antiguas se descartan")
}

func TestFeed_RecentConLimite(t *testing.T) {
	feed := notify.NewFeed(10, testLogger())
	for i := 0; i < 4; i++ {
		feed.Success("gemba_walks", "create", fmt.Sprintf("mensaje %d", i))
	}

	out := feed.Recent(2)
	require.Len(t, out, 2)
	assert.Equal(t, "mensaje 3", out[0].Message)
	assert.Equal(t, "mensaje 2", out[1].Message)
}
