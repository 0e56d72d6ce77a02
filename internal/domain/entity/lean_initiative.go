package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados semáforo de una iniciativa lean.
const (
	InitiativeGreen  = "green"
	InitiativeYellow = "yellow"
	InitiativeRed    = "red"
)

// LeanInitiative una iniciativa de mejora con seguimiento de avance.
type LeanInitiative struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Status      string          `json:"status"` // green, yellow, red
	DueDate     *string         `json:"due_date"`
	Owner       *string         `json:"owner"`
	Progress    decimal.Decimal `json:"progress"` // 0..100
	CreatedAt   time.Time       `json:"created_at"`
}
