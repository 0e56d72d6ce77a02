package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una estación Andon.
const (
	StationActive      = "active"
	StationMaintenance = "maintenance"
	StationError       = "error"
)

// AndonStation una estación de producción con su señal Andon y eficiencia actual.
type AndonStation struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Status      string          `json:"status"` // active, maintenance, error
	Efficiency  decimal.Decimal `json:"efficiency"` // 0..100
	LastUpdated time.Time       `json:"last_updated"`
	CreatedAt   time.Time       `json:"created_at"`
}
