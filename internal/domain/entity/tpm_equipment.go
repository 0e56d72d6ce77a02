package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout formato de las fechas de mantenimiento introducidas por el usuario.
const DateLayout = "2006-01-02"

// TpmEquipment un equipo bajo mantenimiento productivo total.
type TpmEquipment struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Status          string          `json:"status"` // running, maintenance, down
	OeeScore        decimal.Decimal `json:"oee_score"`    // 0..100
	Availability    decimal.Decimal `json:"availability"` // 0..100
	LastMaintenance string          `json:"last_maintenance"` // YYYY-MM-DD
	NextMaintenance string          `json:"next_maintenance"` // YYYY-MM-DD
	CreatedAt       time.Time       `json:"created_at"`
}

// MaintenanceOverdue indica si el próximo mantenimiento ya venció respecto a now.
// Una fecha no parseable no se considera vencida.
func (e *TpmEquipment) MaintenanceOverdue(now time.Time) bool {
	next, err := time.Parse(DateLayout, e.NextMaintenance)
	if err != nil {
		return false
	}
	return next.Before(now.Truncate(24 * time.Hour))
}
