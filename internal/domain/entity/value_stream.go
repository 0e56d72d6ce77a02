package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ValueStream un flujo de valor con sus métricas de lead time.
type ValueStream struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Family         string          `json:"family"`
	LeadTime       decimal.Decimal `json:"lead_time"`        // días
	LeadTimeTarget decimal.Decimal `json:"lead_time_target"` // días
	ValueAddedTime decimal.Decimal `json:"value_added_time"` // horas
	VaIndex        decimal.Decimal `json:"va_index"`         // porcentaje
	LastUpdated    time.Time       `json:"last_updated"`
	CreatedAt      time.Time       `json:"created_at"`
}
