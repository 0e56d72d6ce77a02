package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO resumen del cockpit: conteos por módulo y métricas agregadas.
type DashboardSummaryDTO struct {
	Counts             map[string]int  `json:"counts"`
	AvgProgress        decimal.Decimal `json:"avg_progress"`
	AvgFiveSScore      decimal.Decimal `json:"avg_five_s_score"`
	AvgOee             decimal.Decimal `json:"avg_oee"`
	MaintenanceOverdue int             `json:"maintenance_overdue"`
	KaizenOpen         int             `json:"kaizen_open"`
	AndonErrors        int             `json:"andon_errors"`
}
