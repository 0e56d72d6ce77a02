package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// DashboardResult resultado crudo de las consultas de resumen.
// Lo produce la DB; el use case lo convierte en DTO.
type DashboardResult struct {
	InitiativeCount    int
	PdcaCount          int
	ChecklistCount     int
	KaizenCount        int
	KaizenOpen         int
	KanbanCount        int
	StationCount       int
	StationErrors      int
	WalkCount          int
	ProcedureCount     int
	EquipmentCount     int
	ReportCount        int
	StreamCount        int
	AvgProgress        decimal.Decimal // promedio de progreso de iniciativas (0..100)
	AvgFiveSScore      decimal.Decimal // promedio de (seiri+...+shitsuke)/5
	AvgOee             decimal.Decimal // promedio de oee_score
	MaintenanceOverdue int             // equipos con next_maintenance vencido
}

// DashboardRepository define las consultas read-only del resumen del cockpit.
type DashboardRepository interface {
	GetSummary(ctx context.Context) (*DashboardResult, error)
}
