package postgres

import (
	"context"
	"fmt"

	"github.com/Stanko5566/lean-cockpit-api/internal/domain/repository"
)

// DashboardRepo consultas agregadas read-only del resumen del cockpit.
type DashboardRepo struct {
	db Querier
}

// NewDashboardRepo construye el repositorio del dashboard.
func NewDashboardRepo(db Querier) *DashboardRepo {
	return &DashboardRepo{db: db}
}

// GetSummary calcula conteos y promedios en una sola consulta. Los promedios
// usan COALESCE para devolver 0 sobre tablas vacías; el vencimiento de
// mantenimiento se evalúa casteando la fecha de texto a date.
func (r *DashboardRepo) GetSummary(ctx context.Context) (*repository.DashboardResult, error) {
	res := &repository.DashboardResult{}
	err := r.db.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM lean_initiatives),
			(SELECT COUNT(*) FROM pdca_cycles),
			(SELECT COUNT(*) FROM five_s_checklists),
			(SELECT COUNT(*) FROM kaizen_items),
			(SELECT COUNT(*) FROM kaizen_items WHERE status = 'open'),
			(SELECT COUNT(*) FROM kanban_tasks),
			(SELECT COUNT(*) FROM andon_stations),
			(SELECT COUNT(*) FROM andon_stations WHERE status = 'error'),
			(SELECT COUNT(*) FROM gemba_walks),
			(SELECT COUNT(*) FROM standard_procedures),
			(SELECT COUNT(*) FROM tpm_equipment),
			(SELECT COUNT(*) FROM a3_reports),
			(SELECT COUNT(*) FROM value_streams),
			(SELECT COALESCE(AVG(progress), 0) FROM lean_initiatives),
			(SELECT COALESCE(AVG((seiri + seiton + seiso + seiketsu + shitsuke) / 5.0), 0) FROM five_s_checklists),
			(SELECT COALESCE(AVG(oee_score), 0) FROM tpm_equipment),
			(SELECT COUNT(*) FROM tpm_equipment WHERE next_maintenance ~ '^\d{4}-\d{2}-\d{2}$' AND next_maintenance::date < CURRENT_DATE)
	`).Scan(
		&res.InitiativeCount,
		&res.PdcaCount,
		&res.ChecklistCount,
		&res.KaizenCount,
		&res.KaizenOpen,
		&res.KanbanCount,
		&res.StationCount,
		&res.StationErrors,
		&res.WalkCount,
		&res.ProcedureCount,
		&res.EquipmentCount,
		&res.ReportCount,
		&res.StreamCount,
		&res.AvgProgress,
		&res.AvgFiveSScore,
		&res.AvgOee,
		&res.MaintenanceOverdue,
	)
	if err != nil {
		return nil, fmt.Errorf("consultando resumen del cockpit: %w", err)
	}
	return res, nil
}
