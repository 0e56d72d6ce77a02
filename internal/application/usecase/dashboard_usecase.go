package usecase

import (
	"context"
	"fmt"

	"github.com/Stanko5566/lean-cockpit-api/internal/application/dto"
	"github.com/Stanko5566/lean-cockpit-api/internal/domain/repository"
)

// DashboardUseCase resumen agregado del cockpit.
type DashboardUseCase struct {
	repo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso del dashboard.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// Summary devuelve conteos por módulo y métricas agregadas en una sola pasada.
func (uc *DashboardUseCase) Summary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	res, err := uc.repo.GetSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("consultando resumen: %w", err)
	}
	return &dto.DashboardSummaryDTO{
		Counts: map[string]int{
			"lean_initiatives":    res.InitiativeCount,
			"pdca_cycles":         res.PdcaCount,
			"five_s_checklists":   res.ChecklistCount,
			"kaizen_items":        res.KaizenCount,
			"kanban_tasks":        res.KanbanCount,
			"andon_stations":      res.StationCount,
			"gemba_walks":         res.WalkCount,
			"standard_procedures": res.ProcedureCount,
			"tpm_equipment":       res.EquipmentCount,
			"a3_reports":          res.ReportCount,
			"value_streams":       res.StreamCount,
		},
		AvgProgress:        res.AvgProgress,
		AvgFiveSScore:      res.AvgFiveSScore,
		AvgOee:             res.AvgOee,
		MaintenanceOverdue: res.MaintenanceOverdue,
		KaizenOpen:         res.KaizenOpen,
		AndonErrors:        res.StationErrors,
	}, nil
}
