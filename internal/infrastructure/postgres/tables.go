package postgres

import (
	"github.com/Stanko5566/lean-cockpit-api/internal/domain/entity"
)

// TableSpecs de las once tablas de tableros. Todas se listan por created_at
// descendente salvo standard_procedures, que se lista por updated_at.

// LeanInitiativeSpec tabla lean_initiatives.
func LeanInitiativeSpec() TableSpec[entity.LeanInitiative] {
	return TableSpec[entity.LeanInitiative]{
		Table:   "lean_initiatives",
		Columns: []string{"id", "title", "description", "status", "due_date", "owner", "progress", "created_at"},
		Sort:    "created_at",
		ID:      func(e *entity.LeanInitiative) string { return e.ID },
		Fields: func(e *entity.LeanInitiative) []any {
			return []any{&e.ID, &e.Title, &e.Description, &e.Status, &e.DueDate, &e.Owner, &e.Progress, &e.CreatedAt}
		},
	}
}

// PdcaCycleSpec tabla pdca_cycles.
func PdcaCycleSpec() TableSpec[entity.PdcaCycle] {
	return TableSpec[entity.PdcaCycle]{
		Table: "pdca_cycles",
		// Las fases llevan sufijo _phase: "do" y "check" son palabras
		// reservadas de PostgreSQL.
		Columns: []string{"id", "title", "description", "status", "plan_phase", "do_phase", "check_phase", "act_phase", "created_at"},
		Sort:    "created_at",
		ID:      func(e *entity.PdcaCycle) string { return e.ID },
		Fields: func(e *entity.PdcaCycle) []any {
			return []any{&e.ID, &e.Title, &e.Description, &e.Status, &e.Plan, &e.Do, &e.Check, &e.Act, &e.CreatedAt}
		},
	}
}

// FiveSChecklistSpec tabla five_s_checklists.
func FiveSChecklistSpec() TableSpec[entity.FiveSChecklist] {
	return TableSpec[entity.FiveSChecklist]{
		Table:   "five_s_checklists",
		Columns: []string{"id", "title", "description", "seiri", "seiton", "seiso", "seiketsu", "shitsuke", "created_at", "updated_at"},
		Sort:    "created_at",
		ID:      func(e *entity.FiveSChecklist) string { return e.ID },
		Fields: func(e *entity.FiveSChecklist) []any {
			return []any{&e.ID, &e.Title, &e.Description, &e.Seiri, &e.Seiton, &e.Seiso, &e.Seiketsu, &e.Shitsuke, &e.CreatedAt, &e.UpdatedAt}
		},
	}
}

// KaizenItemSpec tabla kaizen_items.
func KaizenItemSpec() TableSpec[entity.KaizenItem] {
	return TableSpec[entity.KaizenItem]{
		Table:   "kaizen_items",
		Columns: []string{"id", "title", "description", "status", "submitter", "responsible", "completion_date", "created_at"},
		Sort:    "created_at",
		ID:      func(e *entity.KaizenItem) string { return e.ID },
		Fields: func(e *entity.KaizenItem) []any {
			return []any{&e.ID, &e.Title, &e.Description, &e.Status, &e.Submitter, &e.Responsible, &e.CompletionDate, &e.CreatedAt}
		},
	}
}

// KanbanTaskSpec tabla kanban_tasks.
func KanbanTaskSpec() TableSpec[entity.KanbanTask] {
	return TableSpec[entity.KanbanTask]{
		Table:   "kanban_tasks",
		Columns: []string{"id", "title", "description", "status", "assigned_to", "created_at"},
		Sort:    "created_at",
		ID:      func(e *entity.KanbanTask) string { return e.ID },
		Fields: func(e *entity.KanbanTask) []any {
			return []any{&e.ID, &e.Title, &e.Description, &e.Status, &e.AssignedTo, &e.CreatedAt}
		},
	}
}

// AndonStationSpec tabla andon_stations.
func AndonStationSpec() TableSpec[entity.AndonStation] {
	return TableSpec[entity.AndonStation]{
		Table:   "andon_stations",
		Columns: []string{"id", "name", "status", "efficiency", "last_updated", "created_at"},
		Sort:    "created_at",
		ID:      func(e *entity.AndonStation) string { return e.ID },
		Fields: func(e *entity.AndonStation) []any {
			return []any{&e.ID, &e.Name, &e.Status, &e.Efficiency, &e.LastUpdated, &e.CreatedAt}
		},
	}
}

// GembaWalkSpec tabla gemba_walks.
func GembaWalkSpec() TableSpec[entity.GembaWalk] {
	return TableSpec[entity.GembaWalk]{
		Table:   "gemba_walks",
		Columns: []string{"id", "title", "description", "area", "observations", "created_at", "updated_at"},
		Sort:    "created_at",
		ID:      func(e *entity.GembaWalk) string { return e.ID },
		Fields: func(e *entity.GembaWalk) []any {
			return []any{&e.ID, &e.Title, &e.Description, &e.Area, &e.Observations, &e.CreatedAt, &e.UpdatedAt}
		},
	}
}

// StandardProcedureSpec tabla standard_procedures.
func StandardProcedureSpec() TableSpec[entity.StandardProcedure] {
	return TableSpec[entity.StandardProcedure]{
		Table:   "standard_procedures",
		Columns: []string{"id", "title", "description", "version", "status", "created_at", "updated_at"},
		Sort:    "updated_at",
		ID:      func(e *entity.StandardProcedure) string { return e.ID },
		Fields: func(e *entity.StandardProcedure) []any {
			return []any{&e.ID, &e.Title, &e.Description, &e.Version, &e.Status, &e.CreatedAt, &e.UpdatedAt}
		},
	}
}

// TpmEquipmentSpec tabla tpm_equipment.
func TpmEquipmentSpec() TableSpec[entity.TpmEquipment] {
	return TableSpec[entity.TpmEquipment]{
		Table:   "tpm_equipment",
		Columns: []string{"id", "name", "status", "oee_score", "availability", "last_maintenance", "next_maintenance", "created_at"},
		Sort:    "created_at",
		ID:      func(e *entity.TpmEquipment) string { return e.ID },
		Fields: func(e *entity.TpmEquipment) []any {
			return []any{&e.ID, &e.Name, &e.Status, &e.OeeScore, &e.Availability, &e.LastMaintenance, &e.NextMaintenance, &e.CreatedAt}
		},
	}
}

// A3ReportSpec tabla a3_reports.
func A3ReportSpec() TableSpec[entity.A3Report] {
	return TableSpec[entity.A3Report]{
		Table:   "a3_reports",
		Columns: []string{"id", "title", "status", "goal", "team", "deadline", "result", "created_at"},
		Sort:    "created_at",
		ID:      func(e *entity.A3Report) string { return e.ID },
		Fields: func(e *entity.A3Report) []any {
			return []any{&e.ID, &e.Title, &e.Status, &e.Goal, &e.Team, &e.Deadline, &e.Result, &e.CreatedAt}
		},
	}
}

// ValueStreamSpec tabla value_streams.
func ValueStreamSpec() TableSpec[entity.ValueStream] {
	return TableSpec[entity.ValueStream]{
		Table:   "value_streams",
		Columns: []string{"id", "name", "family", "lead_time", "lead_time_target", "value_added_time", "va_index", "last_updated", "created_at"},
		Sort:    "created_at",
		ID:      func(e *entity.ValueStream) string { return e.ID },
		Fields: func(e *entity.ValueStream) []any {
			return []any{&e.ID, &e.Name, &e.Family, &e.LeadTime, &e.LeadTimeTarget, &e.ValueAddedTime, &e.VaIndex, &e.LastUpdated, &e.CreatedAt}
		},
	}
}
