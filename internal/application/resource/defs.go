package resource

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Stanko5566/lean-cockpit-api/internal/application/dto"
	"github.com/Stanko5566/lean-cockpit-api/internal/domain/entity"
	"github.com/Stanko5566/lean-cockpit-api/internal/domain/repository"
)

// Instancias concretas del servicio genérico, una por módulo del cockpit.
// Aquí vive TODA la configuración por entidad: nombre de recurso, etiqueta
// de notificación, fábrica y aplicador de parches.

type (
	LeanInitiativeService    = Service[entity.LeanInitiative, dto.CreateLeanInitiativeRequest, dto.UpdateLeanInitiativeRequest]
	PdcaCycleService         = Service[entity.PdcaCycle, dto.CreatePdcaCycleRequest, dto.UpdatePdcaCycleRequest]
	FiveSChecklistService    = Service[entity.FiveSChecklist, dto.CreateFiveSChecklistRequest, dto.UpdateFiveSChecklistRequest]
	KaizenItemService        = Service[entity.KaizenItem, dto.CreateKaizenItemRequest, dto.UpdateKaizenItemRequest]
	KanbanTaskService        = Service[entity.KanbanTask, dto.CreateKanbanTaskRequest, dto.UpdateKanbanTaskRequest]
	AndonStationService      = Service[entity.AndonStation, dto.CreateAndonStationRequest, dto.UpdateAndonStationRequest]
	GembaWalkService         = Service[entity.GembaWalk, dto.CreateGembaWalkRequest, dto.UpdateGembaWalkRequest]
	StandardProcedureService = Service[entity.StandardProcedure, dto.CreateStandardProcedureRequest, dto.UpdateStandardProcedureRequest]
	TpmEquipmentService      = Service[entity.TpmEquipment, dto.CreateTpmEquipmentRequest, dto.UpdateTpmEquipmentRequest]
	A3ReportService          = Service[entity.A3Report, dto.CreateA3ReportRequest, dto.UpdateA3ReportRequest]
	ValueStreamService       = Service[entity.ValueStream, dto.CreateValueStreamRequest, dto.UpdateValueStreamRequest]
)

// NewLeanInitiativeService tablero de iniciativas lean.
func NewLeanInitiativeService(repo repository.ResourceRepository[entity.LeanInitiative], cache ListCache, notifier Notifier, validate *validator.Validate) *LeanInitiativeService {
	return NewService(Definition[entity.LeanInitiative, dto.CreateLeanInitiativeRequest, dto.UpdateLeanInitiativeRequest]{
		Name:  "lean_initiatives",
		Label: "Initiative",
		New: func(in dto.CreateLeanInitiativeRequest) *entity.LeanInitiative {
			progress := decimal.Zero
			if in.Progress != nil {
				progress = decimal.NewFromFloat(*in.Progress)
			}
			return &entity.LeanInitiative{
				ID:          uuid.New().String(),
				Title:       in.Title,
				Description: in.Description,
				Status:      in.Status,
				DueDate:     in.DueDate,
				Owner:       in.Owner,
				Progress:    progress,
				CreatedAt:   time.Now(),
			}
		},
		Apply: func(e *entity.LeanInitiative, p dto.UpdateLeanInitiativeRequest) {
			if p.Title != nil {
				e.Title = *p.Title
			}
			if p.Description != nil {
				e.Description = *p.Description
			}
			if p.Status != nil {
				e.Status = *p.Status
			}
			if p.DueDate != nil {
				e.DueDate = p.DueDate
			}
			if p.Owner != nil {
				e.Owner = p.Owner
			}
			if p.Progress != nil {
				e.Progress = decimal.NewFromFloat(*p.Progress)
			}
		},
	}, repo, cache, notifier, validate)
}

// NewPdcaCycleService ciclos PDCA. Un ciclo nuevo arranca en la fase "plan".
func NewPdcaCycleService(repo repository.ResourceRepository[entity.PdcaCycle], cache ListCache, notifier Notifier, validate *validator.Validate) *PdcaCycleService {
	return NewService(Definition[entity.PdcaCycle, dto.CreatePdcaCycleRequest, dto.UpdatePdcaCycleRequest]{
		Name:  "pdca_cycles",
		Label: "PDCA-Zyklus",
		New: func(in dto.CreatePdcaCycleRequest) *entity.PdcaCycle {
			status := in.Status
			if status == "" {
				status = entity.PdcaStatusDefault
			}
			return &entity.PdcaCycle{
				ID:          uuid.New().String(),
				Title:       in.Title,
				Description: in.Description,
				Status:      status,
				CreatedAt:   time.Now(),
			}
		},
		Apply: func(e *entity.PdcaCycle, p dto.UpdatePdcaCycleRequest) {
			if p.Title != nil {
				e.Title = *p.Title
			}
			if p.Description != nil {
				e.Description = *p.Description
			}
			if p.Status != nil {
				e.Status = *p.Status
			}
			if p.Plan != nil {
				e.Plan = p.Plan
			}
			if p.Do != nil {
				e.Do = p.Do
			}
			if p.Check != nil {
				e.Check = p.Check
			}
			if p.Act != nil {
				e.Act = p.Act
			}
		},
	}, repo, cache, notifier, validate)
}

// NewFiveSChecklistService auditorías 5S.
func NewFiveSChecklistService(repo repository.ResourceRepository[entity.FiveSChecklist], cache ListCache, notifier Notifier, validate *validator.Validate) *FiveSChecklistService {
	return NewService(Definition[entity.FiveSChecklist, dto.CreateFiveSChecklistRequest, dto.UpdateFiveSChecklistRequest]{
		Name:  "five_s_checklists",
		Label: "5S Checkliste",
		New: func(in dto.CreateFiveSChecklistRequest) *entity.FiveSChecklist {
			now := time.Now()
			return &entity.FiveSChecklist{
				ID:          uuid.New().String(),
				Title:       in.Title,
				Description: in.Description,
				Seiri:       in.Seiri,
				Seiton:      in.Seiton,
				Seiso:       in.Seiso,
				Seiketsu:    in.Seiketsu,
				Shitsuke:    in.Shitsuke,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
		},
		Apply: func(e *entity.FiveSChecklist, p dto.UpdateFiveSChecklistRequest) {
			if p.Title != nil {
				e.Title = *p.Title
			}
			if p.Description != nil {
				e.Description = *p.Description
			}
			if p.Seiri != nil {
				e.Seiri = *p.Seiri
			}
			if p.Seiton != nil {
				e.Seiton = *p.Seiton
			}
			if p.Seiso != nil {
				e.Seiso = *p.Seiso
			}
			if p.Seiketsu != nil {
				e.Seiketsu = *p.Seiketsu
			}
			if p.Shitsuke != nil {
				e.Shitsuke = *p.Shitsuke
			}
			e.UpdatedAt = time.Now()
		},
	}, repo, cache, notifier, validate)
}

// NewKaizenItemService propuestas Kaizen.
func NewKaizenItemService(repo repository.ResourceRepository[entity.KaizenItem], cache ListCache, notifier Notifier, validate *validator.Validate) *KaizenItemService {
	return NewService(Definition[entity.KaizenItem, dto.CreateKaizenItemRequest, dto.UpdateKaizenItemRequest]{
		Name:  "kaizen_items",
		Label: "Kaizen-Vorschlag",
		New: func(in dto.CreateKaizenItemRequest) *entity.KaizenItem {
			return &entity.KaizenItem{
				ID:             uuid.New().String(),
				Title:          in.Title,
				Description:    in.Description,
				Status:         in.Status,
				Submitter:      in.Submitter,
				Responsible:    in.Responsible,
				CompletionDate: in.CompletionDate,
				CreatedAt:      time.Now(),
			}
		},
		Apply: func(e *entity.KaizenItem, p dto.UpdateKaizenItemRequest) {
			if p.Title != nil {
				e.Title = *p.Title
			}
			if p.Description != nil {
				e.Description = *p.Description
			}
			if p.Status != nil {
				e.Status = *p.Status
			}
			if p.Submitter != nil {
				e.Submitter = p.Submitter
			}
			if p.Responsible != nil {
				e.Responsible = p.Responsible
			}
			if p.CompletionDate != nil {
				e.CompletionDate = p.CompletionDate
			}
		},
	}, repo, cache, notifier, validate)
}

// NewKanbanTaskService tarjetas Kanban.
func NewKanbanTaskService(repo repository.ResourceRepository[entity.KanbanTask], cache ListCache, notifier Notifier, validate *validator.Validate) *KanbanTaskService {
	return NewService(Definition[entity.KanbanTask, dto.CreateKanbanTaskRequest, dto.UpdateKanbanTaskRequest]{
		Name:  "kanban_tasks",
		Label: "Aufgabe",
		New: func(in dto.CreateKanbanTaskRequest) *entity.KanbanTask {
			return &entity.KanbanTask{
				ID:          uuid.New().String(),
				Title:       in.Title,
				Description: in.Description,
				Status:      in.Status,
				AssignedTo:  in.AssignedTo,
				CreatedAt:   time.Now(),
			}
		},
		Apply: func(e *entity.KanbanTask, p dto.UpdateKanbanTaskRequest) {
			if p.Title != nil {
				e.Title = *p.Title
			}
			if p.Description != nil {
				e.Description = *p.Description
			}
			if p.Status != nil {
				e.Status = *p.Status
			}
			if p.AssignedTo != nil {
				e.AssignedTo = p.AssignedTo
			}
		},
	}, repo, cache, notifier, validate)
}

// NewAndonStationService estaciones Andon.
func NewAndonStationService(repo repository.ResourceRepository[entity.AndonStation], cache ListCache, notifier Notifier, validate *validator.Validate) *AndonStationService {
	return NewService(Definition[entity.AndonStation, dto.CreateAndonStationRequest, dto.UpdateAndonStationRequest]{
		Name:  "andon_stations",
		Label: "Andon-Station",
		New: func(in dto.CreateAndonStationRequest) *entity.AndonStation {
			now := time.Now()
			return &entity.AndonStation{
				ID:          uuid.New().String(),
				Name:        in.Name,
				Status:      in.Status,
				Efficiency:  decimal.NewFromFloat(in.Efficiency),
				LastUpdated: now,
				CreatedAt:   now,
			}
		},
		Apply: func(e *entity.AndonStation, p dto.UpdateAndonStationRequest) {
			if p.Name != nil {
				e.Name = *p.Name
			}
			if p.Status != nil {
				e.Status = *p.Status
			}
			if p.Efficiency != nil {
				e.Efficiency = decimal.NewFromFloat(*p.Efficiency)
			}
			e.LastUpdated = time.Now()
		},
	}, repo, cache, notifier, validate)
}

// NewGembaWalkService recorridos Gemba.
func NewGembaWalkService(repo repository.ResourceRepository[entity.GembaWalk], cache ListCache, notifier Notifier, validate *validator.Validate) *GembaWalkService {
	return NewService(Definition[entity.GembaWalk, dto.CreateGembaWalkRequest, dto.UpdateGembaWalkRequest]{
		Name:  "gemba_walks",
		Label: "Gemba Walk",
		New: func(in dto.CreateGembaWalkRequest) *entity.GembaWalk {
			now := time.Now()
			observations := in.Observations
			if observations == nil {
				observations = []string{}
			}
			return &entity.GembaWalk{
				ID:           uuid.New().String(),
				Title:        in.Title,
				Description:  in.Description,
				Area:         in.Area,
				Observations: observations,
				CreatedAt:    now,
				UpdatedAt:    now,
			}
		},
		Apply: func(e *entity.GembaWalk, p dto.UpdateGembaWalkRequest) {
			if p.Title != nil {
				e.Title = *p.Title
			}
			if p.Description != nil {
				e.Description = *p.Description
			}
			if p.Area != nil {
				e.Area = *p.Area
			}
			if p.Observations != nil {
				e.Observations = p.Observations
			}
			e.UpdatedAt = time.Now()
		},
	}, repo, cache, notifier, validate)
}

// NewStandardProcedureService trabajo estandarizado. Se lista por updated_at.
func NewStandardProcedureService(repo repository.ResourceRepository[entity.StandardProcedure], cache ListCache, notifier Notifier, validate *validator.Validate) *StandardProcedureService {
	return NewService(Definition[entity.StandardProcedure, dto.CreateStandardProcedureRequest, dto.UpdateStandardProcedureRequest]{
		Name:  "standard_procedures",
		Label: "Standard",
		New: func(in dto.CreateStandardProcedureRequest) *entity.StandardProcedure {
			now := time.Now()
			return &entity.StandardProcedure{
				ID:          uuid.New().String(),
				Title:       in.Title,
				Description: in.Description,
				Version:     in.Version,
				Status:      in.Status,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
		},
		Apply: func(e *entity.StandardProcedure, p dto.UpdateStandardProcedureRequest) {
			if p.Title != nil {
				e.Title = *p.Title
			}
			if p.Description != nil {
				e.Description = *p.Description
			}
			if p.Version != nil {
				e.Version = *p.Version
			}
			if p.Status != nil {
				e.Status = *p.Status
			}
			e.UpdatedAt = time.Now()
		},
	}, repo, cache, notifier, validate)
}

// NewTpmEquipmentService equipos TPM.
func NewTpmEquipmentService(repo repository.ResourceRepository[entity.TpmEquipment], cache ListCache, notifier Notifier, validate *validator.Validate) *TpmEquipmentService {
	return NewService(Definition[entity.TpmEquipment, dto.CreateTpmEquipmentRequest, dto.UpdateTpmEquipmentRequest]{
		Name:  "tpm_equipment",
		Label: "Gerät",
		New: func(in dto.CreateTpmEquipmentRequest) *entity.TpmEquipment {
			return &entity.TpmEquipment{
				ID:              uuid.New().String(),
				Name:            in.Name,
				Status:          in.Status,
				OeeScore:        decimal.NewFromFloat(in.OeeScore),
				Availability:    decimal.NewFromFloat(in.Availability),
				LastMaintenance: in.LastMaintenance,
				NextMaintenance: in.NextMaintenance,
				CreatedAt:       time.Now(),
			}
		},
		Apply: func(e *entity.TpmEquipment, p dto.UpdateTpmEquipmentRequest) {
			if p.Name != nil {
				e.Name = *p.Name
			}
			if p.Status != nil {
				e.Status = *p.Status
			}
			if p.OeeScore != nil {
				e.OeeScore = decimal.NewFromFloat(*p.OeeScore)
			}
			if p.Availability != nil {
				e.Availability = decimal.NewFromFloat(*p.Availability)
			}
			if p.LastMaintenance != nil {
				e.LastMaintenance = *p.LastMaintenance
			}
			if p.NextMaintenance != nil {
				e.NextMaintenance = *p.NextMaintenance
			}
		},
	}, repo, cache, notifier, validate)
}

// NewA3ReportService informes A3.
func NewA3ReportService(repo repository.ResourceRepository[entity.A3Report], cache ListCache, notifier Notifier, validate *validator.Validate) *A3ReportService {
	return NewService(Definition[entity.A3Report, dto.CreateA3ReportRequest, dto.UpdateA3ReportRequest]{
		Name:  "a3_reports",
		Label: "A3 Report",
		New: func(in dto.CreateA3ReportRequest) *entity.A3Report {
			team := in.Team
			if team == nil {
				team = []string{}
			}
			return &entity.A3Report{
				ID:        uuid.New().String(),
				Title:     in.Title,
				Status:    in.Status,
				Goal:      in.Goal,
				Team:      team,
				Deadline:  in.Deadline,
				Result:    in.Result,
				CreatedAt: time.Now(),
			}
		},
		Apply: func(e *entity.A3Report, p dto.UpdateA3ReportRequest) {
			if p.Title != nil {
				e.Title = *p.Title
			}
			if p.Status != nil {
				e.Status = *p.Status
			}
			if p.Goal != nil {
				e.Goal = *p.Goal
			}
			if p.Team != nil {
				e.Team = p.Team
			}
			if p.Deadline != nil {
				e.Deadline = p.Deadline
			}
			if p.Result != nil {
				e.Result = p.Result
			}
		},
	}, repo, cache, notifier, validate)
}

// NewValueStreamService flujos de valor.
func NewValueStreamService(repo repository.ResourceRepository[entity.ValueStream], cache ListCache, notifier Notifier, validate *validator.Validate) *ValueStreamService {
	return NewService(Definition[entity.ValueStream, dto.CreateValueStreamRequest, dto.UpdateValueStreamRequest]{
		Name:  "value_streams",
		Label: "Wertstromanalyse",
		New: func(in dto.CreateValueStreamRequest) *entity.ValueStream {
			now := time.Now()
			return &entity.ValueStream{
				ID:             uuid.New().String(),
				Name:           in.Name,
				Family:         in.Family,
				LeadTime:       decimal.NewFromFloat(in.LeadTime),
				LeadTimeTarget: decimal.NewFromFloat(in.LeadTimeTarget),
				ValueAddedTime: decimal.NewFromFloat(in.ValueAddedTime),
				VaIndex:        decimal.NewFromFloat(in.VaIndex),
				LastUpdated:    now,
				CreatedAt:      now,
			}
		},
		Apply: func(e *entity.ValueStream, p dto.UpdateValueStreamRequest) {
			if p.Name != nil {
				e.Name = *p.Name
			}
			if p.Family != nil {
				e.Family = *p.Family
			}
			if p.LeadTime != nil {
				e.LeadTime = decimal.NewFromFloat(*p.LeadTime)
			}
			if p.LeadTimeTarget != nil {
				e.LeadTimeTarget = decimal.NewFromFloat(*p.LeadTimeTarget)
			}
			if p.ValueAddedTime != nil {
				e.ValueAddedTime = decimal.NewFromFloat(*p.ValueAddedTime)
			}
			if p.VaIndex != nil {
				e.VaIndex = decimal.NewFromFloat(*p.VaIndex)
			}
			e.LastUpdated = time.Now()
		},
	}, repo, cache, notifier, validate)
}
