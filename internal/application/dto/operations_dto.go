package dto

// DTOs de los módulos operativos: Kanban, Andon, Gemba y trabajo estandarizado.

// CreateKanbanTaskRequest alta de una tarjeta Kanban.
type CreateKanbanTaskRequest struct {
	Title       string  `json:"title" validate:"required,max=100"`
	Description string  `json:"description" validate:"required,max=500"`
	Status      string  `json:"status" validate:"required,oneof=todo in_progress done"`
	AssignedTo  *string `json:"assigned_to" validate:"omitempty,max=100"`
}

// UpdateKanbanTaskRequest actualización parcial de una tarjeta Kanban.
type UpdateKanbanTaskRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Status      *string `json:"status" validate:"omitempty,oneof=todo in_progress done"`
	AssignedTo  *string `json:"assigned_to" validate:"omitempty,max=100"`
}

// CreateAndonStationRequest alta de una estación Andon.
type CreateAndonStationRequest struct {
	Name       string  `json:"name" validate:"required,max=100"`
	Status     string  `json:"status" validate:"required,oneof=active maintenance error"`
	Efficiency float64 `json:"efficiency" validate:"min=0,max=100"`
}

// UpdateAndonStationRequest actualización parcial de una estación Andon.
type UpdateAndonStationRequest struct {
	Name       *string  `json:"name" validate:"omitempty,max=100"`
	Status     *string  `json:"status" validate:"omitempty,oneof=active maintenance error"`
	Efficiency *float64 `json:"efficiency" validate:"omitempty,min=0,max=100"`
}

// CreateGembaWalkRequest alta de un recorrido Gemba.
type CreateGembaWalkRequest struct {
	Title        string   `json:"title" validate:"required,max=100"`
	Description  string   `json:"description" validate:"required,max=500"`
	Area         string   `json:"area" validate:"required,max=100"`
	Observations []string `json:"observations" validate:"dive,max=500"`
}

// UpdateGembaWalkRequest actualización parcial de un recorrido Gemba.
type UpdateGembaWalkRequest struct {
	Title        *string  `json:"title" validate:"omitempty,max=100"`
	Description  *string  `json:"description" validate:"omitempty,max=500"`
	Area         *string  `json:"area" validate:"omitempty,max=100"`
	Observations []string `json:"observations" validate:"omitempty,dive,max=500"`
}

// CreateStandardProcedureRequest alta de un procedimiento estandarizado.
type CreateStandardProcedureRequest struct {
	Title       string `json:"title" validate:"required,max=100"`
	Description string `json:"description" validate:"required,max=500"`
	Version     string `json:"version" validate:"required,max=20"`
	Status      string `json:"status" validate:"required,oneof=draft review active"`
}

// UpdateStandardProcedureRequest actualización parcial de un procedimiento.
type UpdateStandardProcedureRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Version     *string `json:"version" validate:"omitempty,max=20"`
	Status      *string `json:"status" validate:"omitempty,oneof=draft review active"`
}
