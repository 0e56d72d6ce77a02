package dto

// DTOs de los módulos con métricas: 5S, TPM y flujos de valor.

// CreateFiveSChecklistRequest alta de una auditoría 5S (puntuación 0..5 por S).
type CreateFiveSChecklistRequest struct {
	Title       string `json:"title" validate:"required,max=100"`
	Description string `json:"description" validate:"required,max=500"`
	Seiri       int    `json:"seiri" validate:"min=0,max=5"`
	Seiton      int    `json:"seiton" validate:"min=0,max=5"`
	Seiso       int    `json:"seiso" validate:"min=0,max=5"`
	Seiketsu    int    `json:"seiketsu" validate:"min=0,max=5"`
	Shitsuke    int    `json:"shitsuke" validate:"min=0,max=5"`
}

// UpdateFiveSChecklistRequest actualización parcial de una auditoría 5S.
type UpdateFiveSChecklistRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Seiri       *int    `json:"seiri" validate:"omitempty,min=0,max=5"`
	Seiton      *int    `json:"seiton" validate:"omitempty,min=0,max=5"`
	Seiso       *int    `json:"seiso" validate:"omitempty,min=0,max=5"`
	Seiketsu    *int    `json:"seiketsu" validate:"omitempty,min=0,max=5"`
	Shitsuke    *int    `json:"shitsuke" validate:"omitempty,min=0,max=5"`
}

// CreateTpmEquipmentRequest alta de un equipo TPM.
type CreateTpmEquipmentRequest struct {
	Name            string  `json:"name" validate:"required,max=100"`
	Status          string  `json:"status" validate:"required,oneof=running maintenance down"`
	OeeScore        float64 `json:"oee_score" validate:"min=0,max=100"`
	Availability    float64 `json:"availability" validate:"min=0,max=100"`
	LastMaintenance string  `json:"last_maintenance" validate:"required,datetime=2006-01-02"`
	NextMaintenance string  `json:"next_maintenance" validate:"required,datetime=2006-01-02"`
}

// UpdateTpmEquipmentRequest actualización parcial de un equipo TPM.
type UpdateTpmEquipmentRequest struct {
	Name            *string  `json:"name" validate:"omitempty,max=100"`
	Status          *string  `json:"status" validate:"omitempty,oneof=running maintenance down"`
	OeeScore        *float64 `json:"oee_score" validate:"omitempty,min=0,max=100"`
	Availability    *float64 `json:"availability" validate:"omitempty,min=0,max=100"`
	LastMaintenance *string  `json:"last_maintenance" validate:"omitempty,datetime=2006-01-02"`
	NextMaintenance *string  `json:"next_maintenance" validate:"omitempty,datetime=2006-01-02"`
}

// CreateValueStreamRequest alta de un flujo de valor.
type CreateValueStreamRequest struct {
	Name           string  `json:"name" validate:"required,max=100"`
	Family         string  `json:"family" validate:"required,max=100"`
	LeadTime       float64 `json:"lead_time" validate:"min=0"`
	LeadTimeTarget float64 `json:"lead_time_target" validate:"min=0"`
	ValueAddedTime float64 `json:"value_added_time" validate:"min=0"`
	VaIndex        float64 `json:"va_index" validate:"min=0,max=100"`
}

// UpdateValueStreamRequest actualización parcial de un flujo de valor.
type UpdateValueStreamRequest struct {
	Name           *string  `json:"name" validate:"omitempty,max=100"`
	Family         *string  `json:"family" validate:"omitempty,max=100"`
	LeadTime       *float64 `json:"lead_time" validate:"omitempty,min=0"`
	LeadTimeTarget *float64 `json:"lead_time_target" validate:"omitempty,min=0"`
	ValueAddedTime *float64 `json:"value_added_time" validate:"omitempty,min=0"`
	VaIndex        *float64 `json:"va_index" validate:"omitempty,min=0,max=100"`
}
