package dto

// DTOs de los módulos de mejora: iniciativas, PDCA, Kaizen y A3.

// CreateLeanInitiativeRequest alta de una iniciativa lean.
type CreateLeanInitiativeRequest struct {
	Title       string   `json:"title" validate:"required,max=100"`
	Description string   `json:"description" validate:"required,max=500"`
	Status      string   `json:"status" validate:"required,oneof=green yellow red"`
	DueDate     *string  `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	Owner       *string  `json:"owner" validate:"omitempty,max=100"`
	Progress    *float64 `json:"progress" validate:"omitempty,min=0,max=100"`
}

// UpdateLeanInitiativeRequest actualización parcial de una iniciativa.
type UpdateLeanInitiativeRequest struct {
	Title       *string  `json:"title" validate:"omitempty,max=100"`
	Description *string  `json:"description" validate:"omitempty,max=500"`
	Status      *string  `json:"status" validate:"omitempty,oneof=green yellow red"`
	DueDate     *string  `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	Owner       *string  `json:"owner" validate:"omitempty,max=100"`
	Progress    *float64 `json:"progress" validate:"omitempty,min=0,max=100"`
}

// CreatePdcaCycleRequest alta de un ciclo PDCA. Status vacío arranca en "plan".
type CreatePdcaCycleRequest struct {
	Title       string `json:"title" validate:"required,max=100"`
	Description string `json:"description" validate:"required,max=500"`
	Status      string `json:"status" validate:"omitempty,oneof=plan do check act"`
}

// UpdatePdcaCycleRequest actualización parcial de un ciclo PDCA.
type UpdatePdcaCycleRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Status      *string `json:"status" validate:"omitempty,oneof=plan do check act"`
	Plan        *string `json:"plan"`
	Do          *string `json:"do"`
	Check       *string `json:"check"`
	Act         *string `json:"act"`
}

// CreateKaizenItemRequest alta de una propuesta Kaizen.
type CreateKaizenItemRequest struct {
	Title          string  `json:"title" validate:"required,max=100"`
	Description    string  `json:"description" validate:"required,max=500"`
	Status         string  `json:"status" validate:"required,oneof=open in_progress completed"`
	Submitter      *string `json:"submitter" validate:"omitempty,max=100"`
	Responsible    *string `json:"responsible" validate:"omitempty,max=100"`
	CompletionDate *string `json:"completion_date" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateKaizenItemRequest actualización parcial de una propuesta Kaizen.
type UpdateKaizenItemRequest struct {
	Title          *string `json:"title" validate:"omitempty,max=100"`
	Description    *string `json:"description" validate:"omitempty,max=500"`
	Status         *string `json:"status" validate:"omitempty,oneof=open in_progress completed"`
	Submitter      *string `json:"submitter" validate:"omitempty,max=100"`
	Responsible    *string `json:"responsible" validate:"omitempty,max=100"`
	CompletionDate *string `json:"completion_date" validate:"omitempty,datetime=2006-01-02"`
}

// CreateA3ReportRequest alta de un informe A3.
type CreateA3ReportRequest struct {
	Title    string   `json:"title" validate:"required,max=100"`
	Status   string   `json:"status" validate:"required,oneof=draft in_progress completed"`
	Goal     string   `json:"goal" validate:"required,max=500"`
	Team     []string `json:"team" validate:"dive,max=100"`
	Deadline *string  `json:"deadline" validate:"omitempty,datetime=2006-01-02"`
	Result   *string  `json:"result" validate:"omitempty,max=500"`
}

// UpdateA3ReportRequest actualización parcial de un informe A3.
type UpdateA3ReportRequest struct {
	Title    *string  `json:"title" validate:"omitempty,max=100"`
	Status   *string  `json:"status" validate:"omitempty,oneof=draft in_progress completed"`
	Goal     *string  `json:"goal" validate:"omitempty,max=500"`
	Team     []string `json:"team" validate:"omitempty,dive,max=100"`
	Deadline *string  `json:"deadline" validate:"omitempty,datetime=2006-01-02"`
	Result   *string  `json:"result" validate:"omitempty,max=500"`
}
