package entity

import "time"

// StandardProcedure un documento de trabajo estandarizado versionado.
// Es la única entidad que se lista por fecha de modificación.
type StandardProcedure struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Version     string    `json:"version"`
	Status      string    `json:"status"` // draft, review, active
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
