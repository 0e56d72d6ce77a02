package entity

import "time"

// PdcaStatusDefault fase inicial de un ciclo recién creado.
const PdcaStatusDefault = "plan"

// PdcaCycle un ciclo PDCA. Las cuatro fases son texto libre y opcionales
// hasta que el ciclo avanza.
type PdcaCycle struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"` // plan, do, check, act
	Plan        *string   `json:"plan"`
	Do          *string   `json:"do"`
	Check       *string   `json:"check"`
	Act         *string   `json:"act"`
	CreatedAt   time.Time `json:"created_at"`
}
