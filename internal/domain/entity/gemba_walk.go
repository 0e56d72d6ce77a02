package entity

import "time"

// GembaWalk un recorrido Gemba con sus observaciones.
// El área se guarda en el campo canónico Area.
type GembaWalk struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Area         string    `json:"area"`
	Observations []string  `json:"observations"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
