package entity

import "time"

// FiveSChecklist una auditoría 5S con puntuación 0..5 por cada S.
type FiveSChecklist struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Seiri       int       `json:"seiri"`    // Sortieren
	Seiton      int       `json:"seiton"`   // Setzen
	Seiso       int       `json:"seiso"`    // Säubern
	Seiketsu    int       `json:"seiketsu"` // Standardisieren
	Shitsuke    int       `json:"shitsuke"` // Selbstdisziplin
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Average puntuación media de las cinco S.
func (c *FiveSChecklist) Average() float64 {
	return float64(c.Seiri+c.Seiton+c.Seiso+c.Seiketsu+c.Shitsuke) / 5.0
}
