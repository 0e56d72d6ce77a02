package entity

import "time"

// A3Report un informe A3 de resolución de problemas.
type A3Report struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"` // draft, in_progress, completed
	Goal      string    `json:"goal"`
	Team      []string  `json:"team"`
	Deadline  *string   `json:"deadline"` // YYYY-MM-DD
	Result    *string   `json:"result"`
	CreatedAt time.Time `json:"created_at"`
}
