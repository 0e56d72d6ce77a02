package entity

import "time"

// Estados de un Kaizen.
const (
	KaizenOpen       = "open"
	KaizenInProgress = "in_progress"
	KaizenCompleted  = "completed"
)

// KaizenItem una propuesta de mejora continua.
type KaizenItem struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Status         string    `json:"status"` // open, in_progress, completed
	Submitter      *string   `json:"submitter"`
	Responsible    *string   `json:"responsible"`
	CompletionDate *string   `json:"completion_date"` // YYYY-MM-DD
	CreatedAt      time.Time `json:"created_at"`
}
