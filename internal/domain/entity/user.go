package entity

import "time"

// Roles válidos. RoleUser es el valor por defecto cuando no existe asignación
// o la consulta de rol falla (fail-closed para privilegios de admin).
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User representa un usuario autenticable del sistema.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // bcrypt hash, nunca plano en dominio después de persistir
	Name         string    `json:"name"`
	Status       string    `json:"status"` // active, inactive
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RoleAssignment es la fila (user_id, role). A lo sumo una por usuario;
// su ausencia se interpreta como RoleUser, nunca como error.
type RoleAssignment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserProfile datos de perfil 1:1 con el usuario. Se crea vacío en el primer acceso.
type UserProfile struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Company   *string   `json:"company"`
	Position  *string   `json:"position"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SidebarPreference override de visibilidad de un ítem del menú para un usuario.
// La ausencia de fila significa visible (política default-visible).
type SidebarPreference struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	MenuItem  string    `json:"menu_item"`
	IsHidden  bool      `json:"is_hidden"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
