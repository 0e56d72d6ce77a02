package repository

import (
	"context"

	"github.com/Stanko5566/lean-cockpit-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}

// RoleRepository persistencia de asignaciones de rol (una fila por usuario).
type RoleRepository interface {
	// GetByUser devuelve domain.ErrNotFound si el usuario no tiene fila de rol.
	GetByUser(ctx context.Context, userID string) (string, error)
	// Set hace upsert de la asignación de rol del usuario.
	Set(ctx context.Context, userID, role string) error
	// ListAll devuelve el mapa user_id -> role.
	ListAll(ctx context.Context) (map[string]string, error)
}

// SidebarRepository persistencia de preferencias de menú por usuario.
type SidebarRepository interface {
	ListByUser(ctx context.Context, userID string) ([]*entity.SidebarPreference, error)
	// Upsert inserta o actualiza la fila (user_id, menu_item); nunca duplica.
	Upsert(ctx context.Context, pref *entity.SidebarPreference) error
}

// ProfileRepository persistencia del perfil 1:1 del usuario.
type ProfileRepository interface {
	GetByUser(ctx context.Context, userID string) (*entity.UserProfile, error)
	Create(ctx context.Context, profile *entity.UserProfile) error
	Update(ctx context.Context, profile *entity.UserProfile) error
}
