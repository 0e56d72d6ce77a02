package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Stanko5566/lean-cockpit-api/internal/domain"
)

// RoleRepo implementación PostgreSQL de repository.RoleRepository.
// La tabla user_roles tiene a lo sumo una fila por usuario.
type RoleRepo struct {
	db Querier
}

// NewRoleRepo construye el repositorio de roles.
func NewRoleRepo(db Querier) *RoleRepo {
	return &RoleRepo{db: db}
}

// GetByUser devuelve el rol asignado o domain.ErrNotFound si no hay fila.
func (r *RoleRepo) GetByUser(ctx context.Context, userID string) (string, error) {
	var role string
	err := r.db.QueryRow(ctx,
		"SELECT role FROM user_roles WHERE user_id = $1", userID).Scan(&role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("consultando rol: %w", err)
	}
	return role, nil
}

// Set hace upsert de la asignación (user_id es único).
func (r *RoleRepo) Set(ctx context.Context, userID, role string) error {
	now := time.Now()
	_, err := r.db.Exec(ctx,
		`INSERT INTO user_roles (id, user_id, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $4)
		 ON CONFLICT (user_id)
		 DO UPDATE SET role = EXCLUDED.role, updated_at = EXCLUDED.updated_at`,
		uuid.New().String(), userID, role, now)
	if err != nil {
		return fmt.Errorf("guardando rol: %w", err)
	}
	return nil
}

// ListAll devuelve el mapa user_id -> role de todas las asignaciones.
func (r *RoleRepo) ListAll(ctx context.Context) (map[string]string, error) {
	rows, err := r.db.Query(ctx, "SELECT user_id, role FROM user_roles")
	if err != nil {
		return nil, fmt.Errorf("listando roles: %w", err)
	}
	defer rows.Close()

	m := make(map[string]string)
	for rows.Next() {
		var userID, role string
		if err := rows.Scan(&userID, &role); err != nil {
			return nil, fmt.Errorf("escaneando rol: %w", err)
		}
		m[userID] = role
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterando roles: %w", err)
	}
	return m, nil
}
