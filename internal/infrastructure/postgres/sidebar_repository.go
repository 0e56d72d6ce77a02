package postgres

import (
	"context"
	"fmt"

	"github.com/Stanko5566/lean-cockpit-api/internal/domain/entity"
)

// SidebarRepo implementación PostgreSQL de repository.SidebarRepository.
type SidebarRepo struct {
	db Querier
}

// NewSidebarRepo construye el repositorio de preferencias de menú.
func NewSidebarRepo(db Querier) *SidebarRepo {
	return &SidebarRepo{db: db}
}

// ListByUser devuelve las preferencias guardadas del usuario.
func (r *SidebarRepo) ListByUser(ctx context.Context, userID string) ([]*entity.SidebarPreference, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, menu_item, is_hidden, created_at, updated_at
		 FROM sidebar_preferences WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("listando preferencias de menú: %w", err)
	}
	defer rows.Close()

	var prefs []*entity.SidebarPreference
	for rows.Next() {
		p := &entity.SidebarPreference{}
		if err := rows.Scan(&p.ID, &p.UserID, &p.MenuItem, &p.IsHidden, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("escaneando preferencia: %w", err)
		}
		prefs = append(prefs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterando preferencias: %w", err)
	}
	return prefs, nil
}

// Upsert inserta o actualiza la fila (user_id, menu_item). La restricción
// única garantiza una sola fila por ítem y usuario.
func (r *SidebarRepo) Upsert(ctx context.Context, pref *entity.SidebarPreference) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO sidebar_preferences (id, user_id, menu_item, is_hidden, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (user_id, menu_item)
		 DO UPDATE SET is_hidden = EXCLUDED.is_hidden, updated_at = EXCLUDED.updated_at`,
		pref.ID, pref.UserID, pref.MenuItem, pref.IsHidden, pref.CreatedAt, pref.UpdatedAt)
	if err != nil {
		return fmt.Errorf("guardando preferencia de menú: %w", err)
	}
	return nil
}
