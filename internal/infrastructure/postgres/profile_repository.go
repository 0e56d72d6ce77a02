package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Stanko5566/lean-cockpit-api/internal/domain"
	"github.com/Stanko5566/lean-cockpit-api/internal/domain/entity"
)

// ProfileRepo implementación PostgreSQL de repository.ProfileRepository.
type ProfileRepo struct {
	db Querier
}

// NewProfileRepo construye el repositorio de perfiles.
func NewProfileRepo(db Querier) *ProfileRepo {
	return &ProfileRepo{db: db}
}

// GetByUser devuelve el perfil del usuario o nil sin error si no existe.
func (r *ProfileRepo) GetByUser(ctx context.Context, userID string) (*entity.UserProfile, error) {
	p := &entity.UserProfile{}
	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, company, position, phone, created_at, updated_at
		 FROM user_profiles WHERE user_id = $1`, userID).
		Scan(&p.ID, &p.UserID, &p.Company, &p.Position, &p.Phone, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("consultando perfil: %w", err)
	}
	return p, nil
}

// Create inserta el perfil (uno por usuario).
func (r *ProfileRepo) Create(ctx context.Context, profile *entity.UserProfile) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO user_profiles (id, user_id, company, position, phone, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		profile.ID, profile.UserID, profile.Company, profile.Position, profile.Phone,
		profile.CreatedAt, profile.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insertando perfil: %w", err)
	}
	return nil
}

// Update reescribe los campos editables del perfil.
func (r *ProfileRepo) Update(ctx context.Context, profile *entity.UserProfile) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE user_profiles
		 SET company = $2, position = $3, phone = $4, updated_at = $5
		 WHERE user_id = $1`,
		profile.UserID, profile.Company, profile.Position, profile.Phone, profile.UpdatedAt)
	if err != nil {
		return fmt.Errorf("actualizando perfil: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
