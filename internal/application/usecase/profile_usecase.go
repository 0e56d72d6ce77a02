package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/Stanko5566/lean-cockpit-api/internal/application/dto"
	"github.com/Stanko5566/lean-cockpit-api/internal/domain"
	"github.com/Stanko5566/lean-cockpit-api/internal/domain/entity"
	"github.com/Stanko5566/lean-cockpit-api/internal/domain/repository"
)

// ProfileUseCase perfil 1:1 del usuario autenticado.
type ProfileUseCase struct {
	profiles repository.ProfileRepository
	validate *validator.Validate
}

// NewProfileUseCase construye el caso de uso de perfil.
func NewProfileUseCase(profiles repository.ProfileRepository, validate *validator.Validate) *ProfileUseCase {
	return &ProfileUseCase{profiles: profiles, validate: validate}
}

// Get devuelve el perfil del usuario, creándolo vacío en el primer acceso.
func (uc *ProfileUseCase) Get(ctx context.Context, userID string) (*entity.UserProfile, error) {
	profile, err := uc.profiles.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("buscando perfil: %w", err)
	}
	if profile != nil {
		return profile, nil
	}

	now := time.Now()
	profile = &entity.UserProfile{
		ID:        uuid.New().String(),
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.profiles.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("creando perfil inicial: %w", err)
	}
	return profile, nil
}

// Update aplica un parche parcial sobre el perfil (solo campos no nulos).
func (uc *ProfileUseCase) Update(ctx context.Context, userID string, in dto.UpdateProfileRequest) (*entity.UserProfile, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	profile, err := uc.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if in.Company != nil {
		profile.Company = in.Company
	}
	if in.Position != nil {
		profile.Position = in.Position
	}
	if in.Phone != nil {
		profile.Phone = in.Phone
	}
	profile.UpdatedAt = time.Now()

	if err := uc.profiles.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("actualizando perfil: %w", err)
	}
	return profile, nil
}
