// Package usecase contiene los casos de uso transversales del cockpit:
// roles, menú lateral, perfil, administración y dashboard.
package usecase

import (
	"context"
	"errors"

	"github.com/Stanko5566/lean-cockpit-api/internal/domain"
	"github.com/Stanko5566/lean-cockpit-api/internal/domain/entity"
	"github.com/Stanko5566/lean-cockpit-api/internal/domain/repository"
	"github.com/Stanko5566/lean-cockpit-api/pkg/logger"
)

// RoleUseCase resuelve el rol efectivo de un usuario.
type RoleUseCase struct {
	roles repository.RoleRepository
	log   *logger.Logger
}

// NewRoleUseCase construye el resolutor de roles.
func NewRoleUseCase(roles repository.RoleRepository, log *logger.Logger) *RoleUseCase {
	return &RoleUseCase{roles: roles, log: log}
}

// Resolve devuelve el rol del usuario. Sin fila de rol o ante cualquier fallo
// de consulta devuelve "user": nadie gana privilegios por un error de lectura.
func (uc *RoleUseCase) Resolve(ctx context.Context, userID string) string {
	role, err := uc.roles.GetByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			uc.log.Warn().Err(err).Str("user_id", userID).Msg("fallo resolviendo rol, se asume user")
		}
		return entity.RoleUser
	}
	if role != entity.RoleAdmin && role != entity.RoleUser {
		uc.log.Warn().Str("user_id", userID).Str("role", role).Msg("rol desconocido, se asume user")
		return entity.RoleUser
	}
	return role
}
