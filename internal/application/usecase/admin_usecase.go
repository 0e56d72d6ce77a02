package usecase

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/Stanko5566/lean-cockpit-api/internal/application/dto"
	"github.com/Stanko5566/lean-cockpit-api/internal/domain"
	"github.com/Stanko5566/lean-cockpit-api/internal/domain/entity"
	"github.com/Stanko5566/lean-cockpit-api/internal/domain/repository"
)

// AdminUseCase panel de administración: usuarios y asignación de roles.
type AdminUseCase struct {
	users    repository.UserRepository
	roles    repository.RoleRepository
	validate *validator.Validate
}

// NewAdminUseCase construye el caso de uso de administración.
func NewAdminUseCase(users repository.UserRepository, roles repository.RoleRepository, validate *validator.Validate) *AdminUseCase {
	return &AdminUseCase{users: users, roles: roles, validate: validate}
}

// ListUsers devuelve todos los usuarios con su rol efectivo. Los usuarios sin
// fila de rol aparecen como "user".
func (uc *AdminUseCase) ListUsers(ctx context.Context) ([]dto.AdminUserResponse, error) {
	users, err := uc.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listando usuarios: %w", err)
	}
	roleMap, err := uc.roles.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listando roles: %w", err)
	}

	out := make([]dto.AdminUserResponse, 0, len(users))
	for _, u := range users {
		role, ok := roleMap[u.ID]
		if !ok {
			role = entity.RoleUser
		}
		out = append(out, dto.AdminUserResponse{
			ID:    u.ID,
			Email: u.Email,
			Name:  u.Name,
			Role:  role,
		})
	}
	return out, nil
}

// SetRole asigna (upsert) el rol de un usuario existente.
func (uc *AdminUseCase) SetRole(ctx context.Context, userID string, in dto.SetRoleRequest) error {
	if err := uc.validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("buscando usuario: %w", err)
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.roles.Set(ctx, userID, in.Role)
}
