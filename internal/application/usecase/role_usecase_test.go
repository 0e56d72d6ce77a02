package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Stanko5566/lean-cockpit-api/internal/application/usecase"
	"github.com/Stanko5566/lean-cockpit-api/internal/domain"
	"github.com/Stanko5566/lean-cockpit-api/internal/domain/entity"
	"github.com/Stanko5566/lean-cockpit-api/pkg/logger"
)

// fakeRoleRepo asignaciones de rol en memoria con errores inyectables.
type fakeRoleRepo struct {
	roles    map[string]string
	failWith error
}

func (r *fakeRoleRepo) GetByUser(_ context.Context, userID string) (string, error) {
	if r.failWith != nil {
		return "", r.failWith
	}
	role, ok := r.roles[userID]
	if !ok {
		return "", domain.ErrNotFound
	}
	return role, nil
}

func (r *fakeRoleRepo) Set(_ context.Context, userID, role string) error {
	if r.roles == nil {
		r.roles = map[string]string{}
	}
	r.roles[userID] = role
	return nil
}

func (r *fakeRoleRepo) ListAll(context.Context) (map[string]string, error) {
	return r.roles, nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func TestResolve_SinFilaDeRolEsUser(t *testing.T) {
	uc := usecase.NewRoleUseCase(&fakeRoleRepo{}, testLogger())
	assert.Equal(t, entity.RoleUser, uc.Resolve(context.Background(), "sin-fila"),
		"la ausencia de asignación resuelve a user, nunca a error")
}

func TestResolve_FalloDeConsultaDegradaAUser(t *testing.T) {
	repo := &fakeRoleRepo{failWith: errors.New("timeout")}
	uc := usecase.NewRoleUseCase(repo, testLogger())
	assert.Equal(t, entity.RoleUser, uc.Resolve(context.Background(), "u1"),
		"nadie gana privilegios por un fallo de lectura")
}

func TestResolve_DevuelveRolAsignado(t *testing.T) {
	repo := &fakeRoleRepo{roles: map[string]string{"u1": entity.RoleAdmin}}
	uc := usecase.NewRoleUseCase(repo, testLogger())
	assert.Equal(t, entity.RoleAdmin, uc.Resolve(context.Background(), "u1"))
}

func TestResolve_RolDesconocidoDegradaAUser(t *testing.T) {
	repo := &fakeRoleRepo{roles: map[string]string{"u1": "superadmin"}}
	uc := usecase.NewRoleUseCase(repo, testLogger())
	assert.Equal(t, entity.RoleUser, uc.Resolve(context.Background(), "u1"))
}
