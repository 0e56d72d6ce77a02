// Package auth implementa registro, login y cambio de contraseña.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Stanko5566/lean-cockpit-api/internal/application/dto"
	"github.com/Stanko5566/lean-cockpit-api/internal/domain"
	"github.com/Stanko5566/lean-cockpit-api/internal/domain/entity"
	"github.com/Stanko5566/lean-cockpit-api/internal/domain/repository"
	"github.com/Stanko5566/lean-cockpit-api/pkg/jwt"
	"github.com/Stanko5566/lean-cockpit-api/pkg/logger"
)

// roleResolver interfaz mínima para resolver el rol efectivo de un usuario.
type roleResolver interface {
	Resolve(ctx context.Context, userID string) string
}

// Config parámetros de firma de tokens.
type Config struct {
	JWTSecret  string
	JWTIssuer  string
	ExpMinutes int
}

// UseCase casos de uso de autenticación.
type UseCase struct {
	users    repository.UserRepository
	roles    repository.RoleRepository
	profiles repository.ProfileRepository
	resolver roleResolver
	validate *validator.Validate
	cfg      Config
	log      *logger.Logger
}

// NewUseCase construye el caso de uso de autenticación.
func NewUseCase(
	users repository.UserRepository,
	roles repository.RoleRepository,
	profiles repository.ProfileRepository,
	resolver roleResolver,
	validate *validator.Validate,
	cfg Config,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		users:    users,
		roles:    roles,
		profiles: profiles,
		resolver: resolver,
		validate: validate,
		cfg:      cfg,
		log:      log,
	}
}

// Register da de alta un usuario nuevo: rol "user" por defecto y perfil vacío.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.LoginResponse, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	existing, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("verificando email: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("generando hash: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("creando usuario: %w", err)
	}

	// Fila de rol explícita y perfil vacío. Si cualquiera falla el login
	// sigue funcionando: la resolución de rol degrada a "user" y el perfil
	// se crea en el primer acceso.
	if err := uc.roles.Set(ctx, user.ID, entity.RoleUser); err != nil {
		uc.log.Warn().Err(err).Str("user_id", user.ID).Msg("no se pudo crear la fila de rol")
	}
	if err := uc.profiles.Create(ctx, &entity.UserProfile{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}); err != nil {
		uc.log.Warn().Err(err).Str("user_id", user.ID).Msg("no se pudo crear el perfil inicial")
	}

	return uc.issue(user, entity.RoleUser)
}

// Login valida credenciales y emite un JWT con el rol efectivo.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	user, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("buscando usuario: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	role := uc.resolver.Resolve(ctx, user.ID)
	return uc.issue(user, role)
}

// UpdatePassword cambia la contraseña del usuario autenticado verificando la actual.
func (uc *UseCase) UpdatePassword(ctx context.Context, userID string, in dto.UpdatePasswordRequest) error {
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
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return domain.ErrUnauthorized
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("generando hash: %w", err)
	}
	return uc.users.UpdatePassword(ctx, userID, string(hash))
}

// Me devuelve el usuario autenticado con su rol efectivo.
func (uc *UseCase) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("buscando usuario: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	role := uc.resolver.Resolve(ctx, user.ID)
	resp := toUserResponse(user, role)
	return &resp, nil
}

func (uc *UseCase) issue(user *entity.User, role string) (*dto.LoginResponse, error) {
	token, err := jwt.Generate(uc.cfg.JWTSecret, user.ID, role, uc.cfg.JWTIssuer, uc.cfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("firmando token: %w", err)
	}
	return &dto.LoginResponse{
		Token: token,
		User:  toUserResponse(user, role),
	}, nil
}

func toUserResponse(user *entity.User, role string) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      role,
		Status:    user.Status,
		CreatedAt: user.CreatedAt,
	}
}
