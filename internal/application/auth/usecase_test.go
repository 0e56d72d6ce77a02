package auth_test

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Stanko5566/lean-cockpit-api/internal/application/auth"
	"github.com/Stanko5566/lean-cockpit-api/internal/application/dto"
	"github.com/Stanko5566/lean-cockpit-api/internal/domain"
	"github.com/Stanko5566/lean-cockpit-api/internal/domain/entity"
	"github.com/Stanko5566/lean-cockpit-api/pkg/jwt"
	"github.com/Stanko5566/lean-cockpit-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byID    map[string]*entity.User
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[string]*entity.User{}, byEmail: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.byID[user.ID] = user
	r.byEmail[user.Email] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.byID[id], nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.byEmail[email], nil
}

func (r *fakeUserRepo) List(context.Context) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.byID {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, id, passwordHash string) error {
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

type fakeRoleRepo struct {
	roles map[string]string
}

func (r *fakeRoleRepo) GetByUser(_ context.Context, userID string) (string, error) {
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

type fakeProfileRepo struct {
	byUser map[string]*entity.UserProfile
}

func (r *fakeProfileRepo) GetByUser(_ context.Context, userID string) (*entity.UserProfile, error) {
	return r.byUser[userID], nil
}

func (r *fakeProfileRepo) Create(_ context.Context, profile *entity.UserProfile) error {
	if r.byUser == nil {
		r.byUser = map[string]*entity.UserProfile{}
	}
	r.byUser[profile.UserID] = profile
	return nil
}

func (r *fakeProfileRepo) Update(_ context.Context, profile *entity.UserProfile) error {
	r.byUser[profile.UserID] = profile
	return nil
}

// fakeResolver siempre devuelve el rol configurado.
type fakeResolver struct {
	role string
}

func (f *fakeResolver) Resolve(context.Context, string) string {
	if f.role == "" {
		return entity.RoleUser
	}
	return f.role
}

const testSecret = "auth-test-secret"

func buildAuthUC(role string) (*auth.UseCase, *fakeUserRepo, *fakeRoleRepo, *fakeProfileRepo) {
	users := newFakeUserRepo()
	roles := &fakeRoleRepo{}
	profiles := &fakeProfileRepo{}
	uc := auth.NewUseCase(users, roles, profiles, &fakeResolver{role: role}, validator.New(), auth.Config{
		JWTSecret:  testSecret,
		JWTIssuer:  "lean-cockpit-test",
		ExpMinutes: 60,
	}, logger.New(logger.Config{Env: "production", Level: "error"}))
	return uc, users, roles, profiles
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CreaUsuarioConRolUserYPerfilVacio(t *testing.T) {
	uc, users, roles, profiles := buildAuthUC("")
	ctx := context.Background()

	out, err := uc.Register(ctx, dto.RegisterRequest{
		Email:    "anna@werk.de",
		Password: "sehr-geheim-123",
		Name:     "Anna",
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, entity.RoleUser, out.User.Role, "todo registro arranca como user")

	stored := users.byEmail["anna@werk.de"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "sehr-geheim-123", stored.PasswordHash, "la contraseña nunca se guarda en claro")
	assert.Equal(t, "active", stored.Status)
	assert.Equal(t, entity.RoleUser, roles.roles[stored.ID])
	assert.NotNil(t, profiles.byUser[stored.ID], "el registro crea el perfil vacío")

	// El token emitido es parseable y lleva el rol
	userID, role, err := jwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, userID)
	assert.Equal(t, entity.RoleUser, role)
}

func TestRegister_EmailDuplicadoFalla(t *testing.T) {
	uc, _, _, _ := buildAuthUC("")
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Email: "x@werk.de", Password: "sehr-geheim-123"})
	require.NoError(t, err)

	_, err = uc.Register(ctx, dto.RegisterRequest{Email: "x@werk.de", Password: "otro-password-9"})
	require.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_PasswordCortaFalla(t *testing.T) {
	uc, _, _, _ := buildAuthUC("")

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Email: "y@werk.de", Password: "corta"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesCorrectasEmiteToken(t *testing.T) {
	uc, _, _, _ := buildAuthUC(entity.RoleAdmin)
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Email: "chef@werk.de", Password: "sehr-geheim-123"})
	require.NoError(t, err)

	out, err := uc.Login(ctx, dto.LoginRequest{Email: "chef@werk.de", Password: "sehr-geheim-123"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.User.Role, "el login usa el rol efectivo del resolutor")

	_, role, err := jwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLogin_PasswordIncorrectaEsUnauthorized(t *testing.T) {
	uc, _, _, _ := buildAuthUC("")
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Email: "z@werk.de", Password: "sehr-geheim-123"})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "z@werk.de", Password: "equivocada-99"})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmailDesconocidoEsUnauthorized(t *testing.T) {
	uc, _, _, _ := buildAuthUC("")

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@werk.de", Password: "lo-que-sea-1"})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_CuentaInactivaEsForbidden(t *testing.T) {
	uc, users, _, _ := buildAuthUC("")
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Email: "alt@werk.de", Password: "sehr-geheim-123"})
	require.NoError(t, err)
	users.byEmail["alt@werk.de"].Status = "inactive"

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "alt@werk.de", Password: "sehr-geheim-123"})
	require.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdatePassword
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdatePassword_VerificaLaActual(t *testing.T) {
	uc, users, _, _ := buildAuthUC("")
	ctx := context.Background()

	out, err := uc.Register(ctx, dto.RegisterRequest{Email: "p@werk.de", Password: "sehr-geheim-123"})
	require.NoError(t, err)
	userID := users.byEmail["p@werk.de"].ID
	_ = out

	err = uc.UpdatePassword(ctx, userID, dto.UpdatePasswordRequest{
		CurrentPassword: "equivocada-99",
		NewPassword:     "nueva-clave-456",
	})
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	err = uc.UpdatePassword(ctx, userID, dto.UpdatePasswordRequest{
		CurrentPassword: "sehr-geheim-123",
		NewPassword:     "nueva-clave-456",
	})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "p@werk.de", Password: "nueva-clave-456"})
	assert.NoError(t, err, "tras el cambio la nueva contraseña funciona")
}
