package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Stanko5566/lean-cockpit-api/internal/application/dto"
	"github.com/Stanko5566/lean-cockpit-api/internal/application/usecase"
	"github.com/Stanko5566/lean-cockpit-api/internal/domain"
	"github.com/Stanko5566/lean-cockpit-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test
// ──────────────────────────────────────────────────────────────────────────────

// fakeSidebarRepo guarda preferencias por (user_id, menu_item) en memoria.
type fakeSidebarRepo struct {
	prefs     map[string]map[string]*entity.SidebarPreference
	listCalls int
}

func newFakeSidebarRepo() *fakeSidebarRepo {
	return &fakeSidebarRepo{prefs: map[string]map[string]*entity.SidebarPreference{}}
}

func (r *fakeSidebarRepo) ListByUser(_ context.Context, userID string) ([]*entity.SidebarPreference, error) {
	r.listCalls++
	var out []*entity.SidebarPreference
	for _, p := range r.prefs[userID] {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeSidebarRepo) Upsert(_ context.Context, pref *entity.SidebarPreference) error {
	if r.prefs[pref.UserID] == nil {
		r.prefs[pref.UserID] = map[string]*entity.SidebarPreference{}
	}
	r.prefs[pref.UserID][pref.MenuItem] = pref
	return nil
}

type noopCache struct{}

func (noopCache) Get(context.Context, string) ([]byte, bool) { return nil, false }
func (noopCache) Set(context.Context, string, []byte)        {}
func (noopCache) Invalidate(context.Context, string)         {}

// memCache cache en memoria que cuenta hits y escrituras.
type memCache struct {
	entries map[string][]byte
	hits    int
}

func newMemCache() *memCache { return &memCache{entries: map[string][]byte{}} }

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool) {
	payload, ok := c.entries[key]
	if ok {
		c.hits++
	}
	return payload, ok
}

func (c *memCache) Set(_ context.Context, key string, payload []byte) { c.entries[key] = payload }

func (c *memCache) Invalidate(_ context.Context, key string) { delete(c.entries, key) }

type countingNotifier struct {
	successes int
	failures  int
	last      string
}

func (n *countingNotifier) Success(_, _, message string) { n.successes++; n.last = message }
func (n *countingNotifier) Failure(_, _, message string) { n.failures++; n.last = message }

func buildSidebarUC() (*usecase.SidebarUseCase, *fakeSidebarRepo, *countingNotifier) {
	repo := newFakeSidebarRepo()
	notifier := &countingNotifier{}
	uc := usecase.NewSidebarUseCase(repo, noopCache{}, notifier, validator.New())
	return uc, repo, notifier
}

// ──────────────────────────────────────────────────────────────────────────────
// Política default-visible
// ──────────────────────────────────────────────────────────────────────────────

func TestIsItemHidden_SinPreferenciaEsVisible(t *testing.T) {
	assert.False(t, usecase.IsItemHidden(map[string]bool{}, "kanban"),
		"un ítem sin preferencia guardada debe mostrarse")
}

func TestIsItemHidden_RespetaPreferenciaExplicita(t *testing.T) {
	prefs := map[string]bool{"kanban": true, "andon": false}
	assert.True(t, usecase.IsItemHidden(prefs, "kanban"))
	assert.False(t, usecase.IsItemHidden(prefs, "andon"))
}

func TestResolveNav_UsuarioNoVeItemsOcultos(t *testing.T) {
	uc, _, _ := buildSidebarUC()
	ctx := context.Background()

	require.NoError(t, uc.Toggle(ctx, "u1", dto.ToggleSidebarItemRequest{MenuItem: "tpm", IsHidden: true}))

	out, err := uc.ResolveNav(ctx, "u1", entity.RoleUser)
	require.NoError(t, err)
	assert.Len(t, out.Items, len(usecase.NavItems)-1, "el ítem oculto no viaja al usuario")
	for _, item := range out.Items {
		assert.NotEqual(t, "tpm", item.ID)
		assert.False(t, item.CanEdit, "los usuarios normales no pueden editar el menú")
	}
}

func TestResolveNav_AdminVeTodoConFlagHidden(t *testing.T) {
	uc, _, _ := buildSidebarUC()
	ctx := context.Background()

	require.NoError(t, uc.Toggle(ctx, "u1", dto.ToggleSidebarItemRequest{MenuItem: "tpm", IsHidden: true}))

	out, err := uc.ResolveNav(ctx, "u1", entity.RoleAdmin)
	require.NoError(t, err)
	require.Len(t, out.Items, len(usecase.NavItems), "el admin ve el catálogo completo")

	var tpm *dto.NavItemView
	for i := range out.Items {
		assert.True(t, out.Items[i].CanEdit)
		if out.Items[i].ID == "tpm" {
			tpm = &out.Items[i]
		}
	}
	require.NotNil(t, tpm)
	assert.True(t, tpm.Hidden, "el ítem oculto llega marcado, no suprimido")
}

// ──────────────────────────────────────────────────────────────────────────────
// Toggle
// ──────────────────────────────────────────────────────────────────────────────

func TestToggle_UpsertNoDuplicaFilas(t *testing.T) {
	uc, repo, notifier := buildSidebarUC()
	ctx := context.Background()

	require.NoError(t, uc.Toggle(ctx, "u1", dto.ToggleSidebarItemRequest{MenuItem: "gemba", IsHidden: true}))
	require.NoError(t, uc.Toggle(ctx, "u1", dto.ToggleSidebarItemRequest{MenuItem: "gemba", IsHidden: false}))

	assert.Len(t, repo.prefs["u1"], 1, "dos toggles del mismo ítem mantienen una sola fila")
	assert.False(t, repo.prefs["u1"]["gemba"].IsHidden, "gana el último valor")
	assert.Equal(t, 2, notifier.successes)
	assert.Equal(t, "Menüeinstellungen wurden aktualisiert", notifier.last)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cache de preferencias
// ──────────────────────────────────────────────────────────────────────────────

func TestPreferences_SegundaLecturaSaleDeCache(t *testing.T) {
	repo := newFakeSidebarRepo()
	cache := newMemCache()
	uc := usecase.NewSidebarUseCase(repo, cache, &countingNotifier{}, validator.New())
	ctx := context.Background()

	require.NoError(t, uc.Toggle(ctx, "u1", dto.ToggleSidebarItemRequest{MenuItem: "andon", IsHidden: true}))

	first, err := uc.Preferences(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, first.Preferences["andon"])
	require.Equal(t, 1, repo.listCalls, "la primera lectura va al repositorio")

	second, err := uc.Preferences(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, first.Preferences, second.Preferences)
	assert.Equal(t, 1, repo.listCalls, "la segunda lectura se sirve de cache")
	assert.Equal(t, 1, cache.hits)
}

func TestToggle_InvalidaLaCacheDelUsuario(t *testing.T) {
	repo := newFakeSidebarRepo()
	cache := newMemCache()
	uc := usecase.NewSidebarUseCase(repo, cache, &countingNotifier{}, validator.New())
	ctx := context.Background()

	out, err := uc.Preferences(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, out.Preferences)
	require.Equal(t, 1, repo.listCalls)

	require.NoError(t, uc.Toggle(ctx, "u1", dto.ToggleSidebarItemRequest{MenuItem: "gemba", IsHidden: true}))

	out, err = uc.Preferences(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, out.Preferences["gemba"], "tras el toggle la lectura refleja el cambio")
	assert.Equal(t, 2, repo.listCalls, "el toggle fuerza la relectura")
}

func TestToggle_ItemDesconocidoEsInvalido(t *testing.T) {
	uc, repo, notifier := buildSidebarUC()

	err := uc.Toggle(context.Background(), "u1", dto.ToggleSidebarItemRequest{MenuItem: "werkzeuge", IsHidden: true})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Empty(t, repo.prefs["u1"])
	assert.Equal(t, 0, notifier.successes)
}
