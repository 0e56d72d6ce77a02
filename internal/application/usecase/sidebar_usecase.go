package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/Stanko5566/lean-cockpit-api/internal/application/dto"
	"github.com/Stanko5566/lean-cockpit-api/internal/application/resource"
	"github.com/Stanko5566/lean-cockpit-api/internal/domain"
	"github.com/Stanko5566/lean-cockpit-api/internal/domain/entity"
	"github.com/Stanko5566/lean-cockpit-api/internal/domain/repository"
)

// DefaultSidebarVisible política del menú: un ítem sin preferencia guardada
// se muestra. Solo una fila con is_hidden=true lo oculta.
const DefaultSidebarVisible = true

// NavItem entrada del catálogo estático del menú lateral.
type NavItem struct {
	ID    string
	Path  string
	Label string
}

// NavItems catálogo completo del menú, en orden de render.
var NavItems = []NavItem{
	{ID: "dashboard", Path: "/", Label: "Dashboard"},
	{ID: "pdca", Path: "/pdca", Label: "PDCA-Zyklus"},
	{ID: "5s", Path: "/5s", Label: "5S Checklisten"},
	{ID: "kaizen", Path: "/kaizen", Label: "Kaizen-Board"},
	{ID: "valuestream", Path: "/valuestream", Label: "Wertstromanalyse"},
	{ID: "kanban", Path: "/kanban", Label: "Kanban-Boards"},
	{ID: "andon", Path: "/andon", Label: "Andon-Board"},
	{ID: "gemba", Path: "/gemba", Label: "Gemba Walks"},
	{ID: "standards", Path: "/standards", Label: "Standard Work"},
	{ID: "a3", Path: "/a3", Label: "A3-Reports"},
	{ID: "tpm", Path: "/tpm", Label: "TPM-Board"},
	{ID: "settings", Path: "/settings", Label: "Einstellungen"},
}

// SidebarUseCase preferencias de visibilidad del menú por usuario.
type SidebarUseCase struct {
	prefs    repository.SidebarRepository
	cache    resource.ListCache
	notifier resource.Notifier
	validate *validator.Validate
}

// NewSidebarUseCase construye el caso de uso del menú lateral.
func NewSidebarUseCase(prefs repository.SidebarRepository, cache resource.ListCache, notifier resource.Notifier, validate *validator.Validate) *SidebarUseCase {
	return &SidebarUseCase{prefs: prefs, cache: cache, notifier: notifier, validate: validate}
}

func (uc *SidebarUseCase) cacheKey(userID string) string {
	return "sidebar_preferences:" + userID
}

// Preferences devuelve el mapa menu_item -> is_hidden del usuario. Solo
// contiene los ítems con preferencia guardada; el resto usa el default.
// Lectura con cache: Toggle invalida la clave del usuario.
func (uc *SidebarUseCase) Preferences(ctx context.Context, userID string) (*dto.PreferencesResponse, error) {
	key := uc.cacheKey(userID)
	if payload, ok := uc.cache.Get(ctx, key); ok {
		var m map[string]bool
		if err := json.Unmarshal(payload, &m); err == nil {
			return &dto.PreferencesResponse{Preferences: m}, nil
		}
		// Payload corrupto: se descarta y se relee de la base.
		uc.cache.Invalidate(ctx, key)
	}

	prefs, err := uc.prefs.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listando preferencias de menú: %w", err)
	}
	m := make(map[string]bool, len(prefs))
	for _, p := range prefs {
		m[p.MenuItem] = p.IsHidden
	}
	if payload, err := json.Marshal(m); err == nil {
		uc.cache.Set(ctx, key, payload)
	}
	return &dto.PreferencesResponse{Preferences: m}, nil
}

// IsItemHidden indica si un ítem está oculto según el mapa de preferencias.
// Sin entrada explícita aplica el default visible.
func IsItemHidden(prefs map[string]bool, menuItem string) bool {
	hidden, ok := prefs[menuItem]
	if !ok {
		return !DefaultSidebarVisible
	}
	return hidden
}

// Toggle guarda la visibilidad de un ítem (upsert sobre user_id+menu_item).
// Solo admins llegan aquí; el router lo asegura.
func (uc *SidebarUseCase) Toggle(ctx context.Context, userID string, in dto.ToggleSidebarItemRequest) error {
	if err := uc.validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if !knownMenuItem(in.MenuItem) {
		return fmt.Errorf("%w: ítem de menú desconocido %q", domain.ErrInvalidInput, in.MenuItem)
	}

	now := time.Now()
	err := uc.prefs.Upsert(ctx, &entity.SidebarPreference{
		ID:        uuid.New().String(),
		UserID:    userID,
		MenuItem:  in.MenuItem,
		IsHidden:  in.IsHidden,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		uc.notifier.Failure("sidebar_preferences", resource.ActionUpdate,
			fmt.Sprintf("Fehler beim Speichern der Menüeinstellungen: %v", err))
		return err
	}
	uc.cache.Invalidate(ctx, uc.cacheKey(userID))
	uc.notifier.Success("sidebar_preferences", resource.ActionUpdate, "Menüeinstellungen wurden aktualisiert")
	return nil
}

// ResolveNav arma el menú para el usuario. Los usuarios normales no reciben
// los ítems ocultos; los admins ven el catálogo completo con el flag Hidden
// y CanEdit para poder ajustar la visibilidad.
func (uc *SidebarUseCase) ResolveNav(ctx context.Context, userID, role string) (*dto.SidebarResponse, error) {
	prefsResp, err := uc.Preferences(ctx, userID)
	if err != nil {
		return nil, err
	}
	prefs := prefsResp.Preferences
	isAdmin := role == entity.RoleAdmin

	items := make([]dto.NavItemView, 0, len(NavItems))
	for _, item := range NavItems {
		hidden := IsItemHidden(prefs, item.ID)
		if hidden && !isAdmin {
			continue
		}
		items = append(items, dto.NavItemView{
			ID:      item.ID,
			Path:    item.Path,
			Label:   item.Label,
			Hidden:  hidden,
			CanEdit: isAdmin,
		})
	}
	return &dto.SidebarResponse{Items: items}, nil
}

func knownMenuItem(id string) bool {
	for _, item := range NavItems {
		if item.ID == id {
			return true
		}
	}
	return false
}
