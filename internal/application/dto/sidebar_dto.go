package dto

// ToggleSidebarItemRequest cambio de visibilidad de un ítem del menú.
type ToggleSidebarItemRequest struct {
	MenuItem string `json:"menu_item" validate:"required"`
	IsHidden bool   `json:"is_hidden"`
}

// NavItemView un ítem del menú resuelto para el usuario actual.
// Hidden solo viaja con valor útil para admins (que ven todo);
// CanEdit marca la palanca de edición del admin.
type NavItemView struct {
	ID      string `json:"id"`
	Path    string `json:"path"`
	Label   string `json:"label"`
	Hidden  bool   `json:"hidden"`
	CanEdit bool   `json:"can_edit"`
}

// SidebarResponse menú resuelto para el usuario actual.
type SidebarResponse struct {
	Items []NavItemView `json:"items"`
}

// PreferencesResponse mapa menu_item -> is_hidden del usuario actual.
type PreferencesResponse struct {
	Preferences map[string]bool `json:"preferences"`
}
