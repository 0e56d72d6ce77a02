package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Stanko5566/lean-cockpit-api/internal/application/dto"
	"github.com/Stanko5566/lean-cockpit-api/internal/application/usecase"
	"github.com/Stanko5566/lean-cockpit-api/internal/domain"
)

// SidebarHandler maneja el menú lateral y sus preferencias.
type SidebarHandler struct {
	uc *usecase.SidebarUseCase
}

// NewSidebarHandler construye el handler.
func NewSidebarHandler(uc *usecase.SidebarUseCase) *SidebarHandler {
	return &SidebarHandler{uc: uc}
}

// Nav godoc
// @Summary      Menú lateral resuelto para el usuario
// @Tags         sidebar
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SidebarResponse
// @Router       /api/sidebar [get]
func (h *SidebarHandler) Nav(c *fiber.Ctx) error {
	out, err := h.uc.ResolveNav(c.UserContext(), GetUserID(c), GetRole(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Preferences godoc
// @Summary      Preferencias de menú guardadas
// @Tags         sidebar
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PreferencesResponse
// @Router       /api/sidebar/preferences [get]
func (h *SidebarHandler) Preferences(c *fiber.Ctx) error {
	out, err := h.uc.Preferences(c.UserContext(), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Toggle godoc
// @Summary      Cambiar visibilidad de un ítem del menú (solo admin)
// @Tags         sidebar
// @Security     Bearer
// @Accept       json
// @Param        body  body  dto.ToggleSidebarItemRequest  true  "Ítem y visibilidad"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sidebar/preferences [put]
func (h *SidebarHandler) Toggle(c *fiber.Ctx) error {
	var in dto.ToggleSidebarItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Toggle(c.UserContext(), GetUserID(c), in); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
