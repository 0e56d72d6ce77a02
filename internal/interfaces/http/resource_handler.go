package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Stanko5566/lean-cockpit-api/internal/application/dto"
	"github.com/Stanko5566/lean-cockpit-api/internal/application/resource"
	"github.com/Stanko5566/lean-cockpit-api/internal/domain"
)

// ResourceHandler handler HTTP genérico para un recurso de tablero. Las once
// rutas CRUD comparten este código; el servicio genérico aporta la semántica.
type ResourceHandler[T any, C any, P any] struct {
	svc *resource.Service[T, C, P]
}

// NewResourceHandler construye el handler para un servicio concreto.
func NewResourceHandler[T any, C any, P any](svc *resource.Service[T, C, P]) *ResourceHandler[T, C, P] {
	return &ResourceHandler[T, C, P]{svc: svc}
}

// RegisterResource monta las rutas CRUD del recurso bajo el router dado.
func RegisterResource[T any, C any, P any](r fiber.Router, path string, svc *resource.Service[T, C, P]) {
	h := NewResourceHandler(svc)
	g := r.Group(path)
	g.Get("/", h.List)
	g.Post("/", h.Create)
	g.Get("/:id", h.GetByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}

// List devuelve el listado completo del recurso.
func (h *ResourceHandler[T, C, P]) List(c *fiber.Ctx) error {
	out, err := h.svc.List(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID devuelve un registro por id.
func (h *ResourceHandler[T, C, P]) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.svc.GetByID(c.UserContext(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	}
	return c.JSON(out)
}

// Create da de alta un registro nuevo.
func (h *ResourceHandler[T, C, P]) Create(c *fiber.Ctx) error {
	var in C
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.svc.Create(c.UserContext(), in)
	if err != nil {
		return mapMutationError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update aplica un parche parcial sobre un registro.
func (h *ResourceHandler[T, C, P]) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var patch P
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.svc.Update(c.UserContext(), id, patch)
	if err != nil {
		return mapMutationError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina un registro por id.
func (h *ResourceHandler[T, C, P]) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.svc.Delete(c.UserContext(), id); err != nil {
		return mapMutationError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// mapMutationError traduce los errores de dominio a estados HTTP.
func mapMutationError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
