package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Stanko5566/lean-cockpit-api/internal/application/a3pdf"
	"github.com/Stanko5566/lean-cockpit-api/internal/application/dto"
	"github.com/Stanko5566/lean-cockpit-api/internal/domain"
)

// A3PdfHandler exportación de informes A3 en PDF.
type A3PdfHandler struct {
	uc *a3pdf.UseCase
}

// NewA3PdfHandler construye el handler.
func NewA3PdfHandler(uc *a3pdf.UseCase) *A3PdfHandler {
	return &A3PdfHandler{uc: uc}
}

// Download godoc
// @Summary      Descargar informe A3 como PDF
// @Tags         a3_reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del informe"
// @Success      200  {file}  file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/a3_reports/{id}/pdf [get]
func (h *A3PdfHandler) Download(c *fiber.Ctx) error {
	id := c.Params("id")
	payload, filename, err := h.uc.Download(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "informe no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(payload)
}
