// Package a3pdf exporta informes A3 como documento PDF.
package a3pdf

import (
	"context"
	"fmt"

	"github.com/Stanko5566/lean-cockpit-api/internal/domain"
	"github.com/Stanko5566/lean-cockpit-api/internal/domain/entity"
	"github.com/Stanko5566/lean-cockpit-api/internal/domain/repository"
)

// Generator puerto del motor de render PDF.
type Generator interface {
	Render(report *entity.A3Report) ([]byte, error)
}

// UseCase descarga de informes A3 en PDF.
type UseCase struct {
	reports   repository.ResourceRepository[entity.A3Report]
	generator Generator
}

// NewUseCase construye el caso de uso de exportación.
func NewUseCase(reports repository.ResourceRepository[entity.A3Report], generator Generator) *UseCase {
	return &UseCase{reports: reports, generator: generator}
}

// Download carga el informe y lo renderiza. Devuelve bytes del PDF y el
// nombre de archivo sugerido.
func (uc *UseCase) Download(ctx context.Context, id string) ([]byte, string, error) {
	report, err := uc.reports.GetByID(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("buscando informe A3: %w", err)
	}
	if report == nil {
		return nil, "", domain.ErrNotFound
	}
	payload, err := uc.generator.Render(report)
	if err != nil {
		return nil, "", fmt.Errorf("generando PDF: %w", err)
	}
	return payload, fmt.Sprintf("a3-report-%s.pdf", report.ID), nil
}
