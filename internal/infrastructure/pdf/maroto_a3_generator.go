// Package pdf implementa la exportación de informes A3 con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del informe  │  Estado + Fecha              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ZIEL: objetivo del informe                                  │
//	│  TEAM: integrantes                                           │
//	│  DEADLINE: fecha límite                                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ERGEBNIS: resultado (si existe)                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/Stanko5566/lean-cockpit-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoA3Generator implementa a3pdf.Generator usando Maroto v2.
type MarotoA3Generator struct{}

// NewMarotoA3Generator construye el generador.
func NewMarotoA3Generator() *MarotoA3Generator { return &MarotoA3Generator{} }

// Render genera el PDF del informe y devuelve sus bytes.
func (g *MarotoA3Generator) Render(report *entity.A3Report) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("A3 Report", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(sectionRow("ZIEL", nonEmpty(report.Goal, "—")))
	m.AddRows(sectionRow("TEAM", teamLine(report.Team)))
	m.AddRows(sectionRow("DEADLINE", deref(report.Deadline, "—")))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(sectionRow("ERGEBNIS", deref(report.Result, "noch offen")))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y estado + fecha de alta (der).
func headerRow(report *entity.A3Report) core.Row {
	fecha := report.CreatedAt.Format("02.01.2006")

	return row.New(18).Add(
		col.New(8).Add(
			text.New(report.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("A3 Report", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New(strings.ToUpper(report.Status), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Erstellt: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// sectionRow: etiqueta en negrita + contenido.
func sectionRow(label, content string) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(content, props.Text{Size: 9, Top: 7}),
		),
	)
}

func teamLine(team []string) string {
	if len(team) == 0 {
		return "—"
	}
	return strings.Join(team, ", ")
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func deref(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
