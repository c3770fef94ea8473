// Package pdf implementa el estado de cuenta imprimible de un alquiler.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Eólico (código) │ Fecha de emisión                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TITULAR: Nombre + CI + contacto                            │
//	│  ALQUILER: inicio / tarifa / instalación / depósito         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: N° | Concepto | Descripción | Vence | Monto | Estado│
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: pagado / pendiente / TOTAL DEL PLAN               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

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
	"github.com/shopspring/decimal"

	"github.com/vientosur/eolico-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 102, Blue: 84}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 176, Green: 42, Blue: 42}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa report.StatementPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerarEstadoCuenta genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerarEstadoCuenta(
	_ context.Context,
	eolico *entity.Eolico,
	alquiler *entity.Alquiler,
	titular *entity.Usuario,
	cuotas []*entity.Cuota,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Estado de cuenta "+eolico.Codigo, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(eolico))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(titularRow(titular))
	m.AddRows(alquilerRow(alquiler))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableCuotaRows(cuotas) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(cuotas))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: código del eólico (izq) y fecha de emisión (der).
func headerRow(eolico *entity.Eolico) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("EÓLICO "+eolico.Codigo, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Estado de cuenta del alquiler", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Emitido: "+time.Now().Format("02/01/2006"), props.Text{
				Size: 9, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// titularRow: datos del usuario asignado.
func titularRow(titular *entity.Usuario) core.Row {
	nombre := "—"
	contacto := ""
	if titular != nil {
		nombre = titular.NombreCompleto()
		contacto = fmt.Sprintf("CI: %s   |   Email: %s   |   Tel: %s",
			nonEmpty(titular.CI, "—"),
			nonEmpty(titular.Email, "—"),
			nonEmpty(titular.Telefono, "—"),
		)
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("TITULAR DEL ALQUILER", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nombre, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(contacto, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// alquilerRow: condiciones pactadas al momento de asignar.
func alquilerRow(alquiler *entity.Alquiler) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("CONDICIONES DEL ALQUILER", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Inicio: %s   |   Tarifa mensual: $%s   |   Instalación: $%s   |   Depósito: $%s",
				alquiler.FechaInicio.Format("02/01/2006"),
				alquiler.TarifaMensual.StringFixed(2),
				alquiler.CostoInstalacion.StringFixed(2),
				alquiler.Deposito.StringFixed(2),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de cuotas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("N°", 1, align.Center),
		h("Concepto", 2, align.Left),
		h("Descripción", 4, align.Left),
		h("Vence", 2, align.Center),
		h("Monto", 2, align.Right),
		h("Estado", 1, align.Center),
	)
}

// tableCuotaRows: una fila por cuota del plan.
func tableCuotaRows(cuotas []*entity.Cuota) []core.Row {
	ahora := time.Now()
	result := make([]core.Row, 0, len(cuotas))
	for _, c := range cuotas {
		estado := "Pendiente"
		estadoColor := colorGray
		if c.Pagada {
			estado = "Pagada"
			estadoColor = colorPrimary
		} else if c.Vencida(ahora) {
			estado = "Vencida"
			estadoColor = colorAlert
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", c.Numero),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				c.Concepto,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				c.Descripcion,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				c.FechaVencimiento.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				"$"+c.Monto.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				estado,
				props.Text{Size: 7, Align: align.Center, Top: 1, Color: estadoColor},
			)),
		))
	}
	return result
}

// totalsRow: pagado, pendiente y total del plan.
func totalsRow(cuotas []*entity.Cuota) core.Row {
	pagado := decimal.Zero
	pendiente := decimal.Zero
	for _, c := range cuotas {
		if c.Pagada {
			pagado = pagado.Add(c.Monto)
		} else {
			pendiente = pendiente.Add(c.Monto)
		}
	}
	total := pagado.Add(pendiente)

	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(3),
		col.New(3).Add(
			label("Pagado:"),
			label("Pendiente:"),
			grandLabel("TOTAL DEL PLAN:"),
		),
		col.New(3).Add(
			value("$"+pagado.StringFixed(2)),
			value("$"+pendiente.StringFixed(2)),
			grandValue("$"+total.StringFixed(2)),
		),
		col.New(3),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
