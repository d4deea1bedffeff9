// Package pdf implementa la generación del estado de cuenta de un músico.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Agencia  │  ESTADO DE CUENTA + fecha de emisión    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  MÚSICO: Nombre + instrumento + categoría                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Concepto | Ganado | Pagado                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Total ganado / Total pagado / SALDO PENDIENTE     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

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

	"github.com/Andryxsh/sabor-real-api/internal/application/usecase"
	"github.com/Andryxsh/sabor-real-api/internal/domain/entity"
)

const agencyName = "Sabor Real"

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa usecase.StatementPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

var _ usecase.StatementPDFGenerator = (*MarotoPDFGenerator)(nil)

// GenerateStatementPDF genera el PDF del estado de cuenta y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateStatementPDF(st *usecase.Statement) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Estado de cuenta "+st.Musician.Name, true).
		WithAuthor(agencyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(st))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(musicianRow(st.Musician))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(st.Lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(st))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la agencia (izq) y título + fecha de emisión (der).
func headerRow(st *usecase.Statement) core.Row {
	fecha := st.GeneratedAt.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(agencyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Agencia de contratación musical", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ESTADO DE CUENTA", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Emitido: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// musicianRow: datos del músico titular del estado de cuenta.
func musicianRow(m *entity.Musician) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("MÚSICO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(m.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Rol: %s   |   Categoría: %s   |   Pago: %s",
				nonEmpty(m.Role, "—"),
				string(m.Category),
				string(m.PaymentMethod),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de movimientos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Concepto", 6, align.Left),
		h("Ganado", 2, align.Right),
		h("Pagado", 2, align.Right),
	)
}

// tableLineRows: una fila por movimiento (evento asistido o pago).
func tableLineRows(lines []usecase.StatementLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		earned, paid := "", ""
		if !l.Earned.IsZero() {
			earned = "$" + formatMoney(l.Earned.StringFixed(0))
		}
		if !l.Paid.IsZero() {
			paid = "$" + formatMoney(l.Paid.StringFixed(0))
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				string(l.Date),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(6).Add(text.New(
				l.Concept,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				earned,
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				paid,
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha. El saldo va en rojo si
// hay deuda pendiente y en azul si el músico está al día o sobrepagado.
func totalsRow(st *usecase.Statement) core.Row {
	saldoColor := colorPrimary
	if st.Debt.IsPositive() {
		saldoColor = colorRed
	}

	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := text.New("SALDO PENDIENTE:", props.Text{
		Style: fontstyle.Bold, Size: 10, Align: align.Right,
		Color: saldoColor, Right: 2,
	})
	grandValue := text.New("$"+formatMoney(st.Debt.StringFixed(0)), props.Text{
		Style: fontstyle.Bold, Size: 10, Align: align.Right,
		Color: saldoColor, Right: 1,
	})

	return row.New(26).Add(
		col.New(3),
		col.New(3).Add(
			label("Total ganado:"),
			label("Total pagado:"),
			grandLabel,
		),
		col.New(3).Add(
			value("$"+formatMoney(st.TotalEarned.StringFixed(0))),
			value("$"+formatMoney(st.TotalPaid.StringFixed(0))),
			grandValue,
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

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	n := len(s)
	if n <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	if neg {
		return "-" + string(buf)
	}
	return string(buf)
}
