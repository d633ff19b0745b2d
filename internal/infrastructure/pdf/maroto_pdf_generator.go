// Package pdf genera el scorecard de desempeño de un proveedor.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del proveedor + código  │  Fecha de emisión │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CONTACTO: Dirección / Datos de contacto                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  MÉTRICAS: Puntualidad | Calidad | Respuesta | Cumplimiento │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ÓRDENES: total y conteo por estado                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  HISTORIAL: Fecha | cuatro métricas (más recientes primero) │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

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

	"github.com/jhoicas/Proveedores-api/internal/application/usecase"
	"github.com/jhoicas/Proveedores-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorBand    = &props.Color{Red: 230, Green: 238, Blue: 245}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa usecase.ScorecardGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateScorecard genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateScorecard(_ context.Context, card *usecase.Scorecard) ([]byte, error) {
	if card == nil || card.Vendor == nil {
		return nil, fmt.Errorf("pdf: scorecard sin proveedor")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Scorecard de proveedor "+card.Vendor.VendorCode, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(card))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(contactRows(card.Vendor)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("MÉTRICAS DE DESEMPEÑO"))
	m.AddRows(metricsRows(card)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("ÓRDENES DE COMPRA"))
	m.AddRows(ordersRow(card))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("HISTORIAL"))
	m.AddRows(historyHeaderRow())
	m.AddRows(historyRows(card.History)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre + código del proveedor (izq) y fecha de emisión (der).
func headerRow(card *usecase.Scorecard) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New(card.Vendor.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Código: "+card.Vendor.VendorCode, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("SCORECARD DE PROVEEDOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Emitido: "+card.GeneratedAt.Format("02/01/2006 15:04")+" UTC", props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// contactRows: dirección y contacto; los textos largos se parten en líneas.
func contactRows(v *entity.Vendor) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("CONTACTO", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
		)),
	}
	for _, field := range []struct{ label, value string }{
		{"Dirección", nonEmpty(v.Address, "—")},
		{"Contacto", nonEmpty(v.ContactDetails, "—")},
	} {
		for i, chunk := range splitEvery(field.value, 95) {
			label := ""
			if i == 0 {
				label = field.label + ":"
			}
			rows = append(rows, row.New(5).Add(
				col.New(2).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Top: 0.5})),
				col.New(10).Add(text.New(chunk, props.Text{Size: 8, Top: 0.5, Color: colorGray})),
			))
		}
	}
	return rows
}

func sectionTitle(title string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2}),
	))
}

// metricsRows: cuatro tarjetas con el valor actual redondeado a 2 decimales.
func metricsRows(card *usecase.Scorecard) []core.Row {
	p := card.Performance
	cell := func(label, value, unit string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Align: align.Center, Color: colorGray, Top: 1}),
			text.New(value+unit, props.Text{Style: fontstyle.Bold, Size: 14, Align: align.Center, Color: colorPrimary, Top: 6}),
		).WithStyle(&props.Cell{BackgroundColor: colorBand})
	}
	return []core.Row{
		row.New(16).Add(
			cell("Entregas a tiempo", p.OnTimeDeliveryRate.StringFixed(2), "%"),
			cell("Calidad promedio", p.QualityRatingAvg.StringFixed(2), ""),
			cell("Tiempo de respuesta", p.AverageResponseTime.StringFixed(2), " h"),
			cell("Cumplimiento", p.FulfillmentRate.StringFixed(2), "%"),
		),
	}
}

// ordersRow: total de órdenes y desglose por estado.
func ordersRow(card *usecase.Scorecard) core.Row {
	count := func(label string, n int) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Align: align.Center, Color: colorGray, Top: 1}),
			text.New(formatThousands(n), props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Center, Top: 5}),
		)
	}
	return row.New(14).Add(
		count("Total", card.TotalOrders),
		count("Pendientes", card.OrdersByStatus[entity.POStatusPending]),
		count("Incompletas", card.OrdersByStatus[entity.POStatusIncomplete]),
		count("Completas", card.OrdersByStatus[entity.POStatusComplete]),
	)
}

// historyHeaderRow: cabecera de la tabla del historial sobre fondo azul.
func historyHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
	}
	return row.New(8).Add(
		h("Fecha", 4, align.Left),
		h("A tiempo %", 2, align.Right),
		h("Calidad", 2, align.Right),
		h("Respuesta h", 2, align.Right),
		h("Cumpl. %", 2, align.Right),
	)
}

// historyRows: una fila por foto; vacío si el proveedor no tiene historial.
func historyRows(history []*entity.HistoricalPerformance) []core.Row {
	if len(history) == 0 {
		return []core.Row{row.New(8).Add(col.New(12).Add(
			text.New("Sin registros de historial.", props.Text{Size: 8, Color: colorGray, Top: 2, Align: align.Center}),
		))}
	}
	num := func(f float64, size int) core.Col {
		return col.New(size).Add(text.New(decimal.NewFromFloat(f).StringFixed(2), props.Text{
			Size: 8, Align: align.Right, Top: 1, Right: 1,
		}))
	}
	result := make([]core.Row, 0, len(history))
	for _, h := range history {
		result = append(result, row.New(6).Add(
			col.New(4).Add(text.New(h.Date.UTC().Format("02/01/2006 15:04:05"), props.Text{Size: 8, Top: 1, Left: 1})),
			num(h.Metrics.OnTimeDeliveryRate, 2),
			num(h.Metrics.QualityRatingAvg, 2),
			num(h.Metrics.AverageResponseTime, 2),
			num(h.Metrics.FulfillmentRate, 2),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatThousands inserta puntos de miles. Ej: 25000 → "25.000".
func formatThousands(n int) string {
	s := strconv.Itoa(n)
	if n < 0 {
		return "-" + formatThousands(-n)
	}
	l := len(s)
	if l <= 3 {
		return s
	}
	buf := make([]byte, 0, l+l/3)
	for i, c := range []byte(s) {
		if i > 0 && (l-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}

// splitEvery divide s en trozos de max n runas.
func splitEvery(s string, n int) []string {
	r := []rune(s)
	var parts []string
	for len(r) > n {
		parts = append(parts, string(r[:n]))
		r = r[n:]
	}
	if len(r) > 0 {
		parts = append(parts, string(r))
	}
	return parts
}
