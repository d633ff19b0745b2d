package pdf_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Proveedores-api/internal/application/dto"
	"github.com/jhoicas/Proveedores-api/internal/application/usecase"
	"github.com/jhoicas/Proveedores-api/internal/domain/entity"
	"github.com/jhoicas/Proveedores-api/internal/infrastructure/pdf"
)

func sampleCard(history int) *usecase.Scorecard {
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	card := &usecase.Scorecard{
		Vendor: &entity.Vendor{
			VendorCode:     "V-001",
			Name:           "Suministros Andinos S.A.S.",
			ContactDetails: strings.Repeat("compras@andinos.co ", 12),
			Address:        "Cra 7 # 32-16, Bogotá",
		},
		Performance: dto.PerformanceResponse{
			VendorCode:          "V-001",
			OnTimeDeliveryRate:  decimal.RequireFromString("66.67"),
			QualityRatingAvg:    decimal.RequireFromString("4.25"),
			AverageResponseTime: decimal.RequireFromString("1.5"),
			FulfillmentRate:     decimal.RequireFromString("50"),
		},
		OrdersByStatus: map[string]int{entity.POStatusPending: 1, entity.POStatusComplete: 2},
		TotalOrders:    3,
		GeneratedAt:    at,
	}
	for i := 0; i < history; i++ {
		card.History = append(card.History, &entity.HistoricalPerformance{
			ID:         "h",
			VendorCode: "V-001",
			Date:       at.Add(-time.Duration(i) * time.Hour),
			Metrics:    entity.Metrics{OnTimeDeliveryRate: 50, QualityRatingAvg: 4, AverageResponseTime: 2, FulfillmentRate: 33.333},
		})
	}
	return card
}

func TestGenerateScorecard_GeneraPDF(t *testing.T) {
	g := pdf.NewMarotoPDFGenerator()

	out, err := g.GenerateScorecard(context.Background(), sampleCard(40))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")), "debe ser un documento PDF")
}

func TestGenerateScorecard_SinHistorial(t *testing.T) {
	out, err := pdf.NewMarotoPDFGenerator().GenerateScorecard(context.Background(), sampleCard(0))
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestGenerateScorecard_SinProveedor(t *testing.T) {
	_, err := pdf.NewMarotoPDFGenerator().GenerateScorecard(context.Background(), &usecase.Scorecard{})
	assert.Error(t, err)
}
