package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Proveedores-api/internal/application/dto"
	"github.com/jhoicas/Proveedores-api/internal/application/performance"
	"github.com/jhoicas/Proveedores-api/internal/application/usecase"
	"github.com/jhoicas/Proveedores-api/internal/domain"
	"github.com/jhoicas/Proveedores-api/internal/domain/entity"
	rules "github.com/jhoicas/Proveedores-api/internal/domain/performance"
)

func TestCreateVendor_MetricasEnCeroYDuplicado(t *testing.T) {
	uc := usecase.NewVendorUseCase(newMemVendors(), &stubRecomputer{})
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.CreateVendorRequest{VendorCode: "V1", Name: "Acme"})
	require.NoError(t, err)
	assert.Zero(t, out.OnTimeDeliveryRate)
	assert.Zero(t, out.FulfillmentRate)

	_, err = uc.Create(ctx, dto.CreateVendorRequest{VendorCode: "V1", Name: "Otra"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestUpdateVendor_CodigoInmutable(t *testing.T) {
	uc := usecase.NewVendorUseCase(newMemVendors("V1"), &stubRecomputer{})
	_, err := uc.Update(context.Background(), "V1", dto.UpdateVendorRequest{VendorCode: "V2", Name: "Acme"})
	assert.ErrorIs(t, err, domain.ErrImmutableField)

	out, err := uc.Update(context.Background(), "V1", dto.UpdateVendorRequest{VendorCode: "V1", Name: "Acme SAS"})
	require.NoError(t, err)
	assert.Equal(t, "Acme SAS", out.Name)
}

func TestCreateVendor_LimpiaHTMLDeCamposLibres(t *testing.T) {
	uc := usecase.NewVendorUseCase(newMemVendors(), &stubRecomputer{})
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.CreateVendorRequest{
		VendorCode:     "V1",
		Name:           "  <b>Acme</b> & Co ",
		ContactDetails: `<script>alert(1)</script>ventas@acme.co`,
		Address:        "Calle 1 <br/>#2-3",
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme & Co", out.Name)
	assert.Equal(t, "ventas@acme.co", out.ContactDetails)
	assert.Equal(t, "Calle 1 #2-3", out.Address)

	_, err = uc.Create(ctx, dto.CreateVendorRequest{VendorCode: "V2", Name: "<i></i>"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "un nombre que solo tiene marcado queda vacío")
}

func TestPerformance_RedondeaADosDecimales(t *testing.T) {
	vendors := newMemVendors("V1")
	vendors.m["V1"].Metrics = entity.Metrics{OnTimeDeliveryRate: 100.0 / 3, QualityRatingAvg: 4.125, AverageResponseTime: 1.5, FulfillmentRate: 66.666}
	uc := usecase.NewVendorUseCase(vendors, &stubRecomputer{})

	out, err := uc.Performance(context.Background(), "V1")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("33.33").Equal(out.OnTimeDeliveryRate))
	assert.True(t, decimal.RequireFromString("4.13").Equal(out.QualityRatingAvg))
	assert.True(t, decimal.RequireFromString("1.5").Equal(out.AverageResponseTime))
	assert.True(t, decimal.RequireFromString("66.67").Equal(out.FulfillmentRate))
	// Lo almacenado conserva la precisión completa.
	assert.Equal(t, 100.0/3, vendors.m["V1"].Metrics.OnTimeDeliveryRate)

	_, err = uc.Performance(context.Background(), "NOPE")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecompute_PideLasCuatroMetricas(t *testing.T) {
	stub := &stubRecomputer{out: &performance.Outcome{
		VendorCode: "V1",
		Metrics:    entity.Metrics{FulfillmentRate: 50},
		Changed:    []rules.Metric{rules.FulfillmentRate},
		Snapshot:   &entity.HistoricalPerformance{ID: "snap-1", Date: time.Now()},
	}}
	uc := usecase.NewVendorUseCase(newMemVendors("V1"), stub)

	out, err := uc.Recompute(context.Background(), "V1")
	require.NoError(t, err)
	assert.Equal(t, rules.FullSet(), stub.set)
	assert.Equal(t, []string{"fulfillment_rate"}, out.Changed)
	assert.Equal(t, "snap-1", out.SnapshotID)
}

func TestHistory_ListaYBorrado(t *testing.T) {
	vendors := newMemVendors("V1", "V2")
	history := &memHistory{}
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		_ = history.Append(context.Background(), &entity.HistoricalPerformance{ID: string(rune('a' + i)), VendorCode: "V1", Date: base.AddDate(0, 0, i)})
	}
	_ = history.Append(context.Background(), &entity.HistoricalPerformance{ID: "z", VendorCode: "V2", Date: base})
	uc := usecase.NewHistoryUseCase(history, vendors)
	ctx := context.Background()

	from := base.AddDate(0, 0, 1)
	to := base.AddDate(0, 0, 3)
	out, err := uc.List(ctx, "V1", dto.HistoryFilter{From: &from, To: &to})
	require.NoError(t, err)
	require.Len(t, out.Items, 3)
	assert.Equal(t, "d", out.Items[0].ID) // más reciente primero

	_, err = uc.List(ctx, "V1", dto.HistoryFilter{From: &to, To: &from})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	del, err := uc.DeleteAll(ctx, "V1")
	require.NoError(t, err)
	assert.Equal(t, int64(5), del.Deleted)
	assert.Len(t, history.rows, 1)

	_, err = uc.List(ctx, "NOPE", dto.HistoryFilter{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

type captureGenerator struct{ card *usecase.Scorecard }

func (g *captureGenerator) GenerateScorecard(_ context.Context, card *usecase.Scorecard) ([]byte, error) {
	g.card = card
	return []byte("%PDF-1.4"), nil
}

func TestScorecard_ArmaDatosDelReporte(t *testing.T) {
	vendors := newMemVendors("V1")
	orders := newMemOrders()
	ctx := context.Background()
	_ = orders.Create(ctx, &entity.PurchaseOrder{PONumber: "A", VendorCode: "V1", Status: entity.POStatusComplete})
	_ = orders.Create(ctx, &entity.PurchaseOrder{PONumber: "B", VendorCode: "V1", Status: entity.POStatusPending})
	_ = orders.Create(ctx, &entity.PurchaseOrder{PONumber: "C", VendorCode: "V1", Status: entity.POStatusPending})
	gen := &captureGenerator{}
	uc := usecase.NewReportUseCase(vendors, orders, &memHistory{}, gen, nil)

	pdf, filename, err := uc.VendorScorecard(ctx, "V1")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4"), pdf)
	assert.Contains(t, filename, "scorecard_V1_")
	assert.Equal(t, 3, gen.card.TotalOrders)
	assert.Equal(t, 2, gen.card.OrdersByStatus[entity.POStatusPending])

	_, _, err = uc.VendorScorecard(ctx, "NOPE")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

type captureExporter struct{ rows int }

func (e *captureExporter) ExportHistory(_ context.Context, _ *entity.Vendor, history []*entity.HistoricalPerformance) ([]byte, error) {
	e.rows = len(history)
	return []byte("PK"), nil
}

func TestHistoryWorkbook_FiltraPorRango(t *testing.T) {
	ctx := context.Background()
	vendors := newMemVendors("V1")
	history := &memHistory{}
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		require.NoError(t, history.Append(ctx, &entity.HistoricalPerformance{ID: string(rune('a' + i)), VendorCode: "V1", Date: base.AddDate(0, 0, i)}))
	}
	exp := &captureExporter{}
	uc := usecase.NewReportUseCase(vendors, newMemOrders(), history, &captureGenerator{}, exp)

	from, to := base.AddDate(0, 0, 1), base.AddDate(0, 0, 2)
	xlsx, filename, err := uc.HistoryWorkbook(ctx, "V1", &from, &to)
	require.NoError(t, err)
	assert.Equal(t, []byte("PK"), xlsx)
	assert.Contains(t, filename, "historial_V1_")
	assert.Equal(t, 2, exp.rows)

	_, _, err = uc.HistoryWorkbook(ctx, "V1", &to, &from)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, _, err = uc.HistoryWorkbook(ctx, "NOPE", nil, nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
