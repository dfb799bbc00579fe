package importer_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rma-tracker/internal/application/importer"
	"github.com/jhoicas/rma-tracker/internal/domain/repository"
	"github.com/jhoicas/rma-tracker/internal/infrastructure/memory"
	"github.com/jhoicas/rma-tracker/pkg/clock"
)

// ── Fakes ──

type fakeReader struct {
	rows []map[string]string
	err  error
}

func (f *fakeReader) ReadRows(_ context.Context, _ string, _ io.Reader) ([]map[string]string, error) {
	return f.rows, f.err
}

type failingTx struct{ err error }

func (f failingTx) RunImport(_ context.Context, _ func(repository.RMARepository, repository.ServiceOrderRepository, repository.CustomerRepository) error) error {
	return f.err
}

var fixedNow = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func newUseCase(reader *fakeReader, store *memory.Store) *importer.ImportUseCase {
	return importer.NewImportUseCase(reader, memory.NewTxRunner(store), clock.NewFixed(fixedNow), zerolog.Nop())
}

// ── Parseo ──

func TestParseRMARows_ColumnasFaltantesQuedanVacias(t *testing.T) {
	rows := []map[string]string{
		{importer.ColRMANumber: "RMA-1", importer.ColCustomerName: "Acme Corp", "Extra": "ignorada"},
		{},
	}
	recs := importer.ParseRMARows(rows)
	require.Len(t, recs, 2)
	assert.Equal(t, importer.RMARecord{RMANumber: "RMA-1", CustomerName: "Acme Corp"}, recs[0])
	assert.Equal(t, importer.RMARecord{}, recs[1])
}

func TestParseServiceOrderRows_MapeaTodasLasColumnas(t *testing.T) {
	rows := []map[string]string{{
		importer.ColServiceOrder:            "SO-1",
		importer.ColSalesOrder:              "PO-1",
		importer.ColProductStatus:           "Final Testing",
		importer.ColOrderStatus:             "open",
		importer.ColMaterial:                "CM-X1-001",
		importer.ColMaterialDescription:     "Control Module X1",
		importer.ColSerial:                  "SN-1",
		importer.ColOrderCreatedDate:        "2024-02-25",
		importer.ColCustomerRequiredDate:    "2024-03-10",
		importer.ColEstimatedCompletionDate: "2024-03-05",
		importer.ColRMANumber:               "RMA-1",
	}}
	recs := importer.ParseServiceOrderRows(rows)
	require.Len(t, recs, 1)
	assert.Equal(t, "SO-1", recs[0].ServiceOrder)
	assert.Equal(t, "Control Module X1", recs[0].MaterialDescription)
	assert.Equal(t, "2024-03-05", recs[0].EstimatedCompletionDate)
	assert.Equal(t, "RMA-1", recs[0].RMANumber)
}

// ── Casos de uso ──

func TestImportRMA_PersisteYCreaClientes(t *testing.T) {
	store := memory.NewStore()
	reader := &fakeReader{rows: []map[string]string{
		{importer.ColRMANumber: "RMA-1", importer.ColCustomerName: "Acme Corp", importer.ColContactName: "John Smith", importer.ColContactEmail: "john@acme.com", importer.ColStatus: "Open"},
		{importer.ColRMANumber: "RMA-2", importer.ColCustomerName: "ACME CORP", importer.ColContactName: "Otro"},
		{importer.ColRMANumber: "RMA-3", importer.ColCustomerName: "TechCo", importer.ColCustomerEmail: "svc@techco.com", importer.ColContactEmail: "sarah@techco.com"},
	}}
	uc := newUseCase(reader, store)
	ctx := context.Background()

	res, err := uc.ImportRMA(ctx, "rmas.xlsx", strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 3, res.Processed)
	assert.Equal(t, importer.KindRMA, res.Kind)
	assert.Equal(t, "Successfully processed 3 RMA records", res.Message)

	rmas, err := memory.NewRMARepository(store).List(ctx)
	require.NoError(t, err)
	assert.Len(t, rmas, 3)
	assert.Equal(t, fixedNow, rmas[0].CreatedAt)

	customers, err := memory.NewCustomerRepository(store).List(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, "Acme Corp", customers[0].Name)
	assert.Equal(t, "John Smith", customers[0].Contact)
	assert.Equal(t, "john@acme.com", customers[0].Email)
	assert.Equal(t, "svc@techco.com", customers[1].Email, "el email de la cuenta tiene prioridad")
}

func TestImportRMA_ReimportarActualizaPorNumero(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	reader := &fakeReader{rows: []map[string]string{{importer.ColRMANumber: "RMA-1", importer.ColStatus: "Open"}}}
	uc := newUseCase(reader, store)
	_, err := uc.ImportRMA(ctx, "a.csv", strings.NewReader(""))
	require.NoError(t, err)

	reader.rows = []map[string]string{{importer.ColRMANumber: "RMA-1", importer.ColStatus: "Closed"}}
	_, err = uc.ImportRMA(ctx, "a.csv", strings.NewReader(""))
	require.NoError(t, err)

	rmas, err := memory.NewRMARepository(store).List(ctx)
	require.NoError(t, err)
	require.Len(t, rmas, 1)
	assert.Equal(t, "Closed", rmas[0].Status)
}

func TestImportServiceOrders_NormalizaEstado(t *testing.T) {
	store := memory.NewStore()
	reader := &fakeReader{rows: []map[string]string{
		{importer.ColServiceOrder: "SO-1", importer.ColOrderStatus: "CLOSED"},
		{importer.ColServiceOrder: "SO-2", importer.ColOrderStatus: " Open "},
		{importer.ColServiceOrder: "SO-3", importer.ColOrderStatus: "On Hold"},
	}}
	uc := newUseCase(reader, store)
	ctx := context.Background()

	res, err := uc.ImportServiceOrders(ctx, "so.csv", strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, "Successfully processed 3 Service Order records", res.Message)

	repo := memory.NewServiceOrderRepository(store)
	so1, err := repo.GetByNumber(ctx, "SO-1")
	require.NoError(t, err)
	assert.Equal(t, "closed", so1.OrderStatus)
	so2, _ := repo.GetByNumber(ctx, "SO-2")
	assert.Equal(t, "open", so2.OrderStatus)
	so3, _ := repo.GetByNumber(ctx, "SO-3")
	assert.Equal(t, "On Hold", so3.OrderStatus)
}

func TestImportRMA_HojaVaciaProcesaCero(t *testing.T) {
	uc := newUseCase(&fakeReader{}, memory.NewStore())
	res, err := uc.ImportRMA(context.Background(), "vacio.csv", strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, res.Processed)
	assert.Equal(t, "Successfully processed 0 RMA records", res.Message)
}

func TestImportRMA_ErrorDeLectura(t *testing.T) {
	readErr := errors.New("archivo corrupto")
	uc := newUseCase(&fakeReader{err: readErr}, memory.NewStore())
	_, err := uc.ImportRMA(context.Background(), "x.xlsx", strings.NewReader(""))
	assert.ErrorIs(t, err, readErr)
}

func TestImportServiceOrders_ErrorDeTransaccion(t *testing.T) {
	txErr := errors.New("conexión perdida")
	uc := importer.NewImportUseCase(&fakeReader{rows: []map[string]string{{}}}, failingTx{err: txErr}, clock.NewFixed(fixedNow), zerolog.Nop())
	_, err := uc.ImportServiceOrders(context.Background(), "so.csv", strings.NewReader(""))
	assert.ErrorIs(t, err, txErr)
}
