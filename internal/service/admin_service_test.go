package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/5yazahamed/TalesOfBrowniesE-Commerce/internal/adapters/memory"
	"github.com/5yazahamed/TalesOfBrowniesE-Commerce/internal/core"
	"github.com/5yazahamed/TalesOfBrowniesE-Commerce/internal/events"
	"github.com/5yazahamed/TalesOfBrowniesE-Commerce/internal/store"
)

func newAdminFixture(t *testing.T, credentials AdminCredentials) (*AdminService, *store.SalesLedger) {
	t.Helper()
	docs := memory.NewStore()
	log := zap.NewNop()
	catalogStore := store.NewCatalogStore(docs, log)
	ledger := store.NewSalesLedger(docs, log)
	svc := NewAdminService(catalogStore, ledger, events.NewEventBus(), credentials, "test-secret", log)
	return svc, ledger
}

var testCredentials = AdminCredentials{
	Username: "Tales of brownies",
	Password: "TOB12345",
}

func TestLoginAndValidateJWT(t *testing.T) {
	svc, _ := newAdminFixture(t, testCredentials)

	token, err := svc.Login("Tales of brownies", "TOB12345")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "Tales of brownies", claims["username"])
	assert.Equal(t, "ADMIN", claims["role"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newAdminFixture(t, testCredentials)

	_, err := svc.Login("Tales of brownies", "wrong")
	assert.Error(t, err)

	_, err = svc.Login("admin", "TOB12345")
	assert.Error(t, err)
}

func TestLoginWithPasswordHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	svc, _ := newAdminFixture(t, AdminCredentials{
		Username:     "Tales of brownies",
		Password:     "ignored-when-hash-set",
		PasswordHash: string(hash),
	})

	_, err = svc.Login("Tales of brownies", "s3cret")
	assert.NoError(t, err)

	_, err = svc.Login("Tales of brownies", "ignored-when-hash-set")
	assert.Error(t, err)
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	svc, _ := newAdminFixture(t, testCredentials)

	_, err := svc.ValidateJWT("not-a-token")
	assert.Error(t, err)
}

func TestUpsertAndDeleteSize(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAdminFixture(t, testCredentials)

	require.NoError(t, svc.UpsertSize(ctx, 1500, core.SizeOption{Price: 1499}))
	cfg := svc.Catalog(ctx)
	assert.Equal(t, 1499.0, cfg.Sizes[1500].Price)

	err := svc.UpsertSize(ctx, 0, core.SizeOption{Price: 100})
	require.Error(t, err)
	assert.True(t, core.IsValidation(err))

	err = svc.UpsertSize(ctx, 250, core.SizeOption{Price: -1})
	require.Error(t, err)
	assert.True(t, core.IsValidation(err))

	require.NoError(t, svc.DeleteSize(ctx, 1500))
	_, ok := svc.Catalog(ctx).Sizes[1500]
	assert.False(t, ok)

	// Deleting an absent size is a silent no-op.
	require.NoError(t, svc.DeleteSize(ctx, 1500))
}

func TestUpsertAndDeleteTopping(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAdminFixture(t, testCredentials)

	require.NoError(t, svc.UpsertTopping(ctx, "Caramel", core.ToppingOption{Price250: 25, Price500: 50}))
	cfg := svc.Catalog(ctx)
	assert.Equal(t, 25.0, cfg.Toppings["Caramel"].Price250)

	err := svc.UpsertTopping(ctx, "", core.ToppingOption{})
	require.Error(t, err)
	assert.True(t, core.IsValidation(err))

	err = svc.UpsertTopping(ctx, "Caramel", core.ToppingOption{Price250: -5})
	require.Error(t, err)
	assert.True(t, core.IsValidation(err))

	require.NoError(t, svc.DeleteTopping(ctx, "Caramel"))
	_, ok := svc.Catalog(ctx).Toppings["Caramel"]
	assert.False(t, ok)

	require.NoError(t, svc.DeleteTopping(ctx, "Caramel"))
}

func TestUpsertAfterEmptyCatalogSave(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAdminFixture(t, testCredentials)

	// Save accepts whatever shape the admin panel sends, including a
	// zero-value catalog whose maps unmarshal to nil on the next load.
	require.NoError(t, svc.SaveCatalog(ctx, core.CatalogConfig{}))

	require.NoError(t, svc.UpsertSize(ctx, 250, core.SizeOption{Price: 249}))
	require.NoError(t, svc.UpsertTopping(ctx, "Oreo", core.ToppingOption{Price250: 20, Price500: 40}))

	cfg := svc.Catalog(ctx)
	assert.Equal(t, 249.0, cfg.Sizes[250].Price)
	assert.Equal(t, 20.0, cfg.Toppings["Oreo"].Price250)
}

func TestResetCatalog(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAdminFixture(t, testCredentials)

	require.NoError(t, svc.DeleteSize(ctx, 250))
	cfg, err := svc.ResetCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, store.DefaultCatalog(), cfg)
}

func TestSalesFilteringAndSummary(t *testing.T) {
	ctx := context.Background()
	svc, ledger := newAdminFixture(t, testCredentials)

	require.NoError(t, ledger.Append(ctx, core.SaleRecord{
		OrderID: "TOB-1", Date: "05/01/2024", Total: 837, ItemCount: 3, ToppingCount: 2,
	}))
	require.NoError(t, ledger.Append(ctx, core.SaleRecord{
		OrderID: "TOB-2", Date: "01/02/2024", Total: 999, ItemCount: 1,
	}))

	january := svc.Sales(ctx, core.SaleFilter{Month: 1, Year: 2024})
	require.Len(t, january, 1)
	assert.Equal(t, "TOB-1", january[0].OrderID)

	summary := svc.SalesSummary(ctx, core.SaleFilter{Year: 2024})
	assert.Equal(t, 2, summary.Count)
	assert.Equal(t, 1836.0, summary.Revenue)
	assert.Equal(t, 4, summary.ItemUnits)
	assert.Equal(t, 2, summary.ToppingUnits)
}

func TestDeleteSale(t *testing.T) {
	ctx := context.Background()
	svc, ledger := newAdminFixture(t, testCredentials)

	require.NoError(t, ledger.Append(ctx, core.SaleRecord{OrderID: "TOB-1"}))
	require.NoError(t, svc.DeleteSale(ctx, "TOB-1"))
	assert.Empty(t, ledger.List(ctx))

	require.NoError(t, svc.DeleteSale(ctx, "TOB-404"))
}

func TestGenerateSalesReportPDF(t *testing.T) {
	ctx := context.Background()
	svc, ledger := newAdminFixture(t, testCredentials)

	require.NoError(t, ledger.Append(ctx, core.SaleRecord{
		OrderID:      "TOB-20240105-143045",
		Date:         "05/01/2024",
		Time:         "14:30:45",
		CustomerInfo: &core.CustomerInfo{Name: "Asha", Phone: "9876543210", Address: "12 MG Road"},
		Items: []core.SaleItem{
			{Size: "250g", BasePrice: 249, Quantity: 2, Total: 538,
				Toppings: []core.ToppingSelection{{Name: "Oreo", Price: 20}}},
		},
		ItemCount: 2, ToppingCount: 2, Total: 538,
	}))

	pdfBytes, filename, err := svc.GenerateSalesReportPDF(ctx, core.SaleFilter{Month: 1, Year: 2024})
	require.NoError(t, err)
	assert.Equal(t, "sales-report-2024-01.pdf", filename)
	assert.True(t, len(pdfBytes) > 0)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}

func TestGenerateSalesReportPDFEmptyRange(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAdminFixture(t, testCredentials)

	pdfBytes, filename, err := svc.GenerateSalesReportPDF(ctx, core.SaleFilter{})
	require.NoError(t, err)
	assert.Equal(t, "sales-report-all.pdf", filename)
	assert.NotEmpty(t, pdfBytes)
}
