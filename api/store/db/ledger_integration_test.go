package db_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	config "github.com/previewlabs/storekit-preview/api/config"
	database "github.com/previewlabs/storekit-preview/api/database"
	storedb "github.com/previewlabs/storekit-preview/api/store/db"
	"github.com/previewlabs/storekit-preview/api/storekit"
)

const ledgerTestCustomer = "cus_ledger_test"

// setupLedgerDB initializes the ledger database, skipping when no database is
// configured, and returns a cleanup function for this file's customer.
func setupLedgerDB(t *testing.T) func() {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping ledger integration test in -short mode")
	}
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL not set; skipping ledger integration test")
	}
	// Prevent tests from running against the live store or production database.
	config.CheckNotLiveStore()
	if database.GetDB() == nil {
		cfg, err := config.LoadConfig()
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}
		config.AppConfig = cfg
		if err := database.Initialize(); err != nil {
			t.Fatalf("Failed to initialize database: %v", err)
		}
	}
	// Pre-test cleanup to avoid cross-run contamination.
	_ = storedb.DeleteForCustomer(ledgerTestCustomer)
	return func() { _ = storedb.DeleteForCustomer(ledgerTestCustomer) }
}

func subscriptionAt(productID string, purchase time.Time) storekit.Transaction {
	expiration := purchase.Add(30 * 24 * time.Hour)
	return storekit.Transaction{
		ProductID:            productID,
		ProductKind:          storekit.ProductKindAutoRenewable,
		PurchaseDate:         purchase,
		OriginalPurchaseDate: purchase.Add(-60 * 24 * time.Hour),
		ExpirationDate:       &expiration,
		PurchasedQuantity:    1,
	}
}

func Test_RecordAndLookupTransaction(t *testing.T) {
	cleanup := setupLedgerDB(t)
	defer cleanup()

	tx := subscriptionAt("tier.a", time.Now().UTC().Truncate(time.Second))

	seen, err := storedb.WasRecorded(ledgerTestCustomer, tx)
	require.NoError(t, err)
	assert.False(t, seen, "fresh transaction must not be recorded yet")

	require.NoError(t, storedb.RecordTransaction(ledgerTestCustomer, tx))

	seen, err = storedb.WasRecorded(ledgerTestCustomer, tx)
	require.NoError(t, err)
	assert.True(t, seen)
}

func Test_RecordTransaction_RenewalRefreshesRow(t *testing.T) {
	cleanup := setupLedgerDB(t)
	defer cleanup()

	first := subscriptionAt("tier.a", time.Now().UTC().Truncate(time.Second).Add(-30*24*time.Hour))
	renewal := first
	renewal.PurchaseDate = first.PurchaseDate.Add(30 * 24 * time.Hour)
	expiration := renewal.PurchaseDate.Add(30 * 24 * time.Hour)
	renewal.ExpirationDate = &expiration

	require.NoError(t, storedb.RecordTransaction(ledgerTestCustomer, first))
	require.NoError(t, storedb.RecordTransaction(ledgerTestCustomer, renewal))

	recorded, err := storedb.ListRecorded(ledgerTestCustomer)
	require.NoError(t, err)
	require.Len(t, recorded, 1, "renewal must overwrite the lineage row")
	assert.Equal(t, renewal.PurchaseDate, recorded[0].PurchaseDate.UTC())

	// The renewal supersedes the original purchase date in WasRecorded too.
	seen, err := storedb.WasRecorded(ledgerTestCustomer, renewal)
	require.NoError(t, err)
	assert.True(t, seen)
}

func Test_ListEntitlements_ExcludesExpired(t *testing.T) {
	cleanup := setupLedgerDB(t)
	defer cleanup()

	now := time.Now().UTC().Truncate(time.Second)
	active := subscriptionAt("tier.a", now.Add(-24*time.Hour))
	expired := subscriptionAt("tier.b", now.Add(-90*24*time.Hour))

	require.NoError(t, storedb.RecordTransaction(ledgerTestCustomer, active))
	require.NoError(t, storedb.RecordTransaction(ledgerTestCustomer, expired))

	entitled, err := storedb.ListEntitlements(ledgerTestCustomer)
	require.NoError(t, err)
	require.Len(t, entitled, 1)
	assert.Equal(t, "tier.a", entitled[0].ProductID)
}
