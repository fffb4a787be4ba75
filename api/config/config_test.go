package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, v := range []string{"STORE_MODE", "STRIPE_SECRET_KEY", "STRIPE_CUSTOMER_ID", "DATABASE_URL", "PURCHASE_DELAY_MS", "PORT"} {
		t.Setenv(v, "")
	}
}

func Test_LoadConfig_PreviewDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, StoreModePreview, cfg.StoreMode)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Zero(t, cfg.PurchaseDelay())
}

func Test_LoadConfig_StripeModeRequiresCredentials(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_MODE", StoreModeStripe)

	_, err := LoadConfig()
	assert.Error(t, err, "stripe mode without credentials must fail")

	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("STRIPE_CUSTOMER_ID", "cus_123")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost/ledger")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, StoreModeStripe, cfg.StoreMode)
	assert.Equal(t, "sk_test_123", cfg.StripeSecretKey)
}

func Test_LoadConfig_RejectsUnknownMode(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_MODE", "sandbox")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func Test_PurchaseDelay_Parsing(t *testing.T) {
	cfg := &Config{PurchaseDelayMS: "250"}
	assert.Equal(t, 250*time.Millisecond, cfg.PurchaseDelay())

	cfg.PurchaseDelayMS = "not-a-number"
	assert.Zero(t, cfg.PurchaseDelay())

	cfg.PurchaseDelayMS = "-5"
	assert.Zero(t, cfg.PurchaseDelay())
}
