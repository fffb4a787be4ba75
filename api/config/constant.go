package config

import (
	"log"
	"strings"
)

const (
	// LiveKeyPrefix marks a production Stripe secret key.
	LiveKeyPrefix = "sk_live_"

	// ProdDbId is the identifier for the production database
	ProdDbId = "prod-cloud"
)

// CheckNotLiveStore aborts immediately if the environment points a test run
// at the live store or the production database. This should be called at the
// start of any test that goes through bootstrap or the ledger.
func CheckNotLiveStore() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if strings.HasPrefix(cfg.StripeSecretKey, LiveKeyPrefix) {
		log.Fatal("Tests aborted: STRIPE_SECRET_KEY is a live key")
	}
	if strings.Contains(cfg.DatabaseURL, ProdDbId) {
		log.Fatalf("Tests aborted: DatabaseURL contains production identifier %s", ProdDbId)
	}
}
