package bootstrap

import (
	"fmt"
	"sync"

	"github.com/previewlabs/storekit-preview/api/config"
	"github.com/previewlabs/storekit-preview/api/database"
	storeapp "github.com/previewlabs/storekit-preview/api/store/app"
	previewgw "github.com/previewlabs/storekit-preview/api/store/gateway/preview"
	stripegw "github.com/previewlabs/storekit-preview/api/store/gateway/stripe"
)

var storeService storeapp.Service
var initOnce sync.Once
var initErr error

// Init loads config and wires the store service behind the gateway selected
// by STORE_MODE. This is the only place the preview/live decision is made;
// everything downstream sees the same Service interface.
func Init() error {
	// If a service has already been injected (e.g., tests), do not override or init heavy deps.
	if storeService != nil {
		return nil
	}
	var err error
	if config.AppConfig == nil {
		config.AppConfig, err = config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}

	switch config.AppConfig.StoreMode {
	case config.StoreModeStripe:
		if err := database.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		stripegw.SetKey(config.AppConfig.StripeSecretKey)
		storeService = storeapp.NewService(stripegw.New(config.AppConfig.StripeCustomerID))
	default:
		storeService = storeapp.NewService(previewgw.New(config.AppConfig.PurchaseDelay()))
	}
	return nil
}

func GetStoreService() storeapp.Service { return storeService }

// SetStoreService allows tests to inject a stub implementation.
func SetStoreService(s storeapp.Service) { storeService = s }

// Ensure runs Init() once per process and returns any initialization error.
func Ensure() error {
	initOnce.Do(func() {
		initErr = Init()
	})
	return initErr
}
