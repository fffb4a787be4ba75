package preview

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/previewlabs/storekit-preview/api/storekit"
)

// Two subscription tiers, each offered monthly and yearly. All four are
// auto-renewable, so every catalog entry carries subscription info.
const (
	ProductProMonthly     = "com.previewlabs.pro.monthly"
	ProductProYearly      = "com.previewlabs.pro.yearly"
	ProductPremiumMonthly = "com.previewlabs.premium.monthly"
	ProductPremiumYearly  = "com.previewlabs.premium.yearly"
)

const (
	groupPro     = "pro"
	groupPremium = "premium"
)

func monthly(group string) *storekit.SubscriptionInfo {
	return &storekit.SubscriptionInfo{
		SubscriptionGroupID: group,
		Period:              storekit.SubscriptionPeriod{Unit: storekit.PeriodUnitMonth, Value: 1},
	}
}

func yearly(group string) *storekit.SubscriptionInfo {
	return &storekit.SubscriptionInfo{
		SubscriptionGroupID: group,
		Period:              storekit.SubscriptionPeriod{Unit: storekit.PeriodUnitYear, Value: 1},
	}
}

// Catalog returns the fixed four-item preview catalog. The slice is freshly
// allocated on every call so callers can reorder or filter it freely.
func Catalog() []storekit.Product {
	return []storekit.Product{
		{
			ID:                ProductProMonthly,
			Kind:              storekit.ProductKindAutoRenewable,
			DisplayName:       "Pro Monthly",
			Description:       "Unlock all Pro features, billed monthly.",
			Price:             decimal.RequireFromString("9.99"),
			DisplayPrice:      "$9.99",
			IsFamilyShareable: true,
			Subscription:      monthly(groupPro),
		},
		{
			ID:                ProductProYearly,
			Kind:              storekit.ProductKindAutoRenewable,
			DisplayName:       "Pro Yearly",
			Description:       "Unlock all Pro features, billed once a year.",
			Price:             decimal.RequireFromString("99.99"),
			DisplayPrice:      "$99.99",
			IsFamilyShareable: true,
			Subscription:      yearly(groupPro),
		},
		{
			ID:                ProductPremiumMonthly,
			Kind:              storekit.ProductKindAutoRenewable,
			DisplayName:       "Premium Monthly",
			Description:       "Everything in Pro plus premium content, billed monthly.",
			Price:             decimal.RequireFromString("14.99"),
			DisplayPrice:      "$14.99",
			IsFamilyShareable: false,
			Subscription:      monthly(groupPremium),
		},
		{
			ID:                ProductPremiumYearly,
			Kind:              storekit.ProductKindAutoRenewable,
			DisplayName:       "Premium Yearly",
			Description:       "Everything in Pro plus premium content, billed once a year.",
			Price:             decimal.RequireFromString("149.99"),
			DisplayPrice:      "$149.99",
			IsFamilyShareable: false,
			Subscription:      yearly(groupPremium),
		},
	}
}

var (
	fixedOnce sync.Once
	fixedTx   storekit.Transaction
)

// FixedTransaction returns the one transaction the preview streams carry: an
// active Pro Monthly subscription, originally purchased two months ago and
// renewed mid-cycle. Dates are computed once at first access so every stream
// element compares equal for the lifetime of the process.
func FixedTransaction() storekit.Transaction {
	fixedOnce.Do(func() {
		now := time.Now().UTC().Truncate(time.Second)
		expiration := now.Add(15 * 24 * time.Hour)
		fixedTx = storekit.Transaction{
			ProductID:            ProductProMonthly,
			ProductKind:          storekit.ProductKindAutoRenewable,
			PurchaseDate:         now.Add(-15 * 24 * time.Hour),
			OriginalPurchaseDate: now.Add(-60 * 24 * time.Hour),
			ExpirationDate:       &expiration,
			PurchasedQuantity:    1,
		}
	})
	return fixedTx
}
