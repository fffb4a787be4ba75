package gateway

import (
	"context"

	"github.com/previewlabs/storekit-preview/api/storekit"
)

// StoreGateway abstracts the commerce backend behind the four store surfaces.
// The preview implementation serves fixtures; the stripe implementation talks
// to the live backend. Which one is active is decided at bootstrap, never at
// the type level. Methods return values (not pointers) to respect the
// project's preference to avoid pointer types in public interfaces.
type StoreGateway interface {
	// Products returns catalog entries for the requested identifiers, in
	// catalog order. Implementations may ignore the filter; see the preview
	// gateway for the documented divergence.
	Products(ctx context.Context, ids []string) ([]storekit.Product, error)

	// Purchase initiates a purchase of the identified product and resolves
	// to one of success, cancelled, or pending. Callers must treat this as a
	// potentially long-running operation.
	Purchase(ctx context.Context, productID string, opts storekit.PurchaseOptions) (storekit.PurchaseResult, error)

	// Updates is the feed of transactions completed outside the running app,
	// e.g. async parental approval or a purchase on another device. Consume
	// it once per process lifetime, starting at launch. The channel closes
	// when ctx is cancelled.
	Updates(ctx context.Context) <-chan storekit.VerificationResult

	// CurrentEntitlements yields the up-to-date set of active subscriptions
	// and non-refunded non-consumable purchases, then closes.
	CurrentEntitlements(ctx context.Context) <-chan storekit.VerificationResult
}
