// Package preview is the fixture-backed StoreGateway used by UI preview and
// development builds. It never contacts a commerce backend and defines no
// error paths: the catalog never fails, purchases never error, and the
// streams never carry errors.
package preview

import (
	"context"
	"log/slog"
	"time"

	gw "github.com/previewlabs/storekit-preview/api/store/gateway"
	"github.com/previewlabs/storekit-preview/api/storekit"
)

// DefaultPurchaseDelay is how long a preview purchase suspends before
// resolving when no delay is configured.
const DefaultPurchaseDelay = time.Second

// client serves fixtures. It holds no shared mutable state, so a single
// value can back any number of concurrent callers without locking.
type client struct {
	purchaseDelay time.Duration
}

// New returns a StoreGateway backed by the preview fixtures. A non-positive
// delay falls back to DefaultPurchaseDelay.
func New(purchaseDelay time.Duration) gw.StoreGateway {
	if purchaseDelay <= 0 {
		purchaseDelay = DefaultPurchaseDelay
	}
	return client{purchaseDelay: purchaseDelay}
}

// Products returns the full fixed catalog regardless of ids. A real catalog
// filters by the requested identifiers; the preview deliberately ignores the
// filter so screens always have all four items to render. The app layer adds
// filtering for callers that want real-catalog semantics.
func (c client) Products(ctx context.Context, ids []string) ([]storekit.Product, error) {
	if len(ids) > 0 {
		slog.Debug("preview catalog ignores identifier filter", "requested", len(ids))
	}
	return Catalog(), nil
}

// Purchase suspends for the configured delay, then resolves to pending. It
// never branches on the product or options: the pending outcome forces the
// screens under preview to handle the awaiting-approval state.
func (c client) Purchase(ctx context.Context, productID string, opts storekit.PurchaseOptions) (storekit.PurchaseResult, error) {
	timer := time.NewTimer(c.purchaseDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return storekit.PurchaseResult{}, ctx.Err()
	case <-timer.C:
	}
	slog.Debug("preview purchase resolved pending", "product_id", productID)
	return storekit.PurchaseResult{Status: storekit.PurchaseStatusPending}, nil
}

// Updates emits the fixed transaction once, then blocks until ctx is
// cancelled. The feed it mimics is conceptually infinite and multi-session;
// the single element stands for "one pending update to process at launch".
func (c client) Updates(ctx context.Context) <-chan storekit.VerificationResult {
	out := make(chan storekit.VerificationResult, 1)
	go func() {
		defer close(out)
		select {
		case out <- storekit.Verify(FixedTransaction()):
		case <-ctx.Done():
			return
		}
		<-ctx.Done()
	}()
	return out
}

// CurrentEntitlements emits the fixed transaction once and closes: the
// previewed user holds exactly one active Pro Monthly subscription.
func (c client) CurrentEntitlements(ctx context.Context) <-chan storekit.VerificationResult {
	out := make(chan storekit.VerificationResult, 1)
	go func() {
		defer close(out)
		select {
		case out <- storekit.Verify(FixedTransaction()):
		case <-ctx.Done():
		}
	}()
	return out
}
