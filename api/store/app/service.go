package app

import (
	"context"
	"fmt"
	"log/slog"

	gw "github.com/previewlabs/storekit-preview/api/store/gateway"
	"github.com/previewlabs/storekit-preview/api/storekit"
)

// Service defines the business operations for the store domain: the four
// surfaces preview screens consume.
type Service interface {
	Products(ctx context.Context, ids []string) ([]storekit.Product, error)
	Purchase(ctx context.Context, productID string, opts storekit.PurchaseOptions) (storekit.PurchaseResult, error)
	Updates(ctx context.Context) <-chan storekit.VerificationResult
	CurrentEntitlements(ctx context.Context) <-chan storekit.VerificationResult
}

// serviceImpl is a concrete implementation over a StoreGateway.
type serviceImpl struct{ gw gw.StoreGateway }

func NewService(g gw.StoreGateway) Service { return serviceImpl{gw: g} }

// Products fetches the gateway catalog and, when ids is non-empty, filters
// it to the requested identifiers preserving catalog order. Identifiers not
// in the catalog are simply absent from the result; the preview gateway
// itself ignores the filter, so the filtering here restores real-catalog
// semantics for correctness-minded callers.
func (s serviceImpl) Products(ctx context.Context, ids []string) ([]storekit.Product, error) {
	catalog, err := s.gw.Products(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: error fetching catalog: %v", ErrGateway, err)
	}
	if len(ids) == 0 {
		return catalog, nil
	}
	requested := make(map[string]bool, len(ids))
	for _, id := range ids {
		requested[id] = true
	}
	filtered := make([]storekit.Product, 0, len(ids))
	for _, p := range catalog {
		if requested[p.ID] {
			filtered = append(filtered, p)
		}
	}
	slog.Debug("catalog filtered", "requested", len(ids), "matched", len(filtered))
	return filtered, nil
}

// Purchase validates the options, then delegates to the gateway. Validation
// happens here so the mock and live gateways share one malformed-options
// contract.
func (s serviceImpl) Purchase(ctx context.Context, productID string, opts storekit.PurchaseOptions) (storekit.PurchaseResult, error) {
	if productID == "" {
		return storekit.PurchaseResult{}, fmt.Errorf("%w: empty product id", ErrBadPurchaseOptions)
	}
	if opts.Quantity < 0 {
		return storekit.PurchaseResult{}, fmt.Errorf("%w: negative quantity %d", ErrBadPurchaseOptions, opts.Quantity)
	}
	if opts.Quantity > 1 {
		kind, err := s.productKind(ctx, productID)
		if err != nil {
			return storekit.PurchaseResult{}, err
		}
		if kind == storekit.ProductKindNonConsumable || kind == storekit.ProductKindAutoRenewable {
			return storekit.PurchaseResult{}, fmt.Errorf("%w: quantity %d for single-purchase kind %s", ErrBadPurchaseOptions, opts.Quantity, kind)
		}
	}
	res, err := s.gw.Purchase(ctx, productID, opts)
	if err != nil {
		return storekit.PurchaseResult{}, fmt.Errorf("%w: %v", ErrGateway, err)
	}
	slog.Info("purchase resolved", "product_id", productID, "status", res.Status)
	return res, nil
}

func (s serviceImpl) productKind(ctx context.Context, productID string) (storekit.ProductKind, error) {
	catalog, err := s.gw.Products(ctx, []string{productID})
	if err != nil {
		return "", fmt.Errorf("%w: error fetching catalog: %v", ErrGateway, err)
	}
	for _, p := range catalog {
		if p.ID == productID {
			return p.Kind, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrProductNotFound, productID)
}

// Updates exposes the gateway's transaction update feed. Consume it once per
// process lifetime, starting at launch.
func (s serviceImpl) Updates(ctx context.Context) <-chan storekit.VerificationResult {
	return s.gw.Updates(ctx)
}

// CurrentEntitlements exposes the gateway's entitlement feed.
func (s serviceImpl) CurrentEntitlements(ctx context.Context) <-chan storekit.VerificationResult {
	return s.gw.CurrentEntitlements(ctx)
}
