// Package stripegw is the live StoreGateway: catalog and entitlement lookup
// backed by the Stripe SDK, with observed transactions persisted to the
// ledger. Purchases are refused here; they originate in the platform's own
// commerce framework, never through this server-side gateway.
package stripegw

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	stripe "github.com/stripe/stripe-go"
	"github.com/stripe/stripe-go/plan"
	"github.com/stripe/stripe-go/product"
	"github.com/stripe/stripe-go/sub"

	storedb "github.com/previewlabs/storekit-preview/api/store/db"
	gw "github.com/previewlabs/storekit-preview/api/store/gateway"
	"github.com/previewlabs/storekit-preview/api/storekit"
)

// ErrPurchaseUnsupported is returned for any purchase attempt against the
// live gateway.
var ErrPurchaseUnsupported = errors.New("purchases must originate in the client store, not the live gateway")

// SetKey configures the Stripe SDK key once during bootstrap.
func SetKey(key string) { stripe.Key = key }

// client is the Stripe SDK-backed implementation of the gateway, scoped to
// one store customer.
type client struct{ customerID string }

// New returns a StoreGateway backed by the official Stripe SDK, serving
// entitlements for the given customer.
func New(customerID string) gw.StoreGateway { return client{customerID: customerID} }

// Products fetches each requested product and its billing plan from Stripe
// and maps them onto the store catalog shape. Unknown identifiers yield an
// error, unlike the filter-ignoring preview gateway.
func (c client) Products(ctx context.Context, ids []string) ([]storekit.Product, error) {
	out := make([]storekit.Product, 0, len(ids))
	for _, id := range ids {
		prodPtr, err := product.Get(id, nil)
		if err != nil {
			return nil, fmt.Errorf("error fetching product %s: %w", id, err)
		}
		if prodPtr == nil {
			return nil, fmt.Errorf("product %s not found", id)
		}
		out = append(out, mapProduct(*prodPtr, firstActivePlan(id)))
	}
	return out, nil
}

// firstActivePlan returns the product's first active billing plan, or nil
// for one-time products.
func firstActivePlan(productID string) *stripe.Plan {
	params := &stripe.PlanListParams{Product: stripe.String(productID), Active: stripe.Bool(true)}
	iter := plan.List(params)
	for iter.Next() {
		return iter.Plan()
	}
	return nil
}

func mapProduct(p stripe.Product, pl *stripe.Plan) storekit.Product {
	mapped := storekit.Product{
		ID:          p.ID,
		Kind:        storekit.ProductKindNonConsumable,
		DisplayName: p.Name,
		Description: p.Description,
	}
	if p.Metadata["family_shareable"] == "true" {
		mapped.IsFamilyShareable = true
	}
	if pl != nil {
		mapped.Kind = storekit.ProductKindAutoRenewable
		mapped.Price = decimal.New(pl.Amount, -2)
		mapped.DisplayPrice = displayPrice(pl.Amount, pl.Currency)
		mapped.Subscription = &storekit.SubscriptionInfo{
			SubscriptionGroupID: p.ID,
			Period: storekit.SubscriptionPeriod{
				Unit:  periodUnit(pl.Interval),
				Value: int(pl.IntervalCount),
			},
		}
	}
	return mapped
}

func periodUnit(interval stripe.PlanInterval) storekit.PeriodUnit {
	switch interval {
	case stripe.PlanIntervalDay:
		return storekit.PeriodUnitDay
	case stripe.PlanIntervalWeek:
		return storekit.PeriodUnitWeek
	case stripe.PlanIntervalYear:
		return storekit.PeriodUnitYear
	default:
		return storekit.PeriodUnitMonth
	}
}

func displayPrice(amount int64, currency stripe.Currency) string {
	dec := decimal.New(amount, -2).StringFixed(2)
	if currency == stripe.CurrencyUSD || currency == "" {
		return "$" + dec
	}
	return fmt.Sprintf("%s %s", strings.ToUpper(string(currency)), dec)
}

// Purchase always fails on the live gateway.
func (c client) Purchase(ctx context.Context, productID string, opts storekit.PurchaseOptions) (storekit.PurchaseResult, error) {
	return storekit.PurchaseResult{}, ErrPurchaseUnsupported
}

// entitlements lists the customer's active subscriptions and maps each onto
// a transaction record.
func (c client) entitlements() ([]storekit.Transaction, error) {
	params := &stripe.SubscriptionListParams{Customer: c.customerID}
	params.Status = string(stripe.SubscriptionStatusActive)
	iter := sub.List(params)
	var out []storekit.Transaction
	for iter.Next() {
		out = append(out, mapSubscription(*iter.Subscription()))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("error listing subscriptions: %w", err)
	}
	return out, nil
}

func mapSubscription(s stripe.Subscription) storekit.Transaction {
	tx := storekit.Transaction{
		ProductKind:          storekit.ProductKindAutoRenewable,
		PurchaseDate:         time.Unix(s.CurrentPeriodStart, 0).UTC(),
		OriginalPurchaseDate: time.Unix(s.Created, 0).UTC(),
		PurchasedQuantity:    1,
	}
	expiration := time.Unix(s.CurrentPeriodEnd, 0).UTC()
	tx.ExpirationDate = &expiration
	if s.Plan != nil && s.Plan.Product != nil {
		tx.ProductID = s.Plan.Product.ID
	}
	return tx
}

// Updates emits entitlements not yet present in the ledger (transactions
// completed while the app was not running), records them, then blocks until
// ctx is cancelled. Stream contract matches the preview gateway: no error
// elements; failures are logged and end the stream.
func (c client) Updates(ctx context.Context) <-chan storekit.VerificationResult {
	out := make(chan storekit.VerificationResult)
	go func() {
		defer close(out)
		txs, err := c.entitlements()
		if err != nil {
			slog.Error("updates feed aborted", "err", err)
			return
		}
		for _, tx := range txs {
			seen, err := storedb.WasRecorded(c.customerID, tx)
			if err != nil {
				slog.Error("ledger lookup failed", "product_id", tx.ProductID, "err", err)
				return
			}
			if seen {
				continue
			}
			if err := storedb.RecordTransaction(c.customerID, tx); err != nil {
				slog.Error("ledger record failed", "product_id", tx.ProductID, "err", err)
				return
			}
			select {
			case out <- storekit.Verify(tx):
			case <-ctx.Done():
				return
			}
		}
		<-ctx.Done()
	}()
	return out
}

// CurrentEntitlements emits the customer's active subscriptions, recording
// each into the ledger, then closes.
func (c client) CurrentEntitlements(ctx context.Context) <-chan storekit.VerificationResult {
	out := make(chan storekit.VerificationResult)
	go func() {
		defer close(out)
		txs, err := c.entitlements()
		if err != nil {
			slog.Error("entitlements feed aborted", "err", err)
			return
		}
		for _, tx := range txs {
			if err := storedb.RecordTransaction(c.customerID, tx); err != nil {
				slog.Error("ledger record failed", "product_id", tx.ProductID, "err", err)
			}
			select {
			case out <- storekit.Verify(tx):
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
