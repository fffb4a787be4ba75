package storekit

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ProductKind classifies how a product is purchased and renewed.
type ProductKind string

const (
	ProductKindConsumable    ProductKind = "consumable"
	ProductKindNonConsumable ProductKind = "nonConsumable"
	ProductKindAutoRenewable ProductKind = "autoRenewable"
	ProductKindNonRenewing   ProductKind = "nonRenewing"
)

// PeriodUnit is the calendar unit of a subscription period.
type PeriodUnit string

const (
	PeriodUnitDay   PeriodUnit = "day"
	PeriodUnitWeek  PeriodUnit = "week"
	PeriodUnitMonth PeriodUnit = "month"
	PeriodUnitYear  PeriodUnit = "year"
)

// SubscriptionPeriod describes the recurrence cadence of an auto-renewable
// subscription: Value units of Unit (e.g. 1 month, 7 days).
type SubscriptionPeriod struct {
	Unit  PeriodUnit `json:"unit"`
	Value int        `json:"value"`
}

// SubscriptionInfo carries the renewal metadata of an auto-renewable product.
type SubscriptionInfo struct {
	SubscriptionGroupID string             `json:"subscriptionGroupId"`
	Period              SubscriptionPeriod `json:"period"`
}

// Product mirrors the store's purchasable item shape. It is a plain value
// type so preview code can construct catalogs without any store framework.
// Subscription is non-nil exactly when Kind is ProductKindAutoRenewable.
type Product struct {
	ID                string            `json:"id"`
	Kind              ProductKind       `json:"kind"`
	DisplayName       string            `json:"displayName"`
	Description       string            `json:"description"`
	Price             decimal.Decimal   `json:"price"`
	DisplayPrice      string            `json:"displayPrice"`
	IsFamilyShareable bool              `json:"isFamilyShareable"`
	Subscription      *SubscriptionInfo `json:"subscription,omitempty"`
}

// Validate reports whether the product satisfies the catalog invariants.
func (p Product) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("product has empty id")
	}
	switch p.Kind {
	case ProductKindConsumable, ProductKindNonConsumable, ProductKindAutoRenewable, ProductKindNonRenewing:
	default:
		return fmt.Errorf("product %s has unknown kind %q", p.ID, p.Kind)
	}
	if p.Kind == ProductKindAutoRenewable && p.Subscription == nil {
		return fmt.Errorf("product %s is auto-renewable but has no subscription info", p.ID)
	}
	if p.Kind != ProductKindAutoRenewable && p.Subscription != nil {
		return fmt.Errorf("product %s has subscription info but kind %s", p.ID, p.Kind)
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("product %s has negative price %s", p.ID, p.Price)
	}
	return nil
}
