package storekit

import (
	"fmt"
	"time"
)

// RevocationReason explains why the store revoked a transaction.
type RevocationReason string

const (
	RevocationReasonDeveloperIssue RevocationReason = "developerIssue"
	RevocationReasonOther          RevocationReason = "other"
)

// Transaction mirrors the store's purchase record shape. ProductID is a
// reference into the catalog but is not enforced here. RevocationDate and
// RevocationReason are either both set or both nil.
type Transaction struct {
	ProductID            string            `json:"productId"`
	ProductKind          ProductKind       `json:"productKind"`
	PurchaseDate         time.Time         `json:"purchaseDate"`
	OriginalPurchaseDate time.Time         `json:"originalPurchaseDate"`
	ExpirationDate       *time.Time        `json:"expirationDate,omitempty"`
	PurchasedQuantity    int               `json:"purchasedQuantity"`
	IsUpgraded           bool              `json:"isUpgraded"`
	RevocationDate       *time.Time        `json:"revocationDate,omitempty"`
	RevocationReason     *RevocationReason `json:"revocationReason,omitempty"`
}

// Validate reports whether the transaction satisfies the record invariants.
func (t Transaction) Validate() error {
	if t.ProductID == "" {
		return fmt.Errorf("transaction has empty product id")
	}
	if (t.RevocationDate == nil) != (t.RevocationReason == nil) {
		return fmt.Errorf("transaction %s has revocation date and reason out of sync", t.ProductID)
	}
	if t.PurchaseDate.Before(t.OriginalPurchaseDate) {
		return fmt.Errorf("transaction %s purchased before its original purchase", t.ProductID)
	}
	switch t.ProductKind {
	case ProductKindNonConsumable, ProductKindAutoRenewable:
		if t.PurchasedQuantity != 1 {
			return fmt.Errorf("transaction %s has quantity %d for kind %s", t.ProductID, t.PurchasedQuantity, t.ProductKind)
		}
	}
	if t.PurchasedQuantity < 1 {
		return fmt.Errorf("transaction %s has non-positive quantity %d", t.ProductID, t.PurchasedQuantity)
	}
	return nil
}

// Revoked reports whether the store has revoked this transaction.
func (t Transaction) Revoked() bool { return t.RevocationDate != nil }
