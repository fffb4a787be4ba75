package storekit

import "github.com/google/uuid"

// VerificationResult wraps a transaction with the outcome of its authenticity
// check. VerificationError is non-nil exactly when Verified is false.
type VerificationResult struct {
	Transaction       Transaction `json:"transaction"`
	Verified          bool        `json:"verified"`
	VerificationError error       `json:"-"`
}

// Verify wraps t as a successfully verified result.
func Verify(t Transaction) VerificationResult {
	return VerificationResult{Transaction: t, Verified: true}
}

// Unverified wraps t as a result whose authenticity check failed.
func Unverified(t Transaction, err error) VerificationResult {
	return VerificationResult{Transaction: t, VerificationError: err}
}

// PurchaseStatus is the outcome tag of a purchase attempt.
type PurchaseStatus string

const (
	// PurchaseStatusSuccess means the purchase completed; Transaction carries
	// the verification-wrapped record.
	PurchaseStatusSuccess PurchaseStatus = "success"
	// PurchaseStatusCancelled means the user dismissed the purchase flow.
	PurchaseStatusCancelled PurchaseStatus = "cancelled"
	// PurchaseStatusPending means the purchase awaits external approval,
	// e.g. parental consent.
	PurchaseStatusPending PurchaseStatus = "pending"
)

// PurchaseResult is the tagged outcome of a purchase attempt. Transaction is
// meaningful only when Status is PurchaseStatusSuccess.
type PurchaseResult struct {
	Status      PurchaseStatus     `json:"status"`
	Transaction VerificationResult `json:"transaction"`
}

// PurchaseOptions customize a purchase attempt. The zero value is valid and
// means a plain single-quantity purchase.
type PurchaseOptions struct {
	// AppAccountToken associates the purchase with an in-app account.
	AppAccountToken uuid.UUID `json:"appAccountToken,omitempty"`
	// Quantity overrides the purchased quantity; 0 means 1.
	Quantity int `json:"quantity,omitempty"`
	// SimulatesAskToBuy forces the ask-to-buy approval flow in sandbox runs.
	SimulatesAskToBuy bool `json:"simulatesAskToBuy,omitempty"`
}
