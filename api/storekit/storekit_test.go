package storekit

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validSubscriptionProduct() Product {
	return Product{
		ID:           "com.example.pro.monthly",
		Kind:         ProductKindAutoRenewable,
		DisplayName:  "Pro Monthly",
		Price:        decimal.RequireFromString("9.99"),
		DisplayPrice: "$9.99",
		Subscription: &SubscriptionInfo{
			SubscriptionGroupID: "pro",
			Period:              SubscriptionPeriod{Unit: PeriodUnitMonth, Value: 1},
		},
	}
}

func Test_ProductValidate_AcceptsWellFormedProduct(t *testing.T) {
	assert.NoError(t, validSubscriptionProduct().Validate())
}

func Test_ProductValidate_SubscriptionInfoIffAutoRenewable(t *testing.T) {
	p := validSubscriptionProduct()
	p.Subscription = nil
	assert.Error(t, p.Validate(), "auto-renewable without subscription info")

	p = validSubscriptionProduct()
	p.Kind = ProductKindConsumable
	assert.Error(t, p.Validate(), "consumable with subscription info")

	p.Subscription = nil
	assert.NoError(t, p.Validate())
}

func Test_ProductValidate_RejectsUnknownKindAndNegativePrice(t *testing.T) {
	p := validSubscriptionProduct()
	p.Kind = "subscription"
	assert.Error(t, p.Validate())

	p = validSubscriptionProduct()
	p.Price = decimal.RequireFromString("-1")
	assert.Error(t, p.Validate())
}

func validTransaction() Transaction {
	now := time.Now().UTC()
	expiration := now.Add(24 * time.Hour)
	return Transaction{
		ProductID:            "com.example.pro.monthly",
		ProductKind:          ProductKindAutoRenewable,
		PurchaseDate:         now.Add(-24 * time.Hour),
		OriginalPurchaseDate: now.Add(-48 * time.Hour),
		ExpirationDate:       &expiration,
		PurchasedQuantity:    1,
	}
}

func Test_TransactionValidate_AcceptsWellFormedTransaction(t *testing.T) {
	assert.NoError(t, validTransaction().Validate())
}

func Test_TransactionValidate_RevocationFieldsMoveTogether(t *testing.T) {
	now := time.Now()
	reason := RevocationReasonDeveloperIssue

	tx := validTransaction()
	tx.RevocationDate = &now
	assert.Error(t, tx.Validate(), "date without reason")

	tx = validTransaction()
	tx.RevocationReason = &reason
	assert.Error(t, tx.Validate(), "reason without date")

	tx = validTransaction()
	tx.RevocationDate = &now
	tx.RevocationReason = &reason
	assert.NoError(t, tx.Validate())
	assert.True(t, tx.Revoked())
}

func Test_TransactionValidate_QuantityRules(t *testing.T) {
	tx := validTransaction()
	tx.PurchasedQuantity = 2
	assert.Error(t, tx.Validate(), "auto-renewable quantity must be 1")

	tx = validTransaction()
	tx.ProductKind = ProductKindConsumable
	tx.PurchasedQuantity = 3
	assert.NoError(t, tx.Validate(), "consumables may carry quantity")

	tx.PurchasedQuantity = 0
	assert.Error(t, tx.Validate())
}

func Test_TransactionValidate_OrderedPurchaseDates(t *testing.T) {
	tx := validTransaction()
	tx.OriginalPurchaseDate = tx.PurchaseDate.Add(time.Hour)
	assert.Error(t, tx.Validate())
}

func Test_VerificationWrappers(t *testing.T) {
	tx := validTransaction()

	verified := Verify(tx)
	assert.True(t, verified.Verified)
	assert.NoError(t, verified.VerificationError)
	assert.Equal(t, tx, verified.Transaction)

	cause := errors.New("signature mismatch")
	unverified := Unverified(tx, cause)
	assert.False(t, unverified.Verified)
	assert.ErrorIs(t, unverified.VerificationError, cause)
}
