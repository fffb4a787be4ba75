// Package db is the transaction ledger for the live store path. It records
// every transaction observed on the entitlement feed so the update feed can
// tell which ones the app has already processed.
//
// Schema:
//
//	CREATE TABLE store_transaction (
//	    customer_id            TEXT NOT NULL,
//	    product_id             TEXT NOT NULL,
//	    product_kind           TEXT NOT NULL,
//	    purchase_date          TIMESTAMPTZ NOT NULL,
//	    original_purchase_date TIMESTAMPTZ NOT NULL,
//	    expiration_date        TIMESTAMPTZ,
//	    purchased_quantity     INT NOT NULL DEFAULT 1,
//	    PRIMARY KEY (customer_id, product_id, original_purchase_date)
//	);
package db

import (
	"database/sql"
	"fmt"
	"time"

	database "github.com/previewlabs/storekit-preview/api/database"
	"github.com/previewlabs/storekit-preview/api/storekit"
)

// RecordTransaction upserts an observed transaction for a customer. Replays
// of the same purchase lineage overwrite the row, so renewals refresh the
// purchase and expiration dates in place.
func RecordTransaction(customerID string, tx storekit.Transaction) error {
	_, err := database.GetDB().Exec(`
		INSERT INTO store_transaction
			(customer_id, product_id, product_kind, purchase_date, original_purchase_date, expiration_date, purchased_quantity)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (customer_id, product_id, original_purchase_date)
		DO UPDATE SET purchase_date = EXCLUDED.purchase_date, expiration_date = EXCLUDED.expiration_date`,
		customerID, tx.ProductID, string(tx.ProductKind), tx.PurchaseDate, tx.OriginalPurchaseDate, tx.ExpirationDate, tx.PurchasedQuantity)
	if err != nil {
		return fmt.Errorf("error recording transaction for %s: %w", tx.ProductID, err)
	}
	return nil
}

// WasRecorded reports whether a transaction with the same lineage has been
// recorded for the customer at or after the given purchase date.
func WasRecorded(customerID string, tx storekit.Transaction) (bool, error) {
	var count int
	err := database.GetDB().QueryRow(`
		SELECT COUNT(1) FROM store_transaction
		WHERE customer_id = $1 AND product_id = $2 AND original_purchase_date = $3 AND purchase_date >= $4`,
		customerID, tx.ProductID, tx.OriginalPurchaseDate, tx.PurchaseDate).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("error checking transaction for %s: %w", tx.ProductID, err)
	}
	return count > 0, nil
}

// ListRecorded returns the customer's recorded transactions, newest purchase
// first. Expired rows are included; entitlement filtering is the caller's
// concern.
func ListRecorded(customerID string) ([]storekit.Transaction, error) {
	rows, err := database.GetDB().Query(`
		SELECT product_id, product_kind, purchase_date, original_purchase_date, expiration_date, purchased_quantity
		FROM store_transaction WHERE customer_id = $1
		ORDER BY purchase_date DESC`, customerID)
	if err != nil {
		return nil, fmt.Errorf("error listing transactions: %w", err)
	}
	defer rows.Close()

	var out []storekit.Transaction
	for rows.Next() {
		var tx storekit.Transaction
		var kind string
		var expiration sql.NullTime
		if err := rows.Scan(&tx.ProductID, &kind, &tx.PurchaseDate, &tx.OriginalPurchaseDate, &expiration, &tx.PurchasedQuantity); err != nil {
			return nil, fmt.Errorf("error scanning transaction: %w", err)
		}
		tx.ProductKind = storekit.ProductKind(kind)
		if expiration.Valid {
			t := expiration.Time
			tx.ExpirationDate = &t
		}
		out = append(out, tx)
	}
	return out, rows.Err()
}

// DeleteForCustomer removes every recorded transaction for a customer. Used
// by tests to reset state between runs.
func DeleteForCustomer(customerID string) error {
	_, err := database.GetDB().Exec("DELETE FROM store_transaction WHERE customer_id = $1", customerID)
	return err
}

// activeAt reports whether tx still entitles the customer at the given time.
func activeAt(tx storekit.Transaction, at time.Time) bool {
	if tx.Revoked() {
		return false
	}
	return tx.ExpirationDate == nil || tx.ExpirationDate.After(at)
}

// ListEntitlements returns the customer's recorded transactions that are
// still active: non-revoked and not past expiration.
func ListEntitlements(customerID string) ([]storekit.Transaction, error) {
	recorded, err := ListRecorded(customerID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	active := recorded[:0]
	for _, tx := range recorded {
		if activeAt(tx, now) {
			active = append(active, tx)
		}
	}
	return active, nil
}
