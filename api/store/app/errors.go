package app

import "errors"

// Typed errors for the store app layer. These enable HTTP mapping without
// leaking gateway- or SDK-specific error types into the transport layer.
var (

	// ErrBadPurchaseOptions indicates the purchase options are malformed.
	ErrBadPurchaseOptions = errors.New("bad purchase options")
	// ErrProductNotFound indicates the requested product is not in the catalog.
	ErrProductNotFound = errors.New("product not found")
	// ErrGateway indicates a failure from the store gateway / backend calls.
	ErrGateway = errors.New("gateway error")
	// ErrDatabase indicates a transaction-ledger failure.
	ErrDatabase = errors.New("database error")
)
