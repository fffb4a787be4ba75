package router

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"

	bootstrap "github.com/previewlabs/storekit-preview/api/bootstrap"
	storeapp "github.com/previewlabs/storekit-preview/api/store/app"
	"github.com/previewlabs/storekit-preview/api/storekit"
)

// NewRouter returns the central HTTP router for the store surfaces. The
// module carries no generated stubs, so the grpc-gateway mux is populated by
// hand with HandlePath.
func NewRouter() http.Handler {
	// Initialize app dependencies (non-fatal if it fails here; handlers re-check).
	if err := bootstrap.Ensure(); err != nil {
		slog.Error("bootstrap ensure failed", "err", err)
	}

	mux := runtime.NewServeMux()
	h := handlers{svc: bootstrap.GetStoreService}
	register := func(meth, path string, fn runtime.HandlerFunc) {
		if err := mux.HandlePath(meth, path, fn); err != nil {
			slog.Error("failed to register route", "method", meth, "path", path, "err", err)
		}
	}
	register(http.MethodGet, "/v1/products", h.products)
	register(http.MethodPost, "/v1/purchase", h.purchase)
	register(http.MethodGet, "/v1/updates", h.updates)
	register(http.MethodGet, "/v1/entitlements", h.entitlements)
	return mux
}

// handlers resolves the service lazily so tests can swap implementations via
// bootstrap.SetStoreService after the router is built.
type handlers struct {
	svc func() storeapp.Service
}

func (h handlers) service(w http.ResponseWriter) (storeapp.Service, bool) {
	if err := bootstrap.Ensure(); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return nil, false
	}
	s := h.svc()
	if s == nil {
		writeError(w, http.StatusInternalServerError, errors.New("store service not initialized"))
		return nil, false
	}
	return s, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, storeapp.ErrBadPurchaseOptions):
		return http.StatusBadRequest
	case errors.Is(err, storeapp.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, storeapp.ErrGateway):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// products handles GET /v1/products?ids=a,b (comma-separated or repeated).
func (h handlers) products(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	svc, ok := h.service(w)
	if !ok {
		return
	}
	var ids []string
	for _, raw := range r.URL.Query()["ids"] {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}
	products, err := svc.Products(r.Context(), ids)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"products": products})
}

type purchaseRequest struct {
	ProductID string                   `json:"productId"`
	Options   storekit.PurchaseOptions `json:"options"`
}

// purchase handles POST /v1/purchase.
func (h handlers) purchase(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	svc, ok := h.service(w)
	if !ok {
		return
	}
	var req purchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	res, err := svc.Purchase(r.Context(), req.ProductID, req.Options)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// updates handles GET /v1/updates: newline-delimited JSON, one
// verification-wrapped transaction per line, flushed as produced. The stream
// stays open until the client disconnects.
func (h handlers) updates(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	svc, ok := h.service(w)
	if !ok {
		return
	}
	streamResults(w, svc.Updates(r.Context()))
}

// entitlements handles GET /v1/entitlements with the same NDJSON framing;
// the feed completes once the current entitlement set has been sent.
func (h handlers) entitlements(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	svc, ok := h.service(w)
	if !ok {
		return
	}
	streamResults(w, svc.CurrentEntitlements(r.Context()))
}

func streamResults(w http.ResponseWriter, results <-chan storekit.VerificationResult) {
	w.Header().Set("Content-Type", "application/x-ndjson")
	w.WriteHeader(http.StatusOK)
	flusher, _ := w.(http.Flusher)
	enc := json.NewEncoder(w)
	for res := range results {
		if err := enc.Encode(res); err != nil {
			slog.Error("failed to encode stream element", "err", err)
			return
		}
		if flusher != nil {
			flusher.Flush()
		}
	}
}
