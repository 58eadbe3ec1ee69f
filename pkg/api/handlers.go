package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nearbyprices/price-service/pkg/prices"
)

func (s *server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if s.deps.Ready != nil {
		if err := s.deps.Ready(r); err != nil {
			writeError(w, http.StatusServiceUnavailable, "not ready")
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleItemPrices serves GET /api/items/{id}/prices.
func (s *server) handleItemPrices(w http.ResponseWriter, r *http.Request) {
	itemID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	entries, err := s.deps.Manager.ItemPrices(r.Context(), itemID)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, entries)
	case errors.Is(err, prices.ErrItemNotFound):
		writeError(w, http.StatusNotFound, "item not found")
	default:
		s.logger.Error().Err(err).Int64("item_id", itemID).Msg("fetching item prices failed")
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// updatePriceRequest decodes the PUT body. Price is a pointer so a missing
// field is distinguishable from a legitimate price of zero.
type updatePriceRequest struct {
	Price *float64 `json:"price"`
}

// handleUpdatePrice serves PUT /api/items/{itemId}/prices/{storeId}.
func (s *server) handleUpdatePrice(w http.ResponseWriter, r *http.Request) {
	itemID, err := strconv.ParseInt(chi.URLParam(r, "itemId"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid item id")
		return
	}
	storeID, err := strconv.ParseInt(chi.URLParam(r, "storeId"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid store id")
		return
	}

	var req updatePriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "missing required fields")
		return
	}
	if req.Price == nil {
		writeError(w, http.StatusBadRequest, "missing required fields")
		return
	}

	err = s.deps.Manager.UpdatePrice(r.Context(), itemID, storeID, *req.Price)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]string{"message": "price updated successfully"})
	case errors.Is(err, prices.ErrInvalidPrice):
		writeError(w, http.StatusBadRequest, "invalid price")
	case errors.Is(err, prices.ErrItemNotFound):
		writeError(w, http.StatusNotFound, "item not found")
	case errors.Is(err, prices.ErrStoreNotFound):
		writeError(w, http.StatusNotFound, "store not found for the item")
	default:
		s.logger.Error().Err(err).
			Int64("item_id", itemID).
			Int64("store_id", storeID).
			Msg("price update failed")
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// handleHistory serves GET /api/items/history.
func (s *server) handleHistory(w http.ResponseWriter, r *http.Request) {
	history, err := s.deps.Recorder.FullHistory(r.Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("fetching price history failed")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, history)
}
