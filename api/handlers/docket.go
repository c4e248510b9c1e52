package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/kokualaw/expunge-api/config"
	"github.com/kokualaw/expunge-api/docket"
	"github.com/kokualaw/expunge-api/models"
)

// Docket exported for testing purposes
type Docket struct{}

// WarrantStatusRequest is the payload for analyzing a docket's warrant
// lifecycle
type WarrantStatusRequest struct {
	DocketEntries []models.DocketEntry `json:"docketEntries"`
}

// WarrantStatusHandler classifies the submitted docket entries and
// returns the computed warrant status
func (d Docket) WarrantStatusHandler(w http.ResponseWriter, r *http.Request) {
	var req WarrantStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode docket entries", http.StatusBadRequest, w, err)
		return
	}

	status := docket.AnalyzeWarrantStatus(req.DocketEntries)

	b, err := json.Marshal(status)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
