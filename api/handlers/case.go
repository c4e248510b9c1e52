package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/kokualaw/expunge-api/config"
	"github.com/kokualaw/expunge-api/models"
	"github.com/kokualaw/expunge-api/processors"
)

// Case exported for testing purposes
type Case struct {
	Cache *CaseCache
}

// EvaluateCaseHandler evaluates a submitted case record and returns
// the fully evaluated case details
func (c Case) EvaluateCaseHandler(w http.ResponseWriter, r *http.Request) {
	var record models.CaseRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		config.ErrorStatus("failed to decode case record", http.StatusBadRequest, w, err)
		return
	}
	if record.CaseID == "" {
		config.ErrorStatus("caseId is required", http.StatusBadRequest, w, nil)
		return
	}

	processor, err := processors.ForCaseType(record.CaseType)
	if err != nil {
		config.ErrorStatus("unsupported case type", http.StatusBadRequest, w, err)
		return
	}

	details, err := processor.Process(record, time.Now())
	if err != nil {
		config.ErrorStatus("failed to evaluate case", http.StatusUnprocessableEntity, w, err)
		return
	}

	if c.Cache != nil {
		c.Cache.Add(details.CaseID, details)
	}

	zap.S().Debugw("case evaluated",
		"caseId", details.CaseID,
		"status", details.OverallExpungeability.Status,
	)

	b, err := json.Marshal(details)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CaseByIDHandler returns a previously evaluated case by ID
func (c Case) CaseByIDHandler(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["case_id"]

	zap.S().Debugf("case_id: %v", caseID)

	if c.Cache == nil {
		config.ErrorStatus("case cache not configured", http.StatusInternalServerError, w, nil)
		return
	}
	details, ok := c.Cache.Get(caseID)
	if !ok {
		config.ErrorStatus("case not found", http.StatusNotFound, w, nil)
		return
	}

	b, err := json.Marshal(details)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

func caseTypesHandler(w http.ResponseWriter, r *http.Request) {
	b, err := json.Marshal(map[string][]string{"caseTypes": processors.SupportedCaseTypes()})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
