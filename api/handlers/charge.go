package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/kokualaw/expunge-api/config"
	"github.com/kokualaw/expunge-api/evaluator"
	"github.com/kokualaw/expunge-api/models"
)

// Charge exported for testing purposes
type Charge struct{}

// ChargeEvaluationRequest is the payload for evaluating one charge
// outside a full case record
type ChargeEvaluationRequest struct {
	Charge            models.Charge            `json:"charge"`
	CaseType          string                   `json:"caseType"`
	FilingDate        string                   `json:"filingDate"`
	AdditionalFactors models.AdditionalFactors `json:"additionalFactors"`
}

// EvaluateChargeHandler evaluates a single charge and returns it with
// the computed severity, limitations block and verdict attached
func (c Charge) EvaluateChargeHandler(w http.ResponseWriter, r *http.Request) {
	var req ChargeEvaluationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode charge", http.StatusBadRequest, w, err)
		return
	}

	now := time.Now()
	charge := req.Charge

	limitations := evaluator.HasStatuteOfLimitationsExpired(charge, req.FilingDate, req.CaseType, now)
	charge.Severity = evaluator.NormalizeSeverity(charge, req.CaseType)
	charge.StatuteOfLimitationsPeriod = limitations.PeriodLabel()
	charge.StatuteOfLimitationsExpiryDate = limitations.ExpiryDate
	charge.StatuteOfLimitationsCertainty = limitations.Certainty
	charge.StatuteOfLimitationsStatus = limitations.Status

	verdict, err := evaluator.IsChargeExpungeable(charge, req.CaseType, req.FilingDate, req.AdditionalFactors, now)
	if err != nil {
		config.ErrorStatus("failed to evaluate charge", http.StatusUnprocessableEntity, w, err)
		return
	}
	charge.IsExpungeable = &verdict
	charge.DeferralPeriodExpiryDate = verdict.DeferralPeriodExpiryDate

	b, err := json.Marshal(charge)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
