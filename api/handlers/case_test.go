package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/kokualaw/expunge-api/api/handlers"
	"github.com/kokualaw/expunge-api/models"
)

func newCaseHandler(t *testing.T) handlers.Case {
	t.Helper()
	cache, err := handlers.NewCaseCache(8)
	if err != nil {
		t.Fatal(err)
	}
	return handlers.Case{Cache: cache}
}

func recordBody(t *testing.T, record models.CaseRecord) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(record)
	if err != nil {
		t.Fatal(err)
	}
	return bytes.NewReader(b)
}

func TestCase_EvaluateCaseHandlerInvalidJSON(t *testing.T) {
	u := newCaseHandler(t)

	req, _ := http.NewRequest("POST", "/api/v1/case/evaluate", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()
	http.HandlerFunc(u.EvaluateCaseHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var body models.ErrorMessageResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "failed to decode case record", body.Response.Message)
}

func TestCase_EvaluateCaseHandlerMissingCaseID(t *testing.T) {
	u := newCaseHandler(t)

	req, _ := http.NewRequest("POST", "/api/v1/case/evaluate", recordBody(t, models.CaseRecord{CaseType: "CPC"}))
	rr := httptest.NewRecorder()
	http.HandlerFunc(u.EvaluateCaseHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "caseId is required")
}

func TestCase_EvaluateCaseHandlerUnsupportedCaseType(t *testing.T) {
	u := newCaseHandler(t)

	req, _ := http.NewRequest("POST", "/api/v1/case/evaluate", recordBody(t, models.CaseRecord{
		CaseID:   "1XX-23-0000001",
		CaseType: "XX",
	}))
	rr := httptest.NewRecorder()
	http.HandlerFunc(u.EvaluateCaseHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "unsupported case type")
}

func TestCase_EvaluateCaseHandlerContractViolation(t *testing.T) {
	u := newCaseHandler(t)

	req, _ := http.NewRequest("POST", "/api/v1/case/evaluate", recordBody(t, models.CaseRecord{
		CaseID:     "1CPC-23-0000004",
		CaseType:   "CPC",
		FilingDate: "2/1/2023",
		Charges: []models.Charge{
			{Count: "1", Dispositions: []string{"Guilty"}, DispositionDates: []string{}},
		},
	}))
	rr := httptest.NewRecorder()
	http.HandlerFunc(u.EvaluateCaseHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Contains(t, rr.Body.String(), "failed to evaluate case")
}

func TestCase_EvaluateCaseHandlerThenFetchByID(t *testing.T) {
	u := newCaseHandler(t)

	record := models.CaseRecord{
		CaseID:     "1CPC-23-0000123",
		CaseType:   "CPC",
		FilingDate: "2/1/2021",
		Charges: []models.Charge{
			{
				Count:            "1",
				Severity:         "Misdemeanor",
				OffenseDate:      "1/1/2021",
				Dispositions:     []string{"Judgment of Not Guilty"},
				DispositionDates: []string{"3/15/2021"},
			},
		},
	}

	req, _ := http.NewRequest("POST", "/api/v1/case/evaluate", recordBody(t, record))
	rr := httptest.NewRecorder()
	http.HandlerFunc(u.EvaluateCaseHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var details models.CaseDetails
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &details))
	assert.Equal(t, "All Expungeable", details.OverallExpungeability.Status)

	req, _ = http.NewRequest("GET", "/api/v1/case/1CPC-23-0000123", nil)
	req = mux.SetURLVars(req, map[string]string{"case_id": "1CPC-23-0000123"})
	rr = httptest.NewRecorder()
	http.HandlerFunc(u.CaseByIDHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var cached models.CaseDetails
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &cached))
	assert.Equal(t, details.CaseID, cached.CaseID)
	assert.Equal(t, details.OverallExpungeability, cached.OverallExpungeability)
}

func TestCase_CaseByIDHandlerNotFound(t *testing.T) {
	u := newCaseHandler(t)

	req, _ := http.NewRequest("GET", "/api/v1/case/1CPC-99-9999999", nil)
	req = mux.SetURLVars(req, map[string]string{"case_id": "1CPC-99-9999999"})
	rr := httptest.NewRecorder()
	http.HandlerFunc(u.CaseByIDHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "case not found")
}