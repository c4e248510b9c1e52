// Package processors evaluates parsed case records end to end: one
// processor per court case type, each running the shared
// charge-evaluation pipeline plus whatever docket factor scans apply
// to that case type.
package processors

import (
	"strings"
	"time"

	"github.com/kokualaw/expunge-api/docket"
	"github.com/kokualaw/expunge-api/evaluator"
	"github.com/kokualaw/expunge-api/models"
)

// Processor evaluates one case type.
type Processor interface {
	CaseType() string
	Process(record models.CaseRecord, now time.Time) (models.CaseDetails, error)
}

// factorsFunc produces the case-type-specific additional factors and
// the warrant status for a record's docket entries.
type factorsFunc func(entries []models.DocketEntry) (models.AdditionalFactors, *models.WarrantStatus)

type caseProcessor struct {
	caseType string
	factors  factorsFunc
}

func (p *caseProcessor) CaseType() string { return p.caseType }

// standardFactors runs the docket scans shared by most criminal case
// types: warrant status, nolle prosequi with prejudice, and deferred
// acceptance.
func standardFactors(entries []models.DocketEntry) (models.AdditionalFactors, *models.WarrantStatus) {
	warrantStatus := docket.AnalyzeWarrantStatus(entries)
	dismissal := docket.CheckDismissalWithPrejudice(entries)
	deferral := docket.CheckDeferredAcceptance(entries)

	factors := models.AdditionalFactors{
		WithPrejudice:         dismissal.WithPrejudice,
		DeferredAcceptance:    deferral.DeferredAcceptance,
		HasOutstandingWarrant: warrantStatus.HasOutstandingWarrant,
	}
	return factors, &warrantStatus
}

// noFactors is for administrative case types whose dockets carry no
// criminal factor entries.
func noFactors([]models.DocketEntry) (models.AdditionalFactors, *models.WarrantStatus) {
	return models.AdditionalFactors{}, nil
}

// Process runs the full pipeline: normalize severities, compute the
// statute-of-limitations block, evaluate every charge, and roll the
// verdicts up into the overall case status.
func (p *caseProcessor) Process(record models.CaseRecord, now time.Time) (models.CaseDetails, error) {
	details, err := p.collectCaseDetails(record, now)
	if err != nil {
		return models.CaseDetails{}, err
	}
	details.OverallExpungeability = evaluator.DetermineOverallExpungeability(details.Charges)
	return details, nil
}

func (p *caseProcessor) collectCaseDetails(record models.CaseRecord, now time.Time) (models.CaseDetails, error) {
	charges := make([]models.Charge, len(record.Charges))
	copy(charges, record.Charges)

	for i := range charges {
		limitations := evaluator.HasStatuteOfLimitationsExpired(charges[i], record.FilingDate, p.caseType, now)
		charges[i].Severity = evaluator.NormalizeSeverity(charges[i], p.caseType)
		charges[i].StatuteOfLimitationsPeriod = limitations.PeriodLabel()
		charges[i].StatuteOfLimitationsExpiryDate = limitations.ExpiryDate
		charges[i].StatuteOfLimitationsCertainty = limitations.Certainty
		charges[i].StatuteOfLimitationsStatus = limitations.Status
	}

	factors, warrantStatus := p.factors(record.DocketEntries)

	for i := range charges {
		verdict, err := evaluator.IsChargeExpungeable(charges[i], p.caseType, record.FilingDate, factors, now)
		if err != nil {
			return models.CaseDetails{}, err
		}
		charges[i].IsExpungeable = &verdict

		// When the charges table carries no dispositions but the
		// docket shows the state's oral motion to dismiss was
		// granted, surface that as the disposition of record.
		if allDispositionsEmpty(charges[i].Dispositions) && factors.DismissedOnOralMotion {
			for j := range charges[i].Dispositions {
				charges[i].Dispositions[j] = "Dismissed on State's oral motion"
			}
			if factors.DismissalDate != "" {
				for j := range charges[i].DispositionDates {
					charges[i].DispositionDates[j] = factors.DismissalDate
				}
			}
		}

		charges[i].DeferralPeriodExpiryDate = verdict.DeferralPeriodExpiryDate
	}

	// The limitations clock is moot once judgment is final, a
	// deferral is pending, or the charge moved to another court.
	for i := range charges {
		if len(charges[i].Dispositions) == 0 {
			continue
		}
		last := charges[i].Dispositions[len(charges[i].Dispositions)-1]
		if charges[i].IsExpungeable.FinalJudgment ||
			strings.Contains(last, "Defer") ||
			strings.Contains(last, "Commit") ||
			strings.Contains(last, "Remand") {
			charges[i].StatuteOfLimitationsStatus = "N/A"
		}
	}

	return models.CaseDetails{
		CaseID:            record.CaseID,
		CaseName:          record.CaseName,
		CaseType:          p.caseType,
		CourtLocation:     record.CourtLocation,
		CourtCircuit:      record.CourtCircuit,
		FilingDate:        record.FilingDate,
		DefendantName:     record.DefendantName,
		Charges:           charges,
		Parties:           record.Parties,
		AdditionalFactors: factors,
		WarrantStatus:     warrantStatus,
	}, nil
}

func allDispositionsEmpty(dispositions []string) bool {
	for _, d := range dispositions {
		if d != "" {
			return false
		}
	}
	return true
}
