// Package evaluator implements the expungeability rules engine: the
// disposition rule table, the post-conviction statutory exceptions,
// the deferral and statute-of-limitations calculators, and the
// case-level aggregation. Everything here is a pure function of its
// arguments plus an injected now; nothing reads the system clock or
// logs, so charge evaluations are deterministic and safe to run in
// parallel.
package evaluator

import (
	"fmt"
	"strings"
	"time"

	"github.com/kokualaw/expunge-api/dates"
	"github.com/kokualaw/expunge-api/models"
)

// IsChargeExpungeable walks a charge's dispositions in chronological
// order and produces its expungeability verdict. Definitive outcomes
// (acquittals, convictions, transfers to another court) end the walk
// immediately; a deferred acceptance is held open until a subsequent
// dismissal resolves it. When the walk ends without a definitive
// answer the statute-of-limitations gate decides whether the
// limitations calculator should settle the charge.
//
// A mismatch between the dispositions and dispositionDates arrays is
// a contract violation by the extraction layer and returns an error;
// every legal-data irregularity short of that degrades to a verdict
// status instead.
func IsChargeExpungeable(charge models.Charge, caseType, filingDate string, factors models.AdditionalFactors, now time.Time) (models.ExpungeabilityVerdict, error) {
	if len(charge.Dispositions) != len(charge.DispositionDates) {
		return models.ExpungeabilityVerdict{}, fmt.Errorf(
			"charge %s: dispositions (%d) and dispositionDates (%d) must be parallel",
			charge.Count, len(charge.Dispositions), len(charge.DispositionDates),
		)
	}

	if allEmpty(charge.Dispositions) {
		if factors.DismissedOnOralMotion {
			// Dismissed on oral motion: HRS 831-3.2(3).
			return models.ExpungeabilityVerdict{
				Status:      models.StatusExpungeable,
				Explanation: "Dismissed on State's oral motion but could not find explicit presence/absence of prejudice in data. Charge is probably expungeable.",
			}, nil
		}
		return models.ExpungeabilityVerdict{
			Status:      models.StatusPending,
			Explanation: "Unable to find disposition. Case may still be pending.",
		}, nil
	}

	// Violations are civil infractions, not crimes, and fall outside
	// the expungement statute entirely.
	if charge.Severity == SeverityViolation {
		return models.ExpungeabilityVerdict{
			Status:      models.StatusNotExpungeable,
			Explanation: "Civil infractions are not expungeable.",
		}, nil
	}

	current := models.ExpungeabilityVerdict{
		Status:      models.StatusUnknown,
		Explanation: "Unrecognized disposition.",
	}
	hasDeferred := false

	for i, raw := range charge.Dispositions {
		disposition := strings.TrimSpace(raw)
		rule, matched := matchDispositionRule(disposition)
		if !matched {
			continue
		}

		verdict := rule.build(charge, factors)
		verdict.Disposition = disposition
		verdict.DispositionDate = charge.DispositionDates[i]

		// A dismissal following a deferred acceptance resolves the
		// deferral rather than short-circuiting as its own verdict.
		if hasDeferred && dismissalAfterDeferralKeys[rule.key] {
			dismissalDate, dateValid := dates.Parse(charge.DispositionDates[i])
			current = expungeAfterDeferral(verdict, true, dismissalDate, dateValid, now)
			continue
		}

		switch {
		case expungeableDispositions[rule.key]:
			return verdict, nil
		case adverseFinalDispositions[rule.key]:
			return verdict, nil
		case notDeterminableDispositions[rule.key]:
			return verdict, nil
		}

		if verdict.Status == models.StatusDeferred || factors.DeferredAcceptance {
			hasDeferred = true
			current = verdict
		}
	}

	if hasDeferred && current.Status == models.StatusDeferred {
		// Deferral never resolved by a dismissal.
		current = expungeAfterDeferral(current, false, time.Time{}, false, now)
	}

	if expungeabilityDependsOnSoL(current.Status, current.Explanation) {
		limitations := ExpungeAfterLimitations(charge, caseType, filingDate, now)
		limitations.Disposition = current.Disposition
		limitations.DispositionDate = current.DispositionDate
		return limitations, nil
	}
	return current, nil
}

// expungeabilityDependsOnSoL decides whether an unresolved verdict
// should be settled by the limitations calculator. It deliberately
// matches substrings of the explanation text rather than switching on
// the status: the rule table's explanations are not 1:1 with statuses,
// and the phrases checked here are load-bearing.
func expungeabilityDependsOnSoL(status, explanation string) bool {
	for key := range adverseFinalDispositions {
		if containsFold(explanation, key) {
			return false
		}
	}
	if containsFold(explanation, "Deferred disposition") {
		return false
	}
	for key := range expungeableDispositions {
		if containsFold(explanation, key) {
			return false
		}
	}
	if containsFold(explanation, "See Circuit Court case") || containsFold(explanation, "See District Court case") {
		return false
	}
	return true
}

func allEmpty(dispositions []string) bool {
	for _, d := range dispositions {
		if strings.TrimSpace(d) != "" {
			return false
		}
	}
	return true
}
