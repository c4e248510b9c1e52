package evaluator

import (
	"fmt"
	"strings"
	"time"

	"github.com/kokualaw/expunge-api/dates"
	"github.com/kokualaw/expunge-api/models"
)

type latestExpiry struct {
	date      time.Time
	formatted string
	// expiryType is "Deferral" or "Statute"; certainty carries the
	// limitations certainty tag for statute expiries.
	expiryType string
	certainty  string
}

// DetermineOverallExpungeability rolls the per-charge verdicts up into
// one case-level verdict. Charges must already carry their
// IsExpungeable verdicts. The decision table runs in priority order:
// the all-waiting-period case first, then the homogeneous buckets,
// then the mixed-bag fallbacks. ChargeDetails always carries exactly
// one audit line per charge.
func DetermineOverallExpungeability(charges []models.Charge) models.CaseVerdict {
	var (
		expungeableCount         int
		possiblyExpungeableCount int
		notExpungeableCount      int
		deferredCount            int
		noDispositionCount       int
		limitationsCount         int
		expungeableAt21Count     int
		latest                   *latestExpiry
	)
	details := make([]string, 0, len(charges))

	updateLatest := func(formatted, expiryType, certainty string) {
		parsed, ok := dates.Parse(formatted)
		if !ok {
			return
		}
		if latest == nil || parsed.After(latest.date) {
			latest = &latestExpiry{date: parsed, formatted: formatted, expiryType: expiryType, certainty: certainty}
		}
	}

	for _, charge := range charges {
		status := models.StatusUnknown
		explanation := ""
		if charge.IsExpungeable != nil {
			status = charge.IsExpungeable.Status
			explanation = charge.IsExpungeable.Explanation
		}

		switch status {
		case models.StatusExpungeable:
			expungeableCount++
		case models.StatusFirstExpungeable, models.StatusFirstOrSecond, models.StatusPossiblyExpungeable:
			possiblyExpungeableCount++
		case models.StatusExpungeableAt21:
			expungeableAt21Count++
		case models.StatusNotExpungeable:
			notExpungeableCount++
		case models.StatusPending, "No Disposition Found":
			noDispositionCount++
		default:
			lower := strings.ToLower(status)
			if strings.Contains(lower, "deferred") || strings.Contains(lower, "expungeable after") {
				deferredCount++
				if charge.DeferralPeriodExpiryDate != "" {
					updateLatest(charge.DeferralPeriodExpiryDate, "Deferral", CertaintyCertain)
				}
			} else if strings.Contains(lower, "statute") {
				limitationsCount++
				if charge.StatuteOfLimitationsExpiryDate != "" {
					updateLatest(charge.StatuteOfLimitationsExpiryDate, "Statute", charge.StatuteOfLimitationsCertainty)
				}
			}
		}

		details = append(details, fmt.Sprintf("Charge %s: %s - %s", charge.Count, status, explanation))
	}

	var status, explanation string
	switch {
	case deferredCount+limitationsCount == len(charges):
		if latest != nil {
			expiryPhrase := "one-year period after dismissal and discharge ends"
			if latest.expiryType == "Statute" {
				if latest.certainty == CertaintyCertain {
					expiryPhrase = "statute of limitations expires"
				} else {
					expiryPhrase = "statute of limitations may expire"
				}
			}
			if latest.certainty == CertaintyUncertain {
				status = fmt.Sprintf("Possibly Expungeable After %s", latest.formatted)
				explanation = fmt.Sprintf("All charges may be expungeable when the %s", expiryPhrase)
			} else {
				status = fmt.Sprintf("Expungeable After %s", latest.formatted)
				explanation = fmt.Sprintf("All charges expungeable when the %s", expiryPhrase)
			}
		} else {
			status = "Expungeable After Unknown Period"
			explanation = "All charges may be expungeable after the applicable waiting period (see case for details)."
		}
	case expungeableCount == len(charges):
		status = "All Expungeable"
		explanation = "All charges in this case are expungeable."
	case notExpungeableCount == len(charges):
		status = "None Expungeable"
		explanation = "None of the charges in this case are expungeable."
	case noDispositionCount == len(charges):
		status = "Pending"
		explanation = "Cannot locate disposition(s). Case may still be pending."
	case expungeableAt21Count == len(charges):
		status = "Expungeable at 21"
		explanation = "All first-offense charges may be expungeable when the defendant turns 21 if subsequently well-behaved."
	case possiblyExpungeableCount+expungeableAt21Count == len(charges):
		status = "All Possibly Expungeable"
		explanation = "All charges in this case are possibly expungeable."
	case expungeableCount > 0:
		status = "Some Expungeable"
		explanation = "This case has a mix of expungeable, possibly expungeable, and/or non-expungeable charges."
	default:
		status = "Some Possibly Expungeable"
		explanation = "Some charge in this case may be expungeable."
	}

	return models.CaseVerdict{
		Status:        status,
		Explanation:   explanation,
		ChargeDetails: strings.Join(details, "\n"),
	}
}
