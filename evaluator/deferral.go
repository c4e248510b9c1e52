package evaluator

import (
	"fmt"
	"time"

	"github.com/kokualaw/expunge-api/dates"
	"github.com/kokualaw/expunge-api/models"
)

// deferralPeriod is the one-year wait after discharge and dismissal of
// a deferred acceptance disposition: HRS 831-3.2(5).
const deferralPeriod = dates.Year

// deferralPeriodResult reports where a dismissal stands against the
// one-year deferral window.
type deferralPeriodResult struct {
	Status        string // "Expired", "Running" or "Unknown"
	Explanation   string
	ExpiryDate    string
	DaysRemaining int
}

// hasDeferralPeriodExpired measures the injected now against the
// one-year window following the dismissal date.
func hasDeferralPeriodExpired(dismissalDate time.Time, dateValid bool, now time.Time) deferralPeriodResult {
	if !dateValid {
		return deferralPeriodResult{
			Status:      "Unknown",
			Explanation: "Unable to determine deferral period due to invalid dismissal date.",
		}
	}

	expiry := dismissalDate.Add(deferralPeriod)
	result := deferralPeriodResult{
		ExpiryDate:    dates.Format(expiry),
		DaysRemaining: dates.CeilDays(expiry.Sub(now)),
	}
	if now.After(expiry) {
		result.Status = "Expired"
		result.Explanation = fmt.Sprintf("One-year period after discharge & dismissal of deferred acceptance disposition expired on %s.", result.ExpiryDate)
	} else {
		result.Status = "Running"
		result.Explanation = fmt.Sprintf("One-year period after discharge & dismissal of deferred acceptance disposition will expire on %s.", result.ExpiryDate)
	}
	return result
}

// expungeAfterDeferral resolves a deferred acceptance disposition. A
// deferral only becomes expungeable through a subsequent dismissal
// followed by the one-year waiting period; without the dismissal the
// charge stays possibly expungeable.
func expungeAfterDeferral(current models.ExpungeabilityVerdict, dismissedAfterDeferral bool, dismissalDate time.Time, dismissalDateValid bool, now time.Time) models.ExpungeabilityVerdict {
	if !dismissedAfterDeferral {
		return models.ExpungeabilityVerdict{
			Status:          models.StatusPossiblyExpungeable,
			Explanation:     "Deferred disposition found, but no subsequent dismissal as required by HRS 831-3.2(5) for expungement eligibility.",
			Disposition:     current.Disposition,
			DispositionDate: current.DispositionDate,
		}
	}

	periodResult := hasDeferralPeriodExpired(dismissalDate, dismissalDateValid, now)
	result := models.ExpungeabilityVerdict{
		Explanation:              fmt.Sprintf("Deferred disposition followed by dismissal. %s", periodResult.Explanation),
		Disposition:              current.Disposition,
		DispositionDate:          current.DispositionDate,
		DeferralPeriodExpiryDate: periodResult.ExpiryDate,
	}
	switch periodResult.Status {
	case "Expired":
		result.Status = models.StatusExpungeable
	case "Unknown":
		result.Status = models.StatusUnknown
	default:
		result.Status = fmt.Sprintf("Expungeable After %s", periodResult.ExpiryDate)
	}
	return result
}
