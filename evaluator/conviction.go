package evaluator

import (
	"strings"
	"time"

	"github.com/kokualaw/expunge-api/dates"
	"github.com/kokualaw/expunge-api/models"
)

// drugOffenseEraCutoff splits HRS §706-622.5 (2004 and later) from the
// pre-2004 §706-622.8 first-time drug offender rule.
var drugOffenseEraCutoff = time.Date(2003, time.December, 31, 0, 0, 0, 0, time.UTC)

// ExpungeAfterConviction checks a guilty or no-contest disposition for
// the narrow statutory exceptions that keep a conviction expungeable.
// The checks run in order; the post-2003 drug-offense rule must be
// tried before the pre-2004 fallback since both match the same statute
// prefix. Returns false when no exception applies, which the caller
// renders as a non-expungeable adverse disposition.
func ExpungeAfterConviction(charge models.Charge) (models.ExpungeabilityVerdict, bool) {
	statute := charge.Statute
	if statute == "" {
		return models.ExpungeabilityVerdict{}, false
	}

	// DUI under 21: HRS 291E-64.
	if containsFold(statute, "291E-64(b)(1)") {
		return models.ExpungeabilityVerdict{
			Status: models.StatusExpungeableAt21,
			Explanation: `If there are no prior alcohol enforcement contacts, the subsequently well-behaved defendant "may apply to the court" to expunge this first-time under-21 DUI after turning 21: HRS §291E-64(e).`,
		}, true
	}

	if containsFold(statute, "329-43.5") &&
		!containsFold(statute, "43.5(a)") &&
		!containsFold(statute, "43.5(b)") {
		// 1st/2nd-time drug offender (2004 or later): HRS 706-622.5.
		if lastDisposition, ok := dates.Parse(charge.LastDispositionDate()); ok && lastDisposition.After(drugOffenseEraCutoff) {
			return models.ExpungeabilityVerdict{
				Status: models.StatusFirstOrSecond,
				Explanation: `If this is a first- or second-time offense, the court "shall" expunge it upon written application after successful completion of the substance abuse treatment program and satisfaction of probation conditions: HRS §706-622.5(4).`,
			}, true
		}
	}

	// First-time drug offender prior to 2004: HRS 706-622.8.
	if containsFold(statute, "329-43.5") {
		return models.ExpungeabilityVerdict{
			Status: models.StatusFirstExpungeable,
			Explanation: `The defendant/probation officer "may apply to the court" to expunge a pre-2004 first-time drug offense upon meeting the requirements of HRS §706-622.5(4): HRS §706-622.8.`,
		}, true
	}

	// First-time property offender: HRS 706-622.9.
	if strings.Contains(statute, "708") && isClassCPropertySeverity(charge.Severity) {
		return models.ExpungeabilityVerdict{
			Status: models.StatusPossiblyExpungeable,
			Explanation: `If this class C property felony is a first offense, the court "shall" expunge it upon the defendant's/probation officer's written application after successful completion of the substance abuse treatment program and satisfaction of probation conditions: HRS §706-622.9(3).`,
		}, true
	}

	return models.ExpungeabilityVerdict{}, false
}

// isClassCPropertySeverity accepts both the plain class-C tag and the
// fraud-felony tag the §708 severity override rewrites it to.
func isClassCPropertySeverity(severity string) bool {
	return severity == SeverityFelonyC || severity == SeverityFraudFelony
}
