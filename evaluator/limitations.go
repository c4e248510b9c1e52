package evaluator

import (
	"fmt"
	"strings"
	"time"

	"github.com/kokualaw/expunge-api/dates"
	"github.com/kokualaw/expunge-api/models"
)

// Limitations statuses. The "Possibly" variants surface reduced
// certainty when tolling could not be computed from the available
// dates.
const (
	LimitationsExpired         = "Expired"
	LimitationsRunning         = "Running"
	LimitationsPossiblyExpired = "Possibly Expired"
	LimitationsPossiblyRunning = "Possibly Running"
	LimitationsUnlimited       = "Unlimited"
	LimitationsUnknown         = "Unknown"
)

// Certainty tags for the limitations calculation.
const (
	CertaintyCertain   = "Certain"
	CertaintyUncertain = "Uncertain"
)

// LimitationsResult is the outcome of the statute-of-limitations
// calculation for one charge.
type LimitationsResult struct {
	Status        string
	Explanation   string
	ExpiryDate    string
	Certainty     string
	DaysRemaining int
	// PeriodYears is the limitations period; zero when the status is
	// Unknown. Unlimited periods are reported through PeriodLabel.
	PeriodYears int
	Unlimited   bool
}

// PeriodLabel renders the period the way case details display it.
func (r LimitationsResult) PeriodLabel() string {
	if r.Unlimited {
		return "Unlimited"
	}
	if r.PeriodYears == 0 {
		return ""
	}
	return fmt.Sprintf("%d year(s)", r.PeriodYears)
}

// severityPeriod maps a lowercased normalized severity tag to its
// limitations period in years. Unlimited classes are listed with
// years == 0 and unlimited == true.
type severityPeriod struct {
	years       int
	unlimited   bool
	description string
}

var severityPeriods = map[string]severityPeriod{
	"petty misdemeanor":   {years: 1, description: "Petty Misdemeanor"},
	"misdemeanor":         {years: 2, description: "Misdemeanor"},
	"felony a":            {years: 6, description: "Felony A"},
	"§708 fraud felony":   {years: 5, description: "§708 fraud felony"},
	"felony b":            {years: 3, description: "Felony B"},
	"felony c":            {years: 3, description: "Felony C"},
	"§701-108(2) felony":  {years: 10, description: "§701-108(2) felony"},
	"§701-108(1) felony":  {unlimited: true, description: "§701-108(1) felony"},
	"§707-733.6 felony":   {unlimited: true, description: "§707-733.6 Felony"},
	"violation":           {years: 1, description: "Violation"},
}

// HasStatuteOfLimitationsExpired computes whether the limitations
// clock on a charge has run out as of now. Tolling (the span the
// prosecution consumed, filing date through last disposition) is
// excluded from the clock when all three dates are available; with
// fewer dates the calculation degrades tier by tier, surfacing an
// Uncertain certainty rather than pretending precision.
func HasStatuteOfLimitationsExpired(charge models.Charge, filingDate, caseType string, now time.Time) LimitationsResult {
	period, ok := severityPeriods[strings.ToLower(NormalizeSeverity(charge, caseType))]
	if !ok {
		return LimitationsResult{
			Status:      LimitationsUnknown,
			Explanation: "Unable to determine statute of limitations due to unknown severity.",
		}
	}
	if period.unlimited {
		return LimitationsResult{
			Status:      LimitationsUnlimited,
			Explanation: fmt.Sprintf("No statute of limitations for a %s.", period.description),
			Unlimited:   true,
		}
	}

	limitations := dates.Years(period.years)
	offenseDate, offenseOK := dates.Parse(charge.OffenseDate)
	filing, filingOK := dates.Parse(filingDate)
	lastDisposition, dispositionOK := dates.Parse(charge.LastDispositionDate())

	var (
		expiry      time.Time
		status      string
		certainty   string
		explanation string
	)

	switch {
	case offenseOK && filingOK && dispositionOK:
		tolling := lastDisposition.Sub(filing)
		expiry = offenseDate.Add(limitations + tolling)
		certainty = CertaintyCertain
		tollingDays := dates.DaysIn(tolling)
		if now.After(expiry) {
			status = LimitationsExpired
			explanation = fmt.Sprintf("Statute of limitations expired on %s, accounting for %d days of tolling during prosecution.", dates.Format(expiry), tollingDays)
		} else {
			status = LimitationsRunning
			explanation = fmt.Sprintf("Statute of limitations will expire on %s, accounting for %d days of tolling during prosecution.", dates.Format(expiry), tollingDays)
		}
	case dispositionOK:
		expiry = lastDisposition.Add(limitations)
		certainty = CertaintyUncertain
		if now.After(expiry) {
			status = LimitationsPossiblyExpired
			explanation = fmt.Sprintf("Statute of limitations may have expired on %s, calculating from disposition date. Unable to account for tolling due to missing filing date.", dates.Format(expiry))
		} else {
			status = LimitationsPossiblyRunning
			explanation = fmt.Sprintf("Statute of limitations may expire on %s, calculating from disposition date. Unable to account for tolling due to missing filing date.", dates.Format(expiry))
		}
	case offenseOK:
		expiry = offenseDate.Add(limitations)
		certainty = CertaintyUncertain
		if now.After(expiry) {
			status = LimitationsPossiblyExpired
			explanation = fmt.Sprintf("Statute of limitations may have expired on %s. Unable to account for tolling due to missing filing or disposition dates.", dates.Format(expiry))
		} else {
			status = LimitationsPossiblyRunning
			explanation = fmt.Sprintf("Statute of limitations may expire on %s. Unable to account for tolling due to missing filing or disposition dates.", dates.Format(expiry))
		}
	case filingOK:
		expiry = filing.Add(limitations)
		certainty = CertaintyUncertain
		if now.After(expiry) {
			status = LimitationsPossiblyExpired
			explanation = fmt.Sprintf("Statute of limitations may have expired. Latest possible expiry was on %s (calculated from filing date as offense date not found). Unable to account for tolling.", dates.Format(expiry))
		} else {
			status = LimitationsPossiblyRunning
			explanation = fmt.Sprintf("Statute of limitations may still be running. Will expire no later than %s (calculated from filing date as offense date not found). Unable to account for tolling.", dates.Format(expiry))
		}
	default:
		return LimitationsResult{
			Status:      LimitationsUnknown,
			Explanation: "Unable to determine statute of limitations due to missing offense, filing and disposition dates.",
			PeriodYears: period.years,
		}
	}

	return LimitationsResult{
		Status:        status,
		Explanation:   explanation,
		ExpiryDate:    dates.Format(expiry),
		Certainty:     certainty,
		DaysRemaining: dates.CeilDays(expiry.Sub(now)),
		PeriodYears:   period.years,
	}
}

// ExpungeAfterLimitations wraps the limitations calculation into a
// charge verdict.
func ExpungeAfterLimitations(charge models.Charge, caseType, filingDate string, now time.Time) models.ExpungeabilityVerdict {
	result := HasStatuteOfLimitationsExpired(charge, filingDate, caseType, now)
	switch result.Status {
	case LimitationsExpired:
		return models.ExpungeabilityVerdict{Status: models.StatusExpungeable, Explanation: result.Explanation}
	case LimitationsUnlimited:
		return models.ExpungeabilityVerdict{Status: models.StatusPossiblyExpungeable, Explanation: result.Explanation}
	case LimitationsRunning:
		return models.ExpungeabilityVerdict{
			Status:      fmt.Sprintf("Statute of Limitations %s", result.ExpiryDate),
			Explanation: result.Explanation,
		}
	case LimitationsPossiblyExpired:
		return models.ExpungeabilityVerdict{Status: models.StatusPossiblyExpungeable, Explanation: result.Explanation}
	}
	return models.ExpungeabilityVerdict{
		Status:      models.StatusPossiblyExpungeable,
		Explanation: fmt.Sprintf("Unknown statute of limitations for charge: %s.", charge.Charge),
	}
}
