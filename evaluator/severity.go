package evaluator

import (
	"strings"

	"github.com/kokualaw/expunge-api/models"
)

// Normalized severity tags consumed by the statute-of-limitations
// table. The lowercase "violation"/"misdemeanor"/"unknown" spellings
// are what the disposition evaluator and downstream display logic
// match on.
const (
	SeverityPettyMisdemeanor = "Petty Misdemeanor"
	SeverityMisdemeanor      = "Misdemeanor"
	SeverityFelonyA          = "Felony A"
	SeverityFelonyB          = "Felony B"
	SeverityFelonyC          = "Felony C"
	SeverityMurderClass      = "§701-108(1) Felony"
	SeverityManslaughter     = "§701-108(2) Felony"
	SeveritySexAssaultMinor  = "§707-733.6 Felony"
	SeverityFraudFelony      = "§708 fraud felony"
	SeverityViolation        = "violation"
	SeverityUnknown          = "unknown"
)

// NormalizeSeverity maps a charge's raw severity string, description
// and statute citation onto one severity tag. The checks run in a
// fixed order and the first match wins; the case-type fallback applies
// only when nothing matched at all. A final pass reclassifies felony
// tags under an HRS chapter 708 statute as fraud felonies, which carry
// their own limitations period.
func NormalizeSeverity(charge models.Charge, caseType string) string {
	severity := strings.ToLower(strings.TrimSpace(charge.Severity))
	description := strings.ToLower(charge.Charge)
	statute := charge.Statute

	var normalized string
	switch {
	case strings.Contains(severity, "§701-108(1) felony"),
		strings.Contains(description, "murder"):
		normalized = SeverityMurderClass
	case strings.Contains(description, "sexual assault1"),
		strings.Contains(description, "sexual assault2"):
		normalized = SeverityMurderClass
	case strings.Contains(statute, "707-733.6"):
		normalized = SeveritySexAssaultMinor
	case (strings.Contains(description, "manslaughter") || severity == "§701-108(2) felony") &&
		!strings.Contains(description, "vehic"):
		// Vehicular manslaughter is excluded from the ten-year class.
		normalized = SeverityManslaughter
	case strings.Contains(severity, "pm"), strings.Contains(severity, "petty misdemeanor"):
		normalized = SeverityPettyMisdemeanor
	case strings.Contains(severity, "md"), strings.Contains(severity, "misdemeanor"):
		normalized = SeverityMisdemeanor
	case containsAny(severity, "fa -", "class a", "felony a"), severity == "fa":
		normalized = SeverityFelonyA
	case containsAny(severity, "fb -", "class b", "felony b"), severity == "fb":
		normalized = SeverityFelonyB
	case containsAny(severity, "fc -", "class c", "felony c"), severity == "fc":
		normalized = SeverityFelonyC
	case severity == "vl":
		normalized = SeverityViolation
	default:
		switch caseType {
		case "DTI":
			normalized = SeverityViolation
		case "DTA", "DTC":
			normalized = "misdemeanor"
		default:
			normalized = SeverityUnknown
		}
	}

	if strings.Contains(strings.ToLower(normalized), "felony") && strings.Contains(statute, "708") {
		normalized = SeverityFraudFelony
	}
	return normalized
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
