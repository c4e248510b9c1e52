package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kokualaw/expunge-api/models"
)

func TestNormalizeSeverity(t *testing.T) {
	cases := []struct {
		name     string
		charge   models.Charge
		caseType string
		want     string
	}{
		{"murder by description", models.Charge{Charge: "Murder in the Second Degree"}, "CPC", SeverityMurderClass},
		{"first degree sexual assault", models.Charge{Charge: "Sexual Assault1"}, "CPC", SeverityMurderClass},
		{"sexual assault of a minor statute", models.Charge{Statute: "HRS 707-733.6"}, "CPC", SeveritySexAssaultMinor},
		{"manslaughter", models.Charge{Charge: "Manslaughter"}, "CPC", SeverityManslaughter},
		{"vehicular manslaughter excluded", models.Charge{Charge: "Manslaughter (Vehicle)", Severity: "FB - Felony"}, "CPC", SeverityFelonyB},
		{"petty misdemeanor code", models.Charge{Severity: "PM"}, "DCW", SeverityPettyMisdemeanor},
		{"misdemeanor code", models.Charge{Severity: "MD - Misdemeanor"}, "DCW", SeverityMisdemeanor},
		{"class a felony", models.Charge{Severity: "FA - Class A Felony"}, "CPC", SeverityFelonyA},
		{"class b felony", models.Charge{Severity: "FB"}, "CPC", SeverityFelonyB},
		{"class c felony", models.Charge{Severity: "FC - Class C Felony"}, "CPC", SeverityFelonyC},
		{"violation code", models.Charge{Severity: "VL"}, "DCW", SeverityViolation},
		{"traffic infraction fallback", models.Charge{}, "DTI", SeverityViolation},
		{"traffic crime fallback", models.Charge{}, "DTA", "misdemeanor"},
		{"unknown fallback", models.Charge{Severity: "??"}, "CPC", SeverityUnknown},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, NormalizeSeverity(c.charge, c.caseType))
		})
	}
}

func TestNormalizeSeverityFraudFelonyOverride(t *testing.T) {
	charge := models.Charge{Severity: "FC - Class C Felony", Statute: "708-831(1)(b)"}
	assert.Equal(t, SeverityFraudFelony, NormalizeSeverity(charge, "CPC"))

	// the override only rewrites felony tags
	misdemeanor := models.Charge{Severity: "MD", Statute: "708-830"}
	assert.Equal(t, SeverityMisdemeanor, NormalizeSeverity(misdemeanor, "DCW"))
}
