package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kokualaw/expunge-api/models"
)

func TestExpungeAfterConvictionUnder21DUI(t *testing.T) {
	charge := models.Charge{Statute: "HRS 291E-64(b)(1)"}
	verdict, ok := ExpungeAfterConviction(charge)
	assert.True(t, ok)
	assert.Equal(t, models.StatusExpungeableAt21, verdict.Status)
	assert.Contains(t, verdict.Explanation, "291E-64(e)")
}

func TestExpungeAfterConvictionDrugOffenseEras(t *testing.T) {
	modern := models.Charge{
		Statute:          "329-43.5(c)",
		Dispositions:     []string{"Guilty"},
		DispositionDates: []string{"6/1/2010"},
	}
	verdict, ok := ExpungeAfterConviction(modern)
	assert.True(t, ok)
	assert.Equal(t, models.StatusFirstOrSecond, verdict.Status)
	assert.Contains(t, verdict.Explanation, "706-622.5(4)")

	legacy := models.Charge{
		Statute:          "329-43.5(c)",
		Dispositions:     []string{"Guilty"},
		DispositionDates: []string{"6/1/2001"},
	}
	verdict, ok = ExpungeAfterConviction(legacy)
	assert.True(t, ok)
	assert.Equal(t, models.StatusFirstExpungeable, verdict.Status)
	assert.Contains(t, verdict.Explanation, "706-622.8")
}

func TestExpungeAfterConvictionParaphernaliaSubclausesExcluded(t *testing.T) {
	charge := models.Charge{
		Statute:          "329-43.5(a)",
		Dispositions:     []string{"Guilty"},
		DispositionDates: []string{"6/1/2010"},
	}
	// sub-clause (a) falls through the 2004-era rule to the pre-2004
	// fallback, which matches the bare statute prefix
	verdict, ok := ExpungeAfterConviction(charge)
	assert.True(t, ok)
	assert.Equal(t, models.StatusFirstExpungeable, verdict.Status)
}

func TestExpungeAfterConvictionClassCPropertyFelony(t *testing.T) {
	charge := models.Charge{Statute: "708-831(1)(b)", Severity: SeverityFraudFelony}
	verdict, ok := ExpungeAfterConviction(charge)
	assert.True(t, ok)
	assert.Equal(t, models.StatusPossiblyExpungeable, verdict.Status)
	assert.Contains(t, verdict.Explanation, "706-622.9(3)")

	// a felony outside chapter 708 gets no exception
	_, ok = ExpungeAfterConviction(models.Charge{Statute: "707-701", Severity: SeverityFelonyA})
	assert.False(t, ok)
}

func TestExpungeAfterConvictionNoStatute(t *testing.T) {
	_, ok := ExpungeAfterConviction(models.Charge{})
	assert.False(t, ok)
}
