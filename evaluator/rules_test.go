package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kokualaw/expunge-api/models"
)

func TestMatchDispositionRuleFirstDeclaredWins(t *testing.T) {
	// contains both "Dismissed Upon Nolle Prosequi", "Dismissed" and
	// "Nolle Prosequi"; the earliest declared key must win
	rule, ok := matchDispositionRule("Dismissed Upon Nolle Prosequi-Order Filed")
	assert.True(t, ok)
	assert.Equal(t, "Dismissed Upon Nolle Prosequi", rule.key)

	rule, ok = matchDispositionRule("Defer-Accept Guilty Plea")
	assert.True(t, ok)
	assert.Equal(t, "Defer-Accept Guilty Plea", rule.key)

	rule, ok = matchDispositionRule("Judgment of Not Guilty")
	assert.True(t, ok)
	assert.Equal(t, "Not Guilty", rule.key)
}

func TestMatchDispositionRuleCaseInsensitive(t *testing.T) {
	rule, ok := matchDispositionRule("dismissed with prejudice")
	assert.True(t, ok)
	assert.Equal(t, "Dismissed With Prejudice", rule.key)

	_, ok = matchDispositionRule("Taken Under Advisement")
	assert.False(t, ok)
}

func TestDerivedDispositionSets(t *testing.T) {
	assert.True(t, expungeableDispositions["Not Guilty"])
	assert.True(t, expungeableDispositions["Dismissed With Prejudice"])
	assert.True(t, adverseFinalDispositions["Guilty"])
	assert.True(t, adverseFinalDispositions["Judgment for State"])
	assert.True(t, deferredDispositions["Defer-Accept Guilty Plea"])
	assert.True(t, deferredDispositions["Defer-No Contest Plea"])
	assert.True(t, notDeterminableDispositions["Commitment to Circuit Court"])
	assert.True(t, notDeterminableDispositions["Nolle Prosequi"])

	assert.False(t, expungeableDispositions["Guilty"])
	assert.False(t, adverseFinalDispositions["Not Guilty"])
}

func TestNolleProsequiRuleUsesPrejudiceFactor(t *testing.T) {
	verdict := nolleProsequiRule(models.Charge{}, models.AdditionalFactors{WithPrejudice: true})
	assert.Equal(t, models.StatusExpungeable, verdict.Status)
	assert.True(t, verdict.FinalJudgment)

	verdict = nolleProsequiRule(models.Charge{}, models.AdditionalFactors{})
	assert.Equal(t, models.StatusPossiblyExpungeable, verdict.Status)
	assert.Equal(t, "Nolle prosequi without prejudice.", verdict.Explanation)
}

func TestHasPriorDeferredDisposition(t *testing.T) {
	charge := models.Charge{Dispositions: []string{"Defer-No Contest Plea", "Dismissed"}}
	assert.True(t, HasPriorDeferredDisposition(charge))

	charge = models.Charge{Dispositions: []string{"Guilty"}}
	assert.False(t, HasPriorDeferredDisposition(charge))
}
