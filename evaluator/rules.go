package evaluator

import (
	"strings"

	"github.com/kokualaw/expunge-api/models"
)

// dispositionRule pairs a match key with a verdict builder. A rule
// applies when the disposition text contains the key as a
// case-insensitive substring. Declaration order is a correctness
// invariant: the first matching rule wins, so "Not Guilty" must stay
// ahead of "Guilty" and the dismissal variants ahead of "Dismissed".
type dispositionRule struct {
	key   string
	build func(charge models.Charge, factors models.AdditionalFactors) models.ExpungeabilityVerdict
}

func constantRule(status, explanation string, finalJudgment bool) func(models.Charge, models.AdditionalFactors) models.ExpungeabilityVerdict {
	return func(models.Charge, models.AdditionalFactors) models.ExpungeabilityVerdict {
		return models.ExpungeabilityVerdict{Status: status, Explanation: explanation, FinalJudgment: finalJudgment}
	}
}

func nolleProsequiRule(_ models.Charge, factors models.AdditionalFactors) models.ExpungeabilityVerdict {
	if factors.WithPrejudice {
		return models.ExpungeabilityVerdict{
			Status:        models.StatusExpungeable,
			Explanation:   "Nolle prosequi and dismissed with prejudice.",
			FinalJudgment: true,
		}
	}
	return models.ExpungeabilityVerdict{
		Status:      models.StatusPossiblyExpungeable,
		Explanation: "Nolle prosequi without prejudice.",
	}
}

func convictionRule(charge models.Charge, _ models.AdditionalFactors) models.ExpungeabilityVerdict {
	if v, ok := ExpungeAfterConviction(charge); ok {
		return v
	}
	return models.ExpungeabilityVerdict{
		Status:        models.StatusNotExpungeable,
		Explanation:   "Non-expungeable adverse disposition.",
		FinalJudgment: true,
	}
}

const deferredExplanation = "Deferred acceptance disposition normally requires subsequent dismissal and one-year waiting period for expungement eligibility."

var dispositionRules = []dispositionRule{
	{"Not Guilty", constantRule(models.StatusExpungeable, "Defendant found not guilty.", true)},
	{"Dismissed With Prejudice", constantRule(models.StatusExpungeable, "Charge dismissed with prejudice.", true)},
	{"Dsm With Prejudice", constantRule(models.StatusExpungeable, "Charge dismissed with prejudice.", true)},
	{"Dsm With Prejudice Rule 48", constantRule(models.StatusExpungeable, "Charge dismissed with prejudice under Rule 48.", true)},
	{"Defer-Accept Guilty Plea", constantRule(models.StatusDeferred, deferredExplanation, false)},
	{"Defer-No Contest Plea", constantRule(models.StatusDeferred, deferredExplanation, false)},
	{"Commitment to Circuit Court", constantRule(models.StatusPossiblyExpungeable, "See Circuit Court case for expungement determination.", false)},
	{"Remanded to District Court", constantRule(models.StatusPossiblyExpungeable, "See District Court case for expungement determination.", false)},
	{"Dismissed Without Prejudice", constantRule(models.StatusPossiblyExpungeable, "Unable to determine if eligible for expungement.", true)},
	{"Dismissed Upon Nolle Prosequi", nolleProsequiRule},
	{"Dismissed", constantRule(models.StatusPossiblyExpungeable, "Unable to determine if eligible for expungement.", false)},
	{"Nolle Prosequi", nolleProsequiRule},
	{"Guilty", convictionRule},
	{"Nolo Contendere", convictionRule},
	{"Judgment for State", constantRule(models.StatusNotExpungeable, "Non-expungeable adverse disposition.", true)},
	{"Default Judgment", constantRule(models.StatusNotExpungeable, "Non-expungeable adverse disposition.", false)},
}

// Classification sets derived from the rule table. Each holds the
// rule keys whose default-input verdict carries the given status, so
// they can never drift out of sync with the table itself.
var (
	expungeableDispositions     map[string]bool
	adverseFinalDispositions    map[string]bool
	deferredDispositions        map[string]bool
	notDeterminableDispositions map[string]bool
)

// dismissalAfterDeferralKeys are the rule keys that resolve a pending
// deferred acceptance when they appear as a later disposition.
var dismissalAfterDeferralKeys = map[string]bool{
	"Dismissed With Prejudice":   true,
	"Dsm With Prejudice":         true,
	"Dsm With Prejudice Rule 48": true,
	"Dismissed":                  true,
}

func init() {
	expungeableDispositions = map[string]bool{}
	adverseFinalDispositions = map[string]bool{}
	deferredDispositions = map[string]bool{}
	notDeterminableDispositions = map[string]bool{}

	for _, rule := range dispositionRules {
		switch rule.build(models.Charge{}, models.AdditionalFactors{}).Status {
		case models.StatusExpungeable:
			expungeableDispositions[rule.key] = true
		case models.StatusNotExpungeable:
			adverseFinalDispositions[rule.key] = true
		case models.StatusDeferred:
			deferredDispositions[rule.key] = true
		case models.StatusPossiblyExpungeable:
			notDeterminableDispositions[rule.key] = true
		}
	}
}

// matchDispositionRule finds the first rule whose key appears in the
// disposition text, ignoring case.
func matchDispositionRule(disposition string) (dispositionRule, bool) {
	for _, rule := range dispositionRules {
		if containsFold(disposition, rule.key) {
			return rule, true
		}
	}
	return dispositionRule{}, false
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(strings.TrimSpace(s)), strings.ToLower(strings.TrimSpace(substr)))
}

// HasPriorDeferredDisposition reports whether any disposition on the
// charge matches a deferred acceptance rule key.
func HasPriorDeferredDisposition(charge models.Charge) bool {
	for _, disposition := range charge.Dispositions {
		for key := range deferredDispositions {
			if containsFold(disposition, key) {
				return true
			}
		}
	}
	return false
}
