// Package docket classifies free-form court docket text into warrant
// lifecycle events and scans entries for dismissal and deferral orders
// that feed back into charge evaluation.
package docket

import (
	"regexp"
	"strings"

	"github.com/kokualaw/expunge-api/models"
)

// Warrant type tags.
const (
	TypeArrest         = "arrest"
	TypePenalSummons   = "penal summons"
	TypeWarrantRelated = "warrant related"
)

// Warrant action tags. An entry's action may be a "; "-joined composite
// when the overlay rules fire on top of the primary match.
const (
	ActionExecution     = "execution"
	ActionRecall        = "recall"
	ActionService       = "service"
	ActionBailSet       = "bail set"
	ActionRequest       = "request"
	ActionNonAppearance = "non-appearance"
	ActionIssue         = "issue"
)

type typePattern struct {
	pattern     *regexp.Regexp
	warrantType string
}

type actionPattern struct {
	pattern *regexp.Regexp
	action  string
}

// Return of service is matched as an arrest-type phrase because clerks
// rarely restate the warrant type on the return entry.
var typePatterns = []typePattern{
	{regexp.MustCompile(`(?i)bench warrant|bw issued|arrest warrant|warrant of arrest|WOA|return of service`), TypeArrest},
	{regexp.MustCompile(`(?i)penal summons`), TypePenalSummons},
	{regexp.MustCompile(`(?i)defendant not present|failed to appear|failure to appear`), TypeWarrantRelated},
}

// actionPatterns are tested in descending priority order; the first
// match supplies the primary action.
var actionPatterns = []actionPattern{
	{regexp.MustCompile(`(?i)executed|execution|exec |return of service`), ActionExecution},
	{regexp.MustCompile(`(?i)recalled|quashed|returned`), ActionRecall},
	{regexp.MustCompile(`(?i)served|service`), ActionService},
	{regexp.MustCompile(`(?i)bail set|bail amount`), ActionBailSet},
	{regexp.MustCompile(`(?i)request bench warrant`), ActionRequest},
	{regexp.MustCompile(`(?i)defendant not present|failed to appear|failure to appear`), ActionNonAppearance},
	{regexp.MustCompile(`(?i)issued|ordered| Bench Warrant Circuit Criminal`), ActionIssue},
}

var nonAppearancePattern = actionPatterns[5].pattern

var bailAmountPattern = regexp.MustCompile(`\$\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`)

// TextAnalysis is the classification of one docket entry's text.
type TextAnalysis struct {
	IsWarrantRelated bool
	Type             string
	Action           string
	BailAmount       string
}

// AnalyzeWarrantText classifies a docket entry's free text. The type
// table and the action table are tested independently. Two overlay
// rules run after the primary action pick: an extracted bail amount
// appends "bail set", and a non-appearance match appends
// "non-appearance" and marks the entry warrant related even when no
// type pattern hit.
func AnalyzeWarrantText(text string) TextAnalysis {
	var analysis TextAnalysis

	for _, tp := range typePatterns {
		if tp.pattern.MatchString(text) {
			analysis.IsWarrantRelated = true
			analysis.Type = tp.warrantType

			if m := bailAmountPattern.FindStringSubmatch(text); m != nil {
				analysis.BailAmount = m[1]
			}
		}
	}

	for _, ap := range actionPatterns {
		if ap.pattern.MatchString(text) {
			analysis.Action = ap.action
			break
		}
	}

	if analysis.BailAmount != "" {
		if analysis.Action == "" {
			analysis.Action = ActionBailSet
		} else if analysis.Action != ActionBailSet {
			analysis.Action += "; " + ActionBailSet
		}
	}
	if nonAppearancePattern.MatchString(text) {
		if analysis.Action == "" {
			analysis.Action = ActionNonAppearance
			analysis.IsWarrantRelated = true
		} else if !strings.Contains(analysis.Action, ActionNonAppearance) {
			analysis.Action += "; " + ActionNonAppearance
			analysis.IsWarrantRelated = true
		}
	}

	return analysis
}

// analyzeEntry enriches a docket entry with its warrant classification,
// returning false when the entry is not warrant related.
func analyzeEntry(entry models.DocketEntry) (models.WarrantAnalyzedEntry, bool) {
	analysis := AnalyzeWarrantText(entry.DocketText)
	if !analysis.IsWarrantRelated {
		return models.WarrantAnalyzedEntry{}, false
	}
	return models.WarrantAnalyzedEntry{
		DocketEntry:       entry,
		WarrantType:       analysis.Type,
		WarrantAction:     analysis.Action,
		WarrantBailAmount: analysis.BailAmount,
	}, true
}
