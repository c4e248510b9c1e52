package docket

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/kokualaw/expunge-api/dates"
	"github.com/kokualaw/expunge-api/models"
)

// AnalyzeWarrantStatus classifies every docket entry, keeps the
// warrant-related ones sorted newest first, and walks them to decide
// whether a warrant is currently outstanding. The status is computed
// fresh from the full entry list on every call.
func AnalyzeWarrantStatus(entries []models.DocketEntry) models.WarrantStatus {
	results := models.WarrantStatus{
		WarrantEntries: []models.WarrantAnalyzedEntry{},
	}

	findWarrantRelatedEntries(entries, &results)
	determineWarrantStatus(&results)

	return results
}

func entryTime(e models.WarrantAnalyzedEntry) time.Time {
	if e.Date == nil {
		return time.Time{}
	}
	return *e.Date
}

func findWarrantRelatedEntries(entries []models.DocketEntry, results *models.WarrantStatus) {
	for _, entry := range entries {
		if analyzed, ok := analyzeEntry(entry); ok {
			results.WarrantEntries = append(results.WarrantEntries, analyzed)
		}
	}

	sort.SliceStable(results.WarrantEntries, func(i, j int) bool {
		return entryTime(results.WarrantEntries[i]).After(entryTime(results.WarrantEntries[j]))
	})

	latestIssue := findByAction(results.WarrantEntries, ActionIssue)
	latestRecall := findByAction(results.WarrantEntries, ActionRecall)
	latestBail := findByAction(results.WarrantEntries, ActionBailSet)
	latestNonAppearance := findByAction(results.WarrantEntries, ActionNonAppearance)
	latestTyped := findTyped(results.WarrantEntries)

	if latestIssue != nil && latestTyped != nil {
		results.LatestWarrantType = WarrantTypeToPhrase(latestIssue.WarrantType, false)
	}
	if latestIssue != nil {
		results.LatestWarrantDate = latestIssue.Date
	}
	if latestRecall != nil {
		results.LatestRecallDate = latestRecall.Date
	}
	if latestBail != nil {
		results.LatestBailAmount = latestBail.WarrantBailAmount
	}
	if latestNonAppearance != nil {
		results.LatestNonAppearanceDate = latestNonAppearance.Date
	}
}

// findByAction returns the first entry in the newest-first list whose
// composite action contains the given action tag.
func findByAction(entries []models.WarrantAnalyzedEntry, action string) *models.WarrantAnalyzedEntry {
	for i := range entries {
		if strings.Contains(entries[i].WarrantAction, action) {
			return &entries[i]
		}
	}
	return nil
}

func findTyped(entries []models.WarrantAnalyzedEntry) *models.WarrantAnalyzedEntry {
	for i := range entries {
		if entries[i].WarrantType != "" {
			return &entries[i]
		}
	}
	return nil
}

// WarrantTypeToPhrase renders a warrant type tag into prose. Every
// type except "penal summons" gets the word "warrant" appended.
func WarrantTypeToPhrase(warrantType string, capitalizeFirst bool) string {
	if warrantType == "" {
		return ""
	}
	phrase := warrantType
	if !strings.EqualFold(phrase, TypePenalSummons) {
		phrase += " warrant"
	}
	if capitalizeFirst {
		phrase = strings.ToUpper(phrase[:1]) + phrase[1:]
	}
	return phrase
}

func formatEntryDate(e *models.WarrantAnalyzedEntry) string {
	if e == nil || e.Date == nil {
		return "unknown date"
	}
	return dates.Format(*e.Date)
}

func determineWarrantStatus(results *models.WarrantStatus) {
	if len(results.WarrantEntries) == 0 {
		results.Explanation = "No warrant entries found in docket."
		return
	}

	var terminating []models.WarrantAnalyzedEntry
	for _, entry := range results.WarrantEntries {
		if strings.Contains(entry.WarrantAction, ActionRecall) ||
			strings.Contains(entry.WarrantAction, ActionExecution) ||
			strings.Contains(entry.WarrantAction, "serv") {
			terminating = append(terminating, entry)
		}
	}

	latestIssue := findByAction(results.WarrantEntries, ActionIssue)

	if latestIssue == nil {
		if len(terminating) > 0 {
			sort.SliceStable(terminating, func(i, j int) bool {
				return entryTime(terminating[i]).After(entryTime(terminating[j]))
			})
			latestAction := terminating[0]

			results.HasOutstandingWarrant = false
			explanation := fmt.Sprintf("Found %s %s on %s but no corresponding issuance entry.",
				WarrantTypeToPhrase(latestAction.WarrantType, false),
				latestAction.WarrantAction,
				formatEntryDate(&latestAction))
			if latestAction.WarrantBailAmount != "" {
				explanation += fmt.Sprintf(" (Bail amount: $%s)", latestAction.WarrantBailAmount)
			}
			results.Explanation = explanation
			return
		}

		results.Explanation = "No warrant entries found in docket."
		return
	}

	var subsequent []models.WarrantAnalyzedEntry
	for _, entry := range terminating {
		if entryTime(entry).After(entryTime(*latestIssue)) {
			subsequent = append(subsequent, entry)
		}
	}
	sort.SliceStable(subsequent, func(i, j int) bool {
		return entryTime(subsequent[i]).After(entryTime(subsequent[j]))
	})

	if len(subsequent) > 0 {
		latestAction := subsequent[0]
		results.HasOutstandingWarrant = false

		resolution := "executed"
		if strings.Contains(latestAction.WarrantAction, ActionRecall) {
			resolution = "recalled"
		}
		explanation := fmt.Sprintf("%s issued on %s was %s on %s.",
			WarrantTypeToPhrase(latestIssue.WarrantType, true),
			formatEntryDate(latestIssue),
			resolution,
			formatEntryDate(&latestAction))
		if latestIssue.WarrantBailAmount != "" {
			explanation += fmt.Sprintf(" (Bail was set at $%s)", latestIssue.WarrantBailAmount)
		}
		results.Explanation = explanation
		return
	}

	results.HasOutstandingWarrant = true
	explanation := fmt.Sprintf("%s issued on %s ",
		WarrantTypeToPhrase(latestIssue.WarrantType, true),
		formatEntryDate(latestIssue))
	if latestIssue.WarrantBailAmount != "" {
		explanation += fmt.Sprintf("with bail set at $%s ", latestIssue.WarrantBailAmount)
	}
	explanation += "remains outstanding."
	results.Explanation = explanation
}
