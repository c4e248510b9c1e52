package processors

import (
	"strconv"
	"strings"

	"github.com/kokualaw/expunge-api/dates"
	"github.com/kokualaw/expunge-api/models"
)

// newDTAProcessor builds the traffic-crime processor. DTA dockets can
// record a dismissal that never reaches the charges table: the state
// moves orally to dismiss and the court grants the motion from the
// bench, so the disposition column stays blank.
func newDTAProcessor() Processor {
	return &caseProcessor{caseType: CaseTypeDTA, factors: dtaFactors}
}

func dtaFactors(entries []models.DocketEntry) (models.AdditionalFactors, *models.WarrantStatus) {
	factors, warrantStatus := standardFactors(entries)

	dismissed, dismissalDate := checkDismissedOnOralMotion(entries)
	factors.DismissedOnOralMotion = dismissed
	factors.DismissalDate = dismissalDate

	return factors, warrantStatus
}

// checkDismissedOnOralMotion looks for the state's oral motion to
// dismiss followed by a granted oral order. The grant must appear at a
// higher docket entry number than the motion; entry numbers, not
// dates, carry the ordering because both minutes are often filed the
// same day.
func checkDismissedOnOralMotion(entries []models.DocketEntry) (bool, string) {
	var motion, grant *models.DocketEntry
	for i := range entries {
		text := entries[i].DocketText
		if motion == nil &&
			strings.Contains(text, "Motion to Dismiss") &&
			strings.Contains(text, "orally entered by the state-plea") {
			motion = &entries[i]
		}
		if grant == nil && strings.Contains(text, "Oral Order Motion Granted") {
			grant = &entries[i]
		}
	}
	if motion == nil || grant == nil {
		return false, ""
	}

	motionNumber, err1 := strconv.Atoi(strings.TrimSpace(motion.EntryNumber))
	grantNumber, err2 := strconv.Atoi(strings.TrimSpace(grant.EntryNumber))
	if err1 != nil || err2 != nil || grantNumber <= motionNumber {
		return false, ""
	}

	if grant.Date != nil {
		return true, dates.Format(*grant.Date)
	}
	return true, ""
}
