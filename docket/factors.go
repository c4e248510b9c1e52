package docket

import (
	"strings"
	"time"

	"github.com/kokualaw/expunge-api/models"
)

// DismissalCheck reports whether the docket contains a granted nolle
// prosequi with prejudice order.
type DismissalCheck struct {
	WithPrejudice bool
	DismissalDate *time.Time
	DismissalText string
}

// DeferralCheck reports whether the docket contains an order granting
// a motion for deferred acceptance of a plea.
type DeferralCheck struct {
	DeferredAcceptance bool
	DeferralDate       *time.Time
	DeferralText       string
}

// CheckDismissalWithPrejudice scans for the clerk's nolle prosequi
// with prejudice order. The minute-entry text runs the order code and
// motion title together with no separator, so the match phrase does
// too. Entries containing "den" are denied motions and are skipped.
func CheckDismissalWithPrejudice(entries []models.DocketEntry) DismissalCheck {
	for _, entry := range entries {
		lower := strings.ToLower(entry.DocketText)
		if strings.Contains(lower, "ord/nolle-prosequimotion for nolle prosequi with prejudice") &&
			!strings.Contains(lower, "den") {
			return DismissalCheck{
				WithPrejudice: true,
				DismissalDate: entry.Date,
				DismissalText: entry.DocketText,
			}
		}
	}
	return DismissalCheck{}
}

// CheckDeferredAcceptance scans for an order granting a DAG or DANC
// plea motion.
func CheckDeferredAcceptance(entries []models.DocketEntry) DeferralCheck {
	for _, entry := range entries {
		lower := strings.ToLower(entry.DocketText)
		if strings.Contains(lower, "order granting motion for deferred acceptance of") {
			return DeferralCheck{
				DeferredAcceptance: true,
				DeferralDate:       entry.Date,
				DeferralText:       entry.DocketText,
			}
		}
	}
	return DeferralCheck{}
}
