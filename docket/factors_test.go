package docket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kokualaw/expunge-api/models"
)

func TestCheckDismissalWithPrejudice(t *testing.T) {
	granted := time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC)
	entries := []models.DocketEntry{
		docketEntry("1", time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), "Complaint Filed"),
		docketEntry("2", granted, "ORD/NOLLE-PROSEQUIMotion for Nolle Prosequi With Prejudice"),
	}

	check := CheckDismissalWithPrejudice(entries)
	assert.True(t, check.WithPrejudice)
	assert.Equal(t, granted, *check.DismissalDate)
	assert.Contains(t, check.DismissalText, "Nolle Prosequi With Prejudice")
}

func TestCheckDismissalWithPrejudiceDeniedMotionSkipped(t *testing.T) {
	entries := []models.DocketEntry{
		docketEntry("1", time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC),
			"ORD/NOLLE-PROSEQUIMotion for Nolle Prosequi With Prejudice DENIED"),
	}

	check := CheckDismissalWithPrejudice(entries)
	assert.False(t, check.WithPrejudice)
	assert.Nil(t, check.DismissalDate)
}

func TestCheckDismissalWithPrejudiceNoMatch(t *testing.T) {
	entries := []models.DocketEntry{
		docketEntry("1", time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC), "Motion for Nolle Prosequi"),
	}
	assert.False(t, CheckDismissalWithPrejudice(entries).WithPrejudice)
}

func TestCheckDeferredAcceptance(t *testing.T) {
	granted := time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC)
	entries := []models.DocketEntry{
		docketEntry("1", granted, "Order Granting Motion for Deferred Acceptance of Guilty Plea"),
	}

	check := CheckDeferredAcceptance(entries)
	assert.True(t, check.DeferredAcceptance)
	assert.Equal(t, granted, *check.DeferralDate)
}

func TestCheckDeferredAcceptanceNoMatch(t *testing.T) {
	entries := []models.DocketEntry{
		docketEntry("1", time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC), "Motion for Deferred Acceptance of Guilty Plea Filed"),
	}
	assert.False(t, CheckDeferredAcceptance(entries).DeferredAcceptance)
}