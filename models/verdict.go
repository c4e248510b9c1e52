package models

// Fixed per-charge verdict statuses. Statuses carrying a date
// ("Expungeable After 6/1/2024", "Statute of Limitations 6/1/2024")
// are built at evaluation time and are matched downstream by prefix.
const (
	StatusPending             = "Pending"
	StatusExpungeable         = "Expungeable"
	StatusExpungeableAt21     = "Expungeable at 21"
	StatusFirstExpungeable    = "1st Expungeable"
	StatusFirstOrSecond       = "1st/2nd Expungeable"
	StatusDeferred            = "Deferred"
	StatusPossiblyExpungeable = "Possibly Expungeable"
	StatusNotExpungeable      = "Not Expungeable"
	StatusUnknown             = "Unknown"
)

// ExpungeabilityVerdict is the outcome of evaluating one charge. A
// fresh verdict is produced by every evaluation; verdicts are never
// patched in place.
type ExpungeabilityVerdict struct {
	Status      string `json:"status"`
	Explanation string `json:"explanation"`
	// FinalJudgment marks dispositions that end the prosecution, which
	// suppresses the statute-of-limitations fields on the charge.
	FinalJudgment bool `json:"finalJudgment,omitempty"`
	// Disposition / DispositionDate record which disposition produced
	// this verdict, when one did.
	Disposition     string `json:"disposition,omitempty"`
	DispositionDate string `json:"dispositionDate,omitempty"`
	// DeferralPeriodExpiryDate is set when the verdict is waiting out
	// the one-year window after a deferred acceptance was dismissed.
	DeferralPeriodExpiryDate string `json:"deferralPeriodExpiryDate,omitempty"`
}

// CaseVerdict is the roll-up of every charge verdict in a case.
type CaseVerdict struct {
	Status      string `json:"status"`
	Explanation string `json:"explanation"`
	// ChargeDetails is a newline-joined audit trail with one line per
	// charge: "Charge {count}: {status} - {explanation}".
	ChargeDetails string `json:"chargeDetails"`
}
