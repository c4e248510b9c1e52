package models

// Charge holds one criminal charge as parsed from a case record's
// charges table. Dispositions and DispositionDates are parallel arrays
// in chronological order; both may be empty when the case is still
// pending. The evaluation layer fills in the computed fields
// (Severity after normalization, the statute-of-limitations block,
// DeferralPeriodExpiryDate and IsExpungeable).
type Charge struct {
	Count            string   `json:"count"`
	Severity         string   `json:"severity"`
	Statute          string   `json:"statute"`
	Charge           string   `json:"charge"`
	OffenseDate      string   `json:"offenseDate"`
	Dispositions     []string `json:"dispositions"`
	DispositionDates []string `json:"dispositionDates"`

	// Sentence info as scraped; not consulted by the evaluator but
	// carried through for the document-generation clients.
	SpecialCourtsEligibility string `json:"specialCourtsEligibility,omitempty"`
	DispositionCode          string `json:"dispositionCode,omitempty"`
	SentenceCode             string `json:"sentenceCode,omitempty"`
	SentenceDescription      string `json:"sentenceDescription,omitempty"`
	SentenceLength           string `json:"sentenceLength,omitempty"`

	// Computed during evaluation.
	StatuteOfLimitationsPeriod     string                  `json:"statuteOfLimitationsPeriod,omitempty"`
	StatuteOfLimitationsExpiryDate string                  `json:"statuteOfLimitationsExpiryDate,omitempty"`
	StatuteOfLimitationsCertainty  string                  `json:"statuteOfLimitationsCertainty,omitempty"`
	StatuteOfLimitationsStatus     string                  `json:"statuteOfLimitationsStatus,omitempty"`
	DeferralPeriodExpiryDate       string                  `json:"deferralPeriodExpiryDate,omitempty"`
	IsExpungeable                  *ExpungeabilityVerdict  `json:"isExpungeable,omitempty"`
}

// LastDispositionDate returns the final entry of DispositionDates, or
// "" when the charge has no dispositions yet.
func (c Charge) LastDispositionDate() string {
	if len(c.DispositionDates) == 0 {
		return ""
	}
	return c.DispositionDates[len(c.DispositionDates)-1]
}
