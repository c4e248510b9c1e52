package models

// AdditionalFactors carries case-level findings from the docket back
// into per-charge disposition evaluation. Assembled by the processor
// layer from the docket cross-factor scans plus case-type-specific
// detectors.
type AdditionalFactors struct {
	WithPrejudice         bool   `json:"withPrejudice"`
	DeferredAcceptance    bool   `json:"deferredAcceptance"`
	DismissedOnOralMotion bool   `json:"dismissedOnOralMotion"`
	DismissalDate         string `json:"dismissalDate,omitempty"`
	DeferralDate          string `json:"deferralDate,omitempty"`
	HasOutstandingWarrant bool   `json:"hasOutstandingWarrant"`
}
