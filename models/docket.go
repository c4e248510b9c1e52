package models

import "time"

// DocumentLink points at a filed document attached to a docket row.
type DocumentLink struct {
	DocumentID   string `json:"documentId"`
	DocumentType string `json:"documentType"`
	ImageSource  string `json:"imageSource,omitempty"`
}

// DocketEntry is one chronological log line in a case's procedural
// history, as parsed from the docket table. Date is nil when the row
// carried no parseable date. DocketText is always non-empty; rows
// without it are dropped by the parser.
type DocketEntry struct {
	EntryNumber   string         `json:"entryNumber"`
	Date          *time.Time     `json:"date"`
	DocketText    string         `json:"docketText"`
	Defendant     string         `json:"defendant,omitempty"`
	Party         string         `json:"party,omitempty"`
	DocumentLinks []DocumentLink `json:"documentLinks"`
}

// WarrantAnalyzedEntry is a DocketEntry enriched with the warrant
// classification of its text. WarrantAction may be a "; "-joined
// composite such as "issue; bail set; non-appearance".
type WarrantAnalyzedEntry struct {
	DocketEntry
	WarrantType       string `json:"warrantType,omitempty"`
	WarrantAction     string `json:"warrantAction,omitempty"`
	WarrantBailAmount string `json:"warrantBailAmount,omitempty"`
}

// WarrantStatus is the case-level warrant determination, computed
// fresh from the full docket-entry list on every analysis.
type WarrantStatus struct {
	HasOutstandingWarrant   bool                   `json:"hasOutstandingWarrant"`
	WarrantEntries          []WarrantAnalyzedEntry `json:"warrantEntries"`
	LatestWarrantType       string                 `json:"latestWarrantType,omitempty"`
	LatestWarrantDate       *time.Time             `json:"latestWarrantDate,omitempty"`
	LatestRecallDate        *time.Time             `json:"latestRecallDate,omitempty"`
	LatestBailAmount        string                 `json:"latestBailAmount,omitempty"`
	LatestNonAppearanceDate *time.Time             `json:"latestNonAppearanceDate,omitempty"`
	Explanation             string                 `json:"explanation"`
}
