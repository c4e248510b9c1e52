package models

// CaseRecord is the parsed form of one court case as submitted by the
// scraping clients: case metadata plus the charges table and the
// docket table. The evaluation service never touches court-site HTML;
// it consumes this structure only.
type CaseRecord struct {
	CaseID        string        `json:"caseId"`
	CaseName      string        `json:"caseName,omitempty"`
	CaseType      string        `json:"caseType"` // short code, e.g. "CPC", "DTC", "DCW"
	CourtLocation string        `json:"courtLocation,omitempty"`
	CourtCircuit  string        `json:"courtCircuit,omitempty"`
	FilingDate    string        `json:"filingDate"`
	DefendantName string        `json:"defendantName,omitempty"`
	Charges       []Charge      `json:"charges"`
	DocketEntries []DocketEntry `json:"docketEntries"`
	Parties       []Party       `json:"parties,omitempty"`
}

// Party is one row of the case's party table.
type Party struct {
	Name string `json:"name"`
	ID   string `json:"id"`
	Role string `json:"role"`
}

// CaseDetails is the fully evaluated case returned to clients.
type CaseDetails struct {
	CaseID                 string            `json:"caseId"`
	CaseName               string            `json:"caseName,omitempty"`
	CaseType               string            `json:"caseType"`
	CourtLocation          string            `json:"courtLocation,omitempty"`
	CourtCircuit           string            `json:"courtCircuit,omitempty"`
	FilingDate             string            `json:"filingDate"`
	DefendantName          string            `json:"defendantName,omitempty"`
	Charges                []Charge          `json:"charges"`
	Parties                []Party           `json:"parties,omitempty"`
	AdditionalFactors      AdditionalFactors `json:"additionalFactors"`
	WarrantStatus          *WarrantStatus    `json:"warrantStatus,omitempty"`
	OverallExpungeability  CaseVerdict       `json:"overallExpungeability"`
}
