package processors

import (
	"fmt"
	"strings"
)

// Case type codes as they appear in court case IDs.
const (
	CaseTypeCPC = "CPC" // Circuit Court Criminal
	CaseTypePC  = "PC"  // Circuit Court Criminal (older numbering)
	CaseTypeFFC = "FFC" // Family Court Criminal
	CaseTypeDTC = "DTC" // District Court Traffic Crime
	CaseTypeDTA = "DTA" // District Court Traffic Abstract
	CaseTypeDTI = "DTI" // District Court Traffic Infraction
	CaseTypeDCW = "DCW" // District Court Criminal Written Complaint
	CaseTypeDCC = "DCC" // District Court Criminal Citation
	CaseTypeAR  = "AR"  // Administrative Review
)

var registry = map[string]Processor{
	CaseTypeCPC: &caseProcessor{caseType: CaseTypeCPC, factors: standardFactors},
	CaseTypePC:  &caseProcessor{caseType: CaseTypePC, factors: standardFactors},
	CaseTypeFFC: &caseProcessor{caseType: CaseTypeFFC, factors: standardFactors},
	CaseTypeDTC: &caseProcessor{caseType: CaseTypeDTC, factors: standardFactors},
	CaseTypeDTA: newDTAProcessor(),
	CaseTypeDTI: &caseProcessor{caseType: CaseTypeDTI, factors: standardFactors},
	CaseTypeDCW: &caseProcessor{caseType: CaseTypeDCW, factors: standardFactors},
	CaseTypeDCC: &caseProcessor{caseType: CaseTypeDCC, factors: standardFactors},
	CaseTypeAR:  &caseProcessor{caseType: CaseTypeAR, factors: noFactors},
}

// ForCaseType returns the processor for a case type code.
func ForCaseType(caseType string) (Processor, error) {
	p, ok := registry[strings.ToUpper(caseType)]
	if !ok {
		return nil, fmt.Errorf("unsupported case type: %q", caseType)
	}
	return p, nil
}

// SupportedCaseTypes lists the registered case type codes.
func SupportedCaseTypes() []string {
	types := make([]string, 0, len(registry))
	for t := range registry {
		types = append(types, t)
	}
	return types
}
