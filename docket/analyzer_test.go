package docket

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeWarrantTextBenchWarrantIssued(t *testing.T) {
	analysis := AnalyzeWarrantText("Bench Warrant Issued")
	assert.True(t, analysis.IsWarrantRelated)
	assert.Equal(t, TypeArrest, analysis.Type)
	assert.Equal(t, ActionIssue, analysis.Action)
	assert.Empty(t, analysis.BailAmount)
}

func TestAnalyzeWarrantTextPenalSummons(t *testing.T) {
	analysis := AnalyzeWarrantText("Penal Summons Issued and Served")
	assert.True(t, analysis.IsWarrantRelated)
	assert.Equal(t, TypePenalSummons, analysis.Type)
	// "served" outranks "issued" in the action table
	assert.Equal(t, ActionService, analysis.Action)
}

func TestAnalyzeWarrantTextRecall(t *testing.T) {
	analysis := AnalyzeWarrantText("Bench Warrant Recalled")
	assert.True(t, analysis.IsWarrantRelated)
	assert.Equal(t, ActionRecall, analysis.Action)
}

func TestAnalyzeWarrantTextBailAmountPrimary(t *testing.T) {
	analysis := AnalyzeWarrantText("Bench Warrant Issued. Bail Amount: $1,500.00")
	assert.True(t, analysis.IsWarrantRelated)
	assert.Equal(t, "1,500.00", analysis.BailAmount)
	// "bail amount" outranks "issued" in the action table and the
	// overlay does not double-append
	assert.Equal(t, ActionBailSet, analysis.Action)
}

func TestAnalyzeWarrantTextBailOverlay(t *testing.T) {
	analysis := AnalyzeWarrantText("Bench Warrant Issued. Bail: $1,500.00")
	assert.True(t, analysis.IsWarrantRelated)
	assert.Equal(t, "1,500.00", analysis.BailAmount)
	assert.Equal(t, "issue; bail set", analysis.Action)
}

func TestAnalyzeWarrantTextBailOnly(t *testing.T) {
	analysis := AnalyzeWarrantText("Arrest Warrant. $250")
	assert.True(t, analysis.IsWarrantRelated)
	assert.Equal(t, "250", analysis.BailAmount)
	assert.Equal(t, ActionBailSet, analysis.Action)
}

func TestAnalyzeWarrantTextCompositeAction(t *testing.T) {
	analysis := AnalyzeWarrantText("Bench Warrant executed; defendant failed to appear. Bail: $500.00")
	assert.True(t, analysis.IsWarrantRelated)
	assert.Equal(t, "execution; bail set; non-appearance", analysis.Action)
	assert.Equal(t, "500.00", analysis.BailAmount)
}

func TestAnalyzeWarrantTextNonAppearanceForcesWarrantRelated(t *testing.T) {
	analysis := AnalyzeWarrantText("Hearing held; defendant not present")
	assert.True(t, analysis.IsWarrantRelated)
	// "defendant not present" also matches a type pattern, so the
	// entry lands in the warrant-related bucket with a type tag
	assert.Equal(t, TypeWarrantRelated, analysis.Type)
	assert.Equal(t, ActionNonAppearance, analysis.Action)
}

func TestAnalyzeWarrantTextReturnOfService(t *testing.T) {
	analysis := AnalyzeWarrantText("Return of Service")
	assert.True(t, analysis.IsWarrantRelated)
	assert.Equal(t, TypeArrest, analysis.Type)
	assert.Equal(t, ActionExecution, analysis.Action)
}

func TestAnalyzeWarrantTextUnrelated(t *testing.T) {
	analysis := AnalyzeWarrantText("Motion for Continuance Granted")
	assert.False(t, analysis.IsWarrantRelated)
	assert.Empty(t, analysis.Type)
	assert.Empty(t, analysis.Action)
}