package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const validReport = `{
	"purpose": "Serves HTTP traffic",
	"logicFlow": "Request comes in, handler dispatches",
	"keyComponents": [{"name": "main", "type": "function", "description": "entrypoint", "lineRange": "1-20"}],
	"vulnerabilities": [{"severity": "low", "issue": "no timeouts", "suggestion": "add them"}],
	"imports": ["net/http"],
	"complexity": "simple",
	"suggestions": ["split into packages"]
}`

func TestParseForensicReport_FencedJSONBlock(t *testing.T) {
	text := "Here is the analysis:\n```json\n" + validReport + "\n```\nHope that helps!"

	report := ParseForensicReport(text)

	assert.Equal(t, "Serves HTTP traffic", report.Purpose)
	assert.Equal(t, "simple", report.Complexity)
	assert.Len(t, report.KeyComponents, 1)
	assert.Equal(t, "main", report.KeyComponents[0].Name)
	assert.Len(t, report.Vulnerabilities, 1)
	assert.Equal(t, []string{"net/http"}, report.Imports)
}

func TestParseForensicReport_UnlabeledFence(t *testing.T) {
	text := "```\n" + validReport + "\n```"
	report := ParseForensicReport(text)
	assert.Equal(t, "simple", report.Complexity)
}

func TestParseForensicReport_RawJSON(t *testing.T) {
	report := ParseForensicReport(validReport)
	assert.Equal(t, "Serves HTTP traffic", report.Purpose)
	assert.Equal(t, []string{"split into packages"}, report.Suggestions)
}

func TestParseForensicReport_PlainTextFallsBack(t *testing.T) {
	text := "I could not produce JSON, sorry. The file seems to be a web server."

	report := ParseForensicReport(text)

	assert.Equal(t, text, report.Purpose)
	assert.Equal(t, "unknown", report.Complexity)
	assert.Equal(t, "Unable to parse structured analysis", report.LogicFlow)
	assert.Empty(t, report.KeyComponents)
	assert.Empty(t, report.Vulnerabilities)
	assert.Empty(t, report.Imports)
	assert.Empty(t, report.Suggestions)
	// fallback lists are empty slices, not nulls, so JSON stays shaped
	assert.NotNil(t, report.KeyComponents)
	assert.NotNil(t, report.Imports)
}

func TestParseForensicReport_BrokenFencedJSONFallsBack(t *testing.T) {
	text := "```json\n{\"purpose\": \"truncated...\n```"
	report := ParseForensicReport(text)
	assert.Equal(t, "unknown", report.Complexity)
	assert.Equal(t, text, report.Purpose)
}

func TestParseForensicReport_MissingListsBecomeEmpty(t *testing.T) {
	report := ParseForensicReport(`{"purpose": "tiny file", "complexity": "simple"}`)
	assert.Equal(t, "tiny file", report.Purpose)
	assert.NotNil(t, report.KeyComponents)
	assert.NotNil(t, report.Vulnerabilities)
	assert.NotNil(t, report.Imports)
	assert.NotNil(t, report.Suggestions)
}
