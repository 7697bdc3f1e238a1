// Package analysis extracts structured data from the model's best-effort
// JSON replies.
package analysis

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/codesimplify/backend/internal/models"
)

var fencedJSON = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// ParseForensicReport turns the model's reply text into a ForensicAnalysis.
// It tries a fenced ```json block first, then the raw text, and on any
// parse failure degrades to a fixed fallback object instead of failing the
// request: the raw text becomes the purpose, complexity is "unknown", and
// every list is empty.
func ParseForensicReport(text string) models.ForensicAnalysis {
	candidate := text
	if m := fencedJSON.FindStringSubmatch(text); m != nil {
		candidate = m[1]
	}

	var report models.ForensicAnalysis
	if err := json.Unmarshal([]byte(strings.TrimSpace(candidate)), &report); err == nil {
		if report.KeyComponents == nil {
			report.KeyComponents = []models.KeyComponent{}
		}
		if report.Vulnerabilities == nil {
			report.Vulnerabilities = []models.Vulnerability{}
		}
		if report.Imports == nil {
			report.Imports = []string{}
		}
		if report.Suggestions == nil {
			report.Suggestions = []string{}
		}
		return report
	}

	return models.ForensicAnalysis{
		Purpose:         text,
		LogicFlow:       "Unable to parse structured analysis",
		KeyComponents:   []models.KeyComponent{},
		Vulnerabilities: []models.Vulnerability{},
		Imports:         []string{},
		Complexity:      "unknown",
		Suggestions:     []string{},
	}
}
