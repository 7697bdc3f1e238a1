package models

// KeyComponent is one notable function/class/component found in a file.
type KeyComponent struct {
	Name        string `json:"name"`
	Type        string `json:"type"` // function, class, component, hook, constant, interface
	Description string `json:"description"`
	LineRange   string `json:"lineRange"`
}

// Vulnerability is one potential issue flagged during forensic analysis.
type Vulnerability struct {
	Severity   string `json:"severity"` // low, medium, high, critical
	Issue      string `json:"issue"`
	Suggestion string `json:"suggestion"`
}

// ForensicAnalysis is the structured report for a single file. The model
// is instructed to emit exactly this shape as JSON; when it does not,
// analysis.ParseForensicReport degrades to a fallback instance.
type ForensicAnalysis struct {
	Purpose         string          `json:"purpose"`
	LogicFlow       string          `json:"logicFlow"`
	KeyComponents   []KeyComponent  `json:"keyComponents"`
	Vulnerabilities []Vulnerability `json:"vulnerabilities"`
	Imports         []string        `json:"imports"`
	Complexity      string          `json:"complexity"` // simple, moderate, complex, unknown
	Suggestions     []string        `json:"suggestions"`
}
