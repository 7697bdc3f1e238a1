package prompt

import "errors"

// Mode selects the prompt template and expected output shape for one
// analysis request. The set is closed: unknown mode strings are rejected
// at the API boundary instead of falling through to a default template.
type Mode int

const (
	ModeSummary Mode = iota
	ModeWiki
	ModeVisualize
	ModeForensic
	ModeChat
)

func (m Mode) String() string {
	switch m {
	case ModeSummary:
		return "summary"
	case ModeWiki:
		return "wiki"
	case ModeVisualize:
		return "visualize"
	case ModeForensic:
		return "forensic"
	case ModeChat:
		return "chat"
	default:
		return "unknown"
	}
}

// ParseSummarizeMode maps the summarize endpoint's mode field to a Mode.
// An empty string defaults to summary. The "report" mode is intentionally
// absent: reports are composed client-side from three separate calls.
func ParseSummarizeMode(s string) (Mode, error) {
	switch s {
	case "", "summary":
		return ModeSummary, nil
	case "wiki":
		return ModeWiki, nil
	case "visualize":
		return ModeVisualize, nil
	default:
		return ModeSummary, errors.New("Invalid mode. Use 'summary', 'wiki', or 'visualize'")
	}
}
