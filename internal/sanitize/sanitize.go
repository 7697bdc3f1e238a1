// Package sanitize neutralizes untrusted repository text before it is
// interpolated into a model prompt. The injection-marker list is a fixed,
// small heuristic set; it will both over- and under-block and is
// defense-in-depth, not a security boundary.
package sanitize

import "regexp"

var tripleBacktick = regexp.MustCompile("```")

// Marker and phrase patterns replaced with a literal [BLOCKED] token.
var injectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\[SYSTEM\]`),
	regexp.MustCompile(`(?i)\[INST\]`),
	regexp.MustCompile(`(?i)<<SYS>>`),
	regexp.MustCompile(`(?i)<\|system\|>`),
	regexp.MustCompile(`(?i)<\|user\|>`),
	regexp.MustCompile(`(?i)<\|assistant\|>`),
	regexp.MustCompile(`(?i)ignore\s+(previous|all|above)\s+(instructions?|prompts?)`),
	regexp.MustCompile(`(?i)disregard\s+(previous|all|above)\s+(instructions?|prompts?)`),
	regexp.MustCompile(`(?i)forget\s+(previous|all|above)\s+(instructions?|prompts?)`),
	regexp.MustCompile(`(?i)new\s+instructions?:`),
	regexp.MustCompile(`(?i)override\s+instructions?`),
}

var (
	pathStrip     = regexp.MustCompile("[`\\[\\]<>]")
	pathTraversal = regexp.MustCompile(`\.\./`)
)

const maxPathLength = 200

// Content escapes triple-backtick runs so file content cannot terminate a
// fenced code block, and replaces known instruction-override markers with
// [BLOCKED]. Idempotent: sanitizing sanitized text is a no-op.
func Content(s string) string {
	out := tripleBacktick.ReplaceAllString(s, "\\`\\`\\`")
	for _, pattern := range injectionPatterns {
		out = pattern.ReplaceAllString(out, "[BLOCKED]")
	}
	return out
}

// Path strips characters that could break a markdown heading or traverse
// outside the listing, and caps the length. Idempotent: sanitizing a
// sanitized path is a no-op.
func Path(p string) string {
	out := pathStrip.ReplaceAllString(p, "")
	// Removing "../" can splice a new "../" together (e.g. "....//"),
	// so repeat until no match remains.
	for pathTraversal.MatchString(out) {
		out = pathTraversal.ReplaceAllString(out, "")
	}
	if len(out) > maxPathLength {
		out = out[:maxPathLength]
	}
	return out
}
