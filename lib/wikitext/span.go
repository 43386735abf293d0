package wikitext

import "strings"

const (
	TemplateOpen  = "{{"
	TemplateClose = "}}"
	LinkOpen      = "[["
	LinkClose     = "]]"
	BoldMark      = "'''"

	MentionOpen  = "<WSD>"
	MentionClose = "</WSD>"
)

// Span is a delimited region of a line. End is exclusive and both offsets
// include the delimiters.
type Span struct {
	Start int
	End   int
}

// FindSpan locates the leftmost open...close region of s, closed by the first
// close marker after the opener.
func FindSpan(s, open, close string) (Span, bool) {
	start := strings.Index(s, open)
	if start < 0 {
		return Span{}, false
	}

	end := strings.Index(s[start+len(open):], close)
	if end < 0 {
		return Span{}, false
	}

	return Span{Start: start, End: start + len(open) + end + len(close)}, true
}

// Text returns the span content of s, delimiters included.
func (sp Span) Text(s string) string {
	return s[sp.Start:sp.End]
}

// Replace substitutes the span in s with repl.
func (sp Span) Replace(s, repl string) string {
	return s[:sp.Start] + repl + s[sp.End:]
}

// ReplaceSpans rewrites open...close spans of s one at a time, leftmost first,
// rescanning after every rewrite. The number of rewrites is bounded by the
// openers present before rewriting so a rewrite that produces a new
// opener cannot loop forever.
func ReplaceSpans(s, open, close string, rewrite func(span string) string) string {
	for n := strings.Count(s, open); n > 0; n-- {
		sp, ok := FindSpan(s, open, close)
		if !ok {
			break
		}
		s = sp.Replace(s, rewrite(sp.Text(s)))
	}

	return s
}

// RemoveSpans deletes every open...close region of s.
func RemoveSpans(s, open, close string) string {
	return ReplaceSpans(s, open, close, func(string) string { return "" })
}

// TemplateFields strips every template delimiter from a template span and
// splits what remains on pipes, so "{{lb|en|dated}}" gives lb, en, dated.
func TemplateFields(span string) []string {
	body := strings.ReplaceAll(span, TemplateOpen, "")
	body = strings.ReplaceAll(body, TemplateClose, "")
	return strings.Split(strings.TrimSpace(body), "|")
}

// LastField returns the last pipe separated field of a template or link span.
func LastField(span, open, close string) string {
	body := strings.ReplaceAll(span, open, "")
	body = strings.ReplaceAll(body, close, "")
	fields := strings.Split(strings.TrimSpace(body), "|")
	return fields[len(fields)-1]
}
