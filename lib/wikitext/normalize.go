package wikitext

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// MinMentionRatio is the share of a bold span that must overlap the target
// word before the span counts as a mention. The comparison is strict.
const MinMentionRatio = 0.5

var (
	wikiCategory   = regexp.MustCompile(`\[\[Category:.*?\]\]`)
	wikiFile       = regexp.MustCompile(`\[\[File:.*?\]\]`)
	wikiUsageNotes = regexp.MustCompile(`/ :*? '''Usage.*$`)
	htmlBreak      = regexp.MustCompile(`<br/?>`)

	entityRewrites = []struct{ old, new string }{
		{"&lt;", "<"},
		{"&gt;", ">"},
		{"&amp;", "&"},
		{"&nbsp;", " "},
		{"&emsp;", " "},
		{"&hellip;", "..."},
		{"<math>", ""},
		{"</math>", ""},
		{"<sup>", ""},
		{"</sup>", ""},
		{`\forall`, "∀"},
		{`\exists`, "∃"},
		{`\pi`, "π"},
		{`\dot`, "·"},
	}

	quoteRewrites = strings.NewReplacer(
		"’", "'",
		"‘", "'",
		"“", `"`,
		"”", `"`,
		"&quot;", `"`,
		"&ldquo;", `"`,
		"&rdquo;", `"`,
	)
)

// Step is one pure rewrite of the cleaning pipeline.
type Step func(string) string

// cleanSteps run in this order for every text, with or without a target word.
var cleanSteps = []Step{
	StripMetadata,
	DecodeEntities,
	ResolveTemplates,
	ResolveLinks,
	DropBrackets,
}

// finishSteps run after mention tagging.
var finishSteps = []Step{
	NormalizeQuotes,
	CollapseSpace,
}

func apply(text string, steps ...Step) string {
	for _, step := range steps {
		text = step(text)
	}
	return text
}

// Normalize flattens a line of wikitext to plain text.
func Normalize(text string) string {
	text = apply(text, cleanSteps...)
	return apply(text, finishSteps...)
}

// NormalizeMention flattens text like Normalize and wraps the bold span that
// refers to word in mention markers. word may use underscores for spaces, as
// in a sense identifier. The text is rejected unless exactly one span was
// tagged and some spaced context remains outside of it.
func NormalizeMention(text, word string) (string, error) {
	text = apply(text, cleanSteps...)
	text = MarkMentions(word)(text)
	text = apply(text, finishSteps...)

	switch n := strings.Count(text, MentionOpen); {
	case n == 0:
		return "", ErrNoMention
	case n > 1:
		return "", fmt.Errorf("%d spans: %w", n, ErrAmbiguousMention)
	}

	context := RemoveSpans(text, MentionOpen, MentionClose)
	if !strings.Contains(context, " ") {
		return "", ErrNoContext
	}

	return text, nil
}

// StripMetadata drops category and file links and a trailing usage notes tail.
func StripMetadata(text string) string {
	text = wikiCategory.ReplaceAllString(text, "")
	text = wikiFile.ReplaceAllString(text, "")
	return wikiUsageNotes.ReplaceAllString(text, "")
}

// DecodeEntities turns the handful of HTML entities and math macros found in
// quotations into literal characters and line breaks into "/ ".
func DecodeEntities(text string) string {
	for _, r := range entityRewrites {
		text = strings.ReplaceAll(text, r.old, r.new)
	}
	return htmlBreak.ReplaceAllLiteralString(text, "/ ")
}

// ResolveTemplates replaces each {{...}} span with its last field in parentheses.
func ResolveTemplates(text string) string {
	return ReplaceSpans(text, TemplateOpen, TemplateClose, func(span string) string {
		return "(" + LastField(span, TemplateOpen, TemplateClose) + ")"
	})
}

// ResolveLinks replaces each [[...]] span with its display text.
func ResolveLinks(text string) string {
	return ReplaceSpans(text, LinkOpen, LinkClose, func(span string) string {
		return LastField(span, LinkOpen, LinkClose)
	})
}

// DropBrackets removes unbalanced template and link delimiters.
func DropBrackets(text string) string {
	for _, d := range []string{LinkOpen, LinkClose, TemplateOpen, TemplateClose} {
		text = strings.ReplaceAll(text, d, "")
	}
	return text
}

// MarkMentions returns the step that resolves bold spans against word: spans
// that overlap it enough are wrapped in mention markers, the others lose
// their bold markup.
func MarkMentions(word string) Step {
	word = strings.ReplaceAll(word, "_", " ")
	return func(text string) string {
		return ReplaceSpans(text, BoldMark, BoldMark, func(span string) string {
			value := strings.ReplaceAll(span, BoldMark, "")
			if IsMention(value, word) {
				return MentionOpen + value + MentionClose
			}
			return value
		})
	}
}

// IsMention reports whether the bold span value refers to word.
func IsMention(value, word string) bool {
	n := utf8.RuneCountInString(value)
	if n == 0 {
		return false
	}

	overlap := utf8.RuneCountInString(LCS(strings.ToLower(value), word))
	return ExceedsMentionRatio(overlap, n)
}

// ExceedsMentionRatio reports whether overlap/length is strictly above MinMentionRatio.
func ExceedsMentionRatio(overlap, length int) bool {
	return float64(overlap)/float64(length) > MinMentionRatio
}

// NormalizeQuotes straightens curly quotes and turns a pair of single quotes
// that is not part of a longer run into a double quote.
func NormalizeQuotes(text string) string {
	return DoubleQuotePairs(quoteRewrites.Replace(text))
}

// DoubleQuotePairs rewrites every run of exactly two apostrophes as '"'.
// Runs of any other length are left alone.
func DoubleQuotePairs(text string) string {
	if !strings.Contains(text, "''") {
		return text
	}

	b := strings.Builder{}
	for i := 0; i < len(text); {
		if text[i] != '\'' {
			b.WriteByte(text[i])
			i++
			continue
		}

		j := i
		for j < len(text) && text[j] == '\'' {
			j++
		}
		if j-i == 2 {
			b.WriteByte('"')
		} else {
			b.WriteString(text[i:j])
		}
		i = j
	}

	return b.String()
}

// CollapseSpace trims text and squeezes internal whitespace to single spaces.
func CollapseSpace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
