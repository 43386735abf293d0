package sense

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"go-wiktionary-wsd/lib/wikitext"

	"golang.org/x/exp/slices"
)

// MinTextLength is the length an example or quotation must exceed.
const MinTextLength = 9

// QuoteSeparator joins a quotation line with its continuation lines.
const QuoteSeparator = "|| QUOTE="

var (
	wikiSenseStart        = regexp.MustCompile(`^#+ `)
	wikiExampleLine       = regexp.MustCompile(`^#*: \{\{(?:ux|usex)`)
	wikiSynonymLine       = regexp.MustCompile(`^#*: \{\{syn`)
	wikiQuotationLine     = regexp.MustCompile(`^#*\* `)
	wikiQuoteContinuation = regexp.MustCompile(`^#*\*:`)
	wikiQuotePrefix       = regexp.MustCompile(`^#*\*:?`)
	wikiListPrefix        = regexp.MustCompile(`^#*: \{\{`)
	wikiLabelTemplate     = regexp.MustCompile(`\{\{lb.*?\}\}`)
	wikiComment           = regexp.MustCompile(`(?:&lt;|<)!--.*?--(?:&gt;|>)`)
	wikiParenthetical     = regexp.MustCompile(`\(.*?\)\.?`)
)

// Gloss is the parsed first line of a sense block.
type Gloss struct {
	Text  string
	Depth int
	Tags  []string
}

// ProcessGloss parses a definition line such as
// "## {{lb|en|colloquial|dated}} To [[break]] apart.".
func ProcessGloss(line string) (Gloss, error) {
	g := Gloss{Depth: len(line) - len(strings.TrimLeft(line, "#"))}
	line = strings.TrimSpace(strings.Trim(line, "#"))

	text := strings.TrimSpace(wikiLabelTemplate.ReplaceAllString(line, ""))
	text = strings.TrimSpace(wikiComment.ReplaceAllString(text, ""))
	g.Text = wikitext.Normalize(text)

	if g.Text == "" {
		return g, ErrEmptyGloss
	}
	if strings.TrimSpace(wikiParenthetical.ReplaceAllString(g.Text, "")) == "" {
		return g, fmt.Errorf("%q: %w", g.Text, ErrTemplateOnlyGloss)
	}

	// {{lb|en|colloquial|dated}}: skip the template name and language code
	if label := wikiLabelTemplate.FindString(line); label != "" {
		fields := wikitext.TemplateFields(label)
		for _, f := range fields[min(2, len(fields)):] {
			g.Tags = append(g.Tags, strings.TrimSpace(f))
		}
	}

	return g, nil
}

// ProcessExample extracts the sentence of a "#: {{ux|en|...}}" line.
func ProcessExample(line string) (string, error) {
	ex := wikiListPrefix.ReplaceAllString(line, "")
	ex = strings.ReplaceAll(ex, wikitext.TemplateClose, "")
	fields := strings.Split(strings.TrimSpace(ex), "|")
	ex = strings.TrimSpace(fields[len(fields)-1])

	if err := checkText(ex); err != nil {
		return "", err
	}
	return ex, nil
}

// ProcessSynonyms extracts the words of a "#: {{syn|en|...}}" line, leaving out
// the language code and thesaurus references.
func ProcessSynonyms(line string) []string {
	syn := wikiListPrefix.ReplaceAllString(line, "")
	syn = strings.ReplaceAll(syn, wikitext.TemplateClose, "")
	fields := strings.Split(syn, "|")[1:]

	if len(fields) > 0 && fields[0] == "en" {
		fields = fields[1:]
	}

	return slices.DeleteFunc(fields, func(s string) bool {
		return strings.Contains(s, "Thesaurus:")
	})
}

// CompressLines folds continuation lines into the line they continue. A
// "#*:" line is the passage of the quotation above it and is appended after
// QuoteSeparator; a line without a list marker is wrapped text and is
// appended as is. Continuations with nothing above them are dropped.
func CompressLines(lines []string) []string {
	compressed := []string{}

	for _, line := range lines {
		last := len(compressed) - 1

		if !strings.HasPrefix(line, "#") {
			if last >= 0 {
				compressed[last] += line
			}
			continue
		}

		if loc := wikiQuoteContinuation.FindStringIndex(line); loc != nil {
			if last >= 0 {
				compressed[last] += " " + QuoteSeparator + strings.TrimSpace(line[loc[1]:])
			}
			continue
		}

		compressed = append(compressed, line)
	}

	return compressed
}

func checkText(s string) error {
	if utf8.RuneCountInString(s) <= MinTextLength {
		return fmt.Errorf("%q: %w", s, ErrTooShort)
	}
	if !strings.Contains(s, " ") {
		return fmt.Errorf("%q: %w", s, ErrNoSpace)
	}
	return nil
}
