package sense

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"go-wiktionary-wsd/lib/wikitext"

	"github.com/golang-collections/collections/set"
)

// DefaultLanguage is the language section parsed when none is configured.
const DefaultLanguage = "English"

// PageSeparator ends a language section early.
const PageSeparator = "----"

var (
	wikiTitle     = regexp.MustCompile(`<title>(.*?)</title>`)
	wikiNamespace = regexp.MustCompile(`^[\p{L}\p{N}_]*:`)
	htmlElement   = regexp.MustCompile(`<.*?>.*?</.*?>`)
	htmlTag       = regexp.MustCompile(`<.*?>`)

	trackedPartsOfSpeech = newPartOfSpeechSet()
)

func newPartOfSpeechSet() *set.Set {
	s := set.New()
	for _, p := range PartsOfSpeech {
		s.Insert(p)
	}
	return s
}

// POSBlock holds the lines under one part of speech heading.
type POSBlock struct {
	POS   PartOfSpeech
	Lines []string
}

// ParsePage turns the buffered lines of one <page> into the senses of its
// language section. Pages that yield nothing return one of the page errors.
func ParsePage(lines []string, language string) ([]Sense, error) {
	title, err := PageTitle(lines)
	if err != nil {
		return nil, err
	}
	if wikiNamespace.MatchString(title) {
		return nil, fmt.Errorf("%s: %w", title, ErrNamespacePage)
	}

	lines = StripHTML(lines)
	if len(lines) == 0 {
		return nil, fmt.Errorf("%s: %w", title, ErrEmptyPage)
	}

	blocks := SplitLanguages(lines, language)
	if len(blocks) == 0 {
		return nil, fmt.Errorf("%s: %w", title, ErrNoLanguage)
	}

	sb := SenseBuilder{}
	sb.SetWord(title)
	for _, block := range blocks {
		for _, posBlock := range SplitPartsOfSpeech(block) {
			sb.SetPartOfSpeech(posBlock.POS)
			for _, senseBlock := range SplitSenses(posBlock.Lines) {
				if err := sb.AddSenseBlock(senseBlock); err != nil {
					Logger.Debug("%s: skipped sense: %v\n", title, err)
				}
			}
		}
	}

	senses := sb.Build()
	if len(senses) == 0 {
		return nil, fmt.Errorf("%s: %w", title, ErrNoSenses)
	}
	return senses, nil
}

// PageTitle returns the entity decoded content of the first <title> element.
func PageTitle(lines []string) (string, error) {
	for _, line := range lines {
		if m := wikiTitle.FindStringSubmatch(line); m != nil {
			return html.UnescapeString(m[1]), nil
		}
	}
	return "", ErrNoTitle
}

// StripHTML removes tags and tag delimited spans from every line and drops
// the lines left empty.
func StripHTML(lines []string) []string {
	stripped := []string{}
	for _, line := range lines {
		line = htmlElement.ReplaceAllString(line, "")
		line = strings.TrimSpace(htmlTag.ReplaceAllString(line, ""))
		if len(line) > 0 {
			stripped = append(stripped, line)
		}
	}
	return stripped
}

// SplitLanguages returns the sections of the page headed by ==language==. A
// section ends at the next level 2 heading, a "----" line or the end of the
// page. A page without level 2 headings is one section of the language.
func SplitLanguages(lines []string, language string) [][]string {
	if !hasLanguageSections(lines) {
		return [][]string{lines}
	}

	var blocks [][]string
	var current []string
	inLanguage := false

	flush := func() {
		if inLanguage {
			blocks = append(blocks, current)
		}
		inLanguage = false
		current = nil
	}

	for _, line := range lines {
		if h, ok := wikitext.ParseHeading(line); ok && h.IsSection(2) {
			flush()
			inLanguage = h.Name == language
			continue
		}
		if line == PageSeparator {
			flush()
			continue
		}
		if inLanguage {
			current = append(current, line)
		}
	}
	flush()

	return blocks
}

func hasLanguageSections(lines []string) bool {
	for _, line := range lines {
		if h, ok := wikitext.ParseHeading(line); ok && h.IsSection(2) {
			return true
		}
	}
	return false
}

// SplitPartsOfSpeech partitions a language section by heading. Only headings
// naming a tracked part of speech open a block; any other heading closes the
// open one, so etymology and pronunciation sections are skipped.
func SplitPartsOfSpeech(lines []string) []POSBlock {
	var blocks []POSBlock
	var current *POSBlock

	flush := func() {
		if current != nil && len(current.Lines) > 0 {
			blocks = append(blocks, *current)
		}
		current = nil
	}

	for _, line := range lines {
		h, ok := wikitext.ParseHeading(line)
		if !ok {
			if current != nil {
				current.Lines = append(current.Lines, line)
			}
			continue
		}

		flush()
		pos := PartOfSpeech(strings.ToLower(h.Name))
		if trackedPartsOfSpeech.Has(pos) {
			current = &POSBlock{POS: pos}
		}
	}
	flush()

	return blocks
}

// SplitSenses groups the lines of a part of speech block into sense blocks,
// each opened by a definition line. Lines before the first definition, such
// as the headword template, are dropped.
func SplitSenses(lines []string) [][]string {
	var blocks [][]string
	for _, line := range lines {
		if wikiSenseStart.MatchString(line) {
			blocks = append(blocks, []string{line})
			continue
		}
		if last := len(blocks) - 1; last >= 0 {
			blocks[last] = append(blocks[last], line)
		}
	}
	return blocks
}
