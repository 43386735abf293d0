package sense

import (
	"errors"
	"strings"
)

// SenseBuilder collects the senses of one page in document order.
type SenseBuilder struct {
	word                string
	currentPartOfSpeech PartOfSpeech
	currentSense        *Sense
	senses              []Sense
}

func (sb *SenseBuilder) SetWord(w string) {
	sb.word = w
}

func (sb *SenseBuilder) SetPartOfSpeech(p PartOfSpeech) {
	sb.saveSense()
	sb.currentPartOfSpeech = p
}

// StartSense opens a new sense from its definition line. A rejected gloss
// leaves no sense open, so the lines that follow it are ignored.
func (sb *SenseBuilder) StartSense(line string) error {
	sb.saveSense()

	g, err := ProcessGloss(line)
	if err != nil {
		return err
	}

	sb.currentSense = &Sense{
		Word:  sb.word,
		POS:   sb.currentPartOfSpeech,
		Gloss: g.Text,
		Tags:  g.Tags,
		Depth: g.Depth,
	}
	return nil
}

func (sb *SenseBuilder) AddExample(e string) {
	if sb.currentSense != nil {
		sb.currentSense.Examples = append(sb.currentSense.Examples, e)
	}
}

func (sb *SenseBuilder) AddSynonyms(s []string) {
	if sb.currentSense != nil {
		sb.currentSense.Synonyms = append(sb.currentSense.Synonyms, s...)
	}
}

func (sb *SenseBuilder) AddQuotation(q Quotation) {
	if sb.currentSense != nil {
		sb.currentSense.Quotations = append(sb.currentSense.Quotations, q)
	}
}

func (sb *SenseBuilder) saveSense() {
	if sb.currentSense != nil {
		sb.senses = append(sb.senses, *sb.currentSense)
	}
	sb.currentSense = nil
}

func (sb *SenseBuilder) Build() []Sense {
	sb.saveSense()
	return sb.senses
}

// AddSenseBlock parses a sense block: its definition line followed by the
// example, synonym and quotation lines that belong to it. Rejected lines are
// logged and skipped; a rejected definition drops the whole block.
func (sb *SenseBuilder) AddSenseBlock(block []string) error {
	if len(block) == 0 {
		return ErrEmptyGloss
	}

	if err := sb.StartSense(block[0]); err != nil {
		return err
	}

	for _, line := range CompressLines(block[1:]) {
		var err error
		switch {
		case wikiExampleLine.MatchString(line):
			var ex string
			if ex, err = ProcessExample(line); err == nil {
				sb.AddExample(ex)
			}
		case wikiSynonymLine.MatchString(line):
			sb.AddSynonyms(ProcessSynonyms(line))
		case wikiQuotationLine.MatchString(line):
			var q Quotation
			if q, err = ProcessQuotation(line); err == nil {
				sb.AddQuotation(q)
			}
		}

		if err != nil && !errors.Is(err, ErrSeeMore) {
			Logger.Debug("%s: skipped line %s: %v\n", sb.word, truncate(line, 60), err)
		}
	}

	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return strings.ToValidUTF8(s[:n], "") + "..."
}
