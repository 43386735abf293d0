package dataset

import (
	"errors"
	"fmt"
	"strings"

	"go-wiktionary-wsd/lib/sense"
	"go-wiktionary-wsd/lib/wikitext"

	"github.com/macdub/go-colorlog"
)

// Logger receives debug traces of dropped examples and quotations.
var Logger = colorlog.New(colorlog.Linfo)

type ExampleRecord struct {
	Text    string `bson:"text"`
	SenseID string `bson:"sense_id"`
}

type QuotationRecord struct {
	Text        string `bson:"text"`
	SenseID     string `bson:"sense_id"`
	Attribution string `bson:"attribution"`
}

// Dataset is the output of post processing: the sense inventory and the
// mention tagged sentences labelled with its identifiers.
type Dataset struct {
	Senses     []sense.Sense
	Examples   []ExampleRecord
	Quotations []QuotationRecord
}

// Stats counts what post processing kept and why it dropped the rest.
type Stats struct {
	Senses     int
	Words      int
	Examples   int
	Quotations int
	Dropped    map[error]int
}

func (s Stats) String() string {
	b := strings.Builder{}
	b.WriteString(fmt.Sprintf("%d senses of %d words, %d examples, %d quotations", s.Senses, s.Words, s.Examples, s.Quotations))
	for _, reason := range mentionErrors {
		if n := s.Dropped[reason]; n > 0 {
			b.WriteString(fmt.Sprintf(", %d dropped: %v", n, reason))
		}
	}
	return b.String()
}

var mentionErrors = []error{
	wikitext.ErrNoMention,
	wikitext.ErrAmbiguousMention,
	wikitext.ErrNoContext,
}

func (s *Stats) drop(err error) {
	for _, reason := range mentionErrors {
		if errors.Is(err, reason) {
			s.Dropped[reason]++
			return
		}
	}
	s.Dropped[err]++
}

// AssignSenseIDs numbers senses per word and collapsed part of speech in the
// order given, e.g. "run.verb.0", "run.verb.1". It must run over the senses of
// the whole dump at once.
func AssignSenseIDs(senses []sense.Sense) {
	next := map[string]int{}
	for i := range senses {
		key := senses[i].Key()
		senses[i].SenseID = fmt.Sprintf("%s.%d", key, next[key])
		next[key]++
	}
}

// PostProcess assigns sense identifiers and moves the examples and quotations
// of every sense into their own collections. Only sentences in which a single
// mention of the sense word can be tagged are kept; senses are kept either
// way.
func PostProcess(senses []sense.Sense) (Dataset, Stats) {
	AssignSenseIDs(senses)

	d := Dataset{Senses: senses}
	stats := Stats{Senses: len(senses), Dropped: map[error]int{}}
	words := map[string]bool{}

	for i := range d.Senses {
		s := &d.Senses[i]
		words[LabelKey(s.SenseID, false)] = true
		word := s.MentionWord()

		for _, q := range s.Quotations {
			text, err := wikitext.NormalizeMention(q.Text, word)
			if err != nil {
				Logger.Debug("%s: dropped quotation: %v\n", s.SenseID, err)
				stats.drop(err)
				continue
			}
			d.Quotations = append(d.Quotations, QuotationRecord{
				Text:        text,
				SenseID:     s.SenseID,
				Attribution: q.Attribution.String(),
			})
		}

		for _, e := range s.Examples {
			text, err := wikitext.NormalizeMention(e, word)
			if err != nil {
				Logger.Debug("%s: dropped example: %v\n", s.SenseID, err)
				stats.drop(err)
				continue
			}
			d.Examples = append(d.Examples, ExampleRecord{Text: text, SenseID: s.SenseID})
		}

		s.Quotations = nil
		s.Examples = nil
	}

	stats.Words = len(words)
	stats.Examples = len(d.Examples)
	stats.Quotations = len(d.Quotations)
	return d, stats
}

// LabelKey reduces a sense identifier to its word, or to word and part of
// speech when withPOS is set: "run.verb.2" gives "run" or "run.verb". The
// word may itself hold dots, so the fields are cut from the right.
func LabelKey(senseID string, withPOS bool) string {
	key := senseID
	if i := strings.LastIndex(key, "."); i >= 0 {
		key = key[:i]
	}
	if withPOS {
		return key
	}
	if i := strings.LastIndex(key, "."); i >= 0 {
		key = key[:i]
	}
	return key
}
