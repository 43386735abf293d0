package sense

import (
	"errors"
	"strings"

	"go-wiktionary-wsd/lib/wikitext"

	"github.com/macdub/go-colorlog"
)

// Logger receives debug traces of rejected pages, senses and lines.
var Logger = colorlog.New(colorlog.Linfo)

type PartOfSpeech string

const (
	Noun       PartOfSpeech = "noun"
	Verb       PartOfSpeech = "verb"
	Adjective  PartOfSpeech = "adjective"
	Adverb     PartOfSpeech = "adverb"
	ProperNoun PartOfSpeech = "proper noun"
)

// PartsOfSpeech are the headings whose definitions become senses.
var PartsOfSpeech = []PartOfSpeech{Noun, Verb, Adjective, Adverb, ProperNoun}

// Collapsed folds proper nouns into nouns for sense identifier grouping.
func (p PartOfSpeech) Collapsed() PartOfSpeech {
	if p == ProperNoun {
		return Noun
	}
	return p
}

// Page rejections.
var (
	ErrNoTitle       = errors.New("page has no title")
	ErrNamespacePage = errors.New("namespaced page")
	ErrEmptyPage     = errors.New("page has no text outside of html")
	ErrNoLanguage    = errors.New("page has no section for the language")
	ErrNoSenses      = errors.New("page has no senses")
)

// Sense and line rejections.
var (
	ErrEmptyGloss        = errors.New("empty gloss")
	ErrTemplateOnlyGloss = errors.New("gloss holds only annotations")
	ErrTooShort          = errors.New("text too short")
	ErrNoSpace           = errors.New("text has no space")
	ErrSeeMore           = errors.New("see more quotations marker")
	ErrUnparseable       = errors.New("unrecognised quotation shape")
)

// Attribution is the citation accompanying a quotation. Quotations parsed out
// of templates carry one entry per template field.
type Attribution []string

// String joins the fields on a single line with runs of white space collapsed,
// so it fits one tab separated column.
func (a Attribution) String() string {
	return wikitext.CollapseSpace(strings.Join(a, "; "))
}

type Quotation struct {
	Text        string
	Attribution Attribution
}

// Sense is one meaning of a word for a part of speech. Quotations and
// Examples hold raw text until post processing extracts them.
type Sense struct {
	SenseID  string       `bson:"sense_id"`
	Word     string       `bson:"word"`
	POS      PartOfSpeech `bson:"pos"`
	Gloss    string       `bson:"gloss"`
	Tags     []string     `bson:"tags"`
	Depth    int          `bson:"depth"`
	Synonyms []string     `bson:"synonyms"`

	Quotations []Quotation `bson:"-"`
	Examples   []string    `bson:"-"`
}

// Key is the sense identifier prefix shared by every sense of the same word
// and collapsed part of speech, e.g. "new_york.noun".
func (s *Sense) Key() string {
	return strings.ReplaceAll(strings.ToLower(s.Word), " ", "_") + "." + string(s.POS.Collapsed())
}

// MentionWord is the word component of the sense identifier.
func (s *Sense) MentionWord() string {
	return strings.ReplaceAll(strings.ToLower(s.Word), " ", "_")
}
