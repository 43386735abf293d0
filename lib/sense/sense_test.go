package sense

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePage1(t *testing.T) {
	lines := []string{
		"<title>Run</title>",
		"==English==",
		"===Verb===",
		"# first gloss",
		"# second gloss",
	}

	senses, err := ParsePage(lines, DefaultLanguage)

	require.Nil(t, err)
	require.Len(t, senses, 2)
	assert.Equal(t, "first gloss", senses[0].Gloss)
	assert.Equal(t, "second gloss", senses[1].Gloss)
	for _, s := range senses {
		assert.Equal(t, Verb, s.POS)
		assert.Equal(t, "Run", s.Word)
		assert.Empty(t, s.SenseID)
	}
}

func TestParsePage2(t *testing.T) {
	senses, err := ParsePage(pageLines(TestPageEmblematicize), DefaultLanguage)

	require.Nil(t, err)
	assert.Equal(t, TestPageEmblematicize_parsed, SensesToString(senses))
	require.Len(t, senses[0].Quotations, 1)
	assert.Equal(t,
		Attribution{"RQ:Walpole Painting in England", "volume=IV", "page=60"},
		senses[0].Quotations[0].Attribution,
	)
}

func TestParsePage3(t *testing.T) {
	senses, err := ParsePage(pageLines(TestPageMateriate), DefaultLanguage)

	require.Nil(t, err)
	assert.Equal(t, TestPageMateriate_parsed, SensesToString(senses))
	assert.Equal(t, "RQ:Bacon Sylva Sylvarum", senses[0].Quotations[0].Attribution.String())
}

func TestParsePage4(t *testing.T) {
	// the Latin section has no tracked part of speech
	_, err := ParsePage(pageLines(TestPageMateriate), "Latin")
	assert.ErrorIs(t, err, ErrNoSenses)
}

func TestParsePage5(t *testing.T) {
	senses, err := ParsePage(pageLines(TestPagePhotonSphere), DefaultLanguage)

	require.Nil(t, err)
	require.Len(t, senses, 1)

	s := senses[0]
	assert.Equal(t, Noun, s.POS)
	assert.Equal(t, "A spherical limit around a black hole at which photons travel in a circular orbit.", s.Gloss)
	assert.Equal(t, []string{"of a black hole"}, s.Tags)
	assert.Equal(t, []string{"photon circle", "last photon orbit"}, s.Synonyms)
	assert.Equal(t, []string{"The radius of the '''photon sphere''' is also the lower bound for any stable orbit."}, s.Examples)

	require.Len(t, s.Quotations, 1)
	assert.Equal(t, "The boundary that separates the black hole from the '''photon sphere''' is referred to as the event horizon.", s.Quotations[0].Text)
	assert.Equal(t, "'''2017''', Lori Gardi, ''The Mandelbrot Set as a Quasi-Black Hole'', page 65,", s.Quotations[0].Attribution.String())
}

func TestParsePage6(t *testing.T) {
	// no level 2 headings: the whole page is one section
	lines := []string{
		"<title>kettle</title>",
		"===Noun===",
		"# A vessel for boiling water.",
	}

	senses, err := ParsePage(lines, DefaultLanguage)

	require.Nil(t, err)
	require.Len(t, senses, 1)
	assert.Equal(t, "A vessel for boiling water.", senses[0].Gloss)
}

func TestParsePageRejections(t *testing.T) {
	_, err := ParsePage([]string{"==English==", "# no title"}, DefaultLanguage)
	assert.ErrorIs(t, err, ErrNoTitle)

	_, err = ParsePage([]string{"<title>Wiktionary:Main Page</title>", "# text"}, DefaultLanguage)
	assert.ErrorIs(t, err, ErrNamespacePage)

	_, err = ParsePage([]string{"<title>run</title>", "<ns>0</ns>"}, DefaultLanguage)
	assert.ErrorIs(t, err, ErrEmptyPage)

	_, err = ParsePage([]string{"<title>courir</title>", "==French==", "===Verb===", "# to run"}, DefaultLanguage)
	assert.ErrorIs(t, err, ErrNoLanguage)

	_, err = ParsePage([]string{"<title>run</title>", "==English==", "===Verb===", "# {{rfdef|en}}"}, DefaultLanguage)
	assert.ErrorIs(t, err, ErrNoSenses)
}

func TestPageTitle(t *testing.T) {
	title, err := PageTitle([]string{"<ns>0</ns>", "<title>rock &amp; roll</title>"})
	assert.Nil(t, err)
	assert.Equal(t, "rock & roll", title)
}

func TestSplitLanguages1(t *testing.T) {
	lines := []string{
		"==English==",
		"a",
		"----",
		"b",
		"==French==",
		"c",
		"==English==",
		"d",
	}

	assert.Equal(t, [][]string{{"a"}, {"d"}}, SplitLanguages(lines, "English"))
	assert.Equal(t, [][]string{{"c"}}, SplitLanguages(lines, "French"))
}

func TestSplitLanguages2(t *testing.T) {
	lines := []string{"===Noun===", "# a"}
	assert.Equal(t, [][]string{lines}, SplitLanguages(lines, "English"))
}

func TestSplitPartsOfSpeech(t *testing.T) {
	lines := []string{
		"===Etymology===",
		"From somewhere.",
		"===Proper noun===",
		"{{en-prop}}",
		"# A city.",
		"====Translations====",
		"* French: ville",
		"===Verb===",
		"# To go.",
		"===Conjunction===",
		"# And.",
	}

	blocks := SplitPartsOfSpeech(lines)

	assert.Equal(t, []POSBlock{
		{POS: ProperNoun, Lines: []string{"{{en-prop}}", "# A city."}},
		{POS: Verb, Lines: []string{"# To go."}},
	}, blocks)
}

func TestSplitSenses(t *testing.T) {
	lines := []string{
		"{{en-noun}}",
		"# first",
		"#: {{ux|en|an example line}}",
		"## nested",
		"#* a quotation",
	}

	assert.Equal(t, [][]string{
		{"# first", "#: {{ux|en|an example line}}"},
		{"## nested", "#* a quotation"},
	}, SplitSenses(lines))
}

func TestStripHTML(t *testing.T) {
	lines := []string{
		"<title>x</title>",
		`<text xml:space="preserve">==English==`,
		"a <sup>2</sup> b",
		"end</text>",
	}
	assert.Equal(t, []string{"==English==", "a  b", "end"}, StripHTML(lines))
}

func TestSenseKey(t *testing.T) {
	s := Sense{Word: "New York", POS: ProperNoun}
	assert.Equal(t, "new_york.noun", s.Key())
	assert.Equal(t, "new_york", s.MentionWord())
	assert.Equal(t, ProperNoun, s.POS)
}

func TestAttributionString(t *testing.T) {
	assert.Equal(t, "quote-book; year=2001", Attribution{"quote-book", "year=2001"}.String())
	// tabs and newlines would split the quotations column
	assert.Equal(t, "quote-book x; year=2001", Attribution{"quote-book\tx", "year=2001\n"}.String())
	assert.Equal(t, "", Attribution{}.String())
}
