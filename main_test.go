package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go-wiktionary-wsd/lib/config"
	"go-wiktionary-wsd/lib/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var TestDump = `<mediawiki>
<page>
<title>break</title>
<text xml:space="preserve">==English==
===Verb===
{{en-verb}}
# {{lb|en|transitive}} To [[separate]] into two or more pieces.
#: {{ux|en|If the vase falls to the floor, it might '''break'''.}}
#: {{syn|en|shatter|Thesaurus:break}}
#* {{quote-book|en|year=1850|passage=The wind '''breaks''' the old fence.}}
# To [[stop]] working.
#: {{ux|en|My watch '''broke''' again yesterday.}}
===Noun===
{{en-noun}}
# A pause.
#* 1999, Anon, "We took a short '''break''' after lunch."
==French==
===Noun===
# une pause
</text>
</page>
<page>
<title>Category:Verbs</title>
<text>Nothing here.</text>
</page>
</mediawiki>
`

func TestRun(t *testing.T) {
	dir := t.TempDir()
	wikiFile := filepath.Join(dir, "dump.xml")
	require.Nil(t, os.WriteFile(wikiFile, []byte(TestDump), 0o644))

	cfg := &config.Config{
		WikiFile: wikiFile,
		SaveDir:  filepath.Join(dir, "out"),
		Language: "English",
		Database: filepath.Join(dir, "wsd.db"),
		Verify:   true,
	}
	require.Nil(t, run(context.Background(), cfg, false))

	d, err := dataset.Load(cfg.SaveDir)
	require.Nil(t, err)

	ids := []string{}
	for _, s := range d.Senses {
		ids = append(ids, s.SenseID)
	}
	assert.Equal(t, []string{"break.verb.0", "break.verb.1", "break.noun.0"}, ids)
	assert.Equal(t, []string{"transitive"}, d.Senses[0].Tags)
	assert.Equal(t, []string{"shatter"}, d.Senses[0].Synonyms)

	assert.Equal(t, []dataset.ExampleRecord{
		{Text: "If the vase falls to the floor, it might <WSD>break</WSD>.", SenseID: "break.verb.0"},
	}, d.Examples)
	assert.Equal(t, []dataset.QuotationRecord{
		{Text: "The wind <WSD>breaks</WSD> the old fence.", SenseID: "break.verb.0", Attribution: "quote-book; en; year=1850"},
		{Text: "We took a short <WSD>break</WSD> after lunch.", SenseID: "break.noun.0", Attribution: "1999, Anon,"},
	}, d.Quotations)

	_, err = os.Stat(cfg.Database)
	assert.Nil(t, err)
}

func TestRunMissingFile(t *testing.T) {
	cfg := &config.Config{
		WikiFile: filepath.Join(t.TempDir(), "missing.xml"),
		SaveDir:  t.TempDir(),
	}
	assert.True(t, os.IsNotExist(run(context.Background(), cfg, false)))
}
