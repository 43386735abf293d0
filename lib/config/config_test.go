package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.Nil(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const testYAML = `
wiki_file: "/data/enwiktionary.xml.bz2"
save_dir: "/data/wsd"
language: "German"
database: "/data/wsd.sqlite"
verbose: true
`

func TestLoad1(t *testing.T) {
	cfg, err := Load(writeYAML(t, testYAML))

	require.Nil(t, err)
	assert.Equal(t, "/data/enwiktionary.xml.bz2", cfg.WikiFile)
	assert.Equal(t, "/data/wsd", cfg.SaveDir)
	assert.Equal(t, "German", cfg.Language)
	assert.Equal(t, "/data/wsd.sqlite", cfg.Database)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "wiktionary", cfg.MongoDatabase)
	assert.Equal(t, "wsd", cfg.MongoCollection)
	assert.Nil(t, cfg.Validate())
}

func TestLoad2(t *testing.T) {
	t.Setenv("WSD_LANGUAGE", "French")

	cfg, err := Load(writeYAML(t, testYAML))

	require.Nil(t, err)
	assert.Equal(t, "French", cfg.Language)
}

func TestLoad3(t *testing.T) {
	t.Setenv("WSD_WIKI_FILE", "dump.xml")

	cfg, err := Load("")

	require.Nil(t, err)
	assert.Equal(t, "dump.xml", cfg.WikiFile)
	assert.Equal(t, "English", cfg.Language)
	assert.ErrorIs(t, cfg.Validate(), ErrNoSaveDir)
}

func TestLoad4(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NotNil(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Config{SaveDir: "out"}
	assert.ErrorIs(t, cfg.Validate(), ErrNoWikiFile)
}
