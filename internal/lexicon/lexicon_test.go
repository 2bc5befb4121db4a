package lexicon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Populated(t *testing.T) {
	lex := Default()

	assert.NotEmpty(t, lex.Stopwords)
	assert.NotEmpty(t, lex.DomainVocabulary)
	assert.NotEmpty(t, lex.PhysicalIndicators)
	assert.NotEmpty(t, lex.DigitalIndicators)
	assert.NotEmpty(t, lex.BuyerIntentTerms)
	assert.NotEmpty(t, lex.NonCompanyTitleTerms)
	assert.NotEmpty(t, lex.DomainDenylist)
	assert.NotEmpty(t, lex.IndustryTriggers)
	assert.NotEmpty(t, lex.IndustryRoles)
	assert.NotEmpty(t, lex.LeadershipTitles)
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	lex, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), lex)
}

func TestLoad_OverlayReplacesListsWholesale(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lexicon.yaml")
	overlay := `
stopwords: ["foo", "bar"]
buyer_intent_terms: ["tendering for"]
`
	require.NoError(t, os.WriteFile(path, []byte(overlay), 0o644))

	lex, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"foo", "bar"}, lex.Stopwords)
	assert.Equal(t, []string{"tendering for"}, lex.BuyerIntentTerms)
	// Absent keys keep their defaults.
	assert.Equal(t, Default().DomainDenylist, lex.DomainDenylist)
	assert.Equal(t, Default().IndustryRoles, lex.IndustryRoles)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/does/not/exist.yaml")
	assert.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("stopwords: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestStopwordSet(t *testing.T) {
	set := Default().StopwordSet()
	_, ok := set["the"]
	assert.True(t, ok)
	_, ok = set["bracket"]
	assert.False(t, ok)
}
