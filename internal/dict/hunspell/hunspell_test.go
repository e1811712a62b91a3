package hunspell

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writePair(t *testing.T, aff, dic string) (affPath, dicPath string) {
	t.Helper()
	dir := t.TempDir()
	affPath = filepath.Join(dir, "test.aff")
	dicPath = filepath.Join(dir, "test.dic")
	require.NoError(t, os.WriteFile(affPath, []byte(aff), 0o644))
	require.NoError(t, os.WriteFile(dicPath, []byte(dic), 0o644))
	return affPath, dicPath
}

func TestOpenAndSpell(t *testing.T) {
	aff, dic := writePair(t, "SET UTF-8\nTRY esianrtolcdugmphbyfvkwzESIANRTOLCDUGMPHBYFVKWZ\n", "4\nhello\nworld/AB\nfoo\tpo:noun\nBerlin\n")
	d, err := Open(aff, dic)
	require.NoError(t, err)
	require.Equal(t, "UTF-8", d.Encoding())

	require.True(t, d.Spell([]byte("hello")))
	// Affix flags and morphology are stripped from entries.
	require.True(t, d.Spell([]byte("world")))
	require.True(t, d.Spell([]byte("foo")))
	require.False(t, d.Spell([]byte("nope")))
	require.False(t, d.Spell([]byte("")))
}

func TestSpellCaseFallback(t *testing.T) {
	aff, dic := writePair(t, "SET UTF-8\n", "2\nhello\nBerlin\n")
	d, err := Open(aff, dic)
	require.NoError(t, err)

	// Sentence-initial capitals match the lower-cased entry.
	require.True(t, d.Spell([]byte("Hello")))
	require.True(t, d.Spell([]byte("HELLO")))
	require.True(t, d.Spell([]byte("Berlin")))
	// But a cased entry does not accept its lower-cased form.
	require.False(t, d.Spell([]byte("berlin")))
}

func TestDefaultEncoding(t *testing.T) {
	aff, dic := writePair(t, "# no SET line\n", "1\nword\n")
	d, err := Open(aff, dic)
	require.NoError(t, err)
	require.Equal(t, "ISO8859-1", d.Encoding())
}

func TestSuggest(t *testing.T) {
	aff, dic := writePair(t, "SET UTF-8\n", "4\nhello\nhells\nhelp\nworld\n")
	d, err := Open(aff, dic)
	require.NoError(t, err)

	got := d.Suggest([]byte("helo"), 5)
	require.NotEmpty(t, got)
	require.Equal(t, "hello", string(got[0]))
	for _, g := range got {
		require.NotEqual(t, "world", string(g))
	}
}

func TestSuggestCap(t *testing.T) {
	aff, dic := writePair(t, "SET UTF-8\n", "5\nword\nware\nwore\nwire\nwars\n")
	d, err := Open(aff, dic)
	require.NoError(t, err)

	got := d.Suggest([]byte("word"), 2)
	require.Len(t, got, 2)
	require.Empty(t, d.Suggest([]byte("word"), 0))
}

func TestSuggestTryEdits(t *testing.T) {
	// "a" scores too low against every entry, but the TRY alphabet
	// recovers "an" with a single insertion.
	aff, dic := writePair(t, "SET UTF-8\nTRY abcdefghijklmnopqrstuvwxyz\n", "2\nan\nconstellation\n")
	d, err := Open(aff, dic)
	require.NoError(t, err)

	got := d.Suggest([]byte("a"), 5)
	require.NotEmpty(t, got)
	require.Equal(t, "an", string(got[0]))
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Open(filepath.Join(dir, "no.aff"), filepath.Join(dir, "no.dic"))
	require.Error(t, err)

	aff, dic := writePair(t, "SET UTF-8\n", "0\n")
	_, err = Open(aff, dic)
	require.Error(t, err, "empty word list")
}
