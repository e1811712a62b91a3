package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/kepka-app/lib-spellcheck/internal/locale"
)

func writeDictionary(t *testing.T, dir, lang, aff string, words []string) {
	t.Helper()
	langDir := filepath.Join(dir, lang)
	require.NoError(t, os.MkdirAll(langDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(langDir, lang+".aff"), []byte(aff), 0o644))
	dic := ""
	for _, w := range words {
		dic += w + "\n"
	}
	require.NoError(t, os.WriteFile(filepath.Join(langDir, lang+".dic"), []byte(dic), 0o644))
}

func TestNewValid(t *testing.T) {
	dir := t.TempDir()
	writeDictionary(t, dir, "en_US", "SET UTF-8\n", []string{"hello", "world"})

	e := New(dir, "en_US")
	require.True(t, e.Valid())
	require.Equal(t, "en_US", e.Lang())
	require.Equal(t, locale.ScriptLatin, e.Script())
	require.True(t, e.Spell("hello"))
	require.False(t, e.Spell("привет"))
	require.NoError(t, e.Close())
}

func TestNewInvalid(t *testing.T) {
	dir := t.TempDir()

	// Empty working dir.
	require.False(t, New("", "en_US").Valid())
	// Missing dictionary pair.
	require.False(t, New(dir, "xx_YY").Valid())

	// Unknown charset.
	writeDictionary(t, dir, "de_DE", "SET NO-SUCH-CHARSET\n", []string{"hallo"})
	require.False(t, New(dir, "de_DE").Valid())
}

func TestInvalidEngineScriptStillDerived(t *testing.T) {
	e := New("", "ru_RU")
	require.False(t, e.Valid())
	require.Equal(t, locale.ScriptCyrillic, e.Script())
	require.NoError(t, e.Close())
}

func TestKOI8REncoding(t *testing.T) {
	koi8, err := htmlindex.Get("koi8-r")
	require.NoError(t, err)
	enc := koi8.NewEncoder()
	word, err := enc.String("привет")
	require.NoError(t, err)

	dir := t.TempDir()
	writeDictionary(t, dir, "ru_RU", "SET KOI8-R\n", []string{word})

	e := New(dir, "ru_RU")
	require.True(t, e.Valid())
	require.True(t, e.Spell("привет"))
	require.False(t, e.Spell("превет"))

	var out []string
	e.Suggest("превет", &out, 5)
	require.Contains(t, out, "привет")
}

func TestSuggestAppendsUpToMax(t *testing.T) {
	dir := t.TempDir()
	writeDictionary(t, dir, "en_US", "SET UTF-8\n", []string{"word", "wore", "ward", "wordy"})

	e := New(dir, "en_US")
	require.True(t, e.Valid())

	out := []string{"existing"}
	e.Suggest("word", &out, 3)
	require.Equal(t, "existing", out[0])
	require.LessOrEqual(t, len(out), 3)
	require.Greater(t, len(out), 1)

	// A full sink stays untouched.
	full := []string{"a", "b", "c"}
	e.Suggest("word", &full, 3)
	require.Equal(t, []string{"a", "b", "c"}, full)
}

func TestCharsetNormalization(t *testing.T) {
	dir := t.TempDir()
	writeDictionary(t, dir, "fr_FR", "SET ISO8859-1\n", []string{"bonjour"})

	e := New(dir, "fr_FR")
	require.True(t, e.Valid())
	require.True(t, e.Spell("bonjour"))
}
