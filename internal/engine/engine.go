// Package engine wraps one loaded dictionary pair for a single language
// tag. The engine owns the decoder handle and the codec that marshals
// words between Unicode and the dictionary's declared charset.
package engine

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/kepka-app/lib-spellcheck/internal/dict"
	"github.com/kepka-app/lib-spellcheck/internal/dict/hunspell"
	"github.com/kepka-app/lib-spellcheck/internal/locale"
)

// Engine is language-scoped, not script-scoped: the caller filters by
// script before consulting it. An Engine must not be copied once created;
// it exclusively owns its decoder.
type Engine struct {
	lang    string
	script  locale.Script
	decoder dict.Decoder
	enc     *encoding.Encoder
	dec     *encoding.Decoder
}

// New constructs the engine for a language tag, expecting the dictionary
// pair at <workingDir>/<lang>/<lang>.aff and .dic. Missing files, an empty
// working dir or an unknown charset all yield an invalid engine; callers
// check Valid before use.
func New(workingDir, lang string) *Engine {
	e := &Engine{
		lang:   lang,
		script: locale.LocaleScript(lang),
	}
	if workingDir == "" {
		return e
	}
	base := filepath.Join(workingDir, lang, lang)
	affPath := base + ".aff"
	dicPath := base + ".dic"
	if !isFile(affPath) || !isFile(dicPath) {
		return e
	}
	decoder, err := hunspell.Open(affPath, dicPath)
	if err != nil {
		return e
	}
	cs, err := htmlindex.Get(normalizeCharset(decoder.Encoding()))
	if err != nil {
		_ = decoder.Close()
		return e
	}
	e.decoder = decoder
	e.enc = encoding.ReplaceUnsupported(cs.NewEncoder())
	e.dec = cs.NewDecoder()
	return e
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// normalizeCharset maps Hunspell SET names onto the registry names
// htmlindex understands ("ISO8859-1" vs "iso-8859-1", the legacy
// "microsoft-cp125x" spellings, ...).
func normalizeCharset(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if strings.HasPrefix(name, "iso8859") {
		name = "iso-8859" + strings.TrimPrefix(name, "iso8859")
	}
	if strings.HasPrefix(name, "microsoft-cp") {
		name = "windows-" + strings.TrimPrefix(name, "microsoft-cp")
	}
	return name
}

// Valid is stable for the lifetime of the engine.
func (e *Engine) Valid() bool {
	return e.decoder != nil
}

func (e *Engine) Lang() string {
	return e.lang
}

func (e *Engine) Script() locale.Script {
	return e.script
}

// Spell encodes the word into the dictionary charset and asks the decoder.
// Lossy encoding is non-fatal: the decoder answers on the lossy bytes.
func (e *Engine) Spell(word string) bool {
	raw, err := e.enc.Bytes([]byte(word))
	if err != nil || len(raw) == 0 {
		return false
	}
	return e.decoder.Spell(raw)
}

// Suggest appends corrections to out, never clearing it, until the decoder
// runs dry or out reaches max entries.
func (e *Engine) Suggest(word string, out *[]string, max int) {
	if len(*out) >= max {
		return
	}
	raw, err := e.enc.Bytes([]byte(word))
	if err != nil || len(raw) == 0 {
		return
	}
	for _, guess := range e.decoder.Suggest(raw, max) {
		if len(*out) >= max {
			return
		}
		decoded, err := e.dec.Bytes(guess)
		if err != nil {
			continue
		}
		*out = append(*out, string(decoded))
	}
}

func (e *Engine) Close() error {
	if e.decoder == nil {
		return nil
	}
	err := e.decoder.Close()
	e.decoder = nil
	return err
}
