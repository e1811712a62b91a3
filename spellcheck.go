// Package spellcheck is a multi-language spell-checking facade for
// desktop text fields. It loads one Hunspell-style dictionary per active
// language, routes every word to the dictionaries of its writing script,
// and maintains a user-editable custom dictionary persisted under the
// working directory.
//
// Reads (CheckSpelling, FillSuggestionList, IsWordInDictionary) are
// synchronous; mutations (AddWord, RemoveWord) run on a serial executor
// so callers never wait on disk I/O, in submission order.
package spellcheck

import (
	"log/slog"
	"sync"

	"github.com/kepka-app/lib-spellcheck/internal/locale"
	"github.com/kepka-app/lib-spellcheck/internal/service"
)

// MisspelledWord is a byte range of a misspelled token inside a checked
// text.
type MisspelledWord struct {
	Offset int
	Length int
}

// Options configures a Checker.
type Options struct {
	// WorkingDir holds the dictionary pairs and the custom file.
	WorkingDir string
	// MaxSuggestions caps a suggestion list; zero means the default.
	MaxSuggestions int
	Logger         *slog.Logger
}

// Checker is one spell-checking service instance. Most hosts use the
// package-level functions, which share a lazily built process-wide
// Checker; embedding hosts that need several working directories can hold
// their own.
type Checker struct {
	svc  *service.Service
	exec *executor
}

func New(opts Options) *Checker {
	return &Checker{
		svc: service.New(service.Options{
			WorkingDir:     opts.WorkingDir,
			MaxSuggestions: opts.MaxSuggestions,
			Logger:         opts.Logger,
		}),
		exec: newExecutor(),
	}
}

// CheckSpelling reports whether the word is acceptable: session-ignored,
// user-added, or known to a dictionary of the word's script.
func (c *Checker) CheckSpelling(word string) bool {
	return c.svc.CheckSpelling(word)
}

// FillSuggestionList appends corrections to out without clearing it.
func (c *Checker) FillSuggestionList(word string, out *[]string) {
	c.svc.FillSuggestionList(word, out)
}

// AddWord asynchronously adds the word to the custom dictionary and
// persists it. Words beyond the dictionary cap are silently rejected.
func (c *Checker) AddWord(word string) {
	c.exec.submit(func() { c.svc.AddWord(word) })
}

// RemoveWord asynchronously removes the word from the custom dictionary.
func (c *Checker) RemoveWord(word string) {
	c.exec.submit(func() { c.svc.RemoveWord(word) })
}

// IgnoreWord suppresses the misspelling verdict for this session only.
func (c *Checker) IgnoreWord(word string) {
	c.svc.IgnoreWord(word)
}

func (c *Checker) IsWordInDictionary(word string) bool {
	return c.svc.IsWordInDictionary(word)
}

// UpdateLanguageTags reconciles the loaded dictionaries against the given
// locale tags. Tags without a usable dictionary pair are dropped.
func (c *Checker) UpdateLanguageTags(langs []string) {
	c.svc.UpdateLanguages(langs)
}

// UpdateLanguages is UpdateLanguageTags for hosts that speak numeric
// Windows language ids. Unknown ids are discarded.
func (c *Checker) UpdateLanguages(langIDs []int) {
	langs := make([]string, 0, len(langIDs))
	for _, id := range langIDs {
		if lang := locale.LocaleFromLangId(id); lang != "" {
			langs = append(langs, lang)
		}
	}
	c.svc.UpdateLanguages(langs)
}

func (c *Checker) ActiveLanguages() []string {
	return c.svc.ActiveLanguages()
}

// CheckSpellingText returns the byte ranges of misspelled words in text.
func (c *Checker) CheckSpellingText(text string) []MisspelledWord {
	ranges := c.svc.CheckSpellingText(text)
	out := make([]MisspelledWord, 0, len(ranges))
	for _, r := range ranges {
		out = append(out, MisspelledWord{Offset: r.Offset, Length: r.Length})
	}
	return out
}

// Service exposes the underlying orchestrator for in-process embedders
// such as the local HTTP API.
func (c *Checker) Service() *service.Service {
	return c.svc
}

// Close drains pending mutations and releases every dictionary. The
// Checker must not be used afterwards.
func (c *Checker) Close() {
	c.exec.close()
	c.svc.Close()
}

// Sync blocks until previously submitted mutations have completed.
// Useful around shutdown and in tests; regular callers never need it.
func (c *Checker) Sync() {
	c.exec.barrier()
}

var (
	sharedMu   sync.Mutex
	sharedOpts Options
	sharedInst *Checker
)

// Configure sets the options the process-wide Checker is built with. It
// only takes effect before the first package-level call that touches the
// shared instance.
func Configure(opts Options) {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	sharedOpts = opts
}

func shared() *Checker {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	if sharedInst == nil {
		sharedInst = New(sharedOpts)
	}
	return sharedInst
}

// Init pre-warms the shared Checker off the caller's thread, so the first
// CheckSpelling does not pay for reading the custom dictionary.
func Init() {
	go shared()
}

// IsAvailable reports whether this backend can spell-check at all. It is
// always true here; hosts use it to pick between platform backends.
func IsAvailable() bool {
	return true
}

func CheckSpelling(word string) bool {
	return shared().CheckSpelling(word)
}

func FillSuggestionList(word string, out *[]string) {
	shared().FillSuggestionList(word, out)
}

func AddWord(word string) {
	shared().AddWord(word)
}

func RemoveWord(word string) {
	shared().RemoveWord(word)
}

func IgnoreWord(word string) {
	shared().IgnoreWord(word)
}

func IsWordInDictionary(word string) bool {
	return shared().IsWordInDictionary(word)
}

func UpdateLanguages(langIDs []int) {
	shared().UpdateLanguages(langIDs)
}

func ActiveLanguages() []string {
	return shared().ActiveLanguages()
}

func CheckSpellingText(text string) []MisspelledWord {
	return shared().CheckSpellingText(text)
}
