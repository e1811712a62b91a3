// Package service orchestrates the spell-check core: it owns the
// per-language engines and the custom dictionary and routes every word by
// its writing script. All state is guarded by one reader/writer lock, so
// synchronous reads and queued mutations can share the service safely.
package service

import (
	"log/slog"
	"sync"
	"time"

	"github.com/kepka-app/lib-spellcheck/internal/cache"
	"github.com/kepka-app/lib-spellcheck/internal/custom"
	"github.com/kepka-app/lib-spellcheck/internal/engine"
	"github.com/kepka-app/lib-spellcheck/internal/locale"
	"github.com/kepka-app/lib-spellcheck/internal/observability"
)

// DefaultMaxSuggestions bounds a suggestion list when the host supplies no
// limit of its own.
const DefaultMaxSuggestions = 9

type Service struct {
	mu     sync.RWMutex
	byLang map[string]*engine.Engine
	order  []*engine.Engine

	words       *custom.Dictionary
	suggestions *cache.Cache

	workingDir     string
	maxSuggestions int
	log            *slog.Logger
}

type Options struct {
	// WorkingDir holds the dictionary pairs and the custom file. Empty
	// keeps the service memory-only: every engine is invalid and the
	// custom dictionary is not persisted.
	WorkingDir     string
	MaxSuggestions int
	Logger         *slog.Logger
}

func New(opts Options) *Service {
	if opts.MaxSuggestions <= 0 {
		opts.MaxSuggestions = DefaultMaxSuggestions
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	var store custom.Store
	if opts.WorkingDir != "" {
		store = custom.NewFileStore(opts.WorkingDir, opts.Logger)
	}
	return &Service{
		byLang:         make(map[string]*engine.Engine),
		words:          custom.New(store, opts.Logger),
		suggestions:    cache.New(512, 5*time.Minute),
		workingDir:     opts.WorkingDir,
		maxSuggestions: opts.MaxSuggestions,
		log:            opts.Logger,
	}
}

// UpdateLanguages reconciles the engine set against the wanted language
// tags: engines for dropped tags are closed, missing tags get a fresh
// engine, and engines that fail to load are dropped silently.
func (s *Service) UpdateLanguages(langs []string) {
	wanted := make(map[string]struct{}, len(langs))
	for _, lang := range langs {
		wanted[lang] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.order[:0]
	for _, e := range s.order {
		if _, ok := wanted[e.Lang()]; ok {
			kept = append(kept, e)
			continue
		}
		delete(s.byLang, e.Lang())
		_ = e.Close()
		s.log.Info("dictionary unloaded", "lang", e.Lang())
	}
	s.order = kept

	for _, lang := range langs {
		if _, ok := s.byLang[lang]; ok {
			continue
		}
		e := engine.New(s.workingDir, lang)
		observability.EngineLoadsTotal.Add(1)
		if !e.Valid() {
			observability.EngineLoadFailures.Add(1)
			s.log.Warn("dictionary unavailable", "lang", lang)
			continue
		}
		s.byLang[lang] = e
		s.order = append(s.order, e)
		s.log.Info("dictionary loaded", "lang", lang, "script", e.Script().String())
	}

	s.suggestions.Purge()
}

// ReloadLanguage rebuilds one engine in place after its dictionary pair
// changed on disk. The engine is dropped if the new pair does not load.
func (s *Service) ReloadLanguage(lang string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, ok := s.byLang[lang]
	if !ok {
		return
	}
	fresh := engine.New(s.workingDir, lang)
	if !fresh.Valid() {
		delete(s.byLang, lang)
		for i, e := range s.order {
			if e == old {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		_ = old.Close()
		s.log.Warn("dictionary dropped on reload", "lang", lang)
		s.suggestions.Purge()
		return
	}
	s.byLang[lang] = fresh
	for i, e := range s.order {
		if e == old {
			s.order[i] = fresh
			break
		}
	}
	_ = old.Close()
	s.suggestions.Purge()
	s.log.Info("dictionary reloaded", "lang", lang)
}

// ReloadCustom re-reads the custom dictionary file, picking up external
// edits.
func (s *Service) ReloadCustom() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.words.Reload()
}

// ActiveLanguages lists the tags of the loaded engines. Nil slots are
// skipped defensively; hot-reload can transiently clear one.
func (s *Service) ActiveLanguages() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.order))
	for _, e := range s.order {
		if e == nil {
			continue
		}
		out = append(out, e.Lang())
	}
	return out
}

// CheckSpelling accepts a word when it is session-ignored, user-added, or
// known to some engine of the word's own script. Engines of other scripts
// are never consulted: a Russian word sent to an English dictionary could
// only produce a false verdict.
func (s *Service) CheckSpelling(word string) bool {
	observability.SpellChecksTotal.Add(1)

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.words.IsIgnored(word) || s.words.Contains(word) {
		return true
	}
	script := locale.WordScript(word)
	for _, e := range s.order {
		if e.Script() != script {
			continue
		}
		if e.Spell(word) {
			return true
		}
	}
	observability.SpellMissesTotal.Add(1)
	return false
}

// FillSuggestionList appends corrections for the word to out, consulting
// only engines of the word's script, until out holds maxSuggestions
// entries. out is a sink: it is never cleared or deduplicated.
func (s *Service) FillSuggestionList(word string, out *[]string) {
	observability.SuggestsTotal.Add(1)
	if len(*out) >= s.maxSuggestions {
		return
	}

	for _, guess := range s.suggestionsFor(word) {
		if len(*out) >= s.maxSuggestions {
			return
		}
		*out = append(*out, guess)
	}
}

func (s *Service) suggestionsFor(word string) []string {
	if v, ok := s.suggestions.Get(word); ok {
		return v.([]string)
	}

	s.mu.RLock()
	script := locale.WordScript(word)
	gathered := make([]string, 0, s.maxSuggestions)
	for _, e := range s.order {
		if e.Script() != script {
			continue
		}
		if len(gathered) >= s.maxSuggestions {
			break
		}
		e.Suggest(word, &gathered, s.maxSuggestions)
	}
	s.mu.RUnlock()

	s.suggestions.Set(word, gathered)
	return gathered
}

func (s *Service) AddWord(word string) {
	observability.WordsAddedTotal.Add(1)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.words.Add(word)
}

func (s *Service) RemoveWord(word string) {
	observability.WordsRemovedTotal.Add(1)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.words.Remove(word)
}

func (s *Service) IgnoreWord(word string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.words.Ignore(word)
}

func (s *Service) IsWordInDictionary(word string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.words.Contains(word)
}

// CustomWords snapshots the persisted custom dictionary for the local API.
func (s *Service) CustomWords() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.words.Words()
}

// CheckSpellingText tokenizes the text and returns the byte ranges of
// misspelled words. Skippable tokens never count as misspelled.
func (s *Service) CheckSpellingText(text string) []locale.WordRange {
	return locale.RangesFromText(text, s.CheckSpelling)
}

// Close releases every engine. The service must not be used afterwards.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.order {
		_ = e.Close()
	}
	s.order = nil
	s.byLang = make(map[string]*engine.Engine)
}
