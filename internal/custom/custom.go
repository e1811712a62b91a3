// Package custom holds the user-maintained dictionary: words the user
// added (persisted, script-bucketed, capped) and words ignored for the
// current session only.
package custom

import (
	"log/slog"

	"github.com/kepka-app/lib-spellcheck/internal/locale"
)

// MaxWords caps the persisted dictionary. The add-time comparison is a
// strict greater-than, so one word above the nominal cap slips in; the
// read-time canonicalisation trims back to exactly MaxWords.
const MaxWords = 1300

// Store persists the added words. Implementations absorb I/O failures;
// in-memory state stays authoritative.
type Store interface {
	// Write persists the added words, iterated per bucket in insertion
	// order over scripts.
	Write(buckets *Buckets)
	// Read loads and canonicalises the persisted words.
	Read() *Buckets
}

// Buckets is a script-keyed word map that remembers the order in which
// scripts first appeared. The persistence format depends on that order:
// same-script words form contiguous runs in the file.
type Buckets struct {
	words map[locale.Script][]string
	order []locale.Script
}

func NewBuckets() *Buckets {
	return &Buckets{words: make(map[locale.Script][]string)}
}

func (b *Buckets) Append(script locale.Script, word string) {
	if _, ok := b.words[script]; !ok {
		b.order = append(b.order, script)
	}
	b.words[script] = append(b.words[script], word)
}

func (b *Buckets) SetRun(script locale.Script, words []string) {
	if _, ok := b.words[script]; !ok {
		b.order = append(b.order, script)
	}
	b.words[script] = words
}

func (b *Buckets) Get(script locale.Script) []string {
	return b.words[script]
}

func (b *Buckets) Contains(script locale.Script, word string) bool {
	for _, w := range b.words[script] {
		if w == word {
			return true
		}
	}
	return false
}

// RemoveAll drops every occurrence of word from the script's bucket and
// reports whether anything was removed.
func (b *Buckets) RemoveAll(script locale.Script, word string) bool {
	bucket, ok := b.words[script]
	if !ok {
		return false
	}
	kept := bucket[:0]
	for _, w := range bucket {
		if w != word {
			kept = append(kept, w)
		}
	}
	if len(kept) == len(bucket) {
		return false
	}
	b.words[script] = kept
	return true
}

func (b *Buckets) Total() int {
	n := 0
	for _, ws := range b.words {
		n += len(ws)
	}
	return n
}

// Each visits buckets in script insertion order, words in append order.
func (b *Buckets) Each(fn func(script locale.Script, words []string)) {
	for _, s := range b.order {
		fn(s, b.words[s])
	}
}

// Dictionary combines the persisted added words with the session-only
// ignored words. It is not synchronized; the owning service serializes
// access.
type Dictionary struct {
	added   *Buckets
	ignored *Buckets
	store   Store
	log     *slog.Logger
}

// New loads the persisted words through the store. A nil store keeps the
// dictionary memory-only (used by tests and by hosts without a disk).
func New(store Store, log *slog.Logger) *Dictionary {
	d := &Dictionary{
		added:   NewBuckets(),
		ignored: NewBuckets(),
		store:   store,
		log:     log,
	}
	if store != nil {
		d.added = store.Read()
	}
	return d
}

func (d *Dictionary) Contains(word string) bool {
	return d.added.Contains(locale.WordScript(word), word)
}

func (d *Dictionary) IsIgnored(word string) bool {
	return d.ignored.Contains(locale.WordScript(word), word)
}

// Ignore suppresses the misspelling verdict for this session. Not
// deduplicated and never persisted.
func (d *Dictionary) Ignore(word string) {
	d.ignored.Append(locale.WordScript(word), word)
}

// Add appends the word to its script bucket and persists. Words beyond
// the cap are silently rejected. Duplicates are not collapsed here; they
// collapse on the next canonicalising read.
func (d *Dictionary) Add(word string) {
	if d.added.Total() > MaxWords {
		return
	}
	d.added.Append(locale.WordScript(word), word)
	d.persist()
}

// Remove drops every occurrence of the word and persists. No-op when the
// word is absent.
func (d *Dictionary) Remove(word string) {
	if d.added.RemoveAll(locale.WordScript(word), word) {
		d.persist()
	}
}

// Reload re-reads the persisted words, replacing the added set. Ignored
// words survive a reload.
func (d *Dictionary) Reload() {
	if d.store == nil {
		return
	}
	d.added = d.store.Read()
}

// Words returns a flat snapshot of the added words in persistence order.
func (d *Dictionary) Words() []string {
	out := make([]string, 0, d.added.Total())
	d.added.Each(func(_ locale.Script, words []string) {
		out = append(out, words...)
	})
	return out
}

func (d *Dictionary) persist() {
	if d.store == nil {
		return
	}
	d.store.Write(d.added)
}
