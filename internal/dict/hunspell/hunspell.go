// Package hunspell reads Hunspell-style dictionary pairs: an .aff file
// declaring the entry charset and an accompanying .dic word list. Affix
// expansion is not performed; entries are matched as written, with affix
// flags and morphological fields stripped.
package hunspell

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/agext/levenshtein"
)

// Hunspell defaults to ISO8859-1 when the .aff carries no SET line.
const defaultEncoding = "ISO8859-1"

// Decoder holds one loaded word list. Entries stay in the encoding the
// dictionary declared; the engine converts at its boundary.
type Decoder struct {
	encoding string
	tryChars string
	words    map[string]struct{}
	sorted   []string
}

// Open loads a dictionary pair. Errors out rather than guessing when
// either file is unreadable; the engine maps that to the invalid state.
func Open(affPath, dicPath string) (*Decoder, error) {
	enc, try, err := readAff(affPath)
	if err != nil {
		return nil, fmt.Errorf("read aff: %w", err)
	}
	words, err := readDic(dicPath)
	if err != nil {
		return nil, fmt.Errorf("read dic: %w", err)
	}
	if len(words) == 0 {
		return nil, errors.New("empty word list")
	}
	sorted := make([]string, 0, len(words))
	for w := range words {
		sorted = append(sorted, w)
	}
	sort.Strings(sorted)
	return &Decoder{
		encoding: enc,
		tryChars: try,
		words:    words,
		sorted:   sorted,
	}, nil
}

func readAff(path string) (encoding, try string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", "", err
	}
	defer f.Close()

	encoding = defaultEncoding
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, "SET "):
			encoding = strings.TrimSpace(strings.TrimPrefix(line, "SET "))
		case strings.HasPrefix(line, "TRY "):
			try = strings.TrimSpace(strings.TrimPrefix(line, "TRY "))
		}
	}
	return encoding, try, scanner.Err()
}

func readDic(path string) (map[string]struct{}, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	words := make(map[string]struct{})
	scanner := bufio.NewScanner(f)
	first := true
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		if first {
			first = false
			// The optional header is a bare entry count.
			if isCount(line) {
				continue
			}
		}
		// Affix flags follow a slash, morphology follows a tab.
		if i := bytes.IndexByte(line, '/'); i >= 0 {
			line = line[:i]
		}
		if i := bytes.IndexByte(line, '\t'); i >= 0 {
			line = line[:i]
		}
		if len(line) == 0 {
			continue
		}
		words[string(line)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

func isCount(line []byte) bool {
	for _, b := range line {
		if b < '0' || b > '9' {
			return false
		}
	}
	return true
}

func (d *Decoder) Encoding() string {
	return d.encoding
}

func (d *Decoder) Spell(word []byte) bool {
	if len(word) == 0 {
		return false
	}
	if _, ok := d.words[string(word)]; ok {
		return true
	}
	// Sentence-initial capitals match their lower-cased entry. Lowering is
	// byte-wise ASCII here; non-ASCII case pairs are dictionary entries of
	// their own in practice.
	if lower := asciiLower(word); lower != nil {
		_, ok := d.words[string(lower)]
		return ok
	}
	return false
}

// asciiLower returns the lower-cased form, or nil when nothing changed.
func asciiLower(word []byte) []byte {
	changed := false
	out := make([]byte, len(word))
	for i, b := range word {
		if b >= 'A' && b <= 'Z' {
			b += 'a' - 'A'
			changed = true
		}
		out[i] = b
	}
	if !changed {
		return nil
	}
	return out
}

// Suggest ranks entries by normalized edit similarity to the misspelled
// word and returns the best max of them. Only entries within two bytes of
// the query's length are considered.
func (d *Decoder) Suggest(word []byte, max int) [][]byte {
	if max <= 0 || len(word) == 0 {
		return nil
	}
	query := string(word)
	type scored struct {
		word  string
		score float64
	}
	candidates := make([]scored, 0, max*4)
	for _, w := range d.sorted {
		if diff := len(w) - len(query); diff > 2 || diff < -2 {
			continue
		}
		score := levenshtein.Similarity(query, w, nil)
		if score < 0.6 {
			continue
		}
		candidates = append(candidates, scored{word: w, score: score})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].word < candidates[j].word
	})
	if len(candidates) > max {
		candidates = candidates[:max]
	}
	out := make([][]byte, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, []byte(c.word))
	}
	if len(out) == 0 {
		out = d.tryEdits(word, max)
	}
	return out
}

// tryEdits falls back to single substitutions and insertions built from the
// .aff TRY alphabet, the way Hunspell seeds its own suggestion pass.
func (d *Decoder) tryEdits(word []byte, max int) [][]byte {
	if d.tryChars == "" {
		return nil
	}
	var out [][]byte
	seen := map[string]struct{}{string(word): {}}
	emit := func(candidate []byte) bool {
		s := string(candidate)
		if _, dup := seen[s]; dup {
			return false
		}
		seen[s] = struct{}{}
		if _, ok := d.words[s]; !ok {
			return false
		}
		out = append(out, append([]byte(nil), candidate...))
		return len(out) >= max
	}
	for i := 0; i <= len(word); i++ {
		for _, c := range []byte(d.tryChars) {
			if i < len(word) {
				sub := append([]byte(nil), word...)
				sub[i] = c
				if emit(sub) {
					return out
				}
			}
			ins := make([]byte, 0, len(word)+1)
			ins = append(ins, word[:i]...)
			ins = append(ins, c)
			ins = append(ins, word[i:]...)
			if emit(ins) {
				return out
			}
		}
	}
	return out
}

func (d *Decoder) Close() error {
	d.words = nil
	d.sorted = nil
	return nil
}
