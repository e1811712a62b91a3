// Package locale classifies words and language tags by writing script and
// decides which tokens are worth spell-checking at all.
package locale

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"

	"github.com/kepka-app/lib-spellcheck/internal/cache"
)

// skippableCache holds recent IsWordSkippable verdicts. Text fields tend to
// re-check the same words on every keystroke.
var skippableCache = cache.New(2048, 0)

// LocaleScript derives the writing script of a locale tag such as "en_US"
// or "ru_RU". Returns ScriptUnknown when the tag cannot be parsed.
func LocaleScript(lang string) Script {
	tag, err := language.Parse(strings.ReplaceAll(lang, "_", "-"))
	if err != nil {
		return ScriptUnknown
	}
	script, _ := tag.Script()
	if s, ok := iso15924[script.String()]; ok {
		return s
	}
	return ScriptUnknown
}

// IsWordSkippable reports whether a token is unsuitable for spell-checking:
// empty, containing digits or non-letter characters, or mixing definite
// scripts. Apostrophes, hyphens and combining marks are tolerated inside a
// word. With useCache the verdict is memoized.
func IsWordSkippable(word string, useCache bool) bool {
	if word == "" {
		return true
	}
	if useCache {
		if v, ok := skippableCache.Get(word); ok {
			return v.(bool)
		}
	}
	skip := isSkippable(word)
	if useCache {
		skippableCache.Set(word, skip)
	}
	return skip
}

func isSkippable(word string) bool {
	seen := ScriptUnknown
	for _, r := range word {
		if isWordJoiner(r) {
			continue
		}
		if !unicode.IsLetter(r) {
			return true
		}
		switch s := ScriptOfRune(r); s {
		case ScriptCommon, ScriptInherited:
		case ScriptUnknown:
			return true
		default:
			if seen != ScriptUnknown && seen != s {
				return true
			}
			seen = s
		}
	}
	return seen == ScriptUnknown
}

// isWordJoiner reports runes allowed inside a word without contributing a
// script: apostrophes, hyphens and combining marks.
func isWordJoiner(r rune) bool {
	switch r {
	case '\'', '’', '-', '­':
		return true
	}
	return unicode.IsMark(r)
}

// WordRange locates a token inside a larger text as byte offsets.
type WordRange struct {
	Offset int
	Length int
}

// SplitText tokenizes text into candidate words: maximal runs of letters,
// marks and word joiners, trimmed of leading and trailing joiners.
func SplitText(text string) []WordRange {
	var ranges []WordRange
	start := -1
	end := 0
	flush := func() {
		if start < 0 {
			return
		}
		word := trimJoiners(text[start:end])
		if word.Length > 0 {
			ranges = append(ranges, WordRange{Offset: start + word.Offset, Length: word.Length})
		}
		start = -1
	}
	for i, r := range text {
		if unicode.IsLetter(r) || isWordJoiner(r) {
			if start < 0 {
				start = i
			}
			end = i + len(string(r))
			continue
		}
		flush()
	}
	flush()
	return ranges
}

func trimJoiners(word string) WordRange {
	begin := 0
	for begin < len(word) {
		r, size := utf8.DecodeRuneInString(word[begin:])
		if !isWordJoiner(r) {
			break
		}
		begin += size
	}
	finish := len(word)
	for finish > begin {
		r, size := utf8.DecodeLastRuneInString(word[begin:finish])
		if !isWordJoiner(r) {
			break
		}
		finish -= size
	}
	return WordRange{Offset: begin, Length: finish - begin}
}

// RangesFromText returns the ranges of tokens for which ok is false,
// skipping tokens that are not checkable words in the first place.
func RangesFromText(text string, ok func(word string) bool) []WordRange {
	var out []WordRange
	for _, r := range SplitText(text) {
		word := text[r.Offset : r.Offset+r.Length]
		if IsWordSkippable(word, true) {
			continue
		}
		if !ok(word) {
			out = append(out, r)
		}
	}
	return out
}
