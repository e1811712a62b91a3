package locale

import "unicode"

// Script identifies the writing system of a word or locale. Words are
// bucketed by script so that lookups only hit dictionaries that can
// possibly know them.
type Script int

const (
	ScriptUnknown Script = iota
	ScriptCommon
	ScriptInherited
	ScriptLatin
	ScriptGreek
	ScriptCyrillic
	ScriptArmenian
	ScriptHebrew
	ScriptArabic
	ScriptSyriac
	ScriptThaana
	ScriptDevanagari
	ScriptBengali
	ScriptGurmukhi
	ScriptGujarati
	ScriptOriya
	ScriptTamil
	ScriptTelugu
	ScriptKannada
	ScriptMalayalam
	ScriptSinhala
	ScriptThai
	ScriptLao
	ScriptTibetan
	ScriptMyanmar
	ScriptGeorgian
	ScriptHangul
	ScriptEthiopic
	ScriptCherokee
	ScriptMongolian
	ScriptHan
	ScriptHiragana
	ScriptKatakana
)

var scriptNames = map[Script]string{
	ScriptUnknown:    "Unknown",
	ScriptCommon:     "Common",
	ScriptInherited:  "Inherited",
	ScriptLatin:      "Latin",
	ScriptGreek:      "Greek",
	ScriptCyrillic:   "Cyrillic",
	ScriptArmenian:   "Armenian",
	ScriptHebrew:     "Hebrew",
	ScriptArabic:     "Arabic",
	ScriptSyriac:     "Syriac",
	ScriptThaana:     "Thaana",
	ScriptDevanagari: "Devanagari",
	ScriptBengali:    "Bengali",
	ScriptGurmukhi:   "Gurmukhi",
	ScriptGujarati:   "Gujarati",
	ScriptOriya:      "Oriya",
	ScriptTamil:      "Tamil",
	ScriptTelugu:     "Telugu",
	ScriptKannada:    "Kannada",
	ScriptMalayalam:  "Malayalam",
	ScriptSinhala:    "Sinhala",
	ScriptThai:       "Thai",
	ScriptLao:        "Lao",
	ScriptTibetan:    "Tibetan",
	ScriptMyanmar:    "Myanmar",
	ScriptGeorgian:   "Georgian",
	ScriptHangul:     "Hangul",
	ScriptEthiopic:   "Ethiopic",
	ScriptCherokee:   "Cherokee",
	ScriptMongolian:  "Mongolian",
	ScriptHan:        "Han",
	ScriptHiragana:   "Hiragana",
	ScriptKatakana:   "Katakana",
}

func (s Script) String() string {
	if name, ok := scriptNames[s]; ok {
		return name
	}
	return "Unknown"
}

// rangeTables pairs each Script with its stdlib unicode range table.
// Order matters only for readability; tables are disjoint.
var rangeTables = []struct {
	script Script
	table  *unicode.RangeTable
}{
	{ScriptLatin, unicode.Latin},
	{ScriptGreek, unicode.Greek},
	{ScriptCyrillic, unicode.Cyrillic},
	{ScriptArmenian, unicode.Armenian},
	{ScriptHebrew, unicode.Hebrew},
	{ScriptArabic, unicode.Arabic},
	{ScriptSyriac, unicode.Syriac},
	{ScriptThaana, unicode.Thaana},
	{ScriptDevanagari, unicode.Devanagari},
	{ScriptBengali, unicode.Bengali},
	{ScriptGurmukhi, unicode.Gurmukhi},
	{ScriptGujarati, unicode.Gujarati},
	{ScriptOriya, unicode.Oriya},
	{ScriptTamil, unicode.Tamil},
	{ScriptTelugu, unicode.Telugu},
	{ScriptKannada, unicode.Kannada},
	{ScriptMalayalam, unicode.Malayalam},
	{ScriptSinhala, unicode.Sinhala},
	{ScriptThai, unicode.Thai},
	{ScriptLao, unicode.Lao},
	{ScriptTibetan, unicode.Tibetan},
	{ScriptMyanmar, unicode.Myanmar},
	{ScriptGeorgian, unicode.Georgian},
	{ScriptHangul, unicode.Hangul},
	{ScriptEthiopic, unicode.Ethiopic},
	{ScriptCherokee, unicode.Cherokee},
	{ScriptMongolian, unicode.Mongolian},
	{ScriptHan, unicode.Han},
	{ScriptHiragana, unicode.Hiragana},
	{ScriptKatakana, unicode.Katakana},
}

// ScriptOfRune classifies a single rune. Combining marks report
// ScriptInherited, punctuation and digits ScriptCommon.
func ScriptOfRune(r rune) Script {
	if unicode.In(r, unicode.Inherited) || unicode.IsMark(r) {
		return ScriptInherited
	}
	if unicode.In(r, unicode.Common) {
		return ScriptCommon
	}
	for _, rt := range rangeTables {
		if unicode.In(r, rt.table) {
			return rt.script
		}
	}
	return ScriptUnknown
}

// WordScript returns the script of the first rune with a definite script.
// Common and Inherited runes (apostrophes, combining marks) are skipped,
// so "n'est" and "о́зеро" classify by their letters.
func WordScript(word string) Script {
	for _, r := range word {
		switch s := ScriptOfRune(r); s {
		case ScriptCommon, ScriptInherited:
			continue
		default:
			return s
		}
	}
	return ScriptCommon
}

// iso15924 maps the codes produced by x/text/language to Script values.
var iso15924 = map[string]Script{
	"Latn": ScriptLatin,
	"Grek": ScriptGreek,
	"Cyrl": ScriptCyrillic,
	"Armn": ScriptArmenian,
	"Hebr": ScriptHebrew,
	"Arab": ScriptArabic,
	"Syrc": ScriptSyriac,
	"Thaa": ScriptThaana,
	"Deva": ScriptDevanagari,
	"Beng": ScriptBengali,
	"Guru": ScriptGurmukhi,
	"Gujr": ScriptGujarati,
	"Orya": ScriptOriya,
	"Taml": ScriptTamil,
	"Telu": ScriptTelugu,
	"Knda": ScriptKannada,
	"Mlym": ScriptMalayalam,
	"Sinh": ScriptSinhala,
	"Thai": ScriptThai,
	"Laoo": ScriptLao,
	"Tibt": ScriptTibetan,
	"Mymr": ScriptMyanmar,
	"Geor": ScriptGeorgian,
	"Hang": ScriptHangul,
	"Ethi": ScriptEthiopic,
	"Cher": ScriptCherokee,
	"Mong": ScriptMongolian,
	"Hans": ScriptHan,
	"Hant": ScriptHan,
	"Hani": ScriptHan,
	"Hira": ScriptHiragana,
	"Kana": ScriptKatakana,
	"Jpan": ScriptHan,
	"Kore": ScriptHangul,
}
