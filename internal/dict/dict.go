// Package dict defines the decoder seam between a language engine and a
// loaded dictionary pair. Decoders work on raw bytes in the encoding the
// dictionary declares; the engine owns the Unicode boundary.
package dict

// Decoder answers spelling queries for one loaded dictionary.
type Decoder interface {
	// Encoding is the charset name the dictionary declared for its
	// entries, e.g. "UTF-8" or "KOI8-R".
	Encoding() string

	// Spell reports whether the encoded word is known.
	Spell(word []byte) bool

	// Suggest returns up to max corrections for the encoded word, in the
	// dictionary's encoding.
	Suggest(word []byte, max int) [][]byte

	Close() error
}
