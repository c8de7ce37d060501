// Package keycodec provides the deterministic key hashing and the reversible
// text escaping used by every translation file format.
//
// The package is pure: every function is side-effect-free and returns the same
// output for the same input across runs and platforms. Translation files
// written on one machine must resolve to identical keys on any other, so all
// identity in the system ultimately reduces to keycodec.Hash.
//
// # Key Hashing
//
// Hash produces the canonical key for an original string:
//
//	import "github.com/dmitrymomot/lingo/pkg/keycodec"
//
//	key := keycodec.Hash("Save changes?")
//	// 8 uppercase hexadecimal digits, e.g. "9D0C2F53"
//
// The checksum is CRC-32 (IEEE polynomial) over the UTF-16 encoding of the
// string, folding the low byte of each code unit before the high byte.
// Collisions are accepted as an out-of-scope risk and are not handled.
//
// # Escaping
//
// Three reversible substitution schemes keep arbitrary text safe inside
// line-oriented files:
//
//	keycodec.Escape("line one\nline two|x")
//	// "line one~lline two~px": safe for single-line, pipe-separated storage
//
//	keycodec.JoinMultiline("line one\r\nline two")
//	// "line one~nline two": line breaks only, pipes pass through
//
//	keycodec.NormalizeKey("width=50%;")
//	// "width~e50%~s": safe on the left of a key=value line
//
// Each scheme doubles the tilde marker first, so Unescape, RestoreMultiline
// and DenormalizeKey recover the original text exactly.
package keycodec
