package keycodec

import (
	"fmt"
	"hash/crc32"
	"strings"
	"unicode/utf16"
)

// Separator delimits escaped lines when a multiline value is folded into a
// single pipe-separated one. Formats that use it must Escape values first.
const Separator = '|'

// Replacement tables. strings.Replacer matches the pairs in argument order at
// each position, so "\r\n" is listed before "\r" and "~~" before the other
// tilde tokens. Every scheme doubles the tilde first, which makes each of
// them exactly invertible.
var (
	escaper      = strings.NewReplacer("~", "~~", "\r\n", "~n", "\r", "~r", "\n", "~l", "|", "~p")
	unescaper    = strings.NewReplacer("~~", "~", "~n", "\r\n", "~r", "\r", "~l", "\n", "~p", "|")
	joiner       = strings.NewReplacer("~", "~~", "\r\n", "~n", "\r", "~r", "\n", "~l")
	restorer     = strings.NewReplacer("~~", "~", "~n", "\r\n", "~r", "\r", "~l", "\n")
	normalizer   = strings.NewReplacer("~", "~~", "=", "~e", ";", "~s")
	denormalizer = strings.NewReplacer("~~", "~", "~e", "=", "~s", ";")
)

// Hash returns the canonical key for s: 8 uppercase hexadecimal digits of the
// CRC-32 (IEEE) checksum computed over the UTF-16 encoding of s, low byte of
// each code unit first. The result is stable across runs and platforms.
func Hash(s string) string {
	units := utf16.Encode([]rune(s))
	buf := make([]byte, 0, len(units)*2)
	for _, u := range units {
		buf = append(buf, byte(u), byte(u>>8))
	}
	return fmt.Sprintf("%08X", crc32.ChecksumIEEE(buf))
}

// Escape substitutes line breaks and the reserved separator so that s
// survives single-line, pipe-separated storage. Unescape reverses it.
func Escape(s string) string { return escaper.Replace(s) }

// Unescape reverses Escape.
func Unescape(s string) string { return unescaper.Replace(s) }

// JoinMultiline folds a multiline value onto one physical line by replacing
// each line break with a two-character placeholder. Unlike Escape it leaves
// the separator character alone, so it suits formats whose values run to the
// end of the line. RestoreMultiline reverses it.
func JoinMultiline(s string) string { return joiner.Replace(s) }

// RestoreMultiline reverses JoinMultiline.
func RestoreMultiline(s string) string { return restorer.Replace(s) }

// NormalizeKey escapes the assignment and comment-start characters so that s
// can stand on the left of a key=value line. DenormalizeKey reverses it.
func NormalizeKey(s string) string { return normalizer.Replace(s) }

// DenormalizeKey reverses NormalizeKey.
func DenormalizeKey(s string) string { return denormalizer.Replace(s) }
