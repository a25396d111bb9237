// Package crypto contains the keyed shift (Vigenère) cipher engine
package crypto

import (
	"strings"
)

const alphabetSize = 26

// ShiftRune shifts a single ASCII letter by shift positions inside its own
// case range. Anything that is not A-Z or a-z is returned unchanged.
func ShiftRune(r rune, shift int, mode Mode) rune {
	var base rune
	switch {
	case r >= 'a' && r <= 'z':
		base = 'a'
	case r >= 'A' && r <= 'Z':
		base = 'A'
	default:
		return r
	}

	if mode == Decrypt {
		shift = -shift
	}

	offset := (int(r-base) + shift) % alphabetSize
	if offset < 0 {
		offset += alphabetSize
	}
	return base + rune(offset)
}

// IsLetter reports whether r takes part in the cipher.
func IsLetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

// TransformLine encrypts or decrypts one line starting at the given key
// cursor and returns the transformed line together with the cursor for the
// next line. The cursor only moves on letters.
func TransformLine(line string, key Keyword, mode Mode, cursor int) (string, int) {
	if key.Len() == 0 {
		return line, cursor
	}
	cursor %= key.Len()
	if cursor < 0 {
		cursor += key.Len()
	}

	var out strings.Builder
	out.Grow(len(line))

	for _, r := range line {
		if !IsLetter(r) {
			out.WriteRune(r)
			continue
		}

		shift := key.Shift(cursor)
		if cursor < key.Len()-1 {
			cursor++
		} else {
			cursor = 0
		}

		out.WriteRune(ShiftRune(r, shift, mode))
	}

	return out.String(), cursor
}

// Cipher keeps the key cursor for callers that feed lines one by one
// without threading the cursor themselves.
type Cipher struct {
	key    Keyword
	mode   Mode
	cursor int
}

func NewCipher(key Keyword, mode Mode) *Cipher {
	return &Cipher{
		key:  key,
		mode: mode,
	}
}

func (c *Cipher) Line(line string) string {
	var out string
	out, c.cursor = TransformLine(line, c.key, c.mode, c.cursor)
	return out
}

func (c *Cipher) Cursor() int {
	return c.cursor
}

// Reset moves the cursor back to the first key letter.
func (c *Cipher) Reset() {
	c.cursor = 0
}

func (c *Cipher) Mode() Mode {
	return c.mode
}
