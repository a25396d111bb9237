package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustKeyword(t *testing.T, raw string) Keyword {
	t.Helper()
	key, err := NewKeyword(raw)
	require.NoError(t, err)
	return key
}

func TestShiftRune_Wrap(t *testing.T) {
	assert.Equal(t, 'a', ShiftRune('z', 1, Encrypt))
	assert.Equal(t, 'z', ShiftRune('a', 1, Decrypt))
	assert.Equal(t, 'A', ShiftRune('Z', 1, Encrypt))
	assert.Equal(t, 'Z', ShiftRune('A', 1, Decrypt))

	// A 'Z' key letter shifts by a full alphabet.
	assert.Equal(t, 'Z', ShiftRune('Z', 26, Encrypt))
	assert.Equal(t, 'a', ShiftRune('a', 26, Encrypt))
	assert.Equal(t, 'm', ShiftRune('m', 26, Decrypt))
}

func TestShiftRune_NonLetters(t *testing.T) {
	for _, r := range []rune{' ', '\t', '1', '!', '{', '`', '@', '[', 'é', '日'} {
		assert.Equal(t, r, ShiftRune(r, 5, Encrypt), "rune %q", r)
		assert.Equal(t, r, ShiftRune(r, 5, Decrypt), "rune %q", r)
	}
}

func TestTransformLine_Scenario(t *testing.T) {
	key := mustKeyword(t, "ABC")

	out, cursor := TransformLine("Hi there!", key, Encrypt, 0)
	assert.Equal(t, "Ik wiguf!", out)
	assert.Equal(t, 1, cursor)

	back, cursor := TransformLine(out, key, Decrypt, 0)
	assert.Equal(t, "Hi there!", back)
	assert.Equal(t, 1, cursor)
}

func TestTransformLine_NonLettersKeepCursor(t *testing.T) {
	key := mustKeyword(t, "SECRET")

	out, cursor := TransformLine("  123 -- !? \t", key, Encrypt, 4)
	assert.Equal(t, "  123 -- !? \t", out)
	assert.Equal(t, 4, cursor)

	out, cursor = TransformLine("", key, Decrypt, 2)
	assert.Equal(t, "", out)
	assert.Equal(t, 2, cursor)
}

func TestTransformLine_CursorOutOfRange(t *testing.T) {
	key := mustKeyword(t, "ABC")

	// -1 and 5 both land on the last key letter.
	out, cursor := TransformLine("abc", key, Encrypt, -1)
	assert.Equal(t, "dce", out)
	assert.Equal(t, 2, cursor)

	out, cursor = TransformLine("abc", key, Encrypt, 5)
	assert.Equal(t, "dce", out)
	assert.Equal(t, 2, cursor)

	out, cursor = TransformLine("abc", key, Encrypt, -7)
	assert.Equal(t, "dce", out)
	assert.Equal(t, 2, cursor)
}

func TestTransformLine_CasePreserved(t *testing.T) {
	key := mustKeyword(t, "ZEBRA")
	in := "The Quick Brown Fox Jumps Over The Lazy Dog"

	out, _ := TransformLine(in, key, Encrypt, 0)
	require.Equal(t, len(in), len(out))
	for i := range in {
		switch {
		case in[i] >= 'a' && in[i] <= 'z':
			assert.True(t, out[i] >= 'a' && out[i] <= 'z', "position %d", i)
		case in[i] >= 'A' && in[i] <= 'Z':
			assert.True(t, out[i] >= 'A' && out[i] <= 'Z', "position %d", i)
		default:
			assert.Equal(t, in[i], out[i])
		}
	}
}

func TestTransformLine_CursorContinuesAcrossLines(t *testing.T) {
	key := mustKeyword(t, "KEY")

	whole, _ := TransformLine("abcdef", key, Encrypt, 0)

	first, cursor := TransformLine("ab", key, Encrypt, 0)
	assert.Equal(t, 2, cursor)
	second, cursor := TransformLine("cdef", key, Encrypt, cursor)
	assert.Equal(t, 0, cursor)

	assert.Equal(t, whole, first+second)
}

func TestTransformLine_RoundTrip(t *testing.T) {
	lines := []string{
		"Four score and seven years ago",
		"",
		"our fathers brought forth, on this continent, a new nation;",
		"ZZZ zzz AAA aaa 0123456789",
		"naïve café: ümlauts stay",
	}

	for _, raw := range []string{"abc", "Lemon", "ZZZZ", "SECRET", "qwertyuiopasdfghjklzxcvbnm"} {
		key := mustKeyword(t, raw)

		var enc []string
		cursor := 0
		for _, l := range lines {
			var out string
			out, cursor = TransformLine(l, key, Encrypt, cursor)
			enc = append(enc, out)
		}

		cursor = 0
		for i, l := range enc {
			var out string
			out, cursor = TransformLine(l, key, Decrypt, cursor)
			assert.Equal(t, lines[i], out, "key %s line %d", raw, i)
		}
	}
}

func TestTransformLine_ZKeyIsIdentity(t *testing.T) {
	key := mustKeyword(t, "zzz")
	in := "Hello, World"

	out, cursor := TransformLine(in, key, Encrypt, 0)
	assert.Equal(t, in, out)
	assert.Equal(t, 1, cursor)
}

func TestTransformLine_MultibytePassThrough(t *testing.T) {
	key := mustKeyword(t, "ABC")

	out, cursor := TransformLine("日a本", key, Encrypt, 0)
	assert.Equal(t, "日b本", out)
	assert.Equal(t, 1, cursor)
	assert.Equal(t, len([]rune("日a本")), len([]rune(out)))
}

func TestCipher_KeepsCursor(t *testing.T) {
	key := mustKeyword(t, "ABC")
	c := NewCipher(key, Encrypt)

	assert.Equal(t, "Ik", c.Line("Hi"))
	assert.Equal(t, 2, c.Cursor())
	assert.Equal(t, " wiguf!", c.Line(" there!"))
	assert.Equal(t, 1, c.Cursor())

	c.Reset()
	assert.Equal(t, 0, c.Cursor())
	assert.Equal(t, Encrypt, c.Mode())

	d := NewCipher(key, Decrypt)
	assert.Equal(t, "Hi there!", d.Line("Ik")+d.Line(" wiguf!"))
}

func TestTransformLine_LongLine(t *testing.T) {
	key := mustKeyword(t, "LONGKEY")
	in := strings.Repeat("abcXYZ, ", 10000)

	enc, _ := TransformLine(in, key, Encrypt, 0)
	dec, _ := TransformLine(enc, key, Decrypt, 0)
	assert.Equal(t, in, dec)
}
