package crypto

import (
	"fmt"
	"strings"
)

// MinKeywordLength is the shortest keyword accepted by NewKeyword.
const MinKeywordLength = 3

// Keyword is an uppercase A-Z key. The zero value is empty and must not be
// used for transforms.
type Keyword struct {
	letters string
}

// NewKeyword upper-cases raw and validates it.
func NewKeyword(raw string) (Keyword, error) {
	normalized := strings.ToUpper(raw)

	if len(normalized) < MinKeywordLength {
		return Keyword{}, fmt.Errorf("%w: must be at least %d letters, got %d",
			ErrInvalidKeyword, MinKeywordLength, len(normalized))
	}
	if !ValidKeyword(normalized) {
		return Keyword{}, fmt.Errorf("%w: %q must contain letters only", ErrInvalidKeyword, raw)
	}

	return Keyword{letters: normalized}, nil
}

// ValidKeyword reports whether s has at least MinKeywordLength characters,
// all of them uppercase letters A-Z. Lowercase input is rejected; callers
// normalize first.
func ValidKeyword(s string) bool {
	if len(s) < MinKeywordLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

func (k Keyword) Len() int {
	return len(k.letters)
}

// Shift returns the shift amount (1-26) for key position i.
func (k Keyword) Shift(i int) int {
	return int(k.letters[i]-'A') + 1
}

func (k Keyword) String() string {
	return k.letters
}
