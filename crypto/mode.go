package crypto

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode selects the shift direction.
type Mode int

const (
	Encrypt Mode = iota + 1
	Decrypt
)

// ModeFromMenu maps the interactive menu choice (1 or 2) to a Mode.
func ModeFromMenu(choice int) (Mode, error) {
	switch Mode(choice) {
	case Encrypt, Decrypt:
		return Mode(choice), nil
	default:
		return 0, fmt.Errorf("%w: menu choice %d, expected 1 or 2", ErrInvalidMode, choice)
	}
}

// ParseMode accepts "encrypt", "decrypt" or the menu numbers "1" and "2".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "encrypt":
		return Encrypt, nil
	case "decrypt":
		return Decrypt, nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
	return ModeFromMenu(n)
}

func (m Mode) Valid() bool {
	return m == Encrypt || m == Decrypt
}

func (m Mode) String() string {
	switch m {
	case Encrypt:
		return "encrypt"
	case Decrypt:
		return "decrypt"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// PastTense is used in user-facing messages ("encrypted file ...").
func (m Mode) PastTense() string {
	switch m {
	case Encrypt:
		return "encrypted"
	case Decrypt:
		return "decrypted"
	default:
		return m.String()
	}
}
