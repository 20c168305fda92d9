package cli

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/mcoot/uniquepick/internal/model"
)

// asciiPunctuation is the set of characters a player name may not contain
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// ValidateName checks a player name is usable: not blank, not purely numeric
// and free of punctuation. Uniqueness is checked by the game itself.
func ValidateName(name string) error {
	switch {
	case isNumeric(name):
		return fmt.Errorf("%w: the name cannot be solely numeric", model.ErrInvalidName)
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%w: the name cannot be whitespace or empty", model.ErrInvalidName)
	case strings.ContainsAny(name, asciiPunctuation):
		return fmt.Errorf("%w: the name cannot contain punctuation", model.ErrInvalidName)
	}
	return nil
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
