package clipboard

import (
	"errors"
	"strings"

	"github.com/atotto/clipboard"
)

var ErrEmpty = errors.New("nothing to copy")

// Write copies text to the system clipboard. Blank text is rejected.
func Write(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmpty
	}

	return clipboard.WriteAll(text)
}
