package words

import (
	"fmt"
	"strings"
)

// Count returns the number of whitespace-delimited tokens in text. Empty and
// whitespace-only text counts as zero.
func Count(text string) int {
	return len(strings.Fields(text))
}

// Label formats a count for the counter display.
func Label(n int) string {
	return fmt.Sprintf("%d words", n)
}
