package mru

import (
	"fmt"
	"strings"
)

// FormatLabel renders the display label for an accelerated entry: the
// mnemonic digit marked with & for keyboard access, one space, the path.
func FormatLabel(mnemonic int, path string) string {
	return fmt.Sprintf("&%d %s", mnemonic, path)
}

// StripLabel recovers the bare path from a display label by removing a
// leading &<digits> accelerator marker and surrounding whitespace. Labels
// without a marker come back trimmed but otherwise untouched.
func StripLabel(label string) string {
	s := strings.TrimSpace(label)
	if strings.HasPrefix(s, "&") {
		rest := strings.TrimLeft(s[1:], "0123456789")
		// Only strip when the & actually introduced digits.
		if len(rest) < len(s)-1 {
			s = rest
		}
	}
	return strings.TrimSpace(s)
}
