package models

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// NormalizeColor parses a #RRGGBB color string and re-renders it in
// canonical lowercase form. The RGB channels round-trip losslessly; alpha
// is not carried and is implicitly opaque.
func NormalizeColor(hex string) (string, error) {
	if len(hex) != 7 || !strings.HasPrefix(hex, "#") {
		return "", fmt.Errorf("invalid color %q: expected #RRGGBB", hex)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return "", fmt.Errorf("invalid color %q: %w", hex, err)
	}
	return c.Hex(), nil
}
