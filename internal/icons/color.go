package icons

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor reads a background color: a CSS color name ("white"),
// #rgb, #rrggbb or #rrggbbaa. Empty and "transparent" give nil.
func ParseColor(s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "transparent" || s == "none" {
		return nil, nil
	}

	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}

	if !strings.HasPrefix(s, "#") {
		return nil, fmt.Errorf("unknown color %q", s)
	}

	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return nil, fmt.Errorf("bad hex color %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("bad hex color %q: %w", s, err)
	}

	// NRGBA: the hex form is not premultiplied.
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
