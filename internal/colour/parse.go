package colour

import (
	"fmt"
	"strconv"
	"strings"
)

// Notation identifies one of the accepted textual colour forms.
type Notation string

const (
	// NotationHex is "#RRGGBB", "RRGGBB", "#RGB" or "RGB".
	NotationHex Notation = "hex"

	// NotationRGB is "rgb(r,g,b)".
	NotationRGB Notation = "rgb"
)

const (
	rgbPrefix = "rgb("
	rgbSuffix = ")"
)

// Parse parses input according to the given notation.
func Parse(n Notation, input string) (RGB, error) {
	switch n {
	case NotationHex:
		return ParseHex(input)
	case NotationRGB:
		return ParseRGB(input)
	default:
		return RGB{}, fmt.Errorf("unknown colour notation: %q", string(n))
	}
}

// ParseHex parses a hex color string into an RGB struct.
// Supports formats: #RRGGBB, RRGGBB, #RGB, RGB (case-insensitive).
func ParseHex(input string) (RGB, error) {
	digits := strings.TrimPrefix(input, "#")

	if len(digits) != 3 && len(digits) != 6 {
		return RGB{}, formatError(NotationHex, input,
			fmt.Sprintf("expected 3 or 6 hex digits, got %d", len(digits)))
	}

	var n [6]byte
	for i := 0; i < len(digits); i++ {
		v, ok := hexValue(digits[i])
		if !ok {
			return RGB{}, formatError(NotationHex, input,
				fmt.Sprintf("%q is not a hex digit", digits[i]))
		}
		n[i] = v
	}

	// Expand shorthand format (RGB -> RRGGBB).
	if len(digits) == 3 {
		n = [6]byte{n[0], n[0], n[1], n[1], n[2], n[2]}
	}

	return RGB{R: n[0]<<4 | n[1], G: n[2]<<4 | n[3], B: n[4]<<4 | n[5]}, nil
}

// ParseRGB parses a string of the form "rgb(r,g,b)". Whitespace around each
// component is allowed. Fields after the third are ignored.
func ParseRGB(input string) (RGB, error) {
	if !strings.HasPrefix(input, rgbPrefix) || !strings.HasSuffix(input, rgbSuffix) {
		return RGB{}, formatError(NotationRGB, input, "expected rgb(<r>,<g>,<b>)")
	}

	inner := input[len(rgbPrefix) : len(input)-len(rgbSuffix)]
	fields := strings.Split(inner, ",")
	if len(fields) < 3 {
		return RGB{}, formatError(NotationRGB, input,
			fmt.Sprintf("expected 3 components, got %d", len(fields)))
	}

	r, err := parseComponent(input, "red", fields[0])
	if err != nil {
		return RGB{}, err
	}
	g, err := parseComponent(input, "green", fields[1])
	if err != nil {
		return RGB{}, err
	}
	b, err := parseComponent(input, "blue", fields[2])
	if err != nil {
		return RGB{}, err
	}

	return RGB{R: r, G: g, B: b}, nil
}

// parseComponent parses a single decimal byte. Only plain digits are
// accepted so that signs and other bases are rejected.
func parseComponent(input, name, field string) (uint8, error) {
	field = strings.TrimSpace(field)
	if field == "" {
		return 0, numberError(NotationRGB, input, name+" component is empty")
	}
	for i := 0; i < len(field); i++ {
		if field[i] < '0' || field[i] > '9' {
			return 0, numberError(NotationRGB, input,
				fmt.Sprintf("%s component %q is not an integer", name, field))
		}
	}

	v, err := strconv.ParseUint(field, 10, 8)
	if err != nil {
		return 0, numberError(NotationRGB, input,
			fmt.Sprintf("%s component %q is not in range 0-255", name, field))
	}
	return uint8(v), nil
}

// hexValue returns the value of a single hex digit.
func hexValue(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
