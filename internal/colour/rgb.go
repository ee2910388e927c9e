// Package colour provides the colour value type and parsers for the
// notations accepted on the command line.
package colour

import "fmt"

// RGB represents a color in RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB color as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB color as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// QueryValue returns the components as decimal "r,g,b", the form expected
// by the naming service's rgb query parameter.
func (rgb RGB) QueryValue() string {
	return fmt.Sprintf("%d,%d,%d", rgb.R, rgb.G, rgb.B)
}
