package types

import (
	"strings"

	"github.com/arthur-debert/itemexpr/pkg/errors"
)

// Color is the categorical sub-variant color carried by some kinds
// (currently the body color of a tropical fish bucket).
type Color string

const (
	ColorWhite     Color = "WHITE"
	ColorOrange    Color = "ORANGE"
	ColorMagenta   Color = "MAGENTA"
	ColorLightBlue Color = "LIGHT_BLUE"
	ColorYellow    Color = "YELLOW"
	ColorLime      Color = "LIME"
	ColorPink      Color = "PINK"
	ColorGray      Color = "GRAY"
	ColorLightGray Color = "LIGHT_GRAY"
	ColorCyan      Color = "CYAN"
	ColorPurple    Color = "PURPLE"
	ColorBlue      Color = "BLUE"
	ColorBrown     Color = "BROWN"
	ColorGreen     Color = "GREEN"
	ColorRed       Color = "RED"
	ColorBlack     Color = "BLACK"
)

var colors = map[Color]struct{}{
	ColorWhite: {}, ColorOrange: {}, ColorMagenta: {}, ColorLightBlue: {},
	ColorYellow: {}, ColorLime: {}, ColorPink: {}, ColorGray: {},
	ColorLightGray: {}, ColorCyan: {}, ColorPurple: {}, ColorBlue: {},
	ColorBrown: {}, ColorGreen: {}, ColorRed: {}, ColorBlack: {},
}

// ParseColor resolves a color identifier case-insensitively.
func ParseColor(s string) (Color, error) {
	c := Color(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := colors[c]; !ok {
		return "", errors.Newf(errors.ErrConfigParse, "unknown color %q", s).
			WithDetail("color", s)
	}
	return c, nil
}

func (c Color) String() string { return string(c) }
