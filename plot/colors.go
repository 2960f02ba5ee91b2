package plot

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Colors offered by the color selector.
var Colors = []string{"blue", "red", "green", "orange", "purple", "pink", "cyan", "gray", "yellow"}

var namedColors = map[string]drawing.Color{
	"blue":   drawing.ColorFromHex("0000ff"),
	"red":    drawing.ColorFromHex("ff0000"),
	"green":  drawing.ColorFromHex("008000"),
	"orange": drawing.ColorFromHex("ffa500"),
	"purple": drawing.ColorFromHex("800080"),
	"pink":   drawing.ColorFromHex("ffc0cb"),
	"cyan":   drawing.ColorFromHex("00ffff"),
	"gray":   drawing.ColorFromHex("808080"),
	"grey":   drawing.ColorFromHex("808080"),
	"yellow": drawing.ColorFromHex("ffff00"),
}

var hexColor = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// ParseColor accepts a palette name or a #rrggbb value.
func ParseColor(s string) (drawing.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if hexColor.MatchString(s) {
		return drawing.ColorFromHex(strings.TrimPrefix(s, "#")), nil
	}
	return drawing.Color{}, fmt.Errorf("unknown color %q", s)
}

func hexString(c drawing.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
