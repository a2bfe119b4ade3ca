// Package color resolves the color model of diagram definitions:
// explicit sRGB values, scheme (theme) slots with luminance and
// saturation transforms, and system/preset color names. Everything
// normalizes to an uppercase #RRGGBB hex string.
package color

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

// PerMilleDiv converts ECMA-376 per-mille-of-percent integers
// (100000 = 100%) into 0-1 multipliers.
const PerMilleDiv = 100000.0

// Scheme color slots. tx/bg slots are aliases resolved by SchemeSlot.
const (
	Dark1    = "dk1"
	Light1   = "lt1"
	Dark2    = "dk2"
	Light2   = "lt2"
	Accent1  = "accent1"
	Accent2  = "accent2"
	Accent3  = "accent3"
	Accent4  = "accent4"
	Accent5  = "accent5"
	Accent6  = "accent6"
	Hyperlink         = "hlink"
	FollowedHyperlink = "folHlink"

	Empty = ""
	None  = "none"
)

// defaultScheme is the stock Office theme, used when the caller
// supplies no theme colors.
var defaultScheme = map[string]string{
	Dark1:             "#000000",
	Light1:            "#FFFFFF",
	Dark2:             "#44546A",
	Light2:            "#E7E6E6",
	Accent1:           "#4472C4",
	Accent2:           "#ED7D31",
	Accent3:           "#A5A5A5",
	Accent4:           "#FFC000",
	Accent5:           "#5B9BD5",
	Accent6:           "#70AD47",
	Hyperlink:         "#0563C1",
	FollowedHyperlink: "#954F72",
}

// systemColors covers the system color names diagram definitions
// actually use. Anything else falls through to the CSS parser.
var systemColors = map[string]string{
	"window":     "#FFFFFF",
	"windowText": "#000000",
	"highlight":  "#0078D7",
	"grayText":   "#6D6D6D",
}

// SchemeSlot canonicalizes a scheme color name, mapping the text and
// background aliases onto their underlying slots.
func SchemeSlot(name string) string {
	switch name {
	case "tx1":
		return Dark1
	case "bg1":
		return Light1
	case "tx2":
		return Dark2
	case "bg2":
		return Light2
	}
	return name
}

// Scheme resolves a scheme slot against the supplied theme, falling
// back to the stock Office palette for missing slots.
func Scheme(name string, theme map[string]string) (string, bool) {
	slot := SchemeSlot(name)
	if theme != nil {
		if c, ok := theme[slot]; ok {
			return Normalize(c)
		}
	}
	if c, ok := defaultScheme[slot]; ok {
		return c, true
	}
	return "", false
}

// System resolves a system color name.
func System(name string) (string, bool) {
	c, ok := systemColors[name]
	return c, ok
}

// Normalize parses any CSS color string (hex with or without '#',
// named colors) into uppercase #RRGGBB. Reports false on garbage.
func Normalize(colorString string) (string, bool) {
	s := colorString
	if s == "" {
		return "", false
	}
	if isBareHex(s) {
		s = "#" + s
	}
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return "", false
	}
	return strings.ToUpper(c.HexString()[:7]), true
}

func isBareHex(s string) bool {
	if len(s) != 6 && len(s) != 8 {
		return false
	}
	for _, r := range s {
		switch {
		case '0' <= r && r <= '9', 'a' <= r && r <= 'f', 'A' <= r && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// Transforms carries the per-mille-of-percent color modulations of a
// scheme color reference. Nil fields are absent.
type Transforms struct {
	LumMod *int
	LumOff *int
	SatMod *int
	Tint   *int
	Shade  *int
}

func (t *Transforms) IsZero() bool {
	return t == nil || (t.LumMod == nil && t.LumOff == nil && t.SatMod == nil && t.Tint == nil && t.Shade == nil)
}

// Apply runs the transforms on a resolved hex color in the fixed
// order lumMod, lumOff, satMod, tint, shade.
func (t *Transforms) Apply(hex string) (string, error) {
	if t.IsZero() {
		return hex, nil
	}
	parsed, err := csscolorparser.Parse(hex)
	if err != nil {
		return "", err
	}
	c := colorful.Color{R: parsed.R, G: parsed.G, B: parsed.B}

	h, s, l := c.Hsl()
	if t.LumMod != nil {
		l *= float64(*t.LumMod) / PerMilleDiv
	}
	if t.LumOff != nil {
		l += float64(*t.LumOff) / PerMilleDiv
	}
	if t.SatMod != nil {
		s *= float64(*t.SatMod) / PerMilleDiv
	}
	c = colorful.Hsl(h, clamp01(s), clamp01(l)).Clamped()

	if t.Tint != nil {
		// tint interpolates toward white
		f := clamp01(float64(*t.Tint) / PerMilleDiv)
		c = colorful.Color{
			R: c.R*f + (1 - f),
			G: c.G*f + (1 - f),
			B: c.B*f + (1 - f),
		}.Clamped()
	}
	if t.Shade != nil {
		// shade scales toward black
		f := clamp01(float64(*t.Shade) / PerMilleDiv)
		c = colorful.Color{R: c.R * f, G: c.G * f, B: c.B * f}.Clamped()
	}

	return strings.ToUpper(c.Hex()), nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Darken lowers luminance by 10%, for deriving line colors from fills.
func Darken(colorString string) (string, error) {
	c, err := csscolorparser.Parse(colorString)
	if err != nil {
		return "", err
	}
	h, s, l := colorful.Color{R: c.R, G: c.G, B: c.B}.Hsl()
	return strings.ToUpper(colorful.Hsl(h, s, l-.1).Clamped().Hex()), nil
}

// Luminance returns the perceptual luminance of a color, 0-1.
func Luminance(colorString string) (float64, error) {
	c, err := csscolorparser.Parse(colorString)
	if err != nil {
		return 0, err
	}
	return 0.299*c.R + 0.587*c.G + 0.114*c.B, nil
}

// LuminanceCategory buckets a color for contrast decisions.
func LuminanceCategory(colorString string) (string, error) {
	l, err := Luminance(colorString)
	if err != nil {
		return "", err
	}
	switch {
	case l >= .88:
		return "bright", nil
	case l >= .55:
		return "normal", nil
	case l >= .30:
		return "dark", nil
	default:
		return "darker", nil
	}
}
