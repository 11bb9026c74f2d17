// Package color implements the sRGB color value used to derive theme palettes.
//
// A Color is immutable: every operation returns a new value and every
// constructor clamps red, green and blue to [0,255] and alpha to [0,1].
package color

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// Channel bounds
const (
	MaxChannel = 255.0
	MaxAlpha   = 1.0
)

// LegibleContrast is the contrast MakeLegible guarantees before leaving a color untouched
const LegibleContrast = 2.5

var hexPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{2})([0-9a-fA-F]{2})([0-9a-fA-F]{2})$`)

// Color is an sRGB color with alpha. The zero value is transparent black,
// use New, RGB or Black for an opaque color.
type Color struct {
	r, g, b, a float64
}

// New returns a color with every channel clamped into range
func New(r, g, b, a float64) Color {
	return Color{
		r: clamp(r, 0, MaxChannel),
		g: clamp(g, 0, MaxChannel),
		b: clamp(b, 0, MaxChannel),
		a: clamp(a, 0, MaxAlpha),
	}
}

// RGB returns an opaque color
func RGB(r, g, b float64) Color {
	return New(r, g, b, 1)
}

// Black returns opaque black
func Black() Color {
	return RGB(0, 0, 0)
}

// White returns opaque white
func White() Color {
	return RGB(255, 255, 255)
}

// Grey returns opaque mid grey
func Grey() Color {
	return RGB(128, 128, 128)
}

// Parse reads a six digit hex color with an optional leading '#'
func Parse(s string) (Color, error) {
	m := hexPattern.FindStringSubmatch(s)
	if m == nil {
		return Color{}, &ParseError{Input: s}
	}

	var channels [3]float64

	for i := range channels {
		v, err := strconv.ParseUint(m[i+1], 16, 8)
		if err != nil {
			return Color{}, &ParseError{Input: s}
		}

		channels[i] = float64(v)
	}

	return RGB(channels[0], channels[1], channels[2]), nil
}

// MustParse is like Parse but panics on malformed input. Only use it for constants.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return c
}

// R returns the red channel
func (c Color) R() float64 { return c.r }

// G returns the green channel
func (c Color) G() float64 { return c.g }

// B returns the blue channel
func (c Color) B() float64 { return c.b }

// A returns the alpha channel
func (c Color) A() float64 { return c.a }

// Tint linearly interpolates every channel, alpha included, toward target.
// amount is clamped to [0,1].
func (c Color) Tint(target Color, amount float64) Color {
	amount = clamp(amount, 0, 1)

	return New(
		c.r+(target.r-c.r)*amount,
		c.g+(target.g-c.g)*amount,
		c.b+(target.b-c.b)*amount,
		c.a+(target.a-c.a)*amount,
	)
}

// Darken tints toward black
func (c Color) Darken(amount float64) Color {
	return c.Tint(Black(), amount)
}

// Lighten tints toward white
func (c Color) Lighten(amount float64) Color {
	return c.Tint(White(), amount)
}

// Shift darkens light colors and lightens dark ones
func (c Color) Shift(amount float64) Color {
	if c.Luminance() >= 0.5 {
		return c.Darken(amount)
	}

	return c.Lighten(amount)
}

// Saturate scales each channel's distance from the perceived grey level by change.
// Values above 1 saturate, below 1 desaturate. Alpha is kept.
func (c Color) Saturate(change float64) Color {
	if change == 1 {
		return c
	}

	p := math.Sqrt(c.r*c.r*0.299 + c.g*c.g*0.587 + c.b*c.b*0.114)

	return New(
		clamp(p+(c.r-p)*change, 0, MaxChannel),
		clamp(p+(c.g-p)*change, 0, MaxChannel),
		clamp(p+(c.b-p)*change, 0, MaxChannel),
		c.a,
	)
}

// WithAlpha returns a copy with alpha replaced
func (c Color) WithAlpha(alpha float64) Color {
	return New(c.r, c.g, c.b, alpha)
}

// TextColor returns black or white, whichever reads better on top of c
func (c Color) TextColor() Color {
	luma := (0.299*c.r + 0.587*c.g + 0.114*c.b) / MaxChannel
	if luma > 0.53 {
		return Black()
	}

	return White()
}

// Luminance returns the relative luminance of c.
//
// The per-channel linearization uses 3294, 269 and 0.0513 rather than the
// textbook 255*12.92, 255*1.055 and 0.055/1.055. Output must stay
// bit-compatible with themes generated by earlier releases.
func (c Color) Luminance() float64 {
	return 0.2126*linearize(c.r) + 0.7152*linearize(c.g) + 0.0722*linearize(c.b)
}

// Contrast returns the contrast ratio between c and other, always >= 1
func (c Color) Contrast(other Color) float64 {
	big := c.Luminance()
	small := other.Luminance()

	if big < small {
		big, small = small, big
	}

	return (big + 0.05) / (small + 0.05)
}

// MakeLegible nudges c toward bg's text color when its contrast against bg
// is at or below LegibleContrast
func (c Color) MakeLegible(bg Color) Color {
	return c.Legible(bg, LegibleContrast)
}

// Legible returns c unchanged when its contrast against bg exceeds threshold.
// Otherwise c is tinted toward bg.TextColor() by half of how far the contrast
// falls short, measured on the [1, threshold] scale.
func (c Color) Legible(bg Color, threshold float64) Color {
	contrast := bg.Contrast(c)
	if contrast > threshold {
		return c
	}

	scale := 1 - (contrast-1)/(threshold-1)

	return c.Tint(bg.TextColor(), scale*0.5)
}

// CSS renders c as rgba() with floored channels and alpha as is
func (c Color) CSS() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%s)",
		floorByte(c.r), floorByte(c.g), floorByte(c.b),
		strconv.FormatFloat(c.a, 'f', -1, 64),
	)
}

// Hex renders c as lowercase #rrggbb, alpha is dropped
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", floorByte(c.r), floorByte(c.g), floorByte(c.b))
}

// String implements fmt.Stringer
func (c Color) String() string {
	return c.Hex()
}

// MarshalText implements encoding.TextMarshaler
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}

	*c = parsed

	return nil
}

func linearize(v float64) float64 {
	if math.Floor(v) <= 10 {
		return v / 3294.0
	}

	return math.Pow(v/269.0+0.0513, 2.4)
}

// clamp bounds v to [lo,hi]; NaN maps to lo
func clamp(v, lo, hi float64) float64 {
	switch {
	case math.IsNaN(v):
		return lo
	case v > hi:
		return hi
	case v < lo:
		return lo
	default:
		return v
	}
}

func floorByte(v float64) int {
	return int(clamp(math.Floor(v), 0, MaxChannel))
}
