// Package palette derives a legible theme from a background and an accent color
package palette

import (
	"shade/internal/app/color"
	"shade/internal/app/css"
)

// RootSelector scopes the custom properties
const RootSelector = ":root"

// DarkBackgroundLuminance is the luminance under which drop shadows are lightened
const DarkBackgroundLuminance = 0.02

// Reference colors for semantic roles, corrected per background
var (
	IconWarnReference   = color.MustParse("#f57f17")
	InputLabelReference = color.MustParse("#9e9e9e")
	DangerReference     = color.MustParse("#FF0000")
	BlueIconReference   = color.MustParse("#0D47A1")
)

// Base holds the intermediate colors every palette entry is computed from
type Base struct {
	Background color.Color `json:"background" yaml:"background"`
	Accent     color.Color `json:"accent" yaml:"accent"`
	Text       color.Color `json:"text" yaml:"text"`
	LinkAccent color.Color `json:"link_accent" yaml:"link_accent"`
	DropShadow color.Color `json:"drop_shadow" yaml:"drop_shadow"`
	IconWarn   color.Color `json:"icon_warn" yaml:"icon_warn"`
	InputLabel color.Color `json:"input_label" yaml:"input_label"`
	DangerText color.Color `json:"danger_text" yaml:"danger_text"`
	BlueIcon   color.Color `json:"blue_icon" yaml:"blue_icon"`
}

// Entry is one named style variable
type Entry struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Palette is the ordered set of custom properties for one background/accent pair
type Palette struct {
	Base    Base    `json:"base" yaml:"base"`
	Entries []Entry `json:"variables" yaml:"variables"`
}

// DeriveBase computes text, legibility-corrected accents, shadow base and semantic colors.
// Accent is replaced by its corrected value; the link accent is corrected once more from it.
func DeriveBase(background, accent color.Color) Base {
	text := background.TextColor()
	accent = accent.MakeLegible(background)

	dropShadow := color.Black()
	if background.Luminance() < DarkBackgroundLuminance {
		dropShadow = color.White().Darken(0.3)
	}

	return Base{
		Background: background,
		Accent:     accent,
		Text:       text,
		LinkAccent: accent.MakeLegible(background),
		DropShadow: dropShadow,
		IconWarn:   IconWarnReference.MakeLegible(background),
		InputLabel: InputLabelReference.MakeLegible(background),
		DangerText: DangerReference.Tint(text, 0.25).MakeLegible(background),
		BlueIcon:   BlueIconReference.MakeLegible(background),
	}
}

// Derive builds the custom property palette
func Derive(background, accent color.Color) Palette {
	b := DeriveBase(background, accent)
	bg := b.Background

	entries := []Entry{
		{"--cls-color", b.Text.CSS()},
		{"--cls-sec-color", b.Text.CSS()},
		{"--cls-size", "2rem"},
		{"--cls-margin", "1rem"},
		{"--cls-speed", "4s"},

		{"--helper-text-color", b.Text.Tint(bg, 0.25).CSS()},
		{"--text-primary-color", b.Text.Shift(0.13).CSS()},
		{"--text-secondary-color", b.Text.Shift(0.26).CSS()},
		{"--divider-color", b.Text.WithAlpha(0.12).CSS()},
		{"--shadow-color", b.DropShadow.WithAlpha(0.14).CSS()},
		{"--icon-color", b.Text.Shift(0.13).WithAlpha(0.6).CSS()},
		{"--icon-warn", b.IconWarn.CSS()},
		{"--input-label", b.InputLabel.CSS()},
		{"--danger-text", b.DangerText.CSS()},
		{"--danger-bg", b.DangerText.TextColor().CSS()},
		{"--blue-icon", b.BlueIcon.CSS()},

		{"--accent-color", b.Accent.CSS()},
		{"--accent-dark", b.Accent.Darken(0.3).CSS()},
		{"--accent-text-color", b.Accent.TextColor().CSS()},
		{"--accent-focus-color", b.Accent.Saturate(1.2).CSS()},
		{"--accent-hover-color", b.Accent.TextColor().CSS()},
		{"--accent-bg-hover-color", b.Accent.CSS()},
		{"--accent-link-color", b.LinkAccent.CSS()},
		{"--progress-bg", b.Accent.Tint(bg, 0.75).CSS()},
		{"--accent-ripple", b.LinkAccent.WithAlpha(0.2).CSS()},

		{"--background-color", bg.CSS()},
		{"--background-sidenav-color", bg.Shift(0.03).CSS()},
		{"--background-hover", bg.Shift(0.065).CSS()},
		{"--background-modal-color", bg.Tint(b.Text, 0.02).CSS()},
		{"--background-primary-color", bg.Shift(0.02).CSS()},
	}

	return Palette{Base: b, Entries: entries}
}

// Map returns the palette as name to CSS value
func (p Palette) Map() map[string]string {
	m := make(map[string]string, len(p.Entries))
	for _, e := range p.Entries {
		m[e.Name] = e.Value
	}

	return m
}

// Get returns a single variable
func (p Palette) Get(name string) (string, bool) {
	for _, e := range p.Entries {
		if e.Name == name {
			return e.Value, true
		}
	}

	return "", false
}

// Names returns the variable names in emission order
func (p Palette) Names() []string {
	names := make([]string, len(p.Entries))
	for i, e := range p.Entries {
		names[i] = e.Name
	}

	return names
}

// Rule wraps the palette in a :root rule
func (p Palette) Rule() css.Rule {
	rule := css.Rule{
		Selector:     RootSelector,
		Declarations: make([]css.Declaration, len(p.Entries)),
	}

	for i, e := range p.Entries {
		rule.Declarations[i] = css.Declaration{Property: e.Name, Value: e.Value}
	}

	return rule
}

// Stylesheet renders background and accent in the requested mode
func Stylesheet(background, accent color.Color, mode Mode) css.Stylesheet {
	if mode == ModeLegacy {
		return Legacy(background, accent)
	}

	return css.Stylesheet{Rules: []css.Rule{Derive(background, accent).Rule()}}
}
