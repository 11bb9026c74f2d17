package theme

import (
	"fmt"
	"strings"

	"shade/internal/app/color"
	"shade/internal/app/css"
	"shade/internal/app/palette"
	"shade/internal/config"
)

// Settings is the parsed theme selection
type Settings struct {
	Background color.Color  `json:"background_color" yaml:"background_color"`
	Accent     color.Color  `json:"accent_color" yaml:"accent_color"`
	Mode       palette.Mode `json:"mode" yaml:"mode"`
}

// Overrides are raw, unparsed values, an empty field keeps the current value
type Overrides struct {
	Background string `json:"background_color" yaml:"background_color"`
	Accent     string `json:"accent_color" yaml:"accent_color"`
	Mode       string `json:"mode" yaml:"mode"`
}

// DefaultSettings returns the stock white background with the light blue accent
func DefaultSettings() Settings {
	return Settings{
		Background: color.MustParse(config.DefaultBackground),
		Accent:     color.MustParse(config.DefaultAccent),
		Mode:       palette.ModeCustomProperties,
	}
}

// FromConfig parses the theme section of a configuration
func FromConfig(t config.Theme) (Settings, error) {
	return DefaultSettings().Apply(Overrides{
		Background: t.Background,
		Accent:     t.Accent,
		Mode:       t.Mode,
	})
}

// Apply returns s with every non-empty override parsed in
func (s Settings) Apply(o Overrides) (Settings, error) {
	if v := strings.TrimSpace(o.Background); v != "" {
		bg, err := color.Parse(v)
		if err != nil {
			return s, fmt.Errorf("background: %w", err)
		}

		s.Background = bg
	}

	if v := strings.TrimSpace(o.Accent); v != "" {
		accent, err := color.Parse(v)
		if err != nil {
			return s, fmt.Errorf("accent: %w", err)
		}

		s.Accent = accent
	}

	if v := strings.TrimSpace(o.Mode); v != "" {
		mode, err := palette.ParseMode(v)
		if err != nil {
			return s, err
		}

		s.Mode = mode
	}

	return s, nil
}

// IsEmpty reports whether no override is set
func (o Overrides) IsEmpty() bool {
	return strings.TrimSpace(o.Background) == "" &&
		strings.TrimSpace(o.Accent) == "" &&
		strings.TrimSpace(o.Mode) == ""
}

// Palette derives the custom property palette
func (s Settings) Palette() palette.Palette {
	return palette.Derive(s.Background, s.Accent)
}

// Stylesheet renders the stylesheet in the selected mode
func (s Settings) Stylesheet() css.Stylesheet {
	return palette.Stylesheet(s.Background, s.Accent, s.Mode)
}
