package theme

import (
	"math"

	"shade/internal/app/color"
	"shade/internal/app/palette"
)

// Report is the serializable description of a derived theme
type Report struct {
	Mode       palette.Mode    `json:"mode" yaml:"mode"`
	Background color.Color     `json:"background" yaml:"background"`
	Accent     color.Color     `json:"accent" yaml:"accent"`
	Base       palette.Base    `json:"base" yaml:"base"`
	Variables  []palette.Entry `json:"variables" yaml:"variables"`
	Contrast   Contrast        `json:"contrast" yaml:"contrast"`
}

// Contrast lists ratios against the background, rounded to two decimals
type Contrast struct {
	Text       float64 `json:"text" yaml:"text"`
	Accent     float64 `json:"accent" yaml:"accent"`
	LinkAccent float64 `json:"link_accent" yaml:"link_accent"`
	InputLabel float64 `json:"input_label" yaml:"input_label"`
	IconWarn   float64 `json:"icon_warn" yaml:"icon_warn"`
	DangerText float64 `json:"danger_text" yaml:"danger_text"`
}

// NewReport describes p as derived from s
func NewReport(s Settings, p palette.Palette) Report {
	bg := p.Base.Background

	return Report{
		Mode:       s.Mode,
		Background: s.Background,
		Accent:     s.Accent,
		Base:       p.Base,
		Variables:  p.Entries,
		Contrast: Contrast{
			Text:       ratio(bg, p.Base.Text),
			Accent:     ratio(bg, p.Base.Accent),
			LinkAccent: ratio(bg, p.Base.LinkAccent),
			InputLabel: ratio(bg, p.Base.InputLabel),
			IconWarn:   ratio(bg, p.Base.IconWarn),
			DangerText: ratio(bg, p.Base.DangerText),
		},
	}
}

func ratio(bg, fg color.Color) float64 {
	return math.Round(bg.Contrast(fg)*100) / 100
}
