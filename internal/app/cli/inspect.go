package cli

import (
	"fmt"
	"strings"

	"shade/internal/app/color"
	"shade/internal/app/theme"
)

type swatchRow struct {
	name     string
	color    color.Color
	contrast float64
	rated    bool
}

func renderInspect(r theme.Report, styled bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", sectionHeader.Render("Theme"))
	fmt.Fprintf(&b, "  %-12s %s\n", "mode", r.Mode)
	fmt.Fprintf(&b, "  %-12s %s\n", "background", Swatch(r.Background, styled))
	fmt.Fprintf(&b, "  %-12s %s\n", "accent", Swatch(r.Accent, styled))

	rows := []swatchRow{
		{"text", r.Base.Text, r.Contrast.Text, true},
		{"accent", r.Base.Accent, r.Contrast.Accent, true},
		{"link accent", r.Base.LinkAccent, r.Contrast.LinkAccent, true},
		{"input label", r.Base.InputLabel, r.Contrast.InputLabel, true},
		{"icon warn", r.Base.IconWarn, r.Contrast.IconWarn, true},
		{"danger text", r.Base.DangerText, r.Contrast.DangerText, true},
		{"blue icon", r.Base.BlueIcon, 0, false},
		{"drop shadow", r.Base.DropShadow, 0, false},
	}

	fmt.Fprintf(&b, "%s\n", sectionHeader.Render("Derived"))

	for _, row := range rows {
		line := fmt.Sprintf("  %-12s %s", row.name, Swatch(row.color, styled))
		if row.rated {
			line += "  " + RenderContrast(row.contrast, styled)
		}

		fmt.Fprintln(&b, line)
	}

	fmt.Fprintf(&b, "%s\n", sectionHeader.Render("Variables"))

	for _, e := range r.Variables {
		name := e.Name
		if styled {
			name = muted.Render(name)
		}

		fmt.Fprintf(&b, "  %s: %s\n", name, e.Value)
	}

	return b.String()
}
