package palette

import (
	"strings"

	"shade/internal/app/color"
	"shade/internal/app/css"
)

// LegacyContrast is the accent contrast below which legacy link colors are repaired
const LegacyContrast = 4.5

var textInputTypes = []string{
	"text", "password", "email", "url", "time", "date",
	"datetime", "datetime-local", "tel", "number", "search",
}

// Legacy builds the per-selector stylesheet used by pages without custom property support
func Legacy(background, accent color.Color) css.Stylesheet {
	text := background.TextColor()
	accentText := accent.TextColor()
	linkAccent := accent.Legible(background, LegacyContrast)

	focus := accent.Saturate(1.2)
	help := text.Tint(background, 0.25)
	footerText := accentText.TextColor().Tint(accentText, 0.95)

	shadow1 := text.WithAlpha(0.14)
	shadow2 := text.WithAlpha(0.12)
	shadow3 := text.WithAlpha(0.2)
	shadowBMC := background.WithAlpha(0.2)

	cardShadow := layeredShadow([]string{"0 2px 2px 0", "0 3px 1px -2px", "0 1px 5px 0"}, shadow1, shadow2, shadow3)
	modalShadow := layeredShadow([]string{"0 24px 38px 3px", "0 9px 46px 8px", "0 11px 15px -7px"}, shadow1, shadow2, shadow3)
	bgModal := background.Tint(text, 0.02)
	underline := "0 1px 0 0 " + accent.CSS()

	// active inputs get the accent bottom border and its matching shadow
	underlined := func(r css.Rule) css.Rule {
		return r.Add("border-bottom", "1px solid "+accent.CSS()).
			Add("-webkit-box-shadow", underline).
			Add("box-shadow", underline)
	}

	rules := []css.Rule{
		css.NewRule("html",
			"background-color", background.CSS(),
			"color", text.CSS()),
		css.NewRule("label", "color", text.CSS()),
		css.NewRule("a", "color", linkAccent.CSS()),
		css.NewRule("input", "color", text.CSS()),
		css.NewRule(".helper-text", "color", help.CSS()),
		css.NewRule(".ha-blue",
			"background-color", accent.CSS(),
			"color", accentText.CSS()),
		css.NewRule("nav .brand-logo", "color", accentText.CSS()),
		css.NewRule("nav ul a", "color", accentText.CSS()),
		css.NewRule(".accent-title", "color", accentText.CSS()),
		css.NewRule("footer a:link",
			"text-decoration", "underline",
			"color", footerText.CSS()),
		css.NewRule(".accent-text", "color", footerText.CSS()),
		css.NewRule(".btn", "background-color", accent.CSS()),
		css.NewRule(".btn:hover, .btn-large:hover, .btn-small:hover",
			"background-color", accent.CSS(),
			"color", accentText.CSS()),
		css.NewRule(".btn:focus, .btn-large:focus, .btn-small:focus, .btn-floating:focus",
			"background-color", focus.CSS()),
		css.NewRule(".modal .modal-footer .btn, .modal .modal-footer .btn-large, .modal .modal-footer .btn-small, .modal .modal-footer .btn-flat",
			"margin", "6px 0",
			"background-color", accent.CSS(),
			"color", accentText.CSS()),
		css.NewRule(".dropdown-content",
			"background-color", background.CSS(),
			"box-shadow", cardShadow,
			"-webkit-box-shadow", cardShadow),
		css.NewRule(".dropdown-content li > a", "color", text.Tint(background, 0.5).CSS()),
		css.NewRule(".modal",
			"background-color", bgModal.CSS(),
			"box-shadow", modalShadow),
		css.NewRule(".modal .modal-footer", "background-color", bgModal.CSS()),
		css.NewRule(".modal.modal-fixed-footer .modal-footer", "border-top", "1px solid "+text.WithAlpha(0.1).CSS()),
		css.NewRule(".modal-overlay", "background", text.CSS()),
		css.NewRule(`[type="checkbox"].filled-in:checked + span:not(.lever)::before`,
			"border-right", "2px solid "+text.CSS(),
			"border-bottom", "2px solid "+text.CSS()),
		css.NewRule(`[type="checkbox"].filled-in:checked + span:not(.lever)::after`,
			"border", "2px solid "+text.CSS(),
			"background-color", accent.Darken(0.2).Saturate(1.2).CSS()),
		css.NewRule(".input-field .prefix.active", "color", accent.CSS()),
		css.NewRule(".input-field > label", "color", help.CSS()),
		css.NewRule(".input-field .helper-text", "color", help.CSS()),
		css.NewRule(inputSelector(":focus:not([readonly]) + label"), "color", text.CSS()),
		underlined(css.NewRule(validInputSelector())),
		underlined(css.NewRule(inputSelector(":focus:not([readonly])"))),
		css.NewRule(".card",
			"background-color", background.CSS(),
			"box-shadow", cardShadow),
		css.NewRule("nav a", "color", accentText.CSS()),
		css.NewRule(".btn, .btn-large, .btn-small", "color", accentText.CSS()),
		css.NewRule(".bmc-button img",
			"width", "15px",
			"margin-bottom", "1px",
			"box-shadow", "none",
			"border", "none",
			"vertical-align", "middle"),
		css.NewRule(".bmc-button",
			"line-height", "15px",
			"height", "25px",
			"text-decoration", "none",
			"display", "inline-flex",
			"background-color", background.CSS(),
			"border-radius", "3px",
			"border", "1px solid transparent",
			"padding", "3px 2px 3px 2px",
			"letter-spacing", "0.6px",
			"box-shadow", "0px 1px 2px "+shadowBMC.CSS(),
			"-webkit-box-shadow", "0px 1px 2px 2px "+shadowBMC.CSS(),
			"margin", "0 auto",
			"font-family", "'Cookie', cursive",
			"-webkit-box-sizing", "border-box",
			"box-sizing", "border-box",
			"transition", "0.3s all linear",
			"font-size", "17px"),
		css.NewRule(".bmc-button span", "color", text.CSS()),
	}

	return css.Stylesheet{Rules: rules}
}

// layeredShadow joins offsets and colors into a comma separated box-shadow value
func layeredShadow(offsets []string, colors ...color.Color) string {
	layers := make([]string, 0, len(offsets))
	for i, offset := range offsets {
		layers = append(layers, offset+" "+colors[i].CSS())
	}

	return strings.Join(layers, ", ")
}

// inputSelector lists every materialize text input with suffix appended
func inputSelector(suffix string) string {
	selectors := make([]string, 0, len(textInputTypes)+2)
	selectors = append(selectors, "input:not([type])"+suffix)

	for _, t := range textInputTypes {
		selectors = append(selectors, `input[type="`+t+`"]:not(.browser-default)`+suffix)
	}

	selectors = append(selectors, "textarea.materialize-textarea"+suffix)

	return strings.Join(selectors, ", ")
}

// validInputSelector lists the validated state of every text input, focused or not
func validInputSelector() string {
	selectors := make([]string, 0, 2*len(textInputTypes)+5)
	selectors = append(selectors, "input.valid:not([type])", "input.valid:not([type]):focus")

	for _, t := range textInputTypes {
		s := `input[type="` + t + `"].valid:not(.browser-default)`
		selectors = append(selectors, s, s+":focus")
	}

	selectors = append(selectors,
		"textarea.materialize-textarea.valid",
		"textarea.materialize-textarea.valid:focus",
		".select-wrapper.valid > input.select-dropdown",
	)

	return strings.Join(selectors, ", ")
}
