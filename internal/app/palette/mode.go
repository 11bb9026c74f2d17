package palette

import (
	"fmt"
	"strings"

	"shade/internal/app/errors"
)

// Mode selects the shape of the generated stylesheet
type Mode int

// Mode values
const (
	ModeCustomProperties Mode = iota
	ModeLegacy
)

// Mode names
const (
	CustomPropertiesName = "custom-properties"
	LegacyName           = "legacy"
)

var modeAliases = map[string]Mode{
	CustomPropertiesName: ModeCustomProperties,
	"properties":         ModeCustomProperties,
	"variables":          ModeCustomProperties,
	"vars":               ModeCustomProperties,
	LegacyName:           ModeLegacy,
	"selectors":          ModeLegacy,
	"classic":            ModeLegacy,
}

// ParseMode converts a mode name or alias. Empty input selects the default mode.
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return ModeCustomProperties, nil
	}

	if m, ok := modeAliases[name]; ok {
		return m, nil
	}

	return 0, fmt.Errorf("%w: %q (must be '%s' or '%s')", errors.ErrInvalidMode, s, CustomPropertiesName, LegacyName)
}

// String returns the canonical mode name
func (m Mode) String() string {
	switch m {
	case ModeCustomProperties:
		return CustomPropertiesName
	case ModeLegacy:
		return LegacyName
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// MarshalText implements encoding.TextMarshaler
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}

	*m = parsed

	return nil
}
