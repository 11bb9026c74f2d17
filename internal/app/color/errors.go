package color

import (
	"fmt"

	"shade/internal/app/errors"
)

// ParseError reports a color string that is not six hex digits
type ParseError struct {
	Input string
}

// Error implements error
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %q (want #RRGGBB)", errors.ErrInvalidColor, e.Input)
}

// Unwrap allows errors.Is(err, errors.ErrInvalidColor)
func (e *ParseError) Unwrap() error {
	return errors.ErrInvalidColor
}
