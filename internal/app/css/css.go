// Package css holds an ordered stylesheet model and renders it as text
package css

import (
	"io"
	"strings"
)

// Declaration is a single property: value pair
type Declaration struct {
	Property string `json:"property" yaml:"property"`
	Value    string `json:"value" yaml:"value"`
}

// Rule is a selector with its declarations in emission order
type Rule struct {
	Selector     string        `json:"selector" yaml:"selector"`
	Declarations []Declaration `json:"declarations" yaml:"declarations"`
}

// Stylesheet is an ordered list of rules
type Stylesheet struct {
	Rules []Rule `json:"rules" yaml:"rules"`
}

// NewRule creates a rule from alternating property, value arguments
func NewRule(selector string, pairs ...string) Rule {
	rule := Rule{
		Selector:     selector,
		Declarations: make([]Declaration, 0, len(pairs)/2),
	}

	for i := 0; i+1 < len(pairs); i += 2 {
		rule.Declarations = append(rule.Declarations, Declaration{Property: pairs[i], Value: pairs[i+1]})
	}

	return rule
}

// Add appends a declaration and returns the rule for chaining
func (r Rule) Add(property, value string) Rule {
	r.Declarations = append(r.Declarations, Declaration{Property: property, Value: value})
	return r
}

// Get returns the value of the last declaration of property
func (r Rule) Get(property string) (string, bool) {
	for i := len(r.Declarations) - 1; i >= 0; i-- {
		if r.Declarations[i].Property == property {
			return r.Declarations[i].Value, true
		}
	}

	return "", false
}

// Map flattens the declarations, later duplicates win
func (r Rule) Map() map[string]string {
	m := make(map[string]string, len(r.Declarations))
	for _, d := range r.Declarations {
		m[d.Property] = d.Value
	}

	return m
}

// Rule returns the first rule with the given selector
func (s Stylesheet) Rule(selector string) (Rule, bool) {
	for _, r := range s.Rules {
		if r.Selector == selector {
			return r, true
		}
	}

	return Rule{}, false
}

// Lookup returns the value of property inside selector
func (s Stylesheet) Lookup(selector, property string) (string, bool) {
	r, ok := s.Rule(selector)
	if !ok {
		return "", false
	}

	return r.Get(property)
}

// String renders the stylesheet as CSS text
func (s Stylesheet) String() string {
	var sb strings.Builder

	_, _ = s.WriteTo(&sb)

	return sb.String()
}

// WriteTo writes the rendered stylesheet to w
func (s Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64

	for i, r := range s.Rules {
		if i > 0 {
			n, err := io.WriteString(w, "\n")
			total += int64(n)

			if err != nil {
				return total, err
			}
		}

		n, err := io.WriteString(w, r.String())
		total += int64(n)

		if err != nil {
			return total, err
		}
	}

	return total, nil
}

// String renders a single rule
func (r Rule) String() string {
	var sb strings.Builder

	sb.WriteString(r.Selector)
	sb.WriteString(" {\n")

	for _, d := range r.Declarations {
		sb.WriteString("\t")
		sb.WriteString(d.Property)
		sb.WriteString(": ")
		sb.WriteString(d.Value)
		sb.WriteString(";\n")
	}

	sb.WriteString("}\n")

	return sb.String()
}
