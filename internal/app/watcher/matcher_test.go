package watcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_NewMatcher(t *testing.T) {
	tests := []struct {
		name      string
		includes  []string
		ignores   []string
		expectErr bool
	}{
		{
			name:     "config and env",
			includes: []string{"shade.yaml", ".env"},
		},
		{
			name:     "empty patterns",
			includes: []string{},
			ignores:  []string{},
		},
		{
			name:      "invalid include pattern",
			includes:  []string{"[invalid"},
			expectErr: true,
		},
		{
			name:      "invalid ignore pattern",
			includes:  []string{"*.yaml"},
			ignores:   []string{"[invalid"},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMatcher(tt.includes, tt.ignores)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, m)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, m)
			}
		})
	}
}

func Test_Matcher_Match(t *testing.T) {
	m, err := NewMatcher([]string{"shade.yaml", ".env", "*.yml"}, []string{"backup.yml"})
	assert.NoError(t, err)

	tests := []struct {
		path     string
		expected bool
	}{
		{"shade.yaml", true},
		{"/etc/shade/shade.yaml", true},
		{"./shade.yaml", true},
		{"conf/.env", true},
		{"theme.yml", true},
		{"backup.yml", false},
		{"shade.yaml.swp", false},
		{".shade.yaml.swp", false},
		{"shade.yaml~", false},
		{".#shade.yaml", false},
		{"#shade.yaml#", false},
		{"other.yaml", false},
		{"shade.json", false},
		{"", false},
		{".", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, m.Match(tt.path))
		})
	}
}

func Test_baseName(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"shade.yaml", "shade.yaml"},
		{"a/b/shade.yaml", "shade.yaml"},
		{"./.env", ".env"},
		{"dir/", "dir"},
		{".", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, baseName(tt.path))
		})
	}
}
