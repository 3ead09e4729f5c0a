package core

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewID(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
	}{
		{
			name:   "valid prefix",
			prefix: "evt",
		},
		{
			name:   "uppercase prefix gets lowercased",
			prefix: "EVT",
		},
		{
			name:   "prefix with spaces gets trimmed",
			prefix: "  cmd  ",
		},
	}

	fullPattern := regexp.MustCompile(`^[a-z0-9]+_[0123456789ABCDEFGHJKMNPQRSTVWXYZ]{26}$`)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewID(tt.prefix)

			expectedPrefix := strings.ToLower(strings.TrimSpace(tt.prefix)) + "_"
			assert.True(t, strings.HasPrefix(got, expectedPrefix), "NewID() = %v, want prefix %v", got, expectedPrefix)
			assert.Regexp(t, fullPattern, got)
		})
	}
}

func TestNewID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewID("evt")
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestNewID_PanicsOnEmptyPrefix(t *testing.T) {
	assert.Panics(t, func() { NewID("  ") })
}
