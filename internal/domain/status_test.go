package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusLabels_Label(t *testing.T) {
	labels := DefaultStatusLabels()

	tests := []struct {
		name     string
		status   Status
		expected string
	}{
		{"new", StatusNew, "🆕 new"},
		{"in progress", StatusInProgress, "⚙️ in progress"},
		{"done", StatusDone, "✅ done"},
		{"unknown status never fails", Status("archived"), UnknownStatusLabel},
		{"empty status", Status(""), UnknownStatusLabel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, labels.Label(tt.status))
		})
	}
}

func TestStatusLabels_CustomTable(t *testing.T) {
	labels := StatusLabels{StatusNew: "fresh"}

	assert.Equal(t, "fresh", labels.Label(StatusNew))
	assert.Equal(t, UnknownStatusLabel, labels.Label(StatusDone))
}
