package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualFold(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"Widget", "widget", true},
		{"WIDGET", "wIdGeT", true},
		{"Straße", "STRASSE", true},
		{"Widget", "Widgets", false},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, EqualFold(tt.a, tt.b))
		})
	}
}

func TestContainsFold(t *testing.T) {
	assert.True(t, ContainsFold("Power Tools", "tool"))
	assert.True(t, ContainsFold("Power Tools", ""))
	assert.True(t, ContainsFold("", ""))
	assert.False(t, ContainsFold("Power Tools", "garden"))
	assert.False(t, ContainsFold("", "x"))
}
