package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/teamfinder/internal/bot/action"
)

func TestParseTarget(t *testing.T) {
	tests := []struct {
		in   string
		want Target
	}{
		{"", Target{}},
		{"  ", Target{}},
		{"-1001234567890", Target{ChatID: -1001234567890}},
		{"42", Target{ChatID: 42}},
		{"@valorant_team", Target{Username: "@valorant_team"}},
		{"valorant_team", Target{Username: "@valorant_team"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParseTarget(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in == "" || tt.in == "  ", got.IsZero())
		})
	}
}

func TestTargetString(t *testing.T) {
	assert.Equal(t, "@chan", Target{Username: "@chan"}.String())
	assert.Equal(t, "-5", Chat(-5).String())
}

func TestIsCallback(t *testing.T) {
	assert.False(t, Update{Action: action.Text{Body: "x"}}.IsCallback())
	assert.True(t, Update{CallbackID: "1", Action: action.FormConfirm{}}.IsCallback())
}
