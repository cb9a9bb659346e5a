package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModeString(t *testing.T) {
	m := Mode{Width: 1920, Height: 1080, Refresh: 144}
	assert.Equal(t, "1920x1080 @ 144Hz", m.String())
}

func TestModeValid(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
		want bool
	}{
		{"full hd", Mode{1920, 1080, 60}, true},
		{"zero width", Mode{0, 1080, 60}, false},
		{"zero height", Mode{1920, 0, 60}, false},
		{"zero refresh", Mode{1920, 1080, 0}, false},
		{"negative", Mode{-1, 1080, 60}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mode.Valid())
		})
	}
}

func TestApplyRejectsInvalidMode(t *testing.T) {
	err := Apply(Mode{Width: 0, Height: 0, Refresh: 0})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnsupported)
}
