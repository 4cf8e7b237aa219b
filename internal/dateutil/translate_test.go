package dateutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMomentToFPFormat(t *testing.T) {
	tests := []struct {
		template string
		expected string
	}{
		{"YYYY-MM-DD", "Y-m-d"},
		{"YYYY-MM-DD h:mm A", "Y-m-d h:i K"},
		{"YY-M-D", "y-n-j"},
		{"MMMM MMM", "F M"},
		{"dddd ddd dd d", "l D D w"},
		{"HH:mm:ss", "H:i:S"},
		{"H:m:s", "G:i:s"},
		{"hh:mm a", "h:i K"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			assert.Equal(t, tt.expected, MomentToFPFormat(tt.template))
		})
	}
}

func TestMomentToFPFormatStable(t *testing.T) {
	templates := []string{"YYYY-MM-DD", "ddd, MMM D YYYY h:mm A", "[at] HH:mm:ss", "DD/MM/YY"}

	for _, template := range templates {
		t.Run(template, func(t *testing.T) {
			first := MomentToFPFormat(template)
			for range 3 {
				assert.Equal(t, first, MomentToFPFormat(template))
			}
		})
	}

	assert.Equal(t, "Y-m-d", MomentToFPFormat("YYYY-MM-DD"))
}
