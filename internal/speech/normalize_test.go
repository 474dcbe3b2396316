package speech_test

import (
	"testing"

	"github.com/morrisrob/mke-flavors/internal/speech"
	"github.com/stretchr/testify/assert"
)

func TestSpeakableName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"surname override", "Leducs", "Le Dukes"},
		{"highway override", "Culvers - Hwy 164", "Culvers Highway one sixty four"},
		{"separator stripped", "Kopps - Greenfield", "Kopps Greenfield"},
		{"only first separator stripped", "Kopps - Greenfield - North", "Kopps Greenfield - North"},
		{"plain name passes through", "Gilles", "Gilles"},
		{"bare dash is kept", "Oscar's-South", "Oscar's-South"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, speech.SpeakableName(tt.input))
		})
	}
}
