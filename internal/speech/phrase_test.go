package speech_test

import (
	"strings"
	"testing"

	"github.com/morrisrob/mke-flavors/internal/speech"
	"github.com/stretchr/testify/assert"
)

func TestFlavorPhrase_SingleFlavor(t *testing.T) {
	phrase := speech.FlavorPhrase("Leducs' spot", []string{"vanilla"})

	assert.Equal(t, "The flavor at Leducs' spot is vanilla.  ", phrase)
}

func TestFlavorPhrase_SingleFlavorAmpersand(t *testing.T) {
	phrase := speech.FlavorPhrase("Gilles", []string{"Cookies & Cream"})

	assert.Equal(t, "The flavor at Gilles is Cookies and Cream.  ", phrase)
}

func TestFlavorPhrase_TwoFlavors(t *testing.T) {
	phrase := speech.FlavorPhrase("X", []string{"chocolate", "vanilla"})

	assert.True(t, strings.HasPrefix(phrase, "The flavors at X are "))
	assert.Contains(t, phrase, "chocolate and vanilla")
	assert.True(t, strings.HasSuffix(phrase, ".  "), "phrase must end with two trailing spaces")
}

func TestFlavorPhrase_ThreeFlavors(t *testing.T) {
	phrase := speech.FlavorPhrase("X", []string{"caramel", "chocolate", "vanilla"})

	assert.Equal(t, "The flavors at X are caramel, chocolate and vanilla.  ", phrase)
}

func TestFlavorPhrase_MultiFlavorAmpersand(t *testing.T) {
	phrase := speech.FlavorPhrase("X", []string{"Cookies & Cream", "Mint"})

	assert.Equal(t, "The flavors at X are Cookies and Cream and Mint.  ", phrase)
}

func TestFlavorPhrase_NoFlavors(t *testing.T) {
	phrase := speech.FlavorPhrase("X", nil)

	assert.Equal(t, "The flavor at X is .  ", phrase)
}
