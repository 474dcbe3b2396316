// Package speech renders location names and flavor lists as text suitable
// for the voice renderer.
package speech

import "strings"

// speakableOverrides maps canonical directory names to variants the voice
// renderer pronounces correctly.
var speakableOverrides = map[string]string{
	"Leducs":            "Le Dukes",
	"Culvers - Hwy 164": "Culvers Highway one sixty four",
}

// SpeakableName returns the pronunciation variant of a canonical location
// name. Names without an override pass through unchanged except that the
// first "- " separator is dropped.
func SpeakableName(name string) string {
	if fixed, ok := speakableOverrides[name]; ok {
		return fixed
	}

	return strings.Replace(name, "- ", "", 1)
}
