package speech

import (
	"fmt"
	"strings"
)

// FlavorPhrase builds the spoken sentence for one location's flavor list.
// Multi-flavor lists are comma-joined with a single "and" before the final
// flavor, and "&" is spoken as "and". The trailing double space is the
// renderer's inter-sentence pause convention.
func FlavorPhrase(name string, flavors []string) string {
	if len(flavors) > 1 {
		joined := strings.Join(flavors[:len(flavors)-1], ", ") + " and " + flavors[len(flavors)-1]
		joined = strings.ReplaceAll(joined, "&", "and")

		return fmt.Sprintf("The flavors at %s are %s.  ", name, joined)
	}

	var flavor string
	if len(flavors) == 1 {
		flavor = flavors[0]
	}

	return strings.ReplaceAll(fmt.Sprintf("The flavor at %s is %s.  ", name, flavor), "&", "and")
}
