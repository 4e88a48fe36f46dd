// Package prefix implements the title prefix styles applied to update
// messages.
package prefix

import "strings"

// terminatePrefix makes sure a non-empty prefix ends with a separator so
// the title can be appended directly after it.
func terminatePrefix(value string) string {
	if value == "" {
		return ""
	}
	if strings.HasSuffix(value, " ") {
		return value
	}
	if strings.HasSuffix(value, ":") {
		return value + " "
	}
	return value + ": "
}
