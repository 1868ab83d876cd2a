// Package assets holds the bundled default dictionary.
package assets

import (
	_ "embed"
	"strings"
)

//go:embed default.txt
var defaultList string

// DefaultWords returns the bundled default dictionary, one entry per word.
func DefaultWords() []string {
	return strings.Fields(defaultList)
}
