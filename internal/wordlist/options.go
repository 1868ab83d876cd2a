// Package wordlist builds word lists from one or more text files.
//
// A build picks its input files from Options (the first existing entry of
// Paths, with a fallback, or every existing entry of Combine), reads them line
// by line and passes each line through a Mutator that decides which words end
// up in the list. Entries may be alias tokens such as "$default", resolved
// through an Aliases table.
package wordlist

// DefaultSystemPath is the system dictionary searched by DefaultOptions.
const DefaultSystemPath = "/usr/share/dict/words"

// Options configures a single build.
type Options struct {
	// Paths are searched in order; the first existing entry is used.
	Paths []string
	// Combine lists files whose words are merged. When non-empty, Paths is ignored.
	Combine []string
	// Fallback is used when no Paths entry exists. Empty disables the fallback.
	Fallback string
	// ForceFallback uses Fallback without looking at Paths.
	ForceFallback bool
	// Mutator filters and transforms each line.
	Mutator Mutator
	// KeepEmpty passes empty lines through the Identity mutator.
	KeepEmpty bool
}

// DefaultOptions searches the system dictionary and falls back to the bundled
// default list.
func DefaultOptions() Options {
	return Options{
		Paths:    []string{DefaultSystemPath},
		Fallback: DefaultAlias,
	}
}
