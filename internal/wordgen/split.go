package wordgen

import "regexp"

var (
	// Spaces, punctuation, box-drawing bars, ellipses and the dash family.
	reSplitter = regexp.MustCompile(`[\[\]\s/.?!,:;(){}~*_=│|…\x{2012}\x{2013}\x{2014}\x{2015}\x{2053}\x{2010}-]+`)
	// Zero-width space, zero-width joiner and the stray C1 0x97 byte.
	reZeroWidth = regexp.MustCompile(`[\x{200b}\x{200d}\x{0097}]`)
	// Surrounding quotes and a trailing possessive.
	reQuotes = regexp.MustCompile(`(?i)^['’‘"“”]+|['’‘"“”]+$|['’‘"“”]s$`)
)

// EachWord splits line into words and calls onWord for each non-empty one.
func EachWord(line string, onWord func(word string)) {
	for _, word := range reSplitter.Split(line, -1) {
		word = reZeroWidth.ReplaceAllString(word, "")
		word = reQuotes.ReplaceAllString(word, "")
		if word != "" {
			onWord(word)
		}
	}
}
