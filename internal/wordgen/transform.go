package wordgen

import (
	"regexp"
	"strings"
)

var (
	reMojibakeApostrophe = regexp.MustCompile(`(?i)â€™`)
	rePossessive         = regexp.MustCompile(`'s$`)
	reAccept             = regexp.MustCompile(`(?i)^[a-z]+$`)
)

// PreTransform repairs mis-decoded apostrophes and drops a trailing "'s".
func PreTransform(word string) string {
	word = reMojibakeApostrophe.ReplaceAllString(word, "'")
	return rePossessive.ReplaceAllString(word, "")
}

// PostTransform normalizes an accepted word.
func PostTransform(word string) string {
	return strings.ToLower(word)
}

// Accept reports whether word consists only of ASCII letters.
func Accept(word string) bool {
	return reAccept.MatchString(word)
}
