package chain

import "strings"

// Separator divides the subject from the command suffix.
const Separator = " /"

// Split separates query into its subject and command suffix. Only the last
// Separator counts: earlier occurrences remain part of the subject.
// ok is false when query contains no Separator, in which case subject is the
// whole query and suffix is empty.
//
// Example: Split("a /b /c") -> ("a /b", "c", true)
func Split(query string) (subject, suffix string, ok bool) {
	i := strings.LastIndex(query, Separator)
	if i < 0 {
		return query, "", false
	}
	return query[:i], query[i+len(Separator):], true
}
