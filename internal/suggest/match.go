package suggest

import "strings"

// MatchDomain reports the completion to offer for text against a single
// candidate domain, or "" when the domain does not match.
//
// The candidate is probed as ".www." + domain so one case-insensitive
// search covers text typed from the start of the bare domain, from after
// the www. prefix, or from a later label. The match is anchored at a label
// boundary by searching for "." + text and then skipping that dot.
func MatchDomain(domain, text string) string {
	probe := ".www." + domain
	idx := strings.Index(strings.ToLower(probe), "."+strings.ToLower(text))
	if idx < 0 {
		return ""
	}

	matched := probe[idx+1:]
	// A remainder without a dot is a bare top-level domain; never
	// complete "com" to "com/".
	if !strings.Contains(matched, ".") {
		return ""
	}
	if strings.Contains(matched, "/") {
		return matched
	}
	return matched + "/"
}
