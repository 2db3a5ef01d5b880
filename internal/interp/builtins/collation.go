package builtins

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// wordCollator backs BEFOREP's locale-aware ordering and SAVE's sorted
// variable listing: a raw byte compare would put "Z" before "a", which
// reads wrong to anyone who actually typed a Logo program in a natural
// language. Grounded on SPEC_FULL.md §2's domain-stack wiring for
// `golang.org/x/text/collate`.
var wordCollator = collate.New(language.Und)

func collatedLess(a, b string) bool {
	return wordCollator.CompareString(a, b) < 0
}

// sortCollated sorts names using the same collator, for SAVE's
// alphabetical variable listing (natural-number-aware sorting of
// procedure names for POTS and SAVE lives in meta.go via maruel/natural).
func sortCollated(names []string) {
	sort.Slice(names, func(i, j int) bool { return collatedLess(names[i], names[j]) })
}
