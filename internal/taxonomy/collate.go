package taxonomy

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collator orders taxonomy names for display.
//
// Names are compared lower-cased with a locale-aware collator, so "apple",
// "Banana" and "cherry" sort alphabetically regardless of case and accented
// letters sort next to their base letters.
//
// A Collator keeps internal buffers and must not be shared between goroutines.
type Collator struct {
	c *collate.Collator
}

// NewCollator returns a Collator for the given language.
func NewCollator(tag language.Tag) *Collator {
	return &Collator{c: collate.New(tag)}
}

// Compare returns -1, 0 or 1 comparing a and b case-insensitively.
func (c *Collator) Compare(a, b string) int {
	return c.c.CompareString(strings.ToLower(a), strings.ToLower(b))
}

// SortStrings sorts names in place. Names that compare equal keep their order.
func (c *Collator) SortStrings(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		return c.Compare(names[i], names[j]) < 0
	})
}
