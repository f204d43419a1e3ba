package model

import (
	"slices"
	"strings"
)

// Predicate selects the tasks shown in the filtered view.
type Predicate interface {
	Test(t Task) bool
}

type showAll struct{}

func (showAll) Test(Task) bool { return true }

// ShowAll matches every task.
var ShowAll Predicate = showAll{}

// NameContainsKeywords matches tasks whose name contains any keyword as a whole
// word, ignoring case.
type NameContainsKeywords struct {
	Keywords []string
}

func (p NameContainsKeywords) Test(t Task) bool {
	words := strings.Fields(t.Name().Value())
	for _, kw := range p.Keywords {
		for _, w := range words {
			if strings.EqualFold(w, kw) {
				return true
			}
		}
	}
	return false
}

func (p NameContainsKeywords) Equal(other NameContainsKeywords) bool {
	return slices.Equal(p.Keywords, other.Keywords)
}
