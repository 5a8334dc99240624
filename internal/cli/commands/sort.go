package commands

import (
	"slices"

	"github.com/leapstack-labs/brewround/internal/core"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

func newCollator() *collate.Collator {
	return collate.New(language.BritishEnglish, collate.IgnoreCase, collate.Loose)
}

// sortedStrings returns a sorted copy of in, ordered for people rather than bytes.
func sortedStrings(in []string) []string {
	out := slices.Clone(in)
	newCollator().SortStrings(out)
	return out
}

// sortedPeople returns a copy of people ordered by full name.
func sortedPeople(people []*core.Person) []*core.Person {
	out := slices.Clone(people)
	c := newCollator()
	slices.SortStableFunc(out, func(a, b *core.Person) int {
		return c.CompareString(a.FullName(), b.FullName())
	})
	return out
}
