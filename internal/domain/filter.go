package domain

import (
	"strings"

	"golang.org/x/text/cases"
)

// Filter is a keyword plus required-tag query against the catalog.
// The zero Filter matches every dish.
type Filter struct {
	// Keyword is matched as a case-insensitive substring of the dish name or
	// of any of its tags. Surrounding whitespace is ignored.
	Keyword string

	// Tags lists the tags a dish must all carry. Order and repeats are irrelevant.
	Tags []string
}

// Matches reports whether d passes both the keyword test and the tag test.
func (f Filter) Matches(d Dish) bool {
	return f.matchesTags(d) && f.matchesKeyword(d)
}

// IsEmpty reports whether f matches every dish.
func (f Filter) IsEmpty() bool {
	return strings.TrimSpace(f.Keyword) == "" && len(f.Tags) == 0
}

func (f Filter) matchesKeyword(d Dish) bool {
	kw := strings.TrimSpace(f.Keyword)
	if kw == "" {
		return true
	}
	// A Caser carries state and must not be shared, so each call gets its own.
	fold := cases.Fold()
	kw = fold.String(kw)
	if strings.Contains(fold.String(d.Name), kw) {
		return true
	}
	for _, t := range d.Tags {
		if strings.Contains(fold.String(t), kw) {
			return true
		}
	}
	return false
}

func (f Filter) matchesTags(d Dish) bool {
	for _, t := range f.Tags {
		if !d.HasTag(t) {
			return false
		}
	}
	return true
}
