package catalog

import "strings"

// MatchDependency reports whether dep names q itself or a versioned
// variant of it ("q@...").
func MatchDependency(dep, q string) bool {
	return dep == q || strings.HasPrefix(dep, q+"@")
}

// Matches reports whether f depends on q in any category.
// The query is assumed to be validated already.
func Matches(f Formula, q string) bool {
	for _, cat := range Categories {
		if containsMatch(f.DependenciesOf(cat), q) {
			return true
		}
	}
	return false
}

// MatchedCategories returns the categories, in [Categories] order, in which
// f depends on q. It returns nil when f does not match.
func MatchedCategories(f Formula, q string) []Category {
	var cats []Category
	for _, cat := range Categories {
		if containsMatch(f.DependenciesOf(cat), q) {
			cats = append(cats, cat)
		}
	}
	return cats
}

func containsMatch(deps []string, q string) bool {
	for _, dep := range deps {
		if MatchDependency(dep, q) {
			return true
		}
	}
	return false
}
