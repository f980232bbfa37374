package catalog

// CountMatches returns how many formulae in c depend on q.
func CountMatches(c Catalog, q string) int {
	n := 0
	for _, f := range c {
		if Matches(f, q) {
			n++
		}
	}
	return n
}

// MatchingNames returns the names of the formulae in c that depend on q,
// in catalog order. Its length always equals [CountMatches].
func MatchingNames(c Catalog, q string) []string {
	names := []string{}
	for _, f := range c {
		if Matches(f, q) {
			names = append(names, f.Name)
		}
	}
	return names
}

// CollectBuildDependencies returns every distinct build dependency in c.
// Formulae are walked in catalog order and each formula's list in declared
// order; a name keeps the position of its first occurrence. The result is
// never nil.
func CollectBuildDependencies(c Catalog) []string {
	seen := make(map[string]struct{})
	deps := []string{}
	for _, f := range c {
		for _, dep := range f.BuildDependencies {
			if _, ok := seen[dep]; ok {
				continue
			}
			seen[dep] = struct{}{}
			deps = append(deps, dep)
		}
	}
	return deps
}
