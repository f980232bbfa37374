package catalog

// Category names one of the dependency lists a formula declares.
type Category string

const (
	CategoryBuild       Category = "build"
	CategoryRuntime     Category = "runtime"
	CategoryTest        Category = "test"
	CategoryRecommended Category = "recommended"
	CategoryOptional    Category = "optional"
)

// Categories lists every dependency category in matching order.
var Categories = []Category{
	CategoryBuild,
	CategoryRuntime,
	CategoryTest,
	CategoryRecommended,
	CategoryOptional,
}

// Formula is one entry of the Homebrew Core catalog.
//
// Dependency lists keep their declared order and may contain duplicates.
// OptionalDependencies is nil when the snapshot omits the field or sets it
// to null; matching treats nil and empty the same.
type Formula struct {
	Name                    string   `json:"name"`
	BuildDependencies       []string `json:"build_dependencies"`
	Dependencies            []string `json:"dependencies"`
	TestDependencies        []string `json:"test_dependencies"`
	RecommendedDependencies []string `json:"recommended_dependencies"`
	OptionalDependencies    []string `json:"optional_dependencies,omitempty"`
}

// DependenciesOf returns the dependency list for cat.
// Unknown categories yield nil.
func (f *Formula) DependenciesOf(cat Category) []string {
	switch cat {
	case CategoryBuild:
		return f.BuildDependencies
	case CategoryRuntime:
		return f.Dependencies
	case CategoryTest:
		return f.TestDependencies
	case CategoryRecommended:
		return f.RecommendedDependencies
	case CategoryOptional:
		return f.OptionalDependencies
	default:
		return nil
	}
}

// Catalog is the ordered list of formulae from one snapshot.
type Catalog []Formula

// Len returns the number of formulae.
func (c Catalog) Len() int { return len(c) }
