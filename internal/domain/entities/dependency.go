package entities

import "fmt"

// AnalyzedDependency is one declared dependency together with the newest release
// the analysis engine found for it.
type AnalyzedDependency struct {
	Required VersionReq
	Latest   *Version // nil when no release could be resolved
}

// NewAnalyzedDependency builds an AnalyzedDependency. latest may be nil.
func NewAnalyzedDependency(required VersionReq, latest *Version) AnalyzedDependency {
	return AnalyzedDependency{Required: required, Latest: latest}
}

// IsOutdated reports whether a newer release exists that the requirement does not
// admit. An unknown latest release is never reported as outdated.
func (d AnalyzedDependency) IsOutdated() bool {
	if d.Latest == nil {
		return false
	}
	return !d.Required.Matches(*d.Latest)
}

// DependencyMap holds the dependencies of one category in manifest order.
type DependencyMap = OrderedMap[CrateName, AnalyzedDependency]

// NewDependencyMap creates an empty DependencyMap.
func NewDependencyMap() *DependencyMap {
	return NewOrderedMap[CrateName, AnalyzedDependency]()
}

// DependencyCategory is a section of a crate manifest. The set is closed.
type DependencyCategory int

const (
	CategoryMain DependencyCategory = iota
	CategoryDev
	CategoryBuild
)

// AllDependencyCategories returns the categories in display order.
func AllDependencyCategories() []DependencyCategory {
	return []DependencyCategory{CategoryMain, CategoryDev, CategoryBuild}
}

// Title is the heading used for the category on the status page.
func (c DependencyCategory) Title() string {
	switch c {
	case CategoryMain:
		return "Dependencies"
	case CategoryDev:
		return "Dev dependencies"
	case CategoryBuild:
		return "Build dependencies"
	}
	panic(fmt.Sprintf("unhandled dependency category %d", int(c)))
}

// AnalyzedDependencies groups the analyzed dependencies of a single crate.
type AnalyzedDependencies struct {
	Main  *DependencyMap
	Dev   *DependencyMap
	Build *DependencyMap
}

// NewAnalyzedDependencies creates an AnalyzedDependencies with three empty categories.
func NewAnalyzedDependencies() AnalyzedDependencies {
	return AnalyzedDependencies{
		Main:  NewDependencyMap(),
		Dev:   NewDependencyMap(),
		Build: NewDependencyMap(),
	}
}

// Category returns the dependencies of the given category.
func (d AnalyzedDependencies) Category(category DependencyCategory) *DependencyMap {
	switch category {
	case CategoryMain:
		return d.Main
	case CategoryDev:
		return d.Dev
	case CategoryBuild:
		return d.Build
	}
	panic(fmt.Sprintf("unhandled dependency category %d", int(category)))
}

// IsEmpty reports whether the crate declares no dependencies at all.
func (d AnalyzedDependencies) IsEmpty() bool {
	return d.Main.IsEmpty() && d.Dev.IsEmpty() && d.Build.IsEmpty()
}

// CountTotal returns the number of dependencies across all categories.
func (d AnalyzedDependencies) CountTotal() int {
	return d.Main.Len() + d.Dev.Len() + d.Build.Len()
}

// CountOutdated returns the number of outdated dependencies across all categories.
func (d AnalyzedDependencies) CountOutdated() int {
	count := 0
	for _, category := range AllDependencyCategories() {
		for _, dep := range d.Category(category).All() {
			if dep.IsOutdated() {
				count++
			}
		}
	}
	return count
}

// AnyOutdated reports whether any dependency of the crate is outdated.
func (d AnalyzedDependencies) AnyOutdated() bool {
	return d.CountOutdated() > 0
}
