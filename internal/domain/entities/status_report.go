package entities

// CategoryTable is a rendered category of one crate.
type CategoryTable struct {
	Category DependencyCategory
	Title    string
	Summary  DependencySummary
}

// CrateSection is everything the status page shows for a single crate.
// NoDependencies is set instead of Tables when the crate declares nothing.
type CrateSection struct {
	Name           CrateName
	Tables         []CategoryTable
	NoDependencies bool
}

// BuildSections produces one section per crate in the order of the outcome.
// Empty categories are omitted; a crate without any dependency gets the
// NoDependencies marker and no tables.
func BuildSections(outcome *AnalyzeDependenciesOutcome) []CrateSection {
	sections := make([]CrateSection, 0, outcome.Crates.Len())

	for name, deps := range outcome.Crates.All() {
		section := CrateSection{Name: name}
		if deps.IsEmpty() {
			section.NoDependencies = true
			sections = append(sections, section)
			continue
		}

		for _, category := range AllDependencyCategories() {
			categoryDeps := deps.Category(category)
			if categoryDeps.IsEmpty() {
				continue
			}
			section.Tables = append(section.Tables, CategoryTable{
				Category: category,
				Title:    category.Title(),
				Summary:  Summarize(categoryDeps),
			})
		}
		sections = append(sections, section)
	}

	return sections
}
