package entities

import "fmt"

const (
	crateRegistryURL = "https://crates.io/crates/"
	notAvailable     = "N/A"
	statusOutdated   = "out of date"
	statusUpToDate   = "up to date"
)

// DependencyRow is one line of a dependency table.
type DependencyRow struct {
	Name      CrateName
	Required  string
	Latest    string // verbatim latest version, or "N/A"
	HasLatest bool
	Outdated  bool
}

// CrateURL links the dependency to its registry page.
func (r DependencyRow) CrateURL() string {
	return crateRegistryURL + r.Name.String()
}

// Status is the tag shown in the status column.
func (r DependencyRow) Status() string {
	if r.Outdated {
		return statusOutdated
	}
	return statusUpToDate
}

// DependencySummary counts and projects the dependencies of one category.
type DependencySummary struct {
	Total    int
	Outdated int
	Rows     []DependencyRow
}

// Summarize counts the outdated dependencies and projects every entry into a
// row, keeping the order of deps.
func Summarize(deps *DependencyMap) DependencySummary {
	summary := DependencySummary{
		Total: deps.Len(),
		Rows:  make([]DependencyRow, 0, deps.Len()),
	}

	for name, dep := range deps.All() {
		outdated := dep.IsOutdated()
		if outdated {
			summary.Outdated++
		}

		row := DependencyRow{
			Name:     name,
			Required: dep.Required.String(),
			Latest:   notAvailable,
			Outdated: outdated,
		}
		if dep.Latest != nil {
			row.Latest = dep.Latest.String()
			row.HasLatest = true
		}
		summary.Rows = append(summary.Rows, row)
	}

	return summary
}

// UpToDate returns the number of dependencies that are not outdated.
func (s DependencySummary) UpToDate() int {
	return s.Total - s.Outdated
}

// Text is the parenthesized count line shown under a table title.
func (s DependencySummary) Text() string {
	if s.Outdated == 0 {
		return fmt.Sprintf("(%d total, all up-to-date)", s.Total)
	}
	return fmt.Sprintf("(%d total, %d up-to-date, %d outdated)", s.Total, s.UpToDate(), s.Outdated)
}
