//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/depstatus/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// dependencyEntry is one dependency waiting to be built. An empty latest means
// the latest version is unknown.
type dependencyEntry struct {
	category entities.DependencyCategory
	name     string
	required string
	latest   string
}

// DependenciesBuilder helps create the analyzed dependencies of one crate.
type DependenciesBuilder struct {
	*testkit.BaseBuilder
	entries []dependencyEntry
}

// NewDependenciesBuilder creates a builder with no dependencies.
func NewDependenciesBuilder() *DependenciesBuilder {
	return &DependenciesBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
	}
}

// WithMain adds a regular dependency.
func (b *DependenciesBuilder) WithMain(name, required, latest string) *DependenciesBuilder {
	return b.with(entities.CategoryMain, name, required, latest)
}

// WithDev adds a dev dependency.
func (b *DependenciesBuilder) WithDev(name, required, latest string) *DependenciesBuilder {
	return b.with(entities.CategoryDev, name, required, latest)
}

// WithBuild adds a build dependency.
func (b *DependenciesBuilder) WithBuild(name, required, latest string) *DependenciesBuilder {
	return b.with(entities.CategoryBuild, name, required, latest)
}

func (b *DependenciesBuilder) with(
	category entities.DependencyCategory, name, required, latest string,
) *DependenciesBuilder {
	b.entries = append(b.entries, dependencyEntry{
		category: category,
		name:     name,
		required: required,
		latest:   latest,
	})
	return b
}

// Build creates the dependencies (satisfies testkit.Builder interface).
func (b *DependenciesBuilder) Build() interface{} {
	return b.BuildDependencies()
}

// BuildDependencies creates the dependencies with a concrete return type.
func (b *DependenciesBuilder) BuildDependencies() entities.AnalyzedDependencies {
	deps := entities.NewAnalyzedDependencies()
	for _, entry := range b.entries {
		var latest *entities.Version
		if entry.latest != "" {
			version := entities.MustParseVersion(entry.latest)
			latest = &version
		}
		deps.Category(entry.category).Set(
			entities.MustCrateName(entry.name),
			entities.NewAnalyzedDependency(entities.MustParseVersionReq(entry.required), latest),
		)
	}
	return deps
}

// Reset clears the builder state, allowing it to be reused.
func (b *DependenciesBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.entries = nil
	return b
}

// Clone creates a deep copy of the DependenciesBuilder.
func (b *DependenciesBuilder) Clone() testkit.Builder {
	entries := make([]dependencyEntry, len(b.entries))
	copy(entries, b.entries)
	return &DependenciesBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		entries:     entries,
	}
}
