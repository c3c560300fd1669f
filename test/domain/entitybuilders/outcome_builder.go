//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"time"

	"github.com/rios0rios0/depstatus/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

type crateEntry struct {
	name string
	deps entities.AnalyzedDependencies
}

// OutcomeBuilder helps create analysis outcomes with a fluent interface.
type OutcomeBuilder struct {
	*testkit.BaseBuilder
	crates   []crateEntry
	duration time.Duration
}

// NewOutcomeBuilder creates a new outcome builder with sensible defaults.
func NewOutcomeBuilder() *OutcomeBuilder {
	return &OutcomeBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		duration:    1500 * time.Millisecond,
	}
}

// WithCrate appends a crate with its dependencies.
func (b *OutcomeBuilder) WithCrate(name string, deps entities.AnalyzedDependencies) *OutcomeBuilder {
	b.crates = append(b.crates, crateEntry{name: name, deps: deps})
	return b
}

// WithDuration sets the analysis duration.
func (b *OutcomeBuilder) WithDuration(duration time.Duration) *OutcomeBuilder {
	b.duration = duration
	return b
}

// Build creates the outcome (satisfies testkit.Builder interface).
func (b *OutcomeBuilder) Build() interface{} {
	return b.BuildOutcome()
}

// BuildOutcome creates the outcome with a concrete return type.
func (b *OutcomeBuilder) BuildOutcome() *entities.AnalyzeDependenciesOutcome {
	crates := entities.NewCrateMap()
	for _, crate := range b.crates {
		crates.Set(entities.MustCrateName(crate.name), crate.deps)
	}
	return &entities.AnalyzeDependenciesOutcome{
		Crates:   crates,
		Duration: b.duration,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *OutcomeBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.crates = nil
	b.duration = 1500 * time.Millisecond
	return b
}

// Clone creates a deep copy of the OutcomeBuilder.
func (b *OutcomeBuilder) Clone() testkit.Builder {
	crates := make([]crateEntry, len(b.crates))
	copy(crates, b.crates)
	return &OutcomeBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		crates:      crates,
		duration:    b.duration,
	}
}
