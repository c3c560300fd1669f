package entities

import "time"

// CrateMap holds the analyzed crates of a repository in discovery order.
type CrateMap = OrderedMap[CrateName, AnalyzedDependencies]

// NewCrateMap creates an empty CrateMap.
func NewCrateMap() *CrateMap {
	return NewOrderedMap[CrateName, AnalyzedDependencies]()
}

// AnalyzeDependenciesOutcome is the result of analyzing every crate of one
// repository. It is produced once per request and treated as read-only.
type AnalyzeDependenciesOutcome struct {
	Crates   *CrateMap
	Duration time.Duration
}

// AnyOutdated reports whether any dependency of any crate is outdated.
func (o *AnalyzeDependenciesOutcome) AnyOutdated() bool {
	for _, deps := range o.Crates.All() {
		if deps.AnyOutdated() {
			return true
		}
	}
	return false
}

// CountTotal returns the number of dependencies across all crates.
func (o *AnalyzeDependenciesOutcome) CountTotal() int {
	total := 0
	for _, deps := range o.Crates.All() {
		total += deps.CountTotal()
	}
	return total
}

// CountOutdated returns the number of outdated dependencies across all crates.
func (o *AnalyzeDependenciesOutcome) CountOutdated() int {
	outdated := 0
	for _, deps := range o.Crates.All() {
		outdated += deps.CountOutdated()
	}
	return outdated
}

// DurationMillis truncates a duration to whole milliseconds:
// seconds*1000 + subsecond nanoseconds/1_000_000.
func DurationMillis(d time.Duration) int64 {
	seconds := int64(d / time.Second)
	subsecNanos := int64(d % time.Second)
	return seconds*1000 + subsecNanos/int64(time.Millisecond)
}
