package entities

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ErrEmptyCrateName is returned when a crate name is blank.
var ErrEmptyCrateName = errors.New("crate name must not be empty")

// CrateName is the validated name of a crate. The zero value is never produced
// by NewCrateName and should be treated as invalid.
type CrateName struct {
	name string
}

// NewCrateName validates a crate name.
func NewCrateName(raw string) (CrateName, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return CrateName{}, ErrEmptyCrateName
	}
	return CrateName{name: name}, nil
}

// MustCrateName is NewCrateName for literals known to be valid.
func MustCrateName(raw string) CrateName {
	name, err := NewCrateName(raw)
	if err != nil {
		panic(err)
	}
	return name
}

func (c CrateName) String() string { return c.name }

// Version is a resolved release of a crate.
//
// This is a thin wrapper around github.com/Masterminds/semver/v3.
type Version struct {
	v *semver.Version
}

// ParseVersion parses a semantic version.
func ParseVersion(raw string) (Version, error) {
	v, err := semver.NewVersion(raw)
	if err != nil {
		return Version{}, fmt.Errorf("parse version %q: %w", raw, err)
	}
	return Version{v: v}, nil
}

// MustParseVersion is ParseVersion for literals known to be valid.
func MustParseVersion(raw string) Version {
	v, err := ParseVersion(raw)
	if err != nil {
		panic(err)
	}
	return v
}

// Equal reports whether both versions have the same precedence and metadata.
func (v Version) Equal(other Version) bool {
	if v.v == nil || other.v == nil {
		return v.v == other.v
	}
	return v.v.Equal(other.v)
}

// Compare returns -1, 0 or 1 when v is lower than, equal to or greater than other.
func (v Version) Compare(other Version) int {
	switch {
	case v.v == nil && other.v == nil:
		return 0
	case v.v == nil:
		return -1
	case other.v == nil:
		return 1
	}
	return v.v.Compare(other.v)
}

// String is the canonical rendering, e.g. "1.2.0" for an input of "v1.2".
func (v Version) String() string {
	if v.v == nil {
		return ""
	}
	return v.v.String()
}

// VersionReq is the version constraint a manifest declares for a dependency.
// The text is kept verbatim for display.
type VersionReq struct {
	raw string
	c   *semver.Constraints
}

// ParseVersionReq parses a version constraint such as "^1.0" or ">=0.3, <0.5".
// A clause without an operator is a caret requirement, so "1.2" means "^1.2".
func ParseVersionReq(raw string) (VersionReq, error) {
	c, err := semver.NewConstraint(caretDefault(raw))
	if err != nil {
		return VersionReq{}, fmt.Errorf("parse version requirement %q: %w", raw, err)
	}
	return VersionReq{raw: raw, c: c}, nil
}

// caretDefault prefixes "^" to every comma-separated clause that starts
// without an operator. Wildcard clauses such as "1.*" are left alone.
func caretDefault(raw string) string {
	clauses := strings.Split(raw, ",")
	for i, clause := range clauses {
		clause = strings.TrimSpace(clause)
		if clause != "" && !strings.ContainsAny(clause[:1], "^~=<>*!") && !strings.ContainsAny(clause, "*xX") {
			clause = "^" + clause
		}
		clauses[i] = clause
	}
	return strings.Join(clauses, ", ")
}

// MustParseVersionReq is ParseVersionReq for literals known to be valid.
func MustParseVersionReq(raw string) VersionReq {
	r, err := ParseVersionReq(raw)
	if err != nil {
		panic(err)
	}
	return r
}

// Matches reports whether the constraint admits the version.
func (r VersionReq) Matches(v Version) bool {
	if r.c == nil || v.v == nil {
		return false
	}
	return r.c.Check(v.v)
}

func (r VersionReq) String() string { return r.raw }
