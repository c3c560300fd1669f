package entities

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyQualifier is returned when a repository owner/namespace is blank.
	ErrEmptyQualifier = errors.New("repository qualifier must not be empty")
	// ErrEmptyName is returned when a repository name is blank.
	ErrEmptyName = errors.New("repository name must not be empty")
)

// repoPathSegments is the number of segments in "site/qualifier/name".
const repoPathSegments = 3

// RepoPath identifies one repository on one hosting site.
type RepoPath struct {
	site      RepoSite
	qualifier string
	name      string
}

// NewRepoPath validates and builds a RepoPath.
func NewRepoPath(site RepoSite, qualifier, name string) (RepoPath, error) {
	qualifier = strings.TrimSpace(qualifier)
	name = strings.TrimSpace(name)
	if qualifier == "" {
		return RepoPath{}, ErrEmptyQualifier
	}
	if name == "" {
		return RepoPath{}, ErrEmptyName
	}
	// force an unknown site to surface here rather than while rendering
	_ = site.Slug()
	return RepoPath{site: site, qualifier: qualifier, name: name}, nil
}

// ParseRepoPath parses the "site/qualifier/name" form used on the command line
// and in status URLs, e.g. "github/rust-lang/cargo".
func ParseRepoPath(raw string) (RepoPath, error) {
	segments := strings.Split(strings.Trim(strings.TrimSpace(raw), "/"), "/")
	if len(segments) != repoPathSegments {
		return RepoPath{}, fmt.Errorf("expected <site>/<qualifier>/<name>, got %q", raw)
	}

	site, err := ParseRepoSite(segments[0])
	if err != nil {
		return RepoPath{}, err
	}
	return NewRepoPath(site, segments[1], segments[2])
}

// Site returns the hosting site.
func (p RepoPath) Site() RepoSite { return p.site }

// Qualifier returns the owner or namespace.
func (p RepoPath) Qualifier() string { return p.qualifier }

// Name returns the repository name.
func (p RepoPath) Name() string { return p.name }

// DisplayName is "qualifier / name", the heading shown on status pages.
func (p RepoPath) DisplayName() string {
	return p.qualifier + " / " + p.name
}

// OriginURL links to the repository on its hosting site.
func (p RepoPath) OriginURL() string {
	return p.site.BaseURI() + "/" + p.qualifier + "/" + p.name
}

func (p RepoPath) String() string {
	return p.site.Slug() + "/" + p.qualifier + "/" + p.name
}
