package entities

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownRepoSite is returned when a site slug does not name a supported host.
var ErrUnknownRepoSite = errors.New("unknown repository site")

// RepoSite is a Git hosting service whose repositories can be reported on.
// The set is closed: every mapping below switches over all variants without a
// default arm, and an out-of-range value panics instead of falling through.
type RepoSite int

const (
	RepoSiteGitHub RepoSite = iota
	RepoSiteGitLab
	RepoSiteBitbucket
)

// AllRepoSites returns every supported site in declaration order.
func AllRepoSites() []RepoSite {
	return []RepoSite{RepoSiteGitHub, RepoSiteGitLab, RepoSiteBitbucket}
}

// ParseRepoSite resolves a site from its URL slug ("github", "gitlab", "bitbucket").
func ParseRepoSite(slug string) (RepoSite, error) {
	normalized := strings.ToLower(strings.TrimSpace(slug))
	for _, site := range AllRepoSites() {
		if site.Slug() == normalized {
			return site, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRepoSite, slug)
}

// Slug is the path segment used for the site in canonical status URLs.
func (s RepoSite) Slug() string {
	switch s {
	case RepoSiteGitHub:
		return "github"
	case RepoSiteGitLab:
		return "gitlab"
	case RepoSiteBitbucket:
		return "bitbucket"
	}
	panic(fmt.Sprintf("unhandled repository site %d", int(s)))
}

// BaseURI is the web root of the hosting service.
func (s RepoSite) BaseURI() string {
	switch s {
	case RepoSiteGitHub:
		return "https://github.com"
	case RepoSiteGitLab:
		return "https://gitlab.com"
	case RepoSiteBitbucket:
		return "https://bitbucket.org"
	}
	panic(fmt.Sprintf("unhandled repository site %d", int(s)))
}

// Icon is the Font Awesome icon class shown next to the repository name.
func (s RepoSite) Icon() string {
	switch s {
	case RepoSiteGitHub:
		return "fa-github"
	case RepoSiteGitLab:
		return "fa-gitlab"
	case RepoSiteBitbucket:
		return "fa-bitbucket"
	}
	panic(fmt.Sprintf("unhandled repository site %d", int(s)))
}

// Host is the hostname used in clone URLs.
func (s RepoSite) Host() string {
	return strings.TrimPrefix(s.BaseURI(), "https://")
}

func (s RepoSite) String() string {
	return s.Slug()
}
