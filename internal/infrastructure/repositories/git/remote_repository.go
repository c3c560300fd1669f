package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depstatus/internal/domain/entities"
)

const originRemote = "origin"

// ErrNoRemoteURL is returned when the origin remote has no URL configured.
var ErrNoRemoteURL = errors.New("origin remote has no URL")

// RemoteRepository reads the origin remote of a local checkout with go-git.
type RemoteRepository struct{}

// NewRemoteRepository creates a new RemoteRepository.
func NewRemoteRepository() *RemoteRepository {
	return &RemoteRepository{}
}

// Resolve opens the repository containing repoDir and maps its origin URL to a RepoPath.
func (it *RemoteRepository) Resolve(ctx context.Context, repoDir string) (entities.RepoPath, error) {
	if err := ctx.Err(); err != nil {
		return entities.RepoPath{}, err
	}

	//nolint:exhaustruct // only parent discovery is needed
	repo, err := gogit.PlainOpenWithOptions(repoDir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return entities.RepoPath{}, fmt.Errorf("failed to open git repository at %q: %w", repoDir, err)
	}

	remote, err := repo.Remote(originRemote)
	if err != nil {
		return entities.RepoPath{}, fmt.Errorf("failed to read %s remote: %w", originRemote, err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return entities.RepoPath{}, ErrNoRemoteURL
	}
	logger.Debugf("Origin remote URL: %s", urls[0])

	return parseRemoteURL(urls[0])
}

// parseRemoteURL maps SSH and HTTPS clone URLs of the supported sites to a RepoPath.
func parseRemoteURL(rawURL string) (entities.RepoPath, error) {
	cleaned := strings.TrimSuffix(strings.TrimSpace(rawURL), ".git")

	for _, site := range entities.AllRepoSites() {
		if !strings.Contains(cleaned, site.Host()) {
			continue
		}
		qualifier, name, err := parseStandardGitURL(cleaned, site.Host())
		if err != nil {
			return entities.RepoPath{}, err
		}
		return entities.NewRepoPath(site, qualifier, name)
	}

	return entities.RepoPath{}, fmt.Errorf("unsupported git remote URL: %s", rawURL)
}

// parseStandardGitURL extracts "qualifier/name" from git@host:q/n or https://host/q/n.
func parseStandardGitURL(url, hostname string) (string, string, error) {
	var pathPart string

	if strings.HasPrefix(url, "git@") {
		parts := strings.SplitN(url, ":", 2) //nolint:mnd // host:path
		if len(parts) < 2 {                  //nolint:mnd // need both parts
			return "", "", fmt.Errorf("invalid SSH URL: %s", url)
		}
		pathPart = parts[1]
	} else {
		_, after, ok := strings.Cut(url, hostname)
		if !ok {
			return "", "", fmt.Errorf("hostname %s not found in URL: %s", hostname, url)
		}
		pathPart = strings.TrimPrefix(strings.TrimPrefix(after, ":"), "/")
	}

	segments := strings.Split(strings.Trim(pathPart, "/"), "/")
	if len(segments) < 2 { //nolint:mnd // need qualifier + name
		return "", "", fmt.Errorf("cannot extract qualifier/name from URL: %s", url)
	}

	return segments[0], segments[1], nil
}
