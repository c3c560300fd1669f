package entities

const badgeAltText = "dependency status"

// BadgeLinks are the canonical URLs of a repository's status page and badge.
// The snippets are pasted verbatim into READMEs, so their bytes must not change.
type BadgeLinks struct {
	SelfURL        string
	StatusImageURL string
}

// NewBadgeLinks derives the canonical links from the service base URL.
func NewBadgeLinks(baseURL string, path RepoPath) BadgeLinks {
	selfURL := baseURL + "/repo/" + path.Site().Slug() + "/" + path.Qualifier() + "/" + path.Name()
	return BadgeLinks{
		SelfURL:        selfURL,
		StatusImageURL: selfURL + "/status.svg",
	}
}

// Markdown returns the Markdown embed snippet, trailing newline included.
func (l BadgeLinks) Markdown() string {
	return "[![" + badgeAltText + "](" + l.StatusImageURL + ")](" + l.SelfURL + ")\n"
}

// Asciidoc returns the Asciidoc image macro, trailing newline included.
func (l BadgeLinks) Asciidoc() string {
	return "image::" + l.StatusImageURL + "[link=\"" + l.SelfURL + "\",alt=\"" + badgeAltText + "\"]\n"
}
