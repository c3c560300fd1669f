package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/rios0rios0/depstatus/internal/domain/entities"
	"github.com/rios0rios0/depstatus/internal/domain/repositories"
)

const (
	heroDanger  = "is-danger"
	heroWarning = "is-warning"
	heroSuccess = "is-success"

	layoutTemplate = "layout"
)

//go:embed templates/*.gohtml
var templatesFS embed.FS

// page is the data handed to the status templates.
type page struct {
	Title          string
	BaseURL        string
	GaugesSiteID   string
	HeroClass      string
	Path           entities.RepoPath
	BadgeURI       template.URL
	Links          entities.BadgeLinks
	Sections       []entities.CrateSection
	HasDuration    bool
	RenderedMillis int64
}

// StatusPageRepository renders repository status pages with html/template, so
// crate and repository names coming from third-party metadata are escaped for
// the context they appear in.
type StatusPageRepository struct {
	settings *entities.Settings
	badges   repositories.BadgeRepository
	success  *template.Template
	failure  *template.Template
}

// NewStatusPageRepository parses the page templates once; the result is safe
// for concurrent use.
func NewStatusPageRepository(
	settings *entities.Settings,
	badges repositories.BadgeRepository,
) *StatusPageRepository {
	base := template.Must(template.New(layoutTemplate).ParseFS(
		templatesFS, "templates/layout.gohtml", "templates/chrome.gohtml",
	))

	return &StatusPageRepository{
		settings: settings,
		badges:   badges,
		success:  parsePage(base, "templates/status_success.gohtml"),
		failure:  parsePage(base, "templates/status_failure.gohtml"),
	}
}

func parsePage(base *template.Template, file string) *template.Template {
	return template.Must(template.Must(base.Clone()).ParseFS(templatesFS, file))
}

// Render produces the success page when an outcome is present and the failure
// page otherwise.
func (it *StatusPageRepository) Render(
	outcome *entities.AnalyzeDependenciesOutcome,
	path entities.RepoPath,
) entities.Document {
	data := page{
		Title:        path.DisplayName(),
		BaseURL:      it.settings.BaseURL,
		GaugesSiteID: it.settings.GaugesSiteID,
		HeroClass:    heroClass(outcome),
		Path:         path,
	}

	tpl := it.failure
	if outcome != nil {
		tpl = it.success
		data.BadgeURI = template.URL(it.badges.Render(outcome).SVGDataURI()) //nolint:gosec // generated locally
		data.Links = entities.NewBadgeLinks(it.settings.BaseURL, path)
		data.Sections = entities.BuildSections(outcome)
		data.HasDuration = true
		data.RenderedMillis = entities.DurationMillis(outcome.Duration)
	}

	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, layoutTemplate, data); err != nil {
		// the templates are embedded and the buffer cannot fail to grow
		panic(fmt.Errorf("render status page for %s: %w", path, err))
	}

	return entities.Document{
		ContentType: entities.HTMLContentType,
		Body:        buf.Bytes(),
	}
}

// heroClass picks the header color: danger for failures, warning when anything
// is outdated, success otherwise.
func heroClass(outcome *entities.AnalyzeDependenciesOutcome) string {
	switch {
	case outcome == nil:
		return heroDanger
	case outcome.AnyOutdated():
		return heroWarning
	default:
		return heroSuccess
	}
}
