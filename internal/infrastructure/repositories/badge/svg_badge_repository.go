package badge

import (
	"bytes"
	"fmt"
	"html"
	"text/template"
	"unicode/utf8"

	"github.com/rios0rios0/depstatus/internal/domain/entities"
)

const (
	label = "dependencies"

	colorUpToDate = "#4c1"
	colorOutdated = "#dfb317"
	colorUnknown  = "#9f9f9f"

	// approximate advance of an 11px Verdana glyph, plus horizontal padding
	charWidth    = 7
	textPadding  = 10
	textBaseline = 14
)

var badgeTemplate = template.Must(template.New("badge").Funcs(template.FuncMap{
	"xml": html.EscapeString,
}).Parse(`<svg xmlns="http://www.w3.org/2000/svg" width="{{.Width}}" height="20">` +
	`<linearGradient id="b" x2="0" y2="100%"><stop offset="0" stop-color="#bbb" stop-opacity=".1"/>` +
	`<stop offset="1" stop-opacity=".1"/></linearGradient>` +
	`<mask id="a"><rect width="{{.Width}}" height="20" rx="3" fill="#fff"/></mask>` +
	`<g mask="url(#a)">` +
	`<path fill="#555" d="M0 0h{{.LabelWidth}}v20H0z"/>` +
	`<path fill="{{.Color}}" d="M{{.LabelWidth}} 0h{{.StatusWidth}}v20H{{.LabelWidth}}z"/>` +
	`<path fill="url(#b)" d="M0 0h{{.Width}}v20H0z"/>` +
	`</g>` +
	`<g fill="#fff" text-anchor="middle" font-family="DejaVu Sans,Verdana,Geneva,sans-serif" font-size="11">` +
	`<text x="{{.LabelX}}" y="15" fill="#010101" fill-opacity=".3">{{xml .Label}}</text>` +
	`<text x="{{.LabelX}}" y="{{.Baseline}}">{{xml .Label}}</text>` +
	`<text x="{{.StatusX}}" y="15" fill="#010101" fill-opacity=".3">{{xml .Status}}</text>` +
	`<text x="{{.StatusX}}" y="{{.Baseline}}">{{xml .Status}}</text>` +
	`</g></svg>`))

type badgeData struct {
	Label       string
	Status      string
	Color       string
	LabelWidth  int
	StatusWidth int
	Width       int
	LabelX      int
	StatusX     int
	Baseline    int
}

// SVGBadgeRepository draws flat shields-style badges.
type SVGBadgeRepository struct{}

// NewSVGBadgeRepository creates a new SVGBadgeRepository.
func NewSVGBadgeRepository() *SVGBadgeRepository {
	return &SVGBadgeRepository{}
}

// Render draws the badge for the outcome, or the "unknown" badge when it is nil.
func (it *SVGBadgeRepository) Render(outcome *entities.AnalyzeDependenciesOutcome) entities.Badge {
	status, color := statusOf(outcome)

	labelWidth := textWidth(label)
	statusWidth := textWidth(status)
	data := badgeData{
		Label:       label,
		Status:      status,
		Color:       color,
		LabelWidth:  labelWidth,
		StatusWidth: statusWidth,
		Width:       labelWidth + statusWidth,
		LabelX:      labelWidth / 2,             //nolint:mnd // centre
		StatusX:     labelWidth + statusWidth/2, //nolint:mnd // centre
		Baseline:    textBaseline,
	}

	var buf bytes.Buffer
	if err := badgeTemplate.Execute(&buf, data); err != nil {
		panic(fmt.Errorf("render badge: %w", err))
	}
	return entities.Badge{SVG: buf.Bytes()}
}

func statusOf(outcome *entities.AnalyzeDependenciesOutcome) (string, string) {
	if outcome == nil {
		return "unknown", colorUnknown
	}
	outdated := outcome.CountOutdated()
	if outdated == 0 {
		return "up to date", colorUpToDate
	}
	return fmt.Sprintf("%d of %d outdated", outdated, outcome.CountTotal()), colorOutdated
}

func textWidth(text string) int {
	return utf8.RuneCountInString(text)*charWidth + textPadding
}
