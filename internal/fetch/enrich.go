package fetch

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/talentbridge/internal/logger"
	"github.com/jonathan/talentbridge/internal/types"
)

// MaxExcerpt bounds a description taken from page text when the page has no meta
// description.
const MaxExcerpt = 280

// Enricher proposes values for empty company profile fields from the company website.
type Enricher struct {
	Options *Options
	// UseBrowser renders the page when the static HTML carries no description.
	UseBrowser bool
	// Render defaults to WithBrowser.
	Render Renderer
	Logger *zap.Logger
}

// Suggestion is the enriched profile and what changed.
type Suggestion struct {
	URL      string               `json:"url"`
	Meta     Meta                 `json:"meta"`
	Rendered bool                 `json:"rendered"`
	Filled   []string             `json:"filled"`
	Profile  types.CompanyProfile `json:"profile"`
}

// Enrich fetches website (or the profile's own website when empty) and fills the
// profile's empty website, description and LinkedIn fields. Set fields are kept.
func (e *Enricher) Enrich(ctx context.Context, profile types.CompanyProfile, website string) (*Suggestion, error) {
	log := e.Logger
	if log == nil {
		log = zap.NewNop()
	}
	opts := e.Options
	if opts == nil {
		opts = DefaultOptions()
	}

	if strings.TrimSpace(website) == "" {
		website = profile.Website
	}
	website = NormalizeURL(website)
	if website == "" {
		return nil, &Error{URL: website, Message: "no website to enrich from"}
	}

	result, err := URL(ctx, website, opts)
	if err != nil {
		return nil, err
	}

	meta, err := ExtractMeta(result.HTML, result.URL)
	if err != nil {
		return nil, &Error{URL: website, Message: "failed to extract metadata", Cause: err}
	}

	page := result.HTML
	rendered := false
	if meta.BestDescription() == "" && e.UseBrowser {
		render := e.Render
		if render == nil {
			render = WithBrowser
		}
		log.Debug("static page has no description, rendering", zap.String("url", result.URL))

		html, err := render(ctx, result.URL, opts.Timeout)
		if err != nil {
			log.Warn("browser fallback failed", zap.String("url", result.URL), zap.Error(err))
		} else if renderedMeta, err := ExtractMeta(html, result.URL); err == nil {
			meta = mergeMeta(meta, renderedMeta)
			page = html
			rendered = true
		}
	}

	description := meta.BestDescription()
	if description == "" {
		if text, err := ExtractMainText(page, CompanyPageSelectors()); err == nil {
			description = excerpt(text, MaxExcerpt)
		}
	}

	suggestion := &Suggestion{
		URL:      result.URL,
		Meta:     meta,
		Rendered: rendered,
		Filled:   make([]string, 0, 3),
		Profile:  profile,
	}

	fill := func(field string, current *string, value string) {
		if strings.TrimSpace(*current) == "" && value != "" {
			*current = value
			suggestion.Filled = append(suggestion.Filled, field)
		}
	}
	fill("website", &suggestion.Profile.Website, website)
	fill("description", &suggestion.Profile.Description, description)
	fill("linkedin_url", &suggestion.Profile.LinkedInURL, meta.LinkedInURL)

	log.Debug("enriched company profile",
		zap.String("url", result.URL),
		zap.Strings("filled", suggestion.Filled),
		zap.String("description", logger.Truncate(description, 80)),
		zap.Bool("rendered", rendered))

	return suggestion, nil
}

// mergeMeta keeps static values and takes rendered ones where the static page had none.
func mergeMeta(static, rendered Meta) Meta {
	pick := func(a, b string) string {
		if a != "" {
			return a
		}
		return b
	}
	return Meta{
		Title:         pick(static.Title, rendered.Title),
		SiteName:      pick(static.SiteName, rendered.SiteName),
		Description:   pick(static.Description, rendered.Description),
		OGDescription: pick(static.OGDescription, rendered.OGDescription),
		LinkedInURL:   pick(static.LinkedInURL, rendered.LinkedInURL),
		XingURL:       pick(static.XingURL, rendered.XingURL),
	}
}

// excerpt cuts text at the last word boundary within limit runes.
func excerpt(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	cut := string(runes[:limit])
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,;:") + "…"
}
