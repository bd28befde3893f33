package fetch

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noise is removed before the main text is read.
const noise = "nav, footer, header, script, style, noscript, form, .cookie-banner, .cookie-consent, .gdpr-notice"

// Meta is what a company homepage says about itself.
type Meta struct {
	Title         string `json:"title,omitempty"`
	SiteName      string `json:"site_name,omitempty"`
	Description   string `json:"description,omitempty"`
	OGDescription string `json:"og_description,omitempty"`
	LinkedInURL   string `json:"linkedin_url,omitempty"`
	XingURL       string `json:"xing_url,omitempty"`
}

// BestDescription prefers the meta description over og:description.
func (m Meta) BestDescription() string {
	if m.Description != "" {
		return m.Description
	}
	return m.OGDescription
}

// ExtractMeta parses HTML and returns the page title, descriptions and social links.
// Relative links are resolved against base when it is a valid URL.
func ExtractMeta(html string, base string) (Meta, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return Meta{}, fmt.Errorf("failed to parse HTML: %w", err)
	}

	meta := Meta{
		Title:         cleanWhitespace(doc.Find("head title").First().Text()),
		Description:   metaContent(doc, `meta[name="description"], meta[name="Description"]`),
		OGDescription: metaContent(doc, `meta[property="og:description"]`),
		SiteName:      metaContent(doc, `meta[property="og:site_name"]`),
	}

	baseURL, _ := url.Parse(base)
	doc.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, _ := s.Attr("href")
		link := resolve(baseURL, href)
		switch DetectPlatform(link) {
		case PlatformLinkedIn:
			if meta.LinkedInURL == "" && IsCompanyPage(link) {
				meta.LinkedInURL = link
			}
		case PlatformXing:
			if meta.XingURL == "" && IsCompanyPage(link) {
				meta.XingURL = link
			}
		}
		return meta.LinkedInURL == "" || meta.XingURL == ""
	})

	return meta, nil
}

// ExtractMainText returns the text of the first element matching one of selectors,
// or of the body when none match, with boilerplate removed.
func ExtractMainText(html string, selectors []string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find(noise).Remove()

	content := doc.Find("body")
	for _, selector := range selectors {
		if match := doc.Find(selector); match.Length() > 0 {
			content = match.First()
			break
		}
	}
	return cleanWhitespace(content.Text()), nil
}

// CompanyPageSelectors lists where homepages and about pages keep their copy.
func CompanyPageSelectors() []string {
	return []string{"main", "article", ".about", "#about", ".about-us", ".ueber-uns", "#ueber-uns", ".content", "#content"}
}

func metaContent(doc *goquery.Document, selector string) string {
	content, _ := doc.Find(selector).First().Attr("content")
	return cleanWhitespace(content)
}

func resolve(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	if base == nil || ref.IsAbs() {
		return ref.String()
	}
	return base.ResolveReference(ref).String()
}

// cleanWhitespace collapses runs of whitespace into single spaces.
func cleanWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
