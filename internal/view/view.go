// Package view holds the HTML templates and view models of the forum pages.
package view

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/damoang/angple-forum/internal/listing"
	"github.com/yuin/goldmark"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed home.md
var homeMarkdown string

// SiteTitle is shown in the page title and header
const SiteTitle = "Форум"

// NavLink header navigation entry
type NavLink struct {
	Path  string
	Label string
}

// HomeView home page model
type HomeView struct {
	Title string
	Nav   []NavLink
	Intro template.HTML
}

// ListingView listing page model
type ListingView struct {
	Title       string
	Nav         []NavLink
	Path        string
	Heading     string
	Query       string
	Placeholder string
	Rows        []listing.Row
}

// NotFoundView not-found page model
type NotFoundView struct {
	Title string
	Nav   []NavLink
	Path  string
}

// Templates parses the embedded page templates
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}

// NewListingView builds the view of a listing page
func NewListingView(path string, nav []NavLink, page *listing.Page) ListingView {
	return ListingView{
		Title:       page.Heading() + " | " + SiteTitle,
		Nav:         nav,
		Path:        path,
		Heading:     page.Heading(),
		Query:       page.Query(),
		Placeholder: page.Input().Placeholder(),
		Rows:        page.Rows(),
	}
}

// HomeIntro returns the rendered home page introduction
func HomeIntro() template.HTML {
	return RenderMarkdown(homeMarkdown)
}

// RenderMarkdown converts Markdown to HTML. Raw HTML in the source is
// dropped; on conversion failure the source is returned escaped.
func RenderMarkdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}
