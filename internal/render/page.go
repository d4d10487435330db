// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/pdiddy/newsdesk/internal/search"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/page.html.tmpl"))

// PageView is the view context of one page: the form state, the status
// region, and the result area. The controller writes the status and results;
// WritePage renders the whole page.
type PageView struct {
	Title string

	Query    string
	Language string
	SortBy   string

	Status  string
	Results Results
}

// NewPageView returns a page with the form preset to the selector defaults.
func NewPageView() *PageView {
	return &PageView{
		Title:    "newsdesk",
		Language: search.DefaultLanguage,
		SortBy:   search.DefaultSort,
	}
}

// SetStatus replaces the status text.
func (p *PageView) SetStatus(text string) { p.Status = text }

// SetResults replaces the result area.
func (p *PageView) SetResults(r Results) { p.Results = r }

type pageData struct {
	*PageView
	Languages  []search.Option
	SortModes  []search.Option
	NoImageURL string
}

// WritePage renders the page as HTML.
func WritePage(w io.Writer, p *PageView) error {
	data := pageData{
		PageView:   p,
		Languages:  search.Languages,
		SortModes:  search.SortModes,
		NoImageURL: NoImageURL,
	}
	if err := pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}
