// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render projects news articles into display cards and writes them
// as an HTML page, terminal cards, a table, JSON, or YAML.
package render

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/pdiddy/newsdesk/pkg/types"
)

const (
	// DescriptionLimit is the clip limit for card descriptions.
	DescriptionLimit = 160

	// NoImageURL replaces a missing or broken article image.
	NoImageURL = "https://via.placeholder.com/600x360?text=No+Image"

	// LoadingStatus is the status text while a search is in flight.
	LoadingStatus = "Loading news …"

	// NoResultsText is shown across the result area when a search
	// returns no articles.
	NoResultsText = "No results."

	// LinkText labels the outbound link on each card.
	LinkText = "Read article"

	// LinkTarget and LinkRel open the article in a new browsing context
	// without giving it a handle back to this page.
	LinkTarget = "_blank"
	LinkRel    = "noopener noreferrer"
)

// Card is the display form of one article.
type Card struct {
	Title string `json:"title" yaml:"title"`

	// Description is the clipped plain-text description followed by the
	// full description length, e.g. "Glaciers … [~412 chars]".
	Description string `json:"description" yaml:"description"`

	ImageURL string `json:"image_url" yaml:"image_url"`
	ImageAlt string `json:"image_alt" yaml:"image_alt"`

	Link Link `json:"link" yaml:"link"`

	SourceName  string `json:"source" yaml:"source"`
	PublishedAt string `json:"published_at" yaml:"published_at"`
}

// Link is an outbound link to the original article.
type Link struct {
	Href   string `json:"href" yaml:"href"`
	Text   string `json:"text" yaml:"text"`
	Target string `json:"target" yaml:"target"`
	Rel    string `json:"rel" yaml:"rel"`
}

// Results is the content of the result area: either a placeholder or one
// card per article. The zero value is a cleared result area.
type Results struct {
	Placeholder string `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Cards       []Card `json:"cards" yaml:"cards"`
}

// IsCleared reports whether the result area shows nothing at all.
func (r Results) IsCleared() bool {
	return r.Placeholder == "" && len(r.Cards) == 0
}

// RenderResults builds the result area for articles, preserving their order.
// An empty list yields the NoResultsText placeholder and no cards.
func RenderResults(articles []types.Article) Results {
	if len(articles) == 0 {
		return Results{Placeholder: NoResultsText}
	}
	cards := make([]Card, 0, len(articles))
	for _, a := range articles {
		cards = append(cards, NewCard(a))
	}
	return Results{Cards: cards}
}

// NewCard builds the card for one article.
func NewCard(a types.Article) Card {
	desc := PlainText(a.DescriptionText())

	img := a.ImageURL()
	if img == "" {
		img = NoImageURL
	}

	return Card{
		Title:       a.Title,
		Description: fmt.Sprintf("%s  [~%d chars]", Clip(desc, DescriptionLimit), utf8.RuneCountInString(desc)),
		ImageURL:    img,
		ImageAlt:    a.Title,
		Link: Link{
			Href:   a.URL,
			Text:   LinkText,
			Target: LinkTarget,
			Rel:    LinkRel,
		},
		SourceName:  a.Source.Name,
		PublishedAt: formatPublished(a.PublishedAt),
	}
}

// formatPublished renders an RFC 3339 timestamp as "2 Jan 2006 15:04 UTC".
// Anything unparseable is shown as sent.
func formatPublished(s string) string {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return s
	}
	return t.UTC().Format("2 Jan 2006 15:04 UTC")
}
