// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the data structures shared by the newsdesk search
// backend, renderers, and command-line surface.
package types

// Article is one search result returned by the news search API. Articles
// are read-only: they live for one render cycle and are replaced by the
// next search.
type Article struct {
	// Title is the headline as returned by the API.
	Title string `json:"title" yaml:"title"`

	// Description is the teaser text. NewsAPI sends null for many
	// articles; a nil pointer and an empty string render the same.
	Description *string `json:"description" yaml:"description,omitempty"`

	// URL is the canonical link to the article on the publisher's site.
	URL string `json:"url" yaml:"url"`

	// URLToImage is the lead image, if any.
	URLToImage *string `json:"urlToImage" yaml:"url_to_image,omitempty"`

	Source Source `json:"source" yaml:"source"`

	// PublishedAt is the publication timestamp as sent by the API
	// (ISO 8601, e.g. "2026-03-01T08:15:00Z"). It is kept as text and
	// parsed only for display.
	PublishedAt string `json:"publishedAt" yaml:"published_at"`

	Author  *string `json:"author,omitempty" yaml:"author,omitempty"`
	Content *string `json:"content,omitempty" yaml:"content,omitempty"`
}

// Source identifies the publisher of an article.
type Source struct {
	ID   *string `json:"id" yaml:"id,omitempty"`
	Name string  `json:"name" yaml:"name"`
}

// DescriptionText returns the description or "" when the API sent none.
func (a Article) DescriptionText() string {
	if a.Description == nil {
		return ""
	}
	return *a.Description
}

// ImageURL returns the image URL or "" when the API sent none.
func (a Article) ImageURL() string {
	if a.URLToImage == nil {
		return ""
	}
	return *a.URLToImage
}
