// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PlainText reduces an HTML fragment to its text content with collapsed
// whitespace. Strings without markup or entities are returned unchanged.
func PlainText(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	doc.Find("script, style").Remove()
	return strings.Join(strings.Fields(doc.Text()), " ")
}
