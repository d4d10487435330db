// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"strings"
	"unicode"
)

// Ellipsis is appended to clipped text.
const Ellipsis = " …"

// Clip truncates text to at most limit characters (runes). Text at or under
// the limit is returned unchanged. Longer text is cut at the limit, trailing
// whitespace is trimmed, and Ellipsis is appended.
func Clip(text string, limit int) string {
	if text == "" {
		return ""
	}
	if limit < 0 {
		limit = 0
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return strings.TrimRightFunc(string(runes[:limit]), unicode.IsSpace) + Ellipsis
}
