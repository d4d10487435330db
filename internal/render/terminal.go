// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.yaml.in/yaml/v3"
)

// Format selects how TerminalView writes results.
type Format string

const (
	FormatCards Format = "cards"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatCards, FormatTable, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatCards, nil
	default:
		return "", fmt.Errorf("unsupported format %q: use cards, table, json, or yaml", s)
	}
}

const (
	colorPrimary = "#7D56F4"
	colorError   = "#FF0000"
	colorInfo    = "#626262"
	colorBorder  = "#874BFD"
)

var (
	cardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorPrimary))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorError))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorInfo))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorBorder)).
			Padding(0, 1)
)

// TerminalView writes the status region to Status and the result area to
// Out as they change.
type TerminalView struct {
	Out    io.Writer
	Status io.Writer
	Format Format

	// LastStatus holds the most recent status text.
	LastStatus string
	// LastResults holds the most recent result area.
	LastResults Results
}

// SetStatus writes non-empty status text as one line. The loading status
// is dimmed; anything else is an error and shown in red.
func (v *TerminalView) SetStatus(text string) {
	v.LastStatus = text
	if text == "" || v.Status == nil {
		return
	}
	fmt.Fprintln(v.Status, styleForStatus(text).Render(text))
}

func styleForStatus(text string) lipgloss.Style {
	if text == LoadingStatus {
		return infoStyle
	}
	return statusStyle
}

// SetResults writes the result area in the configured format. A cleared
// result area writes nothing.
func (v *TerminalView) SetResults(r Results) {
	v.LastResults = r
	if r.IsCleared() || v.Out == nil {
		return
	}
	if err := WriteResults(v.Out, r, v.Format); err != nil && v.Status != nil {
		fmt.Fprintf(v.Status, "warning: writing results: %v\n", err)
	}
}

// WriteResults writes r to w in format f.
func WriteResults(w io.Writer, r Results, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		data, err := yaml.Marshal(r)
		if err != nil {
			return fmt.Errorf("marshaling results: %w", err)
		}
		_, err = w.Write(data)
		return err
	case FormatTable:
		WriteTable(w, r)
		return nil
	default:
		FormatCardList(w, r)
		return nil
	}
}

// FormatCardList writes one bordered card per result.
func FormatCardList(w io.Writer, r Results) {
	if r.Placeholder != "" {
		fmt.Fprintln(w, infoStyle.Render(r.Placeholder))
		return
	}
	for _, c := range r.Cards {
		var b strings.Builder
		b.WriteString(cardTitleStyle.Render(c.Title))
		b.WriteString("\n")
		b.WriteString(c.Description)
		b.WriteString("\n")
		b.WriteString(infoStyle.Render(cardMeta(c)))
		b.WriteString("\n")
		b.WriteString("Image: " + c.ImageURL)
		b.WriteString("\n")
		b.WriteString(c.Link.Text + ": " + c.Link.Href)
		fmt.Fprintln(w, cardStyle.Render(b.String()))
	}
}

func cardMeta(c Card) string {
	if c.PublishedAt == "" {
		return c.SourceName
	}
	return c.SourceName + " · " + c.PublishedAt
}

// WriteTable writes results as a human-readable table.
func WriteTable(w io.Writer, r Results) {
	if r.Placeholder != "" {
		fmt.Fprintln(w, r.Placeholder)
		return
	}

	fmt.Fprintf(w, "%-4s  %-60s  %-20s  %s\n", "Rank", "Title", "Source", "Published")
	fmt.Fprintln(w, strings.Repeat("-", 110))

	for i, c := range r.Cards {
		fmt.Fprintf(w, "%-4d  %-60s  %-20s  %s\n",
			i+1, truncate(c.Title, 60), truncate(c.SourceName, 20), c.PublishedAt)
	}

	fmt.Fprintf(w, "\n%d results\n", len(r.Cards))
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
