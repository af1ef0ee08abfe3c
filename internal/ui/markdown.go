package ui

import "github.com/charmbracelet/glamour"

// MarkdownRenderer wraps glamour for rendering pane content at a given width.
type MarkdownRenderer struct {
	renderer *glamour.TermRenderer
	width    int
}

// NewMarkdownRenderer creates a renderer that word-wraps at width.
func NewMarkdownRenderer(width int) (*MarkdownRenderer, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
		glamour.WithEmoji(),
	)
	if err != nil {
		return nil, err
	}
	return &MarkdownRenderer{renderer: renderer, width: width}, nil
}

// Render renders markdown content to styled terminal output.
func (mr *MarkdownRenderer) Render(content string) (string, error) {
	return mr.renderer.Render(content)
}

// UpdateWidth rebuilds the renderer when width changes.
func (mr *MarkdownRenderer) UpdateWidth(width int) error {
	if width == mr.width {
		return nil
	}
	next, err := NewMarkdownRenderer(width)
	if err != nil {
		return err
	}
	mr.renderer = next.renderer
	mr.width = width
	return nil
}
