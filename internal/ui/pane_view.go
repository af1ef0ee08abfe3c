package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"splitpane/internal/layout"
	"splitpane/internal/ui/textutil"
)

// PaneView shows one panel: a title line with its current share and the panel's
// markdown content rendered to the pane width.
type PaneView struct {
	ID      string
	Title   string
	Content string

	Size      float64 // percent, kept current by the group's callbacks
	Collapsed bool

	width, height int
	renderer      *MarkdownRenderer
	rendered      string
	renderedWidth int
}

var (
	_ View  = (*PaneView)(nil)
	_ Sizer = (*PaneView)(nil)
)

// NewPaneView creates a pane. Title falls back to the id.
func NewPaneView(id, title, content string) *PaneView {
	if title == "" {
		title = id
	}
	return &PaneView{ID: id, Title: title, Content: content}
}

// Callbacks returns the hooks that keep the pane in step with its panel.
func (v *PaneView) Callbacks() layout.Callbacks {
	return layout.Callbacks{
		OnResize:   func(size float64) { v.Size = size },
		OnCollapse: func(collapsed bool) { v.Collapsed = collapsed },
	}
}

// SetContent replaces the markdown content.
func (v *PaneView) SetContent(title, content string) {
	if title != "" {
		v.Title = title
	}
	if content != v.Content {
		v.Content = content
		v.rendered = ""
		v.renderedWidth = 0
	}
}

// SetSize implements Sizer.
func (v *PaneView) SetSize(width, height int) {
	v.width, v.height = width, height
}

// Init implements View.
func (v *PaneView) Init() tea.Cmd { return nil }

// Update implements View.
func (v *PaneView) Update(msg tea.Msg) (View, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		v.SetSize(ws.Width, ws.Height)
	}
	return v, nil
}

// View implements View. The result is exactly width x height cells.
func (v *PaneView) View() string {
	if v.width <= 0 || v.height <= 0 {
		return ""
	}
	header := v.header()
	if v.height == 1 || v.Collapsed {
		return textutil.FitBlock(header, v.width, v.height)
	}
	return textutil.FitBlock(header+"\n"+v.body(), v.width, v.height)
}

func (v *PaneView) header() string {
	if v.Collapsed {
		return Styles.Collapsed.Render(textutil.Truncate(v.Title, v.width))
	}
	readout := fmt.Sprintf(" %.1f%%", v.Size)
	title := textutil.Truncate(v.Title, max(0, v.width-textutil.VisualWidth(readout)))
	return Styles.Title.Render(title) + Styles.Percent.Render(readout)
}

// body renders Content with glamour, caching the result per width.
func (v *PaneView) body() string {
	if v.Content == "" {
		return ""
	}
	if v.rendered != "" && v.renderedWidth == v.width {
		return v.rendered
	}
	out, err := v.render()
	if err != nil {
		out = v.Content
	}
	v.rendered = out
	v.renderedWidth = v.width
	return out
}

func (v *PaneView) render() (string, error) {
	if v.renderer == nil {
		r, err := NewMarkdownRenderer(v.width)
		if err != nil {
			return "", err
		}
		v.renderer = r
	} else if err := v.renderer.UpdateWidth(v.width); err != nil {
		return "", err
	}
	return v.renderer.Render(v.Content)
}
