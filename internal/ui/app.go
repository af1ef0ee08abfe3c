package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"splitpane/internal/config"
	"splitpane/internal/layout"
	"splitpane/internal/logging"
	"splitpane/internal/ui/textutil"
)

// AppModel is the root model: one panel group drawn as a split view.
type AppModel struct {
	Mode       AppMode
	Config     *config.Config
	ConfigPath string

	Group *layout.Group
	Split *SplitLayout
	Panes map[string]*PaneView

	Focus      *FocusManager
	KeyHandler *KeyHandler
	Drag       *DragHandler
	Overlays   OverlayStack

	Observer layout.Observer
	Logger   *slog.Logger

	// Status is the message shown in the footer; StatusErr marks it as an error.
	Status    string
	StatusErr bool

	Width, Height int

	// dragBase holds the sizes committed when the current drag began.
	dragBase layout.Sizes
}

// AppOption configures NewAppModel.
type AppOption func(*AppModel)

// WithConfigPath sets the file SPC r reloads from.
func WithConfigPath(path string) AppOption {
	return func(a *AppModel) { a.ConfigPath = path }
}

// WithObserver installs an observer on the group, and on every group rebuilt by a reload.
func WithObserver(o layout.Observer) AppOption {
	return func(a *AppModel) { a.Observer = o }
}

// WithLogger sets the logger used for reloads.
func WithLogger(l *slog.Logger) AppOption {
	return func(a *AppModel) { a.Logger = l }
}

// NewAppModel creates the root application model for cfg.
func NewAppModel(cfg *config.Config, opts ...AppOption) (*AppModel, error) {
	a := &AppModel{
		Mode:   ModeSplit,
		Focus:  &FocusManager{},
		Drag:   NewDragHandler(),
		Logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if err := a.setConfig(cfg); err != nil {
		return nil, err
	}

	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("?", func() tea.Msg { return ShowHelpMsg{} }, "Help")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("SPC r", func() tea.Msg { return ReloadConfigMsg{} }, "Reload config")
	split := []AppMode{ModeSplit}
	reg.BindWithDescForMode("SPC c", func() tea.Msg { return CollapseFocusedMsg{} }, "Collapse", split)
	reg.BindWithDescForMode("SPC e", func() tea.Msg { return ExpandFocusedMsg{} }, "Expand", split)
	a.KeyHandler = NewKeyHandler(reg)
	return a, nil
}

// setConfig builds a fresh group, layout and panes for cfg.
func (a *AppModel) setConfig(cfg *config.Config) error {
	panes := make(map[string]*PaneView, len(cfg.Panels))
	views := make(map[string]View, len(cfg.Panels))
	for _, p := range cfg.Panels {
		pv := NewPaneView(p.ID, p.Title, p.Content)
		panes[p.ID] = pv
		views[p.ID] = pv
	}
	group, err := cfg.NewGroup(func(id string) layout.Callbacks {
		if pv, ok := panes[id]; ok {
			return pv.Callbacks()
		}
		return layout.Callbacks{}
	})
	if err != nil {
		return err
	}
	group.SetObserver(a.Observer)

	a.Config = cfg
	a.Group = group
	a.Panes = panes
	a.Split = NewSplitLayout(group, views)
	a.Focus.SetOrder(a.Split.FocusOrder())
	a.Drag.Cancel()
	a.dragBase = nil
	return nil
}

// applyReload swaps in cfg. When the panels themselves are unchanged only titles
// and content are refreshed so the current sizes survive.
func (a *AppModel) applyReload(cfg *config.Config) error {
	if sameLayout(a.Config, cfg) {
		for _, p := range cfg.Panels {
			if pv, ok := a.Panes[p.ID]; ok {
				pv.SetContent(p.Title, p.Content)
			}
		}
		a.Config = cfg
		return nil
	}
	return a.setConfig(cfg)
}

// sameLayout reports whether two configs describe the same group geometry.
func sameLayout(a, b *config.Config) bool {
	if a == nil || b == nil || a.Group != b.Group || a.Direction != b.Direction || len(a.Panels) != len(b.Panels) {
		return false
	}
	pa, pb := a.LayoutPanels(), b.LayoutPanels()
	for i := range pa {
		x, y := pa[i], pb[i]
		if x.ID != y.ID || x.Order != y.Order || x.MinSize != y.MinSize || x.MaxSize != y.MaxSize || x.Collapsible != y.Collapsible {
			return false
		}
		if (x.DefaultSize == nil) != (y.DefaultSize == nil) || (x.DefaultSize != nil && *x.DefaultSize != *y.DefaultSize) {
			return false
		}
	}
	return true
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	ctx := context.Background()
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.Width, a.Height = msg.Width, msg.Height
		for i := range a.Overlays.Stack {
			if sz, ok := a.Overlays.Stack[i].View.(Sizer); ok {
				sz.SetSize(msg.Width, msg.Height)
			}
		}
		return a, nil
	case tea.MouseMsg:
		if a.Mode == ModeSplit {
			a.handleMouse(ctx, msg)
		}
		return a, nil
	case tea.KeyMsg:
		return a, a.handleKey(ctx, msg)
	case ShowHelpMsg:
		hv := NewHelpView(NewKeyMap(a.KeyHandler.Registry, nil, ModeSplit))
		hv.SetSize(a.Width, a.Height)
		a.Overlays.Push(Overlay{View: hv, Dismiss: []string{"esc", "?", "q"}})
		a.setMode(ModeHelp)
		return a, nil
	case CollapseFocusedMsg:
		a.collapseFocused(ctx)
		return a, nil
	case ExpandFocusedMsg:
		a.expandFocused(ctx)
		return a, nil
	case ReloadConfigMsg:
		if a.ConfigPath == "" {
			a.setStatus("no config file to reload", true)
			return a, nil
		}
		path := a.ConfigPath
		return a, func() tea.Msg {
			cfg, err := config.Load(path)
			return ConfigReloadedMsg{Config: cfg, Err: err}
		}
	case ConfigReloadedMsg:
		if msg.Err != nil {
			a.Logger.Warn("config reload failed", "path", a.ConfigPath, "error", msg.Err)
			a.setStatus("reload failed: "+msg.Err.Error(), true)
			return a, nil
		}
		if err := a.applyReload(msg.Config); err != nil {
			a.Logger.Warn("config rejected", "path", a.ConfigPath, "error", err)
			a.setStatus("reload failed: "+err.Error(), true)
			return a, nil
		}
		a.Logger.Info("config reloaded", "path", a.ConfigPath, "panels", len(msg.Config.Panels))
		a.setStatus("config reloaded", false)
		return a, nil
	}
	return a, nil
}

func (a *AppModel) setMode(m AppMode) {
	a.Mode = m
	a.KeyHandler.Mode = m
	a.KeyHandler.Reset()
}

func (a *AppModel) setStatus(s string, isErr bool) {
	a.Status = s
	a.StatusErr = isErr
}

func (a *AppModel) handleKey(ctx context.Context, msg tea.KeyMsg) tea.Cmd {
	s := msg.String()
	if s == "ctrl+c" {
		return tea.Quit
	}
	a.setStatus("", false)

	if a.Overlays.Len() > 0 {
		cmd, _ := a.Overlays.HandleKey(msg)
		if a.Overlays.Len() == 0 {
			a.setMode(ModeSplit)
		}
		return cmd
	}

	if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
		return cmd
	}

	switch s {
	case "tab":
		a.Focus.Next()
	case "shift+tab":
		a.Focus.Prev()
	case "esc":
		if a.Drag.IsDragging() {
			a.cancelDrag(ctx)
		} else {
			a.Focus.Clear()
		}
	case "enter":
		if handle := a.Focus.Current; handle != "" {
			a.Group.ToggleHandle(ctx, handle)
		}
	default:
		a.moveFocused(ctx, s)
	}
	return nil
}

// moveFocused applies an arrow/home/end key to the focused divider.
func (a *AppModel) moveFocused(ctx context.Context, s string) {
	handle := a.Focus.Current
	if handle == "" {
		return
	}
	key, shift := strings.CutPrefix(s, "shift+")
	delta := a.Group.KeyboardDelta(handle, key, shift)
	if delta == 0 {
		return
	}
	a.Group.ResizeHandle(ctx, layout.Keyboard, handle, delta)
}

func (a *AppModel) handleMouse(ctx context.Context, msg tea.MouseMsg) {
	width, height := a.Width, a.layoutHeight()
	ev := a.Drag.HandleMouseEvent(msg, a.Group.Direction(), a.Split.HitFunc(width, height))
	switch ev.Phase {
	case DragStart:
		a.dragBase = a.Group.Sizes().Clone()
		a.Focus.SetFocus(ev.HandleID)
	case DragMove, DragEnd:
		if a.dragBase == nil {
			return
		}
		delta := a.Split.DragDelta(ev.Offset, msg.X, msg.Y, width, height)
		a.Group.ResizeHandleFrom(ctx, layout.Pointer, ev.HandleID, a.dragBase, delta)
		if ev.Phase == DragEnd {
			a.dragBase = nil
		}
	}
}

// cancelDrag abandons a drag and puts the divider back where it started.
func (a *AppModel) cancelDrag(ctx context.Context) {
	handle := a.Drag.HandleID()
	a.Drag.Cancel()
	if a.dragBase != nil {
		a.Group.ResizeHandleFrom(ctx, layout.Pointer, handle, a.dragBase, 0)
		a.dragBase = nil
	}
}

// focusedNeighbours returns the panels either side of the focused divider.
func (a *AppModel) focusedNeighbours() (before, after string, ok bool) {
	if a.Focus.Current == "" {
		a.setStatus("focus a divider first (tab)", true)
		return "", "", false
	}
	return layout.ResizeHandlePanelIDs(a.Group.Handles(), a.Group.ID(), a.Focus.Current, a.Group.Panels())
}

func (a *AppModel) collapseFocused(ctx context.Context) {
	before, after, ok := a.focusedNeighbours()
	if !ok {
		return
	}
	for _, id := range []string{before, after} {
		if a.Group.CollapsePanel(ctx, id) {
			a.setStatus(fmt.Sprintf("collapsed %s", id), false)
			return
		}
	}
	a.setStatus("nothing to collapse next to "+a.Focus.Current, true)
}

func (a *AppModel) expandFocused(ctx context.Context) {
	before, after, ok := a.focusedNeighbours()
	if !ok {
		return
	}
	for _, id := range []string{before, after} {
		if a.Group.ExpandPanel(ctx, id) {
			a.setStatus(fmt.Sprintf("expanded %s", id), false)
			return
		}
	}
	a.setStatus("nothing to expand next to "+a.Focus.Current, true)
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if a.Width <= 0 || a.Height <= 0 {
		return ""
	}
	if top, ok := a.Overlays.Peek(); ok {
		return top.View.View()
	}
	body := a.Split.Render(a.Width, a.layoutHeight(), a.Focus.Current, a.Drag.HandleID())
	return body + "\n" + a.footer()
}

// layoutHeight is the height left for panels once the footer is drawn.
func (a *AppModel) layoutHeight() int {
	return max(0, a.Height-lipgloss.Height(a.footer()))
}

func (a *AppModel) footer() string {
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		if bar := RenderKeybindHelp(a.KeyHandler); bar != "" {
			return bar
		}
	}
	if a.Status != "" {
		style := Styles.Status
		if a.StatusErr {
			style = Styles.Error
		}
		return style.Render(textutil.Truncate(a.Status, a.Width))
	}
	hint := "tab focus · ←/→ resize · enter collapse · drag dividers · SPC commands · ? help"
	if a.Group.Direction() == layout.Vertical {
		hint = "tab focus · ↑/↓ resize · enter collapse · drag dividers · SPC commands · ? help"
	}
	return Styles.Hint.Render(textutil.Truncate(hint, a.Width))
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}
