package simulate

import (
	"context"
	"fmt"

	"splitpane/internal/layout"
)

// Result is the state of the group after one step. Step 0 is the initial layout.
type Result struct {
	Step      int          `json:"step"`
	Op        string       `json:"op"`
	Changed   bool         `json:"changed"`
	Sizes     layout.Sizes `json:"sizes"`
	Collapsed []string     `json:"collapsed,omitempty"`
}

// Run builds the script's group and applies every step in order. obs, when
// non-nil, sees every operation. Steps naming an unknown panel or handle fail
// the run; steps the layout rejects are reported as unchanged.
func Run(ctx context.Context, s *Script, obs layout.Observer) ([]string, []Result, error) {
	g, err := s.NewGroup(nil)
	if err != nil {
		return nil, nil, err
	}
	g.SetObserver(obs)
	g.RegisterDividers()

	ids := make([]string, len(g.Panels()))
	for i, p := range g.Panels() {
		ids[i] = p.ID
	}

	results := []Result{snapshot(g, 0, "initial", false)}
	for i, step := range s.Steps {
		if err := ctx.Err(); err != nil {
			return ids, results, err
		}
		changed, err := apply(ctx, g, step)
		if err != nil {
			return ids, results, fmt.Errorf("step %d: %w", i+1, err)
		}
		results = append(results, snapshot(g, i+1, step.Op(), changed))
	}
	return ids, results, nil
}

func snapshot(g *layout.Group, n int, op string, changed bool) Result {
	r := Result{Step: n, Op: op, Changed: changed, Sizes: g.Sizes().Clone()}
	for _, p := range g.Panels() {
		if g.IsCollapsed(p.ID) {
			r.Collapsed = append(r.Collapsed, p.ID)
		}
	}
	return r
}

func apply(ctx context.Context, g *layout.Group, step Step) (bool, error) {
	kind, err := step.EventKind()
	if err != nil {
		return false, err
	}
	panel := func(id string) error {
		if _, ok := g.Panel(id); !ok {
			return fmt.Errorf("unknown panel %q", id)
		}
		return nil
	}
	handle := func(id string) error {
		if _, ok := g.Handles().HandleIndex(g.ID(), id); !ok {
			return fmt.Errorf("unknown handle %q", id)
		}
		return nil
	}

	switch step.Op() {
	case "collapse":
		if err := panel(step.Collapse); err != nil {
			return false, err
		}
		return g.CollapsePanel(ctx, step.Collapse), nil
	case "expand":
		if err := panel(step.Expand); err != nil {
			return false, err
		}
		return g.ExpandPanel(ctx, step.Expand), nil
	case "toggle":
		if err := panel(step.Toggle); err != nil {
			return false, err
		}
		return g.TogglePanel(ctx, step.Toggle), nil
	case "resize_panel":
		if err := panel(step.ResizePanel); err != nil {
			return false, err
		}
		return g.ResizePanel(ctx, step.ResizePanel, step.Size), nil
	case "key":
		if err := handle(step.Handle); err != nil {
			return false, err
		}
		delta := g.KeyboardDelta(step.Handle, step.Key, step.Shift)
		if delta == 0 {
			return false, nil
		}
		return g.ResizeHandle(ctx, layout.Keyboard, step.Handle, delta), nil
	case "enter":
		if err := handle(step.Enter); err != nil {
			return false, err
		}
		return g.ToggleHandle(ctx, step.Enter), nil
	}

	if step.Handle != "" {
		if err := handle(step.Handle); err != nil {
			return false, err
		}
		return g.ResizeHandle(ctx, kind, step.Handle, step.Delta), nil
	}
	if err := panel(step.Before); err != nil {
		return false, err
	}
	if err := panel(step.After); err != nil {
		return false, err
	}
	return g.Resize(ctx, kind, step.Before, step.After, step.Delta), nil
}
