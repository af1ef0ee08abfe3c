// Package config loads panel group layouts from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"splitpane/internal/layout"
)

// Config describes one panel group.
type Config struct {
	// Group is the group id; handles are registered under it.
	Group string `yaml:"group"`

	// Direction is "horizontal" (side by side) or "vertical" (stacked).
	Direction string `yaml:"direction"`

	Panels []PanelConfig `yaml:"panels"`
}

// PanelConfig describes one panel. Sizes are percentages of the group.
type PanelConfig struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`

	// Order defaults to the panel's position in the file.
	Order *int `yaml:"order"`

	MinSize float64 `yaml:"min_size"`

	// MaxSize defaults to 100.
	MaxSize *float64 `yaml:"max_size"`

	Collapsible bool `yaml:"collapsible"`

	// DefaultSize is the initial size; panels without one share what is left.
	DefaultSize *float64 `yaml:"default_size"`

	// Content is markdown shown inside the panel.
	Content string `yaml:"content"`
}

// Default returns the layout used when no config file is given: a collapsible
// sidebar, an editor and a collapsible preview.
func Default() *Config {
	sidebar, editor := 20.0, 50.0
	return &Config{
		Group:     "main",
		Direction: "horizontal",
		Panels: []PanelConfig{
			{
				ID: "sidebar", Title: "Sidebar", MinSize: 10, Collapsible: true,
				DefaultSize: &sidebar,
				Content:     "# Sidebar\n\nCollapsible. Drag it below its minimum to close it.",
			},
			{
				ID: "editor", Title: "Editor", MinSize: 30,
				DefaultSize: &editor,
				Content:     "# Editor\n\nDrag a divider with the mouse, or focus one with `tab` and use the arrow keys.",
			},
			{
				ID: "preview", Title: "Preview", MinSize: 15, Collapsible: true,
				Content: "# Preview\n\nPress `enter` on a divider to collapse or restore the panel before it.",
			},
		},
	}
}

// Load reads and validates a config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates YAML config data.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if cfg.Group == "" {
		cfg.Group = "main"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the config without building a group.
func (c *Config) Validate() error {
	if _, ok := layout.ParseDirection(c.Direction); !ok {
		return fmt.Errorf("direction %q: must be horizontal or vertical", c.Direction)
	}
	if len(c.Panels) == 0 {
		return layout.ErrNoPanels
	}
	var errs []error
	for i, p := range c.Panels {
		if p.ID == "" {
			errs = append(errs, fmt.Errorf("panel %d: id is required", i))
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	// Bounds, duplicates and the size budget are checked by the group itself.
	_, err := layout.NewGroup(c.Group, layout.Horizontal, c.LayoutPanels()...)
	return err
}

// LayoutPanels converts the panel configs to layout panels with defaults applied.
func (c *Config) LayoutPanels() []layout.Panel {
	out := make([]layout.Panel, len(c.Panels))
	for i, p := range c.Panels {
		order := i
		if p.Order != nil {
			order = *p.Order
		}
		maxSize := 100.0
		if p.MaxSize != nil {
			maxSize = *p.MaxSize
		}
		out[i] = layout.Panel{
			ID:          p.ID,
			Order:       order,
			MinSize:     p.MinSize,
			MaxSize:     maxSize,
			Collapsible: p.Collapsible,
			DefaultSize: p.DefaultSize,
		}
	}
	return out
}

// NewGroup builds a group from the config. hooks, when non-nil, supplies the
// callbacks for each panel id.
func (c *Config) NewGroup(hooks func(id string) layout.Callbacks) (*layout.Group, error) {
	dir, ok := layout.ParseDirection(c.Direction)
	if !ok {
		return nil, fmt.Errorf("direction %q: must be horizontal or vertical", c.Direction)
	}
	panels := c.LayoutPanels()
	if hooks != nil {
		for i := range panels {
			panels[i].Callbacks = hooks(panels[i].ID)
		}
	}
	return layout.NewGroup(c.Group, dir, panels...)
}
