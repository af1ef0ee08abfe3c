// Package simulate replays a scripted sequence of layout operations against a
// panel group without a terminal and reports the sizes after each one.
package simulate

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"splitpane/internal/config"
	"splitpane/internal/layout"
)

// Script is a group layout plus the steps to run against it. The layout is
// either given inline or loaded from the file named by Layout.
type Script struct {
	config.Config `yaml:",inline"`

	// Layout is a config file path, relative to the script.
	Layout string `yaml:"layout"`

	Steps []Step `yaml:"steps"`
}

// Step is one operation. Exactly one of Collapse, Expand, Toggle, ResizePanel,
// Key or Enter may be set; a step with none of them is a divider resize.
type Step struct {
	// Kind is "pointer" (the default) or "keyboard".
	Kind string `yaml:"kind"`

	// Divider resize: name the divider either by its neighbours or by handle id.
	Before string  `yaml:"before"`
	After  string  `yaml:"after"`
	Handle string  `yaml:"handle"`
	Delta  float64 `yaml:"delta"`

	Collapse string `yaml:"collapse"`
	Expand   string `yaml:"expand"`
	Toggle   string `yaml:"toggle"`

	// ResizePanel moves a panel towards Size.
	ResizePanel string  `yaml:"resize_panel"`
	Size        float64 `yaml:"size"`

	// Key presses left/right/up/down/home/end on Handle.
	Key   string `yaml:"key"`
	Shift bool   `yaml:"shift"`

	// Enter toggles the panel before the named handle.
	Enter string `yaml:"enter"`
}

// Op names the operation the step performs.
func (s Step) Op() string {
	switch {
	case s.Collapse != "":
		return "collapse"
	case s.Expand != "":
		return "expand"
	case s.Toggle != "":
		return "toggle"
	case s.ResizePanel != "":
		return "resize_panel"
	case s.Key != "":
		return "key"
	case s.Enter != "":
		return "enter"
	}
	return "resize"
}

// EventKind parses Kind.
func (s Step) EventKind() (layout.EventKind, error) {
	switch strings.ToLower(s.Kind) {
	case "", "pointer", "mouse":
		return layout.Pointer, nil
	case "keyboard", "key":
		return layout.Keyboard, nil
	}
	return layout.Pointer, fmt.Errorf("kind %q: must be pointer or keyboard", s.Kind)
}

func (s Step) validate() error {
	var set []string
	for name, v := range map[string]string{
		"collapse":     s.Collapse,
		"expand":       s.Expand,
		"toggle":       s.Toggle,
		"resize_panel": s.ResizePanel,
		"key":          s.Key,
		"enter":        s.Enter,
	} {
		if v != "" {
			set = append(set, name)
		}
	}
	if len(set) > 1 {
		slices.Sort(set)
		return fmt.Errorf("only one operation per step, got %s", strings.Join(set, " and "))
	}
	if _, err := s.EventKind(); err != nil {
		return err
	}
	if s.Op() == "resize" && s.Handle == "" && (s.Before == "" || s.After == "") {
		return fmt.Errorf("resize needs handle or both before and after")
	}
	if s.Op() == "key" && s.Handle == "" {
		return fmt.Errorf("key needs handle")
	}
	return nil
}

// Load reads a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script %s: %w", path, err)
	}
	s, err := Parse(data, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("script %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a script. A Layout path is resolved against dir.
func Parse(data []byte, dir string) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if s.Layout != "" {
		path := s.Layout
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		cfg, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		s.Config = *cfg
	} else {
		if s.Group == "" {
			s.Group = "main"
		}
		if err := s.Config.Validate(); err != nil {
			return nil, err
		}
	}
	for i, step := range s.Steps {
		if err := step.validate(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return &s, nil
}
