package ui

import "splitpane/internal/config"

// ConfigReloadedMsg carries a freshly loaded config, or the error that stopped
// it loading. Sent by SPC r and by the file watcher.
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}

// CollapseFocusedMsg collapses a collapsible neighbour of the focused divider (SPC c).
type CollapseFocusedMsg struct{}

// ExpandFocusedMsg expands a collapsed neighbour of the focused divider (SPC e).
type ExpandFocusedMsg struct{}

// ReloadConfigMsg asks for the config file to be read again (SPC r).
type ReloadConfigMsg struct{}

// ShowHelpMsg opens the key reference overlay (?).
type ShowHelpMsg struct{}
