package layout

// FlexGrow returns the share of the group the panel should take, formatted for a
// flex-grow style value. A lone panel always gets "100"; a panel without a recorded
// size gets "0".
func FlexGrow(panels []Panel, id string, sizes Sizes) string {
	if len(panels) == 1 {
		return "100"
	}
	i := indexOf(panels, id)
	if i < 0 || i >= len(sizes) {
		return "0"
	}
	return FormatSize(sizes[i])
}

// BeforeAndAfterIDs returns the panels on either side of the divider that follows id.
// The last panel has no divider after it, so it is paired with its predecessor.
func BeforeAndAfterIDs(id string, panels []Panel) (before, after string, ok bool) {
	if len(panels) < 2 {
		return "", "", false
	}
	i := indexOf(panels, id)
	if i < 0 {
		return "", "", false
	}
	if i == len(panels)-1 {
		return panels[i-1].ID, id, true
	}
	return id, panels[i+1].ID, true
}

// ResizeHandlePanelIDs maps a handle to the panels it separates: the handle at
// position k in its group sits between panel k and panel k+1.
func ResizeHandlePanelIDs(handles HandleIndexer, groupID, handleID string, panels []Panel) (before, after string, ok bool) {
	if handles == nil {
		return "", "", false
	}
	k, found := handles.HandleIndex(groupID, handleID)
	if !found || k < 0 || k+1 >= len(panels) {
		return "", "", false
	}
	return panels[k].ID, panels[k+1].ID, true
}
