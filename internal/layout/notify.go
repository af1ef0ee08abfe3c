package layout

// CallPanelCallbacks fires OnResize for every panel whose size differs between prev
// and next, and OnCollapse for collapsible panels that open or close.
//
// prev may be shorter than next (nothing committed yet). A missing previous size
// always counts as changed, counts as closed when next is non-zero, and counts as
// open when next is zero.
func CallPanelCallbacks(panels []Panel, prev, next Sizes) {
	for i, now := range next {
		if i >= len(panels) {
			return
		}
		known := i < len(prev)
		var was float64
		if known {
			was = prev[i]
			if was == now {
				continue
			}
		}

		cb := panels[i].Callbacks
		if cb.OnResize != nil {
			cb.OnResize(now)
		}
		if !panels[i].Collapsible || cb.OnCollapse == nil {
			continue
		}
		switch {
		case (!known || was == 0) && now != 0:
			cb.OnCollapse(false)
		case (!known || was != 0) && now == 0:
			cb.OnCollapse(true)
		}
	}
}
