// Package ui is the Bubble Tea front end for a panel group.
//
// Core abstractions:
//   - View: A screen or region with its own model, update, view (Elm-style)
//   - Panel: A bounded region within a layout that hosts a View
//   - Layout: Arranges panels; SplitLayout places them from a group's sizes
//   - FocusManager: Tracks and rotates keyboard focus across dividers
//   - DragHandler: Turns mouse press/motion/release into divider drags
//   - Overlay: Modal views with a dismiss key (the help screen)
//
// All layout arithmetic happens in package layout; this package only converts
// cells to percentages and back.
package ui
