// Package ui renders the interactive dashboard with Bubble Tea.
//
// Core abstractions:
//   - View: A screen or major UI region with its own model, update, view (Elm-style)
//   - Panel: A focusable region of the dashboard that hosts a View
//   - Layout: Lists panels and their focus order
//   - FocusManager: Tracks and rotates focus across panels
//   - Overlay: Modal views (about, export progress) with a dismiss key
//   - KeybindRegistry/KeyHandler: SPC leader key commands with a help bar
//
// All view state lives in a viewstate.Controller. The controller's recurring
// tick is scheduled on the Bubble Tea event loop, so every mutation happens
// on one goroutine.
package ui
