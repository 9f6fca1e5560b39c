// Package ui renders the chat screen with Bubble Tea.
//
// Core abstractions:
//   - View: a screen region with its own init, update and view (Elm-style)
//   - Panel: a bounded region of the layout hosting a View
//   - ChatLayout: stacks header, message list, input and help panels
//   - FocusManager: rotates keyboard focus between the input and the list
//   - KeybindRegistry: maps keys to commands, filtered by focused panel
//   - Screen: the root model owning chat state and wiring the panels together
package ui
