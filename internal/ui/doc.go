// Package ui contains the Bubble Tea program that powers the folder picker.
// The Model type only routes messages; the picker itself lives in
// internal/ui/state.Selection, which owns the folder list, the filtered view,
// the cursor, the mode and the result.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages. Messages are
//     routed through a typed handler registry so each tea.Msg is handled by a
//     focused function.
//   - Key presses are mapped to an operation by dispatch (keys.go), a pure
//     function of the current mode and the key. Model.apply (navigation.go)
//     runs the operation against the Selection and emits trace events.
//   - Filter entry and the filter prompt live in input.go.
//
// Lifecycle:
//   - Confirm and Quit stop the Selection. Update then returns tea.Quit and
//     View renders nothing, so the terminal is released without a final frame.
//     The caller reads the confirmed path from Model.Result.
package ui
