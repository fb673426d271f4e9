package events

import "github.com/atomicstack/dirpick/internal/logging"

// PickerTracer emits trace events for picker transitions.
type PickerTracer struct{}

// Picker is the shared picker tracer.
var Picker = PickerTracer{}

// Mode records a switch between normal and editing mode.
func (PickerTracer) Mode(mode string) {
	logging.Trace("picker.mode", map[string]interface{}{"mode": mode})
}

// Filter records the filter text and how many folders match it.
func (PickerTracer) Filter(filter string, matches int) {
	logging.Trace("picker.filter", map[string]interface{}{"filter": filter, "matches": matches})
}

// Cursor records a cursor move.
func (PickerTracer) Cursor(cursor int, item string) {
	logging.Trace("picker.cursor", map[string]interface{}{"cursor": cursor, "item": item})
}

// Confirm records the confirmed path, if any.
func (PickerTracer) Confirm(path string, selected bool) {
	logging.Trace("picker.confirm", map[string]interface{}{"path": path, "selected": selected})
}

// Quit records a quit and the mode it happened in.
func (PickerTracer) Quit(mode string) {
	logging.Trace("picker.quit", map[string]interface{}{"mode": mode})
}
