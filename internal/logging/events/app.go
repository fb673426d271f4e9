package events

import "github.com/atomicstack/dirpick/internal/logging"

// AppTracer emits process lifecycle trace events.
type AppTracer struct{}

// App is the shared lifecycle tracer.
var App = AppTracer{}

// Start records the startup context.
func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

// Listed records how many folders were found under root.
func (AppTracer) Listed(root string, count int) {
	logging.Trace("app.listed", map[string]interface{}{"root": root, "count": count})
}

// Exit records the picker outcome.
func (AppTracer) Exit(path string, selected bool) {
	logging.Trace("app.exit", map[string]interface{}{"path": path, "selected": selected})
}

// Error records a startup or runtime failure.
func (AppTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("app.error", map[string]interface{}{"error": err.Error()})
}
