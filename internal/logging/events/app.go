package events

import "github.com/kristiankunc/generate-gitignore/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Action(name, argument string) {
	logging.Trace("app.action", map[string]interface{}{"action": name, "argument": argument})
}

func (AppTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("app.error", map[string]interface{}{"error": err.Error()})
}

func (AppTracer) Written(path, template string, bytes int) {
	logging.Trace("app.written", map[string]interface{}{"path": path, "template": template, "bytes": bytes})
}
