package events

import "github.com/atomicstack/slotmenu/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) FileOpened(name string) {
	logging.Trace("app.file_opened", map[string]interface{}{"name": name})
}

func (AppTracer) Note(lines []string) {
	logging.Trace("app.note", map[string]interface{}{"lines": lines})
}
