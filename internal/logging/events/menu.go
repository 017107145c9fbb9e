package events

import "github.com/atomicstack/slotmenu/internal/logging"

type MenuTracer struct{}

type RegistryTracer struct{}

type InputTracer struct{}

var (
	Menu     = MenuTracer{}
	Registry = RegistryTracer{}
	Input    = InputTracer{}
)

func (MenuTracer) Open(menuID, viewer string, page int) {
	logging.Trace("menu.open", map[string]interface{}{
		"menu":   menuID,
		"viewer": viewer,
		"page":   page,
	})
}

func (MenuTracer) Close(menuID, viewer string) {
	logging.Trace("menu.close", map[string]interface{}{"menu": menuID, "viewer": viewer})
}

func (MenuTracer) Click(menuID, viewer string, slot int, route string) {
	logging.Trace("menu.click", map[string]interface{}{
		"menu":   menuID,
		"viewer": viewer,
		"slot":   slot,
		"route":  route,
	})
}

func (MenuTracer) Page(menuID string, page, total int) {
	logging.Trace("menu.page", map[string]interface{}{"menu": menuID, "page": page, "total": total})
}

func (MenuTracer) Redraw(menuID string, page, shown, viewers int) {
	logging.Trace("menu.redraw", map[string]interface{}{
		"menu":    menuID,
		"page":    page,
		"shown":   shown,
		"viewers": viewers,
	})
}

func (RegistryTracer) ViewerRegistered(viewer, menuID string) {
	logging.Trace("registry.viewer", map[string]interface{}{"viewer": viewer, "menu": menuID})
}

func (RegistryTracer) ViewerDropped(viewer string) {
	logging.Trace("registry.viewer-drop", map[string]interface{}{"viewer": viewer})
}

func (RegistryTracer) Attached(menuID string) {
	logging.Trace("registry.attach", map[string]interface{}{"menu": menuID})
}

func (RegistryTracer) Detached(menuID string) {
	logging.Trace("registry.detach", map[string]interface{}{"menu": menuID})
}

func (RegistryTracer) Teardown(open, global int) {
	logging.Trace("registry.teardown", map[string]interface{}{"open": open, "global": global})
}

func (InputTracer) Submit(menuID, viewer string, lines int) {
	logging.Trace("input.submit", map[string]interface{}{
		"menu":   menuID,
		"viewer": viewer,
		"lines":  lines,
	})
}

func (InputTracer) Cancel(menuID, viewer string) {
	logging.Trace("input.cancel", map[string]interface{}{"menu": menuID, "viewer": viewer})
}
