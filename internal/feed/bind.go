package feed

import (
	"github.com/atomicstack/slotmenu/internal/logging"
	"github.com/atomicstack/slotmenu/menu"
)

// SelectFunc receives the entry behind a clicked menu item.
type SelectFunc func(click menu.Click, entry Entry)

// Items converts catalog entries to menu items. onSelect may be nil, in which
// case the items carry no callback and clicks fall through to the menu's
// content hook.
func Items(entries []Entry, onSelect SelectFunc) []menu.Item {
	items := make([]menu.Item, len(entries))
	for i, e := range entries {
		item := menu.NewItem(e.Name).WithIcon(e.Icon)
		if e.Detail != "" {
			item = item.WithLore(e.Detail)
		}
		if onSelect != nil {
			entry := e
			item = item.OnClick(func(c menu.Click) { onSelect(c, entry) })
		}
		items[i] = item
	}
	return items
}

// Bind streams watcher events into the menu. Each batch is filtered by the
// current query and marshalled onto the host event thread before touching
// menu state; fetch errors are logged and the previous items stay on screen.
// Bind returns immediately; the pump goroutine exits when the watcher stops.
func Bind(reg *menu.Registry, p *menu.Paginated, w *Watcher, query func() string, onSelect SelectFunc) {
	go func() {
		for ev := range w.Events() {
			ev := ev
			reg.RunAfter(func() {
				if ev.Err != nil {
					logging.Error(ev.Err)
					return
				}
				entries := ev.Entries
				if query != nil {
					entries = Filter(entries, query())
				}
				p.SetItems(Items(entries, onSelect))
			}, 0)
		}
	}()
}
