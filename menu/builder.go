package menu

import "github.com/atomicstack/slotmenu/host"

// Builder assembles paginated menus fluently. Zero values fall back to a
// 54-slot container titled "Menu" with default navigation.
type Builder struct {
	reg             *Registry
	title           string
	size            int
	items           []Item
	itemsPerPage    int
	contentSlots    []int
	navigationSlots []int
	actions         map[int]ClickFunc
	autoRegister    bool
	defaultNav      bool
	onOpen          func(host.ViewerID)
	onClose         func(host.ViewerID)
	postBuild       []func(*Paginated)
}

// NewBuilder starts a builder bound to the registry.
func NewBuilder(reg *Registry) *Builder {
	return &Builder{
		reg:          reg,
		title:        "Menu",
		size:         6 * RowWidth,
		actions:      make(map[int]ClickFunc),
		autoRegister: true,
		defaultNav:   true,
	}
}

// Title sets the container title.
func (b *Builder) Title(title string) *Builder {
	b.title = title
	return b
}

// Size sets the container size in slots.
func (b *Builder) Size(size int) *Builder {
	b.size = size
	return b
}

// Items replaces the backing item list.
func (b *Builder) Items(items ...Item) *Builder {
	b.items = append([]Item(nil), items...)
	return b
}

// AddItem appends one item.
func (b *Builder) AddItem(item Item) *Builder {
	b.items = append(b.items, item)
	return b
}

// AddItemAction appends an item carrying its own click callback.
func (b *Builder) AddItemAction(item Item, fn ClickFunc) *Builder {
	b.items = append(b.items, item.OnClick(fn))
	return b
}

// ItemsPerPage overrides the page window size.
func (b *Builder) ItemsPerPage(n int) *Builder {
	b.itemsPerPage = n
	return b
}

// ContentSlots overrides the content slot assignment.
func (b *Builder) ContentSlots(slots ...int) *Builder {
	b.contentSlots = append([]int(nil), slots...)
	return b
}

// NavigationSlots overrides the navigation slot assignment.
func (b *Builder) NavigationSlots(slots ...int) *Builder {
	b.navigationSlots = append([]int(nil), slots...)
	return b
}

// Action binds an explicit callback to a slot.
func (b *Builder) Action(slot int, fn ClickFunc) *Builder {
	b.actions[slot] = fn
	return b
}

// AutoRegister controls whether Build registers the menu immediately.
func (b *Builder) AutoRegister(enabled bool) *Builder {
	b.autoRegister = enabled
	return b
}

// DefaultNavigation toggles the synthesized navigation controls.
func (b *Builder) DefaultNavigation(enabled bool) *Builder {
	b.defaultNav = enabled
	return b
}

// OnOpen installs the per-viewer open hook.
func (b *Builder) OnOpen(fn func(host.ViewerID)) *Builder {
	b.onOpen = fn
	return b
}

// OnClose installs the per-viewer close hook.
func (b *Builder) OnClose(fn func(host.ViewerID)) *Builder {
	b.onClose = fn
	return b
}

// Build constructs the menu, failing fast on layout errors.
func (b *Builder) Build() (*Paginated, error) {
	p, err := NewPaginated(b.reg, b.title, b.size)
	if err != nil {
		return nil, err
	}
	if b.navigationSlots != nil {
		if err := p.SetNavigationSlots(b.navigationSlots); err != nil {
			return nil, err
		}
	}
	if b.contentSlots != nil {
		if err := p.SetContentSlots(b.contentSlots); err != nil {
			return nil, err
		}
	}
	p.SetDefaultNavigation(b.defaultNav)
	if b.onOpen != nil {
		p.OnOpen(b.onOpen)
	}
	if b.onClose != nil {
		p.OnClose(b.onClose)
	}
	for slot, fn := range b.actions {
		p.SetAction(slot, fn)
	}
	p.SetItems(b.items)
	if b.itemsPerPage > 0 {
		p.SetItemsPerPage(b.itemsPerPage)
	}
	for _, hook := range b.postBuild {
		hook(p)
	}
	if b.autoRegister {
		p.Register()
	}
	return p, nil
}

// BuildAndOpen builds the menu and opens its first page for viewer.
func (b *Builder) BuildAndOpen(viewer host.ViewerID) (*Paginated, error) {
	p, err := b.Build()
	if err != nil {
		return nil, err
	}
	if err := p.Open(viewer); err != nil {
		return nil, err
	}
	return p, nil
}

// ItemList is a preset for a plain browsable list.
func ItemList(reg *Registry, title string, items ...Item) *Builder {
	return NewBuilder(reg).Title(title).Items(items...)
}

// Settings is a preset for a small three-row options menu.
func Settings(reg *Registry, title string) *Builder {
	return NewBuilder(reg).Title(title).Size(3 * RowWidth)
}

// Confirmation is a preset yes/no dialog. Confirm sits on the middle-left,
// cancel on the middle-right. The dialog closes before the callback runs, so
// callbacks are free to open the viewer's next menu.
func Confirmation(reg *Registry, title string, onConfirm, onCancel func(host.ViewerID)) *Builder {
	const confirmSlot, cancelSlot = 11, 15
	b := NewBuilder(reg).
		Title(title).
		Size(3 * RowWidth).
		DefaultNavigation(false).
		ContentSlots(confirmSlot, cancelSlot).
		Items(ConfirmButton(), CancelButton())
	b.postBuild = append(b.postBuild, func(p *Paginated) {
		p.SetAction(confirmSlot, func(c Click) {
			p.Close(c.Viewer)
			if onConfirm != nil {
				onConfirm(c.Viewer)
			}
		})
		p.SetAction(cancelSlot, func(c Click) {
			p.Close(c.Viewer)
			if onCancel != nil {
				onCancel(c.Viewer)
			}
		})
	})
	return b
}
