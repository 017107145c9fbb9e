package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atomicstack/slotmenu/host"
	"github.com/atomicstack/slotmenu/internal/feed"
	"github.com/atomicstack/slotmenu/internal/logging"
	"github.com/atomicstack/slotmenu/internal/logging/events"
	"github.com/atomicstack/slotmenu/internal/termhost"
	"github.com/atomicstack/slotmenu/menu"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Root         string
	Title        string
	Size         int
	FeedInterval time.Duration
	Verbose      bool
}

// App wires the terminal host, the menu registry, and the demo menus: a root
// menu, a live file catalog, a search prompt, and a notes board.
type App struct {
	cfg      Config
	model    *termhost.Model
	registry *menu.Registry

	root    *menu.Paginated
	catalog *menu.Paginated
	watcher *feed.Watcher

	query string
}

// New builds the application around the given host model.
func New(cfg Config, model *termhost.Model) (*App, error) {
	a := &App{
		cfg:      cfg,
		model:    model,
		registry: menu.NewRegistry(model, model, model, model),
	}
	if err := a.buildCatalog(); err != nil {
		return nil, err
	}
	if err := a.buildRoot(); err != nil {
		return nil, err
	}
	a.watcher = feed.NewWatcher(dirFetch(cfg.Root), cfg.FeedInterval)
	feed.Bind(a.registry, a.catalog, a.watcher, func() string { return a.query }, a.onSelect)
	return a, nil
}

// Registry exposes the menu registry, mainly for tests.
func (a *App) Registry() *menu.Registry { return a.registry }

// Root exposes the root menu, mainly for tests.
func (a *App) Root() *menu.Paginated { return a.root }

// Catalog exposes the file catalog menu, mainly for tests.
func (a *App) Catalog() *menu.Paginated { return a.catalog }

// Open shows the root menu to the local viewer.
func (a *App) Open() error {
	return a.root.Open(a.model.Viewer())
}

// Stop tears down the feed and every registered menu.
func (a *App) Stop() {
	a.watcher.Stop()
	a.registry.Teardown()
}

func (a *App) buildRoot() error {
	root, err := menu.NewBuilder(a.registry).
		Title(a.cfg.Title).
		Size(3 * menu.RowWidth).
		AddItemAction(
			menu.NewItem("Browse files").WithIcon("chest").WithLore("Live listing of "+a.cfg.Root),
			func(c menu.Click) { a.openCatalog(c.Viewer) },
		).
		AddItemAction(
			menu.NewItem("Search files").WithIcon("compass").WithLore("Filter the catalog by name"),
			func(c menu.Click) { a.openSearch(c.Viewer) },
		).
		AddItemAction(
			menu.NewItem("Leave a note").WithIcon("sign").WithLore("Free-text note, written to the log"),
			func(c menu.Click) { a.openNotes(c.Viewer) },
		).
		Build()
	if err != nil {
		return fmt.Errorf("build root menu: %w", err)
	}
	a.root = root
	return nil
}

func (a *App) buildCatalog() error {
	catalog, err := menu.NewBuilder(a.registry).
		Title("Files: " + a.cfg.Root).
		Size(a.cfg.Size).
		OnClose(func(viewer host.ViewerID) {
			// Leaving the catalog drops any active search.
			a.query = ""
		}).
		Build()
	if err != nil {
		return fmt.Errorf("build catalog menu: %w", err)
	}
	a.catalog = catalog
	return nil
}

func (a *App) openCatalog(viewer host.ViewerID) {
	if err := a.catalog.Open(viewer); err != nil {
		logging.Error(err)
	}
}

// openSearch captures a query, applies it, and returns to the catalog.
func (a *App) openSearch(viewer host.ViewerID) {
	prompt, err := menu.NewPrompt(a.registry, "Search files",
		func(text string) {
			a.query = text
			a.openCatalog(viewer)
		},
		func(v host.ViewerID) { a.openRoot(v) },
	)
	if err != nil {
		logging.Error(err)
		return
	}
	if err := prompt.Open(viewer); err != nil {
		logging.Error(err)
	}
}

// openNotes records free text in the log and returns to the root menu.
func (a *App) openNotes(viewer host.ViewerID) {
	board, err := menu.NewBoard(a.registry, nil,
		func(lines []string) {
			events.App.Note(lines)
			a.openRoot(viewer)
		},
		func(v host.ViewerID) { a.openRoot(v) },
	)
	if err != nil {
		logging.Error(err)
		return
	}
	if err := board.Open(viewer); err != nil {
		logging.Error(err)
	}
}

// onSelect asks for confirmation before acting on a catalog entry.
func (a *App) onSelect(click menu.Click, entry feed.Entry) {
	viewer := click.Viewer
	_, err := menu.Confirmation(a.registry, "Open "+entry.Name+"?",
		func(v host.ViewerID) {
			events.App.FileOpened(entry.Name)
			a.openCatalog(v)
		},
		func(v host.ViewerID) { a.openCatalog(v) },
	).BuildAndOpen(viewer)
	if err != nil {
		logging.Error(err)
	}
}

func (a *App) openRoot(viewer host.ViewerID) {
	if err := a.root.Open(viewer); err != nil {
		logging.Error(err)
	}
}

// dirFetch lists the root directory as catalog entries, directories first.
func dirFetch(root string) feed.Fetch {
	return func(ctx context.Context) ([]feed.Entry, error) {
		dirEntries, err := os.ReadDir(root)
		if err != nil {
			return nil, err
		}
		entries := make([]feed.Entry, 0, len(dirEntries))
		for _, de := range dirEntries {
			entry := feed.Entry{Name: de.Name(), Icon: "file"}
			if de.IsDir() {
				entry.Icon = "folder"
				entry.Detail = filepath.Join(root, de.Name()) + string(filepath.Separator)
			} else if info, err := de.Info(); err == nil {
				entry.Detail = fmt.Sprintf("%d bytes", info.Size())
			}
			entries = append(entries, entry)
		}
		return entries, nil
	}
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	model := termhost.NewModel()
	a, err := New(cfg, model)
	if err != nil {
		return err
	}
	defer a.Stop()

	if err := a.Open(); err != nil {
		return fmt.Errorf("open root menu: %w", err)
	}
	program := tea.NewProgram(model, tea.WithAltScreen())
	model.SetSend(program.Send)
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
