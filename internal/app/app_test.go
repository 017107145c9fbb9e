package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/slotmenu/internal/termhost"
	tea "github.com/charmbracelet/bubbletea"
)

func newTestApp(t *testing.T) (*App, *termhost.Harness) {
	t.Helper()
	dir := t.TempDir()
	for _, name := range []string{"alpha.txt", "beta.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
	}
	model := termhost.NewModel()
	a, err := New(Config{
		Root:         dir,
		Title:        "Main Menu",
		Size:         54,
		FeedInterval: time.Hour,
	}, model)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	t.Cleanup(a.Stop)
	if err := a.Open(); err != nil {
		t.Fatalf("open: %v", err)
	}
	waitForCatalog(t, a, 2)
	return a, termhost.NewHarness(model)
}

// waitForCatalog blocks until the feed pump has delivered the first batch.
func waitForCatalog(t *testing.T, a *App, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if len(a.Catalog().AllItems()) == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("catalog never received %d items", want)
}

func TestRootMenuOpensCatalog(t *testing.T) {
	a, h := newTestApp(t)
	if h.Model().Active() == nil || h.Model().Active().Title() != "Main Menu" {
		t.Fatalf("root menu not on screen")
	}

	h.Press(tea.KeyEnter)
	if !a.Catalog().IsOpen() {
		t.Fatalf("catalog did not open")
	}
	active := h.Model().Active()
	if active == nil || !strings.HasPrefix(active.Title(), "Files: ") {
		t.Fatalf("catalog container not on screen")
	}
	items := a.Catalog().AllItems()
	if items[0].Name() != "alpha.txt" || items[1].Name() != "beta.txt" {
		t.Fatalf("unexpected catalog items: %q, %q", items[0].Name(), items[1].Name())
	}
}

func TestCatalogSelectionConfirmsAndReturns(t *testing.T) {
	a, h := newTestApp(t)
	h.Press(tea.KeyEnter)

	// Select the first file: a confirmation dialog replaces the catalog.
	h.Press(tea.KeyEnter)
	active := h.Model().Active()
	if active == nil || active.Title() != "Open alpha.txt?" {
		t.Fatalf("confirmation dialog not on screen")
	}
	if a.Catalog().IsOpen() {
		t.Fatalf("catalog still open behind the dialog")
	}

	// Confirm (row 2, slot 11) and land back in the catalog.
	h.Press(tea.KeyDown)
	h.Press(tea.KeyRight)
	h.Press(tea.KeyRight)
	h.Press(tea.KeyEnter)
	if !a.Catalog().IsOpen() {
		t.Fatalf("catalog did not reopen after confirm")
	}
}

func TestSearchPromptFiltersAndOpensCatalog(t *testing.T) {
	a, h := newTestApp(t)

	// Root slot 1 is the search entry.
	h.Press(tea.KeyRight)
	h.Press(tea.KeyEnter)
	active := h.Model().Active()
	if active == nil || active.Size() != 3 {
		t.Fatalf("search prompt not on screen")
	}

	// Type the query into the result slot and submit it.
	h.Press(tea.KeyRight)
	h.Press(tea.KeyRight)
	h.Type("e")
	h.Type("alpha")
	h.Press(tea.KeyEnter)
	if !a.Catalog().IsOpen() {
		t.Fatalf("catalog did not open after search")
	}
	if a.query != "alpha" {
		t.Fatalf("query not recorded: %q", a.query)
	}

	// Leaving the catalog clears the query.
	h.Press(tea.KeyEsc)
	if a.query != "" {
		t.Fatalf("query survived catalog close: %q", a.query)
	}
}

func TestNotesBoardReturnsToRoot(t *testing.T) {
	a, h := newTestApp(t)

	// Root slot 2 is the notes entry.
	h.Press(tea.KeyRight)
	h.Press(tea.KeyRight)
	h.Press(tea.KeyEnter)

	h.Type("remember the milk")
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlS})
	if !a.Root().IsOpen() {
		t.Fatalf("root menu did not reopen after note submit")
	}
	active := h.Model().Active()
	if active == nil || active.Title() != "Main Menu" {
		t.Fatalf("root container not on screen")
	}
}

func TestSearchCancelReturnsToRoot(t *testing.T) {
	a, h := newTestApp(t)
	h.Press(tea.KeyRight)
	h.Press(tea.KeyEnter)

	h.Press(tea.KeyEsc)
	if !a.Root().IsOpen() {
		t.Fatalf("root menu did not reopen after cancelled search")
	}
	if a.Catalog().IsOpen() {
		t.Fatalf("catalog opened by a cancelled search")
	}
}
