package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jask/eventpanel/internal/catalog"
	"github.com/jask/eventpanel/internal/service"
)

type sliceSource []catalog.RawEvent

func (s sliceSource) Events(context.Context) ([]catalog.RawEvent, error) { return s, nil }

type failingSource struct{}

func (failingSource) Events(context.Context) ([]catalog.RawEvent, error) {
	return nil, errors.New("store offline")
}

func runeKey(k string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func testEvents(t *testing.T) []catalog.RawEvent {
	t.Helper()
	cats, err := catalog.NewCategories(
		catalog.Entry{Key: catalog.KeyPersonalities, Category: catalog.PersonalitiesCategory{
			Header:   catalog.Header{Title: "Personalities", Icon: "users"},
			Sections: catalog.Sections{Performers: []catalog.Person{{Name: "Tems"}}},
		}},
		catalog.Entry{Key: catalog.KeyMenu, Category: catalog.ItemsCategory{
			Header: catalog.Header{Title: "Menu", Icon: "calendar"},
			Items:  []catalog.Item{{Name: "Doors open"}, {Name: "Headline set"}},
		}},
		catalog.Entry{Key: catalog.KeyDrinks, Category: catalog.ItemsCategory{
			Header: catalog.Header{Title: "Drinks", Icon: "wine"},
			Items:  []catalog.Item{{Name: "Zobo"}},
		}},
	)
	require.NoError(t, err)
	return []catalog.RawEvent{
		{ID: "a", Title: "Launch Night", Date: "2026-11-02", Organizer: catalog.Organizer{ID: "org-1", Name: "Lagos Live"}, Categories: cats, Capacity: 300},
		{ID: "b", Title: "Brunch", Date: "2026-11-08", Organizer: catalog.Organizer{ID: "org-2"}},
		{ID: "c", Title: "Workshop", Date: "2026-11-09", Organizer: catalog.Organizer{ID: "org-1"}, Likes: 7},
	}
}

// newLoadedApp builds an App and feeds it the result of its Init command.
func newLoadedApp(t *testing.T, src service.EventSource, organizerID string, opts Options) *App {
	t.Helper()
	a := New(context.Background(), &service.CatalogService{Events: src}, organizerID, opts)
	cmd := a.Init()
	require.NotNil(t, cmd)
	apply(t, a, cmd())
	return a
}

func apply(t *testing.T, a *App, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := a.Update(msg)
	require.Same(t, a, next)
	return cmd
}

func TestAppLoadsOrganizerEvents(t *testing.T) {
	a := newLoadedApp(t, sliceSource(testEvents(t)), "org-1", Options{})
	require.Equal(t, 2, a.Panel().Len())

	view := a.View()
	require.Contains(t, view, "Launch Night")
	require.Contains(t, view, "Workshop")
	require.NotContains(t, view, "Brunch")
	require.Contains(t, view, "♥ 56")
	require.Contains(t, view, "♥ 7")
	require.Contains(t, view, "welcome you all to the Launch Night")
}

func TestAppToggleAndNavigate(t *testing.T) {
	a := newLoadedApp(t, sliceSource(testEvents(t)), "org-1", Options{})

	apply(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	sel := a.Panel().Selection()
	require.True(t, sel.Expanded)
	require.Equal(t, 0, sel.Index)
	require.Equal(t, catalog.KeyMenu, sel.Category)
	require.Contains(t, a.View(), "Doors open")
	require.Contains(t, a.View(), "Capacity: 300")

	apply(t, a, tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, catalog.KeyDrinks, a.Panel().Selection().Category)
	apply(t, a, tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, catalog.KeyPersonalities, a.Panel().Selection().Category)
	require.Contains(t, a.View(), "Performers")
	require.Contains(t, a.View(), "Tems")
	apply(t, a, runeKey("h"))
	require.Equal(t, catalog.KeyDrinks, a.Panel().Selection().Category)

	// Collapse keeps the category; reopening the same event restores it.
	apply(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	require.False(t, a.Panel().Selection().Expanded)
	apply(t, a, tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, catalog.KeyDrinks, a.Panel().Selection().Category)
	apply(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, a.Panel().Selection().Expanded)
	require.Equal(t, catalog.KeyDrinks, a.Panel().Selection().Category)

	// A different event opens fresh on the default.
	apply(t, a, tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, 1, a.Cursor())
	apply(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	sel = a.Panel().Selection()
	require.True(t, sel.Expanded)
	require.Equal(t, 1, sel.Index)
	require.Empty(t, sel.Category)
	require.Contains(t, a.View(), "No details for this event.")
}

func TestAppCursorStaysInRange(t *testing.T) {
	a := newLoadedApp(t, sliceSource(testEvents(t)), "org-1", Options{})
	apply(t, a, tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, 0, a.Cursor())
	apply(t, a, runeKey("j"))
	apply(t, a, runeKey("j"))
	require.Equal(t, 1, a.Cursor())
}

func TestAppEditorOpensOnFirstEventAndClosesOnEsc(t *testing.T) {
	a := newLoadedApp(t, sliceSource(testEvents(t)), "org-1", Options{})

	apply(t, a, runeKey("e"))
	require.True(t, a.Panel().EditorOpen())
	view := a.View()
	require.Contains(t, view, "Edit Launch Night")
	require.Contains(t, view, "18:00")
	require.Contains(t, view, "Event Location")

	// Keys go to the editor while it is open.
	apply(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	require.False(t, a.Panel().Selection().Expanded)

	apply(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, a.Panel().EditorOpen())
	require.NotContains(t, a.View(), "Edit Launch Night")
}

type recordingEditor struct {
	opened  []catalog.Snapshot
	onClose func()
}

func (e *recordingEditor) Open(snap catalog.Snapshot, onClose func()) {
	e.opened = append(e.opened, snap)
	e.onClose = onClose
}

func (e *recordingEditor) Update(tea.Msg) tea.Cmd { return nil }

func (e *recordingEditor) View() string { return "custom editor" }

func TestAppEditorTargetsSelectedEvent(t *testing.T) {
	ed := &recordingEditor{}
	a := newLoadedApp(t, sliceSource(testEvents(t)), "org-1", Options{Editor: ed})

	apply(t, a, runeKey("j"))
	apply(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	apply(t, a, runeKey("e"))
	require.Len(t, ed.opened, 1)
	require.Equal(t, "c", ed.opened[0].ID)
	require.Contains(t, a.View(), "custom editor")

	ed.onClose()
	require.False(t, a.Panel().EditorOpen())
}

func TestAppEmptyCatalog(t *testing.T) {
	a := newLoadedApp(t, sliceSource(testEvents(t)), "org-9", Options{})
	require.True(t, a.Panel().Empty())
	view := a.View()
	require.Contains(t, view, EmptyMessage)
	require.Contains(t, view, "Did you mean: org-1, org-2?")

	apply(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	apply(t, a, runeKey("e"))
	require.False(t, a.Panel().EditorOpen())
	require.False(t, a.Panel().Selection().Expanded)
}

func TestAppDefaultCategoryOption(t *testing.T) {
	a := newLoadedApp(t, sliceSource(testEvents(t)), "org-1", Options{DefaultCategory: catalog.KeyDrinks})
	apply(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, catalog.KeyDrinks, a.Panel().Selection().Category)
}

func TestAppRendersOutlets(t *testing.T) {
	outlet := OutletFunc{Label: "attendees", Render: func(int) string { return "nested view" }}
	a := newLoadedApp(t, sliceSource(testEvents(t)), "org-1", Options{Outlets: []Outlet{outlet}})
	require.Contains(t, a.View(), "nested view")
}

func TestAppSurfacesLoadError(t *testing.T) {
	a := newLoadedApp(t, failingSource{}, "org-1", Options{})
	require.Contains(t, a.View(), "error: load events: store offline")
}

func TestAppReloadAndQuit(t *testing.T) {
	a := newLoadedApp(t, sliceSource(testEvents(t)), "org-1", Options{})
	cmd := apply(t, a, runeKey("r"))
	require.NotNil(t, cmd)
	_, ok := cmd().(catalogMsg)
	require.True(t, ok)

	cmd = apply(t, a, runeKey("q"))
	require.NotNil(t, cmd)
	_, ok = cmd().(tea.QuitMsg)
	require.True(t, ok)
}

func TestAppGridUsesConfiguredColumns(t *testing.T) {
	a := newLoadedApp(t, sliceSource(testEvents(t)), "org-1", Options{Columns: 1})
	apply(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	view := a.View()
	var doors, headline int
	for i, line := range strings.Split(view, "\n") {
		if strings.Contains(line, "Doors open") {
			doors = i
		}
		if strings.Contains(line, "Headline set") {
			headline = i
		}
	}
	require.Greater(t, headline, doors)
}
