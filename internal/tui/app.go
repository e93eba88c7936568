// Package tui is the interactive event panel.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/eventpanel/internal/panel"
	"github.com/jask/eventpanel/internal/service"
)

// Options tune the App. Zero values pick sensible defaults.
type Options struct {
	// DefaultCategory is opened when an event expands. Empty means "menu".
	DefaultCategory string
	// Columns fixes the grid width; 0 picks it from the terminal width.
	Columns int
	Editor  Editor
	Outlets []Outlet
}

// App is the bubbletea model for one organizer's events.
type App struct {
	ctx         context.Context
	catalog     *service.CatalogService
	organizerID string
	opts        Options

	panel  *panel.Panel
	view   service.CatalogView
	loaded bool
	cursor int

	editor Editor
	keys   keyMap
	help   help.Model
	status string
	width  int
	height int
}

func New(ctx context.Context, svc *service.CatalogService, organizerID string, opts Options) *App {
	editor := opts.Editor
	if editor == nil {
		editor = NewSnapshotViewer()
	}
	return &App{
		ctx:         ctx,
		catalog:     svc,
		organizerID: organizerID,
		opts:        opts,
		panel:       panel.New(nil),
		editor:      editor,
		keys:        newKeyMap(),
		help:        help.New(),
	}
}

func (a *App) Init() tea.Cmd {
	return a.loadCatalog()
}

func (a *App) loadCatalog() tea.Cmd {
	return func() tea.Msg {
		view, err := a.catalog.Load(a.ctx, a.organizerID)
		if err != nil {
			return errMsg{err}
		}
		return catalogMsg(view)
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.help.Width = m.Width
	case catalogMsg:
		a.setCatalog(service.CatalogView(m))
	case statusMsg:
		a.status = string(m)
	case errMsg:
		a.status = "error: " + m.Error()
	case tea.KeyMsg:
		if a.panel.EditorOpen() {
			if m.String() == "ctrl+c" {
				return a, tea.Quit
			}
			return a, a.editor.Update(m)
		}
		return a.handleKey(m)
	default:
		if a.panel.EditorOpen() {
			return a, a.editor.Update(msg)
		}
	}
	return a, nil
}

func (a *App) setCatalog(view service.CatalogView) {
	var opts []panel.Option
	if a.opts.DefaultCategory != "" {
		opts = append(opts, panel.WithDefaultCategory(a.opts.DefaultCategory))
	}
	a.view = view
	a.panel = panel.New(view.Events, opts...)
	a.loaded = true
	if a.cursor >= a.panel.Len() {
		a.cursor = 0
	}
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(m, a.keys.Down):
		if a.cursor < a.panel.Len()-1 {
			a.cursor++
		}
	case key.Matches(m, a.keys.Toggle):
		a.panel.Toggle(a.cursor)
	case key.Matches(m, a.keys.Prev):
		a.panel.Prev()
	case key.Matches(m, a.keys.Next):
		a.panel.Next()
	case key.Matches(m, a.keys.Edit):
		a.openEditor()
	case key.Matches(m, a.keys.Reload):
		a.status = "reloading..."
		return a, a.loadCatalog()
	case key.Matches(m, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
	}
	return a, nil
}

func (a *App) openEditor() {
	snap, ok := a.panel.Snapshot()
	if !ok || !a.panel.OpenEditor() {
		a.status = "nothing to edit"
		return
	}
	a.editor.Open(snap, a.closeEditor)
	a.status = fmt.Sprintf("editing %s", snap.Title)
}

func (a *App) closeEditor() {
	a.panel.CloseEditor()
	a.status = ""
}

// Panel exposes the selection state.
func (a *App) Panel() *panel.Panel { return a.panel }

func (a *App) Cursor() int { return a.cursor }
