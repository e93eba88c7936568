package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/eventpanel/internal/catalog"
	"github.com/jask/eventpanel/internal/render"
)

// Editor is the edit modal. The App opens it with a snapshot of the edit
// target and forwards key messages while it is visible. The editor calls
// onClose when it wants to be dismissed.
type Editor interface {
	Open(snap catalog.Snapshot, onClose func())
	Update(msg tea.Msg) tea.Cmd
	View() string
}

// SnapshotViewer is the default Editor: a read-only view of the snapshot.
type SnapshotViewer struct {
	snap    catalog.Snapshot
	onClose func()
	keys    editorKeyMap
}

func NewSnapshotViewer() *SnapshotViewer {
	return &SnapshotViewer{keys: newEditorKeyMap()}
}

func (v *SnapshotViewer) Open(snap catalog.Snapshot, onClose func()) {
	v.snap = snap
	v.onClose = onClose
}

func (v *SnapshotViewer) Update(msg tea.Msg) tea.Cmd {
	if m, ok := msg.(tea.KeyMsg); ok && key.Matches(m, v.keys.Close) {
		if v.onClose != nil {
			v.onClose()
		}
	}
	return nil
}

func (v *SnapshotViewer) View() string {
	s := v.snap
	var b strings.Builder
	b.WriteString(titleStyle.Render("Edit "+s.Title) + "\n\n")
	field := func(label, value string) {
		if value == "" {
			value = mutedStyle.Render("-")
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, fieldLabelStyle.Render(label), value) + "\n")
	}
	field("Title", s.Title)
	field("Date", s.Date)
	field("Time", s.Time)
	field("Location", s.Location)
	field("Capacity", fmt.Sprintf("%d", s.Capacity))
	field("Cover", s.CoverImage)
	field("Description", s.Description)
	groups := render.Content(catalog.PersonalitiesCategory{Sections: s.Personalities}).(render.Groups)
	for i, g := range groups {
		field(g.Label, memberNames(g, i))
	}
	field("Requirements", s.Requirements)
	field("Activities", s.Activities)
	field("Food", itemNames(s.Food))
	field("Drinks", itemNames(s.Drinks))
	b.WriteString("\n" + renderHelp([]key.Binding{v.keys.Close}))
	return b.String()
}

func memberNames(g render.Group, section int) string {
	names := g.Names()
	if len(names) == 0 {
		return ""
	}
	return lipgloss.NewStyle().Foreground(sectionColors[section%len(sectionColors)]).Render(strings.Join(names, ", "))
}

func itemNames(items []catalog.Item) string {
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.Name)
	}
	return strings.Join(names, ", ")
}
