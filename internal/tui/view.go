package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/eventpanel/internal/catalog"
	"github.com/jask/eventpanel/internal/render"
)

// EmptyMessage is shown when the organizer has no events.
const EmptyMessage = "No events found for this organizer."

func (a *App) View() string {
	body := a.renderBody()
	status := a.renderStatus()
	footer := a.help.View(a.keys)
	if a.panel.EditorOpen() {
		return a.overlay(a.editor.View()) + "\n" + status
	}
	return body + "\n" + status + "\n" + footer
}

func (a *App) renderBody() string {
	var b strings.Builder
	b.WriteString(a.renderTitle() + "\n\n")
	switch {
	case !a.loaded:
		b.WriteString(mutedStyle.Render("loading events..."))
	case a.panel.Empty():
		b.WriteString(a.renderEmpty())
	default:
		events := a.panel.Events()
		blocks := make([]string, 0, len(events))
		for i, ev := range events {
			blocks = append(blocks, a.renderEvent(i, ev))
		}
		b.WriteString(strings.Join(blocks, "\n"))
	}
	for _, o := range a.opts.Outlets {
		if v := o.View(a.width); v != "" {
			b.WriteString("\n\n" + v)
		}
	}
	return b.String()
}

func (a *App) renderTitle() string {
	title := headerBarStyle.Render(titleStyle.Render("eventpanel") + "  " + a.organizerID)
	if a.width > 0 {
		return lipgloss.PlaceHorizontal(a.width, lipgloss.Left, title)
	}
	return title
}

func (a *App) renderEmpty() string {
	out := EmptyMessage
	if len(a.view.Suggestions) > 0 {
		out += "\n" + hintStyle.Render("Did you mean: "+strings.Join(a.view.Suggestions, ", ")+"?")
	}
	if a.width > 0 {
		return lipgloss.PlaceHorizontal(a.width, lipgloss.Center, out)
	}
	return out
}

func (a *App) renderEvent(i int, ev catalog.Event) string {
	prefix := "  "
	box := eventBoxStyle
	if i == a.cursor {
		prefix = cursorStyle.Render("> ")
		box = focusedBoxStyle
	}
	lines := []string{renderHeader(ev)}
	if a.panel.Selection().IsOpen(i) {
		lines = append(lines, "", a.renderExpanded(ev))
	}
	content := strings.Join(lines, "\n")
	if w := a.boxWidth(); w > 0 {
		box = box.Width(w)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, prefix, box.Render(content))
}

func renderHeader(ev catalog.Event) string {
	organizer := ev.Organizer.Name
	if organizer == "" {
		organizer = ev.Organizer.ID
	}
	top := organizerStyle.Render(organizer) + "  " + dateStyle.Render(ev.Date)
	title := titleStyle.Render(ev.Title)
	meta := welcomeStyle.Render(fmt.Sprintf("Hello, this is to welcome you all to the %s.", ev.Title)) +
		"  " + likesStyle.Render(fmt.Sprintf("♥ %d", ev.DisplayLikes()))
	return top + "\n" + title + "\n" + meta
}

func (a *App) renderExpanded(ev catalog.Event) string {
	var b strings.Builder
	b.WriteString(a.renderTabs(ev) + "\n\n")
	_, cat, ok := a.panel.Active()
	if ok {
		b.WriteString(a.renderContent(render.Content(cat)))
	} else {
		b.WriteString(mutedStyle.Render("No details for this event."))
	}
	b.WriteString("\n\n" + capacityStyle.Render(fmt.Sprintf("Capacity: %d", ev.Capacity)))
	return b.String()
}

func (a *App) renderTabs(ev catalog.Event) string {
	active := a.panel.Selection().Category
	keys := ev.Categories.Keys()
	tabs := make([]string, 0, len(keys))
	for _, k := range keys {
		cat, _ := ev.Categories.Get(k)
		head := cat.Head()
		label := head.Title
		if label == "" {
			label = k
		}
		label = iconFor(head.Icon) + " " + label
		if k == active {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (a *App) renderContent(d render.Display) string {
	cols := a.columns()
	switch d := d.(type) {
	case render.Grid:
		if len(d) == 0 {
			return mutedStyle.Render("Nothing listed yet.")
		}
		return a.renderGrid(d.Names(), cols)
	case render.Groups:
		parts := make([]string, 0, len(d))
		for i, g := range d {
			label := sectionLabelStyle.Foreground(sectionColors[i%len(sectionColors)]).Render(g.Label)
			grid := mutedStyle.Render("None")
			if len(g.Members) > 0 {
				grid = a.renderGrid(g.Names(), cols)
			}
			parts = append(parts, label+"\n"+grid)
		}
		return strings.Join(parts, "\n")
	}
	return ""
}

func (a *App) renderGrid(names []string, cols int) string {
	w := a.cellWidth(cols)
	rows := render.Rows(names, cols)
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, 0, len(row))
		for _, name := range row {
			cells = append(cells, cellStyle.Width(w).Render(name))
		}
		out = append(out, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, out...)
}

func (a *App) columns() int {
	if a.opts.Columns > 0 {
		return a.opts.Columns
	}
	return render.Columns(a.width)
}

func (a *App) boxWidth() int {
	if a.width == 0 {
		return 0
	}
	return max(20, a.width-6)
}

func (a *App) cellWidth(cols int) int {
	if a.width == 0 {
		return 18
	}
	return max(8, (a.boxWidth()-4)/cols-4)
}

func (a *App) renderStatus() string {
	text := a.status
	if strings.HasPrefix(text, "error: ") {
		text = errorStyle.Render(text)
	}
	if a.width == 0 {
		return statusBarStyle.Render(text)
	}
	return statusBarStyle.Width(a.width).Render(text)
}

func (a *App) overlay(content string) string {
	modal := modalStyle.Render(content)
	if a.width == 0 || a.height == 0 {
		return modal
	}
	return lipgloss.Place(a.width, max(1, a.height-1), lipgloss.Center, lipgloss.Center, modal)
}

func renderHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		h := binding.Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		parts = append(parts, cursorStyle.Render(h.Key)+" "+mutedStyle.Render(h.Desc))
	}
	return strings.Join(parts, "  ")
}
