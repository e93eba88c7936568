// Package render maps a category model to the structure the panel displays:
// labeled groups of people, or a flat grid of item names.
package render

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jask/eventpanel/internal/catalog"
)

// Display is either Groups or Grid.
type Display interface {
	display()
}

// Member is one person inside a group.
type Member struct {
	Name  string
	Image string
}

// Group is a labeled section of people.
type Group struct {
	Section string
	Label   string
	Members []Member
}

// Groups is the display for a personalities category.
type Groups []Group

func (Groups) display() {}

// Cell is one entry of a flat grid.
type Cell struct {
	Name string
}

// Grid is the display for an items category.
type Grid []Cell

func (Grid) display() {}

// Content renders c. Passing nil or a foreign Category implementation is a
// programming error: callers resolve the active key before rendering.
func Content(c catalog.Category) Display {
	switch cat := c.(type) {
	case catalog.PersonalitiesCategory:
		return groups(cat.Sections)
	case catalog.ItemsCategory:
		return grid(cat.Items)
	default:
		panic(fmt.Sprintf("render: unsupported category %T", c))
	}
}

func groups(s catalog.Sections) Groups {
	caser := cases.Title(language.English)
	out := make(Groups, 0, len(catalog.SectionOrder))
	for _, name := range catalog.SectionOrder {
		people := s.Section(name)
		members := make([]Member, 0, len(people))
		for _, p := range people {
			members = append(members, Member{Name: p.Name, Image: p.Image})
		}
		out = append(out, Group{Section: name, Label: caser.String(name), Members: members})
	}
	return out
}

func grid(items []catalog.Item) Grid {
	out := make(Grid, 0, len(items))
	for _, it := range items {
		out = append(out, Cell{Name: it.Name})
	}
	return out
}

// Rows splits names into rows of at most cols entries. cols below 1 is treated as 1.
func Rows(names []string, cols int) [][]string {
	if cols < 1 {
		cols = 1
	}
	var out [][]string
	for start := 0; start < len(names); start += cols {
		end := start + cols
		if end > len(names) {
			end = len(names)
		}
		out = append(out, names[start:end])
	}
	return out
}

// Columns picks the grid width for a terminal width: two columns on narrow
// terminals, three otherwise.
func Columns(width int) int {
	if width > 0 && width < 60 {
		return 2
	}
	return 3
}

// Names returns the grid's entries in order.
func (g Grid) Names() []string {
	out := make([]string, 0, len(g))
	for _, c := range g {
		out = append(out, c.Name)
	}
	return out
}

// Names returns the group's member names in order.
func (g Group) Names() []string {
	out := make([]string, 0, len(g.Members))
	for _, m := range g.Members {
		out = append(out, m.Name)
	}
	return out
}
