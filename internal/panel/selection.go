// Package panel holds the selection state machine of the organizer panel and
// the controller that applies it to a list of events.
package panel

import "github.com/jask/eventpanel/internal/catalog"

// DefaultCategory is the key a freshly expanded panel opens on.
const DefaultCategory = catalog.KeyMenu

// Selection records which event panel is open and which category tab is active.
// The zero value is collapsed with nothing selected.
type Selection struct {
	Index    int
	HasIndex bool
	Category string
	Expanded bool
}

// Collapsed reports whether no panel is visible.
func (s Selection) Collapsed() bool { return !s.Expanded }

// IsOpen reports whether the panel at index is the visible one.
func (s Selection) IsOpen(index int) bool {
	return s.Expanded && s.HasIndex && s.Index == index
}

// Toggle applies a click on the panel at index. keys is that event's ordered
// category key sequence. A new index expands on the default category; the
// retained index flips visibility and keeps its category.
func Toggle(s Selection, index int, keys []string) Selection {
	return ToggleWithDefault(s, index, keys, DefaultCategory)
}

// ToggleWithDefault is Toggle with a caller-chosen default category.
func ToggleWithDefault(s Selection, index int, keys []string, def string) Selection {
	if !s.HasIndex || s.Index != index {
		return Selection{
			Index:    index,
			HasIndex: true,
			Category: defaultKey(keys, def),
			Expanded: true,
		}
	}
	s.Expanded = !s.Expanded
	return s
}

// Navigate moves the active category circularly over keys. It is a no-op when
// collapsed or when keys is empty.
func Navigate(s Selection, dir Direction, keys []string) Selection {
	if !s.Expanded || len(keys) == 0 {
		return s
	}
	c := NewCarousel(keys, s.Category)
	if dir == Prev {
		s.Category = c.Prev()
	} else {
		s.Category = c.Next()
	}
	return s
}

// defaultKey picks def when present, else the first key.
func defaultKey(keys []string, def string) string {
	for _, k := range keys {
		if k == def {
			return k
		}
	}
	if len(keys) > 0 {
		return keys[0]
	}
	return ""
}
