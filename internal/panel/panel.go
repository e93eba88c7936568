package panel

import "github.com/jask/eventpanel/internal/catalog"

// Panel owns the organizer's view events and the single selection over them.
// It is not safe for concurrent use; the UI loop drives it one message at a time.
type Panel struct {
	events     []catalog.Event
	sel        Selection
	def        string
	editorOpen bool
}

// Option configures a Panel.
type Option func(*Panel)

// WithDefaultCategory overrides the category a freshly expanded panel opens on.
func WithDefaultCategory(key string) Option {
	return func(p *Panel) {
		if key != "" {
			p.def = key
		}
	}
}

func New(events []catalog.Event, opts ...Option) *Panel {
	p := &Panel{events: events, def: DefaultCategory}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Panel) Events() []catalog.Event { return p.events }

func (p *Panel) Len() int { return len(p.events) }

// Empty reports whether the organizer has no events to browse.
func (p *Panel) Empty() bool { return len(p.events) == 0 }

func (p *Panel) Selection() Selection { return p.sel }

// Toggle expands, collapses or switches to the panel at index.
// Out of range indexes are ignored.
func (p *Panel) Toggle(index int) {
	if index < 0 || index >= len(p.events) {
		return
	}
	p.sel = ToggleWithDefault(p.sel, index, p.events[index].Categories.Keys(), p.def)
}

func (p *Panel) Next() { p.navigate(Next) }

func (p *Panel) Prev() { p.navigate(Prev) }

func (p *Panel) navigate(dir Direction) {
	ev, ok := p.selected()
	if !ok {
		return
	}
	p.sel = Navigate(p.sel, dir, ev.Categories.Keys())
}

// Active returns the expanded event and its active category model. ok is false
// when nothing is expanded or the active key does not resolve to a model; the
// caller must not render content in that case.
func (p *Panel) Active() (catalog.Event, catalog.Category, bool) {
	if !p.sel.Expanded {
		return catalog.Event{}, nil, false
	}
	ev, ok := p.selected()
	if !ok {
		return catalog.Event{}, nil, false
	}
	cat, ok := ev.Categories.Get(p.sel.Category)
	if !ok {
		return ev, nil, false
	}
	return ev, cat, true
}

func (p *Panel) selected() (catalog.Event, bool) {
	if !p.sel.HasIndex || p.sel.Index < 0 || p.sel.Index >= len(p.events) {
		return catalog.Event{}, false
	}
	return p.events[p.sel.Index], true
}

// EditTarget is the event the edit flow opens on: the selected event, or the
// first event when nothing has been selected yet.
func (p *Panel) EditTarget() (catalog.Event, bool) {
	if ev, ok := p.selected(); ok {
		return ev, true
	}
	if len(p.events) == 0 {
		return catalog.Event{}, false
	}
	return p.events[0], true
}

// Snapshot builds the edit flow input for EditTarget.
func (p *Panel) Snapshot() (catalog.Snapshot, bool) {
	ev, ok := p.EditTarget()
	if !ok {
		return catalog.Snapshot{}, false
	}
	return catalog.BuildSnapshot(ev), true
}

func (p *Panel) OpenEditor() bool {
	if len(p.events) == 0 {
		return false
	}
	p.editorOpen = true
	return true
}

func (p *Panel) CloseEditor() { p.editorOpen = false }

func (p *Panel) EditorOpen() bool { return p.editorOpen }
