package tui

// Outlet is a nested view rendered below the event list. The App renders
// registered outlets in order and never looks inside them.
type Outlet interface {
	Name() string
	View(width int) string
}

// OutletFunc adapts a plain function to an Outlet.
type OutletFunc struct {
	Label  string
	Render func(width int) string
}

func (o OutletFunc) Name() string { return o.Label }

func (o OutletFunc) View(width int) string {
	if o.Render == nil {
		return ""
	}
	return o.Render(width)
}
