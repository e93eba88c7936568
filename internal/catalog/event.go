// Package catalog holds the organizer-facing event model: raw records from the
// event source, the view-shaped events the panel displays, their categories and
// the snapshot handed to the edit flow.
package catalog

// Organizer identifies who runs an event.
type Organizer struct {
	ID    string
	Name  string
	Image string
}

// RawEvent is a record as supplied by the event source.
type RawEvent struct {
	ID          string
	Title       string
	Date        string
	Organizer   Organizer
	Likes       int
	Description string
	CoverImage  string
	Type        string
	Categories  Categories
	Capacity    int
}

// Event is the view-shaped record the panel renders and navigates.
type Event struct {
	ID          string
	Title       string
	Date        string
	Organizer   Organizer
	Likes       int
	Description string
	Image       string
	Type        string
	Profile     string
	Categories  Categories
	Capacity    int
}

// DefaultLikes is shown when an event has no recorded likes.
const DefaultLikes = 56

// DisplayLikes returns the like count to show in the header.
func (e Event) DisplayLikes() int {
	if e.Likes == 0 {
		return DefaultLikes
	}
	return e.Likes
}
