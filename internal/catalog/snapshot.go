package catalog

import "strings"

// Placeholder values for fields the event source does not carry.
const (
	DefaultTime     = "18:00"
	DefaultLocation = "Event Location"
)

// Snapshot seeds the external edit flow. It is derived on demand and never stored.
type Snapshot struct {
	ID            string
	Title         string
	Description   string
	Date          string
	Time          string
	Location      string
	CoverImage    string
	Capacity      int
	Personalities Sections
	Requirements  string
	Activities    string
	Food          []Item
	Drinks        []Item
}

// BuildSnapshot projects e into the edit flow's input shape.
// Absent categories default to empty values, never nil.
func BuildSnapshot(e Event) Snapshot {
	cats := e.Categories
	people, _ := cats.Personalities(KeyPersonalities)
	return Snapshot{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		Time:        DefaultTime,
		Location:    DefaultLocation,
		CoverImage:  e.Image,
		Capacity:    e.Capacity,
		Personalities: Sections{
			Performers: clonePeople(people.Performers),
			Guests:     clonePeople(people.Guests),
			Speakers:   clonePeople(people.Speakers),
		},
		Requirements: joinNames(cats, KeyRequirements),
		Activities:   joinNames(cats, KeyActivities),
		Food:         cloneItems(cats, KeyFood),
		Drinks:       cloneItems(cats, KeyDrinks),
	}
}

func joinNames(cats Categories, key string) string {
	items, _ := cats.Items(key)
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.Name)
	}
	return strings.Join(names, "\n")
}

func cloneItems(cats Categories, key string) []Item {
	items, _ := cats.Items(key)
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

func clonePeople(in []Person) []Person {
	out := make([]Person, len(in))
	copy(out, in)
	return out
}
