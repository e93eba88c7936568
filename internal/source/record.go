// Package source decodes event records from YAML files.
//
// A file is a list of events; each event lists its categories in display order:
//
//	- id: launch-2026
//	  title: Launch Night
//	  date: "2026-11-02"
//	  organizer: {id: org-1, name: Lagos Live, image: org1.png}
//	  capacity: 300
//	  categories:
//	    - key: menu
//	      kind: items
//	      title: Menu
//	      icon: calendar
//	      items: [{name: Doors open}]
//	    - key: personalities
//	      kind: personalities
//	      title: Personalities
//	      sections:
//	        performers: [{name: Tems, image: tems.png}]
package source

// Kinds of category records.
const (
	KindItems         = "items"
	KindPersonalities = "personalities"
)

// Record is one event as written in a file. A missing id is derived from the
// organizer, title and date so re-imports update the same event.
type Record struct {
	ID          string           `yaml:"id"`
	Title       string           `yaml:"title" validate:"required"`
	Date        string           `yaml:"date" validate:"required"`
	Organizer   OrganizerRecord  `yaml:"organizer" validate:"required"`
	Likes       int              `yaml:"likes" validate:"gte=0"`
	Description string           `yaml:"description"`
	CoverImage  string           `yaml:"cover_image"`
	Type        string           `yaml:"type"`
	Capacity    int              `yaml:"capacity" validate:"gte=0"`
	Categories  []CategoryRecord `yaml:"categories" validate:"dive"`
}

type OrganizerRecord struct {
	ID    string `yaml:"id" validate:"required"`
	Name  string `yaml:"name"`
	Image string `yaml:"image"`
}

type CategoryRecord struct {
	Key      string                    `yaml:"key" validate:"required"`
	Kind     string                    `yaml:"kind" validate:"required,oneof=items personalities"`
	Title    string                    `yaml:"title"`
	Icon     string                    `yaml:"icon"`
	Items    []ItemRecord              `yaml:"items,omitempty" validate:"dive"`
	Sections map[string][]PersonRecord `yaml:"sections,omitempty" validate:"dive,keys,oneof=performers guests speakers,endkeys,dive"`
}

type ItemRecord struct {
	Name string `yaml:"name" validate:"required"`
}

type PersonRecord struct {
	Name  string `yaml:"name" validate:"required"`
	Image string `yaml:"image"`
}
