package catalog

import (
	"errors"
	"fmt"
)

// ErrDuplicateKey is returned when a category key is added twice.
var ErrDuplicateKey = errors.New("duplicate category key")

// Well-known category keys.
const (
	KeyMenu          = "menu"
	KeyPersonalities = "personalities"
	KeyRequirements  = "requirements"
	KeyActivities    = "activities"
	KeyFood          = "food"
	KeyDrinks        = "drinks"
)

// Section names of a personalities category, in display order.
const (
	SectionPerformers = "performers"
	SectionGuests     = "guests"
	SectionSpeakers   = "speakers"
)

// SectionOrder is the fixed iteration order for personality sections.
var SectionOrder = []string{SectionPerformers, SectionGuests, SectionSpeakers}

// Header is shared by both category variants.
type Header struct {
	Title string
	Icon  string // opaque tag, resolved by the presentation layer
}

func (h Header) Head() Header { return h }

// Category is either an ItemsCategory or a PersonalitiesCategory.
type Category interface {
	Head() Header
	category()
}

// Item is one entry of a flat category.
type Item struct {
	Name string
}

// Person is one entry of a personalities section.
type Person struct {
	Name  string
	Image string
}

// ItemsCategory is a flat list of named items.
type ItemsCategory struct {
	Header
	Items []Item
}

func (ItemsCategory) category() {}

// Sections groups people by role.
type Sections struct {
	Performers []Person
	Guests     []Person
	Speakers   []Person
}

// Section returns the people listed under name. Unknown names yield nil.
func (s Sections) Section(name string) []Person {
	switch name {
	case SectionPerformers:
		return s.Performers
	case SectionGuests:
		return s.Guests
	case SectionSpeakers:
		return s.Speakers
	}
	return nil
}

// Set replaces the people listed under name.
func (s *Sections) Set(name string, people []Person) error {
	switch name {
	case SectionPerformers:
		s.Performers = people
	case SectionGuests:
		s.Guests = people
	case SectionSpeakers:
		s.Speakers = people
	default:
		return fmt.Errorf("unknown section %q", name)
	}
	return nil
}

// PersonalitiesCategory lists people grouped by section.
type PersonalitiesCategory struct {
	Header
	Sections Sections
}

func (PersonalitiesCategory) category() {}

// Categories is an ordered key -> Category mapping.
type Categories struct {
	keys  []string
	byKey map[string]Category
}

// NewCategories builds a mapping from (key, category) pairs in order.
func NewCategories(entries ...Entry) (Categories, error) {
	var c Categories
	for _, e := range entries {
		if err := c.Add(e.Key, e.Category); err != nil {
			return Categories{}, err
		}
	}
	return c, nil
}

// Entry pairs a key with its category.
type Entry struct {
	Key      string
	Category Category
}

// Add appends key to the mapping.
func (c *Categories) Add(key string, cat Category) error {
	if cat == nil {
		return fmt.Errorf("category %q: nil model", key)
	}
	if _, ok := c.byKey[key]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
	}
	if c.byKey == nil {
		c.byKey = make(map[string]Category)
	}
	c.keys = append(c.keys, key)
	c.byKey[key] = cat
	return nil
}

// Keys returns a copy of the ordered key sequence.
func (c Categories) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

func (c Categories) Len() int { return len(c.keys) }

// Get resolves key to its model.
func (c Categories) Get(key string) (Category, bool) {
	cat, ok := c.byKey[key]
	return cat, ok
}

// Has reports whether key is present.
func (c Categories) Has(key string) bool {
	_, ok := c.byKey[key]
	return ok
}

// Entries returns the mapping as ordered pairs.
func (c Categories) Entries() []Entry {
	out := make([]Entry, 0, len(c.keys))
	for _, k := range c.keys {
		out = append(out, Entry{Key: k, Category: c.byKey[k]})
	}
	return out
}

// Items returns the items of key when it is an ItemsCategory.
func (c Categories) Items(key string) ([]Item, bool) {
	cat, ok := c.byKey[key].(ItemsCategory)
	if !ok {
		return nil, false
	}
	return cat.Items, true
}

// Personalities returns the sections of key when it is a PersonalitiesCategory.
func (c Categories) Personalities(key string) (Sections, bool) {
	cat, ok := c.byKey[key].(PersonalitiesCategory)
	if !ok {
		return Sections{}, false
	}
	return cat.Sections, true
}
