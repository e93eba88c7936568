package testdata

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jask/eventpanel/internal/catalog"
	"github.com/jask/eventpanel/internal/database/repository"
)

// DemoOrganizerID owns most of the demo events.
const DemoOrganizerID = "demo-organizer"

// Repos bundles repos used by Seed.
type Repos struct {
	Events *repository.EventRepo
}

// Seed inserts demo events when the store is empty and reports how many were
// written.
func Seed(ctx context.Context, repos Repos) (int, error) {
	existing, err := repos.Events.Events(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}
	events, err := Events()
	if err != nil {
		return 0, err
	}
	for _, ev := range events {
		if err := repos.Events.Upsert(ctx, ev); err != nil {
			return 0, fmt.Errorf("seed %s: %w", ev.Title, err)
		}
	}
	return len(events), nil
}

// Events returns the demo catalog. Ids are stable across runs.
func Events() ([]catalog.RawEvent, error) {
	host := catalog.Organizer{ID: DemoOrganizerID, Name: "Harbour Nights", Image: "harbour.png"}
	other := catalog.Organizer{ID: "demo-guest-host", Name: "Rooftop Collective", Image: "rooftop.png"}

	launch, err := catalog.NewCategories(
		items(catalog.KeyMenu, "Menu", "calendar", "Doors open", "Opening DJ set", "Headline performance", "Afterparty"),
		catalog.Entry{Key: catalog.KeyPersonalities, Category: catalog.PersonalitiesCategory{
			Header: catalog.Header{Title: "Personalities", Icon: "users"},
			Sections: catalog.Sections{
				Performers: []catalog.Person{{Name: "Ayo Bello", Image: "ayo.png"}, {Name: "The Tides", Image: "tides.png"}},
				Guests:     []catalog.Person{{Name: "Kemi Adeyemi", Image: "kemi.png"}},
				Speakers:   []catalog.Person{{Name: "Daniel Osei", Image: "daniel.png"}},
			},
		}},
		items(catalog.KeyRequirements, "Requirements", "activity", "Ticket", "Photo ID", "18+"),
		items(catalog.KeyFood, "Food", "coffee", "Suya platter", "Jollof rice", "Plantain"),
		items(catalog.KeyDrinks, "Drinks", "wine", "Zobo", "Palm wine", "Sparkling water"),
	)
	if err != nil {
		return nil, err
	}
	workshop, err := catalog.NewCategories(
		items(catalog.KeyActivities, "Activities", "activity", "Intro talk", "Hands-on session", "Q&A"),
		catalog.Entry{Key: catalog.KeyPersonalities, Category: catalog.PersonalitiesCategory{
			Header: catalog.Header{Title: "Personalities", Icon: "users"},
			Sections: catalog.Sections{
				Speakers: []catalog.Person{{Name: "Grace Mensah", Image: "grace.png"}, {Name: "Tunde Lawal", Image: "tunde.png"}},
			},
		}},
		items(catalog.KeyRequirements, "Requirements", "activity", "Laptop"),
	)
	if err != nil {
		return nil, err
	}
	rooftop, err := catalog.NewCategories(
		items(catalog.KeyMenu, "Menu", "calendar", "Sunset set", "Live band"),
		items(catalog.KeyDrinks, "Drinks", "wine", "Chapman"),
	)
	if err != nil {
		return nil, err
	}

	return []catalog.RawEvent{
		{
			ID:          stableID(host.ID, "Harbour Launch Night"),
			Title:       "Harbour Launch Night",
			Date:        "2026-11-14",
			Organizer:   host,
			Likes:       128,
			Description: "Season opener on the waterfront with live music and street food.",
			CoverImage:  "launch.jpg",
			Type:        "concert",
			Categories:  launch,
			Capacity:    400,
		},
		{
			ID:          stableID(host.ID, "Creative Coding Workshop"),
			Title:       "Creative Coding Workshop",
			Date:        "2026-11-21",
			Organizer:   host,
			Description: "An afternoon of generative art and small experiments.",
			CoverImage:  "workshop.jpg",
			Type:        "workshop",
			Categories:  workshop,
			Capacity:    40,
		},
		{
			ID:         stableID(host.ID, "Quiet Listening Session"),
			Title:      "Quiet Listening Session",
			Date:       "2026-12-05",
			Organizer:  host,
			Type:       "meetup",
			Categories: mustEmpty(),
			Capacity:   25,
		},
		{
			ID:         stableID(other.ID, "Rooftop Sundowner"),
			Title:      "Rooftop Sundowner",
			Date:       "2026-11-28",
			Organizer:  other,
			Likes:      9,
			Type:       "party",
			Categories: rooftop,
			Capacity:   120,
		},
	}, nil
}

func items(key, title, icon string, names ...string) catalog.Entry {
	list := make([]catalog.Item, 0, len(names))
	for _, n := range names {
		list = append(list, catalog.Item{Name: n})
	}
	return catalog.Entry{Key: key, Category: catalog.ItemsCategory{
		Header: catalog.Header{Title: title, Icon: icon},
		Items:  list,
	}}
}

func mustEmpty() catalog.Categories {
	c, _ := catalog.NewCategories()
	return c
}

func stableID(organizerID, title string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("demo:"+organizerID+"|"+title)).String()
}
