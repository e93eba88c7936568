package catalog

// Filter returns the view-shaped events owned by organizerID, in source order.
// It never returns nil and never modifies raw.
func Filter(raw []RawEvent, organizerID string) []Event {
	out := make([]Event, 0)
	for _, r := range raw {
		if r.Organizer.ID != organizerID {
			continue
		}
		out = append(out, view(r))
	}
	return out
}

func view(r RawEvent) Event {
	cats, _ := NewCategories(r.Categories.Entries()...)
	return Event{
		ID:          r.ID,
		Title:       r.Title,
		Date:        r.Date,
		Organizer:   r.Organizer,
		Likes:       r.Likes,
		Description: r.Description,
		Image:       r.CoverImage,
		Type:        r.Type,
		Profile:     r.Organizer.Image,
		Categories:  cats,
		Capacity:    r.Capacity,
	}
}
