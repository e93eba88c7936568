package catalog

func mustCategories(entries ...Entry) Categories {
	c, err := NewCategories(entries...)
	if err != nil {
		panic(err)
	}
	return c
}

func rawEvent(id, organizerID string, entries ...Entry) RawEvent {
	return RawEvent{
		ID:         id,
		Title:      "Event " + id,
		Date:       "2026-11-02",
		Organizer:  Organizer{ID: organizerID, Name: "Org " + organizerID, Image: "org-" + organizerID + ".png"},
		CoverImage: "cover-" + id + ".jpg",
		Categories: mustCategories(entries...),
		Capacity:   120,
	}
}
