package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/eventpanel/internal/catalog"
	"github.com/jask/eventpanel/internal/logging"
)

// EventSource supplies the full, unfiltered event list.
type EventSource interface {
	Events(ctx context.Context) ([]catalog.RawEvent, error)
}

// OrganizerLister lists known organizers. Optional; when unset the organizers
// referenced by the source events are used.
type OrganizerLister interface {
	List(ctx context.Context) ([]catalog.Organizer, error)
}

// maxSuggestions caps the "did you mean" list.
const maxSuggestions = 3

// CatalogService loads an organizer's view of the event catalog.
type CatalogService struct {
	Events     EventSource
	Organizers OrganizerLister
}

// CatalogView is what the panel displays for one organizer.
type CatalogView struct {
	OrganizerID string
	Events      []catalog.Event
	// Suggestions holds organizer ids close to OrganizerID. Only filled when
	// Events is empty.
	Suggestions []string
}

func (v CatalogView) Empty() bool { return len(v.Events) == 0 }

// Load reads the source and filters it down to organizerID.
func (s *CatalogService) Load(ctx context.Context, organizerID string) (CatalogView, error) {
	if s.Events == nil {
		return CatalogView{}, fmt.Errorf("catalog: event source not configured")
	}
	raw, err := s.Events.Events(ctx)
	if err != nil {
		return CatalogView{}, fmt.Errorf("load events: %w", err)
	}
	view := CatalogView{
		OrganizerID: organizerID,
		Events:      catalog.Filter(raw, organizerID),
	}
	log := logging.FromContext(ctx)
	if !view.Empty() {
		log.Debug().Str("organizer", organizerID).Int("events", len(view.Events)).Int("total", len(raw)).Msg("catalog loaded")
		return view, nil
	}

	orgs, err := s.knownOrganizers(ctx, raw)
	if err != nil {
		return CatalogView{}, err
	}
	view.Suggestions = Suggest(organizerID, orgs)
	log.Info().Str("organizer", organizerID).Strs("suggestions", view.Suggestions).Msg("no events for organizer")
	return view, nil
}

func (s *CatalogService) knownOrganizers(ctx context.Context, raw []catalog.RawEvent) ([]catalog.Organizer, error) {
	if s.Organizers != nil {
		orgs, err := s.Organizers.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list organizers: %w", err)
		}
		return orgs, nil
	}
	seen := make(map[string]bool)
	var orgs []catalog.Organizer
	for _, r := range raw {
		if r.Organizer.ID == "" || seen[r.Organizer.ID] {
			continue
		}
		seen[r.Organizer.ID] = true
		orgs = append(orgs, r.Organizer)
	}
	return orgs, nil
}

// Suggest ranks organizers whose id or name is within a small edit distance
// of query. Results are organizer ids, closest first.
func Suggest(query string, orgs []catalog.Organizer) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	type scored struct {
		id   string
		dist int
	}
	var hits []scored
	for _, o := range orgs {
		if o.ID == query {
			continue
		}
		d := levenshtein.ComputeDistance(q, strings.ToLower(o.ID))
		if o.Name != "" {
			if nd := levenshtein.ComputeDistance(q, strings.ToLower(o.Name)); nd < d {
				d = nd
			}
		}
		if d <= threshold(q) {
			hits = append(hits, scored{id: o.ID, dist: d})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].dist != hits[j].dist {
			return hits[i].dist < hits[j].dist
		}
		return hits[i].id < hits[j].id
	})
	if len(hits) > maxSuggestions {
		hits = hits[:maxSuggestions]
	}
	out := make([]string, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.id)
	}
	return out
}

// threshold allows roughly one edit per three characters, minimum two.
func threshold(q string) int {
	n := len([]rune(q)) / 3
	if n < 2 {
		return 2
	}
	return n
}
