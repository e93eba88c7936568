package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jask/eventpanel/internal/catalog"
	"github.com/jask/eventpanel/internal/database"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

const (
	kindItems         = "items"
	kindPersonalities = "personalities"
)

// EventRepo stores events together with their ordered categories.
type EventRepo struct {
	db *sql.DB
}

func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{db: db} }

// Upsert writes ev and replaces its categories. New events are appended after
// the last stored event; existing events keep their position.
func (r *EventRepo) Upsert(ctx context.Context, ev catalog.RawEvent) error {
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
		INSERT INTO organizers(id, name, image) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name=excluded.name, image=excluded.image;
		`, ev.Organizer.ID, ev.Organizer.Name, ev.Organizer.Image); err != nil {
			return fmt.Errorf("upsert organizer %s: %w", ev.Organizer.ID, err)
		}

		if _, err := tx.ExecContext(ctx, `
		INSERT INTO events(id, position, title, date, organizer_id, likes, description, cover_image, type, capacity, updated_at)
		VALUES (?, (SELECT COALESCE(MAX(position), -1) + 1 FROM events), ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
		 title=excluded.title,
		 date=excluded.date,
		 organizer_id=excluded.organizer_id,
		 likes=excluded.likes,
		 description=excluded.description,
		 cover_image=excluded.cover_image,
		 type=excluded.type,
		 capacity=excluded.capacity,
		 updated_at=excluded.updated_at;
		`, ev.ID, ev.Title, ev.Date, ev.Organizer.ID, ev.Likes, ev.Description, ev.CoverImage, ev.Type, ev.Capacity, database.Now()); err != nil {
			return fmt.Errorf("upsert event %s: %w", ev.ID, err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM event_categories WHERE event_id = ?`, ev.ID); err != nil {
			return err
		}
		for pos, entry := range ev.Categories.Entries() {
			if err := insertCategory(ctx, tx, ev.ID, pos, entry); err != nil {
				return fmt.Errorf("event %s category %s: %w", ev.ID, entry.Key, err)
			}
		}
		return nil
	})
}

func insertCategory(ctx context.Context, tx *sql.Tx, eventID string, pos int, e catalog.Entry) error {
	head := e.Category.Head()
	switch cat := e.Category.(type) {
	case catalog.ItemsCategory:
		if _, err := tx.ExecContext(ctx, `INSERT INTO event_categories(event_id, key, position, kind, title, icon) VALUES (?, ?, ?, ?, ?, ?)`,
			eventID, e.Key, pos, kindItems, head.Title, head.Icon); err != nil {
			return err
		}
		for i, it := range cat.Items {
			if _, err := tx.ExecContext(ctx, `INSERT INTO category_items(event_id, category_key, position, name) VALUES (?, ?, ?, ?)`,
				eventID, e.Key, i, it.Name); err != nil {
				return err
			}
		}
	case catalog.PersonalitiesCategory:
		if _, err := tx.ExecContext(ctx, `INSERT INTO event_categories(event_id, key, position, kind, title, icon) VALUES (?, ?, ?, ?, ?, ?)`,
			eventID, e.Key, pos, kindPersonalities, head.Title, head.Icon); err != nil {
			return err
		}
		for _, section := range catalog.SectionOrder {
			for i, p := range cat.Sections.Section(section) {
				if _, err := tx.ExecContext(ctx, `INSERT INTO category_people(event_id, category_key, section, position, name, image) VALUES (?, ?, ?, ?, ?, ?)`,
					eventID, e.Key, section, i, p.Name, p.Image); err != nil {
					return err
				}
			}
		}
	default:
		return fmt.Errorf("unsupported category %T", e.Category)
	}
	return nil
}

// Events returns every stored event in position order.
func (r *EventRepo) Events(ctx context.Context) ([]catalog.RawEvent, error) {
	return r.list(ctx, "")
}

// ByOrganizer returns the stored events of one organizer in position order.
func (r *EventRepo) ByOrganizer(ctx context.Context, organizerID string) ([]catalog.RawEvent, error) {
	return r.list(ctx, organizerID)
}

// Get returns a single event.
func (r *EventRepo) Get(ctx context.Context, id string) (catalog.RawEvent, error) {
	row := r.db.QueryRowContext(ctx, eventSelect+` WHERE e.id = ?`, id)
	ev, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return catalog.RawEvent{}, fmt.Errorf("event %s: %w", id, ErrNotFound)
		}
		return catalog.RawEvent{}, err
	}
	cats, err := r.categories(ctx, []string{id})
	if err != nil {
		return catalog.RawEvent{}, err
	}
	ev.Categories = cats[id]
	return ev, nil
}

// Delete removes an event and its categories.
func (r *EventRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("event %s: %w", id, ErrNotFound)
	}
	return nil
}

const eventSelect = `SELECT e.id, e.title, e.date, e.likes, e.description, e.cover_image, e.type, e.capacity,
 o.id, o.name, o.image
 FROM events e JOIN organizers o ON o.id = e.organizer_id`

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(s scanner) (catalog.RawEvent, error) {
	var ev catalog.RawEvent
	err := s.Scan(&ev.ID, &ev.Title, &ev.Date, &ev.Likes, &ev.Description, &ev.CoverImage, &ev.Type, &ev.Capacity,
		&ev.Organizer.ID, &ev.Organizer.Name, &ev.Organizer.Image)
	return ev, err
}

func (r *EventRepo) list(ctx context.Context, organizerID string) ([]catalog.RawEvent, error) {
	query := eventSelect
	var args []any
	if organizerID != "" {
		query += ` WHERE e.organizer_id = ?`
		args = append(args, organizerID)
	}
	query += ` ORDER BY e.position`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []catalog.RawEvent
	var ids []string
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ev)
		ids = append(ids, ev.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	cats, err := r.categories(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Categories = cats[out[i].ID]
	}
	return out, nil
}

type categoryRow struct {
	eventID string
	key     string
	kind    string
	head    catalog.Header
}

// categories loads the ordered categories of the given events.
func (r *EventRepo) categories(ctx context.Context, eventIDs []string) (map[string]catalog.Categories, error) {
	out := make(map[string]catalog.Categories, len(eventIDs))
	if len(eventIDs) == 0 {
		return out, nil
	}
	in, args := inClause(eventIDs)

	rows, err := r.db.QueryContext(ctx, `SELECT event_id, key, kind, title, icon FROM event_categories
	 WHERE event_id IN `+in+` ORDER BY event_id, position`, args...)
	if err != nil {
		return nil, err
	}
	var heads []categoryRow
	for rows.Next() {
		var c categoryRow
		if err := rows.Scan(&c.eventID, &c.key, &c.kind, &c.head.Title, &c.head.Icon); err != nil {
			rows.Close()
			return nil, err
		}
		heads = append(heads, c)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	items, err := r.items(ctx, in, args)
	if err != nil {
		return nil, err
	}
	people, err := r.people(ctx, in, args)
	if err != nil {
		return nil, err
	}

	for _, h := range heads {
		ref := h.eventID + "\x00" + h.key
		var model catalog.Category
		switch h.kind {
		case kindItems:
			model = catalog.ItemsCategory{Header: h.head, Items: items[ref]}
		case kindPersonalities:
			model = catalog.PersonalitiesCategory{Header: h.head, Sections: people[ref]}
		default:
			return nil, fmt.Errorf("event %s category %s: unknown kind %q", h.eventID, h.key, h.kind)
		}
		cats := out[h.eventID]
		if err := cats.Add(h.key, model); err != nil {
			return nil, err
		}
		out[h.eventID] = cats
	}
	return out, nil
}

// inClause builds "(?, ?, ...)" and its arguments for ids.
func inClause(ids []string) (string, []any) {
	marks := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		marks[i] = "?"
		args[i] = id
	}
	return "(" + strings.Join(marks, ", ") + ")", args
}

func (r *EventRepo) items(ctx context.Context, in string, args []any) (map[string][]catalog.Item, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT event_id, category_key, name FROM category_items
	 WHERE event_id IN `+in+` ORDER BY event_id, category_key, position`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := map[string][]catalog.Item{}
	for rows.Next() {
		var eventID, key, name string
		if err := rows.Scan(&eventID, &key, &name); err != nil {
			return nil, err
		}
		ref := eventID + "\x00" + key
		out[ref] = append(out[ref], catalog.Item{Name: name})
	}
	return out, rows.Err()
}

func (r *EventRepo) people(ctx context.Context, in string, args []any) (map[string]catalog.Sections, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT event_id, category_key, section, name, image FROM category_people
	 WHERE event_id IN `+in+` ORDER BY event_id, category_key, section, position`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := map[string]catalog.Sections{}
	for rows.Next() {
		var eventID, key, section string
		var p catalog.Person
		if err := rows.Scan(&eventID, &key, &section, &p.Name, &p.Image); err != nil {
			return nil, err
		}
		ref := eventID + "\x00" + key
		s := out[ref]
		if err := s.Set(section, append(s.Section(section), p)); err != nil {
			return nil, err
		}
		out[ref] = s
	}
	return out, rows.Err()
}
