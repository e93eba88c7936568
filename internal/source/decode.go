package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
	"github.com/google/uuid"

	"github.com/jask/eventpanel/internal/catalog"
)

// ErrInvalidRecord marks a record that failed validation or conversion.
var ErrInvalidRecord = errors.New("invalid event record")

// RecordError reports why one record of a file was rejected.
type RecordError struct {
	Index int
	ID    string
	Err   error
}

func (e *RecordError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("record %d (%s): %v", e.Index, e.ID, e.Err)
	}
	return fmt.Sprintf("record %d: %v", e.Index, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

func (e *RecordError) Is(target error) bool { return target == ErrInvalidRecord }

var validate = validator.New(validator.WithRequiredStructEnabled())

// Decode reads a YAML list of records.
func Decode(r io.Reader) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read events: %w", err)
	}
	var recs []Record
	if err := yaml.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}
	return recs, nil
}

// Convert validates rec and turns it into a catalog record.
func Convert(rec Record) (catalog.RawEvent, error) {
	if err := validate.Struct(rec); err != nil {
		return catalog.RawEvent{}, err
	}
	var cats catalog.Categories
	for _, c := range rec.Categories {
		model, err := convertCategory(c)
		if err != nil {
			return catalog.RawEvent{}, err
		}
		if err := cats.Add(c.Key, model); err != nil {
			return catalog.RawEvent{}, err
		}
	}
	id := rec.ID
	if id == "" {
		id = StableID(rec.Organizer.ID, rec.Title, rec.Date)
	}
	return catalog.RawEvent{
		ID:    id,
		Title: rec.Title,
		Date:  rec.Date,
		Organizer: catalog.Organizer{
			ID:    rec.Organizer.ID,
			Name:  rec.Organizer.Name,
			Image: rec.Organizer.Image,
		},
		Likes:       rec.Likes,
		Description: rec.Description,
		CoverImage:  rec.CoverImage,
		Type:        rec.Type,
		Categories:  cats,
		Capacity:    rec.Capacity,
	}, nil
}

// StableID derives an event id from its identifying fields.
func StableID(organizerID, title, date string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("event:"+organizerID+"|"+title+"|"+date)).String()
}

func convertCategory(c CategoryRecord) (catalog.Category, error) {
	head := catalog.Header{Title: c.Title, Icon: c.Icon}
	switch c.Kind {
	case KindItems:
		if len(c.Sections) > 0 {
			return nil, fmt.Errorf("category %q: items category has sections", c.Key)
		}
		items := make([]catalog.Item, 0, len(c.Items))
		for _, it := range c.Items {
			items = append(items, catalog.Item{Name: it.Name})
		}
		return catalog.ItemsCategory{Header: head, Items: items}, nil
	case KindPersonalities:
		if len(c.Items) > 0 {
			return nil, fmt.Errorf("category %q: personalities category has items", c.Key)
		}
		var s catalog.Sections
		for name, people := range c.Sections {
			list := make([]catalog.Person, 0, len(people))
			for _, p := range people {
				list = append(list, catalog.Person{Name: p.Name, Image: p.Image})
			}
			if err := s.Set(name, list); err != nil {
				return nil, fmt.Errorf("category %q: %w", c.Key, err)
			}
		}
		return catalog.PersonalitiesCategory{Header: head, Sections: s}, nil
	default:
		return nil, fmt.Errorf("category %q: unknown kind %q", c.Key, c.Kind)
	}
}

// Load decodes and converts every record in r. Invalid records are skipped
// and reported as *RecordError values; valid ones keep their file order.
func Load(r io.Reader) ([]catalog.RawEvent, []error, error) {
	recs, err := Decode(r)
	if err != nil {
		return nil, nil, err
	}
	out := make([]catalog.RawEvent, 0, len(recs))
	var errs []error
	for i, rec := range recs {
		ev, err := Convert(rec)
		if err != nil {
			errs = append(errs, &RecordError{Index: i, ID: rec.ID, Err: err})
			continue
		}
		out = append(out, ev)
	}
	return out, errs, nil
}

// File is an event source backed by a YAML file on disk.
type File struct {
	Path string
}

// Events loads the file. Invalid records fail the whole read.
func (f File) Events(ctx context.Context) ([]catalog.RawEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fh, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", f.Path, err)
	}
	defer fh.Close()
	events, errs, err := Load(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.Path, err)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%s: %w", f.Path, errors.Join(errs...))
	}
	return events, nil
}
