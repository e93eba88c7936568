package service

import (
	"context"
	"fmt"
	"io"

	"github.com/jask/eventpanel/internal/database/repository"
	"github.com/jask/eventpanel/internal/logging"
	"github.com/jask/eventpanel/internal/source"
)

// ImportService loads YAML event files into the store.
type ImportService struct {
	Events *repository.EventRepo
}

type ImportResult struct {
	Imported int
	Skipped  int
	Errors   []error
}

// ImportYAML upserts every valid record of r in file order. Invalid records
// are reported in Errors; a repeated id within the same file is skipped.
func (s *ImportService) ImportYAML(ctx context.Context, r io.Reader) (ImportResult, error) {
	res := ImportResult{}
	if s.Events == nil {
		return res, fmt.Errorf("import: event repo not configured")
	}
	events, errs, err := source.Load(r)
	if err != nil {
		return res, fmt.Errorf("decode events: %w", err)
	}
	res.Errors = append(res.Errors, errs...)

	seen := make(map[string]bool, len(events))
	for _, ev := range events {
		if seen[ev.ID] {
			res.Skipped++
			continue
		}
		seen[ev.ID] = true
		if err := s.Events.Upsert(ctx, ev); err != nil {
			res.Errors = append(res.Errors, fmt.Errorf("event %s: %w", ev.ID, err))
			continue
		}
		res.Imported++
	}
	logging.FromContext(ctx).Info().
		Int("imported", res.Imported).
		Int("skipped", res.Skipped).
		Int("errors", len(res.Errors)).
		Msg("import finished")
	return res, nil
}
