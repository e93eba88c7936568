package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/eventpanel/internal/database"
)

// storeTables lists the event store tables, children before parents so the
// deletes never trip a foreign key.
var storeTables = []string{
	"category_people",
	"category_items",
	"event_categories",
	"events",
	"organizers",
}

// MaintenanceService clears the sqlite event store behind `eventpanel reset`.
type MaintenanceService struct {
	DB *sql.DB
}

// Reset removes every organizer and event together with their categories,
// items and people, and returns how many events were dropped. Migrations are
// left applied so the store can be re-imported straight away.
func (s *MaintenanceService) Reset(ctx context.Context) (int, error) {
	if s.DB == nil {
		return 0, fmt.Errorf("reset event store: db not configured")
	}
	var removed int
	if err := database.WithTx(ctx, s.DB, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM events").Scan(&removed); err != nil {
			return fmt.Errorf("count events: %w", err)
		}
		for _, t := range storeTables {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+t); err != nil {
				return fmt.Errorf("clear %s: %w", t, err)
			}
		}
		return nil
	}); err != nil {
		return 0, err
	}
	_, _ = s.DB.ExecContext(ctx, "VACUUM")
	return removed, nil
}
