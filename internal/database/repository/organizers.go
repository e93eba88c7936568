package repository

import (
	"context"
	"database/sql"

	"github.com/jask/eventpanel/internal/catalog"
)

// OrganizerRepo handles organizers.
type OrganizerRepo struct {
	db *sql.DB
}

func NewOrganizerRepo(db *sql.DB) *OrganizerRepo { return &OrganizerRepo{db: db} }

func (r *OrganizerRepo) List(ctx context.Context) ([]catalog.Organizer, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, image FROM organizers ORDER BY name, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []catalog.Organizer
	for rows.Next() {
		var o catalog.Organizer
		if err := rows.Scan(&o.ID, &o.Name, &o.Image); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// Prune removes organizers that no longer own any event.
func (r *OrganizerRepo) Prune(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM organizers WHERE id NOT IN (SELECT DISTINCT organizer_id FROM events)`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
