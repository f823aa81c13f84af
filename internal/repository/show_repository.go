// Package repository contains data access logic for Show domain operations.
// A Show links one artist to one venue at a start time.  Shows are only
// ever inserted; there is no update or delete path.
package repository

import (
	"context"      // context for controlling query lifetime
	"database/sql" // sql provides DB abstraction
	"errors"
	"time"

	"github.com/iliyamo/venue-booking/internal/model"
)

// ShowRepo manages persistence for shows.
type ShowRepo struct {
	db *sql.DB
}

// NewShowRepo constructs a ShowRepo with the given DB handle.
func NewShowRepo(db *sql.DB) *ShowRepo {
	return &ShowRepo{db: db}
}

// Create inserts a new show inside a transaction and assigns the generated
// ID back to the show.  StartTime is stored in UTC at second precision
// (DATETIME).  When venue_id or artist_id does not reference an existing
// row the insert is rolled back and ErrConstraintViolation is returned.
func (r *ShowRepo) Create(ctx context.Context, s *model.Show) error {
	start := s.StartTime.UTC().Truncate(time.Second)
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		const q = `INSERT INTO shows (start_time, venue_id, artist_id) VALUES (?, ?, ?)`
		res, err := tx.ExecContext(ctx, q, start, s.VenueID, s.ArtistID)
		if err != nil {
			return classify(err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		s.ID = uint64(id)
		s.StartTime = start
		return nil
	})
}

// GetByID retrieves a show by its ID.  It returns ErrShowNotFound if
// there is no matching row.
func (r *ShowRepo) GetByID(ctx context.Context, id uint64) (*model.Show, error) {
	const q = `SELECT id, start_time, venue_id, artist_id FROM shows WHERE id = ?`
	var s model.Show
	err := r.db.QueryRowContext(ctx, q, id).Scan(&s.ID, &s.StartTime, &s.VenueID, &s.ArtistID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrShowNotFound
		}
		return nil, err
	}
	return &s, nil
}

// ListAll returns every show ordered by id.
func (r *ShowRepo) ListAll(ctx context.Context) ([]model.Show, error) {
	return r.query(ctx, `SELECT id, start_time, venue_id, artist_id FROM shows ORDER BY id`)
}

// ListByVenue returns the shows hosted by a venue in insertion order.
// An unknown venue yields an empty slice.
func (r *ShowRepo) ListByVenue(ctx context.Context, venueID uint64) ([]model.Show, error) {
	const q = `SELECT id, start_time, venue_id, artist_id FROM shows WHERE venue_id = ? ORDER BY id`
	return r.query(ctx, q, venueID)
}

// ListByArtist returns the shows an artist plays in insertion order.
func (r *ShowRepo) ListByArtist(ctx context.Context, artistID uint64) ([]model.Show, error) {
	const q = `SELECT id, start_time, venue_id, artist_id FROM shows WHERE artist_id = ? ORDER BY id`
	return r.query(ctx, q, artistID)
}

// ListListings returns every show joined with its venue name and its
// artist's name and image, ordered by show id.
func (r *ShowRepo) ListListings(ctx context.Context) ([]model.ShowListing, error) {
	const q = `SELECT s.id, v.id, v.name, a.id, a.name, a.image_link, s.start_time
	           FROM shows s
	           JOIN venues v  ON v.id = s.venue_id
	           JOIN artists a ON a.id = s.artist_id
	           ORDER BY s.id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ShowListing
	for rows.Next() {
		var l model.ShowListing
		if err := rows.Scan(
			&l.ShowID, &l.VenueID, &l.VenueName,
			&l.ArtistID, &l.ArtistName, &l.ArtistImageLink, &l.StartTime,
		); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ShowRepo) query(ctx context.Context, q string, args ...any) ([]model.Show, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Show
	for rows.Next() {
		var s model.Show
		if err := rows.Scan(&s.ID, &s.StartTime, &s.VenueID, &s.ArtistID); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
