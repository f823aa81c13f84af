// Package repository contains data access logic separated from HTTP handlers.
// This file defines the repository methods for venues: creation, edits,
// lookups by id, area grouping and name search.
package repository

import (
	"context"      // context allows passing deadlines and cancellation signals to DB operations
	"database/sql" // sql provides generic database operations and drivers
	"errors"

	"github.com/iliyamo/venue-booking/internal/model"
)

const venueColumns = `id, name, city, state, address, phone, genres,
	facebook_link, image_link, website_link, seeking_talent, seeking_description`

// VenueRepo encapsulates all database queries related to venues.  It
// depends on a sql.DB connection which should be configured elsewhere.
type VenueRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewVenueRepo constructs a VenueRepo with the provided DB handle.
func NewVenueRepo(db *sql.DB) *VenueRepo {
	return &VenueRepo{db: db}
}

// Create inserts a new venue.  On success the venue's ID field is
// populated with the auto-generated value.
func (r *VenueRepo) Create(ctx context.Context, v *model.Venue) error {
	genres, err := encodeGenres(v.Genres)
	if err != nil {
		return err
	}
	const q = `INSERT INTO venues (name, city, state, address, phone, genres,
	           facebook_link, image_link, website_link, seeking_talent, seeking_description)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		v.Name, v.City, v.State, v.Address, v.Phone, genres,
		v.FacebookLink, v.ImageLink, v.WebsiteLink, v.SeekingTalent, v.SeekingDescription,
	)
	if err != nil {
		return classify(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	v.ID = uint64(id)
	return nil
}

// Update replaces every editable field of the venue with the given id.
// It returns ErrVenueNotFound when no such venue exists.  Submitting the
// current values again is not an error.
func (r *VenueRepo) Update(ctx context.Context, id uint64, in model.VenueInput) error {
	genres, err := encodeGenres(in.Genres)
	if err != nil {
		return err
	}
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		const q = `UPDATE venues
		           SET name = ?, city = ?, state = ?, address = ?, phone = ?, genres = ?,
		               facebook_link = ?, image_link = ?, website_link = ?,
		               seeking_talent = ?, seeking_description = ?
		           WHERE id = ?`
		res, err := tx.ExecContext(ctx, q,
			in.Name, in.City, in.State, in.Address, in.Phone, genres,
			in.FacebookLink, in.ImageLink, in.WebsiteLink,
			in.SeekingTalent, in.SeekingDescription, id,
		)
		if err != nil {
			return classify(err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			return nil
		}
		// MySQL reports zero affected rows when nothing changed, so tell
		// "missing" apart from "identical".
		var one int
		if err := tx.QueryRowContext(ctx, `SELECT 1 FROM venues WHERE id = ?`, id).Scan(&one); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrVenueNotFound
			}
			return err
		}
		return nil
	})
}

// GetByID fetches a venue by its ID.  It returns ErrVenueNotFound if no
// row is found.
func (r *VenueRepo) GetByID(ctx context.Context, id uint64) (*model.Venue, error) {
	q := `SELECT ` + venueColumns + ` FROM venues WHERE id = ?`
	v, err := scanVenue(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return v, nil
}

// ListAll returns every venue ordered by id.
func (r *VenueRepo) ListAll(ctx context.Context) ([]model.Venue, error) {
	return r.query(ctx, `SELECT `+venueColumns+` FROM venues ORDER BY id`)
}

// SearchByName returns venues whose name contains term, ignoring case.
// Results are ordered by id so identical data yields identical output.
func (r *VenueRepo) SearchByName(ctx context.Context, term string) ([]model.Venue, error) {
	q := `SELECT ` + venueColumns + ` FROM venues WHERE LOWER(name) LIKE ? ORDER BY id`
	return r.query(ctx, q, likePattern(term))
}

// ListDistinctCityState returns every (city, state) pair that has at
// least one venue, ordered by state then city.
func (r *VenueRepo) ListDistinctCityState(ctx context.Context) ([]model.Area, error) {
	const q = `SELECT DISTINCT city, state FROM venues ORDER BY state, city`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Area
	for rows.Next() {
		var a model.Area
		if err := rows.Scan(&a.City, &a.State); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetSummaries loads the id, name and image link of the given venues in a
// single query.  Ids without a matching row are simply absent from the map.
func (r *VenueRepo) GetSummaries(ctx context.Context, ids []uint64) (map[uint64]model.Summary, error) {
	return summaries(ctx, r.db, "venues", ids)
}

func (r *VenueRepo) query(ctx context.Context, q string, args ...any) ([]model.Venue, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Venue
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanVenue(s rowScanner) (*model.Venue, error) {
	var (
		v      model.Venue
		genres []byte
	)
	if err := s.Scan(
		&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, &genres,
		&v.FacebookLink, &v.ImageLink, &v.WebsiteLink, &v.SeekingTalent, &v.SeekingDescription,
	); err != nil {
		return nil, err
	}
	g, err := decodeGenres(genres)
	if err != nil {
		return nil, err
	}
	v.Genres = g
	return &v, nil
}

// summaries is shared by venues and artists, whose display columns have
// the same names.  table is always a package constant.
func summaries(ctx context.Context, db *sql.DB, table string, ids []uint64) (map[uint64]model.Summary, error) {
	out := make(map[uint64]model.Summary)
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return out, nil
	}
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	q := `SELECT id, name, image_link FROM ` + table + ` WHERE id IN (` + inClause(len(ids)) + `)`
	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var s model.Summary
		if err := rows.Scan(&s.ID, &s.Name, &s.ImageLink); err != nil {
			return nil, err
		}
		out[s.ID] = s
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
