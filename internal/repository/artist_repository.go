package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/venue-booking/internal/model"
)

const artistColumns = `id, name, city, state, phone, genres,
	facebook_link, image_link, website_link, seeking_venue, seeking_description`

// ArtistRepo manages persistence for artists.
type ArtistRepo struct {
	db *sql.DB
}

// NewArtistRepo constructs an ArtistRepo with the given DB handle.
func NewArtistRepo(db *sql.DB) *ArtistRepo {
	return &ArtistRepo{db: db}
}

// Create inserts a new artist and assigns the generated ID back to a.
func (r *ArtistRepo) Create(ctx context.Context, a *model.Artist) error {
	genres, err := encodeGenres(a.Genres)
	if err != nil {
		return err
	}
	const q = `INSERT INTO artists (name, city, state, phone, genres,
	           facebook_link, image_link, website_link, seeking_venue, seeking_description)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		a.Name, a.City, a.State, a.Phone, genres,
		a.FacebookLink, a.ImageLink, a.WebsiteLink, a.SeekingVenue, a.SeekingDescription,
	)
	if err != nil {
		return classify(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)
	return nil
}

// Update replaces every editable field of the artist with the given id.
// It returns ErrArtistNotFound when no such artist exists.
func (r *ArtistRepo) Update(ctx context.Context, id uint64, in model.ArtistInput) error {
	genres, err := encodeGenres(in.Genres)
	if err != nil {
		return err
	}
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		const q = `UPDATE artists
		           SET name = ?, city = ?, state = ?, phone = ?, genres = ?,
		               facebook_link = ?, image_link = ?, website_link = ?,
		               seeking_venue = ?, seeking_description = ?
		           WHERE id = ?`
		res, err := tx.ExecContext(ctx, q,
			in.Name, in.City, in.State, in.Phone, genres,
			in.FacebookLink, in.ImageLink, in.WebsiteLink,
			in.SeekingVenue, in.SeekingDescription, id,
		)
		if err != nil {
			return classify(err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			return nil
		}
		var one int
		if err := tx.QueryRowContext(ctx, `SELECT 1 FROM artists WHERE id = ?`, id).Scan(&one); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrArtistNotFound
			}
			return err
		}
		return nil
	})
}

// GetByID retrieves an artist by its ID.  It returns ErrArtistNotFound if
// there is no matching row.
func (r *ArtistRepo) GetByID(ctx context.Context, id uint64) (*model.Artist, error) {
	q := `SELECT ` + artistColumns + ` FROM artists WHERE id = ?`
	a, err := scanArtist(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}
	return a, nil
}

// ListAll returns every artist ordered by id.
func (r *ArtistRepo) ListAll(ctx context.Context) ([]model.Artist, error) {
	return r.query(ctx, `SELECT `+artistColumns+` FROM artists ORDER BY id`)
}

// SearchByName returns artists whose name contains term, ignoring case.
func (r *ArtistRepo) SearchByName(ctx context.Context, term string) ([]model.Artist, error) {
	q := `SELECT ` + artistColumns + ` FROM artists WHERE LOWER(name) LIKE ? ORDER BY id`
	return r.query(ctx, q, likePattern(term))
}

// GetSummaries loads the id, name and image link of the given artists.
func (r *ArtistRepo) GetSummaries(ctx context.Context, ids []uint64) (map[uint64]model.Summary, error) {
	return summaries(ctx, r.db, "artists", ids)
}

func (r *ArtistRepo) query(ctx context.Context, q string, args ...any) ([]model.Artist, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Artist
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanArtist(s rowScanner) (*model.Artist, error) {
	var (
		a      model.Artist
		genres []byte
	)
	if err := s.Scan(
		&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &genres,
		&a.FacebookLink, &a.ImageLink, &a.WebsiteLink, &a.SeekingVenue, &a.SeekingDescription,
	); err != nil {
		return nil, err
	}
	g, err := decodeGenres(genres)
	if err != nil {
		return nil, err
	}
	a.Genres = g
	return &a, nil
}
