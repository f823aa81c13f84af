package service

import (
	"context"
	"fmt"

	"github.com/iliyamo/venue-booking/internal/model"
	"github.com/iliyamo/venue-booking/internal/queue"
	"github.com/iliyamo/venue-booking/internal/showcase"
)

// ListArtists returns the id and name of every artist.
func (d *Directory) ListArtists(ctx context.Context) ([]showcase.NamedItem, error) {
	artists, err := d.Artists.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	return showcase.ArtistItems(artists), nil
}

// SearchArtists matches term against artist names, ignoring case.
func (d *Directory) SearchArtists(ctx context.Context, term string) (showcase.SearchResult, error) {
	artists, err := d.Artists.SearchByName(ctx, term)
	if err != nil {
		return showcase.SearchResult{}, fmt.Errorf("search artists: %w", err)
	}
	return showcase.ArtistSearch(artists), nil
}

// Artist returns the detail record of an artist.  The venue of each show
// is resolved by the show's venue id.
func (d *Directory) Artist(ctx context.Context, id uint64) (showcase.ArtistView, error) {
	a, err := d.Artists.GetByID(ctx, id)
	if err != nil {
		return showcase.ArtistView{}, fmt.Errorf("load artist %d: %w", id, err)
	}
	shows, err := d.Shows.ListByArtist(ctx, id)
	if err != nil {
		return showcase.ArtistView{}, fmt.Errorf("list shows of artist %d: %w", id, err)
	}
	venues, err := d.Venues.GetSummaries(ctx, showcase.VenueIDs(shows))
	if err != nil {
		return showcase.ArtistView{}, fmt.Errorf("load venues of artist %d: %w", id, err)
	}
	return showcase.ArtistDetail(*a, shows, venues, d.now())
}

// GetArtist returns the stored artist without its shows.
func (d *Directory) GetArtist(ctx context.Context, id uint64) (*model.Artist, error) {
	a, err := d.Artists.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load artist %d: %w", id, err)
	}
	return a, nil
}

// CreateArtist lists a new artist.
func (d *Directory) CreateArtist(ctx context.Context, in model.ArtistInput) (*model.Artist, error) {
	a := &model.Artist{}
	in.Apply(a)
	if err := d.Artists.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("create artist: %w", err)
	}
	d.Log.Info().Uint64("artist_id", a.ID).Str("name", a.Name).Msg("artist listed")
	d.publish(ctx, queue.Event{Type: queue.ArtistListed, EntityID: a.ID, Name: a.Name})
	return a, nil
}

// UpdateArtist replaces the editable fields of an artist and returns the
// stored result.
func (d *Directory) UpdateArtist(ctx context.Context, id uint64, in model.ArtistInput) (*model.Artist, error) {
	if err := d.Artists.Update(ctx, id, in); err != nil {
		return nil, fmt.Errorf("update artist %d: %w", id, err)
	}
	d.publish(ctx, queue.Event{Type: queue.ArtistUpdated, EntityID: id, Name: in.Name})
	return d.GetArtist(ctx, id)
}
