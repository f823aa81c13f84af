package service

import (
	"context"
	"fmt"

	"github.com/iliyamo/venue-booking/internal/model"
	"github.com/iliyamo/venue-booking/internal/queue"
	"github.com/iliyamo/venue-booking/internal/showcase"
)

// VenueAreas lists every venue grouped by (city, state), each with its
// number of upcoming shows.
func (d *Directory) VenueAreas(ctx context.Context) ([]showcase.AreaView, error) {
	areas, err := d.Venues.ListDistinctCityState(ctx)
	if err != nil {
		return nil, fmt.Errorf("list areas: %w", err)
	}
	venues, err := d.Venues.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	shows, err := d.Shows.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list shows: %w", err)
	}
	return showcase.GroupByArea(areas, venues, shows, d.now()), nil
}

// SearchVenues matches term against venue names, ignoring case.
func (d *Directory) SearchVenues(ctx context.Context, term string) (showcase.SearchResult, error) {
	venues, err := d.Venues.SearchByName(ctx, term)
	if err != nil {
		return showcase.SearchResult{}, fmt.Errorf("search venues: %w", err)
	}
	return showcase.VenueSearch(venues), nil
}

// Venue returns the detail record of a venue.  An unknown id fails with
// repository.ErrVenueNotFound.
func (d *Directory) Venue(ctx context.Context, id uint64) (showcase.VenueView, error) {
	v, err := d.Venues.GetByID(ctx, id)
	if err != nil {
		return showcase.VenueView{}, fmt.Errorf("load venue %d: %w", id, err)
	}
	shows, err := d.Shows.ListByVenue(ctx, id)
	if err != nil {
		return showcase.VenueView{}, fmt.Errorf("list shows of venue %d: %w", id, err)
	}
	artists, err := d.Artists.GetSummaries(ctx, showcase.ArtistIDs(shows))
	if err != nil {
		return showcase.VenueView{}, fmt.Errorf("load artists of venue %d: %w", id, err)
	}
	return showcase.VenueDetail(*v, shows, artists, d.now())
}

// GetVenue returns the stored venue without its shows, e.g. to prefill an
// edit form.
func (d *Directory) GetVenue(ctx context.Context, id uint64) (*model.Venue, error) {
	v, err := d.Venues.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load venue %d: %w", id, err)
	}
	return v, nil
}

// CreateVenue lists a new venue.
func (d *Directory) CreateVenue(ctx context.Context, in model.VenueInput) (*model.Venue, error) {
	v := &model.Venue{}
	in.Apply(v)
	if err := d.Venues.Create(ctx, v); err != nil {
		return nil, fmt.Errorf("create venue: %w", err)
	}
	d.Log.Info().Uint64("venue_id", v.ID).Str("name", v.Name).Msg("venue listed")
	d.publish(ctx, queue.Event{Type: queue.VenueListed, EntityID: v.ID, Name: v.Name})
	return v, nil
}

// UpdateVenue replaces the editable fields of a venue and returns the
// stored result.
func (d *Directory) UpdateVenue(ctx context.Context, id uint64, in model.VenueInput) (*model.Venue, error) {
	if err := d.Venues.Update(ctx, id, in); err != nil {
		return nil, fmt.Errorf("update venue %d: %w", id, err)
	}
	d.publish(ctx, queue.Event{Type: queue.VenueUpdated, EntityID: id, Name: in.Name})
	return d.GetVenue(ctx, id)
}
