// Package service implements the directory operations: listing, searching,
// creating and editing venues and artists, and scheduling shows.  It reads
// through the repositories, shapes results with package showcase and
// announces successful writes on the event queue.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/iliyamo/venue-booking/internal/model"
	"github.com/iliyamo/venue-booking/internal/queue"
	"github.com/iliyamo/venue-booking/internal/showcase"
)

// VenueStore is the persistence contract for venues.
type VenueStore interface {
	Create(ctx context.Context, v *model.Venue) error
	Update(ctx context.Context, id uint64, in model.VenueInput) error
	GetByID(ctx context.Context, id uint64) (*model.Venue, error)
	ListAll(ctx context.Context) ([]model.Venue, error)
	SearchByName(ctx context.Context, term string) ([]model.Venue, error)
	ListDistinctCityState(ctx context.Context) ([]model.Area, error)
	GetSummaries(ctx context.Context, ids []uint64) (map[uint64]model.Summary, error)
}

// ArtistStore is the persistence contract for artists.
type ArtistStore interface {
	Create(ctx context.Context, a *model.Artist) error
	Update(ctx context.Context, id uint64, in model.ArtistInput) error
	GetByID(ctx context.Context, id uint64) (*model.Artist, error)
	ListAll(ctx context.Context) ([]model.Artist, error)
	SearchByName(ctx context.Context, term string) ([]model.Artist, error)
	GetSummaries(ctx context.Context, ids []uint64) (map[uint64]model.Summary, error)
}

// ShowStore is the persistence contract for shows.
type ShowStore interface {
	Create(ctx context.Context, s *model.Show) error
	ListAll(ctx context.Context) ([]model.Show, error)
	ListByVenue(ctx context.Context, venueID uint64) ([]model.Show, error)
	ListByArtist(ctx context.Context, artistID uint64) ([]model.Show, error)
	ListListings(ctx context.Context) ([]model.ShowListing, error)
}

// EventPublisher announces committed writes.
type EventPublisher interface {
	Publish(ctx context.Context, ev queue.Event) error
}

// publishTimeout bounds one background publish, broker handshake included.
const publishTimeout = 3 * time.Second

// Directory bundles the stores and collaborators every operation needs.
// Apart from the count of in-flight publishes it keeps no state, so one
// Directory serves all requests concurrently.  It must not be copied.
type Directory struct {
	Venues  VenueStore
	Artists ArtistStore
	Shows   ShowStore
	Events  EventPublisher // optional
	Log     zerolog.Logger
	Now     func() time.Time

	pending sync.WaitGroup
}

// NewDirectory constructs a Directory and panics if a store is nil.
func NewDirectory(venues VenueStore, artists ArtistStore, shows ShowStore, events EventPublisher, log zerolog.Logger) *Directory {
	if venues == nil || artists == nil || shows == nil {
		panic("nil store passed to NewDirectory")
	}
	return &Directory{
		Venues:  venues,
		Artists: artists,
		Shows:   shows,
		Events:  events,
		Log:     log,
		Now:     time.Now,
	}
}

func (d *Directory) now() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}

// publish sends ev in the background and only logs failures: the write
// has committed and the request does not wait on the broker.
func (d *Directory) publish(ctx context.Context, ev queue.Event) {
	if d.Events == nil {
		return
	}
	ev.OccurredAt = d.now().UTC().Format(time.RFC3339)
	ctx = context.WithoutCancel(ctx)
	d.pending.Add(1)
	go func() {
		defer d.pending.Done()
		ctx, cancel := context.WithTimeout(ctx, publishTimeout)
		defer cancel()
		if err := d.Events.Publish(ctx, ev); err != nil {
			d.Log.Warn().Err(err).Str("event", ev.Type).Uint64("entity_id", ev.EntityID).Msg("publish event failed")
		}
	}()
}

// Drain blocks until every event handed to the publisher has been sent or
// has failed.  Call it on shutdown after the HTTP server has stopped.
func (d *Directory) Drain() {
	d.pending.Wait()
}

// ListShows returns every show joined with its venue and artist.
func (d *Directory) ListShows(ctx context.Context) ([]showcase.ShowEntry, error) {
	listings, err := d.Shows.ListListings(ctx)
	if err != nil {
		return nil, fmt.Errorf("list shows: %w", err)
	}
	return showcase.ShowEntries(listings), nil
}

// CreateShow schedules a show.  When in.StartTime is nil the show starts
// now.  A venue or artist id that does not exist fails with
// repository.ErrConstraintViolation and stores nothing.
func (d *Directory) CreateShow(ctx context.Context, in model.ShowInput) (*model.Show, error) {
	s := &model.Show{VenueID: in.VenueID, ArtistID: in.ArtistID}
	if in.StartTime != nil {
		s.StartTime = *in.StartTime
	} else {
		s.StartTime = d.now()
	}
	if err := d.Shows.Create(ctx, s); err != nil {
		return nil, fmt.Errorf("create show: %w", err)
	}
	d.Log.Info().Uint64("show_id", s.ID).Uint64("venue_id", s.VenueID).Uint64("artist_id", s.ArtistID).Msg("show scheduled")
	d.publish(ctx, queue.Event{
		Type:      queue.ShowScheduled,
		EntityID:  s.ID,
		VenueID:   s.VenueID,
		ArtistID:  s.ArtistID,
		StartTime: showcase.FormatStart(s.StartTime),
	})
	return s, nil
}
