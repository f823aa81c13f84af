// Package showcase shapes venues, artists and their shows into
// display-ready records.  It splits shows into upcoming and past relative
// to a reference instant, counts each bucket and joins in the display
// attributes of the counterpart entity.
//
// Every function here is a pure function of its arguments: nothing blocks,
// nothing is cached and nothing is shared between calls.
package showcase

import (
	"errors"
	"fmt"
	"time"

	"github.com/iliyamo/venue-booking/internal/model"
)

// TimeLayout is how show start times are rendered.
const TimeLayout = "2006-01-02 15:04:05"

// ErrCounterpartMissing is returned when a show references a venue or
// artist that was not supplied for the join.
var ErrCounterpartMissing = errors.New("show counterpart missing")

// Bucket is the classification of a show relative to a reference instant.
type Bucket int

const (
	Past Bucket = iota
	Upcoming
)

func (b Bucket) String() string {
	if b == Upcoming {
		return "upcoming"
	}
	return "past"
}

// Classify reports whether a show starting at start is upcoming at now.
// A show starting exactly at now is past.
func Classify(start, now time.Time) Bucket {
	if start.After(now) {
		return Upcoming
	}
	return Past
}

// Partition splits shows into upcoming and past, keeping the input order
// within each bucket.  Every show lands in exactly one bucket.
func Partition(shows []model.Show, now time.Time) (upcoming, past []model.Show) {
	for _, s := range shows {
		if Classify(s.StartTime, now) == Upcoming {
			upcoming = append(upcoming, s)
		} else {
			past = append(past, s)
		}
	}
	return upcoming, past
}

// CountUpcoming returns how many of shows start after now.
func CountUpcoming(shows []model.Show, now time.Time) int {
	n := 0
	for _, s := range shows {
		if Classify(s.StartTime, now) == Upcoming {
			n++
		}
	}
	return n
}

// FormatStart renders a start time the way show entries carry it.
func FormatStart(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// ArtistShow is a show seen from a venue: the performing artist and the
// start time.
type ArtistShow struct {
	ArtistID        uint64 `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// VenueShow is a show seen from an artist: the hosting venue and the
// start time.
type VenueShow struct {
	VenueID        uint64 `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

// VenueView is the detail record of a venue with its shows split into
// upcoming and past.
type VenueView struct {
	model.Venue
	UpcomingShows      []ArtistShow `json:"upcoming_shows"`
	PastShows          []ArtistShow `json:"past_shows"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
	PastShowsCount     int          `json:"past_shows_count"`
}

// ArtistView is the detail record of an artist with its shows split into
// upcoming and past.
type ArtistView struct {
	model.Artist
	UpcomingShows      []VenueShow `json:"upcoming_shows"`
	PastShows          []VenueShow `json:"past_shows"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
	PastShowsCount     int         `json:"past_shows_count"`
}

// VenueDetail builds the detail record of v.  artists must hold every
// artist referenced by shows, keyed by id.
func VenueDetail(v model.Venue, shows []model.Show, artists map[uint64]model.Summary, now time.Time) (VenueView, error) {
	up, past := Partition(shows, now)
	upcoming, err := artistShows(up, artists)
	if err != nil {
		return VenueView{}, err
	}
	earlier, err := artistShows(past, artists)
	if err != nil {
		return VenueView{}, err
	}
	return VenueView{
		Venue:              v,
		UpcomingShows:      upcoming,
		PastShows:          earlier,
		UpcomingShowsCount: len(upcoming),
		PastShowsCount:     len(earlier),
	}, nil
}

// ArtistDetail builds the detail record of a.  Each show's venue is
// resolved through the show's own VenueID; venues must hold every venue
// referenced by shows.
func ArtistDetail(a model.Artist, shows []model.Show, venues map[uint64]model.Summary, now time.Time) (ArtistView, error) {
	up, past := Partition(shows, now)
	upcoming, err := venueShows(up, venues)
	if err != nil {
		return ArtistView{}, err
	}
	earlier, err := venueShows(past, venues)
	if err != nil {
		return ArtistView{}, err
	}
	return ArtistView{
		Artist:             a,
		UpcomingShows:      upcoming,
		PastShows:          earlier,
		UpcomingShowsCount: len(upcoming),
		PastShowsCount:     len(earlier),
	}, nil
}

// artistShows joins each show with its artist.  The result is never nil.
func artistShows(shows []model.Show, artists map[uint64]model.Summary) ([]ArtistShow, error) {
	out := make([]ArtistShow, 0, len(shows))
	for _, s := range shows {
		a, ok := artists[s.ArtistID]
		if !ok {
			return nil, fmt.Errorf("%w: artist %d of show %d", ErrCounterpartMissing, s.ArtistID, s.ID)
		}
		out = append(out, ArtistShow{
			ArtistID:        a.ID,
			ArtistName:      a.Name,
			ArtistImageLink: a.ImageLink,
			StartTime:       FormatStart(s.StartTime),
		})
	}
	return out, nil
}

// venueShows joins each show with the venue named by its VenueID.
func venueShows(shows []model.Show, venues map[uint64]model.Summary) ([]VenueShow, error) {
	out := make([]VenueShow, 0, len(shows))
	for _, s := range shows {
		v, ok := venues[s.VenueID]
		if !ok {
			return nil, fmt.Errorf("%w: venue %d of show %d", ErrCounterpartMissing, s.VenueID, s.ID)
		}
		out = append(out, VenueShow{
			VenueID:        v.ID,
			VenueName:      v.Name,
			VenueImageLink: v.ImageLink,
			StartTime:      FormatStart(s.StartTime),
		})
	}
	return out, nil
}

// ArtistIDs returns the artist id of every show, in show order.
func ArtistIDs(shows []model.Show) []uint64 {
	ids := make([]uint64, 0, len(shows))
	for _, s := range shows {
		ids = append(ids, s.ArtistID)
	}
	return ids
}

// VenueIDs returns the venue id of every show, in show order.
func VenueIDs(shows []model.Show) []uint64 {
	ids := make([]uint64, 0, len(shows))
	for _, s := range shows {
		ids = append(ids, s.VenueID)
	}
	return ids
}
