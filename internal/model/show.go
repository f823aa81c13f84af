package model

import "time"

// Show is a scheduled event linking one artist to one venue.  Shows
// are immutable once created and are never deleted.
//
// Fields:
//
//	ID        – primary key identifier.
//	StartTime – when the show begins (UTC).
//	VenueID   – venue hosting the show (FK venues.id).
//	ArtistID  – artist performing (FK artists.id).
type Show struct {
	ID        uint64    // shows.id
	StartTime time.Time // shows.start_time
	VenueID   uint64    // shows.venue_id
	ArtistID  uint64    // shows.artist_id
}

// ShowInput is a show submission.  A nil StartTime means the show
// starts at creation time.
type ShowInput struct {
	VenueID   uint64
	ArtistID  uint64
	StartTime *time.Time
}

// ShowListing is a show joined with the display attributes of both its
// venue and its artist.
type ShowListing struct {
	ShowID          uint64
	VenueID         uint64
	VenueName       string
	ArtistID        uint64
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}
