// Package queue defines message payloads exchanged over the message broker.
package queue

// Event types published by the directory.
const (
	VenueListed   = "venue.listed"
	VenueUpdated  = "venue.updated"
	ArtistListed  = "artist.listed"
	ArtistUpdated = "artist.updated"
	ShowScheduled = "show.scheduled"
)

// QueueName is the durable queue every directory event is routed to.
const QueueName = "directory.events"

// Event is published after a venue, artist or show write commits.  It
// carries enough information for downstream consumers to log or notify
// without querying the primary database.  VenueID, ArtistID and StartTime
// are only set for show events.
type Event struct {
	Type       string `json:"type"`
	EntityID   uint64 `json:"entity_id"`
	Name       string `json:"name,omitempty"`
	VenueID    uint64 `json:"venue_id,omitempty"`
	ArtistID   uint64 `json:"artist_id,omitempty"`
	StartTime  string `json:"start_time,omitempty"`
	OccurredAt string `json:"occurred_at"`
}
