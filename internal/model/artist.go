package model

// Artist represents a performer who can be booked for shows.  It maps
// to a row in the `artists` table.
//
// Fields:
//
//	ID                 – primary key identifier, generated by the store.
//	Name               – display name used for search.
//	City, State        – home location.
//	Phone              – contact number.
//	Genres             – genres the artist plays, in submission order.
//	FacebookLink       – optional social link.
//	ImageLink          – image shown next to the artist.
//	WebsiteLink        – optional website.
//	SeekingVenue       – whether the artist is looking for venues.
//	SeekingDescription – free text describing what the artist looks for.
type Artist struct {
	ID                 uint64   `json:"id"`                  // artists.id
	Name               string   `json:"name"`                // artists.name
	City               string   `json:"city"`                // artists.city
	State              string   `json:"state"`               // artists.state
	Phone              string   `json:"phone"`               // artists.phone
	Genres             []string `json:"genres"`              // artists.genres (JSON)
	FacebookLink       string   `json:"facebook_link"`       // artists.facebook_link
	ImageLink          string   `json:"image_link"`          // artists.image_link
	WebsiteLink        string   `json:"website_link"`        // artists.website_link
	SeekingVenue       bool     `json:"seeking_venue"`       // artists.seeking_venue
	SeekingDescription string   `json:"seeking_description"` // artists.seeking_description
}

// ArtistInput carries the already-validated fields of an artist create
// or edit submission.
type ArtistInput struct {
	Name               string
	City               string
	State              string
	Phone              string
	Genres             []string
	FacebookLink       string
	ImageLink          string
	WebsiteLink        string
	SeekingVenue       bool
	SeekingDescription string
}

// Apply copies the input fields onto a, leaving the ID untouched.
func (in ArtistInput) Apply(a *Artist) {
	a.Name = in.Name
	a.City = in.City
	a.State = in.State
	a.Phone = in.Phone
	a.Genres = append([]string(nil), in.Genres...)
	a.FacebookLink = in.FacebookLink
	a.ImageLink = in.ImageLink
	a.WebsiteLink = in.WebsiteLink
	a.SeekingVenue = in.SeekingVenue
	a.SeekingDescription = in.SeekingDescription
}

// Summary is the display subset of a venue or artist that is joined
// into show listings.
type Summary struct {
	ID        uint64
	Name      string
	ImageLink string
}
