package model

// Venue represents a physical location that can host shows.  This
// struct corresponds to a row in the `venues` table.  Genres keep the
// order in which they were submitted and are persisted as a JSON array.
//
// Fields:
//
//	ID                 – primary key identifier, generated by the store.
//	Name               – display name of the venue.
//	City, State        – location used to group venues into areas.
//	Address, Phone     – contact details.
//	Genres             – genres the venue books.
//	FacebookLink       – optional social link.
//	ImageLink          – image shown next to the venue.
//	WebsiteLink        – optional website.
//	SeekingTalent      – whether the venue is looking for artists.
//	SeekingDescription – free text describing what the venue looks for.
type Venue struct {
	ID                 uint64   `json:"id"`                  // venues.id
	Name               string   `json:"name"`                // venues.name
	City               string   `json:"city"`                // venues.city
	State              string   `json:"state"`               // venues.state
	Address            string   `json:"address"`             // venues.address
	Phone              string   `json:"phone"`               // venues.phone
	Genres             []string `json:"genres"`              // venues.genres (JSON)
	FacebookLink       string   `json:"facebook_link"`       // venues.facebook_link
	ImageLink          string   `json:"image_link"`          // venues.image_link
	WebsiteLink        string   `json:"website_link"`        // venues.website_link
	SeekingTalent      bool     `json:"seeking_talent"`      // venues.seeking_talent
	SeekingDescription string   `json:"seeking_description"` // venues.seeking_description
}

// VenueInput carries the already-validated fields of a venue create or
// edit submission.  Every field is replaced on edit.
type VenueInput struct {
	Name               string
	City               string
	State              string
	Address            string
	Phone              string
	Genres             []string
	FacebookLink       string
	ImageLink          string
	WebsiteLink        string
	SeekingTalent      bool
	SeekingDescription string
}

// Apply copies the input fields onto v, leaving the ID untouched.
func (in VenueInput) Apply(v *Venue) {
	v.Name = in.Name
	v.City = in.City
	v.State = in.State
	v.Address = in.Address
	v.Phone = in.Phone
	v.Genres = append([]string(nil), in.Genres...)
	v.FacebookLink = in.FacebookLink
	v.ImageLink = in.ImageLink
	v.WebsiteLink = in.WebsiteLink
	v.SeekingTalent = in.SeekingTalent
	v.SeekingDescription = in.SeekingDescription
}

// Area is a distinct (city, state) pair that venues are grouped by.
type Area struct {
	City  string `json:"city"`
	State string `json:"state"`
}
