package handler

import (
	"strings"
	"time"

	"github.com/iliyamo/venue-booking/internal/model"
	"github.com/iliyamo/venue-booking/internal/showcase"
)

// searchRequest is bound from the query string on GET and from the body
// on POST.
type searchRequest struct {
	SearchTerm string `json:"search_term" form:"search_term" query:"search_term" validate:"max=120"`
}

type venueRequest struct {
	Name               string   `json:"name" form:"name" validate:"required,max=255"`
	City               string   `json:"city" form:"city" validate:"required,max=120"`
	State              string   `json:"state" form:"state" validate:"required,max=120"`
	Address            string   `json:"address" form:"address" validate:"max=120"`
	Phone              string   `json:"phone" form:"phone" validate:"max=120"`
	Genres             []string `json:"genres" form:"genres" validate:"dive,required,max=120"`
	FacebookLink       string   `json:"facebook_link" form:"facebook_link" validate:"omitempty,url,max=120"`
	ImageLink          string   `json:"image_link" form:"image_link" validate:"omitempty,url,max=500"`
	WebsiteLink        string   `json:"website_link" form:"website_link" validate:"omitempty,url,max=500"`
	SeekingTalent      bool     `json:"seeking_talent" form:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description" form:"seeking_description" validate:"max=500"`
}

func (r venueRequest) input() model.VenueInput {
	return model.VenueInput{
		Name:               strings.TrimSpace(r.Name),
		City:               strings.TrimSpace(r.City),
		State:              strings.TrimSpace(r.State),
		Address:            strings.TrimSpace(r.Address),
		Phone:              strings.TrimSpace(r.Phone),
		Genres:             r.Genres,
		FacebookLink:       r.FacebookLink,
		ImageLink:          r.ImageLink,
		WebsiteLink:        r.WebsiteLink,
		SeekingTalent:      r.SeekingTalent,
		SeekingDescription: r.SeekingDescription,
	}
}

type artistRequest struct {
	Name               string   `json:"name" form:"name" validate:"required,max=255"`
	City               string   `json:"city" form:"city" validate:"required,max=120"`
	State              string   `json:"state" form:"state" validate:"required,max=120"`
	Phone              string   `json:"phone" form:"phone" validate:"max=120"`
	Genres             []string `json:"genres" form:"genres" validate:"dive,required,max=120"`
	FacebookLink       string   `json:"facebook_link" form:"facebook_link" validate:"omitempty,url,max=120"`
	ImageLink          string   `json:"image_link" form:"image_link" validate:"omitempty,url,max=500"`
	WebsiteLink        string   `json:"website_link" form:"website_link" validate:"omitempty,url,max=500"`
	SeekingVenue       bool     `json:"seeking_venue" form:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description" form:"seeking_description" validate:"max=500"`
}

func (r artistRequest) input() model.ArtistInput {
	return model.ArtistInput{
		Name:               strings.TrimSpace(r.Name),
		City:               strings.TrimSpace(r.City),
		State:              strings.TrimSpace(r.State),
		Phone:              strings.TrimSpace(r.Phone),
		Genres:             r.Genres,
		FacebookLink:       r.FacebookLink,
		ImageLink:          r.ImageLink,
		WebsiteLink:        r.WebsiteLink,
		SeekingVenue:       r.SeekingVenue,
		SeekingDescription: r.SeekingDescription,
	}
}

// showRequest accepts start_time as "2006-01-02 15:04:05" (UTC) or RFC 3339.
// An empty start_time schedules the show for now.
type showRequest struct {
	VenueID   uint64 `json:"venue_id" form:"venue_id" validate:"required,gt=0"`
	ArtistID  uint64 `json:"artist_id" form:"artist_id" validate:"required,gt=0"`
	StartTime string `json:"start_time" form:"start_time" validate:"max=64"`
}

// input converts r.  ok is false when start_time is present but in
// neither accepted layout.
func (r showRequest) input() (in model.ShowInput, ok bool) {
	in = model.ShowInput{VenueID: r.VenueID, ArtistID: r.ArtistID}
	s := strings.TrimSpace(r.StartTime)
	if s == "" {
		return in, true
	}
	st, err := time.ParseInLocation(showcase.TimeLayout, s, time.UTC)
	if err != nil {
		if st, err = time.Parse(time.RFC3339, s); err != nil {
			return in, false
		}
		st = st.UTC()
	}
	in.StartTime = &st
	return in, true
}
