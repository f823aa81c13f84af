package showcase

import (
	"sort"
	"time"

	"github.com/iliyamo/venue-booking/internal/model"
)

// VenueSummary is a venue inside an area listing.
type VenueSummary struct {
	ID               uint64 `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// AreaView groups the venues of one (city, state) pair.
type AreaView struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []VenueSummary `json:"venues"`
}

// GroupByArea groups every venue by its exact (city, state).  Groups
// follow the order of areas; a venue whose pair is missing from areas,
// e.g. because the store folded "austin" into "Austin", still gets a group,
// appended after the listed ones ordered by state then city.  Venues keep
// their input order inside a group and areas without venues are dropped.
// shows may contain shows of any venue; only upcoming ones are counted.
func GroupByArea(areas []model.Area, venues []model.Venue, shows []model.Show, now time.Time) []AreaView {
	perVenue := make(map[uint64][]model.Show)
	for _, s := range shows {
		perVenue[s.VenueID] = append(perVenue[s.VenueID], s)
	}

	byArea := make(map[model.Area][]VenueSummary, len(areas))
	var unlisted []model.Area
	listed := make(map[model.Area]bool, len(areas))
	for _, a := range areas {
		listed[a] = true
	}
	for _, v := range venues {
		key := model.Area{City: v.City, State: v.State}
		if _, ok := byArea[key]; !ok && !listed[key] {
			unlisted = append(unlisted, key)
		}
		byArea[key] = append(byArea[key], VenueSummary{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: CountUpcoming(perVenue[v.ID], now),
		})
	}
	sort.SliceStable(unlisted, func(i, j int) bool {
		if unlisted[i].State != unlisted[j].State {
			return unlisted[i].State < unlisted[j].State
		}
		return unlisted[i].City < unlisted[j].City
	})

	out := make([]AreaView, 0, len(byArea))
	seen := make(map[model.Area]bool, len(byArea))
	for _, a := range append(append([]model.Area(nil), areas...), unlisted...) {
		if seen[a] {
			continue
		}
		seen[a] = true
		if vs := byArea[a]; len(vs) > 0 {
			out = append(out, AreaView{City: a.City, State: a.State, Venues: vs})
		}
	}
	return out
}

// NamedItem is the minimal {id, name} record used by search results and
// the artist listing.
type NamedItem struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// SearchResult is the outcome of a name search.
type SearchResult struct {
	Count int         `json:"count"`
	Data  []NamedItem `json:"data"`
}

// VenueSearch shapes matching venues into a SearchResult.
func VenueSearch(venues []model.Venue) SearchResult {
	items := make([]NamedItem, 0, len(venues))
	for _, v := range venues {
		items = append(items, NamedItem{ID: v.ID, Name: v.Name})
	}
	return SearchResult{Count: len(items), Data: items}
}

// ArtistSearch shapes matching artists into a SearchResult.
func ArtistSearch(artists []model.Artist) SearchResult {
	return SearchResult{Count: len(artists), Data: ArtistItems(artists)}
}

// ArtistItems reduces artists to their id and name.
func ArtistItems(artists []model.Artist) []NamedItem {
	items := make([]NamedItem, 0, len(artists))
	for _, a := range artists {
		items = append(items, NamedItem{ID: a.ID, Name: a.Name})
	}
	return items
}

// ShowEntry is one row of the all-shows listing.
type ShowEntry struct {
	VenueID         uint64 `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        uint64 `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// ShowEntries renders joined show listings.
func ShowEntries(listings []model.ShowListing) []ShowEntry {
	out := make([]ShowEntry, 0, len(listings))
	for _, l := range listings {
		out = append(out, ShowEntry{
			VenueID:         l.VenueID,
			VenueName:       l.VenueName,
			ArtistID:        l.ArtistID,
			ArtistName:      l.ArtistName,
			ArtistImageLink: l.ArtistImageLink,
			StartTime:       FormatStart(l.StartTime),
		})
	}
	return out
}
