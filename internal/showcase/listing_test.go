package showcase

import (
	"testing"
	"time"

	"github.com/iliyamo/venue-booking/internal/model"
)

func TestGroupByArea(t *testing.T) {
	areas := []model.Area{{City: "Austin", State: "TX"}, {City: "Denver", State: "CO"}}
	venues := []model.Venue{
		{ID: 1, Name: "Mohawk", City: "Austin", State: "TX"},
		{ID: 2, Name: "Red Rocks", City: "Denver", State: "CO"},
		{ID: 3, Name: "Stubbs", City: "Austin", State: "TX"},
	}
	shows := []model.Show{
		{VenueID: 1, StartTime: now.Add(time.Hour)},
		{VenueID: 1, StartTime: now.Add(2 * time.Hour)},
		{VenueID: 1, StartTime: now.Add(-time.Hour)},
		{VenueID: 3, StartTime: now},
		{VenueID: 2, StartTime: now.Add(time.Minute)},
	}

	got := GroupByArea(areas, venues, shows, now)
	if len(got) != 2 {
		t.Fatalf("expected 2 groups, got %d: %+v", len(got), got)
	}

	austin := got[0]
	if austin.City != "Austin" || austin.State != "TX" || len(austin.Venues) != 2 {
		t.Fatalf("unexpected Austin group: %+v", austin)
	}
	if austin.Venues[0] != (VenueSummary{ID: 1, Name: "Mohawk", NumUpcomingShows: 2}) {
		t.Errorf("Mohawk = %+v", austin.Venues[0])
	}
	if austin.Venues[1] != (VenueSummary{ID: 3, Name: "Stubbs", NumUpcomingShows: 0}) {
		t.Errorf("Stubbs = %+v", austin.Venues[1])
	}

	denver := got[1]
	if denver.City != "Denver" || len(denver.Venues) != 1 || denver.Venues[0].NumUpcomingShows != 1 {
		t.Errorf("unexpected Denver group: %+v", denver)
	}
}

func TestGroupByArea_DropsEmptyAndDuplicateAreas(t *testing.T) {
	areas := []model.Area{{City: "Austin", State: "TX"}, {City: "Austin", State: "TX"}, {City: "Nowhere", State: "ZZ"}}
	venues := []model.Venue{{ID: 1, City: "Austin", State: "TX"}}

	got := GroupByArea(areas, venues, nil, now)
	if len(got) != 1 || len(got[0].Venues) != 1 {
		t.Fatalf("unexpected groups: %+v", got)
	}
}

func TestGroupByArea_CityAndStateBothMatter(t *testing.T) {
	areas := []model.Area{{City: "Portland", State: "OR"}, {City: "Portland", State: "ME"}}
	venues := []model.Venue{
		{ID: 1, City: "Portland", State: "ME"},
		{ID: 2, City: "Portland", State: "OR"},
	}
	got := GroupByArea(areas, venues, nil, now)
	if len(got) != 2 || got[0].State != "OR" || got[0].Venues[0].ID != 2 || got[1].Venues[0].ID != 1 {
		t.Fatalf("unexpected groups: %+v", got)
	}
}

func TestSearchShaping(t *testing.T) {
	res := ArtistSearch([]model.Artist{{ID: 4, Name: "John Smith"}})
	if res.Count != 1 || res.Data[0] != (NamedItem{ID: 4, Name: "John Smith"}) {
		t.Errorf("ArtistSearch = %+v", res)
	}
	empty := VenueSearch(nil)
	if empty.Count != 0 || empty.Data == nil {
		t.Errorf("VenueSearch(nil) = %+v", empty)
	}
}

func TestShowEntries(t *testing.T) {
	start := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)
	got := ShowEntries([]model.ShowListing{{ShowID: 1, VenueID: 2, VenueName: "V", ArtistID: 3, ArtistName: "A", ArtistImageLink: "i", StartTime: start}})
	want := ShowEntry{VenueID: 2, VenueName: "V", ArtistID: 3, ArtistName: "A", ArtistImageLink: "i", StartTime: "2035-04-01 20:00:00"}
	if len(got) != 1 || got[0] != want {
		t.Errorf("ShowEntries = %+v, want %+v", got, want)
	}
}

func TestGroupByArea_KeepsVenuesOfCaseVariantAreas(t *testing.T) {
	// the store returned one distinct row for "Austin" and "austin"
	areas := []model.Area{{City: "Austin", State: "TX"}}
	venues := []model.Venue{
		{ID: 1, Name: "Mohawk", City: "Austin", State: "TX"},
		{ID: 2, Name: "Stubbs", City: "austin", State: "TX"},
		{ID: 3, Name: "Red Rocks", City: "Denver", State: "CO"},
	}
	shows := []model.Show{{VenueID: 2, StartTime: now.Add(time.Hour)}}

	got := GroupByArea(areas, venues, shows, now)
	total := 0
	for _, g := range got {
		total += len(g.Venues)
	}
	if total != len(venues) {
		t.Fatalf("listing holds %d of %d venues: %+v", total, len(venues), got)
	}
	if len(got) != 3 || got[0].City != "Austin" {
		t.Fatalf("unexpected groups: %+v", got)
	}
	// unlisted pairs follow in (state, city) order
	if got[1].City != "Denver" || got[2].City != "austin" || got[2].Venues[0].NumUpcomingShows != 1 {
		t.Errorf("unexpected unlisted groups: %+v", got[1:])
	}
}
