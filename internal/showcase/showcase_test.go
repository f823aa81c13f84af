package showcase

import (
	"errors"
	"testing"
	"time"

	"github.com/iliyamo/venue-booking/internal/model"
)

var now = time.Date(2026, 10, 19, 20, 0, 0, 0, time.UTC)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		want  Bucket
	}{
		{"one second later", now.Add(time.Second), Upcoming},
		{"one nanosecond later", now.Add(time.Nanosecond), Upcoming},
		{"exactly now", now, Past},
		{"same instant in another zone", now.In(time.FixedZone("PDT", -7*3600)), Past},
		{"earlier", now.Add(-time.Hour), Past},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.start, now); got != tt.want {
				t.Errorf("Classify = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPartition_IsExactAndKeepsOrder(t *testing.T) {
	shows := []model.Show{
		{ID: 1, StartTime: now.Add(2 * time.Hour)},
		{ID: 2, StartTime: now.Add(-2 * time.Hour)},
		{ID: 3, StartTime: now},
		{ID: 4, StartTime: now.Add(time.Hour)},
		{ID: 5, StartTime: now.Add(-time.Minute)},
	}
	up, past := Partition(shows, now)

	if len(up)+len(past) != len(shows) {
		t.Fatalf("partition lost shows: %d + %d != %d", len(up), len(past), len(shows))
	}
	wantUp := []uint64{1, 4}
	wantPast := []uint64{2, 3, 5}
	for i, id := range wantUp {
		if up[i].ID != id {
			t.Errorf("upcoming[%d] = %d, want %d", i, up[i].ID, id)
		}
	}
	for i, id := range wantPast {
		if past[i].ID != id {
			t.Errorf("past[%d] = %d, want %d", i, past[i].ID, id)
		}
	}
	if n := CountUpcoming(shows, now); n != len(up) {
		t.Errorf("CountUpcoming = %d, want %d", n, len(up))
	}
}

func TestVenueDetail_Example(t *testing.T) {
	venue := model.Venue{ID: 1, Name: "V1"}
	a1 := model.Summary{ID: 11, Name: "A1", ImageLink: "a1.png"}
	a2 := model.Summary{ID: 12, Name: "A2", ImageLink: "a2.png"}
	shows := []model.Show{
		{ID: 100, VenueID: 1, ArtistID: a1.ID, StartTime: now.Add(-time.Hour)},
		{ID: 101, VenueID: 1, ArtistID: a2.ID, StartTime: now.Add(time.Hour)},
	}

	got, err := VenueDetail(venue, shows, map[uint64]model.Summary{a1.ID: a1, a2.ID: a2}, now)
	if err != nil {
		t.Fatalf("VenueDetail: %v", err)
	}
	if got.UpcomingShowsCount != 1 || got.PastShowsCount != 1 {
		t.Fatalf("counts = %d/%d, want 1/1", got.UpcomingShowsCount, got.PastShowsCount)
	}
	wantUp := ArtistShow{ArtistID: 12, ArtistName: "A2", ArtistImageLink: "a2.png", StartTime: "2026-10-19 21:00:00"}
	wantPast := ArtistShow{ArtistID: 11, ArtistName: "A1", ArtistImageLink: "a1.png", StartTime: "2026-10-19 19:00:00"}
	if got.UpcomingShows[0] != wantUp {
		t.Errorf("upcoming = %+v, want %+v", got.UpcomingShows[0], wantUp)
	}
	if got.PastShows[0] != wantPast {
		t.Errorf("past = %+v, want %+v", got.PastShows[0], wantPast)
	}
	if got.Name != "V1" {
		t.Errorf("venue fields not carried over: %+v", got.Venue)
	}
}

func TestVenueDetail_NoShowsYieldsEmptyBuckets(t *testing.T) {
	got, err := VenueDetail(model.Venue{ID: 1}, nil, nil, now)
	if err != nil {
		t.Fatalf("VenueDetail: %v", err)
	}
	if got.UpcomingShows == nil || got.PastShows == nil {
		t.Error("buckets should be empty slices, not nil")
	}
	if got.UpcomingShowsCount != 0 || got.PastShowsCount != 0 {
		t.Errorf("counts = %d/%d", got.UpcomingShowsCount, got.PastShowsCount)
	}
}

// The venue of an artist's show must be looked up with the show's venue
// id.  Here the artist id collides with another venue's id so a lookup by
// artist id would return the wrong venue.
func TestArtistDetail_ResolvesVenueByShowVenueID(t *testing.T) {
	artist := model.Artist{ID: 7, Name: "The Wild Sax Band"}
	venues := map[uint64]model.Summary{
		7: {ID: 7, Name: "Wrong Venue", ImageLink: "wrong.png"},
		3: {ID: 3, Name: "Park Square Live Music & Coffee", ImageLink: "park.png"},
	}
	shows := []model.Show{{ID: 1, VenueID: 3, ArtistID: 7, StartTime: now.Add(24 * time.Hour)}}

	got, err := ArtistDetail(artist, shows, venues, now)
	if err != nil {
		t.Fatalf("ArtistDetail: %v", err)
	}
	if len(got.UpcomingShows) != 1 {
		t.Fatalf("expected one upcoming show, got %+v", got)
	}
	if v := got.UpcomingShows[0]; v.VenueID != 3 || v.VenueName != "Park Square Live Music & Coffee" || v.VenueImageLink != "park.png" {
		t.Errorf("venue resolved incorrectly: %+v", v)
	}
}

func TestArtistDetail_BoundaryIsPast(t *testing.T) {
	shows := []model.Show{{ID: 1, VenueID: 3, ArtistID: 7, StartTime: now}}
	got, err := ArtistDetail(model.Artist{ID: 7}, shows, map[uint64]model.Summary{3: {ID: 3}}, now)
	if err != nil {
		t.Fatalf("ArtistDetail: %v", err)
	}
	if got.PastShowsCount != 1 || got.UpcomingShowsCount != 0 {
		t.Errorf("counts = %d upcoming / %d past, want 0/1", got.UpcomingShowsCount, got.PastShowsCount)
	}
}

func TestDetail_MissingCounterpart(t *testing.T) {
	shows := []model.Show{{ID: 9, VenueID: 3, ArtistID: 4, StartTime: now}}
	if _, err := VenueDetail(model.Venue{ID: 3}, shows, map[uint64]model.Summary{}, now); !errors.Is(err, ErrCounterpartMissing) {
		t.Errorf("VenueDetail err = %v, want ErrCounterpartMissing", err)
	}
	if _, err := ArtistDetail(model.Artist{ID: 4}, shows, map[uint64]model.Summary{}, now); !errors.Is(err, ErrCounterpartMissing) {
		t.Errorf("ArtistDetail err = %v, want ErrCounterpartMissing", err)
	}
}

func TestDetail_CountsSumToShowCount(t *testing.T) {
	artists := map[uint64]model.Summary{1: {ID: 1}}
	var shows []model.Show
	for i := -5; i <= 5; i++ {
		shows = append(shows, model.Show{ID: uint64(i + 10), ArtistID: 1, VenueID: 2, StartTime: now.Add(time.Duration(i) * time.Minute)})
	}
	got, err := VenueDetail(model.Venue{ID: 2}, shows, artists, now)
	if err != nil {
		t.Fatalf("VenueDetail: %v", err)
	}
	if got.UpcomingShowsCount+got.PastShowsCount != len(shows) {
		t.Errorf("%d + %d != %d", got.UpcomingShowsCount, got.PastShowsCount, len(shows))
	}
	if got.UpcomingShowsCount != 5 {
		t.Errorf("upcoming = %d, want 5", got.UpcomingShowsCount)
	}
}

func TestArtistAndVenueIDs(t *testing.T) {
	shows := []model.Show{{VenueID: 1, ArtistID: 2}, {VenueID: 3, ArtistID: 4}}
	if ids := VenueIDs(shows); len(ids) != 2 || ids[0] != 1 || ids[1] != 3 {
		t.Errorf("VenueIDs = %v", ids)
	}
	if ids := ArtistIDs(shows); len(ids) != 2 || ids[0] != 2 || ids[1] != 4 {
		t.Errorf("ArtistIDs = %v", ids)
	}
}
