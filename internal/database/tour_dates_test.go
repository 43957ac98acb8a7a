package database

import "testing"

func seedBand(t *testing.T, db *DB, name string) *BandRecord {
	t.Helper()
	band, err := db.CreateBand(name, "rock")
	if err != nil {
		t.Fatalf("failed to seed band: %v", err)
	}
	return band
}

func TestCreateTourDate_Roundtrip(t *testing.T) {
	db := newTestDB(t)
	band := seedBand(t, db, "the echoes")

	tour, err := db.CreateTourDate(band.ID, "austin", "2099-01-01", "red river hall")
	if err != nil {
		t.Fatalf("CreateTourDate returned error: %v", err)
	}

	saved, err := db.GetTourDate(tour.ID)
	if err != nil {
		t.Fatalf("GetTourDate returned error: %v", err)
	}
	if saved == nil {
		t.Fatal("expected tour date to be saved")
	}
	if saved.BandID != band.ID || saved.Location != "austin" || saved.Date != "2099-01-01" || saved.Venue != "red river hall" {
		t.Fatalf("unexpected record: %+v", saved)
	}
}

func TestGetTourDateByVenueAndDate(t *testing.T) {
	db := newTestDB(t)
	band := seedBand(t, db, "the echoes")

	if _, err := db.CreateTourDate(band.ID, "austin", "2099-01-01", "red river hall"); err != nil {
		t.Fatalf("CreateTourDate returned error: %v", err)
	}

	found, err := db.GetTourDateByVenueAndDate("red river hall", "2099-01-01")
	if err != nil {
		t.Fatalf("GetTourDateByVenueAndDate returned error: %v", err)
	}
	if found == nil {
		t.Fatal("expected booking to be found")
	}

	miss, err := db.GetTourDateByVenueAndDate("red river hall", "2099-01-02")
	if err != nil {
		t.Fatalf("GetTourDateByVenueAndDate returned error: %v", err)
	}
	if miss != nil {
		t.Fatalf("expected no booking on other date, got %+v", miss)
	}
}

func TestFindBookingConflict_ExcludesOwnID(t *testing.T) {
	db := newTestDB(t)
	band := seedBand(t, db, "the echoes")

	tour, err := db.CreateTourDate(band.ID, "austin", "2099-01-01", "red river hall")
	if err != nil {
		t.Fatalf("CreateTourDate returned error: %v", err)
	}

	// On create, nothing is excluded
	conflict, err := db.FindBookingConflict("red river hall", "2099-01-01", 0)
	if err != nil {
		t.Fatalf("FindBookingConflict returned error: %v", err)
	}
	if conflict == nil {
		t.Fatal("expected conflict against existing booking")
	}

	// On update, the record itself does not conflict
	conflict, err = db.FindBookingConflict("red river hall", "2099-01-01", tour.ID)
	if err != nil {
		t.Fatalf("FindBookingConflict returned error: %v", err)
	}
	if conflict != nil {
		t.Fatalf("expected own booking to be excluded, got %+v", conflict)
	}
}

func TestTourDateJoins_AscendingByDate(t *testing.T) {
	db := newTestDB(t)
	echoes := seedBand(t, db, "the echoes")
	vektor := seedBand(t, db, "vektor")

	// Insert out of order
	seed := []struct {
		bandID   int64
		location string
		date     string
		venue    string
	}{
		{echoes.ID, "austin", "2099-03-01", "red river hall"},
		{vektor.ID, "dallas", "2099-01-01", "deep ellum"},
		{echoes.ID, "austin", "2099-02-01", "mohawk"},
	}
	for _, s := range seed {
		if _, err := db.CreateTourDate(s.bandID, s.location, s.date, s.venue); err != nil {
			t.Fatalf("CreateTourDate returned error: %v", err)
		}
	}

	all, err := db.AllTourDatesChronological()
	if err != nil {
		t.Fatalf("AllTourDatesChronological returned error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 tour dates, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].Date < all[i-1].Date {
			t.Fatalf("expected ascending dates, got %s before %s", all[i-1].Date, all[i].Date)
		}
	}
	if all[0].BandName != "vektor" {
		t.Fatalf("expected vektor first, got %s", all[0].BandName)
	}

	forBand, err := db.TourDatesForBand(echoes.ID)
	if err != nil {
		t.Fatalf("TourDatesForBand returned error: %v", err)
	}
	if len(forBand) != 2 {
		t.Fatalf("expected 2 tour dates for band, got %d", len(forBand))
	}
	if forBand[0].Venue != "mohawk" {
		t.Fatalf("expected mohawk first for band, got %s", forBand[0].Venue)
	}

	byLocation, err := db.TourDatesByLocation("austin")
	if err != nil {
		t.Fatalf("TourDatesByLocation returned error: %v", err)
	}
	if len(byLocation) != 2 {
		t.Fatalf("expected 2 tour dates in austin, got %d", len(byLocation))
	}

	byVenue, err := db.TourDatesByVenue("deep ellum")
	if err != nil {
		t.Fatalf("TourDatesByVenue returned error: %v", err)
	}
	if len(byVenue) != 1 || byVenue[0].BandName != "vektor" {
		t.Fatalf("expected vektor at deep ellum, got %+v", byVenue)
	}
}

func TestUpdateTourDate_Overwrites(t *testing.T) {
	db := newTestDB(t)
	band := seedBand(t, db, "the echoes")

	tour, err := db.CreateTourDate(band.ID, "austin", "2099-01-01", "red river hall")
	if err != nil {
		t.Fatalf("CreateTourDate returned error: %v", err)
	}

	if err := db.UpdateTourDate(tour.ID, "dallas", "2099-01-05", "deep ellum"); err != nil {
		t.Fatalf("UpdateTourDate returned error: %v", err)
	}

	saved, err := db.GetTourDate(tour.ID)
	if err != nil {
		t.Fatalf("GetTourDate returned error: %v", err)
	}
	if saved.Location != "dallas" || saved.Date != "2099-01-05" || saved.Venue != "deep ellum" {
		t.Fatalf("unexpected record after update: %+v", saved)
	}
}

func TestDeleteTourDate_RemovesRow(t *testing.T) {
	db := newTestDB(t)
	band := seedBand(t, db, "the echoes")

	tour, err := db.CreateTourDate(band.ID, "austin", "2099-01-01", "red river hall")
	if err != nil {
		t.Fatalf("CreateTourDate returned error: %v", err)
	}

	if err := db.DeleteTourDate(tour.ID); err != nil {
		t.Fatalf("DeleteTourDate returned error: %v", err)
	}

	saved, err := db.GetTourDate(tour.ID)
	if err != nil {
		t.Fatalf("GetTourDate returned error: %v", err)
	}
	if saved != nil {
		t.Fatal("expected tour date to be gone")
	}
}
