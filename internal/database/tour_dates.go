package database

import (
	"database/sql"
	"fmt"
)

// TourDateRecord represents a scheduled performance stored in the database.
// Location and venue are stored trimmed and lowercased; the date is an
// ISO YYYY-MM-DD string.
type TourDateRecord struct {
	ID       int64
	BandID   int64
	Location string
	Date     string
	Venue    string
}

// TourDateWithBand is a tour date joined with its band's id and name.
type TourDateWithBand struct {
	ID       int64
	BandID   int64
	BandName string
	Location string
	Date     string
	Venue    string
}

const tourDateJoin = `
	SELECT tour_dates.id, bands.id, bands.name, tour_dates.location, tour_dates.date, tour_dates.venue
	FROM tour_dates
	JOIN bands ON tour_dates.band_id = bands.id
`

// CreateTourDate inserts a new tour date record.
func (db *DB) CreateTourDate(bandID int64, location, date, venue string) (*TourDateRecord, error) {
	result, err := db.exec(`
		INSERT INTO tour_dates (band_id, location, date, venue) VALUES (?, ?, ?, ?)
	`, bandID, location, date, venue)
	if err != nil {
		return nil, fmt.Errorf("failed to create tour date: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get tour date id: %w", err)
	}

	return &TourDateRecord{
		ID:       id,
		BandID:   bandID,
		Location: location,
		Date:     date,
		Venue:    venue,
	}, nil
}

// GetTourDate retrieves a tour date by ID.
func (db *DB) GetTourDate(id int64) (*TourDateRecord, error) {
	tour := &TourDateRecord{}
	err := db.queryRow(`
		SELECT id, band_id, location, date, venue FROM tour_dates WHERE id = ?
	`, id).Scan(&tour.ID, &tour.BandID, &tour.Location, &tour.Date, &tour.Venue)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tour date: %w", err)
	}
	return tour, nil
}

// GetTourDateByVenueAndDate retrieves the tour date booked at a venue on a day.
func (db *DB) GetTourDateByVenueAndDate(venue, date string) (*TourDateRecord, error) {
	tour := &TourDateRecord{}
	err := db.queryRow(`
		SELECT id, band_id, location, date, venue FROM tour_dates WHERE venue = ? AND date = ?
	`, venue, date).Scan(&tour.ID, &tour.BandID, &tour.Location, &tour.Date, &tour.Venue)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tour date by venue and date: %w", err)
	}
	return tour, nil
}

// FindBookingConflict returns any tour date other than excludeID occupying the
// same venue on the same day. Pass excludeID 0 when creating.
func (db *DB) FindBookingConflict(venue, date string, excludeID int64) (*TourDateRecord, error) {
	tour := &TourDateRecord{}
	err := db.queryRow(`
		SELECT id, band_id, location, date, venue FROM tour_dates
		WHERE venue = ? AND date = ? AND id != ?
	`, venue, date, excludeID).Scan(&tour.ID, &tour.BandID, &tour.Location, &tour.Date, &tour.Venue)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to check booking conflict: %w", err)
	}
	return tour, nil
}

// UpdateTourDate overwrites a tour date's location, date and venue.
func (db *DB) UpdateTourDate(id int64, location, date, venue string) error {
	_, err := db.exec(`
		UPDATE tour_dates SET location = ?, date = ?, venue = ? WHERE id = ?
	`, location, date, venue, id)
	if err != nil {
		return fmt.Errorf("failed to update tour date: %w", err)
	}
	return nil
}

// DeleteTourDate removes a tour date by ID.
func (db *DB) DeleteTourDate(id int64) error {
	_, err := db.exec("DELETE FROM tour_dates WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete tour date: %w", err)
	}
	return nil
}

// TourDatesForBand retrieves a band's tour dates joined with the band name,
// ascending by date.
func (db *DB) TourDatesForBand(bandID int64) ([]*TourDateWithBand, error) {
	return db.queryTourDates(tourDateJoin+"WHERE tour_dates.band_id = ? ORDER BY tour_dates.date", bandID)
}

// TourDatesByLocation retrieves tour dates at a (normalized) location,
// ascending by date.
func (db *DB) TourDatesByLocation(location string) ([]*TourDateWithBand, error) {
	return db.queryTourDates(tourDateJoin+"WHERE tour_dates.location = ? ORDER BY tour_dates.date", location)
}

// TourDatesByVenue retrieves tour dates at a (normalized) venue, ascending by date.
func (db *DB) TourDatesByVenue(venue string) ([]*TourDateWithBand, error) {
	return db.queryTourDates(tourDateJoin+"WHERE tour_dates.venue = ? ORDER BY tour_dates.date", venue)
}

// AllTourDatesChronological retrieves every tour date joined with its band,
// ascending by date.
func (db *DB) AllTourDatesChronological() ([]*TourDateWithBand, error) {
	return db.queryTourDates(tourDateJoin + "ORDER BY tour_dates.date")
}

func (db *DB) queryTourDates(query string, args ...any) ([]*TourDateWithBand, error) {
	rows, err := db.query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tour dates: %w", err)
	}
	defer rows.Close()

	var tours []*TourDateWithBand
	for rows.Next() {
		tour := &TourDateWithBand{}
		if err := rows.Scan(&tour.ID, &tour.BandID, &tour.BandName, &tour.Location, &tour.Date, &tour.Venue); err != nil {
			return nil, fmt.Errorf("failed to scan tour date: %w", err)
		}
		tours = append(tours, tour)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tour dates: %w", err)
	}
	return tours, nil
}
