package catalog

import (
	"github.com/rs/zerolog/log"

	"tourbook/internal/database"
)

// Tours manages tour date records: field validation, the not-in-the-past date
// rule, venue double-booking detection, and the joined lookups against bands.
type Tours struct {
	db *database.DB
}

// NewTours creates a tour date manager on the shared database handle.
func NewTours(db *database.DB) *Tours {
	return &Tours{db: db}
}

// Create validates and persists a new tour date. The band is assumed resolved
// by the caller. Field checks and date normalization run first; the booking
// conflict scan runs last, once every value is known.
func (m *Tours) Create(bandID int64, location, dateInput, venue string) (*database.TourDateRecord, error) {
	location = fold(location)
	venue = fold(venue)

	if err := checkFields(tourFields{Location: location, Venue: venue}); err != nil {
		return nil, err
	}

	date, err := ParseDate(dateInput)
	if err != nil {
		return nil, err
	}
	if beforePresent(date) {
		return nil, &ValidationError{Field: "date", Reason: "cannot be in the past"}
	}

	if err := m.checkBooking(venue, date, 0); err != nil {
		return nil, err
	}

	tour, err := m.db.CreateTourDate(bandID, location, date, venue)
	if err != nil {
		return nil, storageErr("tour date create", err)
	}

	log.Debug().Int64("id", tour.ID).Int64("band_id", bandID).Str("venue", venue).Str("date", date).Msg("Tour date created")
	return tour, nil
}

// Update merges the supplied fields over the current record and persists the
// result. Empty strings keep the current value. The date rule and the booking
// scan run against the merged values, excluding the record itself.
func (m *Tours) Update(id int64, newLocation, newDateInput, newVenue string) (*database.TourDateRecord, error) {
	current, err := m.db.GetTourDate(id)
	if err != nil {
		return nil, storageErr("tour date lookup", err)
	}
	if current == nil {
		return nil, ErrNotFound
	}

	location := current.Location
	if fold(newLocation) != "" {
		location = fold(newLocation)
	}
	venue := current.Venue
	if fold(newVenue) != "" {
		venue = fold(newVenue)
	}

	if err := checkFields(tourFields{Location: location, Venue: venue}); err != nil {
		return nil, err
	}

	date := current.Date
	if fold(newDateInput) != "" {
		date, err = ParseDate(newDateInput)
		if err != nil {
			return nil, err
		}
		if beforePresent(date) {
			return nil, &ValidationError{Field: "date", Reason: "cannot be in the past"}
		}
	}

	if venue != current.Venue || date != current.Date {
		if err := m.checkBooking(venue, date, id); err != nil {
			return nil, err
		}
	}

	if err := m.db.UpdateTourDate(id, location, date, venue); err != nil {
		return nil, storageErr("tour date update", err)
	}

	return &database.TourDateRecord{ID: id, BandID: current.BandID, Location: location, Date: date, Venue: venue}, nil
}

// Delete removes a tour date and returns its prior values.
func (m *Tours) Delete(id int64) (*database.TourDateRecord, error) {
	current, err := m.db.GetTourDate(id)
	if err != nil {
		return nil, storageErr("tour date lookup", err)
	}
	if current == nil {
		return nil, ErrNotFound
	}

	if err := m.db.DeleteTourDate(id); err != nil {
		return nil, storageErr("tour date delete", err)
	}

	log.Debug().Int64("id", id).Str("venue", current.Venue).Str("date", current.Date).Msg("Tour date deleted")
	return current, nil
}

// ByID looks up a tour date by id. A miss returns (nil, nil).
func (m *Tours) ByID(id int64) (*database.TourDateRecord, error) {
	tour, err := m.db.GetTourDate(id)
	if err != nil {
		return nil, storageErr("tour date lookup", err)
	}
	return tour, nil
}

// ByVenueAndDate looks up the booking at a venue on a given date. The venue is
// folded and the date normalized before the query. A miss returns (nil, nil).
func (m *Tours) ByVenueAndDate(venue, dateInput string) (*database.TourDateRecord, error) {
	date, err := ParseDate(dateInput)
	if err != nil {
		return nil, err
	}
	tour, err := m.db.GetTourDateByVenueAndDate(fold(venue), date)
	if err != nil {
		return nil, storageErr("tour date lookup", err)
	}
	return tour, nil
}

// ByBand returns a band's tour dates with the band name joined in, ascending
// by date.
func (m *Tours) ByBand(bandID int64) ([]*database.TourDateWithBand, error) {
	tours, err := m.db.TourDatesForBand(bandID)
	if err != nil {
		return nil, storageErr("tour date list", err)
	}
	return tours, nil
}

// ByLocation returns tour dates at a location (folded before matching),
// ascending by date.
func (m *Tours) ByLocation(location string) ([]*database.TourDateWithBand, error) {
	tours, err := m.db.TourDatesByLocation(fold(location))
	if err != nil {
		return nil, storageErr("tour date list", err)
	}
	return tours, nil
}

// ByVenue returns tour dates at a venue (folded before matching), ascending
// by date.
func (m *Tours) ByVenue(venue string) ([]*database.TourDateWithBand, error) {
	tours, err := m.db.TourDatesByVenue(fold(venue))
	if err != nil {
		return nil, storageErr("tour date list", err)
	}
	return tours, nil
}

// AllChronological returns every tour date with band names, ascending by date.
func (m *Tours) AllChronological() ([]*database.TourDateWithBand, error) {
	tours, err := m.db.AllTourDatesChronological()
	if err != nil {
		return nil, storageErr("tour date list", err)
	}
	return tours, nil
}

func (m *Tours) checkBooking(venue, date string, excludeID int64) error {
	conflict, err := m.db.FindBookingConflict(venue, date, excludeID)
	if err != nil {
		return storageErr("booking conflict check", err)
	}
	if conflict != nil {
		return &BookingConflictError{Venue: venue, Date: date}
	}
	return nil
}
