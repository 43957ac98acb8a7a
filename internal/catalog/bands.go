package catalog

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"tourbook/internal/database"
)

// Bands manages band records: field validation, case-insensitive name
// uniqueness, and lookups. All text reaches storage trimmed and lowercased.
type Bands struct {
	db *database.DB
}

// NewBands creates a band manager on the shared database handle.
func NewBands(db *database.DB) *Bands {
	return &Bands{db: db}
}

// Create validates and persists a new band, returning the record with its
// assigned id.
func (m *Bands) Create(name, genre string) (*database.BandRecord, error) {
	name = fold(name)
	genre = fold(genre)

	if err := checkFields(bandFields{Name: name, Genre: genre}); err != nil {
		return nil, err
	}

	existing, err := m.db.GetBandByName(name)
	if err != nil {
		return nil, storageErr("band lookup", err)
	}
	if existing != nil {
		return nil, &DuplicateNameError{Name: name}
	}

	band, err := m.db.CreateBand(name, genre)
	if err != nil {
		return nil, storageErr("band create", err)
	}

	log.Debug().Int64("id", band.ID).Str("name", band.Name).Msg("Band created")
	return band, nil
}

// Update merges the supplied fields over the current record and persists the
// result. Empty strings keep the current value. The name uniqueness check is
// re-run only when the folded name actually changes, so re-casing a band's own
// name is allowed.
func (m *Bands) Update(id int64, newName, newGenre string) (*database.BandRecord, error) {
	current, err := m.db.GetBand(id)
	if err != nil {
		return nil, storageErr("band lookup", err)
	}
	if current == nil {
		return nil, ErrNotFound
	}

	name := current.Name
	if fold(newName) != "" {
		name = fold(newName)
	}
	genre := current.Genre
	if fold(newGenre) != "" {
		genre = fold(newGenre)
	}

	if err := checkFields(bandFields{Name: name, Genre: genre}); err != nil {
		return nil, err
	}

	if name != current.Name {
		existing, err := m.db.GetBandByName(name)
		if err != nil {
			return nil, storageErr("band lookup", err)
		}
		if existing != nil && existing.ID != id {
			return nil, &DuplicateNameError{Name: name}
		}
	}

	if err := m.db.UpdateBand(id, name, genre); err != nil {
		return nil, storageErr("band update", err)
	}

	return &database.BandRecord{ID: id, Name: name, Genre: genre}, nil
}

// Delete removes a band and returns its prior values. A band that still has
// tour dates cannot be deleted; the caller must remove those first.
func (m *Bands) Delete(id int64) (*database.BandRecord, error) {
	current, err := m.db.GetBand(id)
	if err != nil {
		return nil, storageErr("band lookup", err)
	}
	if current == nil {
		return nil, ErrNotFound
	}

	tours, err := m.db.CountTourDatesForBand(id)
	if err != nil {
		return nil, storageErr("tour date count", err)
	}
	if tours > 0 {
		return nil, &ConflictError{
			Reason: fmt.Sprintf("band %q still has %d tour date(s); delete those first", current.Name, tours),
		}
	}

	if err := m.db.DeleteBand(id); err != nil {
		return nil, storageErr("band delete", err)
	}

	log.Debug().Int64("id", id).Str("name", current.Name).Msg("Band deleted")
	return current, nil
}

// ByID looks up a band by id. A miss returns (nil, nil).
func (m *Bands) ByID(id int64) (*database.BandRecord, error) {
	band, err := m.db.GetBand(id)
	if err != nil {
		return nil, storageErr("band lookup", err)
	}
	return band, nil
}

// ByName looks up a band by name, folding the query the same way stored names
// are folded. A miss returns (nil, nil).
func (m *Bands) ByName(name string) (*database.BandRecord, error) {
	band, err := m.db.GetBandByName(fold(name))
	if err != nil {
		return nil, storageErr("band lookup", err)
	}
	return band, nil
}

// All returns every band in insertion order.
func (m *Bands) All() ([]*database.BandRecord, error) {
	bands, err := m.db.AllBands()
	if err != nil {
		return nil, storageErr("band list", err)
	}
	return bands, nil
}
