package database

import (
	"database/sql"
	"fmt"
)

// BandRecord represents a band stored in the database.
// Name and genre are stored trimmed and lowercased; normalization is the
// caller's job.
type BandRecord struct {
	ID    int64
	Name  string
	Genre string
}

// CreateBand inserts a new band record.
func (db *DB) CreateBand(name, genre string) (*BandRecord, error) {
	result, err := db.exec(`
		INSERT INTO bands (name, genre) VALUES (?, ?)
	`, name, genre)
	if err != nil {
		return nil, fmt.Errorf("failed to create band: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get band id: %w", err)
	}

	return &BandRecord{
		ID:    id,
		Name:  name,
		Genre: genre,
	}, nil
}

// GetBand retrieves a band by ID.
func (db *DB) GetBand(id int64) (*BandRecord, error) {
	band := &BandRecord{}
	err := db.queryRow(`
		SELECT id, name, genre FROM bands WHERE id = ?
	`, id).Scan(&band.ID, &band.Name, &band.Genre)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get band: %w", err)
	}
	return band, nil
}

// GetBandByName retrieves a band by its stored (normalized) name.
func (db *DB) GetBandByName(name string) (*BandRecord, error) {
	band := &BandRecord{}
	err := db.queryRow(`
		SELECT id, name, genre FROM bands WHERE name = ?
	`, name).Scan(&band.ID, &band.Name, &band.Genre)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get band by name: %w", err)
	}
	return band, nil
}

// UpdateBand overwrites a band's name and genre.
func (db *DB) UpdateBand(id int64, name, genre string) error {
	_, err := db.exec(`
		UPDATE bands SET name = ?, genre = ? WHERE id = ?
	`, name, genre, id)
	if err != nil {
		return fmt.Errorf("failed to update band: %w", err)
	}
	return nil
}

// DeleteBand removes a band by ID.
func (db *DB) DeleteBand(id int64) error {
	_, err := db.exec("DELETE FROM bands WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete band: %w", err)
	}
	return nil
}

// AllBands retrieves every band in insertion order.
func (db *DB) AllBands() ([]*BandRecord, error) {
	rows, err := db.query("SELECT id, name, genre FROM bands ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list bands: %w", err)
	}
	defer rows.Close()

	var bands []*BandRecord
	for rows.Next() {
		band := &BandRecord{}
		if err := rows.Scan(&band.ID, &band.Name, &band.Genre); err != nil {
			return nil, fmt.Errorf("failed to scan band: %w", err)
		}
		bands = append(bands, band)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bands: %w", err)
	}
	return bands, nil
}

// CountTourDatesForBand returns how many tour dates reference a band.
func (db *DB) CountTourDatesForBand(bandID int64) (int, error) {
	var count int
	err := db.queryRow("SELECT COUNT(*) FROM tour_dates WHERE band_id = ?", bandID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count tour dates: %w", err)
	}
	return count, nil
}
