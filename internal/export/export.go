// Package export writes the record store out as CSV files for use outside the
// program (spreadsheets, backups).
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jszwec/csvutil"
	"github.com/rs/zerolog/log"

	"tourbook/internal/catalog"
)

type bandRow struct {
	ID    int64  `csv:"id"`
	Name  string `csv:"name"`
	Genre string `csv:"genre"`
}

type tourDateRow struct {
	ID       int64  `csv:"id"`
	BandID   int64  `csv:"band_id"`
	BandName string `csv:"band_name"`
	Location string `csv:"location"`
	Date     string `csv:"date"`
	Venue    string `csv:"venue"`
}

// Run writes bands.csv and tour_dates.csv into dir. Tour dates are exported in
// chronological order with band names resolved.
func Run(bands *catalog.Bands, tours *catalog.Tours, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	allBands, err := bands.All()
	if err != nil {
		return err
	}
	bandRows := make([]bandRow, 0, len(allBands))
	for _, b := range allBands {
		bandRows = append(bandRows, bandRow{ID: b.ID, Name: b.Name, Genre: b.Genre})
	}
	if err := writeCSV(filepath.Join(dir, "bands.csv"), bandRows); err != nil {
		return err
	}

	allTours, err := tours.AllChronological()
	if err != nil {
		return err
	}
	tourRows := make([]tourDateRow, 0, len(allTours))
	for _, t := range allTours {
		tourRows = append(tourRows, tourDateRow{
			ID:       t.ID,
			BandID:   t.BandID,
			BandName: t.BandName,
			Location: t.Location,
			Date:     t.Date,
			Venue:    t.Venue,
		})
	}
	if err := writeCSV(filepath.Join(dir, "tour_dates.csv"), tourRows); err != nil {
		return err
	}

	log.Info().Str("dir", dir).Int("bands", len(bandRows)).Int("tour_dates", len(tourRows)).Msg("Export complete")
	return nil
}

func writeCSV(path string, rows any) error {
	data, err := csvutil.Marshal(rows)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}
