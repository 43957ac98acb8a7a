package menu

import (
	"errors"
	"strconv"

	"github.com/fatih/color"

	"tourbook/internal/database"
)

func (m *Menu) tourDatesMenu() {
	for {
		color.Blue("Tour Dates Menu:")
		color.Cyan("0. Return to Main Menu")
		color.Cyan("1. Schedule a new tour date")
		color.Cyan("2. View tour dates")
		color.Cyan("3. Update a tour date")
		color.Cyan("4. Delete a tour date")
		color.Cyan("5. View related band")

		choice, ok := m.prompt("> ")
		if !ok {
			return
		}

		switch choice {
		case "0":
			return
		case "1":
			m.scheduleTourDate()
		case "2":
			m.viewTourDates()
		case "3":
			m.updateTourDate()
		case "4":
			m.deleteTourDate()
		case "5":
			m.viewTourRelatedBand()
		default:
			color.Red("Invalid choice")
		}
	}
}

func (m *Menu) scheduleTourDate() {
	query, ok := m.prompt("Enter the band name or ID: ")
	if !ok {
		return
	}
	band, err := m.resolveBand(query)
	if err != nil {
		showError(err)
		return
	}
	if band == nil {
		color.Red("Error: Band not found.")
		return
	}

	location, ok := m.prompt("Enter location: ")
	if !ok {
		return
	}

	date, err := m.picker.Pick()
	if err != nil {
		if errors.Is(err, ErrPickCancelled) {
			color.Red("Date selection cancelled.")
			return
		}
		showError(err)
		return
	}

	venue, ok := m.prompt("Enter venue: ")
	if !ok {
		return
	}

	tour, err := m.tours.Create(band.ID, location, date, venue)
	if err != nil {
		showError(err)
		return
	}
	color.Green("Tour date created for band '%s' at '%s' on %s.", band.Name, tour.Venue, tour.Date)
}

func (m *Menu) viewTourDates() {
	color.Blue("How would you like to filter the tour dates?")
	color.Cyan("1. By Band")
	color.Cyan("2. By Location")
	color.Cyan("3. By Venue")
	color.Cyan("4. View All Tour Dates")

	choice, ok := m.prompt("> ")
	if !ok {
		return
	}

	switch choice {
	case "1":
		query, ok := m.prompt("Enter the band name or ID: ")
		if !ok {
			return
		}
		band, err := m.resolveBand(query)
		if err != nil {
			showError(err)
			return
		}
		if band == nil {
			color.Red("Band not found.")
			return
		}
		tours, err := m.tours.ByBand(band.ID)
		if err != nil {
			showError(err)
			return
		}
		m.showTourDates(tours, "No tour dates found for band "+band.Name+".")

	case "2":
		location, ok := m.prompt("Enter the location: ")
		if !ok {
			return
		}
		tours, err := m.tours.ByLocation(location)
		if err != nil {
			showError(err)
			return
		}
		m.showTourDates(tours, "No tour dates found at location '"+location+"'.")

	case "3":
		venue, ok := m.prompt("Enter the venue: ")
		if !ok {
			return
		}
		tours, err := m.tours.ByVenue(venue)
		if err != nil {
			showError(err)
			return
		}
		m.showTourDates(tours, "No tour dates found at venue '"+venue+"'.")

	case "4":
		tours, err := m.tours.AllChronological()
		if err != nil {
			showError(err)
			return
		}
		m.showTourDates(tours, "No tour dates found.")

	default:
		color.Red("Invalid choice. Please select a valid option.")
	}
}

// findTourDate locates a tour either by id or by venue plus picked date.
func (m *Menu) findTourDate() (*database.TourDateRecord, bool) {
	knowsID, ok := m.prompt("Do you know the tour ID? (y/n): ")
	if !ok {
		return nil, false
	}

	if knowsID == "y" {
		input, ok := m.prompt("Enter the Tour ID: ")
		if !ok {
			return nil, false
		}
		id, err := strconv.ParseInt(input, 10, 64)
		if err != nil {
			color.Red("Invalid tour ID.")
			return nil, true
		}
		tour, err := m.tours.ByID(id)
		if err != nil {
			showError(err)
			return nil, true
		}
		if tour == nil {
			color.Red("Tour not found.")
			return nil, true
		}
		return tour, true
	}

	venue, ok := m.prompt("Enter the venue: ")
	if !ok {
		return nil, false
	}
	color.Cyan("Select the tour date:")
	date, err := m.picker.Pick()
	if err != nil {
		if errors.Is(err, ErrPickCancelled) {
			color.Red("Date selection cancelled.")
			return nil, true
		}
		showError(err)
		return nil, true
	}

	tour, err := m.tours.ByVenueAndDate(venue, date)
	if err != nil {
		showError(err)
		return nil, true
	}
	if tour == nil {
		color.Red("Tour not found.")
		return nil, true
	}
	return tour, true
}

func (m *Menu) updateTourDate() {
	tour, ok := m.findTourDate()
	if !ok || tour == nil {
		return
	}

	band, err := m.bands.ByID(tour.BandID)
	if err != nil {
		showError(err)
		return
	}
	if band != nil {
		color.Green("Tour at '%s' on %s for Band '%s' has been found.", tour.Venue, tour.Date, band.Name)
	} else {
		color.Green("Tour at '%s' on %s for Band ID %d has been found.", tour.Venue, tour.Date, tour.BandID)
	}

	newLocation, ok := m.prompt("Enter new location for tour (current: " + tour.Location + ") (leave blank to keep current): ")
	if !ok {
		return
	}

	color.Cyan("Select the new tour date (cancel to keep current):")
	newDate, err := m.picker.Pick()
	if err != nil {
		if !errors.Is(err, ErrPickCancelled) {
			showError(err)
			return
		}
		newDate = ""
	}

	newVenue, ok := m.prompt("Enter new venue for tour (current: " + tour.Venue + ") (leave blank to keep current): ")
	if !ok {
		return
	}

	updated, err := m.tours.Update(tour.ID, newLocation, newDate, newVenue)
	if err != nil {
		showError(err)
		return
	}
	color.Green("Tour at '%s' on %s has been updated.", updated.Venue, updated.Date)
}

func (m *Menu) deleteTourDate() {
	tour, ok := m.findTourDate()
	if !ok || tour == nil {
		return
	}

	deleted, err := m.tours.Delete(tour.ID)
	if err != nil {
		showError(err)
		return
	}
	color.Green("Tour at '%s' on %s has been deleted.", deleted.Venue, deleted.Date)
}

func (m *Menu) viewTourRelatedBand() {
	input, ok := m.prompt("Enter the tour ID: ")
	if !ok {
		return
	}
	id, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		color.Red("Invalid tour ID.")
		return
	}

	tour, err := m.tours.ByID(id)
	if err != nil {
		showError(err)
		return
	}
	if tour == nil {
		color.Red("Error: Tour not found.")
		return
	}

	band, err := m.bands.ByID(tour.BandID)
	if err != nil {
		showError(err)
		return
	}
	if band == nil {
		color.Red("Band not found for this tour.")
		return
	}
	color.Yellow("Band Name: %s, Genre: %s", band.Name, band.Genre)
}
