package menu

import "github.com/fatih/color"

func (m *Menu) bandsMenu() {
	for {
		color.Blue("Bands Menu:")
		color.Cyan("0. Return to Main Menu")
		color.Cyan("1. Create a new band")
		color.Cyan("2. View bands")
		color.Cyan("3. Update a band")
		color.Cyan("4. Delete a band")
		color.Cyan("5. View related tour dates")

		choice, ok := m.prompt("> ")
		if !ok {
			return
		}

		switch choice {
		case "0":
			return
		case "1":
			m.createBand()
		case "2":
			m.viewBands()
		case "3":
			m.updateBand()
		case "4":
			m.deleteBand()
		case "5":
			m.viewBandRelatedTours()
		default:
			color.Red("Invalid choice")
		}
	}
}

func (m *Menu) createBand() {
	name, ok := m.prompt("Enter band name: ")
	if !ok {
		return
	}
	genre, ok := m.prompt("Enter genre: ")
	if !ok {
		return
	}

	band, err := m.bands.Create(name, genre)
	if err != nil {
		showError(err)
		return
	}
	color.Green("Band '%s' created successfully.", band.Name)
}

func (m *Menu) viewBands() {
	query, ok := m.prompt("Enter the band name or ID to view (leave blank to view all): ")
	if !ok {
		return
	}

	if query != "" {
		band, err := m.resolveBand(query)
		if err != nil {
			showError(err)
			return
		}
		if band == nil {
			color.Red("Band not found.")
			return
		}
		m.showBand(band)
		return
	}

	bands, err := m.bands.All()
	if err != nil {
		showError(err)
		return
	}
	if len(bands) == 0 {
		color.Red("No bands found.")
		return
	}
	for _, band := range bands {
		m.showBand(band)
	}
}

func (m *Menu) updateBand() {
	query, ok := m.prompt("Enter the band name or ID to update: ")
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

	newName, ok := m.prompt("Enter new name for band '" + band.Name + "' (leave blank to keep current): ")
	if !ok {
		return
	}
	newGenre, ok := m.prompt("Enter new genre for band '" + band.Name + "' (leave blank to keep current): ")
	if !ok {
		return
	}

	updated, err := m.bands.Update(band.ID, newName, newGenre)
	if err != nil {
		showError(err)
		return
	}
	color.Green("Band '%s' has been updated.", updated.Name)
}

func (m *Menu) deleteBand() {
	query, ok := m.prompt("Enter the band name or ID to delete: ")
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

	deleted, err := m.bands.Delete(band.ID)
	if err != nil {
		showError(err)
		return
	}
	color.Green("Band '%s' has been deleted.", deleted.Name)
}

func (m *Menu) viewBandRelatedTours() {
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

	tours, err := m.tours.ByBand(band.ID)
	if err != nil {
		showError(err)
		return
	}
	if len(tours) == 0 {
		color.Red("No tours found for this band.")
		return
	}
	for _, tour := range tours {
		color.Yellow("ID: %d, Location: %s, Date: %s, Venue: %s", tour.ID, tour.Location, tour.Date, tour.Venue)
	}
}
