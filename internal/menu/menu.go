// Package menu implements the interactive console front end: the menu loops,
// input prompting, and colored display. All record logic stays in catalog.
package menu

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"tourbook/internal/catalog"
	"tourbook/internal/database"
)

// Menu drives the interactive session over the two record managers.
type Menu struct {
	bands  *catalog.Bands
	tours  *catalog.Tours
	in     *bufio.Scanner
	picker DatePicker

	genreColors    *colorRegistry
	locationColors *colorRegistry
}

// New creates a menu reading user input from in.
func New(bands *catalog.Bands, tours *catalog.Tours, in io.Reader) *Menu {
	scanner := bufio.NewScanner(in)
	return &Menu{
		bands:          bands,
		tours:          tours,
		in:             scanner,
		picker:         &consolePicker{in: scanner},
		genreColors:    newColorRegistry(),
		locationColors: newColorRegistry(),
	}
}

// SetDatePicker swaps the date entry mechanism (e.g. a graphical calendar).
func (m *Menu) SetDatePicker(p DatePicker) {
	m.picker = p
}

// Run loops on the main menu until the user exits or input ends.
func (m *Menu) Run() {
	for {
		color.Blue("Main Menu:")
		color.Cyan("0. Exit Program")
		color.Cyan("1. Bands Menu")
		color.Cyan("2. Tour Dates Menu")

		choice, ok := m.prompt("> ")
		if !ok {
			return
		}

		switch choice {
		case "0":
			color.Green("Goodbye!")
			return
		case "1":
			m.bandsMenu()
		case "2":
			m.tourDatesMenu()
		default:
			color.Red("Invalid choice")
		}
	}
}

// prompt prints a yellow label and reads one line. ok is false once input ends.
func (m *Menu) prompt(label string) (string, bool) {
	color.Yellow(label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// resolveBand accepts either a numeric id or a band name.
func (m *Menu) resolveBand(input string) (*database.BandRecord, error) {
	if id, err := strconv.ParseInt(input, 10, 64); err == nil {
		return m.bands.ByID(id)
	}
	return m.bands.ByName(input)
}

// showError renders a typed catalog error for the user.
func showError(err error) {
	var (
		validationErr *catalog.ValidationError
		duplicateErr  *catalog.DuplicateNameError
		bookingErr    *catalog.BookingConflictError
		conflictErr   *catalog.ConflictError
	)

	switch {
	case errors.Is(err, catalog.ErrNotFound):
		color.Red("Error: record not found.")
	case errors.As(err, &validationErr):
		color.Red("Error: %s %s.", validationErr.Field, validationErr.Reason)
	case errors.As(err, &duplicateErr):
		color.Red("Error: a band named '%s' already exists.", duplicateErr.Name)
	case errors.As(err, &bookingErr):
		color.Red("Error: venue '%s' is already booked on %s.", bookingErr.Venue, bookingErr.Date)
	case errors.As(err, &conflictErr):
		color.Red("Error: %s.", conflictErr.Reason)
	default:
		color.Red("Error: %v", err)
	}
}

func (m *Menu) showBand(band *database.BandRecord) {
	c := m.genreColors.colorFor(band.Genre)
	c.Printf("ID: %d, Name: %s, Genre: %s\n", band.ID, band.Name, band.Genre)
}

func (m *Menu) showTourDates(tours []*database.TourDateWithBand, notFoundMessage string) {
	if len(tours) == 0 {
		color.Red(notFoundMessage)
		return
	}
	for _, tour := range tours {
		c := m.locationColors.colorFor(tour.Location)
		c.Printf("ID: %d, Band: %s (Band ID: %d), Location: %s, Date: %s, Venue: %s\n",
			tour.ID, tour.BandName, tour.BandID, tour.Location, tour.Date, tour.Venue)
	}
}
