package menu

import (
	"bufio"
	"errors"

	"github.com/fatih/color"
)

// ErrPickCancelled is returned when the user backs out of date entry.
var ErrPickCancelled = errors.New("date selection cancelled")

// DatePicker supplies a user-chosen date as text in MM/DD/YY or YYYY-MM-DD
// form. Implementations block until a date is chosen or entry is cancelled.
type DatePicker interface {
	Pick() (string, error)
}

// consolePicker reads a typed date from the terminal. Blank input cancels.
type consolePicker struct {
	in *bufio.Scanner
}

func (p *consolePicker) Pick() (string, error) {
	color.Cyan("Enter date (MM/DD/YY or YYYY-MM-DD, blank to cancel): ")
	if !p.in.Scan() {
		return "", ErrPickCancelled
	}
	text := p.in.Text()
	if text == "" {
		return "", ErrPickCancelled
	}
	return text, nil
}
