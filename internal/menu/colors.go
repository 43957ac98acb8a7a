package menu

import (
	"math/rand"

	"github.com/fatih/color"
)

var palette = []*color.Color{
	color.New(color.FgRed),
	color.New(color.FgGreen),
	color.New(color.FgBlue),
	color.New(color.FgMagenta),
	color.New(color.FgCyan),
	color.New(color.FgYellow),
	color.New(color.FgWhite),
}

// colorRegistry hands out a display color per category (genre or location).
// Each category keeps its color once assigned; new categories draw a random
// unused color, and when the palette is exhausted the used set resets.
type colorRegistry struct {
	assigned map[string]*color.Color
	used     map[*color.Color]bool
}

func newColorRegistry() *colorRegistry {
	return &colorRegistry{
		assigned: make(map[string]*color.Color),
		used:     make(map[*color.Color]bool),
	}
}

func (r *colorRegistry) colorFor(category string) *color.Color {
	if c, ok := r.assigned[category]; ok {
		return c
	}

	var available []*color.Color
	for _, c := range palette {
		if !r.used[c] {
			available = append(available, c)
		}
	}
	if len(available) == 0 {
		r.used = make(map[*color.Color]bool)
		available = append(available, palette...)
	}

	c := available[rand.Intn(len(available))]
	r.assigned[category] = c
	r.used[c] = true
	return c
}
