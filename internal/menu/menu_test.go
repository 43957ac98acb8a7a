package menu

import (
	"path/filepath"
	"strings"
	"testing"

	"tourbook/internal/catalog"
	"tourbook/internal/database"
)

func newTestMenu(t *testing.T, input string) (*Menu, *catalog.Bands, *catalog.Tours) {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.Migrate(); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	bands := catalog.NewBands(db)
	tours := catalog.NewTours(db)
	return New(bands, tours, strings.NewReader(input)), bands, tours
}

func TestRun_CreateBandSession(t *testing.T) {
	// Main menu -> bands menu -> create -> back -> exit
	input := "1\n1\nThe Echoes\nRock\n0\n0\n"
	m, bands, _ := newTestMenu(t, input)

	m.Run()

	band, err := bands.ByName("the echoes")
	if err != nil {
		t.Fatalf("ByName returned error: %v", err)
	}
	if band == nil {
		t.Fatal("expected band created through the menu")
	}
	if band.Genre != "rock" {
		t.Fatalf("expected genre rock, got %s", band.Genre)
	}
}

func TestRun_ScheduleTourSession(t *testing.T) {
	// Bands menu: create band; tours menu: schedule with typed date; exit
	input := "1\n1\nVektor\nMetal\n0\n2\n1\nvektor\nAustin\n2099-01-01\nRed River Hall\n0\n0\n"
	m, _, tours := newTestMenu(t, input)

	m.Run()

	tour, err := tours.ByVenueAndDate("red river hall", "2099-01-01")
	if err != nil {
		t.Fatalf("ByVenueAndDate returned error: %v", err)
	}
	if tour == nil {
		t.Fatal("expected tour scheduled through the menu")
	}
	if tour.Location != "austin" {
		t.Fatalf("expected location austin, got %s", tour.Location)
	}
}

func TestRun_ExitsOnEOF(t *testing.T) {
	m, _, _ := newTestMenu(t, "")
	// Must return rather than loop when input ends
	m.Run()
}

func TestResolveBand_NameOrID(t *testing.T) {
	m, bands, _ := newTestMenu(t, "")

	created, err := bands.Create("vektor", "metal")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	byName, err := m.resolveBand("Vektor")
	if err != nil {
		t.Fatalf("resolveBand by name returned error: %v", err)
	}
	if byName == nil || byName.ID != created.ID {
		t.Fatalf("expected lookup by name to find band, got %+v", byName)
	}

	byID, err := m.resolveBand("1")
	if err != nil {
		t.Fatalf("resolveBand by id returned error: %v", err)
	}
	if byID == nil || byID.ID != created.ID {
		t.Fatalf("expected lookup by id to find band, got %+v", byID)
	}
}
