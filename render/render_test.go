package render

import (
	"strings"
	"testing"

	"vigovia/models"
)

func TestRenderEmptyCollections(t *testing.T) {
	it := models.NewItinerary()
	it.TravelerName = "Rahul"
	it.Destination = "Singapore"

	markup, err := Render(it)
	if err != nil {
		t.Fatalf("render with empty collections: %v", err)
	}

	if !strings.Contains(markup, "Hi, Rahul!") {
		t.Fatal("missing traveler greeting")
	}
	if !strings.Contains(markup, "Singapore Itinerary") {
		t.Fatal("missing destination header")
	}

	// Empty collections render their placeholder sample rows.
	if !strings.Contains(markup, "Air India") {
		t.Fatal("empty flights section should render sample rows")
	}
	if !strings.Contains(markup, "Hotel Grand Central") {
		t.Fatal("empty hotels section should render sample rows")
	}
	if !strings.Contains(markup, "Gardens by the Bay") {
		t.Fatal("empty activities section should render sample rows")
	}
	if !strings.Contains(markup, "Booking Amount") {
		t.Fatal("empty installments section should render sample rows")
	}
}

func TestRenderStoredCollectionsOnly(t *testing.T) {
	it := models.NewItinerary()
	it.Flights = []models.Flight{
		{ID: "f1", Date: "Mon 02 Dec 24", Airline: "Singapore Airlines", FlightNumber: "SQ 403", From: "Delhi (DEL)", To: "Singapore (SIN)"},
	}

	markup, err := Render(it)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if !strings.Contains(markup, "Singapore Airlines") {
		t.Fatal("stored flight missing from markup")
	}
	if strings.Contains(markup, "Air India") {
		t.Fatal("sample flights rendered despite stored data")
	}
}

func TestRenderPerPersonAmount(t *testing.T) {
	it := models.NewItinerary()
	it.TotalAmount = 95000
	it.Adults = 2
	it.Children = 0
	it.Infants = 0
	it.RecalcTravelers()
	it.Currency = "INR"

	markup, err := Render(it)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if !strings.Contains(markup, "INR 95,000") {
		t.Fatal("total amount not grouped with thousands separators")
	}
	if !strings.Contains(markup, "INR 47,500/Pax") {
		t.Fatal("per-person amount should be 47,500")
	}
}

func TestRenderPaddedTravelerCounts(t *testing.T) {
	it := models.NewItinerary()
	it.Adults = 2
	it.Children = 1
	it.Infants = 0
	it.RecalcTravelers()

	markup, err := Render(it)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if !strings.Contains(markup, "Adults: 02") || !strings.Contains(markup, "Children: 01") || !strings.Contains(markup, "Infants: 00") {
		t.Fatal("traveler counts must be zero-padded to two digits")
	}
	if !strings.Contains(markup, "<td>03</td>") {
		t.Fatal("total travelers must be zero-padded to two digits")
	}
}

func TestRenderDayImageStaysRemote(t *testing.T) {
	it := models.NewItinerary()
	it.Days = []models.Day{
		{ID: "d1", DayNumber: 1, Date: "2024-11-19", ImageURL: "https://img.example.com/day1.jpg"},
	}

	markup, err := Render(it)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if !strings.Contains(markup, `src="https://img.example.com/day1.jpg"`) {
		t.Fatal("day image should still be a remote URL at the render stage")
	}
}

func TestRenderDurationLabel(t *testing.T) {
	it := models.NewItinerary()
	it.Duration = "4 Days 3 Nights"

	markup, err := Render(it)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(markup, "4 Days 3 Nights") {
		t.Fatal("stored duration label missing from the header")
	}

	it.Duration = ""
	it.Days = []models.Day{{ID: "d1", DayNumber: 1}, {ID: "d2", DayNumber: 2}}
	markup, err = Render(it)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(markup, "2 Days 1 Nights") {
		t.Fatal("derived day/night counts missing when no duration label is set")
	}
}

func TestRenderIsPure(t *testing.T) {
	it := models.NewItinerary()
	it.TravelerName = "Asha"

	a, err := Render(it)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	b, err := Render(it)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if a != b {
		t.Fatal("identical snapshots must render identical markup")
	}
}

func TestRenderNoScripts(t *testing.T) {
	it := models.NewItinerary()
	it.TravelerName = `<script>alert(1)</script>`

	markup, err := Render(it)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(markup, "<script>alert(1)</script>") {
		t.Fatal("user input must be escaped in the markup")
	}
}
