package models

import "testing"

func TestRecalcTravelers(t *testing.T) {
	cases := []struct {
		adults, children, infants int
		want                      int
	}{
		{2, 0, 0, 2},
		{2, 1, 1, 4},
		{0, 0, 0, 0},
		{10, 5, 3, 18},
		{-1, 2, 0, 2}, // negatives clamp to zero
	}

	for _, c := range cases {
		it := NewItinerary()
		it.Adults = c.adults
		it.Children = c.children
		it.Infants = c.infants
		it.TotalTravelers = 999 // must be overwritten, never trusted
		it.RecalcTravelers()
		if it.TotalTravelers != c.want {
			t.Fatalf("travelers for %d/%d/%d: got %d, want %d",
				c.adults, c.children, c.infants, it.TotalTravelers, c.want)
		}
	}
}

func TestNewItineraryDefaults(t *testing.T) {
	it := NewItinerary()
	if it.Adults != 2 || it.Children != 0 || it.Infants != 0 {
		t.Fatalf("unexpected default counts: %d/%d/%d", it.Adults, it.Children, it.Infants)
	}
	if it.TotalTravelers != 2 {
		t.Fatalf("default total travelers = %d, want 2", it.TotalTravelers)
	}
	if it.TotalAmount != 95000 || it.Currency != "INR" {
		t.Fatalf("unexpected default amount: %v %s", it.TotalAmount, it.Currency)
	}
	if it.VisaType != "E-Visa" || it.VisaProcessingDays != "5-7 Days" {
		t.Fatalf("unexpected default visa: %s / %s", it.VisaType, it.VisaProcessingDays)
	}
	if len(it.Days) != 0 || len(it.Flights) != 0 || len(it.Hotels) != 0 {
		t.Fatal("collections should start empty")
	}
}

func TestCalcNights(t *testing.T) {
	cases := []struct {
		name     string
		in, out  string
		want     int
	}{
		{"one night", "2024-11-19", "2024-11-20", 1},
		{"five nights", "2024-11-19", "2024-11-24", 5},
		{"same day", "2024-11-19", "2024-11-19", 0},
		{"checkout before checkin", "2024-11-20", "2024-11-19", 0},
		{"missing checkin", "", "2024-11-20", 0},
		{"missing checkout", "2024-11-19", "", 0},
		{"garbage date", "not-a-date", "2024-11-20", 0},
	}

	for _, c := range cases {
		if got := CalcNights(c.in, c.out); got != c.want {
			t.Fatalf("%s: CalcNights(%q, %q) = %d, want %d", c.name, c.in, c.out, got, c.want)
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	it := NewItinerary()
	it.Days = append(it.Days, Day{ID: "d1", DayNumber: 1, Date: "2024-11-19"})
	it.Hotels = append(it.Hotels, Hotel{ID: "h1", City: "Singapore"})

	snap := it.Clone()
	snap.Days[0].Date = "changed"
	snap.Hotels[0].City = "changed"
	snap.TravelerName = "changed"

	if it.Days[0].Date != "2024-11-19" || it.Hotels[0].City != "Singapore" || it.TravelerName == "changed" {
		t.Fatal("mutating the snapshot leaked into the original")
	}
}
