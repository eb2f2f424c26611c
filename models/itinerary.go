package models

import (
	"math"
	"time"
)

// Itinerary is the root aggregate for one trip plan. Exactly one instance
// lives per browsing session; every field stays mutable until the snapshot
// is frozen for export.
type Itinerary struct {
	// Basic info
	TravelerName  string `json:"travelerName"`
	Destination   string `json:"destination"`
	Duration      string `json:"duration"`
	DepartureFrom string `json:"departureFrom"`
	DepartureTo   string `json:"departureTo"`
	Adults        int    `json:"adults"`
	Children      int    `json:"children"`
	Infants       int    `json:"infants"`
	// Derived: always adults+children+infants, never writable directly.
	TotalTravelers int `json:"totalTravelers"`

	Days    []Day    `json:"days"`
	Flights []Flight `json:"flights"`
	Hotels  []Hotel  `json:"hotels"`

	// Payment plan
	TotalAmount  float64       `json:"totalAmount"`
	Currency     string        `json:"currency"`
	TDS          string        `json:"tds"`
	Installments []Installment `json:"installments"`

	// Visa details
	VisaType           string `json:"visaType"`
	VisaProcessingDays string `json:"visaProcessingDays"`

	ImportantNotes []Note      `json:"importantNotes"`
	ScopeOfService []Service   `json:"scopeOfService"`
	Inclusions     []Inclusion `json:"inclusions"`
	Activities     []Activity  `json:"activities"`
}

// Day holds one calendar day of the trip with exactly three activity slots.
type Day struct {
	ID        string   `json:"id"`
	DayNumber int      `json:"dayNumber"`
	Date      string   `json:"date"`
	ImageURL  string   `json:"imageUrl,omitempty"`
	Morning   Activity `json:"morning"`
	Afternoon Activity `json:"afternoon"`
	Evening   Activity `json:"evening"`
}

type Activity struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	City         string `json:"city,omitempty"`
	Type         string `json:"type,omitempty"`
	TimeRequired string `json:"timeRequired,omitempty"`
}

type Flight struct {
	ID            string `json:"id"`
	Date          string `json:"date"`
	Airline       string `json:"airline"`
	FlightNumber  string `json:"flightNumber"`
	From          string `json:"from"`
	To            string `json:"to"`
	DepartureTime string `json:"departureTime"`
	ArrivalTime   string `json:"arrivalTime"`
}

type Hotel struct {
	ID       string `json:"id"`
	City     string `json:"city"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	// Derived from CheckIn/CheckOut, never writable directly.
	Nights    int    `json:"nights"`
	HotelName string `json:"hotelName"`
}

const (
	InstallmentPaid    = "Paid"
	InstallmentPending = "Pending"
)

type Installment struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Amount  float64 `json:"amount"`
	DueDate string  `json:"dueDate"`
	Status  string  `json:"status"` // Paid/Pending
}

type Note struct {
	ID      string `json:"id"`
	Point   string `json:"point"`
	Details string `json:"details"`
}

type Service struct {
	ID      string `json:"id"`
	Service string `json:"service"`
	Details string `json:"details"`
}

type Inclusion struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Count    string `json:"count"`
	Details  string `json:"details"`
	Status   string `json:"status"`
}

// NewItinerary returns the aggregate with its session-start defaults.
func NewItinerary() Itinerary {
	it := Itinerary{
		Adults:             2,
		Children:           0,
		Infants:            0,
		TotalAmount:        95000,
		Currency:           "INR",
		TDS:                "Not Applicable",
		VisaType:           "E-Visa",
		VisaProcessingDays: "5-7 Days",
		Days:               []Day{},
		Flights:            []Flight{},
		Hotels:             []Hotel{},
		Installments:       []Installment{},
		ImportantNotes:     []Note{},
		ScopeOfService:     []Service{},
		Inclusions:         []Inclusion{},
		Activities:         []Activity{},
	}
	it.RecalcTravelers()
	return it
}

// RecalcTravelers refreshes the derived traveler total. Called after every
// write to the three count fields; TotalTravelers is never set from input.
func (it *Itinerary) RecalcTravelers() {
	if it.Adults < 0 {
		it.Adults = 0
	}
	if it.Children < 0 {
		it.Children = 0
	}
	if it.Infants < 0 {
		it.Infants = 0
	}
	it.TotalTravelers = it.Adults + it.Children + it.Infants
}

const dateLayout = "2006-01-02"

// CalcNights derives a hotel's nights count from its stay dates. Zero when
// either date is missing or unparseable, or check-out is not strictly after
// check-in.
func CalcNights(checkIn, checkOut string) int {
	if checkIn == "" || checkOut == "" {
		return 0
	}
	in, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return 0
	}
	out, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return 0
	}
	if !out.After(in) {
		return 0
	}
	return int(math.Ceil(out.Sub(in).Hours() / 24))
}
