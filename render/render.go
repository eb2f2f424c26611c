package render

import (
	"fmt"
	"html/template"
	"strings"

	"vigovia/models"
	"vigovia/utils"
)

// Render maps a frozen itinerary snapshot to the self-contained styled
// markup the export pipeline rasterizes. It is a pure function: no I/O, no
// DOM, just a string. Day images are still remote URLs at this stage; the
// inliner resolves them afterwards.
func Render(it models.Itinerary) (string, error) {
	var b strings.Builder
	if err := pageTpl.Execute(&b, newView(it)); err != nil {
		return "", fmt.Errorf("render itinerary markup: %w", err)
	}
	return b.String(), nil
}

// view is the precomputed template context. All derived presentation
// values (padded counts, grouped amounts, placeholder-filled sections) are
// resolved here so the template itself stays dumb.
type view struct {
	TravelerName  string
	Destination   string
	Duration      string
	DepartureFrom string
	DepartureTo   string

	TotalDays   int
	TotalNights int

	AdultsPadded   string
	ChildrenPadded string
	InfantsPadded  string
	TotalPadded    string

	Days         []models.Day
	Flights      []models.Flight
	Hotels       []models.Hotel
	Notes        []models.Note
	Services     []models.Service
	Inclusions   []models.Inclusion
	Activities   []models.Activity
	Installments []models.Installment

	Currency        string
	TotalFormatted  string
	PerPaxFormatted string
	TravelerCount   int
	TDS             string

	VisaType           string
	VisaProcessingDays string

	Footer FooterInfo
}

// FooterInfo is the company block rendered in the flow footer of the
// document (the last-page stamp in the PDF composer repeats the same data).
type FooterInfo struct {
	Logo       string
	Website    string
	Office     string
	Phone      string
	Email      string
	CIN        string
	BookingURL string
}

// CompanyFooter is the fixed company identity block.
var CompanyFooter = FooterInfo{
	Logo:       "vigovia",
	Website:    "vigovia.com",
	Office:     "Registered Office: 123, Green Park, New Delhi, India",
	Phone:      "Phone: +91-9876543210",
	Email:      "Email: info@vigovia.com",
	CIN:        "CIN: U74999DL2017PTC311111",
	BookingURL: "https://vigovia.com/book",
}

func newView(it models.Itinerary) view {
	v := view{
		TravelerName:  fallback(it.TravelerName, "Traveler"),
		Destination:   fallback(it.Destination, "Your Destination"),
		Duration:      it.Duration,
		DepartureFrom: it.DepartureFrom,
		DepartureTo:   it.DepartureTo,

		TotalDays: len(it.Days),

		AdultsPadded:   utils.PadCount(it.Adults),
		ChildrenPadded: utils.PadCount(it.Children),
		InfantsPadded:  utils.PadCount(it.Infants),
		TotalPadded:    utils.PadCount(it.TotalTravelers),

		Days:         it.Days,
		Flights:      it.Flights,
		Hotels:       it.Hotels,
		Notes:        it.ImportantNotes,
		Services:     it.ScopeOfService,
		Inclusions:   it.Inclusions,
		Activities:   it.Activities,
		Installments: it.Installments,

		Currency:        fallback(it.Currency, "INR"),
		TotalFormatted:  utils.FormatAmount(it.TotalAmount),
		PerPaxFormatted: utils.FormatAmount(utils.PerPerson(it.TotalAmount, it.TotalTravelers)),
		TravelerCount:   it.TotalTravelers,
		TDS:             it.TDS,

		VisaType:           it.VisaType,
		VisaProcessingDays: it.VisaProcessingDays,

		Footer: CompanyFooter,
	}
	if v.TotalDays > 0 {
		v.TotalNights = v.TotalDays - 1
	}

	// Empty-collection policy: placeholder sample rows. Sections backed by
	// an empty collection render their documented preview rows instead of
	// collapsing, so the exported document always shows a complete layout.
	if len(v.Days) == 0 {
		v.Days = SampleDays
		v.TotalDays = len(SampleDays)
		v.TotalNights = len(SampleDays) - 1
	}
	if len(v.Flights) == 0 {
		v.Flights = SampleFlights
	}
	if len(v.Hotels) == 0 {
		v.Hotels = SampleHotels
	}
	if len(v.Notes) == 0 {
		v.Notes = SampleNotes
	}
	if len(v.Services) == 0 {
		v.Services = SampleServices
	}
	if len(v.Inclusions) == 0 {
		v.Inclusions = SampleInclusions
	}
	if len(v.Activities) == 0 {
		v.Activities = SampleActivities
	}
	if len(v.Installments) == 0 {
		v.Installments = SampleInstallments
	}
	return v
}

func fallback(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

var pageTpl = template.Must(template.New("itinerary").
	Funcs(template.FuncMap{"money": utils.FormatAmount}).
	Parse(pageMarkup))
