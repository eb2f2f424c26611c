package render

import "vigovia/models"

// Placeholder rows rendered when a collection is empty. These are the
// historical preview rows used so the exported document never shows a bare
// section; they are presentation-only and never written back to a session.

var SampleDays = []models.Day{
	{
		DayNumber: 1,
		Date:      "19/11/2024",
		Morning:   models.Activity{Title: "Arrival", Description: "Arrive and transfer to the hotel."},
		Afternoon: models.Activity{Title: "City Orientation", Description: "Leisure walk around the city center."},
		Evening:   models.Activity{Title: "Welcome Dinner", Description: "Dinner at a local restaurant."},
	},
}

var SampleFlights = []models.Flight{
	{Date: "Thu 19 Jun 24", Airline: "Air India", FlightNumber: "AI 120", From: "Delhi (DEL)", To: "Singapore (SIN)"},
	{Date: "Thu 19 Jun 24", Airline: "Air India", FlightNumber: "AI 120", From: "Delhi (DEL)", To: "Singapore (SIN)"},
	{Date: "Thu 19 Jun 24", Airline: "Air India", FlightNumber: "AI 120", From: "Delhi (DEL)", To: "Singapore (SIN)"},
	{Date: "Thu 19 Jun 24", Airline: "Air India", FlightNumber: "AI 120", From: "Delhi (DEL)", To: "Singapore (SIN)"},
}

var SampleHotels = []models.Hotel{
	{City: "Singapore", CheckIn: "19/11/2024", CheckOut: "20/11/2024", Nights: 1, HotelName: "Hotel Grand Central"},
	{City: "Singapore", CheckIn: "20/11/2024", CheckOut: "21/11/2024", Nights: 1, HotelName: "Hotel Grand Central"},
	{City: "Singapore", CheckIn: "21/11/2024", CheckOut: "22/11/2024", Nights: 1, HotelName: "Parkroyal Collection Pickering"},
	{City: "Singapore", CheckIn: "22/11/2024", CheckOut: "23/11/2024", Nights: 1, HotelName: "Parkroyal Collection Pickering"},
	{City: "Singapore", CheckIn: "23/11/2024", CheckOut: "24/11/2024", Nights: 1, HotelName: "Parkroyal Collection Pickering"},
}

var SampleNotes = []models.Note{
	{Point: "Visa Processing Time", Details: "7-10 working days for Singapore visa."},
	{Point: "Cancellation Conditions", Details: "Cancellation charges apply as per airline and hotel policies."},
	{Point: "Baggage", Details: "20kg check-in baggage and 7kg hand baggage."},
	{Point: "Meals", Details: "Breakfast included at hotels."},
	{Point: "Travel Insurance", Details: "Not included in the package."},
	{Point: "Payment", Details: "Full payment required 30 days prior to departure."},
}

var SampleServices = []models.Service{
	{Service: "Flight Ticket Confirmation", Details: "Round trip economy class airfare."},
	{Service: "Hotel Booking", Details: "3-star hotels on twin sharing basis."},
	{Service: "Visa", Details: "Singapore visa assistance."},
	{Service: "Activities", Details: "As per itinerary."},
	{Service: "Transfers", Details: "Airport transfers and inter-city transfers."},
	{Service: "Meals", Details: "Breakfast at hotels."},
}

var SampleInclusions = []models.Inclusion{
	{Category: "Flights", Count: "1", Details: "Round trip economy class airfare", Status: "Confirmed"},
	{Category: "Hotels", Count: "3", Details: "3-star hotels on twin sharing basis", Status: "Confirmed"},
	{Category: "Activities", Count: "5", Details: "Universal Studios, Gardens by the Bay, Sentosa Island, Singapore Zoo, River Safari", Status: "Confirmed"},
	{Category: "Transfers", Count: "2", Details: "Airport transfers", Status: "Confirmed"},
	{Category: "Meals", Count: "3", Details: "Breakfast at hotels", Status: "Confirmed"},
}

var SampleActivities = []models.Activity{
	{City: "Singapore", Title: "Gardens by the Bay", Type: "Sightseeing", TimeRequired: "3-4 hours"},
	{City: "Singapore", Title: "Universal Studios Singapore", Type: "Theme Park", TimeRequired: "Full Day"},
	{City: "Singapore", Title: "Sentosa Island", Type: "Leisure", TimeRequired: "4-5 hours"},
	{City: "Singapore", Title: "S.E.A. Aquarium", Type: "Aquarium", TimeRequired: "2-3 hours"},
	{City: "Singapore", Title: "Wings of Time", Type: "Show", TimeRequired: "1 hour"},
	{City: "Singapore", Title: "Singapore Zoo", Type: "Zoo", TimeRequired: "4-5 hours"},
	{City: "Singapore", Title: "River Safari", Type: "Wildlife", TimeRequired: "3-4 hours"},
	{City: "Singapore", Title: "Night Safari", Type: "Wildlife", TimeRequired: "3-4 hours"},
	{City: "Singapore", Title: "Merlion Park", Type: "Sightseeing", TimeRequired: "1 hour"},
	{City: "Singapore", Title: "Marina Bay Sands SkyPark", Type: "Sightseeing", TimeRequired: "2-3 hours"},
	{City: "Singapore", Title: "Orchard Road", Type: "Shopping", TimeRequired: "3-4 hours"},
}

var SampleInstallments = []models.Installment{
	{Name: "Booking Amount", Amount: 10000, DueDate: "10-Nov-2024", Status: models.InstallmentPending},
	{Name: "2nd Installment", Amount: 20000, DueDate: "15-Nov-2024", Status: models.InstallmentPending},
	{Name: "Final Payment", Amount: 20000, DueDate: "20-Nov-2024", Status: models.InstallmentPending},
}
