package itinerary

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"vigovia/middleware"
	"vigovia/models"
	"vigovia/utils"
)

// Each section editor reads the full collection, mutates a copy on the
// client and writes it back wholesale. There is no indexed in-place
// mutation contract; normalization (IDs, derived fields) happens here on
// every write.

// PUT /api/itinerary/days
func (h *Handlers) UpdateDays(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var days []models.Day
	if err := json.NewDecoder(r.Body).Decode(&days); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	normalizeDays(days)
	h.replace(w, r, func(it *models.Itinerary) { it.Days = days })
}

// PUT /api/itinerary/flights
func (h *Handlers) UpdateFlights(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var flights []models.Flight
	if err := json.NewDecoder(r.Body).Decode(&flights); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	for i := range flights {
		if flights[i].ID == "" {
			flights[i].ID = utils.GenerateID()
		}
	}
	h.replace(w, r, func(it *models.Itinerary) { it.Flights = flights })
}

// PUT /api/itinerary/hotels
func (h *Handlers) UpdateHotels(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var hotels []models.Hotel
	if err := json.NewDecoder(r.Body).Decode(&hotels); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	for i := range hotels {
		if hotels[i].ID == "" {
			hotels[i].ID = utils.GenerateID()
		}
		// Nights is derived; whatever the client sent is ignored.
		hotels[i].Nights = models.CalcNights(hotels[i].CheckIn, hotels[i].CheckOut)
	}
	h.replace(w, r, func(it *models.Itinerary) { it.Hotels = hotels })
}

// PUT /api/itinerary/installments
func (h *Handlers) UpdateInstallments(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var installments []models.Installment
	if err := json.NewDecoder(r.Body).Decode(&installments); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	for i := range installments {
		if installments[i].Status != models.InstallmentPaid && installments[i].Status != models.InstallmentPending {
			utils.RespondWithError(w, http.StatusBadRequest, "Installment status must be Paid or Pending")
			return
		}
		if installments[i].ID == "" {
			installments[i].ID = utils.GenerateID()
		}
	}
	h.replace(w, r, func(it *models.Itinerary) { it.Installments = installments })
}

// PUT /api/itinerary/notes
func (h *Handlers) UpdateNotes(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var notes []models.Note
	if err := json.NewDecoder(r.Body).Decode(&notes); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	for i := range notes {
		if notes[i].ID == "" {
			notes[i].ID = utils.GenerateID()
		}
	}
	h.replace(w, r, func(it *models.Itinerary) { it.ImportantNotes = notes })
}

// PUT /api/itinerary/services
func (h *Handlers) UpdateServices(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var services []models.Service
	if err := json.NewDecoder(r.Body).Decode(&services); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	for i := range services {
		if services[i].ID == "" {
			services[i].ID = utils.GenerateID()
		}
	}
	h.replace(w, r, func(it *models.Itinerary) { it.ScopeOfService = services })
}

// PUT /api/itinerary/inclusions
func (h *Handlers) UpdateInclusions(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var inclusions []models.Inclusion
	if err := json.NewDecoder(r.Body).Decode(&inclusions); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	for i := range inclusions {
		if inclusions[i].ID == "" {
			inclusions[i].ID = utils.GenerateID()
		}
	}
	h.replace(w, r, func(it *models.Itinerary) { it.Inclusions = inclusions })
}

// PUT /api/itinerary/activities
func (h *Handlers) UpdateActivities(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var activities []models.Activity
	if err := json.NewDecoder(r.Body).Decode(&activities); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	for i := range activities {
		if activities[i].ID == "" {
			activities[i].ID = utils.GenerateID()
		}
	}
	h.replace(w, r, func(it *models.Itinerary) { it.Activities = activities })
}

func (h *Handlers) replace(w http.ResponseWriter, r *http.Request, fn func(*models.Itinerary)) {
	sessionID := middleware.SessionID(r)
	if !h.Store.Update(sessionID, fn) {
		utils.RespondWithError(w, http.StatusNotFound, "Session expired")
		return
	}
	it, _ := h.Store.Get(sessionID)
	utils.RespondWithJSON(w, http.StatusOK, it)
}

// normalizeDays gives new days (no ID yet) their identity and sequential
// number. Existing days keep both, so deleting a day leaves a gap in the
// numbering, which is expected.
func normalizeDays(days []models.Day) {
	for i := range days {
		if days[i].ID == "" {
			days[i].ID = utils.GenerateID()
			days[i].DayNumber = i + 1
		}
		if days[i].Morning.ID == "" {
			days[i].Morning.ID = utils.GenerateID()
		}
		if days[i].Afternoon.ID == "" {
			days[i].Afternoon.ID = utils.GenerateID()
		}
		if days[i].Evening.ID == "" {
			days[i].Evening.ID = utils.GenerateID()
		}
	}
}
