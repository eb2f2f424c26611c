package itinerary

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"vigovia/middleware"
	"vigovia/models"
	"vigovia/pdfgen"
	"vigovia/progress"
	"vigovia/session"
	"vigovia/utils"
)

// Handlers owns the wizard-facing surface: session creation, the section
// editors and the single generate call the orchestrator makes after the
// final step.
type Handlers struct {
	Store    *session.Store
	Engine   *pdfgen.Engine
	Feed     *progress.Feed
	TokenTTL time.Duration
}

func NewHandlers(store *session.Store, engine *pdfgen.Engine, feed *progress.Feed, tokenTTL time.Duration) *Handlers {
	return &Handlers{Store: store, Engine: engine, Feed: feed, TokenTTL: tokenTTL}
}

// POST /api/session
func (h *Handlers) CreateSession(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	id := h.Store.Create()
	token, err := middleware.IssueSessionToken(id, h.TokenTTL)
	if err != nil {
		log.Printf("issue session token: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error creating session")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"token": token})
}

// GET /api/itinerary
func (h *Handlers) GetItinerary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	it, ok := h.Store.Get(middleware.SessionID(r))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Session expired")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, it)
}

// basicInfo is the scalar slice of the aggregate the first wizard step
// edits. TotalTravelers is absent on purpose: it is derived, never posted.
type basicInfo struct {
	TravelerName       string  `json:"travelerName"`
	Destination        string  `json:"destination"`
	Duration           string  `json:"duration"`
	DepartureFrom      string  `json:"departureFrom"`
	DepartureTo        string  `json:"departureTo"`
	Adults             int     `json:"adults"`
	Children           int     `json:"children"`
	Infants            int     `json:"infants"`
	TotalAmount        float64 `json:"totalAmount"`
	Currency           string  `json:"currency"`
	TDS                string  `json:"tds"`
	VisaType           string  `json:"visaType"`
	VisaProcessingDays string  `json:"visaProcessingDays"`
}

// PUT /api/itinerary/basic
func (h *Handlers) UpdateBasicInfo(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in basicInfo
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if in.Adults < 0 || in.Children < 0 || in.Infants < 0 || in.TotalAmount < 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Counts and amounts must be non-negative")
		return
	}

	ok := h.Store.Update(middleware.SessionID(r), func(it *models.Itinerary) {
		it.TravelerName = in.TravelerName
		it.Destination = in.Destination
		it.Duration = in.Duration
		it.DepartureFrom = in.DepartureFrom
		it.DepartureTo = in.DepartureTo
		it.Adults = in.Adults
		it.Children = in.Children
		it.Infants = in.Infants
		it.TotalAmount = in.TotalAmount
		it.Currency = in.Currency
		it.TDS = in.TDS
		it.VisaType = in.VisaType
		it.VisaProcessingDays = in.VisaProcessingDays
		it.RecalcTravelers()
	})
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Session expired")
		return
	}

	it, _ := h.Store.Get(middleware.SessionID(r))
	utils.RespondWithJSON(w, http.StatusOK, it)
}

// POST /api/itinerary/generate
//
// The single orchestrator call: freeze the snapshot, run the pipeline,
// stream the download. Any rasterization/compose failure surfaces as a
// generic message; the busy state always clears.
func (h *Handlers) Generate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sessionID := middleware.SessionID(r)

	snap, ok := h.Store.Snapshot(sessionID)
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Session expired")
		return
	}
	if !h.Store.BeginExport(sessionID) {
		utils.RespondWithError(w, http.StatusConflict, "Generation already in progress")
		return
	}
	defer h.Store.EndExport(sessionID)

	eng := *h.Engine
	eng.OnStage = func(stage string) { h.Feed.Publish(sessionID, stage) }

	doc, err := eng.Export(r.Context(), snap)
	if err != nil {
		log.Printf("export failed for session %s: %v", sessionID, err)
		h.Feed.Publish(sessionID, "failed")
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate itinerary document")
		return
	}
	h.Feed.Publish(sessionID, "done")

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename="+doc.Filename)
	w.WriteHeader(http.StatusOK)
	w.Write(doc.Bytes)
}
