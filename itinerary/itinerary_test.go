package itinerary

import (
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"

	"vigovia/middleware"
	"vigovia/models"
	"vigovia/pdfgen"
	"vigovia/progress"
	"vigovia/session"
)

type stubInliner struct{}

func (stubInliner) Inline(ctx context.Context, markup string) string { return markup }

type stubRaster struct{ err error }

func (s stubRaster) Rasterize(ctx context.Context, surf pdfgen.Surface, opts pdfgen.RasterOptions) (image.Image, error) {
	if s.err != nil {
		return nil, s.err
	}
	return imaging.New(420, 600, color.NRGBA{255, 255, 255, 255}), nil
}

type stubComposer struct {
	started chan struct{}
	block   chan struct{}
}

func (c *stubComposer) AddPage(offsetMM float64, lastPage bool) {}

func (c *stubComposer) Output() ([]byte, error) {
	if c.started != nil {
		close(c.started)
		c.started = nil
	}
	if c.block != nil {
		<-c.block
	}
	return []byte("%PDF-stub"), nil
}

func testHandlers(rasterErr error, comp *stubComposer) *Handlers {
	opts := pdfgen.DefaultRasterOptions()
	opts.SettleDelay = 0
	engine := &pdfgen.Engine{
		Inliner:  stubInliner{},
		Raster:   stubRaster{err: rasterErr},
		Opts:     opts,
		Composer: func(image.Image) (pdfgen.Composer, error) {
			if comp != nil {
				return comp, nil
			}
			return &stubComposer{}, nil
		},
	}
	return NewHandlers(session.NewStore(time.Hour), engine, progress.NewFeed(), time.Hour)
}

// do runs a handler behind the auth middleware the way the router does.
func do(h httprouter.Handle, method, token string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/api/itinerary", strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	middleware.Authenticate(h)(w, req, nil)
	return w
}

func newSession(t *testing.T, h *Handlers) (string, string) {
	t.Helper()
	id := h.Store.Create()
	token, err := middleware.IssueSessionToken(id, time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return id, token
}

func decodeItinerary(t *testing.T, w *httptest.ResponseRecorder) models.Itinerary {
	t.Helper()
	var it models.Itinerary
	if err := json.Unmarshal(w.Body.Bytes(), &it); err != nil {
		t.Fatalf("bad itinerary body: %v", err)
	}
	return it
}

func TestCreateSessionIssuesUsableToken(t *testing.T) {
	h := testHandlers(nil, nil)

	w := httptest.NewRecorder()
	h.CreateSession(w, httptest.NewRequest(http.MethodPost, "/api/session", nil), nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d", w.Code)
	}
	var out struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil || out.Token == "" {
		t.Fatalf("expected a token, got %q (err %v)", w.Body.String(), err)
	}

	get := do(h.GetItinerary, http.MethodGet, out.Token, "")
	if get.Code != http.StatusOK {
		t.Fatalf("GET with fresh token = %d", get.Code)
	}
	if it := decodeItinerary(t, get); it.Adults != 2 {
		t.Fatalf("fresh itinerary adults = %d", it.Adults)
	}
}

func TestAuthRejectsBadTokens(t *testing.T) {
	h := testHandlers(nil, nil)

	if w := do(h.GetItinerary, http.MethodGet, "", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("missing token = %d", w.Code)
	}
	if w := do(h.GetItinerary, http.MethodGet, "not-a-jwt", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("garbage token = %d", w.Code)
	}
}

func TestUpdateBasicInfoDerivesTravelers(t *testing.T) {
	h := testHandlers(nil, nil)
	_, token := newSession(t, h)

	body := `{"travelerName":"Rahul","destination":"Singapore","adults":2,"children":1,"infants":1,"totalAmount":120000,"currency":"INR","totalTravelers":99}`
	w := do(h.UpdateBasicInfo, http.MethodPut, token, body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	it := decodeItinerary(t, w)
	if it.TotalTravelers != 4 {
		t.Fatalf("TotalTravelers = %d, want derived 4", it.TotalTravelers)
	}
	if it.Destination != "Singapore" || it.TotalAmount != 120000 {
		t.Fatalf("scalars not applied: %+v", it)
	}
}

func TestUpdateBasicInfoRejectsNegatives(t *testing.T) {
	h := testHandlers(nil, nil)
	_, token := newSession(t, h)

	w := do(h.UpdateBasicInfo, http.MethodPut, token, `{"adults":-1}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("negative adults = %d", w.Code)
	}
	w = do(h.UpdateBasicInfo, http.MethodPut, token, `{"totalAmount":-5}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("negative amount = %d", w.Code)
	}
}

func TestUpdateDaysAssignsIdentityAndNumbering(t *testing.T) {
	h := testHandlers(nil, nil)
	_, token := newSession(t, h)

	body := `[{"date":"2026-03-01"},{"id":"keep","dayNumber":7,"date":"2026-03-02"},{"date":"2026-03-03"}]`
	w := do(h.UpdateDays, http.MethodPut, token, body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	it := decodeItinerary(t, w)
	if len(it.Days) != 3 {
		t.Fatalf("days = %d", len(it.Days))
	}
	if it.Days[0].ID == "" || it.Days[0].DayNumber != 1 {
		t.Fatalf("new day not normalized: %+v", it.Days[0])
	}
	if it.Days[1].ID != "keep" || it.Days[1].DayNumber != 7 {
		t.Fatalf("existing day must keep id and number: %+v", it.Days[1])
	}
	if it.Days[2].DayNumber != 3 {
		t.Fatalf("third day number = %d", it.Days[2].DayNumber)
	}
	if it.Days[0].Morning.ID == "" || it.Days[0].Evening.ID == "" {
		t.Fatal("slot activities should get ids")
	}
}

func TestUpdateHotelsDerivesNights(t *testing.T) {
	h := testHandlers(nil, nil)
	_, token := newSession(t, h)

	body := `[{"city":"Singapore","checkIn":"2026-03-01","checkOut":"2026-03-04","nights":42,"hotelName":"Marina"}]`
	w := do(h.UpdateHotels, http.MethodPut, token, body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	it := decodeItinerary(t, w)
	if it.Hotels[0].Nights != 3 {
		t.Fatalf("nights = %d, want derived 3 regardless of what was posted", it.Hotels[0].Nights)
	}
	if it.Hotels[0].ID == "" {
		t.Fatal("hotel should get an id")
	}
}

func TestUpdateInstallmentsValidatesStatus(t *testing.T) {
	h := testHandlers(nil, nil)
	_, token := newSession(t, h)

	bad := `[{"name":"Deposit","amount":30000,"status":"Overdue"}]`
	if w := do(h.UpdateInstallments, http.MethodPut, token, bad); w.Code != http.StatusBadRequest {
		t.Fatalf("bad status accepted: %d", w.Code)
	}

	good := `[{"name":"Deposit","amount":30000,"status":"Paid"},{"name":"Balance","amount":65000,"status":"Pending"}]`
	w := do(h.UpdateInstallments, http.MethodPut, token, good)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	it := decodeItinerary(t, w)
	if len(it.Installments) != 2 || it.Installments[0].ID == "" {
		t.Fatalf("installments not stored: %+v", it.Installments)
	}
}

func TestEditorsRejectExpiredSession(t *testing.T) {
	h := testHandlers(nil, nil)
	token, err := middleware.IssueSessionToken("evicted", time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if w := do(h.UpdateNotes, http.MethodPut, token, `[]`); w.Code != http.StatusNotFound {
		t.Fatalf("expired session = %d", w.Code)
	}
}

func TestGenerateStreamsPDF(t *testing.T) {
	h := testHandlers(nil, nil)
	_, token := newSession(t, h)
	do(h.UpdateBasicInfo, http.MethodPut, token, `{"travelerName":"Rahul","destination":"Singapore","adults":2,"totalAmount":95000,"currency":"INR"}`)

	w := do(h.Generate, http.MethodPost, token, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("content type = %q", ct)
	}
	cd := w.Header().Get("Content-Disposition")
	if !strings.Contains(cd, "Singapore-Itinerary-Rahul.pdf") {
		t.Fatalf("disposition = %q", cd)
	}
}

func TestGenerateFailureIsGeneric(t *testing.T) {
	h := testHandlers(errors.New("chromium exploded"), nil)
	_, token := newSession(t, h)

	w := do(h.Generate, http.MethodPost, token, "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "chromium") {
		t.Fatalf("internal error leaked: %s", w.Body.String())
	}

	// The busy flag must clear even after a failure.
	if w := do(h.Generate, http.MethodPost, token, ""); w.Code == http.StatusConflict {
		t.Fatal("session stuck busy after failed export")
	}
}

func TestGenerateRefusesConcurrentExport(t *testing.T) {
	comp := &stubComposer{started: make(chan struct{}), block: make(chan struct{})}
	h := testHandlers(nil, comp)
	_, token := newSession(t, h)

	started := comp.started
	firstDone := make(chan *httptest.ResponseRecorder, 1)
	go func() { firstDone <- do(h.Generate, http.MethodPost, token, "") }()

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("first export never started")
	}

	if w := do(h.Generate, http.MethodPost, token, ""); w.Code != http.StatusConflict {
		t.Fatalf("concurrent generate = %d, want conflict", w.Code)
	}

	close(comp.block)
	if w := <-firstDone; w.Code != http.StatusOK {
		t.Fatalf("blocked export finished with %d", w.Code)
	}
}
