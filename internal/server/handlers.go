package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent/pkg/letter"
	"github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent/pkg/lookup"
	"github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent/pkg/render"
	"github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent/pkg/signature"
	"github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent/pkg/wizard"
)

// stateResponse is the session snapshot returned by every mutating call, so
// clients can rely on one shape for re-rendering their step indicator.
type stateResponse struct {
	ID           string          `json:"id"`
	Stage        int             `json:"stage"`
	StageName    string          `json:"stageName"`
	Stages       []string        `json:"stages"`
	Reached      int             `json:"reached"`
	CanAdvance   bool            `json:"canAdvance"`
	HasSignature bool            `json:"hasSignature"`
	LookupBusy   bool            `json:"lookupBusy"`
	Customer     letter.Customer `json:"customer"`
	Disposer     letter.Disposer `json:"disposer"`
}

// snapshotState must be called with the session lock held.
func snapshotState(id string, sess *session) stateResponse {
	stages := wizard.Stages()
	names := make([]string, len(stages))
	reached := 0
	for i, stage := range stages {
		names[i] = stage.String()
		if sess.wiz.Reached(stage) {
			reached = int(stage)
		}
	}

	return stateResponse{
		ID:           id,
		Stage:        int(sess.wiz.Stage()),
		StageName:    sess.wiz.Stage().String(),
		Stages:       names,
		Reached:      reached,
		CanAdvance:   sess.wiz.CanAdvance(),
		HasSignature: sess.wiz.HasSignature(),
		LookupBusy:   sess.lookupBusy,
		Customer:     sess.wiz.Customer,
		Disposer:     sess.wiz.Disposer,
	}
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func (s *Server) sessionFromRequest(w http.ResponseWriter, r *http.Request) (string, *session, bool) {
	id := mux.Vars(r)["id"]
	sess, ok := s.store.get(id)
	if !ok {
		respondError(w, http.StatusNotFound, "session not found")
		return "", nil, false
	}
	return id, sess, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, into any) bool {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(into); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid payload: %v", err))
		return false
	}
	return true
}

// sanitize strips any markup from user input. bluemonday escapes what it
// keeps, so the entities are unescaped again to store plain text.
func (s *Server) sanitize(value string) string {
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(value)))
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	id, sess := s.store.create()
	s.logger.Info("session created", "id", id)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	respondJSON(w, http.StatusCreated, snapshotState(id, sess))
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id, sess, ok := s.sessionFromRequest(w, r)
	if !ok {
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	respondJSON(w, http.StatusOK, snapshotState(id, sess))
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !s.store.remove(id) {
		respondError(w, http.StatusNotFound, "session not found")
		return
	}
	s.logger.Info("session discarded", "id", id)
	w.WriteHeader(http.StatusNoContent)
}

// customerPayload carries a partial update. Only fields present in the JSON
// are applied, so the client can save one input at a time.
type customerPayload struct {
	CompanyName          *string `json:"companyName"`
	FirstName            *string `json:"firstName"`
	LastName             *string `json:"lastName"`
	Street               *string `json:"street"`
	Zip                  *string `json:"zip"`
	City                 *string `json:"city"`
	CustomerNumber       *string `json:"customerNumber"`
	ContractNumber       *string `json:"contractNumber"`
	Phone                *string `json:"phone"`
	Email                *string `json:"email"`
	TerminationDate      *string `json:"terminationDate"`
	TerminationType      *string `json:"terminationType"`
	TerminationImmediate *bool   `json:"terminationImmediate"`
}

func (s *Server) handleUpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, sess, ok := s.sessionFromRequest(w, r)
	if !ok {
		return
	}

	var payload customerPayload
	if !decodeBody(w, r, &payload) {
		return
	}

	var kind letter.TerminationKind
	if payload.TerminationType != nil {
		kind = letter.TerminationKind(s.sanitize(*payload.TerminationType))
		switch kind {
		case letter.TerminationOrdentlich, letter.TerminationAusserordentlich, letter.TerminationFristlos:
		default:
			respondError(w, http.StatusBadRequest, fmt.Sprintf("unknown termination type %q", kind))
			return
		}
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	c := &sess.wiz.Customer
	applyString(&c.CompanyName, payload.CompanyName, s.sanitize)
	applyString(&c.FirstName, payload.FirstName, s.sanitize)
	applyString(&c.LastName, payload.LastName, s.sanitize)
	applyString(&c.Street, payload.Street, s.sanitize)
	applyString(&c.Zip, payload.Zip, s.sanitize)
	applyString(&c.City, payload.City, s.sanitize)
	applyString(&c.CustomerNumber, payload.CustomerNumber, s.sanitize)
	applyString(&c.ContractNumber, payload.ContractNumber, s.sanitize)
	applyString(&c.Phone, payload.Phone, s.sanitize)
	applyString(&c.Email, payload.Email, s.sanitize)
	applyString(&c.TerminationDate, payload.TerminationDate, s.sanitize)
	if payload.TerminationImmediate != nil {
		c.TerminationImmediate = *payload.TerminationImmediate
	}
	if payload.TerminationType != nil {
		c.SelectTerminationKind(kind)
	}

	respondJSON(w, http.StatusOK, snapshotState(id, sess))
}

type disposerPayload struct {
	Name    *string `json:"name"`
	Street  *string `json:"street"`
	Zip     *string `json:"zip"`
	City    *string `json:"city"`
	Country *string `json:"country"`
}

func (s *Server) handleUpdateDisposer(w http.ResponseWriter, r *http.Request) {
	id, sess, ok := s.sessionFromRequest(w, r)
	if !ok {
		return
	}

	var payload disposerPayload
	if !decodeBody(w, r, &payload) {
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	d := &sess.wiz.Disposer
	applyString(&d.Name, payload.Name, s.sanitize)
	applyString(&d.Street, payload.Street, s.sanitize)
	applyString(&d.Zip, payload.Zip, s.sanitize)
	applyString(&d.City, payload.City, s.sanitize)
	applyString(&d.Country, payload.Country, s.sanitize)
	if d.Country == "" {
		d.Country = letter.DefaultCountry
	}

	respondJSON(w, http.StatusOK, snapshotState(id, sess))
}

func applyString(target *string, value *string, clean func(string) string) {
	if value != nil {
		*target = clean(*value)
	}
}

func (s *Server) handleAdvance(w http.ResponseWriter, r *http.Request) {
	id, sess, ok := s.sessionFromRequest(w, r)
	if !ok {
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	// A blocked advance is not an error; the snapshot tells the client why.
	sess.wiz.Advance()
	respondJSON(w, http.StatusOK, snapshotState(id, sess))
}

func (s *Server) handleBack(w http.ResponseWriter, r *http.Request) {
	id, sess, ok := s.sessionFromRequest(w, r)
	if !ok {
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.wiz.Back()
	respondJSON(w, http.StatusOK, snapshotState(id, sess))
}

func (s *Server) handleGoTo(w http.ResponseWriter, r *http.Request) {
	id, sess, ok := s.sessionFromRequest(w, r)
	if !ok {
		return
	}

	var payload struct {
		Stage int `json:"stage"`
	}
	if !decodeBody(w, r, &payload) {
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.wiz.GoTo(wizard.Stage(payload.Stage))
	respondJSON(w, http.StatusOK, snapshotState(id, sess))
}

func (s *Server) handleLookupCustomer(w http.ResponseWriter, r *http.Request) {
	s.handleLookup(w, r, func(sess *session, result lookup.Result) {
		result.ApplyToCustomer(&sess.wiz.Customer)
	})
}

func (s *Server) handleLookupDisposer(w http.ResponseWriter, r *http.Request) {
	s.handleLookup(w, r, func(sess *session, result lookup.Result) {
		result.ApplyToDisposer(&sess.wiz.Disposer)
	})
}

func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request, apply func(*session, lookup.Result)) {
	id, sess, ok := s.sessionFromRequest(w, r)
	if !ok {
		return
	}

	var payload struct {
		Query string `json:"query"`
	}
	if !decodeBody(w, r, &payload) {
		return
	}
	query := s.sanitize(payload.Query)
	if query == "" {
		respondError(w, http.StatusBadRequest, "query is required")
		return
	}

	// Only one lookup per session at a time; a second request while one is
	// running is acknowledged without starting another search.
	sess.mu.Lock()
	if sess.lookupBusy {
		state := snapshotState(id, sess)
		sess.mu.Unlock()
		respondJSON(w, http.StatusAccepted, state)
		return
	}
	sess.lookupBusy = true
	sess.mu.Unlock()

	defer func() {
		sess.mu.Lock()
		sess.lookupBusy = false
		sess.mu.Unlock()
	}()

	result, err := s.lookup.Search(r.Context(), query)
	if err != nil {
		if errors.Is(err, lookup.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Adresse nicht gefunden. Bitte manuell eingeben.")
			return
		}
		s.logger.Error("lookup failed", "id", id, "err", err)
		respondError(w, http.StatusBadGateway, "Adresssuche derzeit nicht verfügbar.")
		return
	}

	sess.mu.Lock()
	apply(sess, result)
	sess.lookupBusy = false
	state := snapshotState(id, sess)
	sess.mu.Unlock()

	respondJSON(w, http.StatusOK, state)
}

// signaturePayload accepts either raw strokes, rasterized server-side, or a
// finished PNG data URI from a client that draws on its own canvas.
type signaturePayload struct {
	Strokes [][]signature.Point `json:"strokes"`
	DataURI string              `json:"dataUri"`
}

func (s *Server) handleSignature(w http.ResponseWriter, r *http.Request) {
	id, sess, ok := s.sessionFromRequest(w, r)
	if !ok {
		return
	}

	var payload signaturePayload
	if !decodeBody(w, r, &payload) {
		return
	}

	var dataURI string
	switch {
	case payload.DataURI != "":
		if !strings.HasPrefix(payload.DataURI, "data:image/png;base64,") {
			respondError(w, http.StatusBadRequest, "dataUri must be a png data uri")
			return
		}
		dataURI = payload.DataURI
	case len(payload.Strokes) > 0:
		pad := signature.NewPad()
		for _, stroke := range payload.Strokes {
			pad.AddStroke(stroke)
		}
		uri, err := pad.Confirm()
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		dataURI = uri
	default:
		respondError(w, http.StatusBadRequest, "strokes or dataUri required")
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.wiz.SetSignature(dataURI)
	respondJSON(w, http.StatusOK, snapshotState(id, sess))
}

func (s *Server) handleRender(target string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, sess, ok := s.sessionFromRequest(w, r)
		if !ok {
			return
		}

		renderer, err := s.registry.Get(target)
		if err != nil {
			respondError(w, http.StatusInternalServerError, err.Error())
			return
		}

		sess.mu.Lock()
		doc := sess.wiz.Document()
		sess.mu.Unlock()

		options := render.RenderOptions{}
		if target == "preview" {
			options.Theme = s.theme
		}

		output, err := renderer.Render(r.Context(), doc, options)
		if err != nil {
			s.logger.Error("render failed", "target", target, "err", err)
			respondError(w, http.StatusInternalServerError, "render failed")
			return
		}

		w.Header().Set("Content-Type", renderer.ContentType())
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(output)
	}
}
