// ============================================================================
// ACADEMY HANDLER - session state, mission flow actions, theme preference
// ============================================================================

package academy

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/rs/zerolog"

	"adm_academy/pkg/core/progress"
	"adm_academy/pkg/core/session"
	"adm_academy/pkg/models"
)

// ActionRequest is the body of POST /api/academy/action. For the portfolio
// mission the client sends allocations plus rationale instead of a composed
// answer; the server composes and stores the canonical text.
type ActionRequest struct {
	Type        progress.ActionType `json:"type"`
	Mission     int                 `json:"mission,omitempty"`
	Answer      string              `json:"answer,omitempty"`
	Allocations map[string]int      `json:"allocations,omitempty"`
	Rationale   string              `json:"rationale,omitempty"`
}

// StateResponse is what every state-bearing endpoint returns.
type StateResponse struct {
	State        models.ProgressState         `json:"state"`
	Statuses     map[int]models.MissionStatus `json:"statuses"`
	AllCompleted bool                         `json:"all_completed"`
	Sectors      []progress.SectorSlice       `json:"sectors,omitempty"`
}

// GateRequest previews a submission gate without submitting.
type GateRequest struct {
	Mission     int            `json:"mission"`
	Answer      string         `json:"answer,omitempty"`
	Allocations map[string]int `json:"allocations,omitempty"`
	Rationale   string         `json:"rationale,omitempty"`
}

type themePayload struct {
	Theme string `json:"theme"`
}

// Handler owns the single learner session. State lives in memory and is
// written through to the store on every transition; a failing store is
// logged and otherwise ignored.
type Handler struct {
	mu    sync.Mutex
	state models.ProgressState
	store session.Store
	log   zerolog.Logger
}

// NewHandler restores the session from the store (fresh state when absent).
func NewHandler(store session.Store, log zerolog.Logger) *Handler {
	state, ok := store.Load()
	if !ok {
		state = models.NewProgressState()
	}
	return &Handler{
		state: state,
		store: store,
		log:   log.With().Str("component", "academy").Logger(),
	}
}

// State returns a copy of the current session state.
func (h *Handler) State() models.ProgressState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state.Clone()
}

// HandleState serves GET /api/academy/state.
func (h *Handler) HandleState(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	resp := h.response()
	h.mu.Unlock()
	writeJSON(w, http.StatusOK, resp)
}

// HandleAction serves POST /api/academy/action. Submissions are gate-checked
// before the reducer runs: a failing gate is a 422, an invalid transition a
// 409, success returns the new state.
func (h *Handler) HandleAction(w http.ResponseWriter, r *http.Request) {
	var req ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	action := progress.Action{Type: req.Type, Mission: req.Mission, Answer: req.Answer}
	if req.Type == progress.ActionSubmit {
		missionID := req.Mission
		if missionID == 0 {
			missionID = h.state.CurrentMission
		}
		gate, answer := resolveSubmission(missionID, req)
		if !gate.Satisfied {
			writeJSON(w, http.StatusUnprocessableEntity, gate)
			return
		}
		action.Answer = answer
	}

	next, err := progress.Apply(h.state, action)
	if err != nil {
		h.log.Debug().Err(err).Str("action", string(req.Type)).Msg("transition rejected")
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	h.state = next
	h.persist()

	resp := h.response()
	if req.Type == progress.ActionSubmit && len(req.Allocations) > 0 {
		resp.Sectors = progress.SectorAllocation(req.Allocations)
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleGate serves POST /api/academy/gate, mirroring the client-side submit
// enablement check.
func (h *Handler) HandleGate(w http.ResponseWriter, r *http.Request) {
	var req GateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	gate, _ := resolveSubmission(req.Mission, ActionRequest{
		Mission:     req.Mission,
		Answer:      req.Answer,
		Allocations: req.Allocations,
		Rationale:   req.Rationale,
	})
	writeJSON(w, http.StatusOK, gate)
}

// HandleReset serves POST /api/academy/reset: wipes the session, keeps the
// theme preference.
func (h *Handler) HandleReset(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.state = models.NewProgressState()
	if err := h.store.Clear(); err != nil {
		h.log.Warn().Err(err).Msg("failed to clear session store")
	}
	writeJSON(w, http.StatusOK, h.response())
}

// HandleTheme serves GET and PUT /api/academy/theme.
func (h *Handler) HandleTheme(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		theme, ok := h.store.LoadTheme()
		if !ok {
			theme = "light"
		}
		writeJSON(w, http.StatusOK, themePayload{Theme: theme})
	case http.MethodPut:
		var req themePayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if err := h.store.SaveTheme(req.Theme); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, req)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// resolveSubmission runs the mission's gate and returns the answer text to
// store. Dispatch is keyed on the mission id, never the payload shape: the
// portfolio mission always goes through the allocation gate (a plain answer
// cannot bypass it) and composes its stored answer from the allocation map,
// while the free-text missions ignore stray allocation fields.
func resolveSubmission(missionID int, req ActionRequest) (progress.Gate, string) {
	if missionID == progress.AllocationMissionID {
		gate := progress.AllocationGate(req.Allocations, req.Rationale)
		if !gate.Satisfied {
			return gate, ""
		}
		return gate, progress.ComposeAllocationAnswer(req.Allocations, req.Rationale)
	}
	gate := progress.AnswerGate(missionID, req.Answer)
	return gate, req.Answer
}

// response builds the state payload. Caller holds the lock.
func (h *Handler) response() StateResponse {
	return StateResponse{
		State:        h.state.Clone(),
		Statuses:     progress.Statuses(h.state),
		AllCompleted: progress.AllCompleted(h.state),
	}
}

// persist writes through to the store. Caller holds the lock.
func (h *Handler) persist() {
	if err := h.store.Save(h.state); err != nil {
		h.log.Warn().Err(err).Msg("failed to persist session")
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
