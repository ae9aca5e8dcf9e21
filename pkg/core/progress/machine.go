// Package progress implements the mission progression state machine: derived
// per-mission statuses, the top-level session flow, and the submission gates.
//
// Mission status is a pure projection of the completed set. It is recomputed
// on every read and never stored, so stored and derived state cannot drift.
// The session flow is a unidirectional reducer: Apply(state, action) returns
// a new state and never mutates its input.
package progress

import (
	"fmt"

	"adm_academy/pkg/core/catalog"
	"adm_academy/pkg/models"
)

// StatusOf derives a single mission's status from the progress state.
// COMPLETED iff the mission is in the completed set; otherwise AVAILABLE iff
// it has no prerequisite or its prerequisite is completed; otherwise LOCKED.
// The prerequisite check is single-hop: completing mission 2 alone does not
// unlock mission 3's successors nor auto-complete mission 1.
func StatusOf(m models.Mission, state models.ProgressState) models.MissionStatus {
	if state.Completed[m.ID] {
		return models.StatusCompleted
	}
	if m.Prerequisite == 0 || state.Completed[m.Prerequisite] {
		return models.StatusAvailable
	}
	return models.StatusLocked
}

// Statuses derives the status of every mission in program order.
func Statuses(state models.ProgressState) map[int]models.MissionStatus {
	out := make(map[int]models.MissionStatus)
	for _, m := range catalog.Missions() {
		out[m.ID] = StatusOf(m, state)
	}
	return out
}

// AllCompleted reports whether every mission of the program is completed.
func AllCompleted(state models.ProgressState) bool {
	return len(state.Completed) == catalog.MissionCount()
}

// ActionType enumerates the discrete learner actions that drive the flow.
type ActionType string

const (
	ActionStart          ActionType = "start"           // welcome → dashboard
	ActionSelect         ActionType = "select"          // dashboard → mission(m), m not LOCKED
	ActionSubmit         ActionType = "submit"          // mission(m) → feedback(m), records answer
	ActionContinue       ActionType = "continue"        // feedback(m) → dashboard, commits completion
	ActionGenerateReport ActionType = "generate_report" // dashboard → report, all missions done
	ActionBack           ActionType = "back"            // mission/report → dashboard
	ActionReset          ActionType = "reset"           // any → welcome, full wipe
)

// Action is one learner-initiated transition request.
type Action struct {
	Type    ActionType `json:"type"`
	Mission int        `json:"mission,omitempty"`
	Answer  string     `json:"answer,omitempty"`
}

// Apply runs one transition of the session flow. It returns the successor
// state, leaving the input untouched. Invalid transitions return the input
// state unchanged together with an error.
//
// Completion is committed in exactly one place: ActionContinue. Submitting an
// answer only records it, so the learner may resubmit (overwriting the stored
// answer) until they continue past the feedback screen.
func Apply(state models.ProgressState, action Action) (models.ProgressState, error) {
	switch action.Type {
	case ActionStart:
		if state.View != models.ViewWelcome {
			return state, fmt.Errorf("start: not on welcome screen (view=%s)", state.View)
		}
		next := state.Clone()
		next.View = models.ViewDashboard
		return next, nil

	case ActionSelect:
		if state.View != models.ViewDashboard {
			return state, fmt.Errorf("select: not on dashboard (view=%s)", state.View)
		}
		m, ok := catalog.MissionByID(action.Mission)
		if !ok {
			return state, fmt.Errorf("select: unknown mission %d", action.Mission)
		}
		if StatusOf(m, state) == models.StatusLocked {
			return state, fmt.Errorf("select: mission %d is locked", m.ID)
		}
		next := state.Clone()
		next.View = models.ViewMission
		next.CurrentMission = m.ID
		return next, nil

	case ActionSubmit:
		if state.View != models.ViewMission {
			return state, fmt.Errorf("submit: no mission open (view=%s)", state.View)
		}
		if action.Mission != 0 && action.Mission != state.CurrentMission {
			return state, fmt.Errorf("submit: mission %d is not the open mission %d", action.Mission, state.CurrentMission)
		}
		next := state.Clone()
		next.Answers[state.CurrentMission] = action.Answer
		next.View = models.ViewFeedback
		next.FeedbackMission = state.CurrentMission
		return next, nil

	case ActionContinue:
		if state.View != models.ViewFeedback || state.FeedbackMission == 0 {
			return state, fmt.Errorf("continue: no feedback open (view=%s)", state.View)
		}
		next := state.Clone()
		next.Completed[state.FeedbackMission] = true
		next.View = models.ViewDashboard
		next.CurrentMission = 0
		next.FeedbackMission = 0
		return next, nil

	case ActionGenerateReport:
		if state.View != models.ViewDashboard {
			return state, fmt.Errorf("generate report: not on dashboard (view=%s)", state.View)
		}
		if !AllCompleted(state) {
			return state, fmt.Errorf("generate report: %d of %d missions completed", len(state.Completed), catalog.MissionCount())
		}
		next := state.Clone()
		next.View = models.ViewReport
		return next, nil

	case ActionBack:
		if state.View != models.ViewMission && state.View != models.ViewReport {
			return state, fmt.Errorf("back: nothing to go back from (view=%s)", state.View)
		}
		next := state.Clone()
		next.View = models.ViewDashboard
		next.CurrentMission = 0
		next.FeedbackMission = 0
		return next, nil

	case ActionReset:
		return models.NewProgressState(), nil

	default:
		return state, fmt.Errorf("unknown action %q", action.Type)
	}
}
