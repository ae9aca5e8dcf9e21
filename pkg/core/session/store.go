// Package session persists the learner's progression between runs. The store
// is best-effort and local: a single JSON record per profile, written through
// on every transition, plus an independent theme preference. A record that
// fails to parse is treated as absent — corruption is never fatal, the
// program just starts over from the welcome screen.
package session

import (
	"sort"
	"strconv"

	"adm_academy/pkg/core/catalog"
	"adm_academy/pkg/models"
)

// Record is the persisted session shape. The view field never carries
// "feedback": mid-feedback sessions persist as "mission" and are downgraded
// to the dashboard on restore anyway.
type Record struct {
	CompletedMissions []int             `json:"completedMissions"`
	StudentAnswers    map[string]string `json:"studentAnswers"`
	View              models.View       `json:"view"`
}

// Store persists the progression and the theme preference.
// Load reports absent (false) for both missing and unreadable records.
type Store interface {
	Save(state models.ProgressState) error
	Load() (models.ProgressState, bool)
	Clear() error

	SaveTheme(theme string) error
	LoadTheme() (string, bool)
}

// Encode flattens a progress state into its persisted record.
func Encode(state models.ProgressState) Record {
	rec := Record{
		StudentAnswers: make(map[string]string, len(state.Answers)),
		View:           state.View,
	}
	for id := range state.Completed {
		rec.CompletedMissions = append(rec.CompletedMissions, id)
	}
	sort.Ints(rec.CompletedMissions)
	for id, answer := range state.Answers {
		rec.StudentAnswers[strconv.Itoa(id)] = answer
	}
	if rec.View == models.ViewFeedback {
		rec.View = models.ViewMission
	}
	return rec
}

// Restore rebuilds a progress state from a persisted record, applying the
// restoration policy:
//   - completed ids unknown to the mission catalog are dropped, so a
//     tampered record cannot satisfy the all-completed check
//   - mission and report views downgrade to the dashboard, so the learner
//     never resumes into a transient, half-filled screen
//   - an empty completed set forces the welcome screen regardless of the
//     persisted view (treat as a fresh session)
//   - welcome and dashboard restore verbatim
func Restore(rec Record) models.ProgressState {
	state := models.NewProgressState()
	for _, id := range rec.CompletedMissions {
		if _, ok := catalog.MissionByID(id); !ok {
			continue
		}
		state.Completed[id] = true
	}
	for key, answer := range rec.StudentAnswers {
		id, err := strconv.Atoi(key)
		if err != nil {
			continue // foreign key in the answer map, skip it
		}
		state.Answers[id] = answer
	}

	switch {
	case len(state.Completed) == 0:
		state.View = models.ViewWelcome
	case rec.View == models.ViewWelcome || rec.View == models.ViewDashboard:
		state.View = rec.View
	default:
		state.View = models.ViewDashboard
	}
	return state
}
