// ABOUTME: Load state models for the recipe list controller
// ABOUTME: LoadState is the render-ready snapshot; LoadRecord summarises a completed load

package domain

import "time"

// LoadPhase is the controller's coarse-grained status
type LoadPhase int

const (
	PhaseIdle LoadPhase = iota
	PhaseLoading
	PhaseLoaded
	PhaseFailed
)

// String returns the lower-case phase name
func (p LoadPhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// LoadState is one of Idle, Loading, Loaded(Recipes) or Failed(Err).
// Recipes is only meaningful when Loaded and Err only when Failed.
type LoadState struct {
	Phase      LoadPhase
	Recipes    RecipeCollection
	Err        error
	Generation uint64
}

// IdleState is the state of a freshly constructed controller
func IdleState() LoadState {
	return LoadState{Phase: PhaseIdle}
}

// LoadingState marks a fetch in flight for generation gen
func LoadingState(gen uint64) LoadState {
	return LoadState{Phase: PhaseLoading, Generation: gen}
}

// LoadedState holds the collection produced by generation gen
func LoadedState(gen uint64, recipes RecipeCollection) LoadState {
	return LoadState{Phase: PhaseLoaded, Recipes: recipes, Generation: gen}
}

// FailedState holds the error produced by generation gen
func FailedState(gen uint64, err error) LoadState {
	return LoadState{Phase: PhaseFailed, Err: err, Generation: gen}
}

// IsLoaded reports whether the state carries a collection
func (s LoadState) IsLoaded() bool {
	return s.Phase == PhaseLoaded
}

// LoadRecord summarises one completed load for the status journal
type LoadRecord struct {
	Endpoint    string    `json:"endpoint"`
	Generation  uint64    `json:"generation"`
	Phase       string    `json:"phase"`
	RecipeCount int       `json:"recipe_count"`
	ErrorKind   string    `json:"error_kind,omitempty"`
	StatusCode  int       `json:"status_code,omitempty"`
	Error       string    `json:"error,omitempty"`
	StartedAt   time.Time `json:"started_at"`
	FinishedAt  time.Time `json:"finished_at"`
}

// Duration returns how long the load took
func (r LoadRecord) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
