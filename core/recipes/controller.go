// ABOUTME: List controller owns the load state machine and the search query
// ABOUTME: Loads are coalesced and tagged with a generation so stale results are dropped

package recipes

import (
	"context"
	"sync"
	"time"

	"recipes-app-api/core/domain"
	coreerrors "recipes-app-api/core/errors"
	"recipes-app-api/core/interfaces"
	"recipes-app-api/core/search"

	"golang.org/x/sync/singleflight"
)

const loadKey = "load"

// LoadRecorder receives a summary of every load the controller applies
type LoadRecorder interface {
	Record(ctx context.Context, record domain.LoadRecord) error
}

// ListController coordinates one repository call at a time with the state
// a presentation layer renders. It is safe for concurrent use.
type ListController struct {
	fetcher  Fetcher
	endpoint string
	logger   interfaces.Logger
	recorder LoadRecorder

	group singleflight.Group

	// baseCtx outlives individual callers and is cancelled by Close
	baseCtx context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup

	mu          sync.RWMutex
	state       domain.LoadState
	query       string
	generation  uint64
	closed      bool
	subscribers map[int]chan domain.LoadState
	nextSubID   int
}

// ControllerOption configures a ListController
type ControllerOption func(*ListController)

// WithLogger sets the controller logger
func WithLogger(logger interfaces.Logger) ControllerOption {
	return func(c *ListController) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRecorder sets a hook that is told about every applied load
func WithRecorder(recorder LoadRecorder) ControllerOption {
	return func(c *ListController) {
		c.recorder = recorder
	}
}

// NewListController creates an Idle controller that loads from endpoint
func NewListController(fetcher Fetcher, endpoint string, opts ...ControllerOption) *ListController {
	ctx, cancel := context.WithCancel(context.Background())
	c := &ListController{
		fetcher:     fetcher,
		endpoint:    endpoint,
		logger:      interfaces.NopLogger{},
		baseCtx:     ctx,
		cancel:      cancel,
		state:       domain.IdleState(),
		subscribers: make(map[int]chan domain.LoadState),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the URL the controller loads from
func (c *ListController) Endpoint() string {
	return c.endpoint
}

// Load moves the controller to Loading and fetches a fresh collection,
// replacing whatever was loaded before. Calls made while a fetch is in
// flight join that fetch instead of starting another. If ctx ends first,
// Load returns the current state and the shared fetch keeps running.
func (c *ListController) Load(ctx context.Context) domain.LoadState {
	if c.isClosed() {
		return c.State()
	}

	ch := c.group.DoChan(loadKey, func() (interface{}, error) {
		return c.fetch(), nil
	})

	select {
	case res := <-ch:
		return res.Val.(domain.LoadState)
	case <-ctx.Done():
		return c.State()
	}
}

// fetch runs one generation from Loading to Loaded or Failed
func (c *ListController) fetch() domain.LoadState {
	gen, ok := c.begin()
	if !ok {
		return c.State()
	}
	defer c.wg.Done()

	started := time.Now()
	recipes, err := c.fetcher.FetchRecipes(c.baseCtx, c.endpoint)
	finished := time.Now()

	state, applied := c.finish(gen, recipes, err)
	if !applied {
		c.logger.Debug("Discarded stale recipe load", map[string]interface{}{
			"generation": gen,
		})
		return state
	}

	c.logOutcome(state)
	c.record(state, started, finished)
	return state
}

// begin starts a new generation, returning false once the controller is closed
func (c *ListController) begin() (uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return 0, false
	}
	c.generation++
	c.wg.Add(1)
	c.setStateLocked(domain.LoadingState(c.generation))
	return c.generation, true
}

// finish applies the result of generation gen if it is still current.
// The load key is released before the terminal state is visible, so any
// Load that observes Loaded or Failed starts a new fetch instead of joining
// this one while it records.
func (c *ListController) finish(gen uint64, recipes domain.RecipeCollection, err error) (domain.LoadState, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.group.Forget(loadKey)
	if c.closed || gen != c.generation {
		return c.snapshotLocked(), false
	}

	if err != nil {
		c.setStateLocked(domain.FailedState(gen, err))
	} else {
		if recipes == nil {
			recipes = domain.RecipeCollection{}
		}
		c.setStateLocked(domain.LoadedState(gen, recipes))
	}
	return c.snapshotLocked(), true
}

// SetSearchQuery replaces the search query. It never triggers a load.
func (c *ListController) SetSearchQuery(query string) {
	c.mu.Lock()
	c.query = query
	c.mu.Unlock()
}

// SearchQuery returns the current search query
func (c *ListController) SearchQuery() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.query
}

// State returns a snapshot of the current load state
func (c *ListController) State() domain.LoadState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshotLocked()
}

// VisibleList returns the loaded collection filtered by the search query,
// or an empty list when nothing is loaded
func (c *ListController) VisibleList() domain.RecipeCollection {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.state.IsLoaded() {
		return domain.RecipeCollection{}
	}
	return search.Filter(c.state.Recipes, c.query)
}

// Subscribe returns a channel that receives the current state and then
// every transition. Slow readers only see the latest state. The returned
// func unsubscribes; the channel is closed on unsubscribe or Close.
func (c *ListController) Subscribe() (<-chan domain.LoadState, func()) {
	ch := make(chan domain.LoadState, 1)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	id := c.nextSubID
	c.nextSubID++
	c.subscribers[id] = ch
	ch <- c.snapshotLocked()
	c.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			if sub, ok := c.subscribers[id]; ok {
				delete(c.subscribers, id)
				close(sub)
			}
		})
	}
}

// Close abandons any in-flight fetch without applying its result, closes
// subscriber channels and waits for the fetch goroutine to return.
// The controller keeps answering reads after Close.
func (c *ListController) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.generation++
	c.cancel()
	for id, sub := range c.subscribers {
		delete(c.subscribers, id)
		close(sub)
	}
	c.mu.Unlock()

	c.wg.Wait()
}

func (c *ListController) isClosed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.closed
}

// setStateLocked stores s and notifies subscribers; c.mu must be held
func (c *ListController) setStateLocked(s domain.LoadState) {
	c.state = s
	snap := c.snapshotLocked()
	for _, sub := range c.subscribers {
		select {
		case sub <- snap:
		default:
			// Drop the stale pending state so the reader sees the latest
			select {
			case <-sub:
			default:
			}
			sub <- snap
		}
	}
}

func (c *ListController) snapshotLocked() domain.LoadState {
	s := c.state
	s.Recipes = s.Recipes.Clone()
	return s
}

func (c *ListController) logOutcome(state domain.LoadState) {
	switch state.Phase {
	case domain.PhaseLoaded:
		c.logger.Info("Recipes loaded", map[string]interface{}{
			"endpoint":   c.endpoint,
			"generation": state.Generation,
			"recipes":    len(state.Recipes),
		})
	case domain.PhaseFailed:
		c.logger.Error("Recipes failed to load", map[string]interface{}{
			"endpoint":    c.endpoint,
			"generation":  state.Generation,
			"kind":        string(coreerrors.KindOf(state.Err)),
			"status_code": coreerrors.StatusCodeOf(state.Err),
			"error":       state.Err.Error(),
		})
	}
}

func (c *ListController) record(state domain.LoadState, started, finished time.Time) {
	if c.recorder == nil {
		return
	}

	rec := domain.LoadRecord{
		Endpoint:    c.endpoint,
		Generation:  state.Generation,
		Phase:       state.Phase.String(),
		RecipeCount: len(state.Recipes),
		StartedAt:   started,
		FinishedAt:  finished,
	}
	if state.Err != nil {
		rec.ErrorKind = string(coreerrors.KindOf(state.Err))
		rec.StatusCode = coreerrors.StatusCodeOf(state.Err)
		rec.Error = state.Err.Error()
	}

	if err := c.recorder.Record(c.baseCtx, rec); err != nil {
		c.logger.Warn("Failed to record load status", map[string]interface{}{
			"endpoint": c.endpoint,
			"error":    err.Error(),
		})
	}
}
