package transfers

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Veraticus/sideline/internal/common"
	"github.com/Veraticus/sideline/internal/model"
)

// Phase is the lifecycle position of a Board.
type Phase int

// Board phases.
const (
	Uninitialized Phase = iota
	Loading
	Ready
	Saving
)

func (p Phase) String() string {
	switch p {
	case Uninitialized:
		return "uninitialized"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Saving:
		return "saving"
	default:
		return "unknown"
	}
}

// State is a snapshot of a Board.
type State struct {
	Err    error
	Vector model.ToggleVector
	Phase  Phase
}

// Message returns the error line to display, or "".
func (s State) Message() string {
	return common.UserMessage(s.Err)
}

// Board owns the in-memory vector. Toggles apply immediately and are then
// persisted in the background; a failed save leaves the vector in place.
type Board struct {
	store     Store
	logger    *slog.Logger
	observers map[int]func(State)
	state     State
	wg        sync.WaitGroup
	mu        sync.Mutex
	saveMu    sync.Mutex
	nextID    int
	pending   int
}

// NewBoard creates a board backed by store. A nil logger uses slog.Default.
func NewBoard(store Store, logger *slog.Logger) *Board {
	if logger == nil {
		logger = slog.Default()
	}
	return &Board{
		store:     store,
		logger:    logger,
		observers: make(map[int]func(State)),
	}
}

// State returns the current snapshot.
func (b *Board) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Vector returns the current in-memory vector.
func (b *Board) Vector() model.ToggleVector {
	return b.State().Vector
}

// Subscribe registers fn to receive every state change. Observers are called
// without the board lock held, on whichever goroutine made the change.
func (b *Board) Subscribe(fn func(State)) (unsubscribe func()) {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.observers[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.observers, id)
		b.mu.Unlock()
	}
}

// Load reads the persisted vector. Any failure falls back to the all-false
// vector with the error kept on the returned state.
func (b *Board) Load(ctx context.Context) State {
	b.update(func(s *State) {
		s.Phase = Loading
	})

	v, err := b.store.Load(ctx)
	if err != nil {
		b.logger.Warn("failed to load transfer state, using defaults", "error", err)
		v = model.ToggleVector{}
	}

	return b.update(func(s *State) {
		s.Vector = v
		s.Err = err
		s.Phase = Ready
	})
}

// Toggle flips one slot, notifies observers, and starts saving the result.
// The returned task resolves to the vector that was written. An index outside
// 0..8 is rejected before anything changes.
func (b *Board) Toggle(ctx context.Context, index int) (model.ToggleVector, *common.Task[model.ToggleVector], error) {
	b.mu.Lock()
	v, err := b.state.Vector.Toggle(index)
	if err != nil {
		b.mu.Unlock()
		return b.state.Vector, nil, err
	}
	b.state.Vector = v
	b.state.Phase = Saving
	b.pending++
	b.wg.Add(1)
	snapshot, observers := b.state, b.observersLocked()
	b.mu.Unlock()

	notify(observers, snapshot)

	task := common.Go(ctx, func(ctx context.Context) (model.ToggleVector, error) {
		defer b.wg.Done()
		return b.save(ctx)
	})
	return v, task, nil
}

// Wait blocks until every save started so far has finished.
func (b *Board) Wait() {
	b.wg.Wait()
}

// save writes whatever vector is newest when it gets its turn, so a burst of
// toggles never leaves an older vector on disk.
func (b *Board) save(ctx context.Context) (model.ToggleVector, error) {
	b.saveMu.Lock()
	defer b.saveMu.Unlock()

	latest := b.State().Vector
	err := b.store.Save(ctx, latest)
	if err != nil {
		b.logger.Error("failed to save transfer state", "error", err, "vector", latest.String())
	}

	b.update(func(s *State) {
		b.pending--
		s.Err = err
		if b.pending == 0 {
			s.Phase = Ready
		}
	})
	return latest, err
}

func (b *Board) update(fn func(s *State)) State {
	b.mu.Lock()
	fn(&b.state)
	snapshot, observers := b.state, b.observersLocked()
	b.mu.Unlock()

	notify(observers, snapshot)
	return snapshot
}

func (b *Board) observersLocked() []func(State) {
	observers := make([]func(State), 0, len(b.observers))
	for _, fn := range b.observers {
		observers = append(observers, fn)
	}
	return observers
}

func notify(observers []func(State), s State) {
	for _, fn := range observers {
		fn(s)
	}
}
