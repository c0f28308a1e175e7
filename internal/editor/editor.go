package editor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dbvertexphp/hunger-safari-subadmin/internal/validate"
)

type State int

const (
	StateClosed State = iota
	StateOpen
	StateSubmitting
)

// DefaultDebounce matches the edit-open rate limit of the console: rapid
// repeated clicks on the same row collapse into one seed.
const DefaultDebounce = 300 * time.Millisecond

// Config wires an Editor to its entity: a field validator, the upstream
// write, and the cache merge applied once the write is confirmed.
type Config[D, E any] struct {
	Validate func(D) validate.Errors
	Submit   func(ctx context.Context, id string, draft D) (E, error)
	Merge    func(E)
	Debounce time.Duration
}

// Editor owns one entity's edit draft and walks it through
// Closed → Open(seeded) → Submitting → {Closed, Open+error}. A draft that
// fails validation never reaches Submit.
type Editor[D, E any] struct {
	mu        sync.Mutex
	state     State
	entityID  string
	draft     D
	lastError string

	validate func(D) validate.Errors
	submit   func(ctx context.Context, id string, draft D) (E, error)
	merge    func(E)
	debounce *Debouncer
}

func New[D, E any](cfg Config[D, E]) *Editor[D, E] {
	window := cfg.Debounce
	if window <= 0 {
		window = DefaultDebounce
	}
	return &Editor[D, E]{
		validate: cfg.Validate,
		submit:   cfg.Submit,
		merge:    cfg.Merge,
		debounce: NewDebouncer(window),
	}
}

// Open seeds a draft from the selected row. The seed runs on the trailing
// edge of the debounce window, so a burst of opens produces one seed and
// never races two.
func (e *Editor[D, E]) Open(id string, seed D) {
	e.debounce.Trigger(func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		if e.state == StateSubmitting {
			return
		}
		e.state = StateOpen
		e.entityID = id
		e.draft = seed
		e.lastError = ""
	})
}

func (e *Editor[D, E]) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Draft returns the current draft and whether an edit is open.
func (e *Editor[D, E]) Draft() (D, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == StateClosed {
		var zero D
		return zero, false
	}
	return e.draft, true
}

func (e *Editor[D, E]) EntityID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.entityID
}

// LastError is the upstream failure from the most recent submit, kept so
// the form can show it next to the preserved values.
func (e *Editor[D, E]) LastError() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastError
}

// Close discards the draft without submitting.
func (e *Editor[D, E]) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	var zero D
	e.state = StateClosed
	e.entityID = ""
	e.draft = zero
	e.lastError = ""
}

// Submit replaces the open draft with the user's values and pushes it
// upstream. Validation failure keeps the editor open with the entered
// values and performs no network call. Upstream failure also keeps the
// draft, recording the error. Success merges the confirmed entity into the
// owning cache and closes the editor.
func (e *Editor[D, E]) Submit(ctx context.Context, draft D) (E, validate.Errors, error) {
	var zero E

	e.mu.Lock()
	switch e.state {
	case StateClosed:
		e.mu.Unlock()
		return zero, nil, fmt.Errorf("no edit in progress")
	case StateSubmitting:
		e.mu.Unlock()
		return zero, nil, fmt.Errorf("a submit is already in progress")
	}
	e.draft = draft

	if errs := e.validate(draft); len(errs) > 0 {
		e.mu.Unlock()
		return zero, errs, nil
	}

	e.state = StateSubmitting
	id := e.entityID
	e.mu.Unlock()

	entity, err := e.submit(ctx, id, draft)

	e.mu.Lock()
	defer e.mu.Unlock()
	if err != nil {
		e.state = StateOpen
		e.lastError = err.Error()
		return zero, nil, err
	}

	e.merge(entity)
	var zeroDraft D
	e.state = StateClosed
	e.entityID = ""
	e.draft = zeroDraft
	e.lastError = ""
	return entity, nil, nil
}
