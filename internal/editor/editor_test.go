package editor

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dbvertexphp/hunger-safari-subadmin/internal/validate"
)

type noteDraft struct {
	Title string
	Body  string
}

type note struct {
	ID    string
	Title string
}

// fakeBackend stands in for the upstream write and the owning cache.
type fakeBackend struct {
	submits atomic.Int32
	merged  atomic.Int32
	fail    error
}

func (f *fakeBackend) submit(ctx context.Context, id string, d noteDraft) (*note, error) {
	f.submits.Add(1)
	if f.fail != nil {
		return nil, f.fail
	}
	return &note{ID: id, Title: d.Title}, nil
}

func (f *fakeBackend) merge(*note) {
	f.merged.Add(1)
}

func validateNote(d noteDraft) validate.Errors {
	errs := validate.Errors{}
	if d.Title == "" {
		errs["title"] = "Title is required."
	}
	return errs
}

func newNoteEditor(backend *fakeBackend) *Editor[noteDraft, *note] {
	return New(Config[noteDraft, *note]{
		Validate: validateNote,
		Submit:   backend.submit,
		Merge:    backend.merge,
		Debounce: time.Millisecond,
	})
}

func openAndWait(t *testing.T, e *Editor[noteDraft, *note], id string, seed noteDraft) {
	t.Helper()
	e.Open(id, seed)
	deadline := time.Now().Add(time.Second)
	for e.State() != StateOpen {
		if time.Now().After(deadline) {
			t.Fatal("editor never opened")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestOpenSeedsDraft(t *testing.T) {
	e := newNoteEditor(&fakeBackend{})
	openAndWait(t, e, "n1", noteDraft{Title: "Groceries"})

	draft, ok := e.Draft()
	if !ok {
		t.Fatal("expected an open draft")
	}
	if draft.Title != "Groceries" {
		t.Fatalf("expected seeded title, got %q", draft.Title)
	}
	if e.EntityID() != "n1" {
		t.Fatalf("expected entity n1, got %q", e.EntityID())
	}
}

func TestSubmitWithoutOpenFails(t *testing.T) {
	backend := &fakeBackend{}
	e := newNoteEditor(backend)

	_, _, err := e.Submit(context.Background(), noteDraft{Title: "Groceries"})
	if err == nil {
		t.Fatal("expected an error for a closed editor")
	}
	if n := backend.submits.Load(); n != 0 {
		t.Fatalf("expected no submit calls, got %d", n)
	}
}

func TestInvalidDraftNeverReachesSubmit(t *testing.T) {
	backend := &fakeBackend{}
	e := newNoteEditor(backend)
	openAndWait(t, e, "n1", noteDraft{Title: "Groceries"})

	_, fieldErrs, err := e.Submit(context.Background(), noteDraft{Title: ""})
	if err != nil {
		t.Fatal(err)
	}
	if fieldErrs["title"] == "" {
		t.Fatalf("expected a title error, got %v", fieldErrs)
	}
	if n := backend.submits.Load(); n != 0 {
		t.Fatalf("expected no submit calls for an invalid draft, got %d", n)
	}
	if e.State() != StateOpen {
		t.Fatal("editor must stay open after a validation failure")
	}

	// The entered values are preserved for correction.
	draft, _ := e.Draft()
	if draft.Title != "" {
		t.Fatalf("expected the rejected draft to be kept, got %+v", draft)
	}
}

func TestSubmitSuccessMergesAndCloses(t *testing.T) {
	backend := &fakeBackend{}
	e := newNoteEditor(backend)
	openAndWait(t, e, "n1", noteDraft{Title: "Groceries"})

	updated, fieldErrs, err := e.Submit(context.Background(), noteDraft{Title: "Weekly Groceries"})
	if err != nil || len(fieldErrs) > 0 {
		t.Fatalf("expected clean submit, got errs=%v err=%v", fieldErrs, err)
	}
	if updated.Title != "Weekly Groceries" {
		t.Fatalf("expected confirmed entity, got %+v", updated)
	}
	if n := backend.merged.Load(); n != 1 {
		t.Fatalf("expected one merge, got %d", n)
	}
	if e.State() != StateClosed {
		t.Fatal("editor must close after a confirmed submit")
	}
	if _, ok := e.Draft(); ok {
		t.Fatal("closed editor must not expose a draft")
	}
}

func TestSubmitFailureKeepsDraftAndRecordsError(t *testing.T) {
	backend := &fakeBackend{fail: errors.New("database unavailable")}
	e := newNoteEditor(backend)
	openAndWait(t, e, "n1", noteDraft{Title: "Groceries"})

	_, _, err := e.Submit(context.Background(), noteDraft{Title: "Weekly Groceries"})
	if err == nil {
		t.Fatal("expected the upstream failure to surface")
	}
	if e.State() != StateOpen {
		t.Fatal("editor must stay open after an upstream failure")
	}
	if e.LastError() != "database unavailable" {
		t.Fatalf("expected recorded error, got %q", e.LastError())
	}
	if n := backend.merged.Load(); n != 0 {
		t.Fatalf("expected no merge on failure, got %d", n)
	}

	draft, _ := e.Draft()
	if draft.Title != "Weekly Groceries" {
		t.Fatalf("expected entered values kept, got %+v", draft)
	}
}

func TestCloseDiscardsDraft(t *testing.T) {
	e := newNoteEditor(&fakeBackend{})
	openAndWait(t, e, "n1", noteDraft{Title: "Groceries"})

	e.Close()
	if e.State() != StateClosed {
		t.Fatal("expected closed state")
	}
	if e.EntityID() != "" {
		t.Fatalf("expected entity cleared, got %q", e.EntityID())
	}
}

// A burst of opens must produce exactly one seed, from the last call.
func TestOpenBurstCoalesces(t *testing.T) {
	backend := &fakeBackend{}
	e := New(Config[noteDraft, *note]{
		Validate: validateNote,
		Submit:   backend.submit,
		Merge:    backend.merge,
		Debounce: 50 * time.Millisecond,
	})

	e.Open("n1", noteDraft{Title: "first"})
	e.Open("n2", noteDraft{Title: "second"})
	e.Open("n3", noteDraft{Title: "third"})

	deadline := time.Now().Add(time.Second)
	for e.State() != StateOpen {
		if time.Now().After(deadline) {
			t.Fatal("editor never opened")
		}
		time.Sleep(time.Millisecond)
	}

	if e.EntityID() != "n3" {
		t.Fatalf("expected the last open to win, got %q", e.EntityID())
	}
	draft, _ := e.Draft()
	if draft.Title != "third" {
		t.Fatalf("expected the last seed, got %+v", draft)
	}
}
