package hangman

import "fmt"

// Presenter receives the session view after every transition. It only reads;
// the session is never exposed to it.
type Presenter interface {
	Present(v View)
}

// PresenterFunc adapts a function to the Presenter interface.
type PresenterFunc func(v View)

// Present calls f(v).
func (f PresenterFunc) Present(v View) {
	f(v)
}

// SnapshotStore persists snapshots in named save slots.
type SnapshotStore interface {
	Save(name string, snap Snapshot) error
	Load(name string) (Snapshot, error)
	List() ([]string, error)
}

// Recorder is told about every round that ends in a win or a loss.
type Recorder interface {
	RecordRound(v View) error
}

// Round composes a session with its storage and presentation collaborators.
// The input loop feeds it lines; the round keeps the presenter up to date.
type Round struct {
	session   *Session
	store     SnapshotStore
	presenter Presenter
	recorder  Recorder
}

// NewRound wraps a session and presents its initial state.
// store may be nil, in which case SaveAs fails.
func NewRound(session *Session, store SnapshotStore, presenter Presenter) *Round {
	if presenter == nil {
		presenter = PresenterFunc(func(View) {})
	}
	r := &Round{
		session:   session,
		store:     store,
		presenter: presenter,
	}
	r.presenter.Present(session.View())
	return r
}

// ResumeRound loads the named slot and continues the saved round.
func ResumeRound(store SnapshotStore, name string, presenter Presenter) (*Round, error) {
	snap, err := store.Load(name)
	if err != nil {
		return nil, err
	}
	session, err := Restore(snap)
	if err != nil {
		return nil, fmt.Errorf("slot %q: %w", name, err)
	}
	return NewRound(session, store, presenter), nil
}

// Submit passes one line of input to the session and presents the result.
// Rejected input is presented too so the front end can re-prompt.
func (r *Round) Submit(line string) (Result, error) {
	res, err := r.session.Submit(line)
	view := r.session.View()
	r.presenter.Present(view)
	if err == nil && r.recorder != nil && (res.Status == StatusWon || res.Status == StatusLost) {
		// Best-effort: history must not break the round.
		_ = r.recorder.RecordRound(view)
	}
	return res, err
}

// SetRecorder registers rec to be told about the finished round.
func (r *Round) SetRecorder(rec Recorder) {
	r.recorder = rec
}

// SaveAs writes the session to the named slot. The session must have
// accepted the save command first.
func (r *Round) SaveAs(name string) error {
	if r.session.Status() != StatusSaved {
		return ErrNotSaving
	}
	if r.store == nil {
		return fmt.Errorf("hangman: no save storage configured")
	}
	return r.store.Save(name, r.session.Snapshot())
}

// Slots lists the existing save slots.
func (r *Round) Slots() ([]string, error) {
	if r.store == nil {
		return nil, nil
	}
	return r.store.List()
}

// Session returns the underlying session.
func (r *Round) Session() *Session {
	return r.session
}
