package hangman

import (
	"errors"
	"sort"
	"testing"
)

// memoryStore is an in-memory SnapshotStore.
type memoryStore struct {
	slots map[string]Snapshot
}

func newMemoryStore() *memoryStore {
	return &memoryStore{slots: make(map[string]Snapshot)}
}

func (m *memoryStore) Save(name string, snap Snapshot) error {
	if name == "" {
		return ErrInvalidSaveName
	}
	m.slots[name] = snap
	return nil
}

func (m *memoryStore) Load(name string) (Snapshot, error) {
	snap, ok := m.slots[name]
	if !ok {
		return Snapshot{}, ErrUnknownSaveSlot
	}
	return snap, nil
}

func (m *memoryStore) List() ([]string, error) {
	names := make([]string, 0, len(m.slots))
	for name := range m.slots {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// recorder collects every presented view.
type recorder struct {
	views []View
}

func (r *recorder) Present(v View) {
	r.views = append(r.views, v)
}

func TestRoundPresentsEveryTransition(t *testing.T) {
	rec := &recorder{}
	r := NewRound(NewSession("grape"), newMemoryStore(), rec)

	if len(rec.views) != 1 {
		t.Fatalf("initial state should be presented once, got %d views", len(rec.views))
	}

	r.Submit("g")
	r.Submit("zz") // rejected
	r.Submit("z")

	if len(rec.views) != 4 {
		t.Fatalf("expected 4 views, got %d", len(rec.views))
	}
	last := rec.views[3]
	if last.Revealed != "g____" || last.Remaining != 5 || string(last.WrongLetters) != "z" {
		t.Errorf("last view = %+v", last)
	}
}

func TestRoundSaveAndResume(t *testing.T) {
	store := newMemoryStore()
	r := NewRound(NewSession("grape"), store, nil)

	if err := r.SaveAs("early"); !errors.Is(err, ErrNotSaving) {
		t.Fatalf("SaveAs before save command: expected ErrNotSaving, got %v", err)
	}

	for _, in := range []string{"g", "z", "save"} {
		if _, err := r.Submit(in); err != nil {
			t.Fatalf("Submit(%q) failed: %v", in, err)
		}
	}

	if err := r.SaveAs(""); !errors.Is(err, ErrInvalidSaveName) {
		t.Fatalf("expected ErrInvalidSaveName, got %v", err)
	}
	if err := r.SaveAs("slot_1"); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}

	slots, err := r.Slots()
	if err != nil || len(slots) != 1 || slots[0] != "slot_1" {
		t.Fatalf("Slots() = %v, %v", slots, err)
	}

	rec := &recorder{}
	resumed, err := ResumeRound(store, "slot_1", rec)
	if err != nil {
		t.Fatalf("ResumeRound failed: %v", err)
	}

	v := rec.views[0]
	if v.Revealed != "g____" || v.Remaining != 5 || string(v.WrongLetters) != "z" || v.Status != StatusPlaying {
		t.Errorf("resumed view = %+v", v)
	}
	if resumed.Session().ID() != r.Session().ID() {
		t.Error("resumed round should keep the session id")
	}

	if _, err := resumed.Submit("z"); !errors.Is(err, ErrDuplicateGuess) {
		t.Errorf("wrong letters should survive the round trip, got %v", err)
	}
}

func TestResumeRoundErrors(t *testing.T) {
	store := newMemoryStore()

	if _, err := ResumeRound(store, "missing", nil); !errors.Is(err, ErrUnknownSaveSlot) {
		t.Errorf("expected ErrUnknownSaveSlot, got %v", err)
	}

	store.slots["broken"] = Snapshot{Version: SnapshotVersion, SecretWord: "grape", RevealedForm: "g"}
	if _, err := ResumeRound(store, "broken", nil); !errors.Is(err, ErrCorruptSave) {
		t.Errorf("expected ErrCorruptSave, got %v", err)
	}
}

func TestRoundWithoutStore(t *testing.T) {
	r := NewRound(NewSession("grape"), nil, nil)
	r.Submit("save")

	if err := r.SaveAs("slot"); err == nil {
		t.Error("SaveAs without storage should fail")
	}
	if slots, err := r.Slots(); err != nil || slots != nil {
		t.Errorf("Slots() = %v, %v", slots, err)
	}
}

// history counts finished rounds.
type history struct {
	finished []View
	err      error
}

func (h *history) RecordRound(v View) error {
	h.finished = append(h.finished, v)
	return h.err
}

func TestRoundRecordsFinishedRounds(t *testing.T) {
	tests := []struct {
		name    string
		inputs  []string
		records int
		status  Status
	}{
		{"won", []string{"g", "r", "a", "p", "e"}, 1, StatusWon},
		{"lost", []string{"b", "c", "d", "f", "h", "i"}, 1, StatusLost},
		{"saved", []string{"g", "save"}, 0, StatusSaved},
		{"rejections only", []string{"!", "zz"}, 0, StatusPlaying},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &history{err: errors.New("disk full")}
			r := NewRound(NewSession("grape"), nil, nil)
			r.SetRecorder(h)

			for _, in := range tt.inputs {
				r.Submit(in)
			}
			r.Submit("x") // after the end this is rejected and not recorded again

			if len(h.finished) != tt.records {
				t.Fatalf("recorded %d rounds, want %d", len(h.finished), tt.records)
			}
			if tt.records == 1 && h.finished[0].Secret != "grape" {
				t.Errorf("recorded view should carry the secret, got %+v", h.finished[0])
			}
			if got := r.Session().Status(); got != tt.status && tt.status != StatusPlaying {
				t.Errorf("status = %v, want %v", got, tt.status)
			}
		})
	}
}
