package tui

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/vovakirdan/tui-hangman/internal/hangman"
)

func TestUserDir(t *testing.T) {
	tests := []struct {
		user string
		want string
	}{
		{"alice", "alice"},
		{"bob-42", "bob-42"},
		{"../../etc", "______etc"},
		{"", "anonymous"},
		{"...", "anonymous"},
		{"jürgen", "j_rgen"},
	}

	for _, tt := range tests {
		t.Run(tt.user, func(t *testing.T) {
			if got := userDir(tt.user); got != tt.want {
				t.Errorf("userDir(%q) = %q, want %q", tt.user, got, tt.want)
			}
		})
	}
}

func TestSessionEnvIsolatesSaves(t *testing.T) {
	fs := afero.NewMemMapFs()
	srv := &SSHServer{
		config: SSHServerConfig{SavesRoot: "/srv/hangman"},
		words:  []string{"bottle"},
		fs:     fs,
		logger: log.New(io.Discard),
	}

	alice, err := srv.sessionEnv("alice")
	if err != nil {
		t.Fatalf("sessionEnv(alice) failed: %v", err)
	}
	bob, err := srv.sessionEnv("bob")
	if err != nil {
		t.Fatalf("sessionEnv(bob) failed: %v", err)
	}

	r := hangman.NewRound(hangman.NewSession("bottle"), alice.Saves, nil)
	r.Submit("save")
	if err := r.SaveAs("mine"); err != nil {
		t.Fatalf("SaveAs() failed: %v", err)
	}

	if ok, _ := afero.Exists(fs, "/srv/hangman/alice/mine.yaml"); !ok {
		t.Error("save should land in the user's directory")
	}
	if names, _ := bob.Saves.List(); len(names) != 0 {
		t.Errorf("bob should not see alice's saves, got %v", names)
	}
	if alice.Source == nil || len(alice.Words) != 1 {
		t.Errorf("env should carry the word list and a source: %+v", alice)
	}
}
