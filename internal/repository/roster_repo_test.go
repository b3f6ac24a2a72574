package repository

import (
	"encoding/json"
	"testing"

	"focusapp/internal/models"
	"focusapp/internal/storage"
)

func newTestRepo() (*RosterRepository, *storage.MemoryStore, *storage.MemoryStore) {
	local := storage.NewMemoryStore()
	session := storage.NewMemoryStore()
	return NewRosterRepository(local, session), local, session
}

func TestLoadUsersMissing(t *testing.T) {
	repo, _, _ := newTestRepo()

	users, err := repo.LoadUsers()
	if err != nil {
		t.Fatalf("LoadUsers() error: %v", err)
	}
	if users != nil {
		t.Errorf("LoadUsers() on empty store = %v, want nil", users)
	}
}

func TestLoadUsersMalformed(t *testing.T) {
	repo, local, _ := newTestRepo()
	if err := local.Set("users", "{not json"); err != nil {
		t.Fatal(err)
	}

	if _, err := repo.LoadUsers(); err == nil {
		t.Error("LoadUsers() must fail on malformed JSON")
	}
}

func TestRosterRoundTrip(t *testing.T) {
	repo, _, _ := newTestRepo()

	user := models.DefaultUser()
	user.Coins = 730
	user.Diamonds = 12
	user.Streak = 14
	user.OwnedFrames = []string{models.DefaultFrameID, "frame_3", "frame_12"}

	if err := repo.SaveUsers([]models.User{user}); err != nil {
		t.Fatalf("SaveUsers() error: %v", err)
	}

	restored, err := repo.LoadUsers()
	if err != nil {
		t.Fatalf("LoadUsers() error: %v", err)
	}
	if len(restored) != 1 {
		t.Fatalf("restored %d users, want 1", len(restored))
	}

	// Economy fields must survive the round trip byte-for-byte as JSON.
	before, _ := json.Marshal(user)
	after, _ := json.Marshal(restored[0])
	if string(before) != string(after) {
		t.Errorf("round trip changed the record:\nbefore %s\nafter  %s", before, after)
	}
}

func TestSessionIDPlacement(t *testing.T) {
	t.Run("remember me uses the long-lived store", func(t *testing.T) {
		repo, local, session := newTestRepo()
		if err := repo.SaveSessionID("student-1", true); err != nil {
			t.Fatal(err)
		}
		if _, ok, _ := local.Get("sessionId"); !ok {
			t.Error("session id missing from long-lived store")
		}
		if _, ok, _ := session.Get("sessionId"); ok {
			t.Error("session id must not also be in the short-lived store")
		}
	})

	t.Run("without remember me uses the short-lived store", func(t *testing.T) {
		repo, local, session := newTestRepo()
		if err := repo.SaveSessionID("student-1", false); err != nil {
			t.Fatal(err)
		}
		if _, ok, _ := local.Get("sessionId"); ok {
			t.Error("session id must not be in the long-lived store")
		}
		if _, ok, _ := session.Get("sessionId"); !ok {
			t.Error("session id missing from short-lived store")
		}
	})
}

func TestUpdateSessionID(t *testing.T) {
	t.Run("overwrites where a session exists", func(t *testing.T) {
		repo, local, _ := newTestRepo()
		repo.SaveSessionID("student-1", true)

		if err := repo.UpdateSessionID("student-2"); err != nil {
			t.Fatal(err)
		}
		id, _, _ := local.Get("sessionId")
		if id != "student-2" {
			t.Errorf("session id = %q, want student-2", id)
		}
	})

	t.Run("never creates a session", func(t *testing.T) {
		repo, local, session := newTestRepo()

		if err := repo.UpdateSessionID("student-2"); err != nil {
			t.Fatal(err)
		}
		if _, ok, _ := local.Get("sessionId"); ok {
			t.Error("UpdateSessionID created a session in the long-lived store")
		}
		if _, ok, _ := session.Get("sessionId"); ok {
			t.Error("UpdateSessionID created a session in the short-lived store")
		}
	})
}

func TestClearSessionID(t *testing.T) {
	repo, local, session := newTestRepo()
	local.Set("sessionId", "student-1")
	session.Set("sessionId", "student-1")
	repo.SaveUsers([]models.User{models.DefaultUser()})

	if err := repo.ClearSessionID(); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := local.Get("sessionId"); ok {
		t.Error("long-lived session id survived ClearSessionID")
	}
	if _, ok, _ := session.Get("sessionId"); ok {
		t.Error("short-lived session id survived ClearSessionID")
	}
	// Logout never clears the roster.
	if users, err := repo.LoadUsers(); err != nil || len(users) != 1 {
		t.Errorf("roster lost after ClearSessionID: users=%v err=%v", users, err)
	}
}
