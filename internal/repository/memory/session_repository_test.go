package memory

import (
	"testing"
	"time"

	"portfolio-chat-be/pkg/store"
)

func TestSessionRepositoryLifecycle(t *testing.T) {
	repo := NewSessionRepository()

	if _, found := repo.Get("a"); found {
		t.Fatal("Get on empty repository reported a session")
	}

	repo.Save(store.NewSession("a"))
	repo.Save(store.NewSession("b"))

	if repo.Count() != 2 {
		t.Errorf("Count() = %d, want 2", repo.Count())
	}

	sess, found := repo.Get("a")
	if !found || sess.ID != "a" {
		t.Fatalf("Get(a) = %v, %v", sess, found)
	}

	repo.Delete("a")
	if _, found := repo.Get("a"); found {
		t.Error("session still present after Delete")
	}
	if repo.Count() != 1 {
		t.Errorf("Count() = %d after delete, want 1", repo.Count())
	}
}

func TestSessionRepositoryGetRefreshesIdleClock(t *testing.T) {
	repo := newSessionRepository(60*time.Millisecond, time.Minute)

	sess := store.NewSession("a")
	sess.Append("user", "hello")
	repo.Save(sess)

	// Read twice within the window; each read pushes expiry out, so the
	// session outlives the original deadline.
	for i := 0; i < 2; i++ {
		time.Sleep(40 * time.Millisecond)
		got, found := repo.Get("a")
		if !found {
			t.Fatalf("session expired despite activity (read %d)", i+1)
		}
		if len(got.History) != 1 {
			t.Fatalf("history lost on refresh: %d turns", len(got.History))
		}
	}

	// A session with no activity at all does age out.
	repo.Save(store.NewSession("idle"))
	time.Sleep(80 * time.Millisecond)
	if _, found := repo.Get("idle"); found {
		t.Error("fully idle session was not evicted")
	}
}

func TestSessionRepositorySaveReplaces(t *testing.T) {
	repo := NewSessionRepository()

	first := store.NewSession("a")
	first.Append("user", "old history")
	repo.Save(first)

	// Re-connect with the same id replaces the session, no merge.
	repo.Save(store.NewSession("a"))

	sess, found := repo.Get("a")
	if !found {
		t.Fatal("session missing after replace")
	}
	if len(sess.History) != 0 {
		t.Errorf("replaced session carried %d old turns", len(sess.History))
	}
}
