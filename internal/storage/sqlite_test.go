package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRecent(t *testing.T) {
	store := openTestStore(t)

	rounds := []RoundRecord{
		{SessionID: "s1", Program: "rinzler", Winner: "ai", HumanScore: 0, AIScore: 1, Ticks: 40, Duration: 1500 * time.Millisecond},
		{SessionID: "s1", Program: "rinzler", Winner: "human", HumanScore: 1, AIScore: 1, Ticks: 95},
		{SessionID: "s2", Program: "clu", Winner: "ai", HumanScore: 0, AIScore: 1, Ticks: 12},
	}
	for _, r := range rounds {
		if _, err := store.SaveRound(r); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	all, err := store.RecentRounds("", 10)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 rounds, got %d", len(all))
	}
	// Newest first
	if all[0].Program != "clu" {
		t.Errorf("Expected newest round to be clu, got %s", all[0].Program)
	}
	if all[2].Duration != 1500*time.Millisecond {
		t.Errorf("Expected duration 1.5s, got %v", all[2].Duration)
	}
	if all[2].RoundID == "" {
		t.Error("Expected generated round ID")
	}

	rinzler, err := store.RecentRounds("rinzler", 10)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(rinzler) != 2 {
		t.Errorf("Expected 2 rinzler rounds, got %d", len(rinzler))
	}
}

func TestStoreRecentLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRound(RoundRecord{SessionID: "s", Program: "clu", Winner: "ai", Ticks: i})
	}

	got, err := store.RecentRounds("clu", 3)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Expected 3 rounds with limit, got %d", len(got))
	}
	if got[0].Ticks != 4 || got[2].Ticks != 2 {
		t.Errorf("Rounds not in expected order: %+v", got)
	}
}

func TestStoreSaveRoundRejectsWinner(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRound(RoundRecord{Program: "clu", Winner: "draw"}); err == nil {
		t.Error("Expected error for invalid winner")
	}
}

func TestStoreDuplicateRoundID(t *testing.T) {
	store := openTestStore(t)

	r := RoundRecord{RoundID: "fixed", SessionID: "s", Program: "clu", Winner: "ai"}
	if _, err := store.SaveRound(r); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
	if _, err := store.SaveRound(r); err == nil {
		t.Error("Expected error for duplicate round ID")
	}
}

func TestStoreSessionRounds(t *testing.T) {
	store := openTestStore(t)

	store.SaveRound(RoundRecord{SessionID: "a", Program: "clu", Winner: "ai", AIScore: 1})
	store.SaveRound(RoundRecord{SessionID: "b", Program: "clu", Winner: "ai", AIScore: 1})
	store.SaveRound(RoundRecord{SessionID: "a", Program: "clu", Winner: "human", HumanScore: 1, AIScore: 1})

	got, err := store.SessionRounds("a")
	if err != nil {
		t.Fatalf("SessionRounds() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 rounds, got %d", len(got))
	}
	if got[0].Winner != "ai" || got[1].Winner != "human" {
		t.Errorf("Rounds not in play order: %+v", got)
	}
}

func TestStoreClearRounds(t *testing.T) {
	store := openTestStore(t)

	store.SaveRound(RoundRecord{SessionID: "s", Program: "clu", Winner: "ai"})
	store.SaveRound(RoundRecord{SessionID: "s", Program: "rinzler", Winner: "ai"})

	if err := store.ClearRounds("clu"); err != nil {
		t.Fatalf("ClearRounds() failed: %v", err)
	}

	clu, _ := store.RecentRounds("clu", 10)
	if len(clu) != 0 {
		t.Errorf("Expected 0 clu rounds after clear, got %d", len(clu))
	}
	rinzler, _ := store.RecentRounds("rinzler", 10)
	if len(rinzler) != 1 {
		t.Errorf("Rinzler rounds should not be affected by clearing clu")
	}
}

func TestStoreProgramStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetProgramStats("clu")
	if err != nil {
		t.Fatalf("GetProgramStats() failed: %v", err)
	}
	if empty.Rounds != 0 || empty.WinRate() != 0 {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.SaveRound(RoundRecord{SessionID: "s", Program: "clu", Winner: "ai", Ticks: 10})
	store.SaveRound(RoundRecord{SessionID: "s", Program: "clu", Winner: "human", Ticks: 80})
	store.SaveRound(RoundRecord{SessionID: "s", Program: "clu", Winner: "ai", Ticks: 30})
	store.SaveRound(RoundRecord{SessionID: "s", Program: "clu", Winner: "human", Ticks: 20})

	stats, err := store.GetProgramStats("clu")
	if err != nil {
		t.Fatalf("GetProgramStats() failed: %v", err)
	}
	if stats.Rounds != 4 || stats.HumanWins != 2 || stats.AIWins != 2 {
		t.Errorf("Unexpected counts: %+v", stats)
	}
	if stats.LongestTick != 80 {
		t.Errorf("Expected longest round 80 ticks, got %d", stats.LongestTick)
	}
	if stats.WinRate() != 0.5 {
		t.Errorf("Expected win rate 0.5, got %v", stats.WinRate())
	}

	all, err := store.GetAllProgramStats()
	if err != nil {
		t.Fatalf("GetAllProgramStats() failed: %v", err)
	}
	if len(all) != 1 || all["clu"] == nil || all["clu"].Rounds != 4 {
		t.Errorf("Unexpected aggregate stats: %+v", all)
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
