package game

import (
	"testing"

	cfg "github.com/automoto/sunsprout/config"
)

func TestSnapshotCopiesRoundState(t *testing.T) {
	r := newStartedRound(t, 11)
	r.Tick(frame)

	s := r.Snapshot()
	if s.State != cfg.RoundRunning {
		t.Fatalf("state = %v, want Running", s.State)
	}
	if s.Width != testWidth || s.Height != testHeight {
		t.Fatalf("playfield = %vx%v", s.Width, s.Height)
	}
	if n := len(s.Plants); n < cfg.Plant.MinCount || n > cfg.Plant.MaxCount {
		t.Fatalf("plants = %d", n)
	}
	if s.Orb == nil {
		t.Fatal("first orb should be in the snapshot")
	}
	if s.Score != 0 || s.SuperReady {
		t.Fatalf("fresh round meters: score %d ready %v", s.Score, s.SuperReady)
	}

	s.Plants[0].Thirst = -50
	s.Orb.Position.Y = 9999
	again := r.Snapshot()
	if again.Plants[0].Thirst == -50 || again.Orb.Position.Y == 9999 {
		t.Fatal("snapshot shares memory with the round")
	}
}

func TestSnapshotBeforeStart(t *testing.T) {
	r := NewRound(Options{Seed: 3, Width: testWidth, Height: testHeight})
	s := r.Snapshot()
	if s.State != cfg.RoundNotStarted {
		t.Fatalf("state = %v", s.State)
	}
	if len(s.Plants) != 0 || s.Orb != nil || len(s.Drops) != 0 {
		t.Fatalf("unstarted round should be empty: %+v", s)
	}
}
