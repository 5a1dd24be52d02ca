package ledger

import (
	"io"
	"log/slog"
	"testing"

	"github.com/pixelfilm44/StuntFrogsRunner-sub005/components"
)

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	return New(4, 3, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRoundTripConservation(t *testing.T) {
	l := newTestLedger(t)
	if err := l.SetInventory(components.BuffVest, 4, 0); err != nil {
		t.Fatalf("set inventory: %v", err)
	}

	consumePerRun := []int{1, 2, 0, 1}
	total := 0
	for run, k := range consumePerRun {
		loaded, err := l.Load()
		if err != nil {
			t.Fatalf("run %d: load: %v", run, err)
		}
		if k > loaded[components.BuffVest] {
			t.Fatalf("run %d: cannot consume %d of %d loaded", run, k, loaded[components.BuffVest])
		}

		var final [components.NumBuffKinds]int
		final[components.BuffVest] = loaded[components.BuffVest] - k
		if err := l.Settle(final); err != nil {
			t.Fatalf("run %d: settle: %v", run, err)
		}
		total += k

		if got := l.TotalUnits(components.BuffVest); got != 4-total {
			t.Fatalf("run %d: expected %d units in existence, got %d", run, 4-total, got)
		}
	}
}

func TestLoadedNeverExceedsPerRunCap(t *testing.T) {
	l := newTestLedger(t)
	if err := l.SetInventory(components.BuffHoney, 9, 0); err != nil {
		t.Fatalf("set inventory: %v", err)
	}

	loaded, err := l.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded[components.BuffHoney] != 3 {
		t.Errorf("expected per-run cap of 3, got %d", loaded[components.BuffHoney])
	}
}

func TestBonusGrantClampsToZero(t *testing.T) {
	l := newTestLedger(t)
	if err := l.SetInventory(components.BuffSwatter, 2, 0); err != nil {
		t.Fatalf("set inventory: %v", err)
	}

	loaded, err := l.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	// A rescue granted extra swatters mid-run: final exceeds loaded.
	var final [components.NumBuffKinds]int
	final[components.BuffSwatter] = loaded[components.BuffSwatter] + 2
	if err := l.Settle(final); err != nil {
		t.Fatalf("settle: %v", err)
	}

	// Bonus buffs were never drawn from inventory.
	if got := l.TotalUnits(components.BuffSwatter); got != 2 {
		t.Errorf("expected inventory unchanged at 2, got %d", got)
	}
}

func TestDoubleLoadRejected(t *testing.T) {
	l := newTestLedger(t)
	if _, err := l.Load(); err != nil {
		t.Fatalf("first load: %v", err)
	}
	if _, err := l.Load(); err == nil {
		t.Fatal("expected error loading over an unsettled run")
	}
}

func TestEnsureSettledRecoversLeakedRun(t *testing.T) {
	l := newTestLedger(t)
	if err := l.SetInventory(components.BuffVest, 4, 0); err != nil {
		t.Fatalf("set inventory: %v", err)
	}

	loaded, err := l.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	// The run terminated abnormally: no explicit settle fired. The recorded
	// counts say one vest was used.
	var final [components.NumBuffKinds]int
	final[components.BuffVest] = loaded[components.BuffVest] - 1
	if err := l.EnsureSettled(final); err != nil {
		t.Fatalf("ensure settled: %v", err)
	}
	if l.State() != Settled {
		t.Fatalf("expected settled state, got %s", l.State())
	}
	if got := l.TotalUnits(components.BuffVest); got != 3 {
		t.Errorf("expected 3 units after recovery, got %d", got)
	}

	// Idempotent when nothing is loaded.
	if err := l.EnsureSettled(final); err != nil {
		t.Fatalf("second ensure settled: %v", err)
	}
}

func TestSettleWithoutLoadRejected(t *testing.T) {
	l := newTestLedger(t)
	var final [components.NumBuffKinds]int
	if err := l.Settle(final); err == nil {
		t.Fatal("expected error settling while idle")
	}
}

func TestPackOpeningYieldsExactlyFourUses(t *testing.T) {
	l := newTestLedger(t)
	if err := l.SetInventory(components.BuffAxe, 4, 0); err != nil {
		t.Fatalf("set inventory: %v", err)
	}

	// Consume one unit per run until the pack is exhausted.
	uses := 0
	for run := 0; run < 10; run++ {
		loaded, err := l.Load()
		if err != nil {
			t.Fatalf("run %d: load: %v", run, err)
		}
		if loaded[components.BuffAxe] == 0 {
			// Must settle the open snapshot before stopping.
			if err := l.Settle([components.NumBuffKinds]int{}); err != nil {
				t.Fatalf("run %d: settle: %v", run, err)
			}
			break
		}
		var final [components.NumBuffKinds]int
		final[components.BuffAxe] = loaded[components.BuffAxe] - 1
		if err := l.Settle(final); err != nil {
			t.Fatalf("run %d: settle: %v", run, err)
		}
		uses++
	}

	if uses != 4 {
		t.Errorf("expected exactly 4 uses from one pack, got %d", uses)
	}
	if got := l.TotalUnits(components.BuffAxe); got != 0 {
		t.Errorf("expected 0 units remaining, got %d", got)
	}
}
