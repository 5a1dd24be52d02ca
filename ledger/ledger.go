// Package ledger tracks multi-use consumable packs across runs. Inventory is
// counted in single units; opening a pack moves PackSize units out of
// inventory (one consumed immediately, the rest to the carryover remainder),
// so inventory + carryover always equals the units actually in existence.
package ledger

import (
	"fmt"
	"log/slog"

	"github.com/pixelfilm44/StuntFrogsRunner-sub005/components"
)

// State is the per-run ledger lifecycle.
type State uint8

const (
	Idle State = iota
	Loaded
	Settled
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loaded:
		return "loaded"
	case Settled:
		return "settled"
	}
	return "unknown"
}

// Entry is the accounting state for one buff type.
type Entry struct {
	Inventory     int // units owned, persists across runs
	Carryover     int // 0..PackSize-1 units of an opened pack, held until settle
	LoadedThisRun int // snapshot taken at run start
}

// Ledger is the run-scoped consumable accounting state machine:
// Idle -> Loaded -> (usage observed at settle) -> Settled.
type Ledger struct {
	packSize  int
	perRunCap int
	state     State
	entries   [components.NumBuffKinds]Entry
	logger    *slog.Logger
}

// New creates a ledger with the given pack size and per-run load cap.
func New(packSize, perRunCap int, logger *slog.Logger) *Ledger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ledger{packSize: packSize, perRunCap: perRunCap, logger: logger}
}

// State returns the current lifecycle state.
func (l *Ledger) State() State {
	return l.state
}

// Entry returns a copy of the accounting entry for one buff type.
func (l *Ledger) Entry(kind components.BuffKind) Entry {
	return l.entries[kind]
}

// SetInventory installs persisted inventory and carryover counts. Only legal
// while Idle or Settled; a loaded snapshot must be settled first.
func (l *Ledger) SetInventory(kind components.BuffKind, inventory, carryover int) error {
	if l.state == Loaded {
		return fmt.Errorf("ledger: cannot install inventory while a run is loaded")
	}
	if inventory < 0 || carryover < 0 || carryover >= l.packSize {
		return fmt.Errorf("ledger: invalid counts for %s: inventory %d, carryover %d", kind, inventory, carryover)
	}
	l.entries[kind] = Entry{Inventory: inventory, Carryover: carryover}
	return nil
}

// Load snapshots the units made available to the player for this run and
// returns the per-buff loaded counts. The loaded units are not yet deducted
// from inventory; consumption is reconciled at settle.
func (l *Ledger) Load() ([components.NumBuffKinds]int, error) {
	var loaded [components.NumBuffKinds]int
	if l.state == Loaded {
		return loaded, fmt.Errorf("ledger: previous run was never settled")
	}
	for k := range l.entries {
		e := &l.entries[k]
		n := e.Inventory + e.Carryover
		if n > l.perRunCap {
			n = l.perRunCap
		}
		e.LoadedThisRun = n
		loaded[k] = n
	}
	l.state = Loaded
	return loaded, nil
}

// Settle reconciles final buff counts against the loaded snapshot. For each
// consumed unit the carryover remainder is drained first; when it is empty a
// new pack is opened (PackSize units leave inventory, PackSize-1 become the
// remainder). Any remainder left after settling folds back into inventory.
//
// A final count above the loaded snapshot means bonus-granted buffs that were
// never drawn from inventory; used is clamped to zero and logged.
func (l *Ledger) Settle(finalCounts [components.NumBuffKinds]int) error {
	if l.state != Loaded {
		return fmt.Errorf("ledger: settle in state %s", l.state)
	}
	for k := range l.entries {
		e := &l.entries[k]
		used := e.LoadedThisRun - finalCounts[k]
		if used < 0 {
			l.logger.Warn("buff count exceeds loaded snapshot, clamping",
				"buff", components.BuffKind(k).String(),
				"loaded", e.LoadedThisRun,
				"final", finalCounts[k])
			used = 0
		}
		for i := 0; i < used; i++ {
			switch {
			case e.Carryover > 0:
				e.Carryover--
			case e.Inventory >= l.packSize:
				e.Inventory -= l.packSize
				e.Carryover = l.packSize - 1
			case e.Inventory > 0:
				// Fewer loose units than a full pack; consume directly.
				e.Inventory--
			default:
				// Loaded more than existed; nothing left to deduct.
			}
		}
		e.Inventory += e.Carryover
		e.Carryover = 0
		e.LoadedThisRun = 0
	}
	l.state = Settled
	return nil
}

// EnsureSettled settles with the given counts if a loaded snapshot is still
// open. Called before starting a run so an abnormal termination can never
// leak a loaded snapshot into the next run.
func (l *Ledger) EnsureSettled(finalCounts [components.NumBuffKinds]int) error {
	if l.state != Loaded {
		return nil
	}
	l.logger.Warn("settling leaked run snapshot before next run")
	return l.Settle(finalCounts)
}

// TotalUnits returns the units in existence for one buff type.
func (l *Ledger) TotalUnits(kind components.BuffKind) int {
	e := l.entries[kind]
	return e.Inventory + e.Carryover
}
