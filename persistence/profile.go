// Package persistence stores the player profile between sessions: consumable
// inventory, carryover, and run records. The profile is a small YAML file; a
// missing file is a fresh profile, a corrupt one is an error.
package persistence

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/pixelfilm44/StuntFrogsRunner-sub005/components"
	"github.com/pixelfilm44/StuntFrogsRunner-sub005/ledger"
)

// BuffRecord is one buff's persistent consumable state.
type BuffRecord struct {
	Inventory int `yaml:"inventory"` // whole units owned
	Carryover int `yaml:"carryover"` // partial-pack remainder, < pack size
}

// Profile is the persistent player state.
type Profile struct {
	Buffs          map[string]BuffRecord `yaml:"buffs"`
	HighScore      int                   `yaml:"high_score"`
	BestProgress   float64               `yaml:"best_progress"`
	TotalRuns      int                   `yaml:"total_runs"`
	UnlockedBiomes []string              `yaml:"unlocked_biomes,omitempty"`
}

// NewProfile creates an empty profile.
func NewProfile() *Profile {
	return &Profile{Buffs: make(map[string]BuffRecord)}
}

// LoadProfile reads a profile from path. A missing file yields a fresh
// profile.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return NewProfile(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}
	p := NewProfile()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parsing profile: %w", err)
	}
	if p.Buffs == nil {
		p.Buffs = make(map[string]BuffRecord)
	}
	return p, nil
}

// Save writes the profile to path via a temp file rename, so a crash mid-write
// never truncates the previous profile.
func (p *Profile) Save(path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling profile: %w", err)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating profile directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".profile-*.yaml")
	if err != nil {
		return fmt.Errorf("creating temp profile: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing temp profile: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp profile: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing profile: %w", err)
	}
	return nil
}

// ApplyToLedger installs the profile's consumable state into a fresh ledger.
func (p *Profile) ApplyToLedger(l *ledger.Ledger) error {
	for kind := components.BuffKind(0); kind < components.NumBuffKinds; kind++ {
		rec := p.Buffs[kind.String()]
		if err := l.SetInventory(kind, rec.Inventory, rec.Carryover); err != nil {
			return fmt.Errorf("applying %s: %w", kind, err)
		}
	}
	return nil
}

// CaptureLedger copies the ledger's settled consumable state back into the
// profile.
func (p *Profile) CaptureLedger(l *ledger.Ledger) {
	for kind := components.BuffKind(0); kind < components.NumBuffKinds; kind++ {
		e := l.Entry(kind)
		p.Buffs[kind.String()] = BuffRecord{Inventory: e.Inventory, Carryover: e.Carryover}
	}
}

// RecordRun folds a finished run into the profile's records. furthestBiome is
// the deepest biome the run reached; once listed, a biome stays unlocked.
func (p *Profile) RecordRun(score int, progress float64, furthestBiome string) {
	p.TotalRuns++
	if score > p.HighScore {
		p.HighScore = score
	}
	if progress > p.BestProgress {
		p.BestProgress = progress
	}
	for _, b := range p.UnlockedBiomes {
		if b == furthestBiome {
			return
		}
	}
	p.UnlockedBiomes = append(p.UnlockedBiomes, furthestBiome)
}

// BiomeUnlocked reports whether a run has ever reached the named biome.
func (p *Profile) BiomeUnlocked(name string) bool {
	for _, b := range p.UnlockedBiomes {
		if b == name {
			return true
		}
	}
	return false
}
