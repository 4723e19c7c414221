package prefabs

import (
	"errors"
	"fmt"
	"path/filepath"
)

const (
	ShipsFile       = "ships.yaml"
	GravityWellFile = "gravity_well.yaml"
	SalvageFile     = "salvage.yaml"
	EffectsFile     = "effects.yaml"
	SummaryScript   = "summary.tengo"
)

// Catalog holds every decoded spec the simulation builds entities from.
type Catalog struct {
	Ships   ShipsSpec
	Well    GravityWellSpec
	Salvage SalvageSpec
	Effects EffectsSpec
}

func LoadCatalog() (*Catalog, error) {
	c := &Catalog{}
	for _, name := range []string{ShipsFile, GravityWellFile, SalvageFile, EffectsFile} {
		if err := c.load(name); err != nil {
			return nil, err
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Reload re-reads the spec named by path. It reports false for files the
// catalog does not own. On error the previous spec is kept.
func (c *Catalog) Reload(path string) (bool, error) {
	name := filepath.Base(path)
	switch name {
	case ShipsFile, GravityWellFile, SalvageFile, EffectsFile:
	default:
		return false, nil
	}
	next := *c
	if err := next.load(name); err != nil {
		return true, err
	}
	if err := next.Validate(); err != nil {
		return true, err
	}
	*c = next
	return true, nil
}

func (c *Catalog) load(name string) error {
	var err error
	switch name {
	case ShipsFile:
		c.Ships, err = LoadSpec[ShipsSpec](name)
	case GravityWellFile:
		c.Well, err = LoadSpec[GravityWellSpec](name)
	case SalvageFile:
		c.Salvage, err = LoadSpec[SalvageSpec](name)
	case EffectsFile:
		c.Effects, err = LoadSpec[EffectsSpec](name)
	default:
		err = fmt.Errorf("prefabs: unknown spec %s", name)
	}
	return err
}

// Ship returns the spec for player id.
func (c *Catalog) Ship(id int) (ShipSpec, bool) {
	for _, s := range c.Ships.Ships {
		if s.ID == id {
			return s, true
		}
	}
	return ShipSpec{}, false
}

var (
	ErrDuplicateShip = errors.New("prefabs: duplicate ship id")
	ErrInvalidSpec   = errors.New("prefabs: invalid spec")
)

// Validate rejects catalogs the simulation cannot run with.
func (c *Catalog) Validate() error {
	if len(c.Ships.Ships) == 0 {
		return fmt.Errorf("%w: %s has no ships", ErrInvalidSpec, ShipsFile)
	}
	seen := make(map[int]bool, len(c.Ships.Ships))
	for _, s := range c.Ships.Ships {
		if s.ID < 0 {
			return fmt.Errorf("%w: %s ship %q has negative id", ErrInvalidSpec, ShipsFile, s.Name)
		}
		if seen[s.ID] {
			return fmt.Errorf("%w: %d", ErrDuplicateShip, s.ID)
		}
		seen[s.ID] = true
	}
	switch {
	case c.Salvage.SpawnIntervalMS <= 0:
		return fmt.Errorf("%w: %s spawn_interval_ms must be positive", ErrInvalidSpec, SalvageFile)
	case c.Salvage.SpeedRange <= 0:
		return fmt.Errorf("%w: %s speed_range must be positive", ErrInvalidSpec, SalvageFile)
	case c.Salvage.SpeedDivisor == 0:
		return fmt.Errorf("%w: %s speed_divisor must be non-zero", ErrInvalidSpec, SalvageFile)
	case c.Salvage.SpawnArea.Width < 1 || c.Salvage.SpawnArea.Height < 1:
		return fmt.Errorf("%w: %s spawn_area is empty", ErrInvalidSpec, SalvageFile)
	case c.Effects.Trail.IntervalMS <= 0:
		return fmt.Errorf("%w: %s trail interval_ms must be positive", ErrInvalidSpec, EffectsFile)
	case c.Effects.Particle.BurstCount <= 0:
		return fmt.Errorf("%w: %s burst_count must be positive", ErrInvalidSpec, EffectsFile)
	}
	return nil
}
