package gamemap

import (
	"errors"
	"fmt"
	"log"

	"github.com/milk9111/bomberman/levels"
)

var ErrNoLevels = errors.New("gamemap: campaign has no levels")

// LoadFunc resolves a map name to its description.
type LoadFunc func(name string) (levels.Description, error)

// Campaign plays maps in order. Bomb upgrades and player speed carry over
// from one map to the next; a loss restarts the current map with the
// progress it was entered with.
type Campaign struct {
	names []string
	index int
	load  LoadFunc
	opts  Options
	// entry is the carried progress the current map was started with.
	entry   Options
	current *Map
}

func NewCampaign(names []string, load LoadFunc, opts Options) (*Campaign, error) {
	if len(names) == 0 {
		return nil, ErrNoLevels
	}
	if load == nil {
		load = levels.LoadFile
	}
	c := &Campaign{names: names, load: load, opts: opts}
	if err := c.start(0, opts); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Campaign) start(index int, carry Options) error {
	name := c.names[index]
	desc, err := c.load(name)
	if err != nil {
		return fmt.Errorf("gamemap: campaign level %d: %w", index+1, err)
	}
	opts := c.opts
	opts.Name = name
	opts.HasNextLevel = index < len(c.names)-1
	opts.Upgrades = carry.Upgrades
	opts.PlayerSpeed = carry.PlayerSpeed
	opts.Seed = c.opts.Seed + uint64(index)
	m, err := NewMap(desc, opts)
	if err != nil {
		return err
	}
	c.index = index
	c.entry = carry
	c.current = m
	return nil
}

// Map returns the map being played.
func (c *Campaign) Map() *Map {
	return c.current
}

// Level returns the 1-based position of the current map and its name.
func (c *Campaign) Level() (int, string) {
	return c.index + 1, c.names[c.index]
}

func (c *Campaign) Len() int {
	return len(c.names)
}

// Tick advances the current map. On AdvanceLevel the next map is built
// before returning, so the following Tick already plays it.
func (c *Campaign) Tick(dt float64) Result {
	result := c.current.Tick(dt)
	if result != AdvanceLevel {
		return result
	}

	up := c.current.Upgrades()
	carry := Options{Upgrades: &up, PlayerSpeed: c.current.Player().Speed}
	if err := c.start(c.index+1, carry); err != nil {
		log.Printf("gamemap: advance campaign: %v", err)
		return Lost
	}
	return AdvanceLevel
}

// Restart rebuilds the current map from the progress it was entered with.
func (c *Campaign) Restart() error {
	return c.start(c.index, c.entry)
}
