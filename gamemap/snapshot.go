package gamemap

import (
	"fmt"

	"github.com/milk9111/bomberman/ecs/component"
	"github.com/milk9111/bomberman/ecs/system"
	"github.com/vmihailenco/msgpack/v5"
)

// Snapshot is a read-only copy of everything the presentation layer polls.
type Snapshot struct {
	Name      string            `msgpack:"name"`
	Result    Result            `msgpack:"result"`
	Remaining float64           `msgpack:"remaining"`
	Upgrades  system.Upgrades   `msgpack:"upgrades"`
	Player    PlayerView        `msgpack:"player"`
	Exit      component.GridPos `msgpack:"exit"`
	Enemies   []EnemyView       `msgpack:"enemies"`
	Walls     []WallView        `msgpack:"walls"`
	Bombs     []BombView        `msgpack:"bombs"`
	PowerUps  []PowerUpView     `msgpack:"power_ups"`
	Segments  []SegmentView     `msgpack:"segments"`
}

func (m *Map) Snapshot() Snapshot {
	return Snapshot{
		Name:      m.name,
		Result:    m.ctx.Result,
		Remaining: m.ctx.Remaining,
		Upgrades:  m.ctx.Upgrades,
		Player:    m.Player(),
		Exit:      m.ctx.ExitPos,
		Enemies:   m.Enemies(),
		Walls:     m.Walls(),
		Bombs:     m.Bombs(),
		PowerUps:  m.PowerUps(),
		Segments:  m.Segments(),
	}
}

func (s Snapshot) Encode() ([]byte, error) {
	data, err := msgpack.Marshal(&s)
	if err != nil {
		return nil, fmt.Errorf("gamemap: encode snapshot %s: %w", s.Name, err)
	}
	return data, nil
}

func DecodeSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := msgpack.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("gamemap: decode snapshot: %w", err)
	}
	return s, nil
}
