package prefabs

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// SessionSpec holds the rules of a single map session. All durations are in
// seconds of simulated time.
type SessionSpec struct {
	Name               string  `yaml:"name"`
	FuseSeconds        float64 `yaml:"fuse_seconds"`
	SolidGraceSeconds  float64 `yaml:"solid_grace_seconds"`
	BombSize           float64 `yaml:"bomb_size"`
	InitialMaxBombs    int     `yaml:"initial_max_bombs"`
	MaxBombsCap        int     `yaml:"max_bombs_cap"`
	InitialBlastRadius int     `yaml:"initial_blast_radius"`
	MaxBlastRadius     int     `yaml:"max_blast_radius"`
	CountdownSeconds   float64 `yaml:"countdown_seconds"`
	PhysicsStep        float64 `yaml:"physics_step"`
	MaxFrameTime       float64 `yaml:"max_frame_time"`
	ExplosionSeconds   float64 `yaml:"explosion_seconds"`
	WallTeardown       float64 `yaml:"wall_teardown_seconds"`
	EnemyDemise        float64 `yaml:"enemy_demise_seconds"`
	PlayerDeath        float64 `yaml:"player_death_seconds"`
}

type ColliderSpec struct {
	Radius float64 `yaml:"radius"`
}

type PlayerSpec struct {
	Name           string       `yaml:"name"`
	MoveSpeed      float64      `yaml:"move_speed"`
	SpeedIncrement float64      `yaml:"speed_increment"`
	MaxSpeed       float64      `yaml:"max_speed"`
	Collider       ColliderSpec `yaml:"collider"`
}

type EnemySpec struct {
	Name      string       `yaml:"name"`
	MoveSpeed float64      `yaml:"move_speed"`
	Script    string       `yaml:"script"`
	Collider  ColliderSpec `yaml:"collider"`
}

var (
	ErrBadFuse      = errors.New("prefabs: fuse must be positive")
	ErrBadStep      = errors.New("prefabs: physics step must be positive")
	ErrBadBombLimit = errors.New("prefabs: bomb limits out of range")
	ErrBadRadius    = errors.New("prefabs: blast radius out of range")
	ErrBadCollider  = errors.New("prefabs: collider radius must be positive")
)

// Validate rejects specs the simulation cannot run with.
func (s SessionSpec) Validate() error {
	if s.FuseSeconds <= 0 {
		return ErrBadFuse
	}
	if s.PhysicsStep <= 0 || s.MaxFrameTime <= 0 {
		return ErrBadStep
	}
	if s.InitialMaxBombs < 1 || s.MaxBombsCap < s.InitialMaxBombs {
		return ErrBadBombLimit
	}
	if s.InitialBlastRadius < 1 || s.MaxBlastRadius < s.InitialBlastRadius {
		return ErrBadRadius
	}
	return nil
}
