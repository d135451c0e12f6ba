package prefabs

import "fmt"

// Tuning bundles every spec a map session is built from.
type Tuning struct {
	Session SessionSpec
	Player  PlayerSpec
	Enemy   EnemySpec
}

// DefaultTuning mirrors the embedded YAML and is used when no spec files are
// available, e.g. in tests.
func DefaultTuning() Tuning {
	return Tuning{
		Session: SessionSpec{
			Name:               "session",
			FuseSeconds:        3.0,
			SolidGraceSeconds:  0.6,
			BombSize:           0.8,
			InitialMaxBombs:    1,
			MaxBombsCap:        8,
			InitialBlastRadius: 1,
			MaxBlastRadius:     2,
			CountdownSeconds:   180,
			PhysicsStep:        1.0 / 60.0,
			MaxFrameTime:       0.25,
			ExplosionSeconds:   0.35,
			WallTeardown:       0.49,
			EnemyDemise:        1.0,
			PlayerDeath:        1.8,
		},
		Player: PlayerSpec{
			Name:           "player",
			MoveSpeed:      3.5,
			SpeedIncrement: 1.0,
			MaxSpeed:       8.0,
			Collider:       ColliderSpec{Radius: 0.47},
		},
		Enemy: EnemySpec{
			Name:      "enemy",
			MoveSpeed: 2.0,
			Collider:  ColliderSpec{Radius: 0.47},
		},
	}
}

// LoadTuning reads session.yaml, player.yaml and enemy.yaml.
func LoadTuning() (Tuning, error) {
	session, err := LoadSpec[SessionSpec]("session.yaml")
	if err != nil {
		return Tuning{}, err
	}
	player, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return Tuning{}, err
	}
	enemy, err := LoadSpec[EnemySpec]("enemy.yaml")
	if err != nil {
		return Tuning{}, err
	}
	t := Tuning{Session: session, Player: player, Enemy: enemy}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

func (t Tuning) Validate() error {
	if err := t.Session.Validate(); err != nil {
		return fmt.Errorf("session.yaml: %w", err)
	}
	if t.Player.Collider.Radius <= 0 {
		return fmt.Errorf("player.yaml: %w", ErrBadCollider)
	}
	if t.Enemy.Collider.Radius <= 0 {
		return fmt.Errorf("enemy.yaml: %w", ErrBadCollider)
	}
	return nil
}
