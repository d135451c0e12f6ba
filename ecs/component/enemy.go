package component

// Enemy is a wandering hazard. Elapsed drives its steering; after it is
// destroyed, Destructible tracks the demise animation.
type Enemy struct {
	Speed   float64
	Elapsed float64
	// Script names the steering script in prefabs/scripts. Empty means the
	// built-in orbit steering.
	Script string
}

var EnemyComponent = NewComponent[Enemy]()
