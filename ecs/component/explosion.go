package component

// ExplosionSegment marks one tile reached by a blast. DirX/DirY is the scan
// direction (0,0 for the bomb tile) and End flags the last tile reached in
// that direction. Segments never block anything.
type ExplosionSegment struct {
	Pos      GridPos
	DirX     int
	DirY     int
	End      bool
	Elapsed  float64
	Duration float64
}

// Center reports whether the segment sits on the bomb tile.
func (s *ExplosionSegment) Center() bool {
	return s.DirX == 0 && s.DirY == 0
}

// Expired reports whether the segment animation has finished.
func (s *ExplosionSegment) Expired() bool {
	return s.Elapsed >= s.Duration
}

var ExplosionSegmentComponent = NewComponent[ExplosionSegment]()
