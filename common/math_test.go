package common

import "testing"

func TestTileOf(t *testing.T) {
	cases := []struct {
		name   string
		x, y   float64
		tx, ty int
	}{
		{"exact", 7, 11, 7, 11},
		{"below_half", 6.49, 10.51, 6, 11},
		{"half_rounds_away", 6.5, -0.5, 7, -1},
		{"negative", -0.2, -1.7, 0, -2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tx, ty := TileOf(c.x, c.y)
			if tx != c.tx || ty != c.ty {
				t.Fatalf("TileOf(%v,%v) = (%d,%d), want (%d,%d)", c.x, c.y, tx, ty, c.tx, c.ty)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(0.5, 0, 0.25); got != 0.25 {
		t.Fatalf("expected clamp to 0.25, got %v", got)
	}
	if got := Clamp(-1, 0, 0.25); got != 0 {
		t.Fatalf("expected clamp to 0, got %v", got)
	}
}
