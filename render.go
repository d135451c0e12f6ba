package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/bomberman/ecs/component"
	"github.com/milk9111/bomberman/gamemap"
	"golang.org/x/image/colornames"
)

const (
	hudHeight = 48
	maxTile   = 48.0
)

// view maps tile coordinates to screen pixels. Tiles are centred on integer
// coordinates and map +y points up the screen.
type view struct {
	tile   float64
	ox, oy float64
	maxY   int
}

func newView(snap gamemap.Snapshot) view {
	lo := component.GridPos{X: snap.Exit.X, Y: snap.Exit.Y}
	hi := lo
	for _, w := range snap.Walls {
		lo.X, lo.Y = min(lo.X, w.Pos.X), min(lo.Y, w.Pos.Y)
		hi.X, hi.Y = max(hi.X, w.Pos.X), max(hi.Y, w.Pos.Y)
	}
	cols := float64(hi.X - lo.X + 1)
	rows := float64(hi.Y - lo.Y + 1)
	tile := math.Min(baseWidth/cols, (baseHeight-hudHeight)/rows)
	tile = math.Min(math.Floor(tile), maxTile)
	return view{
		tile: tile,
		ox:   (baseWidth-cols*tile)/2 - float64(lo.X)*tile,
		oy:   hudHeight + (baseHeight-hudHeight-rows*tile)/2,
		maxY: hi.Y,
	}
}

// pt returns the screen centre of world position (x, y).
func (v view) pt(x, y float64) (float32, float32) {
	sx := v.ox + (x+0.5)*v.tile
	sy := v.oy + (float64(v.maxY)-y+0.5)*v.tile
	return float32(sx), float32(sy)
}

func (v view) fillTile(dst *ebiten.Image, pos component.GridPos, inset float64, clr color.Color) {
	cx, cy := v.pt(float64(pos.X), float64(pos.Y))
	half := float32(v.tile/2 - inset)
	vector.FillRect(dst, cx-half, cy-half, half*2, half*2, clr, false)
}

func fade(c color.RGBA, t float64) color.RGBA {
	t = math.Max(0, math.Min(1, t))
	return color.RGBA{
		R: uint8(float64(c.R) * t),
		G: uint8(float64(c.G) * t),
		B: uint8(float64(c.B) * t),
		A: uint8(float64(c.A) * t),
	}
}

func powerUpColor(kind component.PowerUpKind) color.RGBA {
	switch kind {
	case component.PowerUpBlastRadius:
		return colornames.Orange
	case component.PowerUpSpeed:
		return colornames.Deepskyblue
	default:
		return colornames.Orangered
	}
}

func drawMap(screen *ebiten.Image, snap gamemap.Snapshot, debug bool) {
	screen.Fill(colornames.Darkolivegreen)
	v := newView(snap)

	v.fillTile(screen, snap.Exit, 2, colornames.Gold)

	for _, p := range snap.PowerUps {
		if p.Covered && !debug {
			continue
		}
		v.fillTile(screen, p.Pos, v.tile*0.25, powerUpColor(p.Kind))
	}

	for _, w := range snap.Walls {
		switch {
		case !w.Destructible:
			v.fillTile(screen, w.Pos, 0, colornames.Dimgray)
		case w.State == component.Destroying:
			v.fillTile(screen, w.Pos, 1, fade(colornames.Sienna, 1-w.Elapsed/0.5))
		default:
			clr := colornames.Sienna
			if debug && w.Pos == snap.Exit {
				clr = colornames.Peru
			}
			v.fillTile(screen, w.Pos, 1, clr)
		}
	}

	for _, b := range snap.Bombs {
		cx, cy := v.pt(float64(b.Pos.X), float64(b.Pos.Y))
		clr := colornames.Black
		if b.Sensor {
			clr = colornames.Darkslategray
		}
		pulse := 0.35 + 0.05*math.Sin(b.Elapsed*8)
		vector.FillCircle(screen, cx, cy, float32(v.tile*pulse), clr, true)
	}

	for _, s := range snap.Segments {
		inset := v.tile * 0.2
		if s.End {
			inset = v.tile * 0.3
		}
		v.fillTile(screen, s.Pos, inset, colornames.Yellow)
	}

	for _, e := range snap.Enemies {
		cx, cy := v.pt(e.X, e.Y)
		if e.Destroyed {
			vector.FillCircle(screen, cx, cy, float32(v.tile*0.47*(1-math.Min(e.Elapsed, 1))), colornames.Gray, true)
			continue
		}
		vector.FillCircle(screen, cx, cy, float32(v.tile*0.47), colornames.Crimson, true)
	}

	cx, cy := v.pt(snap.Player.X, snap.Player.Y)
	clr := colornames.White
	if snap.Player.Dead {
		clr = colornames.Red
	}
	vector.FillCircle(screen, cx, cy, float32(v.tile*0.47), clr, true)
	if debug {
		vector.StrokeCircle(screen, cx, cy, float32(v.tile*0.47), 1, colornames.Black, true)
	}
}

func drawHUD(screen *ebiten.Image, snap gamemap.Snapshot, level, levels int, result gamemap.Result, feed []string) {
	vector.FillRect(screen, 0, 0, baseWidth, hudHeight, colornames.Black, false)
	line := fmt.Sprintf("Level %d/%d  Time %3d  Enemies %d  Bombs %d/%d  Radius %d  Speed %.1f  FPS %.0f",
		level, levels,
		int(math.Ceil(snap.Remaining)),
		len(aliveEnemies(snap)),
		snap.Upgrades.ActiveBombs, snap.Upgrades.MaxBombs,
		snap.Upgrades.BlastRadius,
		snap.Player.Speed,
		ebiten.ActualFPS())
	ebitenutil.DebugPrintAt(screen, line, 8, 6)
	ebitenutil.DebugPrintAt(screen, "Arrows/WASD move, X or Space plants, R restarts", 8, 24)

	for i, msg := range feed {
		ebitenutil.DebugPrintAt(screen, msg, baseWidth-260, hudHeight+8+i*16)
	}

	switch result {
	case gamemap.Won:
		ebitenutil.DebugPrintAt(screen, "YOU WIN - press Enter to play again", baseWidth/2-110, baseHeight/2)
	case gamemap.Lost:
		ebitenutil.DebugPrintAt(screen, "GAME OVER - press R to retry", baseWidth/2-90, baseHeight/2)
	}
}

func aliveEnemies(snap gamemap.Snapshot) []gamemap.EnemyView {
	var out []gamemap.EnemyView
	for _, e := range snap.Enemies {
		if !e.Destroyed {
			out = append(out, e)
		}
	}
	return out
}
