package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type Input struct {
	DirX, DirY int
	Plant      bool
	Restart    bool
	Next       bool
}

func NewInput() *Input {
	return &Input{}
}

// Update polls the keyboard. Up on screen is +y on the map.
func (i *Input) Update() {
	i.DirX, i.DirY = 0, 0
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA):
		i.DirX = -1
	case ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD):
		i.DirX = 1
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW):
		i.DirY = 1
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS):
		i.DirY = -1
	}

	i.Plant = inpututil.IsKeyJustPressed(ebiten.KeyX) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
	i.Restart = inpututil.IsKeyJustPressed(ebiten.KeyR)
	i.Next = inpututil.IsKeyJustPressed(ebiten.KeyEnter)
}
