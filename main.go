package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	levelName := flag.String("level", "", "map file, or a name in levels/ (default map-1.properties)")
	campaign := flag.Bool("campaign", false, "play every embedded map in order")
	seed := flag.Uint64("seed", 1, "seed for hidden exits")
	watch := flag.Bool("watch", false, "reload prefabs and maps when they change on disk")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("bomberman")

	game, err := NewGame(Config{
		Level:    *levelName,
		Campaign: *campaign,
		Seed:     *seed,
		Debug:    *debug,
		Watch:    *watch,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
