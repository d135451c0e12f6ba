package main

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/bomberman/ecs"
	"github.com/milk9111/bomberman/ecs/system"
	"github.com/milk9111/bomberman/gamemap"
	"github.com/milk9111/bomberman/levels"
	"github.com/milk9111/bomberman/prefabs"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	maxFeed = 6
)

type Config struct {
	Level    string
	Campaign bool
	Seed     uint64
	Debug    bool
	Watch    bool
}

type Game struct {
	cfg     Config
	tuning  prefabs.Tuning
	scripts *system.ScriptSteering

	campaign *gamemap.Campaign
	input    *Input
	watcher  *prefabs.Watcher

	result gamemap.Result
	feed   []string
	frames int
}

func NewGame(cfg Config) (*Game, error) {
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:     cfg,
		tuning:  tuning,
		scripts: system.NewScriptSteering(),
		input:   NewInput(),
	}
	if err := g.start(); err != nil {
		return nil, err
	}

	if cfg.Watch {
		dirs := []string{"prefabs", filepath.Join("prefabs", "scripts"), "levels"}
		if dir := filepath.Dir(cfg.Level); cfg.Level != "" && dir != "." {
			dirs = append(dirs, dir)
		}
		w, err := prefabs.NewWatcher(dirs...)
		if err != nil {
			log.Printf("game: watch disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) levelNames() []string {
	if g.cfg.Campaign {
		return levels.List()
	}
	if g.cfg.Level != "" {
		return []string{g.cfg.Level}
	}
	return []string{levels.DefaultMap}
}

func (g *Game) start() error {
	c, err := gamemap.NewCampaign(g.levelNames(), levels.LoadFile, gamemap.Options{
		Tuning:  g.tuning,
		Seed:    g.cfg.Seed,
		Scripts: g.scripts,
		Debug:   g.cfg.Debug,
	})
	if err != nil {
		return err
	}
	g.campaign = c
	g.result = gamemap.Continue
	g.feed = nil
	return nil
}

// retry leaves a finished session. A loss replays the current map with the
// progress it was entered with; a win starts the run over.
func (g *Game) retry() error {
	if g.result == gamemap.Lost {
		if err := g.campaign.Restart(); err != nil {
			return err
		}
		g.result = gamemap.Continue
		g.feed = nil
		return nil
	}
	return g.start()
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.frames++
	g.pollWatcher()
	g.input.Update()

	if g.result.Terminal() {
		if g.input.Restart || g.input.Next {
			return g.retry()
		}
		return nil
	}

	if g.input.Restart {
		if err := g.campaign.Restart(); err != nil {
			return err
		}
		return nil
	}

	m := g.campaign.Map()
	m.SetPlayerDirection(g.input.DirX, g.input.DirY)
	if g.input.Plant {
		m.PlantBombAtPlayer()
	}

	dt := 1.0 / float64(ebiten.TPS())
	result := g.campaign.Tick(dt)
	g.record(m.Events())
	if result == gamemap.AdvanceLevel {
		idx, name := g.campaign.Level()
		g.push(fmt.Sprintf("level %d: %s", idx, name))
		return nil
	}
	g.result = result
	return nil
}

func (g *Game) record(events []ecs.Event) {
	for _, evt := range events {
		switch evt.Kind {
		case ecs.EventPowerUpTaken, ecs.EventEnemyDestroyed, ecs.EventPlayerDied, ecs.EventPlayerReachExit:
			g.push(fmt.Sprintf("%s at %d,%d", evt.Kind, evt.X, evt.Y))
		}
		if g.cfg.Debug {
			log.Printf("game: %s entity=%s at %d,%d", evt.Kind, evt.Entity, evt.X, evt.Y)
		}
	}
}

func (g *Game) push(line string) {
	g.feed = append(g.feed, line)
	if len(g.feed) > maxFeed {
		g.feed = g.feed[len(g.feed)-maxFeed:]
	}
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	changed := ""
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			changed = name
			continue
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("game: watch: %v", err)
			continue
		default:
		}
		break
	}
	if changed == "" {
		return
	}

	tuning, err := prefabs.LoadTuning()
	if err != nil {
		log.Printf("game: reload after %s: %v", changed, err)
		return
	}
	log.Printf("game: reloading after change to %s", changed)
	g.tuning = tuning
	g.scripts.Reset()
	if err := g.start(); err != nil {
		log.Printf("game: restart after %s: %v", changed, err)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.campaign.Map().Snapshot()
	drawMap(screen, snap, g.cfg.Debug)
	idx, _ := g.campaign.Level()
	drawHUD(screen, snap, idx, g.campaign.Len(), g.result, g.feed)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
