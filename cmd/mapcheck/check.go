package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/milk9111/bomberman/gamemap"
	"github.com/milk9111/bomberman/levels"
	"github.com/milk9111/bomberman/prefabs"
)

type checkOptions struct {
	Tuning   prefabs.Tuning
	Seed     uint64
	Simulate float64
}

type report struct {
	Name     string
	Counts   map[levels.Code]int
	Warnings []string
	Exit     string
	Result   gamemap.Result
	Elapsed  float64
	Snapshot []byte
}

func (r report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", r.Name)
	for code := levels.CodeIndestructibleWall; code <= levels.CodeSpeedPowerUp; code++ {
		if n := r.Counts[code]; n > 0 {
			fmt.Fprintf(&b, "  %-20s %d\n", code, n)
		}
	}
	if r.Exit != "" {
		fmt.Fprintf(&b, "  exit: %s\n", r.Exit)
	}
	if r.Elapsed > 0 {
		fmt.Fprintf(&b, "  after %.1fs: %s\n", r.Elapsed, r.Result)
	}
	for _, w := range r.Warnings {
		fmt.Fprintf(&b, "  warning: %s\n", w)
	}
	return b.String()
}

// check builds the map, verifies it survives an encode/parse round-trip and
// optionally lets it run with no input.
func check(name string, desc levels.Description, opts checkOptions) (report, error) {
	rep := report{Name: name, Counts: make(map[levels.Code]int)}
	for _, code := range desc {
		rep.Counts[code]++
	}

	if rep.Counts[levels.CodePlayerSpawn] > 1 {
		rep.Warnings = append(rep.Warnings, fmt.Sprintf("%d player spawns, the last one is used", rep.Counts[levels.CodePlayerSpawn]))
	}
	if rep.Counts[levels.CodeEnemySpawn] == 0 {
		rep.Warnings = append(rep.Warnings, "no enemies")
	}
	if rep.Counts[levels.CodeExit] > 1 {
		rep.Warnings = append(rep.Warnings, fmt.Sprintf("%d exits, the last one is used", rep.Counts[levels.CodeExit]))
	}

	var buf bytes.Buffer
	if err := levels.Encode(&buf, desc); err != nil {
		return rep, err
	}
	again := levels.ParseBytes(buf.Bytes())
	if len(again) != len(desc) {
		return rep, fmt.Errorf("round-trip kept %d of %d entries", len(again), len(desc))
	}
	for pos, code := range desc {
		if again[pos] != code {
			return rep, fmt.Errorf("round-trip changed %d,%d from %s to %s", pos.X, pos.Y, code, again[pos])
		}
	}

	m, err := gamemap.NewMap(desc, gamemap.Options{Name: name, Tuning: opts.Tuning, Seed: opts.Seed})
	if err != nil {
		return rep, err
	}
	exit := m.Exit()
	rep.Exit = fmt.Sprintf("%d,%d", exit.X, exit.Y)
	if rep.Counts[levels.CodeExit] == 0 {
		rep.Exit += " (hidden)"
	}

	if opts.Simulate > 0 {
		step := opts.Tuning.Session.PhysicsStep
		for rep.Elapsed < opts.Simulate {
			rep.Elapsed += step
			if rep.Result = m.Tick(step); rep.Result.Terminal() {
				break
			}
		}
	}

	rep.Snapshot, err = m.Snapshot().Encode()
	if err != nil {
		return rep, err
	}
	return rep, nil
}
