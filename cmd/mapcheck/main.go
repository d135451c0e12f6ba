package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/milk9111/bomberman/levels"
	"github.com/milk9111/bomberman/prefabs"
)

func main() {
	all := flag.Bool("all", false, "check every embedded map")
	simulate := flag.Float64("simulate", 0, "seconds of idle play to simulate after building")
	seed := flag.Uint64("seed", 1, "seed for hidden exits")
	dump := flag.String("dump", "", "directory to write msgpack snapshots to")
	flag.Parse()

	names := flag.Args()
	if *all {
		names = append(names, levels.List()...)
	}
	if len(names) == 0 {
		fmt.Fprintln(os.Stderr, "usage: mapcheck [-all] [-simulate seconds] [-seed n] [-dump dir] map.properties...")
		os.Exit(2)
	}

	tuning, err := prefabs.LoadTuning()
	if err != nil {
		log.Fatal(err)
	}

	failed := 0
	for _, name := range names {
		desc, err := levels.LoadFile(name)
		if err != nil {
			log.Printf("mapcheck: %v", err)
			failed++
			continue
		}

		rep, err := check(name, desc, checkOptions{Tuning: tuning, Seed: *seed, Simulate: *simulate})
		fmt.Print(rep.String())
		if err != nil {
			fmt.Printf("  FAIL: %v\n", err)
			failed++
			continue
		}

		if *dump != "" {
			base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
			path := filepath.Join(*dump, base+".msgpack")
			if err := os.WriteFile(path, rep.Snapshot, 0o644); err != nil {
				log.Printf("mapcheck: dump %s: %v", path, err)
				failed++
				continue
			}
			fmt.Printf("  snapshot: %s (%d bytes)\n", path, len(rep.Snapshot))
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}
