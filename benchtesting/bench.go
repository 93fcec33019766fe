package main

import (
	"flag"
	"fmt"
	"math/rand"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
	"github.com/snowshoe/tagmatch/core"
	"github.com/snowshoe/tagmatch/geometry"
	"github.com/snowshoe/tagmatch/options"
	"github.com/snowshoe/tagmatch/tagdef"
	"github.com/snowshoe/tagmatch/util"
	"golang.org/x/sync/errgroup"
)

// jitter returns reference scaled, shifted and with every dot moved by up to
// noise units, the way a hand drawn copy would be.
func jitter(rnd *rand.Rand, reference geometry.PointSet, noise float64) geometry.PointSet {
	scale := 0.5 + rnd.Float64()*3
	dx := rnd.Float64()*2000 - 1000
	dy := rnd.Float64()*2000 - 1000
	return reference.Map(func(p geometry.Point) geometry.Point {
		return p.Translate(rnd.Float64()*2*noise-noise, rnd.Float64()*2*noise-noise).Scale(scale).Translate(dx, dy)
	})
}

func main() {
	iterations := flag.Int("n", 100000, "matches per pattern")
	noise := flag.Float64("noise", 8, "per dot jitter before scaling")
	workers := flag.Int("workers", runtime.NumCPU(), "concurrent workers")
	memProfile := flag.Bool("mem", false, "heap profile instead of CPU")
	flag.Parse()

	mode := profile.CPUProfile
	if *memProfile {
		mode = profile.MemProfileHeap
	}
	p := profile.Start(mode, profile.ProfilePath("."))
	defer p.Stop()

	runID := uuid.New()
	matcher, err := core.NewMatcher(options.NewMatchOptions(nil))
	if err != nil {
		log.Fatalf("boomage %v", err)
	}
	nWorkers := util.Max(*workers, 1)

	for _, id := range tagdef.Builtin.IDs() {
		def, err := tagdef.Builtin.Lookup(id)
		if err != nil {
			log.Fatalf("boomage %v", err)
		}
		reference, err := core.ParsePointSet(def, matcher.Options().PatternSize)
		if err != nil {
			log.Fatalf("boomage %v", err)
		}

		var matched, failed atomic.Int64
		slowest := make([]time.Duration, nWorkers)
		per := *iterations / nWorkers

		start := time.Now()
		var g errgroup.Group
		for w := 0; w < nWorkers; w++ {
			w := w
			g.Go(func() error {
				rnd := rand.New(rand.NewSource(int64(id*1000 + w)))
				for i := 0; i < per; i++ {
					input := jitter(rnd, reference, *noise)
					t := time.Now()
					res, err := matcher.MatchPoints(reference, input)
					slowest[w] = util.Max(slowest[w], time.Since(t))
					if err != nil {
						failed.Add(1)
						continue
					}
					if res.Matched {
						matched.Add(1)
					}
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			log.Errorf("Error running pattern %d: %v\n", id, err)
			continue
		}

		total := per * nWorkers
		elapsed := time.Since(start)
		log.WithField("run", runID.String()).Infof("pattern %d", id)
		fmt.Printf("pattern %d: %d matches in %d ms (%.2f us/match, slowest %s)\n",
			id, total, elapsed.Milliseconds(), float64(elapsed.Microseconds())/float64(total), util.Max(slowest...))
		fmt.Printf("  matched %d, rejected %d, errors %d\n", matched.Load(), int64(total)-matched.Load()-failed.Load(), failed.Load())
	}
}
