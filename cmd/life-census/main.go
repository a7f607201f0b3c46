package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	steps := flag.Int("steps", 500, "maximum generations per soup")
	soups := flag.Int("soups", 64, "number of random soups to run")
	firstSeed := flag.Int64("seed", 1, "seed of the first soup; later soups count up")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel soups")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "life-census"})
	if *soups <= 0 || *steps <= 0 || *workers <= 0 {
		logger.Fatal("steps, soups and workers must be positive")
	}

	fmt.Printf("Running %d soups (%d workers, up to %d steps)\n", *soups, *workers, *steps)

	start := time.Now()
	results := make([]censusResult, *soups)
	var group errgroup.Group
	group.SetLimit(*workers)
	for i := range results {
		group.Go(func() error {
			results[i] = runSoup(*firstSeed+int64(i), *steps)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		logger.Fatal("census failed", "err", err)
	}

	counts := map[fate]int{}
	for _, res := range results {
		counts[res.fate]++
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].oldest != results[j].oldest {
			return results[i].oldest > results[j].oldest
		}
		return results[i].seed < results[j].seed
	})

	fmt.Printf("\nFates (elapsed %s): extinct=%d still=%d period-2=%d active=%d\n",
		time.Since(start).Round(time.Millisecond),
		counts[fateExtinct], counts[fateStill], counts[fateOscillator], counts[fateActive])
	fmt.Println("\nOldest survivors:")
	for i := 0; i < len(results) && i < 5; i++ {
		fmt.Printf("%2d) %s\n", i+1, results[i])
	}
}
