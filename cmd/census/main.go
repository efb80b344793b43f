package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"time"

	"mad-life/internal/sims/life"

	"golang.org/x/sync/errgroup"
)

func main() {
	runs := flag.Int("runs", 32, "number of seeds to simulate")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel runs")
	rounds := flag.Int("rounds", 2000, "maximum rounds per run")
	seed := flag.Int64("seed", 1, "first seed; run i uses seed+i")
	half := flag.Int("half", 40, "grid half length H")
	count := flag.Int("count", -1, "live cells to seed (-1 means H²)")
	region := flag.String("region", string(life.RegionQuadrant), "seed region: quadrant or full")
	flag.Parse()

	cfg := life.DefaultConfig()
	cfg.Half = *half
	cfg.SeedCount = *half * *half
	if *count >= 0 {
		cfg.SeedCount = *count
	}
	cfg.Region = life.SeedRegion(*region)
	// Runs are already parallel; keep each step on one goroutine.
	cfg.Workers = 1
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	fmt.Printf("Running %d seeds (%d workers, %d max rounds, H=%d, %d seeded in %s)\n",
		*runs, *workers, *rounds, cfg.Half, cfg.SeedCount, cfg.Region)

	results := make([]life.CensusResult, *runs)
	var eg errgroup.Group
	eg.SetLimit(max(*workers, 1))
	start := time.Now()
	for i := range results {
		eg.Go(func() error {
			res, err := life.RunCensus(cfg, *seed+int64(i), *rounds)
			if err != nil {
				return fmt.Errorf("seed %d: %w", *seed+int64(i), err)
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	outcomes := map[life.Outcome]int{}
	totalRounds := 0
	for _, res := range results {
		outcomes[res.Outcome]++
		totalRounds += res.Rounds
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Rounds > results[j].Rounds })

	fmt.Printf("\nLongest runs (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(results) && i < 5; i++ {
		res := results[i]
		fmt.Printf("%2d) seed=%d rounds=%d survival=%d peak=%d outcome=%s\n",
			i+1, res.Seed, res.Rounds, res.Survival, res.PeakSurvival, res.Outcome)
	}

	fmt.Printf("\nOutcomes: extinct=%d stable=%d oscillating=%d running=%d\n",
		outcomes[life.OutcomeExtinct], outcomes[life.OutcomeStable], outcomes[life.OutcomeOscillating], outcomes[life.OutcomeRunning])
	if len(results) > 0 {
		fmt.Printf("Mean rounds: %.1f\n", float64(totalRounds)/float64(len(results)))
	}
}
