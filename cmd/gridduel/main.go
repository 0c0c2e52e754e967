// Command gridduel answers one turn of the arena duel:
//
//	gridduel [flags] playerId board life1 life2 bullets1 bullets2
//
// and prints the chosen action. With -scenarios or -random it evaluates many
// turns instead and writes a JSON summary.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gridduel/internal/config"
	"gridduel/internal/grid"
	"gridduel/internal/policy"
	"gridduel/internal/util"
)

func main() {
	var cfgPath, scenarios, out string
	var seed int64
	var n, workers int
	var verbose, render bool
	flag.StringVar(&cfgPath, "config", "", "policy tuning file (yaml)")
	flag.StringVar(&scenarios, "scenarios", "", "batch: yaml file of scenarios")
	flag.IntVar(&n, "random", 0, "batch: number of random boards")
	flag.Int64Var(&seed, "seed", 0, "seed for -random (0 = now)")
	flag.StringVar(&out, "out", "summary.json", "batch summary file")
	flag.IntVar(&workers, "workers", 8, "batch workers")
	flag.BoolVar(&verbose, "v", false, "debug log on stderr")
	flag.BoolVar(&render, "render", false, "draw the board on stderr")
	flag.Parse()

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	pc, err := config.LoadPolicy(cfgPath)
	if err != nil {
		fail(err)
	}
	pol := policy.New(*pc, log)

	if scenarios == "" && n <= 0 {
		if err := runSingle(os.Stdout, os.Stderr, pol, flag.Args(), render); err != nil {
			fail(err)
		}
		return
	}

	var items []config.Scenario
	if scenarios != "" {
		sc, err := config.LoadScenarios(scenarios)
		if err != nil {
			fail(err)
		}
		items = sc.Scenarios
	}
	if n > 0 {
		rng, used := util.New(seed)
		log.Info("random scenarios", "n", n, "seed", used)
		items = append(items, randomScenarios(rng, n)...)
	}

	sum := runBatch(pol, items, workers)
	if err := os.WriteFile(out, marshalPretty(sum), 0644); err != nil {
		fail(err)
	}
	fmt.Fprintf(os.Stderr, "Batch %d done, %d mismatches, %d errors -> %s\n",
		sum.Runs, len(sum.Mismatches), sum.Errors, filepath.Base(out))
}

func runSingle(stdout, stderr io.Writer, pol *policy.Policy, args []string, render bool) error {
	in, err := policy.ParseArgs(args)
	if err != nil {
		return err
	}
	if render {
		if b, err := grid.Decode(in.Board); err == nil {
			fmt.Fprint(stderr, grid.Render(b))
		}
	}
	d, err := pol.Decide(in)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, d.Action)
	return err
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
