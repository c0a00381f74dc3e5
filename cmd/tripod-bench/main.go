// Command tripod-bench stress-tests tripod trees of configurable sizes.
//
// For every size it builds a tree by random insertions, cuts it apart and
// re-joins it at random positions, and removes half of its elements again.
// After every phase the tree's invariants are checked and its height is
// compared to the bound guaranteed by the balance criterion. Timings are
// reported per operation.
//
// Usage:
//
//	tripod-bench [-config bench.toml] [-sizes 1000,100000] [-rounds 500] [-seed 7] [-trace Debug] [-outline]
package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/tripod"
	"github.com/npillmayer/tripod/inspect"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out io.Writer) int {
	cfg, err := parseFlags(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	tracing.Select("tripod").SetTraceLevel(tracing.TraceLevelFromString(cfg.TraceLevel))
	failed := false
	for _, n := range cfg.Sizes {
		if err := benchSize(out, cfg, n); err != nil {
			fmt.Fprintf(out, "%s n=%d: %v\n", color.RedString("FAIL"), n, err)
			failed = true
		}
	}
	if failed {
		return 1
	}
	return 0
}

func parseFlags(args []string) (benchConfig, error) {
	fs := flag.NewFlagSet("tripod-bench", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to TOML configuration file")
	sizes := fs.String("sizes", "", "Comma separated list of tree sizes")
	rounds := fs.Int("rounds", -1, "Split/append round trips per size")
	seed := fs.Uint64("seed", 0, "Seed for random positions")
	trace := fs.String("trace", "", "Trace level (Error, Info, Debug)")
	outline := fs.Bool("outline", false, "Print outlines of trees with up to 64 elements")
	if err := fs.Parse(args); err != nil {
		return benchConfig{}, err
	}
	cfg, err := loadConfig(*configPath)
	if err != nil {
		return cfg, err
	}
	if *sizes != "" {
		if cfg.Sizes, err = parseSizes(*sizes); err != nil {
			return cfg, err
		}
	}
	if *rounds >= 0 {
		cfg.Rounds = *rounds
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *trace != "" {
		cfg.TraceLevel = *trace
	}
	cfg.Outline = cfg.Outline || *outline
	return cfg, cfg.validate()
}

// benchSize runs all phases for trees of n elements.
func benchSize(out io.Writer, cfg benchConfig, n int) error {
	arena, err := tripod.NewArena(tripod.Config[int]{InitialCapacity: n})
	if err != nil {
		return err
	}
	p, err := arena.Exclusive()
	if err != nil {
		return err
	}
	defer p.Release()
	rnd := rand.New(rand.NewPCG(cfg.Seed, uint64(n)))
	tree := arena.NewTree()
	bound := tripod.MaxHeight(n)
	//
	start := time.Now()
	for i := range n {
		if err := tree.InsertAt(p, rnd.IntN(i+1), i); err != nil {
			return err
		}
	}
	if err := verify(p, tree, n, bound); err != nil {
		return fmt.Errorf("after inserts: %w", err)
	}
	report(out, "insert", n, n, time.Since(start), tree.Height(p), bound)
	//
	start = time.Now()
	for range cfg.Rounds {
		rest, err := tree.SplitOff(p, rnd.IntN(n+1))
		if err != nil {
			return err
		}
		if err := rest.Append(p, tree); err != nil {
			return err
		}
		tree = rest
	}
	if err := verify(p, tree, n, bound); err != nil {
		return fmt.Errorf("after split/append: %w", err)
	}
	report(out, "split+append", n, cfg.Rounds, time.Since(start), tree.Height(p), bound)
	//
	start = time.Now()
	removals := n / 2
	for i := range removals {
		if _, err := tree.RemoveAt(p, rnd.IntN(n-i)); err != nil {
			return err
		}
	}
	if err := verify(p, tree, n-removals, tripod.MaxHeight(n-removals)); err != nil {
		return fmt.Errorf("after removals: %w", err)
	}
	report(out, "remove", n, removals, time.Since(start), tree.Height(p), tripod.MaxHeight(n-removals))
	if cfg.Outline && tree.Len(p) <= 64 {
		if err := inspect.Print(inspect.ConsoleFromTerminal(), out, p, tree, nil); err != nil {
			return err
		}
	}
	tree.Clear(p)
	return nil
}

func verify(p *tripod.Permit[int], tree *tripod.Tree[int], n, bound int) error {
	if err := tree.Check(p); err != nil {
		return err
	}
	if tree.Len(p) != n {
		return fmt.Errorf("expected %d elements, have %d", n, tree.Len(p))
	}
	if h := tree.Height(p); h > bound {
		return fmt.Errorf("height %d exceeds bound %d", h, bound)
	}
	return nil
}

func report(out io.Writer, phase string, n, ops int, d time.Duration, height, bound int) {
	perOp := time.Duration(0)
	if ops > 0 {
		perOp = d / time.Duration(ops)
	}
	fmt.Fprintf(out, "%s n=%-8d %-13s %8d ops %12v/op  height %2d (bound %2d)\n",
		color.GreenString("ok  "), n, phase, ops, perOp, height, bound)
}
