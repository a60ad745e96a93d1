// Command perft runs perft reference suites against the move generator
// and reports node counts, timings and mismatches.
//
// Usage:
//
//	perft                    run the built-in reference suite
//	perft -suite file.toml   run a suite definition from disk
//	perft -depth 3           cap the search depth
//	perft -fen "..."         divide a single position instead
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/fatih/color"
	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/hailam/chesskit/board"
	"github.com/hailam/chesskit/internal/perftsuite"
)

var (
	suitePath = flag.String("suite", "", "TOML suite definition (default: built-in reference suite)")
	maxDepth  = flag.Int("depth", 0, "depth cap, 0 runs all configured depths")
	fen       = flag.String("fen", "", "divide a single FEN at -depth instead of running a suite")
	verbose   = flag.Bool("v", false, "debug logging")
)

var num = message.NewPrinter(language.English)

func main() {
	flag.Parse()

	level := logging.INFO
	if *verbose {
		level = logging.DEBUG
	}
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend,
		logging.MustStringFormatter("%{time:15:04:05.000} %{module} %{level:.4s} %{message}"))
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(level, "")
	logging.SetBackend(leveled)

	if *fen != "" {
		if err := divide(*fen, *maxDepth); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	suite := perftsuite.Default()
	if *suitePath != "" {
		loaded, err := perftsuite.Load(*suitePath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		suite = loaded
	}

	start := time.Now()
	results, err := suite.Run(*maxDepth)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ok := color.New(color.FgGreen).SprintFunc()
	fail := color.New(color.FgRed, color.Bold).SprintFunc()

	failures := 0
	var nodes int64
	for _, r := range results {
		nodes += r.Nodes
		status := ok("ok")
		if !r.OK {
			status = fail("FAIL")
			failures++
		}
		num.Printf("%-24s depth %d  %12d nodes  %10v  %s\n",
			r.Entry, r.Depth, r.Nodes, r.Elapsed.Round(time.Millisecond), status)
		if !r.OK {
			num.Printf("%-24s expected %d\n", "", r.Expected)
		}
	}

	elapsed := time.Since(start)
	num.Printf("\n%s: %d nodes in %v (%.0f nodes/s)\n",
		suite.Name, nodes, elapsed.Round(time.Millisecond),
		float64(nodes)/elapsed.Seconds())

	if failures > 0 {
		fmt.Println(fail(num.Sprintf("%d mismatches", failures)))
		os.Exit(1)
	}
}

// divide prints the node count below every root move of a position, the
// standard way to localize a generator bug.
func divide(fen string, depth int) error {
	if depth <= 0 {
		depth = 1
	}

	p, err := board.NewPositionFromFEN(fen)
	if err != nil {
		return err
	}

	counts := board.PerftDivide(p, depth)
	moves := make([]string, 0, len(counts))
	for m := range counts {
		moves = append(moves, m)
	}
	sort.Strings(moves)

	var total int64
	for _, m := range moves {
		num.Printf("%s: %d\n", m, counts[m])
		total += counts[m]
	}
	num.Printf("\ntotal: %d\n", total)
	return nil
}
