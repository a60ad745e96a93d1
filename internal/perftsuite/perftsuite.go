// Package perftsuite runs perft reference suites against the board
// package: every entry pairs a FEN with the known node counts per depth,
// and a run reports where the move generator diverges.
package perftsuite

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/op/go-logging"

	"github.com/hailam/chesskit/board"
)

var log = logging.MustGetLogger("perftsuite")

// Entry is one suite position with its expected node counts per depth;
// index 0 holds the depth-1 count.
type Entry struct {
	Name     string  `toml:"name"`
	FEN      string  `toml:"fen"`
	Expected []int64 `toml:"expected"`
}

// Suite is a named collection of perft positions.
type Suite struct {
	Name    string  `toml:"name"`
	Entries []Entry `toml:"entry"`
}

// Load reads a suite definition from a TOML file.
func Load(path string) (*Suite, error) {
	var s Suite
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return nil, fmt.Errorf("load suite %s: %w", path, err)
	}
	if len(s.Entries) == 0 {
		return nil, fmt.Errorf("load suite %s: no entries", path)
	}
	return &s, nil
}

// Result reports one depth of one entry.
type Result struct {
	Entry    string
	FEN      string
	Depth    int
	Nodes    int64
	Expected int64
	Elapsed  time.Duration
	OK       bool
}

// Run executes every entry of the suite. maxDepth caps the configured
// depths; zero means no cap. The returned results are in suite order.
func (s *Suite) Run(maxDepth int) ([]Result, error) {
	var results []Result

	for _, e := range s.Entries {
		p, err := board.NewPositionFromFEN(e.FEN)
		if err != nil {
			return results, fmt.Errorf("entry %q: %w", e.Name, err)
		}

		for i, expected := range e.Expected {
			depth := i + 1
			if maxDepth > 0 && depth > maxDepth {
				break
			}

			start := time.Now()
			nodes := board.Perft(p, depth)
			elapsed := time.Since(start)

			ok := nodes == expected
			if ok {
				log.Debugf("%s depth %d: %d nodes in %v", e.Name, depth, nodes, elapsed)
			} else {
				log.Errorf("%s depth %d: got %d nodes, want %d", e.Name, depth, nodes, expected)
			}

			results = append(results, Result{
				Entry:    e.Name,
				FEN:      e.FEN,
				Depth:    depth,
				Nodes:    nodes,
				Expected: expected,
				Elapsed:  elapsed,
				OK:       ok,
			})
		}
	}

	return results, nil
}

// Default returns the built-in reference suite: the classic positions
// every move generator is checked against.
func Default() *Suite {
	return &Suite{
		Name: "reference",
		Entries: []Entry{
			{
				Name:     "start position",
				FEN:      board.StartFEN,
				Expected: []int64{20, 400, 8902, 197281},
			},
			{
				Name:     "kiwipete",
				FEN:      "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
				Expected: []int64{48, 2039, 97862},
			},
			{
				Name:     "en passant endgame",
				FEN:      "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
				Expected: []int64{14, 191, 2812, 43238},
			},
			{
				Name:     "promotion tangle",
				FEN:      "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
				Expected: []int64{44, 1486, 62379},
			},
		},
	}
}
