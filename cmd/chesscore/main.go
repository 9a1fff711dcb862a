//
// chesscore - move generation and perft engine
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Command chesscore implements the perftree driver protocol: invoked as
// "chesscore <depth> <fen> [<moves>]", it applies the (optional) UCI move
// sequence to the FEN-parsed position, then for each legal root move
// prints "<uci> <subtree_count>" on its own line, a blank line, and the
// total node count, all on stdout. With no positional args it falls back
// to config.Settings.Perft.DefaultDepth/DefaultFen.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/profile"

	"github.com/kallisti-dev/chesscore/internal/config"
	"github.com/kallisti-dev/chesscore/internal/logging"
	"github.com/kallisti-dev/chesscore/internal/perft"
	"github.com/kallisti-dev/chesscore/internal/position"
)

func main() {
	profileRun := flag.Bool("profile", false, "wrap the run in a CPU profile written to ./cpu.pprof")
	logLvl := flag.String("loglvl", "info", "standard log level\n(critical|error|warning|notice|info|debug)")
	divide := flag.Bool("divide", false, "also print the total node count to stderr (the per-root-move counts are always printed)")
	flag.Parse()

	config.Setup()
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	logging.GetLog()

	if *profileRun {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	args := flag.Args()
	if len(args) == 1 {
		fmt.Fprintln(os.Stderr, "usage: chesscore [-profile] [-loglvl level] [-divide] [<depth> <fen> [<moves>]]")
		os.Exit(2)
	}

	depth := config.Settings.Perft.DefaultDepth
	fen := config.Settings.Perft.DefaultFen
	var moves []string

	if len(args) >= 2 {
		var err error
		depth, err = strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid depth %q: %v\n", args[0], err)
			os.Exit(2)
		}
		fen = args[1]
		if len(args) > 2 {
			moves = strings.Fields(args[2])
		}
	}

	pos, err := position.NewPositionFen(fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid fen %q: %v\n", fen, err)
		os.Exit(2)
	}

	var p perft.Perft
	entries, total, err := p.Divide(pos, depth, moves)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for _, e := range entries {
		fmt.Printf("%s %d\n", e.Move, e.Nodes)
	}
	fmt.Println()
	fmt.Println(total)

	if *divide {
		fmt.Fprintf(os.Stderr, "total nodes: %d\n", total)
	}
}
