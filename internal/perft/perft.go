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

// Package perft drives a recursive node-count traversal of a position to a
// fixed depth, optionally broken down per root move (divide), plus the
// auxiliary counters (captures, en passant, castles, promotions, checks,
// checkmates) a perft fixture table reports alongside the raw node count.
package perft

import (
	"sort"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kallisti-dev/chesscore/internal/movegen"
	"github.com/kallisti-dev/chesscore/internal/position"
	. "github.com/kallisti-dev/chesscore/internal/types"
	"github.com/kallisti-dev/chesscore/internal/uci"
	"github.com/kallisti-dev/chesscore/internal/util"
)

var out = message.NewPrinter(language.German)

// Perft runs a fixed-depth node-count traversal and accumulates counters
// broken down by move kind. Reuse one instance across successive calls to
// StartPerft; each call resets the counters.
type Perft struct {
	Nodes            uint64
	CheckCounter     uint64
	CheckMateCounter uint64
	CaptureCounter   uint64
	EnpassantCounter uint64
	CastleCounter    uint64
	PromotionCounter uint64
	stopFlag         bool
}

// DivideEntry is the per-root-move subtree count reported by Divide, in
// the perftree wire format: a UCI move string paired with the node count
// of the subtree below it.
type DivideEntry struct {
	Move  string
	Nodes uint64
}

// NewPerft creates a new empty Perft instance.
func NewPerft() *Perft {
	return &Perft{}
}

// Stop requests that a perft run in progress on another goroutine abort
// as soon as it next checks in.
func (perft *Perft) Stop() {
	perft.stopFlag = true
}

// StartPerftMulti runs StartPerft for every depth in [startDepth, endDepth].
func (perft *Perft) StartPerftMulti(fen string, startDepth int, endDepth int) {
	perft.stopFlag = false
	for i := startDepth; i <= endDepth; i++ {
		if perft.stopFlag {
			out.Print("Perft multi depth stopped\n")
			return
		}
		perft.StartPerft(fen, i)
	}
}

// StartPerft runs a single fixed-depth perft traversal from fen, printing
// a human-readable report, and leaves the resulting counters on perft.
func (perft *Perft) StartPerft(fen string, depth int) {
	perft.stopFlag = false

	if depth <= 0 {
		depth = 1
	}

	perft.resetCounter()
	pos, _ := position.NewPositionFen(fen)
	mgList := make([]*movegen.Movegen, depth+1)
	for i := 0; i <= depth; i++ {
		mgList[i] = movegen.NewMoveGen()
	}

	out.Printf("Performing PERFT Test for Depth %d\n", depth)
	out.Printf("FEN: %s\n", fen)
	out.Printf("-----------------------------------------\n")

	start := time.Now()
	result := perft.miniMax(depth, pos, mgList)
	elapsed := time.Since(start)

	if result == 0 {
		out.Print("Perft stopped\n")
		return
	}
	perft.Nodes = result

	out.Printf("Time         : %s\n", elapsed)
	out.Printf("NPS          : %d nps\n", util.Nps(perft.Nodes, elapsed))
	out.Printf("Results:\n")
	out.Printf("   Nodes     : %d\n", perft.Nodes)
	out.Printf("   Captures  : %d\n", perft.CaptureCounter)
	out.Printf("   EnPassant : %d\n", perft.EnpassantCounter)
	out.Printf("   Checks    : %d\n", perft.CheckCounter)
	out.Printf("   CheckMates: %d\n", perft.CheckMateCounter)
	out.Printf("   Castles   : %d\n", perft.CastleCounter)
	out.Printf("   Promotions: %d\n", perft.PromotionCounter)
	out.Printf("-----------------------------------------\n")
	out.Printf("Finished PERFT Test for Depth %d\n\n", depth)
}

// Divide runs the traversal one ply shallower per legal root move and
// returns the per-move subtree counts sorted by UCI move string, matching
// the perftree wire format ("<uci> <count>" per line, blank line, total).
// moves, if non-empty, are UCI moves applied to pos before dividing (the
// perftree "[<moves>]" argument).
func (perft *Perft) Divide(pos *position.Position, depth int, moves []string) ([]DivideEntry, uint64, error) {
	mg := movegen.NewMoveGen()
	if err := uci.ApplySequence(mg, pos, moves); err != nil {
		return nil, 0, err
	}

	if depth <= 0 {
		return nil, 1, nil
	}

	perft.resetCounter()
	mgList := make([]*movegen.Movegen, depth)
	for i := 0; i < depth; i++ {
		mgList[i] = movegen.NewMoveGen()
	}

	rootMoves := mg.GenerateLegalMoves(pos, movegen.GenAll)
	entries := make([]DivideEntry, 0, rootMoves.Len())
	var total uint64

	for _, m := range *rootMoves {
		pos.DoMove(m)
		var subNodes uint64
		if depth > 1 {
			subNodes = perft.miniMax(depth-1, pos, mgList)
		} else {
			subNodes = 1
		}
		pos.UndoMove()
		entries = append(entries, DivideEntry{Move: m.String(), Nodes: subNodes})
		total += subNodes
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Move < entries[j].Move })
	perft.Nodes = total
	return entries, total, nil
}

func (perft *Perft) miniMax(depth int, p *position.Position, movegens []*movegen.Movegen) uint64 {
	totalNodes := uint64(0)
	moves := movegens[depth].GeneratePseudoLegalMoves(p, movegen.GenAll)
	for _, move := range *moves {
		if perft.stopFlag {
			return 0
		}
		if depth > 1 {
			p.DoMove(move)
			if p.WasLegalMove() {
				totalNodes += perft.miniMax(depth-1, p, movegens)
			}
			p.UndoMove()
			continue
		}

		capture := p.IsCapturingMove(move)
		enpassant := move.MoveType() == EnPassant
		castling := move.MoveType() == Castling
		promotion := move.MoveType() == Promotion
		givesCheck := p.GivesCheck(move)
		p.DoMove(move)
		if p.WasLegalMove() {
			totalNodes++
			if enpassant {
				perft.EnpassantCounter++
				perft.CaptureCounter++
			} else if capture {
				perft.CaptureCounter++
			}
			if castling {
				perft.CastleCounter++
			}
			if promotion {
				perft.PromotionCounter++
			}
			if givesCheck {
				perft.CheckCounter++
				if !movegens[0].HasLegalMove(p) {
					perft.CheckMateCounter++
				}
			}
		}
		p.UndoMove()
	}
	return totalNodes
}

func (perft *Perft) resetCounter() {
	perft.Nodes = 0
	perft.CheckCounter = 0
	perft.CheckMateCounter = 0
	perft.CaptureCounter = 0
	perft.EnpassantCounter = 0
	perft.CastleCounter = 0
	perft.PromotionCounter = 0
}
