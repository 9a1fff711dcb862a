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

// Package uci is the UCI move-notation codec: four characters "from to"
// plus an optional promotion letter (e.g. "e7e8q"), bijective with the
// internal Move representation. It is the wire format the perftree
// driver's "<depth> <fen> [<moves>]" invocation uses for its move list.
package uci

import (
	"fmt"
	"regexp"

	"github.com/kallisti-dev/chesscore/internal/movegen"
	"github.com/kallisti-dev/chesscore/internal/position"
	. "github.com/kallisti-dev/chesscore/internal/types"
)

var regexUciMove = regexp.MustCompile(`^[a-h][1-8][a-h][1-8][nbrqNBRQ]?$`)

// IsWellFormed reports whether s has the shape of a UCI move string,
// without checking it against any position.
func IsWellFormed(s string) bool {
	return regexUciMove.MatchString(s)
}

// MoveToUci renders m in UCI notation ("e2e4", "e7e8q").
func MoveToUci(m Move) string {
	return m.String()
}

// MoveFromUci resolves uciMove against the legal moves available on pos,
// returning MoveNone if uciMove is malformed or matches no legal move.
func MoveFromUci(mg *movegen.Movegen, pos *position.Position, uciMove string) Move {
	if !IsWellFormed(uciMove) {
		return MoveNone
	}
	return mg.GetMoveFromUci(pos, uciMove)
}

// ApplySequence plays each of moves (UCI notation) onto pos in order,
// using mg to resolve each string against the legal moves of the
// position it is played from. It stops and returns an error identifying
// the first move that does not resolve, leaving pos advanced through
// every move before it.
func ApplySequence(mg *movegen.Movegen, pos *position.Position, moves []string) error {
	for i, uciMove := range moves {
		m := MoveFromUci(mg, pos, uciMove)
		if m == MoveNone {
			return fmt.Errorf("uci: move %d (%q) is not legal in %s", i, uciMove, pos.StringFen())
		}
		pos.DoMove(m)
	}
	return nil
}
