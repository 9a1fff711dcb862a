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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kallisti-dev/chesscore/internal/position"
	. "github.com/kallisti-dev/chesscore/internal/types"
)

func TestGeneratePseudoLegalMovesStartPosition(t *testing.T) {
	pos := position.NewPosition()
	mg := NewMoveGen()

	moves := mg.GeneratePseudoLegalMoves(pos, GenAll)
	assert.Equal(t, 20, moves.Len())

	cap := mg.GeneratePseudoLegalMoves(pos, GenCap)
	assert.Equal(t, 0, cap.Len())

	nonCap := mg.GeneratePseudoLegalMoves(pos, GenNonCap)
	assert.Equal(t, 20, nonCap.Len())
}

func TestGeneratePseudoLegalMovesSorted(t *testing.T) {
	pos := position.NewPosition()
	mg := NewMoveGen()
	moves := mg.GeneratePseudoLegalMoves(pos, GenAll)
	for i := 1; i < moves.Len(); i++ {
		prev, cur := moves.At(i-1), moves.At(i)
		if prev.From() != cur.From() {
			assert.Less(t, prev.From(), cur.From())
			continue
		}
		if prev.To() != cur.To() {
			assert.Less(t, prev.To(), cur.To())
			continue
		}
		assert.LessOrEqual(t, prev.PromotionType(), cur.PromotionType())
	}
}

func TestGenerateLegalMovesFiltersCastlingThroughCheck(t *testing.T) {
	pos, err := position.NewPositionFen("r3k2r/1ppn3p/2q1q1n1/8/2q1Pp2/B5R1/p1p2PPP/1R4K1 b kq e3")
	assert.NoError(t, err)
	mg := NewMoveGen()

	legal := mg.GenerateLegalMoves(pos, GenAll)
	found00, found000 := false, false
	for _, m := range *legal {
		if m == NewMove(SqE8, SqG8, Castling, PtNone) {
			found00 = true
		}
		if m == NewMove(SqE8, SqC8, Castling, PtNone) {
			found000 = true
		}
	}
	assert.False(t, found00, "O-O crosses an attacked square and must not be legal")
	assert.True(t, found000, "O-O-O is legal here")
}

func TestGenerateLegalMovesKiwipeteCount(t *testing.T) {
	pos, err := position.NewPositionFen("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	mg := NewMoveGen()
	legal := mg.GenerateLegalMoves(pos, GenAll)
	assert.Equal(t, 48, legal.Len())
}

func TestHasLegalMove(t *testing.T) {
	pos := position.NewPosition()
	mg := NewMoveGen()
	assert.True(t, mg.HasLegalMove(pos))

	// fool's mate - white to move is checkmated
	mated, err := position.NewPositionFen("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	assert.NoError(t, err)
	assert.False(t, mg.HasLegalMove(mated))
}

func TestHasLegalMoveStalemate(t *testing.T) {
	pos, err := position.NewPositionFen("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	assert.NoError(t, err)
	mg := NewMoveGen()
	assert.False(t, mg.HasLegalMove(pos))
	assert.False(t, pos.HasCheck())
}

func TestGetMoveFromUci(t *testing.T) {
	pos := position.NewPosition()
	mg := NewMoveGen()

	m := mg.GetMoveFromUci(pos, "e2e4")
	assert.Equal(t, NewMove(SqE2, SqE4, Normal, PtNone), m)
	assert.Equal(t, "e2e4", m.String())

	assert.Equal(t, MoveNone, mg.GetMoveFromUci(pos, "e2e5"))
	assert.Equal(t, MoveNone, mg.GetMoveFromUci(pos, "not-a-move"))
}

func TestGetMoveFromUciPromotion(t *testing.T) {
	pos, err := position.NewPositionFen("8/3P1k2/8/8/8/8/8/7K w - -")
	assert.NoError(t, err)
	mg := NewMoveGen()

	m := mg.GetMoveFromUci(pos, "d7d8q")
	assert.Equal(t, NewMove(SqD7, SqD8, Promotion, Queen), m)
}

func TestValidateMove(t *testing.T) {
	pos := position.NewPosition()
	mg := NewMoveGen()

	assert.True(t, mg.ValidateMove(pos, NewMove(SqE2, SqE4, Normal, PtNone)))
	assert.False(t, mg.ValidateMove(pos, NewMove(SqE2, SqE5, Normal, PtNone)))
	assert.False(t, mg.ValidateMove(pos, MoveNone))
}
