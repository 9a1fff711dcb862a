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

// Package movegen generates pseudo-legal and legal moves for a position.
package movegen

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kallisti-dev/chesscore/internal/config"
	"github.com/kallisti-dev/chesscore/internal/moveslice"
	"github.com/kallisti-dev/chesscore/internal/position"
	. "github.com/kallisti-dev/chesscore/internal/types"
)

// Movegen reuses its output buffers across calls to avoid reallocating
// on every ply of a traversal. Create one with NewMoveGen per
// concurrently-used search/traversal branch.
type Movegen struct {
	pseudoLegalMoves *moveslice.MoveSlice
	legalMoves       *moveslice.MoveSlice
}

// GenMode selects which subset of moves to generate.
type GenMode int

const (
	GenZero   GenMode = 0b00
	GenCap    GenMode = 0b01
	GenNonCap GenMode = 0b10
	GenAll    GenMode = 0b11
)

// NewMoveGen creates a move generator with freshly allocated buffers,
// sized from config.Settings.Perft.MoveBufferCapacity.
func NewMoveGen() *Movegen {
	capacity := config.Settings.Perft.MoveBufferCapacity
	return &Movegen{
		pseudoLegalMoves: moveslice.NewMoveSlice(capacity),
		legalMoves:       moveslice.NewMoveSlice(capacity),
	}
}

// GeneratePseudoLegalMoves generates moves for the next player to move
// without checking whether the mover's own king is left in check, or
// whether a castling king crosses an attacked square. The returned slice
// is sorted lexicographically by (from, to, promotion type) and is
// reused by the next call - copy it if it must outlive that call.
func (mg *Movegen) GeneratePseudoLegalMoves(pos *position.Position, mode GenMode) *moveslice.MoveSlice {
	mg.pseudoLegalMoves.Clear()
	if mode&GenCap != 0 {
		mg.generatePawnMoves(pos, GenCap, mg.pseudoLegalMoves)
		mg.generateCastling(pos, GenCap, mg.pseudoLegalMoves)
		mg.generateKingMoves(pos, GenCap, mg.pseudoLegalMoves)
		mg.generateOfficerMoves(pos, GenCap, mg.pseudoLegalMoves)
	}
	if mode&GenNonCap != 0 {
		mg.generatePawnMoves(pos, GenNonCap, mg.pseudoLegalMoves)
		mg.generateCastling(pos, GenNonCap, mg.pseudoLegalMoves)
		mg.generateKingMoves(pos, GenNonCap, mg.pseudoLegalMoves)
		mg.generateOfficerMoves(pos, GenNonCap, mg.pseudoLegalMoves)
	}
	mg.pseudoLegalMoves.Sort()
	return mg.pseudoLegalMoves
}

// GenerateLegalMoves generates pseudo-legal moves and filters out any
// that would leave the mover's king in check.
func (mg *Movegen) GenerateLegalMoves(pos *position.Position, mode GenMode) *moveslice.MoveSlice {
	mg.legalMoves.Clear()
	mg.GeneratePseudoLegalMoves(pos, mode)
	mg.pseudoLegalMoves.FilterCopy(mg.legalMoves, func(i int) bool {
		return pos.IsLegalMove(mg.pseudoLegalMoves.At(i))
	})
	return mg.legalMoves
}

// HasLegalMove reports whether the next player to move has at least one
// legal move, without generating the full move list. Checked in roughly
// most-likely-first order: king, pawns, officers, en passant.
func (mg *Movegen) HasLegalMove(pos *position.Position) bool {
	nextPlayer := pos.NextPlayer()
	nextPlayerBb := pos.OccupiedBb(nextPlayer)

	kingSquare := pos.KingSquare(nextPlayer)
	tmpMoves := GetPseudoAttacks(King, kingSquare) &^ nextPlayerBb
	for tmpMoves != 0 {
		toSquare := tmpMoves.PopLsb()
		if pos.IsLegalMove(NewMove(kingSquare, toSquare, Normal, PtNone)) {
			return true
		}
	}

	myPawns := pos.PiecesBb(nextPlayer, Pawn)
	opponentBb := pos.OccupiedBb(nextPlayer.Flip())
	myDir := Direction(nextPlayer.Direction())
	oppDir := Direction(nextPlayer.Flip().Direction())

	tmpMoves = ShiftBitboard(myPawns, myDir*North+West) & opponentBb
	for tmpMoves != 0 {
		toSquare := tmpMoves.PopLsb()
		fromSquare := toSquare.To(oppDir*North + East)
		if pos.IsLegalMove(NewMove(fromSquare, toSquare, Normal, PtNone)) {
			return true
		}
	}

	tmpMoves = ShiftBitboard(myPawns, myDir*North+East) & opponentBb
	for tmpMoves != 0 {
		toSquare := tmpMoves.PopLsb()
		fromSquare := toSquare.To(oppDir*North + West)
		if pos.IsLegalMove(NewMove(fromSquare, toSquare, Normal, PtNone)) {
			return true
		}
	}

	occupiedBb := pos.OccupiedAll()
	tmpMoves = ShiftBitboard(myPawns, myDir*North) &^ occupiedBb
	for tmpMoves != 0 {
		toSquare := tmpMoves.PopLsb()
		fromSquare := toSquare.To(oppDir * North)
		if pos.IsLegalMove(NewMove(fromSquare, toSquare, Normal, PtNone)) {
			return true
		}
	}

	for pt := Knight; pt <= Queen; pt++ {
		pieces := pos.PiecesBb(nextPlayer, pt)
		for pieces != 0 {
			fromSquare := pieces.PopLsb()
			moves := GetAttacksBb(pt, fromSquare, occupiedBb) &^ nextPlayerBb
			for moves != 0 {
				toSquare := moves.PopLsb()
				if pos.IsLegalMove(NewMove(fromSquare, toSquare, Normal, PtNone)) {
					return true
				}
			}
		}
	}

	enPassantSquare := pos.GetEnPassantSquare()
	if enPassantSquare != SqNone {
		tmpMoves = ShiftBitboard(enPassantSquare.Bb(), oppDir*North+West) & myPawns
		if tmpMoves != 0 {
			fromSquare := tmpMoves.PopLsb()
			if pos.IsLegalMove(NewMove(fromSquare, fromSquare.To(myDir*North+East), EnPassant, PtNone)) {
				return true
			}
		}
		tmpMoves = ShiftBitboard(enPassantSquare.Bb(), oppDir*North+East) & myPawns
		if tmpMoves != 0 {
			fromSquare := tmpMoves.PopLsb()
			if pos.IsLegalMove(NewMove(fromSquare, fromSquare.To(myDir*North+West), EnPassant, PtNone)) {
				return true
			}
		}
	}

	return false
}

var regexUciMove = regexp.MustCompile("([a-h][1-8][a-h][1-8])([NBRQnbrq])?")

// GetMoveFromUci generates all legal moves on pos and returns the one
// matching uciMove, or MoveNone if there is no match. Used to replay a
// perftree move sequence onto a position.
func (mg *Movegen) GetMoveFromUci(pos *position.Position, uciMove string) Move {
	matches := regexUciMove.FindStringSubmatch(uciMove)
	if matches == nil {
		return MoveNone
	}

	movePart := matches[1]
	promotionPart := ""
	if len(matches) == 3 {
		promotionPart = strings.ToUpper(matches[2])
	}

	mg.GenerateLegalMoves(pos, GenAll)
	for _, m := range *mg.legalMoves {
		if m.String() == strings.ToLower(movePart+promotionPart) {
			return m
		}
	}
	return MoveNone
}

// ValidateMove reports whether move is a legal move on pos.
func (mg *Movegen) ValidateMove(pos *position.Position, move Move) bool {
	if move == MoveNone {
		return false
	}
	ml := mg.GenerateLegalMoves(pos, GenAll)
	for _, m := range *ml {
		if move == m {
			return true
		}
	}
	return false
}

// String returns a short diagnostic description of mg.
func (mg *Movegen) String() string {
	return fmt.Sprintf("Movegen: { pseudoLegal: %d legal: %d }", mg.pseudoLegalMoves.Len(), mg.legalMoves.Len())
}

func (mg *Movegen) generatePawnMoves(pos *position.Position, mode GenMode, ml *moveslice.MoveSlice) {
	nextPlayer := pos.NextPlayer()
	myPawns := pos.PiecesBb(nextPlayer, Pawn)
	oppPieces := pos.OccupiedBb(nextPlayer.Flip())
	myDir := Direction(nextPlayer.Direction())
	oppDir := Direction(nextPlayer.Flip().Direction())

	if mode&GenCap != 0 {
		var tmpCaptures, promCaptures Bitboard

		for _, dir := range []Direction{West, East} {
			tmpCaptures = ShiftBitboard(myPawns, myDir*North+dir) & oppPieces
			promCaptures = tmpCaptures & nextPlayer.PromotionRankBb()
			for promCaptures != 0 {
				toSquare := promCaptures.PopLsb()
				fromSquare := toSquare.To(oppDir*North - dir)
				ml.PushBack(NewMove(fromSquare, toSquare, Promotion, Queen))
				ml.PushBack(NewMove(fromSquare, toSquare, Promotion, Knight))
				ml.PushBack(NewMove(fromSquare, toSquare, Promotion, Rook))
				ml.PushBack(NewMove(fromSquare, toSquare, Promotion, Bishop))
			}
			tmpCaptures &= ^nextPlayer.PromotionRankBb()
			for tmpCaptures != 0 {
				toSquare := tmpCaptures.PopLsb()
				fromSquare := toSquare.To(oppDir*North - dir)
				ml.PushBack(NewMove(fromSquare, toSquare, Normal, PtNone))
			}
		}

		enPassantSquare := pos.GetEnPassantSquare()
		if enPassantSquare != SqNone {
			for _, dir := range []Direction{West, East} {
				tmpCaptures = ShiftBitboard(enPassantSquare.Bb(), oppDir*North+dir) & myPawns
				if tmpCaptures != 0 {
					fromSquare := tmpCaptures.PopLsb()
					toSquare := fromSquare.To(myDir*North - dir)
					ml.PushBack(NewMove(fromSquare, toSquare, EnPassant, PtNone))
				}
			}
		}
	}

	if mode&GenNonCap != 0 {
		tmpMoves := ShiftBitboard(myPawns, myDir*North) &^ pos.OccupiedAll()
		tmpMovesDouble := ShiftBitboard(tmpMoves, myDir*North) & nextPlayer.PawnDoublePushRankBb() &^ pos.OccupiedAll()

		promMoves := tmpMoves & nextPlayer.PromotionRankBb()
		for promMoves != 0 {
			toSquare := promMoves.PopLsb()
			fromSquare := toSquare.To(oppDir * North)
			ml.PushBack(NewMove(fromSquare, toSquare, Promotion, Queen))
			ml.PushBack(NewMove(fromSquare, toSquare, Promotion, Knight))
			ml.PushBack(NewMove(fromSquare, toSquare, Promotion, Rook))
			ml.PushBack(NewMove(fromSquare, toSquare, Promotion, Bishop))
		}
		for tmpMovesDouble != 0 {
			toSquare := tmpMovesDouble.PopLsb()
			fromSquare := toSquare.To(oppDir * North).To(oppDir * North)
			ml.PushBack(NewMove(fromSquare, toSquare, Normal, PtNone))
		}
		tmpMoves &= ^nextPlayer.PromotionRankBb()
		for tmpMoves != 0 {
			toSquare := tmpMoves.PopLsb()
			fromSquare := toSquare.To(oppDir * North)
			ml.PushBack(NewMove(fromSquare, toSquare, Normal, PtNone))
		}
	}
}

func (mg *Movegen) generateCastling(pos *position.Position, mode GenMode, ml *moveslice.MoveSlice) {
	nextPlayer := pos.NextPlayer()
	occupiedBb := pos.OccupiedAll()

	if mode&GenNonCap == 0 || pos.CastlingRights() == CastlingNone {
		return
	}
	cr := pos.CastlingRights()
	if nextPlayer == White {
		if cr.Has(CastlingWhiteOO) && Intermediate(SqE1, SqH1)&occupiedBb == 0 {
			ml.PushBack(NewMove(SqE1, SqG1, Castling, PtNone))
		}
		if cr.Has(CastlingWhiteOOO) && Intermediate(SqE1, SqA1)&occupiedBb == 0 {
			ml.PushBack(NewMove(SqE1, SqC1, Castling, PtNone))
		}
	} else {
		if cr.Has(CastlingBlackOO) && Intermediate(SqE8, SqH8)&occupiedBb == 0 {
			ml.PushBack(NewMove(SqE8, SqG8, Castling, PtNone))
		}
		if cr.Has(CastlingBlackOOO) && Intermediate(SqE8, SqA8)&occupiedBb == 0 {
			ml.PushBack(NewMove(SqE8, SqC8, Castling, PtNone))
		}
	}
}

func (mg *Movegen) generateKingMoves(pos *position.Position, mode GenMode, ml *moveslice.MoveSlice) {
	nextPlayer := pos.NextPlayer()
	kingSquareBb := pos.PiecesBb(nextPlayer, King)
	fromSquare := kingSquareBb.PopLsb()

	pseudoMoves := GetPseudoAttacks(King, fromSquare)

	if mode&GenCap != 0 {
		captures := pseudoMoves & pos.OccupiedBb(nextPlayer.Flip())
		for captures != 0 {
			toSquare := captures.PopLsb()
			ml.PushBack(NewMove(fromSquare, toSquare, Normal, PtNone))
		}
	}
	if mode&GenNonCap != 0 {
		nonCaptures := pseudoMoves &^ pos.OccupiedAll()
		for nonCaptures != 0 {
			toSquare := nonCaptures.PopLsb()
			ml.PushBack(NewMove(fromSquare, toSquare, Normal, PtNone))
		}
	}
}

// generateOfficerMoves generates knight, bishop, rook and queen moves
// using the attack tables (magic bitboards for sliders).
func (mg *Movegen) generateOfficerMoves(pos *position.Position, mode GenMode, ml *moveslice.MoveSlice) {
	nextPlayer := pos.NextPlayer()
	occupiedBb := pos.OccupiedAll()

	for pt := Knight; pt <= Queen; pt++ {
		pieces := pos.PiecesBb(nextPlayer, pt)
		for pieces != 0 {
			fromSquare := pieces.PopLsb()
			moves := GetAttacksBb(pt, fromSquare, occupiedBb)

			if mode&GenCap != 0 {
				captures := moves & pos.OccupiedBb(nextPlayer.Flip())
				for captures != 0 {
					toSquare := captures.PopLsb()
					ml.PushBack(NewMove(fromSquare, toSquare, Normal, PtNone))
				}
			}
			if mode&GenNonCap != 0 {
				nonCaptures := moves &^ occupiedBb
				for nonCaptures != 0 {
					toSquare := nonCaptures.PopLsb()
					ml.PushBack(NewMove(fromSquare, toSquare, Normal, PtNone))
				}
			}
		}
	}
}
