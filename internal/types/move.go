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

package types

import "strings"

// MoveType distinguishes the four ways a move changes the board beyond a
// plain from/to relocation.
type MoveType uint8

const (
	Normal MoveType = iota
	Promotion
	EnPassant
	Castling
	moveTypeLength
)

// IsValid reports whether mt is one of the four move types.
func (mt MoveType) IsValid() bool {
	return mt < moveTypeLength
}

var moveTypeToString = [moveTypeLength]string{"Normal", "Promotion", "EnPassant", "Castling"}

// String returns the name of mt.
func (mt MoveType) String() string {
	return moveTypeToString[mt]
}

// Move packs a from-square, to-square, move type and (for promotions)
// promotion piece type into a 16-bit value. There is no embedded search
// value; move ordering is done on the fields directly (movegen.go).
//  BITMAP 16-bit
//  1 1 1 1 1 1 0 0 0 0 0 0 0 0 0 0
//  5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0
//  --------------------------------
//                       1 1 1 1 1 1  to
//           1 1 1 1 1 1              from
//       1 1                          promotion piece type (pt-Knight: 0-3)
//   1 1                              move type
type Move uint16

// MoveNone is the zero value and represents the absence of a move.
const MoveNone Move = 0

const (
	fromShift     uint = 6
	promTypeShift uint = 12
	typeShift     uint = 14

	squareMask   Move = 0x3F
	toMask            = squareMask
	fromMask          = squareMask << fromShift
	promTypeMask Move = 3 << promTypeShift
	moveTypeMask Move = 3 << typeShift
)

// NewMove encodes from, to, a move type and (for Promotion) a promotion
// piece type into a Move. promType is encoded whatever mt is; any type
// below Knight (such as PtNone) encodes as Knight.
func NewMove(from, to Square, mt MoveType, promType PieceType) Move {
	if promType < Knight {
		promType = Knight
	}
	return Move(to) |
		Move(from)<<fromShift |
		Move(promType-Knight)<<promTypeShift |
		Move(mt)<<typeShift
}

// From returns the origin square of m.
func (m Move) From() Square {
	return Square((m & fromMask) >> fromShift)
}

// To returns the destination square of m.
func (m Move) To() Square {
	return Square(m & toMask)
}

// MoveType returns the move type of m.
func (m Move) MoveType() MoveType {
	return MoveType((m & moveTypeMask) >> typeShift)
}

// PromotionType returns the promotion piece type of m. Only meaningful
// when m.MoveType() == Promotion.
func (m Move) PromotionType() PieceType {
	return PieceType((m&promTypeMask)>>promTypeShift) + Knight
}

// IsValid reports whether m has well formed squares, move type and (if
// applicable) promotion type. MoveNone is not valid in this sense.
func (m Move) IsValid() bool {
	return m != MoveNone &&
		m.From().IsValid() &&
		m.To().IsValid() &&
		m.MoveType().IsValid() &&
		m.PromotionType().IsValid()
}

// String returns the UCI notation of m (e.g. "e2e4", "e7e8q"), or
// "0000" for MoveNone per the UCI "null move" convention.
func (m Move) String() string {
	if m == MoveNone {
		return "0000"
	}
	var b strings.Builder
	b.WriteString(m.From().String())
	b.WriteString(m.To().String())
	if m.MoveType() == Promotion {
		b.WriteString(strings.ToLower(m.PromotionType().Char()))
	}
	return b.String()
}
