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

import "fmt"

// Color is White or Black.
type Color uint8

const (
	White       Color = 0
	Black       Color = 1
	ColorLength int   = 2
)

// Flip returns the opposing color.
func (c Color) Flip() Color {
	return c ^ 1
}

// IsValid reports whether c is White or Black.
func (c Color) IsValid() bool {
	return c < 2
}

// String returns "w" or "b".
func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	default:
		panic(fmt.Sprintf("invalid color %d", c))
	}
}

var colorDirectionFactor = [2]int{1, -1}

// Direction returns +1 for White and -1 for Black; used to mirror a
// step table defined for White onto Black.
func (c Color) Direction() int {
	return colorDirectionFactor[c]
}

var pawnMoveDirection = [2]Direction{North, South}

// PawnDirection returns the direction a pawn of this color advances.
func (c Color) PawnDirection() Direction {
	return pawnMoveDirection[c]
}

var promotionRankBb = [2]Bitboard{Rank8Bb, Rank1Bb}

// PromotionRankBb returns the rank on which a pawn of this color promotes.
func (c Color) PromotionRankBb() Bitboard {
	return promotionRankBb[c]
}

var pawnStartRankBb = [2]Bitboard{Rank2Bb, Rank7Bb}

// PawnStartRankBb returns the rank on which this color's pawns begin the
// game, the rank from which a double push is legal.
func (c Color) PawnStartRankBb() Bitboard {
	return pawnStartRankBb[c]
}

var pawnDoublePushRankBb = [2]Bitboard{Rank4Bb, Rank5Bb}

// PawnDoublePushRankBb returns the rank a double pawn push lands on for
// this color, the rank on which an en passant capture can occur.
func (c Color) PawnDoublePushRankBb() Bitboard {
	return pawnDoublePushRankBb[c]
}
