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

// CastlingRights is a bitset of the four castling availabilities.
//  CastlingWhiteOO  0001
//  CastlingWhiteOOO 0010
//  CastlingBlackOO  0100
//  CastlingBlackOOO 1000
type CastlingRights uint8

const (
	CastlingNone         CastlingRights = 0
	CastlingWhiteOO      CastlingRights = 1
	CastlingWhiteOOO     CastlingRights = CastlingWhiteOO << 1
	CastlingWhite        CastlingRights = CastlingWhiteOO | CastlingWhiteOOO
	CastlingBlackOO      CastlingRights = CastlingWhiteOO << 2
	CastlingBlackOOO     CastlingRights = CastlingBlackOO << 1
	CastlingBlack        CastlingRights = CastlingBlackOO | CastlingBlackOOO
	CastlingAny          CastlingRights = CastlingWhite | CastlingBlack
	CastlingRightsLength CastlingRights = 16
)

// Has reports whether any right set in rhs is also set in cr.
func (cr CastlingRights) Has(rhs CastlingRights) bool {
	return cr&rhs != 0
}

// Remove clears the rights set in rhs and returns the updated value.
func (cr *CastlingRights) Remove(rhs CastlingRights) CastlingRights {
	*cr = *cr &^ rhs
	return *cr
}

// Add sets the rights in rhs and returns the updated value.
func (cr *CastlingRights) Add(rhs CastlingRights) CastlingRights {
	*cr = *cr | rhs
	return *cr
}

// String returns the FEN castling field (e.g. "KQkq", or "-" if none).
func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	var b strings.Builder
	if cr.Has(CastlingWhiteOO) {
		b.WriteString("K")
	}
	if cr.Has(CastlingWhiteOOO) {
		b.WriteString("Q")
	}
	if cr.Has(CastlingBlackOO) {
		b.WriteString("k")
	}
	if cr.Has(CastlingBlackOOO) {
		b.WriteString("q")
	}
	return b.String()
}

// castlingRightsOf holds, per square, the castling rights revoked when a
// king or rook leaves or is captured on that square. Populated in
// initCastlingMasks (bitboard.go).
var castlingRightsOf [SqLength]CastlingRights

// CastlingRightsOf returns the rights revoked by a king or rook move (or
// capture) touching sq - CastlingNone for any other square.
func CastlingRightsOf(sq Square) CastlingRights {
	return castlingRightsOf[sq]
}
