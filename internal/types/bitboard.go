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

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/kallisti-dev/chesscore/internal/util"
)

// Bitboard is a 64 bit set with one bit per board square, A1 as bit 0
// through H8 as bit 63.
type Bitboard uint64

// Bb returns the single-bit Bitboard for sq, via the precomputed table.
func (sq Square) Bb() Bitboard {
	return sqBb[sq]
}

// PushSquare sets the bit for s in b and returns the result.
func PushSquare(b Bitboard, s Square) Bitboard {
	return b | s.Bb()
}

// PushSquare sets the bit for s in *b.
func (b *Bitboard) PushSquare(s Square) Bitboard {
	*b |= s.Bb()
	return *b
}

// PopSquare clears the bit for s in b and returns the result.
func PopSquare(b Bitboard, s Square) Bitboard {
	return b &^ s.Bb()
}

// PopSquare clears the bit for s in *b.
func (b *Bitboard) PopSquare(s Square) Bitboard {
	*b = *b &^ s.Bb()
	return *b
}

// Has reports whether the bit for s is set in b.
func (b Bitboard) Has(s Square) bool {
	return b&sqBb[s] != 0
}

// ShiftBitboard shifts every bit of b one square in direction d, clearing
// bits that would wrap around a board edge.
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return (Rank8Mask & b) << 8
	case East:
		return (MsbMask & b) << 1 & FileAMask
	case South:
		return b >> 8
	case West:
		return (b >> 1) & FileHMask
	case Northeast:
		return (Rank8Mask & b) << 9 & FileAMask
	case Southeast:
		return (b >> 7) & FileAMask
	case Southwest:
		return (b >> 9) & FileHMask
	case Northwest:
		return (b << 7) & FileHMask
	}
	return b
}

// Lsb returns the square of the least significant set bit, or SqNone if
// b is empty.
func (b Bitboard) Lsb() Square {
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Msb returns the square of the most significant set bit, or SqNone if
// b is empty.
func (b Bitboard) Msb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLsb clears and returns the least significant set bit's square, or
// SqNone if b is already empty.
func (b *Bitboard) PopLsb() Square {
	if *b == BbZero {
		return SqNone
	}
	lsb := b.Lsb()
	*b &= *b - 1
	return lsb
}

// PopCount returns the number of set bits in b.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// String returns the 64 bit binary representation of b.
func (b Bitboard) String() string {
	return fmt.Sprintf("%-0.64b", b)
}

// StringBoard renders b as an 8x8 ascii board, rank 8 first.
func (b Bitboard) StringBoard() string {
	var s strings.Builder
	s.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank1; r <= Rank8; r++ {
		for f := FileA; f <= FileH; f++ {
			if (b & SquareOf(f, Rank8-r).Bb()) > 0 {
				s.WriteString("| X ")
			} else {
				s.WriteString("|   ")
			}
		}
		s.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
	}
	return s.String()
}

// StringGrouped renders b as 64 '0'/'1' characters grouped by rank
// (A1..H1, A2..H2, ...) followed by the decimal value.
func (b Bitboard) StringGrouped() string {
	var s strings.Builder
	for i := 0; i < 64; i++ {
		if i > 0 && i%8 == 0 {
			s.WriteString(".")
		}
		if (b & (BbOne << i)) != 0 {
			s.WriteString("1")
		} else {
			s.WriteString("0")
		}
	}
	s.WriteString(fmt.Sprintf(" (%d)", b))
	return s.String()
}

// FileDistance returns the absolute distance in files between f1 and f2.
func FileDistance(f1, f2 File) int {
	return util.Abs(int(f2) - int(f1))
}

// RankDistance returns the absolute distance in ranks between r1 and r2.
func RankDistance(r1, r2 Rank) int {
	return util.Abs(int(r2) - int(r1))
}

// SquareDistance returns the Chebyshev distance between s1 and s2 (the
// number of king steps needed to go from one to the other).
func SquareDistance(s1, s2 Square) int {
	if !s1.IsValid() || !s2.IsValid() || s1 == s2 {
		return 0
	}
	return squareDistance[s1][s2]
}

// CenterDistance returns sq's distance to the nearest of the four center
// squares.
func (sq Square) CenterDistance() int {
	return centerDistance[sq]
}

// GetAttacksBb returns the squares attacked by a piece of type pt (not
// Pawn) standing on sq, given the board's full occupancy. Sliding piece
// types look up the magic-indexed attack table; King and Knight ignore
// occupied and return the precomputed pseudo attacks.
func GetAttacksBb(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Bishop:
		return bishopMagics[sq].Attacks[bishopMagics[sq].index(occupied)]
	case Rook:
		return rookMagics[sq].Attacks[rookMagics[sq].index(occupied)]
	case Queen:
		return bishopMagics[sq].Attacks[bishopMagics[sq].index(occupied)] | rookMagics[sq].Attacks[rookMagics[sq].index(occupied)]
	case King, Knight:
		return pseudoAttacks[pt][sq]
	default:
		panic(fmt.Sprintf("GetAttacksBb does not support piece type %s", pt))
	}
}

// GetPseudoAttacks returns the attacks of a King, Knight, Bishop, Rook or
// Queen on sq as if the rest of the board were empty.
func GetPseudoAttacks(pt PieceType, sq Square) Bitboard {
	return pseudoAttacks[pt][sq]
}

// GetPawnAttacks returns the squares a pawn of color c on sq attacks.
func GetPawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// FilesWestMask returns the files strictly west of sq's file.
func (sq Square) FilesWestMask() Bitboard {
	return filesWestMask[sq]
}

// FilesEastMask returns the files strictly east of sq's file.
func (sq Square) FilesEastMask() Bitboard {
	return filesEastMask[sq]
}

// FileWestMask returns the single file immediately west of sq, if any.
func (sq Square) FileWestMask() Bitboard {
	return fileWestMask[sq]
}

// FileEastMask returns the single file immediately east of sq, if any.
func (sq Square) FileEastMask() Bitboard {
	return fileEastMask[sq]
}

// RanksNorthMask returns the ranks strictly north of sq's rank.
func (sq Square) RanksNorthMask() Bitboard {
	return ranksNorthMask[sq]
}

// RanksSouthMask returns the ranks strictly south of sq's rank.
func (sq Square) RanksSouthMask() Bitboard {
	return ranksSouthMask[sq]
}

// NeighbourFilesMask returns the files immediately east and west of sq.
func (sq Square) NeighbourFilesMask() Bitboard {
	return neighbourFilesMask[sq]
}

// Ray returns the squares outgoing from sq in the given orientation on
// an empty board.
func (sq Square) Ray(o Orientation) Bitboard {
	return rays[o][sq]
}

// Intermediate returns the squares strictly between sq1 and sq2 along a
// shared rank, file or diagonal, or BbZero if they don't share one.
func Intermediate(sq1, sq2 Square) Bitboard {
	return intermediate[sq1][sq2]
}

// Intermediate returns the squares strictly between sq and to.
func (sq Square) Intermediate(to Square) Bitboard {
	return intermediate[sq][to]
}

// PassedPawnMask returns the squares on sq's file and neighbour files
// ahead of sq (in c's direction of travel) that an opposing pawn could
// occupy to stop a c pawn on sq from being "passed".
func (sq Square) PassedPawnMask(c Color) Bitboard {
	return passedPawnMask[c][sq]
}

// KingSideCastleMask returns the squares from the king's neighbour up to
// and including the rook's corner square on c's kingside.
func KingSideCastleMask(c Color) Bitboard {
	return kingSideCastleMask[c]
}

// QueenSideCastleMask returns the squares from the king's neighbour up to
// and including the rook's corner square on c's queenside.
func QueenSideCastleMask(c Color) Bitboard {
	return queenSideCastleMask[c]
}

// SquaresBb returns the squares of the given color (light/dark), useful
// for same-colored-bishop checks.
func SquaresBb(c Color) Bitboard {
	return squaresBb[c]
}

// Various constant bitboards.
const (
	BbZero Bitboard = Bitboard(0)
	BbAll  Bitboard = ^BbZero
	BbOne  Bitboard = Bitboard(1)

	FileABb Bitboard = 0x0101010101010101
	FileBBb Bitboard = FileABb << 1
	FileCBb Bitboard = FileABb << 2
	FileDBb Bitboard = FileABb << 3
	FileEBb Bitboard = FileABb << 4
	FileFBb Bitboard = FileABb << 5
	FileGBb Bitboard = FileABb << 6
	FileHBb Bitboard = FileABb << 7

	Rank1Bb Bitboard = 0xFF
	Rank2Bb Bitboard = Rank1Bb << (8 * 1)
	Rank3Bb Bitboard = Rank1Bb << (8 * 2)
	Rank4Bb Bitboard = Rank1Bb << (8 * 3)
	Rank5Bb Bitboard = Rank1Bb << (8 * 4)
	Rank6Bb Bitboard = Rank1Bb << (8 * 5)
	Rank7Bb Bitboard = Rank1Bb << (8 * 6)
	Rank8Bb Bitboard = Rank1Bb << (8 * 7)

	MsbMask   Bitboard = ^(Bitboard(1) << 63)
	Rank8Mask Bitboard = ^Rank8Bb
	FileAMask Bitboard = ^FileABb
	FileHMask Bitboard = ^FileHBb

	CenterFiles   Bitboard = FileDBb | FileEBb
	CenterRanks   Bitboard = Rank4Bb | Rank5Bb
	CenterSquares Bitboard = CenterFiles & CenterRanks
)

func (sq Square) bitboard() Bitboard {
	return Bitboard(uint64(1) << sq)
}

var (
	// sqBb maps a square to its single-bit Bitboard.
	sqBb [SqLength]Bitboard

	// rankBb/fileBb map a rank/file index to the full-rank/full-file Bitboard.
	rankBb [8]Bitboard
	fileBb [8]Bitboard

	// squareDistance[s1][s2] is the Chebyshev (king-move) distance.
	squareDistance [SqLength][SqLength]int

	// pawnAttacks[c][sq] / pseudoAttacks[pt][sq] are attacks on an empty board.
	pawnAttacks   [2][SqLength]Bitboard
	pseudoAttacks [PtLength][SqLength]Bitboard

	// Fancy-magic attack tables for sliding pieces.
	rookTable  []Bitboard
	rookMagics [SqLength]Magic

	bishopTable  []Bitboard
	bishopMagics [SqLength]Magic

	filesWestMask      [SqLength]Bitboard
	filesEastMask      [SqLength]Bitboard
	ranksNorthMask     [SqLength]Bitboard
	ranksSouthMask     [SqLength]Bitboard
	fileWestMask       [SqLength]Bitboard
	fileEastMask       [SqLength]Bitboard
	neighbourFilesMask [SqLength]Bitboard

	// rays[o][sq] is the ray of squares from sq in orientation o on an
	// empty board.
	rays [8][SqLength]Bitboard

	// intermediate[s1][s2] is the squares strictly between s1 and s2.
	intermediate [SqLength][SqLength]Bitboard

	passedPawnMask [2][SqLength]Bitboard

	kingSideCastleMask  [2]Bitboard
	queenSideCastleMask [2]Bitboard

	squaresBb [2]Bitboard

	centerDistance [SqLength]int
)

// initBb computes every table in this package once at process startup,
// in dependency order: squares and masks first, the fancy-magic slider
// tables next (needed to derive sliding pseudo attacks), then everything
// downstream of pseudoAttacks.
func initBb() {
	squareBitboardsPreCompute()
	rankFileBbPreCompute()
	castleMasksPreCompute()
	squareDistancePreCompute()
	neighbourMasksPreCompute()
	initMagicBitboards()
	pseudoAttacksPreCompute()
	raysPreCompute()
	intermediatePreCompute()
	maskPassedPawnsPreCompute()
	squareColorsPreCompute()
	centerDistancePreCompute()
}

// initMagicBitboards builds the rook and bishop fancy-magic tables. Table
// sizes are the classical Stockfish figures for the "fancy" (minimal
// shift) variant: 0x19000 rook entries, 0x1480 bishop entries.
func initMagicBitboards() {
	rookDirections := [4]Direction{North, East, South, West}
	bishopDirections := [4]Direction{Northeast, Southeast, Southwest, Northwest}

	rookTable = make([]Bitboard, 0x19000)
	bishopTable = make([]Bitboard, 0x1480)

	initMagics(&rookTable, &rookMagics, &rookDirections)
	initMagics(&bishopTable, &bishopMagics, &bishopDirections)
}

func rankFileBbPreCompute() {
	for i := Rank1; i <= Rank8; i++ {
		rankBb[i] = Rank1Bb << (8 * i)
	}
	for i := FileA; i <= FileH; i++ {
		fileBb[i] = FileABb << i
	}
}

func castleMasksPreCompute() {
	kingSideCastleMask[White] = sqBb[SqF1] | sqBb[SqG1] | sqBb[SqH1]
	kingSideCastleMask[Black] = sqBb[SqF8] | sqBb[SqG8] | sqBb[SqH8]
	queenSideCastleMask[White] = sqBb[SqD1] | sqBb[SqC1] | sqBb[SqB1] | sqBb[SqA1]
	queenSideCastleMask[Black] = sqBb[SqD8] | sqBb[SqC8] | sqBb[SqB8] | sqBb[SqA8]
	castlingRightsOf[SqE1] = CastlingWhite
	castlingRightsOf[SqA1] = CastlingWhiteOOO
	castlingRightsOf[SqH1] = CastlingWhiteOO
	castlingRightsOf[SqE8] = CastlingBlack
	castlingRightsOf[SqA8] = CastlingBlackOOO
	castlingRightsOf[SqH8] = CastlingBlackOO
}

func squareBitboardsPreCompute() {
	for sq := SqA1; sq < SqNone; sq++ {
		sqBb[sq] = sq.bitboard()
	}
}

// centerDistancePreCompute records each square's distance to whichever
// of the four center squares lies in its quadrant.
func centerDistancePreCompute() {
	for square := SqA1; square <= SqH8; square++ {
		switch {
		case (sqBb[square] & ranksNorthMask[27] & filesWestMask[36]) != 0:
			centerDistance[square] = squareDistance[square][SqD5]
		case (sqBb[square] & ranksNorthMask[28] & filesEastMask[35]) != 0:
			centerDistance[square] = squareDistance[square][SqE5]
		case (sqBb[square] & ranksSouthMask[35] & filesWestMask[28]) != 0:
			centerDistance[square] = squareDistance[square][SqD4]
		case (sqBb[square] & ranksSouthMask[36] & filesEastMask[27]) != 0:
			centerDistance[square] = squareDistance[square][SqE4]
		}
	}
}

// squareColorsPreCompute builds the light/dark square masks.
func squareColorsPreCompute() {
	for square := SqA1; square <= SqH8; square++ {
		f := square.FileOf()
		r := square.RankOf()
		if (int(f)+int(r))%2 == 0 {
			squaresBb[Black] |= BbOne << square
		} else {
			squaresBb[White] |= BbOne << square
		}
	}
}

func maskPassedPawnsPreCompute() {
	for square := SqA1; square <= SqH8; square++ {
		f := square.FileOf()
		r := square.RankOf()
		passedPawnMask[White][square] |= rays[N][square]
		if f < 7 && r < 7 {
			passedPawnMask[White][square] |= rays[N][square.To(East)]
		}
		if f > 0 && r < 7 {
			passedPawnMask[White][square] |= rays[N][square.To(West)]
		}
		passedPawnMask[Black][square] |= rays[S][square]
		if f < 7 && r > 0 {
			passedPawnMask[Black][square] |= rays[S][square.To(East)]
		}
		if f > 0 && r > 0 {
			passedPawnMask[Black][square] |= rays[S][square.To(West)]
		}
	}
}

func intermediatePreCompute() {
	for from := SqA1; from <= SqH8; from++ {
		for to := SqA1; to <= SqH8; to++ {
			toBb := sqBb[to]
			for o := 0; o < 8; o++ {
				if rays[Orientation(o)][from]&toBb != BbZero {
					intermediate[from][to] |=
						rays[Orientation(o)][from] &^ rays[Orientation(o)][to] &^ toBb
				}
			}
		}
	}
}

// raysPreCompute derives the eight per-square rays from the sliding
// pseudo attacks (already magic-derived at this point) masked to one
// quadrant each.
func raysPreCompute() {
	for sq := SqA1; sq <= SqH8; sq++ {
		rays[N][sq] = pseudoAttacks[Rook][sq] & ranksNorthMask[sq]
		rays[E][sq] = pseudoAttacks[Rook][sq] & filesEastMask[sq]
		rays[S][sq] = pseudoAttacks[Rook][sq] & ranksSouthMask[sq]
		rays[W][sq] = pseudoAttacks[Rook][sq] & filesWestMask[sq]

		rays[NW][sq] = pseudoAttacks[Bishop][sq] & filesWestMask[sq] & ranksNorthMask[sq]
		rays[NE][sq] = pseudoAttacks[Bishop][sq] & filesEastMask[sq] & ranksNorthMask[sq]
		rays[SE][sq] = pseudoAttacks[Bishop][sq] & filesEastMask[sq] & ranksSouthMask[sq]
		rays[SW][sq] = pseudoAttacks[Bishop][sq] & filesWestMask[sq] & ranksSouthMask[sq]
	}
}

func neighbourMasksPreCompute() {
	for square := SqA1; square <= SqH8; square++ {
		f := int(square.FileOf())
		r := int(square.RankOf())
		for j := 0; j <= 7; j++ {
			if j < f {
				filesWestMask[square] |= FileABb << j
			}
			if 7-j > f {
				filesEastMask[square] |= FileABb << (7 - j)
			}
			if 7-j > r {
				ranksNorthMask[square] |= Rank1Bb << (8 * (7 - j))
			}
			if j < r {
				ranksSouthMask[square] |= Rank1Bb << (8 * j)
			}
		}
		if f > 0 {
			fileWestMask[square] = FileABb << (f - 1)
		}
		if f < 7 {
			fileEastMask[square] = FileABb << (f + 1)
		}
		neighbourFilesMask[square] = fileEastMask[square] | fileWestMask[square]
	}
}

func squareDistancePreCompute() {
	for sq1 := SqA1; sq1 <= SqH8; sq1++ {
		for sq2 := SqA1; sq2 <= SqH8; sq2++ {
			if sq1 != sq2 {
				squareDistance[sq1][sq2] =
					util.Max(FileDistance(sq1.FileOf(), sq2.FileOf()), RankDistance(sq1.RankOf(), sq2.RankOf()))
			}
		}
	}
}

// pseudoAttacksPreCompute fills in King/Pawn/Knight attacks by stepping
// and Bishop/Rook/Queen attacks by querying the just-built magic tables
// with an empty board (occupied == BbZero).
func pseudoAttacksPreCompute() {
	var steps = [][]Direction{
		{},
		{Northwest, North, Northeast, East}, // king (negated for the other 4 via the loop below)
		{Northwest, Northeast},               // pawn
		{West + Northwest, East + Northeast, North + Northwest, North + Northeast}, // knight
	}

	for c := White; c <= Black; c++ {
		for _, pt := range []PieceType{King, Pawn, Knight} {
			for s := SqA1; s <= SqH8; s++ {
				for i := 0; i < len(steps[pt]); i++ {
					to := Square(int(s) + c.Direction()*int(steps[pt][i]))
					if to.IsValid() && squareDistance[s][to] < 3 {
						if pt == Pawn {
							pawnAttacks[c][s] |= sqBb[to]
						} else {
							pseudoAttacks[pt][s] |= sqBb[to]
						}
					}
				}
			}
		}
	}

	for square := SqA1; square <= SqH8; square++ {
		pseudoAttacks[Bishop][square] = bishopMagics[square].Attacks[bishopMagics[square].index(BbZero)]
		pseudoAttacks[Rook][square] = rookMagics[square].Attacks[rookMagics[square].index(BbZero)]
		pseudoAttacks[Queen][square] = pseudoAttacks[Bishop][square] | pseudoAttacks[Rook][square]
	}
}
