package board

// Pre-computed geometry tables. All of them are filled once at package
// initialization and read-only afterwards, so positions can share them
// freely across goroutines.
var (
	knightAttacks [64]Bitboard
	kingAttacks   [64]Bitboard
	pawnAttacks   [2][64]Bitboard // [Color][Square] - diagonal capture targets
	pawnPushes    [2][64]Bitboard // [Color][Square] - push targets, incl. the double push

	// Base rays through a square, excluding the square itself.
	rankAttacks [64]Bitboard // whole rank
	fileAttacks [64]Bitboard // whole file
	diagA1H8    [64]Bitboard // northeast/southwest diagonal
	diagH1A8    [64]Bitboard // northwest/southeast diagonal

	// spanBB[a][b] is the inclusive run of bits from a through b for a <= b.
	// The table is filled for all pairs with wrapping arithmetic; only the
	// low-to-high direction is meaningful, which is all the slider scan needs.
	spanBB [64][64]Bitboard
)

func init() {
	initLeaperAttacks()
	initPawnTables()
	initRayMasks()
	initSpanBB()
}

func initLeaperAttacks() {
	for sq := A1; sq <= H8; sq++ {
		bb := SquareBB(sq)

		// Knight moves: 2+1 or 1+2 in any direction
		attacks := Empty
		attacks |= (bb << 17) & NotFileA  // NNE
		attacks |= (bb << 15) & NotFileH  // NNW
		attacks |= (bb >> 17) & NotFileH  // SSW
		attacks |= (bb >> 15) & NotFileA  // SSE
		attacks |= (bb << 10) & NotFileAB // ENE
		attacks |= (bb << 6) & NotFileGH  // WNW
		attacks |= (bb >> 10) & NotFileGH // WSW
		attacks |= (bb >> 6) & NotFileAB  // ESE
		knightAttacks[sq] = attacks

		// King moves: 1 square in any direction
		attacks = bb.North() | bb.South()
		attacks |= bb.East() | bb.West()
		attacks |= bb.NorthEast() | bb.NorthWest()
		attacks |= bb.SouthEast() | bb.SouthWest()
		kingAttacks[sq] = attacks
	}
}

func initPawnTables() {
	for sq := A1; sq <= H8; sq++ {
		bb := SquareBB(sq)

		pawnAttacks[White][sq] = bb.NorthEast() | bb.NorthWest()
		pawnAttacks[Black][sq] = bb.SouthEast() | bb.SouthWest()

		// Push targets. A pawn on its home rank also gets the two-square
		// push; pawns can never stand on the terminal rank for their color,
		// so those entries stay zero.
		pushes := bb.North()
		if sq.Rank() == 1 {
			pushes |= bb.North().North()
		}
		if sq.Rank() == 7 {
			pushes = Empty
		}
		pawnPushes[White][sq] = pushes

		pushes = bb.South()
		if sq.Rank() == 6 {
			pushes |= bb.South().South()
		}
		if sq.Rank() == 0 {
			pushes = Empty
		}
		pawnPushes[Black][sq] = pushes
	}
}

func initRayMasks() {
	for sq := A1; sq <= H8; sq++ {
		bb := SquareBB(sq)

		rankAttacks[sq] = RankMask[sq.Rank()] &^ bb
		fileAttacks[sq] = FileMask[sq.File()] &^ bb

		file, rank := sq.File(), sq.Rank()

		var diag Bitboard
		for f, r := file+1, rank+1; f <= 7 && r <= 7; f, r = f+1, r+1 {
			diag |= SquareBB(NewSquare(f, r))
		}
		for f, r := file-1, rank-1; f >= 0 && r >= 0; f, r = f-1, r-1 {
			diag |= SquareBB(NewSquare(f, r))
		}
		diagA1H8[sq] = diag

		diag = 0
		for f, r := file-1, rank+1; f >= 0 && r <= 7; f, r = f-1, r+1 {
			diag |= SquareBB(NewSquare(f, r))
		}
		for f, r := file+1, rank-1; f <= 7 && r >= 0; f, r = f+1, r-1 {
			diag |= SquareBB(NewSquare(f, r))
		}
		diagH1A8[sq] = diag
	}
}

func initSpanBB() {
	for a := A1; a <= H8; a++ {
		for b := A1; b <= H8; b++ {
			spanBB[a][b] = SquareBB(b) | (SquareBB(b) - SquareBB(a))
		}
	}
}
