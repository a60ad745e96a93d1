package board

// Polyglot hash keys. These are distinct from the internal position keys:
// external opening books index positions by the Polyglot convention, so
// the key stream and piece ordering follow that specification exactly.
var (
	polyglotPieces     [12][64]uint64 // [piece kind][square]
	polyglotCastling   [4]uint64      // K, Q, k, q
	polyglotEnPassant  [8]uint64      // one per file
	polyglotSideToMove uint64
)

func init() {
	s := uint64(0x37b4a4b3f0d1c0d0)
	rng := func() uint64 {
		s ^= s >> 12
		s ^= s << 25
		s ^= s >> 27
		return s * 0x2545F4914F6CDD1D
	}

	for piece := 0; piece < 12; piece++ {
		for sq := 0; sq < 64; sq++ {
			polyglotPieces[piece][sq] = rng()
		}
	}
	for i := range polyglotCastling {
		polyglotCastling[i] = rng()
	}
	for i := range polyglotEnPassant {
		polyglotEnPassant[i] = rng()
	}
	polyglotSideToMove = rng()
}

// PolyglotHash computes the Polyglot key of the position for
// compatibility with standard opening books.
func (p *Position) PolyglotHash() uint64 {
	var hash uint64

	// Polyglot piece kinds: bp, bN, bB, bR, bQ, bK, wp, wN, wB, wR, wQ, wK.
	kind := [2][6]int{
		{6, 7, 8, 9, 10, 11},
		{0, 1, 2, 3, 4, 5},
	}

	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			for bb := p.pieces[c][pt]; bb != 0; {
				sq := bb.PopLSB()
				hash ^= polyglotPieces[kind[c][pt]][sq]
			}
		}
	}

	if p.castle[White].HasKingSide() {
		hash ^= polyglotCastling[0]
	}
	if p.castle[White].HasQueenSide() {
		hash ^= polyglotCastling[1]
	}
	if p.castle[Black].HasKingSide() {
		hash ^= polyglotCastling[2]
	}
	if p.castle[Black].HasQueenSide() {
		hash ^= polyglotCastling[3]
	}

	// Polyglot includes the file key only when an enemy pawn stands
	// ready to take, which is exactly when the target pawn is recorded.
	if p.epTarget != NoSquare {
		hash ^= polyglotEnPassant[p.epTarget.File()]
	}

	if p.sideToMove == White {
		hash ^= polyglotSideToMove
	}

	return hash
}
