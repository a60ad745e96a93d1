package board

// AttackersTo returns the pieces of one side attacking a square under the
// given occupancy. Passing the full occupancy answers the usual "is this
// square defended" question; callers patch the occupancy to ask about
// hypothetical boards.
func (p *Position) AttackersTo(sq Square, by Color, occupied Bitboard) Bitboard {
	return (pawnAttacks[by.Other()][sq] & p.pieces[by][Pawn]) |
		(knightAttacks[sq] & p.pieces[by][Knight]) |
		(kingAttacks[sq] & p.pieces[by][King]) |
		(BishopAttacks(sq, occupied) & (p.pieces[by][Bishop] | p.pieces[by][Queen])) |
		(RookAttacks(sq, occupied) & (p.pieces[by][Rook] | p.pieces[by][Queen]))
}

// SquareAttackedBy returns true if the square is attacked by the given side.
func (p *Position) SquareAttackedBy(sq Square, by Color, occupied Bitboard) bool {
	return p.AttackersTo(sq, by, occupied) != 0
}

// IsKingAttacked returns true if the side to move's king is in check.
func (p *Position) IsKingAttacked() bool {
	ksq := p.KingSquare(p.sideToMove)
	if ksq == NoSquare {
		return false
	}
	return p.SquareAttackedBy(ksq, p.sideToMove.Other(), p.AllBB())
}

// IsMoveLegal runs the legality check a candidate move must pass before
// DoMove will apply it. With fullValidation the stricter preconditions
// are checked as well.
func (p *Position) IsMoveLegal(m Move, fullValidation bool) bool {
	if m.IsNull() {
		return true
	}
	if !m.From.IsValid() || !m.To.IsValid() {
		return false
	}
	moving := p.board[m.From]
	if moving == NoPiece {
		return false
	}
	if fullValidation && !p.validateMove(m, moving) {
		return false
	}
	return p.moveIsLegal(m, moving)
}

// moveIsLegal decides whether the move leaves the mover's king safe. It
// never applies the move: the occupancy is patched as if the move had
// been played and the enemy attacker sets are probed against the king
// square directly. En passant counts as a double pawn removal; castling
// becomes a path-safety check against the game context.
func (p *Position) moveIsLegal(m Move, moving Piece) bool {
	us := p.sideToMove
	them := us.Other()

	if moving.Type() == King {
		if info, _, ok := p.ctx.castleByKingMove(us, m); ok {
			if p.board[info.RookMove.From] != NewPiece(Rook, us) {
				return false
			}
			if info.Empty&p.AllBB() != 0 {
				return false
			}
			for bb := info.Safe; bb != 0; {
				if p.SquareAttackedBy(bb.PopLSB(), them, p.AllBB()) {
					return false
				}
			}
			return true
		}

		// The king steps out of its own shadow: drop it from the
		// occupancy so sliders see through its old square.
		occ := p.AllBB() &^ SquareBB(m.From)
		return !p.SquareAttackedBy(m.To, them, occ)
	}

	ksq := p.KingSquare(us)
	if ksq == NoSquare {
		return true
	}

	removed := SquareBB(m.To)
	occ := (p.AllBB() ^ SquareBB(m.From)) | SquareBB(m.To)
	if p.isEnPassantCapture(m, moving) {
		capBB := SquareBB(epCapturedSquare(m))
		removed |= capBB
		occ ^= capBB
	}

	if BishopAttacks(ksq, occ)&((p.pieces[them][Bishop]|p.pieces[them][Queen])&^removed) != 0 {
		return false
	}
	if RookAttacks(ksq, occ)&((p.pieces[them][Rook]|p.pieces[them][Queen])&^removed) != 0 {
		return false
	}
	if knightAttacks[ksq]&(p.pieces[them][Knight]&^removed) != 0 {
		return false
	}
	if pawnAttacks[us][ksq]&(p.pieces[them][Pawn]&^removed) != 0 {
		return false
	}
	return true
}
