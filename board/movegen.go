package board

// PseudoLegalMoves enumerates every move of the side to move that follows
// piece movement rules, ignoring whether the king is left in check.
// Castles are emitted whenever the right is held; their path checks live
// in the legality filter.
func (p *Position) PseudoLegalMoves() []Move {
	moves := make([]Move, 0, 48)
	us := p.sideToMove
	occ := p.AllBB()
	own := p.bySide[us]
	enemies := p.bySide[us.Other()]

	moves = p.appendPawnMoves(moves, us, occ, enemies, false)

	for bb := p.pieces[us][Knight]; bb != 0; {
		from := bb.PopLSB()
		moves = appendTargets(moves, from, knightAttacks[from]&^own)
	}
	for bb := p.pieces[us][Bishop]; bb != 0; {
		from := bb.PopLSB()
		moves = appendTargets(moves, from, BishopAttacks(from, occ)&^own)
	}
	for bb := p.pieces[us][Rook]; bb != 0; {
		from := bb.PopLSB()
		moves = appendTargets(moves, from, RookAttacks(from, occ)&^own)
	}
	for bb := p.pieces[us][Queen]; bb != 0; {
		from := bb.PopLSB()
		moves = appendTargets(moves, from, QueenAttacks(from, occ)&^own)
	}
	if ksq := p.KingSquare(us); ksq != NoSquare {
		moves = appendTargets(moves, ksq, kingAttacks[ksq]&^own)
	}

	if p.castle[us].HasKingSide() {
		moves = append(moves, p.ctx.Castle(us, KingSide).KingMove)
	}
	if p.castle[us].HasQueenSide() {
		moves = append(moves, p.ctx.Castle(us, QueenSide).KingMove)
	}

	return moves
}

// LegalMoves enumerates every legal move for the side to move.
func (p *Position) LegalMoves() []Move {
	pseudo := p.PseudoLegalMoves()
	moves := pseudo[:0]
	for _, m := range pseudo {
		if p.moveIsLegal(m, p.board[m.From]) {
			moves = append(moves, m)
		}
	}
	return moves
}

// PseudoLegalCaptures enumerates the pseudo-legal moves that take a piece:
// the destination holds an enemy piece or is the en-passant destination.
func (p *Position) PseudoLegalCaptures() []Move {
	moves := make([]Move, 0, 16)
	us := p.sideToMove
	occ := p.AllBB()
	enemies := p.bySide[us.Other()]

	moves = p.appendPawnMoves(moves, us, occ, enemies, true)

	for bb := p.pieces[us][Knight]; bb != 0; {
		from := bb.PopLSB()
		moves = appendTargets(moves, from, knightAttacks[from]&enemies)
	}
	for bb := p.pieces[us][Bishop]; bb != 0; {
		from := bb.PopLSB()
		moves = appendTargets(moves, from, BishopAttacks(from, occ)&enemies)
	}
	for bb := p.pieces[us][Rook]; bb != 0; {
		from := bb.PopLSB()
		moves = appendTargets(moves, from, RookAttacks(from, occ)&enemies)
	}
	for bb := p.pieces[us][Queen]; bb != 0; {
		from := bb.PopLSB()
		moves = appendTargets(moves, from, QueenAttacks(from, occ)&enemies)
	}
	if ksq := p.KingSquare(us); ksq != NoSquare {
		moves = appendTargets(moves, ksq, kingAttacks[ksq]&enemies)
	}

	return moves
}

// appendPawnMoves adds the pawn moves of one side: pushes guarded by
// occupancy (capturesOnly skips them), captures guarded by enemy
// occupancy or the en-passant destination, and the four-way promotion
// fan on the terminal rank.
func (p *Position) appendPawnMoves(moves []Move, us Color, occ, enemies Bitboard, capturesOnly bool) []Move {
	for bb := p.pieces[us][Pawn]; bb != 0; {
		from := bb.PopLSB()

		var targets Bitboard
		if !capturesOnly {
			pushes := pawnPushes[us][from]
			if pushes != 0 {
				single := from + 8
				if us == Black {
					single = from - 8
				}
				if occ.IsSet(single) {
					// The double push cannot jump a blocked square.
					pushes = 0
				} else {
					pushes &^= occ
				}
			}
			targets |= pushes
		}

		captures := pawnAttacks[us][from] & enemies
		if p.epDestination != NoSquare && pawnAttacks[us][from].IsSet(p.epDestination) {
			captures |= SquareBB(p.epDestination)
		}
		targets |= captures

		for targets != 0 {
			to := targets.PopLSB()
			if to.Rank() == 7 || to.Rank() == 0 {
				moves = append(moves,
					NewPromotion(from, to, NewPiece(Queen, us)),
					NewPromotion(from, to, NewPiece(Rook, us)),
					NewPromotion(from, to, NewPiece(Bishop, us)),
					NewPromotion(from, to, NewPiece(Knight, us)),
				)
			} else {
				moves = append(moves, NewMove(from, to))
			}
		}
	}
	return moves
}

func appendTargets(moves []Move, from Square, targets Bitboard) []Move {
	for targets != 0 {
		moves = append(moves, NewMove(from, targets.PopLSB()))
	}
	return moves
}

// HasLegalMoves returns true if the side to move has any legal move.
func (p *Position) HasLegalMoves() bool {
	for _, m := range p.PseudoLegalMoves() {
		if p.moveIsLegal(m, p.board[m.From]) {
			return true
		}
	}
	return false
}

// IsMated returns true if the side to move is checkmated.
func (p *Position) IsMated() bool {
	return p.IsKingAttacked() && !p.HasLegalMoves()
}

// IsStalemate returns true if the side to move has no legal move but is
// not in check.
func (p *Position) IsStalemate() bool {
	return !p.IsKingAttacked() && !p.HasLegalMoves()
}

// IsInsufficientMaterial returns true when neither side can possibly
// deliver mate: bare kings, a lone minor piece, two knights against a
// bare king, or bishops only with every bishop on the same square color.
func (p *Position) IsInsufficientMaterial() bool {
	heavy := p.pieces[White][Queen] | p.pieces[Black][Queen] |
		p.pieces[White][Rook] | p.pieces[Black][Rook] |
		p.pieces[White][Pawn] | p.pieces[Black][Pawn]
	if heavy != 0 {
		return false
	}

	wN := p.pieces[White][Knight].PopCount()
	bN := p.pieces[Black][Knight].PopCount()
	wB := p.pieces[White][Bishop].PopCount()
	bB := p.pieces[Black][Bishop].PopCount()
	minors := wN + bN + wB + bB

	if minors <= 1 {
		return true
	}

	if wB+bB == 0 && ((wN == 2 && bN == 0) || (bN == 2 && wN == 0)) {
		return true
	}

	if wN+bN == 0 {
		bishops := p.pieces[White][Bishop] | p.pieces[Black][Bishop]
		if bishops&LightSquares == bishops || bishops&DarkSquares == bishops {
			return true
		}
	}

	return false
}

// IsRepetition returns true if the current position has occurred at least
// count times, looking back through the hash history no further than the
// half-move counter allows (a capture or pawn move makes earlier
// repetitions unreachable).
func (p *Position) IsRepetition(count int) bool {
	n := len(p.history)
	if n == 0 {
		return false
	}

	window := p.halfMoves
	if n-1 < window {
		window = n - 1
	}

	current := p.history[n-1]
	seen := 1
	// Positions with the same side to move recur at even ply distances.
	for back := 2; back <= window; back += 2 {
		if p.history[n-1-back] == current {
			seen++
			if seen >= count {
				return true
			}
		}
	}
	return false
}

// IsThreefoldRepetition returns true on the third occurrence of the
// current position.
func (p *Position) IsThreefoldRepetition() bool {
	return p.IsRepetition(3)
}

// IsDraw returns true on threefold repetition, insufficient material,
// the fifty-move rule (one hundred plies) or stalemate.
func (p *Position) IsDraw() bool {
	if p.IsThreefoldRepetition() {
		return true
	}
	if p.IsInsufficientMaterial() {
		return true
	}
	if p.halfMoves >= 100 {
		return true
	}
	return p.IsStalemate()
}
