package board

// CastleRight represents one side's remaining castling permissions.
type CastleRight uint8

const (
	NoCastleRight CastleRight = iota
	KingSideRight
	QueenSideRight
	KingAndQueenSideRight
)

// String returns the FEN-style letters for the right from white's
// perspective ("K", "Q", "KQ" or "").
func (r CastleRight) String() string {
	switch r {
	case KingSideRight:
		return "K"
	case QueenSideRight:
		return "Q"
	case KingAndQueenSideRight:
		return "KQ"
	default:
		return ""
	}
}

// HasKingSide returns true if the right includes king-side castling.
func (r CastleRight) HasKingSide() bool {
	return r == KingSideRight || r == KingAndQueenSideRight
}

// HasQueenSide returns true if the right includes queen-side castling.
func (r CastleRight) HasQueenSide() bool {
	return r == QueenSideRight || r == KingAndQueenSideRight
}

// WithoutKingSide returns the right with king-side castling removed.
func (r CastleRight) WithoutKingSide() CastleRight {
	switch r {
	case KingSideRight:
		return NoCastleRight
	case KingAndQueenSideRight:
		return QueenSideRight
	default:
		return r
	}
}

// WithoutQueenSide returns the right with queen-side castling removed.
func (r CastleRight) WithoutQueenSide() CastleRight {
	switch r {
	case QueenSideRight:
		return NoCastleRight
	case KingAndQueenSideRight:
		return KingSideRight
	default:
		return r
	}
}

// Wing selects one castling direction.
type Wing uint8

const (
	KingSide Wing = iota
	QueenSide
)

// CastleInfo describes the geometry of one castle: the king and rook
// relocations, the squares between king and rook that must be empty, and
// the squares the king traverses (start and end included) that must not
// be attacked.
type CastleInfo struct {
	KingMove Move
	RookMove Move
	Empty    Bitboard
	Safe     Bitboard
}

// GameContext supplies the castling geometry for a game. It is data, not
// behavior, so variant rules can swap in different squares without
// touching the move machinery. The zero value is unusable; start from
// OrthodoxContext.
type GameContext struct {
	castles [2][2]CastleInfo // [Color][Wing]
}

// OrthodoxContext returns the castling geometry of standard chess.
func OrthodoxContext() *GameContext {
	ctx := &GameContext{}

	ctx.castles[White][KingSide] = CastleInfo{
		KingMove: NewMove(E1, G1),
		RookMove: NewMove(H1, F1),
		Empty:    SquareBB(F1) | SquareBB(G1),
		Safe:     SquareBB(E1) | SquareBB(F1) | SquareBB(G1),
	}
	ctx.castles[White][QueenSide] = CastleInfo{
		KingMove: NewMove(E1, C1),
		RookMove: NewMove(A1, D1),
		Empty:    SquareBB(B1) | SquareBB(C1) | SquareBB(D1),
		Safe:     SquareBB(C1) | SquareBB(D1) | SquareBB(E1),
	}
	ctx.castles[Black][KingSide] = CastleInfo{
		KingMove: NewMove(E8, G8),
		RookMove: NewMove(H8, F8),
		Empty:    SquareBB(F8) | SquareBB(G8),
		Safe:     SquareBB(E8) | SquareBB(F8) | SquareBB(G8),
	}
	ctx.castles[Black][QueenSide] = CastleInfo{
		KingMove: NewMove(E8, C8),
		RookMove: NewMove(A8, D8),
		Empty:    SquareBB(B8) | SquareBB(C8) | SquareBB(D8),
		Safe:     SquareBB(C8) | SquareBB(D8) | SquareBB(E8),
	}

	return ctx
}

// Castle returns the geometry for a color and wing.
func (ctx *GameContext) Castle(c Color, w Wing) CastleInfo {
	return ctx.castles[c][w]
}

// SetCastle replaces the geometry for a color and wing.
func (ctx *GameContext) SetCastle(c Color, w Wing, info CastleInfo) {
	ctx.castles[c][w] = info
}

// RookHome returns the rook's start square for a color and wing.
func (ctx *GameContext) RookHome(c Color, w Wing) Square {
	return ctx.castles[c][w].RookMove.From
}

// castleByKingMove finds the castle whose king relocation matches m, if any.
func (ctx *GameContext) castleByKingMove(c Color, m Move) (CastleInfo, Wing, bool) {
	for w := KingSide; w <= QueenSide; w++ {
		info := ctx.castles[c][w]
		if info.KingMove.From == m.From && info.KingMove.To == m.To {
			return info, w, true
		}
	}
	return CastleInfo{}, KingSide, false
}
