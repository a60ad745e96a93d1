package board

import (
	"strings"
)

// Notation selects the move-text flavor: SAN piece letters or FAN
// figurine glyphs.
type Notation uint8

const (
	SAN Notation = iota
	FAN
)

// EncodeMove renders m as SAN or FAN in the context of p, with minimal
// disambiguation and a check or mate suffix. The suffix and the capture
// marker depend on the position after the move, so encoding applies the
// move: on success p has advanced past m.
func EncodeMove(p *Position, m Move, style Notation) (string, error) {
	if m.IsNull() {
		p.DoNullMove()
		return "Z0", nil
	}

	piece := p.PieceAt(m.From)
	if piece == NoPiece {
		return "", &IllegalMoveError{Move: m, FEN: p.FEN()}
	}
	us := p.sideToMove

	if piece.Type() == King && abs(m.To.File()-m.From.File()) >= 2 {
		base := "O-O"
		if m.To.File() < m.From.File() {
			base = "O-O-O"
		}
		if !p.DoMove(m, false) {
			return "", &IllegalMoveError{Move: m, FEN: p.FEN()}
		}
		return base + p.checkSuffix(), nil
	}

	var sb strings.Builder
	if piece.Type() != Pawn {
		if style == FAN {
			sb.WriteString(piece.Glyph())
		} else {
			sb.WriteString(piece.Type().SANLetter())
		}

		// Other pieces of the same kind that could also reach the
		// destination force a disambiguator: file if unique, else rank,
		// else the full origin square.
		others := pieceTypeAttacks(piece.Type(), m.To, p.AllBB()) & p.pieces[us][piece.Type()] &^ SquareBB(m.From)
		var rivals []Square
		for bb := others; bb != 0; {
			c := bb.PopLSB()
			if p.moveIsLegal(NewMove(c, m.To), p.board[c]) {
				rivals = append(rivals, c)
			}
		}
		if len(rivals) > 0 {
			sameFile, sameRank := false, false
			for _, c := range rivals {
				if c.File() == m.From.File() {
					sameFile = true
				}
				if c.Rank() == m.From.Rank() {
					sameRank = true
				}
			}
			switch {
			case !sameFile:
				sb.WriteByte('a' + byte(m.From.File()))
			case !sameRank:
				sb.WriteByte('1' + byte(m.From.Rank()))
			default:
				sb.WriteString(m.From.String())
			}
		}
	}

	if p.board[m.To] != NoPiece || p.isEnPassantCapture(m, piece) {
		if piece.Type() == Pawn {
			sb.WriteByte('a' + byte(m.From.File()))
		}
		sb.WriteByte('x')
	}
	sb.WriteString(m.To.String())

	if m.Promotion != NoPiece {
		sb.WriteByte('=')
		if style == FAN {
			sb.WriteString(m.Promotion.Glyph())
		} else {
			sb.WriteString(m.Promotion.Type().SANLetter())
		}
	}

	if !p.DoMove(m, false) {
		return "", &IllegalMoveError{Move: m, FEN: p.FEN()}
	}
	sb.WriteString(p.checkSuffix())
	return sb.String(), nil
}

func (p *Position) checkSuffix() string {
	if p.IsMated() {
		return "#"
	}
	if p.IsKingAttacked() {
		return "+"
	}
	return ""
}

// sanNormalizer strips annotations that carry no move information. The
// "ep" replacement is global but safe: in well-formed SAN an 'e' is never
// followed by a 'p'.
var sanNormalizer = strings.NewReplacer(
	"+", "", "#", "", "!", "", "?", "",
	"e.p.", "", "ep", "", "\n", "", "\r", "",
)

// DecodeMove resolves a SAN (or FAN-free ASCII) token to a concrete move
// against p. The position is not modified; the returned move has not been
// validated beyond origin resolution, so callers apply it with DoMove.
func DecodeMove(p *Position, san string) (Move, error) {
	s := sanNormalizer.Replace(strings.TrimSpace(san))
	if s == "" {
		return NullMove, &ParseError{Input: san, FEN: p.FEN(), Msg: "empty move text"}
	}
	if strings.EqualFold(s, "Z0") {
		return NullMove, nil
	}

	us := p.sideToMove
	switch s {
	case "O-O", "0-0":
		return p.ctx.Castle(us, KingSide).KingMove, nil
	case "O-O-O", "0-0-0":
		return p.ctx.Castle(us, QueenSide).KingMove, nil
	}

	promo := NoPiece
	if i := strings.Index(s, "="); i >= 0 {
		if i+1 >= len(s) {
			return NullMove, &ParseError{Input: san, FEN: p.FEN(), Msg: "missing promotion piece"}
		}
		pt := PieceTypeFromSANLetter(string(upperByte(s[i+1])))
		if pt == NoPieceType || pt == Pawn || pt == King {
			return NullMove, &ParseError{Input: san, FEN: p.FEN(), Msg: "invalid promotion piece"}
		}
		promo = NewPiece(pt, us)
		s = s[:i]
	} else if last := s[len(s)-1]; isAlpha(last) {
		// A bare trailing letter is an implicit promotion ("e8Q").
		pt := PieceTypeFromSANLetter(string(upperByte(last)))
		if pt == NoPieceType || pt == Pawn || pt == King {
			return NullMove, &ParseError{Input: san, FEN: p.FEN(), Msg: "invalid promotion piece"}
		}
		promo = NewPiece(pt, us)
		s = s[:len(s)-1]
	}

	s = strings.ReplaceAll(s, "x", "")
	if len(s) < 2 {
		return NullMove, &ParseError{Input: san, FEN: p.FEN(), Msg: "missing destination square"}
	}
	dest, err := ParseSquare(s[len(s)-2:])
	if err != nil {
		return NullMove, &ParseError{Input: san, FEN: p.FEN(), Msg: "invalid destination square"}
	}
	rest := s[:len(s)-2]

	if rest == "" {
		// Plain pawn move: the origin is the nearest own pawn behind the
		// destination on the same file.
		fileBB := FileMask[dest.File()] & p.pieces[us][Pawn]
		var origin Square
		if us == White {
			origin = (fileBB & (SquareBB(dest) - 1)).MSB()
		} else {
			origin = (fileBB &^ (SquareBB(dest) | (SquareBB(dest) - 1))).LSB()
		}
		if origin == NoSquare {
			return NullMove, &ParseError{Input: san, FEN: p.FEN(), Msg: "no pawn can reach " + dest.String()}
		}
		return Move{From: origin, To: dest, Promotion: promo}, nil
	}

	pt := Pawn
	if first := rest[0]; first >= 'A' && first <= 'Z' {
		pt = PieceTypeFromSANLetter(string(first))
		if pt == NoPieceType || pt == Pawn {
			return NullMove, &ParseError{Input: san, FEN: p.FEN(), Msg: "unknown piece letter " + string(first)}
		}
		rest = rest[1:]
	}

	if len(rest) == 2 {
		origin, err := ParseSquare(rest)
		if err != nil {
			return NullMove, &ParseError{Input: san, FEN: p.FEN(), Msg: "invalid origin square"}
		}
		return Move{From: origin, To: dest, Promotion: promo}, nil
	}

	fileMask, rankMask := Universe, Universe
	for i := 0; i < len(rest); i++ {
		switch c := rest[i]; {
		case c >= 'a' && c <= 'h':
			fileMask = FileMask[c-'a']
		case c >= '1' && c <= '8':
			rankMask = RankMask[c-'1']
		default:
			return NullMove, &ParseError{Input: san, FEN: p.FEN(), Msg: "invalid disambiguator"}
		}
	}

	var cands Bitboard
	if pt == Pawn {
		cands = pawnAttacks[us.Other()][dest] & p.pieces[us][Pawn]
	} else {
		cands = pieceTypeAttacks(pt, dest, p.AllBB()) & p.pieces[us][pt]
	}
	cands &= fileMask & rankMask

	if cands == 0 {
		return NullMove, &ParseError{Input: san, FEN: p.FEN(), Msg: "no piece can reach " + dest.String()}
	}
	if cands.Single() {
		return Move{From: cands.LSB(), To: dest, Promotion: promo}, nil
	}
	for bb := cands; bb != 0; {
		m := Move{From: bb.PopLSB(), To: dest, Promotion: promo}
		if p.IsMoveLegal(m, true) {
			return m, nil
		}
	}
	return NullMove, &ParseError{Input: san, FEN: p.FEN(), Msg: "ambiguous move"}
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
