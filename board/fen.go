package board

import (
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewPositionFromFEN creates a position from a FEN string with orthodox
// castling rules.
func NewPositionFromFEN(fen string) (*Position, error) {
	p := NewEmptyPosition()
	if err := p.LoadFEN(fen); err != nil {
		return nil, err
	}
	return p, nil
}

// LoadFEN replaces the position with the one described by fen. The first
// four fields are required; the half-move and full-move counters default
// to 0 and 1 when missing. The en-passant destination is taken over as
// given; the en-passant target is only set when an enemy pawn can actually
// make the capture. The hash is recomputed from scratch and seeds the
// history.
func (p *Position) LoadFEN(fen string) error {
	parts := strings.Fields(fen)
	if len(parts) < 4 {
		return &ParseError{Input: fen, Msg: "FEN needs at least 4 fields"}
	}

	p.Clear()

	if err := p.loadPlacement(parts[0]); err != nil {
		p.Clear()
		return err
	}

	switch parts[1] {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
	default:
		p.Clear()
		return &ParseError{Input: fen, Msg: "invalid side to move " + strconv.Quote(parts[1])}
	}

	if parts[2] != "-" {
		for _, c := range parts[2] {
			switch c {
			case 'K':
				p.castle[White] = withKingSide(p.castle[White])
			case 'Q':
				p.castle[White] = withQueenSide(p.castle[White])
			case 'k':
				p.castle[Black] = withKingSide(p.castle[Black])
			case 'q':
				p.castle[Black] = withQueenSide(p.castle[Black])
			default:
				p.Clear()
				return &ParseError{Input: fen, Msg: "invalid castling letter " + strconv.Quote(string(c))}
			}
		}
	}

	if parts[3] != "-" {
		dest, err := ParseSquare(parts[3])
		if err != nil {
			p.Clear()
			return &ParseError{Input: fen, Msg: "invalid en passant square " + strconv.Quote(parts[3])}
		}
		p.epDestination = dest
		// The pawn that double-pushed stands one rank past the capture
		// destination, in the direction it moved. It becomes the
		// en-passant target only if it can actually be captured.
		pusher := p.sideToMove.Other()
		target := dest + 8
		if pusher == Black {
			target = dest - 8
		}
		if target.IsValid() && p.board[target] == NewPiece(Pawn, pusher) &&
			p.epCapturable(target, dest, pusher) {
			p.epTarget = target
		}
	}

	if len(parts) > 4 {
		hm, err := strconv.Atoi(parts[4])
		if err != nil || hm < 0 {
			p.Clear()
			return &ParseError{Input: fen, Msg: "invalid half-move counter " + strconv.Quote(parts[4])}
		}
		p.halfMoves = hm
	}
	if len(parts) > 5 {
		fm, err := strconv.Atoi(parts[5])
		if err != nil || fm < 1 {
			p.Clear()
			return &ParseError{Input: fen, Msg: "invalid full-move counter " + strconv.Quote(parts[5])}
		}
		p.fullMoves = fm
	}

	p.hash = p.computeHash()
	p.history = append(p.history[:0], p.hash)
	p.undo = p.undo[:0]
	p.notify(EventLoaded)
	return nil
}

func (p *Position) loadPlacement(placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return &ParseError{Input: placement, Msg: "piece placement needs 8 ranks"}
	}

	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			if file > 7 {
				return &ParseError{Input: rankStr, Msg: "too many squares in rank"}
			}
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			pc := PieceFromChar(c)
			if pc == NoPiece {
				return &ParseError{Input: rankStr, Msg: "invalid piece letter " + strconv.Quote(string(c))}
			}
			p.place(pc, NewSquare(file, rank))
			file++
		}
		if file != 8 {
			return &ParseError{Input: rankStr, Msg: "rank does not cover 8 squares"}
		}
	}
	return nil
}

func withKingSide(r CastleRight) CastleRight {
	if r.HasQueenSide() {
		return KingAndQueenSideRight
	}
	return KingSideRight
}

func withQueenSide(r CastleRight) CastleRight {
	if r.HasKingSide() {
		return KingAndQueenSideRight
	}
	return QueenSideRight
}

// FEN returns the full six-field FEN of the position.
func (p *Position) FEN() string {
	return p.FormatFEN(true, false)
}

// FormatFEN serializes the position. The counters are appended only when
// requested. With epOnlyIfCapturable the en-passant field collapses to
// "-" unless an enemy pawn can actually take.
func (p *Position) FormatFEN(includeCounters, epOnlyIfCapturable bool) string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			pc := p.board[NewSquare(file, rank)]
			if pc == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	castling := p.castle[White].String() + strings.ToLower(p.castle[Black].String())
	if castling == "" {
		castling = "-"
	}
	sb.WriteString(castling)

	sb.WriteByte(' ')
	ep := p.epDestination
	if epOnlyIfCapturable && p.epTarget == NoSquare {
		ep = NoSquare
	}
	sb.WriteString(ep.String())

	if includeCounters {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(p.halfMoves))
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(p.fullMoves))
	}

	return sb.String()
}
