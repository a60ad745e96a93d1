package board

import "strings"

// MoveList is an ordered sequence of moves played out from a base
// position, with lazily rendered SAN and FAN arrays. Any mutation marks
// the caches dirty; rendering replays the moves against the start FEN on
// a scratch position.
type MoveList struct {
	moves    []Move
	startFEN string
	dirty    bool
	san      []string
	fan      []string
}

// NewMoveList creates an empty move list based on the given FEN; an empty
// string means the starting position.
func NewMoveList(startFEN string) *MoveList {
	if startFEN == "" {
		startFEN = StartFEN
	}
	return &MoveList{startFEN: startFEN}
}

// StartFEN returns the base position the list is replayed from.
func (ml *MoveList) StartFEN() string {
	return ml.startFEN
}

// Add appends a move.
func (ml *MoveList) Add(m Move) {
	ml.moves = append(ml.moves, m)
	ml.dirty = true
}

// Len returns the number of moves.
func (ml *MoveList) Len() int {
	return len(ml.moves)
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

// Slice returns the moves. The slice aliases internal state; callers must
// not modify it.
func (ml *MoveList) Slice() []Move {
	return ml.moves
}

// Contains returns true if the list contains the move.
func (ml *MoveList) Contains(m Move) bool {
	for _, x := range ml.moves {
		if x == m {
			return true
		}
	}
	return false
}

// Clear removes all moves, keeping the start FEN.
func (ml *MoveList) Clear() {
	ml.moves = ml.moves[:0]
	ml.dirty = true
}

// SANArray returns the SAN rendering of the whole sequence.
func (ml *MoveList) SANArray() ([]string, error) {
	if err := ml.render(); err != nil {
		return nil, err
	}
	return ml.san, nil
}

// FANArray returns the figurine rendering of the whole sequence.
func (ml *MoveList) FANArray() ([]string, error) {
	if err := ml.render(); err != nil {
		return nil, err
	}
	return ml.fan, nil
}

// String returns the SAN sequence joined by spaces, or an empty string if
// the sequence cannot be rendered.
func (ml *MoveList) String() string {
	san, err := ml.SANArray()
	if err != nil {
		return ""
	}
	return strings.Join(san, " ")
}

func (ml *MoveList) render() error {
	if !ml.dirty && ml.san != nil {
		return nil
	}

	sanPos, err := NewPositionFromFEN(ml.startFEN)
	if err != nil {
		return err
	}
	fanPos := sanPos.Clone()

	san := make([]string, 0, len(ml.moves))
	fan := make([]string, 0, len(ml.moves))
	for _, m := range ml.moves {
		s, err := EncodeMove(sanPos, m, SAN)
		if err != nil {
			return err
		}
		f, err := EncodeMove(fanPos, m, FAN)
		if err != nil {
			return err
		}
		san = append(san, s)
		fan = append(fan, f)
	}

	ml.san = san
	ml.fan = fan
	ml.dirty = false
	return nil
}

// ParseSANSequence decodes a whitespace-separated run of SAN tokens
// against the given base FEN (empty means the starting position). Move
// numbers, NAG markers ($n), continuation dots and game results are
// skipped. Each decoded move is validated by replay; an illegal move
// aborts with an IllegalMoveError carrying the move and the FEN it was
// rejected in.
func ParseSANSequence(startFEN, text string) (*MoveList, error) {
	ml := NewMoveList(startFEN)
	p, err := NewPositionFromFEN(ml.startFEN)
	if err != nil {
		return nil, err
	}

	for _, token := range strings.Fields(text) {
		if skipToken(token) {
			continue
		}
		m, err := DecodeMove(p, token)
		if err != nil {
			return nil, err
		}
		if !p.DoMove(m, true) {
			return nil, &IllegalMoveError{Move: m, FEN: p.FEN()}
		}
		ml.Add(m)
	}
	return ml, nil
}

func skipToken(token string) bool {
	switch token {
	case "1-0", "0-1", "1/2-1/2", "*":
		return true
	}
	if strings.HasPrefix(token, "$") || strings.Contains(token, "...") {
		return true
	}
	// Move numbers: digits optionally followed by dots.
	trimmed := strings.TrimRight(token, ".")
	if trimmed == "" {
		return true
	}
	for i := 0; i < len(trimmed); i++ {
		if trimmed[i] < '0' || trimmed[i] > '9' {
			return false
		}
	}
	return true
}
