package board

import "fmt"

// ParseError reports malformed FEN, SAN or coordinate input. It carries
// the offending token and the FEN of the position it was decoded against.
type ParseError struct {
	Input string
	FEN   string
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %s (position %s)", e.Input, e.Msg, e.FEN)
}

// IllegalMoveError reports a decoded or supplied move rejected by the
// legality check during notation handling. DoMove itself signals rejection
// with a false return and leaves the position untouched.
type IllegalMoveError struct {
	Move Move
	FEN  string
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move %s in position %s", e.Move, e.FEN)
}
