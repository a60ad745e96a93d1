package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// doUndoRoundTrip applies the move, undoes it, and requires the position
// to be restored bit for bit.
func doUndoRoundTrip(t *testing.T, fen string, m Move) {
	t.Helper()

	p, err := NewPositionFromFEN(fen)
	require.NoError(t, err)

	before := p.Clone()
	require.True(t, p.DoMove(m, true), "move %s must apply in %s", m, fen)
	require.Equal(t, m, p.UndoMove())

	assert.Equal(t, before, p.Clone(), "undo must restore the position exactly")
	assert.Equal(t, before.FEN(), p.FEN())
	assert.Equal(t, before.Hash(), p.Hash())
}

func TestDoUndoRoundTrips(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move Move
	}{
		{"pawn push", StartFEN, NewMove(E2, E4)},
		{"knight development", StartFEN, NewMove(G1, F3)},
		{"capture", "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2", NewMove(E4, D5)},
		{"en passant", "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1", NewMove(E5, D6)},
		{"king side castle", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", NewMove(E1, G1)},
		{"queen side castle", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", NewMove(E8, C8)},
		{"promotion", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", NewPromotion(A7, A8, WhiteQueen)},
		{"promotion with capture", "1n2k3/P7/8/8/8/8/8/4K3 w - - 0 1", NewPromotion(A7, B8, WhiteRook)},
		{"rook move clears one right", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", NewMove(H1, H5)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doUndoRoundTrip(t, tc.fen, tc.move)
		})
	}
}

func TestDoMovePawnDoublePush(t *testing.T) {
	p := NewPosition()
	require.True(t, p.DoMove(NewMove(E2, E4), true))

	// The crossed square is recorded as capture destination, but no black
	// pawn stands ready so there is no capturable target and the hash
	// carries no en-passant key.
	assert.Equal(t, E3, p.EpDestination())
	assert.Equal(t, NoSquare, p.EpTarget())
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", p.FEN())
}

func TestDoMoveEnPassantAdvertised(t *testing.T) {
	p, err := NewPositionFromFEN("rnbqkbnr/ppp1pppp/8/8/3p4/8/PPPPPPPP/RNBQKBNR w KQkq - 0 3")
	require.NoError(t, err)

	// e2e4 lands next to the black d4 pawn: the push is capturable.
	require.True(t, p.DoMove(NewMove(E2, E4), true))
	assert.Equal(t, E3, p.EpDestination())
	assert.Equal(t, E4, p.EpTarget())

	// The en-passant capture itself.
	require.True(t, p.DoMove(NewMove(D4, E3), true))
	assert.Equal(t, NoPiece, p.PieceAt(E4), "the pushed pawn is taken off its own square")
	assert.Equal(t, BlackPawn, p.PieceAt(E3))
}

func TestDoMoveCastlingMovesRook(t *testing.T) {
	p, err := NewPositionFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	require.True(t, p.DoMove(NewMove(E1, G1), true))
	assert.Equal(t, "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 1 1", p.FEN())

	require.True(t, p.DoMove(NewMove(E8, C8), true))
	assert.Equal(t, WhiteKing, p.PieceAt(G1))
	assert.Equal(t, WhiteRook, p.PieceAt(F1))
	assert.Equal(t, BlackKing, p.PieceAt(C8))
	assert.Equal(t, BlackRook, p.PieceAt(D8))
	assert.Equal(t, NoCastleRight, p.CastleRights(Black))
}

func TestCastleRightsFollowRooks(t *testing.T) {
	p, err := NewPositionFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	require.True(t, p.DoMove(NewMove(A1, A8), true), "rook takes rook across the a-file")
	assert.Equal(t, KingSideRight, p.CastleRights(White), "moving the a1 rook drops the queen side")
	assert.Equal(t, KingSideRight, p.CastleRights(Black), "capturing the a8 rook drops black's queen side")
}

func TestDoMoveRejectsIllegal(t *testing.T) {
	// The e-file pawn is pinned by the rook on e8.
	p, err := NewPositionFromFEN("4r1k1/8/8/8/8/8/4P3/4K3 w - - 0 1")
	require.NoError(t, err)

	before := p.FEN()
	assert.False(t, p.DoMove(NewMove(E2, D3), true), "pinned pawn cannot leave the file")
	assert.Equal(t, before, p.FEN(), "a rejected move must leave the position untouched")
	assert.Equal(t, NullMove, p.UndoMove(), "nothing to undo after a rejected move")

	assert.True(t, p.DoMove(NewMove(E2, E4), true), "pushing along the pin stays legal")
}

func TestDoMoveFullValidation(t *testing.T) {
	p := NewPosition()

	assert.False(t, p.DoMove(NewMove(E7, E5), true), "moving the opponent's piece")
	assert.False(t, p.DoMove(NewMove(B1, D2), true), "landing on an own piece")
	assert.True(t, p.DoMove(NewMove(E2, E4), true), "legal move must pass")

	promo, err := NewPositionFromFEN("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.False(t, promo.DoMove(NewMove(A7, A8), true), "reaching the terminal rank without a promotion piece")
	assert.False(t, promo.DoMove(NewPromotion(A7, A8, BlackQueen), true), "promotion piece of the wrong side")
	assert.True(t, promo.DoMove(NewPromotion(A7, A8, WhiteQueen), true))
}

func TestCastlingRejectedThroughCheck(t *testing.T) {
	// The black rook on f8 covers f1, the square the king passes through.
	p, err := NewPositionFromFEN("4kr2/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	require.NoError(t, err)
	assert.False(t, p.DoMove(NewMove(E1, G1), true), "king may not pass through an attacked square")
	assert.True(t, p.IsMoveLegal(NewMove(E1, C1), true), "queen side path is safe")

	// A piece between king and rook blocks the castle even with the right held.
	p2, err := NewPositionFromFEN("4k3/8/8/8/8/8/8/R2QK2R w KQ - 0 1")
	require.NoError(t, err)
	assert.False(t, p2.DoMove(NewMove(E1, C1), true), "occupied path blocks the castle")
	assert.True(t, p2.DoMove(NewMove(E1, G1), true), "king side path is open")
}

func TestNullMoveRoundTrip(t *testing.T) {
	p, err := NewPositionFromFEN("rnbqkbnr/ppp1pppp/8/8/3p4/8/PPPPPPPP/RNBQKBNR w KQkq - 0 3")
	require.NoError(t, err)
	require.True(t, p.DoMove(NewMove(E2, E4), true))

	before := p.Clone()
	p.DoNullMove()

	assert.Equal(t, White, p.SideToMove())
	assert.Equal(t, NoSquare, p.EpTarget(), "a null move forfeits the en-passant opportunity")
	assert.NotEqual(t, before.Hash(), p.Hash())

	require.Equal(t, NullMove, p.UndoMove())
	assert.Equal(t, before, p.Clone())
}

func TestFullMoveCounterAdvancesAfterBlack(t *testing.T) {
	p := NewPosition()
	require.True(t, p.DoMove(NewMove(E2, E4), true))
	assert.Equal(t, 1, p.FullMoveCounter())
	require.True(t, p.DoMove(NewMove(E7, E5), true))
	assert.Equal(t, 2, p.FullMoveCounter())
	p.UndoMove()
	assert.Equal(t, 1, p.FullMoveCounter())
}

func TestHalfMoveCounterResets(t *testing.T) {
	p, err := NewPositionFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 7 20")
	require.NoError(t, err)

	require.True(t, p.DoMove(NewMove(A1, A5), true))
	assert.Equal(t, 8, p.HalfMoveCounter(), "quiet rook move increments")

	require.True(t, p.DoMove(NewMove(A8, A5), true))
	assert.Equal(t, 0, p.HalfMoveCounter(), "capture resets")
}
