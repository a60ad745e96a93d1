package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFENRoundTrips(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1",
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"8/8/8/8/8/8/8/4K2k b - - 42 77",
		"4k3/8/8/8/8/8/8/R3K3 w Q - 0 1",
	}

	for _, fen := range fens {
		p, err := NewPositionFromFEN(fen)
		require.NoError(t, err, fen)
		assert.Equal(t, fen, p.FEN(), "round trip")
	}
}

func TestFENMissingCountersDefault(t *testing.T) {
	p, err := NewPositionFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq -")
	require.NoError(t, err)
	assert.Equal(t, 0, p.HalfMoveCounter())
	assert.Equal(t, 1, p.FullMoveCounter())
	assert.Equal(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", p.FEN())
}

func TestFENWithoutCounters(t *testing.T) {
	p := NewPosition()
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -",
		p.FormatFEN(false, false))
}

func TestFENEnPassantOnlyIfCapturable(t *testing.T) {
	// No black pawn can take on e3: the square is still recorded, but
	// the capturable-only form collapses it.
	p, err := NewPositionFromFEN("4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	require.NoError(t, err)
	require.True(t, p.DoMove(NewMove(E2, E4), true))

	assert.Equal(t, E3, p.EpDestination())
	assert.Equal(t, NoSquare, p.EpTarget(), "no en passant advertised without an adjacent enemy pawn")
	assert.Equal(t, "4k3/8/8/8/4P3/8/8/4K3 b - e3 0 1", p.FEN())
	assert.Equal(t, "4k3/8/8/8/4P3/8/8/4K3 b - - 0 1", p.FormatFEN(true, true))

	// With a capturer in place both forms keep the square.
	q, err := NewPositionFromFEN("4k3/8/8/8/3p4/8/4P3/4K3 w - - 0 1")
	require.NoError(t, err)
	require.True(t, q.DoMove(NewMove(E2, E4), true))
	assert.Equal(t, E4, q.EpTarget())
	assert.Equal(t, "4k3/8/8/8/3pP3/8/8/4K3 b - e3 0 1", q.FormatFEN(true, true))
}

func TestFENEnPassantPinSuppressesTarget(t *testing.T) {
	// Taking en passant would strip both pawns off the fourth rank and
	// expose the black king to the h4 rook.
	p, err := NewPositionFromFEN("8/8/8/8/k2Pp2R/8/8/4K3 b - d3 0 1")
	require.NoError(t, err)

	assert.Equal(t, D3, p.EpDestination())
	assert.Equal(t, NoSquare, p.EpTarget(), "pinned capturer cannot take")

	for _, m := range p.LegalMoves() {
		assert.NotEqual(t, D3, m.To, "the en-passant capture must be filtered out")
	}
}

func TestFENErrors(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",            // missing fields
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",        // seven ranks
		"rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", // bad digit
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1", // bad piece
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1", // bad side
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KZkq - 0 1", // bad castling
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - x 1", // bad counter
	}

	for _, fen := range bad {
		_, err := NewPositionFromFEN(fen)
		var parseErr *ParseError
		assert.ErrorAs(t, err, &parseErr, "FEN %q must fail", fen)
	}
}

func TestFENLoadResetsState(t *testing.T) {
	p := NewPosition()
	require.True(t, p.DoMove(NewMove(E2, E4), true))
	require.True(t, p.DoMove(NewMove(E7, E5), true))

	require.NoError(t, p.LoadFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1"))
	assert.Len(t, p.History(), 1)
	assert.Equal(t, NullMove, p.UndoMove(), "the undo stack does not survive a load")
	assert.Equal(t, p.computeHash(), p.Hash())
}

func TestFENCastlingSubsets(t *testing.T) {
	p, err := NewPositionFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w Kq - 0 1")
	require.NoError(t, err)
	assert.Equal(t, KingSideRight, p.CastleRights(White))
	assert.Equal(t, QueenSideRight, p.CastleRights(Black))
	assert.Equal(t, "r3k2r/8/8/8/8/8/8/R3K2R w Kq - 0 1", p.FEN())
}
