package game

import (
	"testing"

	"github.com/notnil/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	startFEN     = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	afterE4FEN   = "rnbqkbnr/pppppppp/8/8/4P3/8/PPPPPPPP/RNBQKBNR b KQkq e3 0 1"
	promotionFEN = "8/P7/8/8/8/8/7k/K7 w - - 0 1"
)

func TestNewSession(t *testing.T) {
	s := NewSession()
	assert.NotEmpty(t, s.Name())
	assert.Equal(t, startFEN, s.FEN())
	assert.Equal(t, "White to move", s.Status())
	assert.Empty(t, s.History())
	_, ok := s.Selected()
	assert.False(t, ok)
	_, _, ok = s.LastMove()
	assert.False(t, ok)
}

func TestSelectEmptySquareDeselects(t *testing.T) {
	s := NewSession()
	s.SelectSquare(chess.E2)
	s.SelectSquare(chess.E5)
	_, ok := s.Selected()
	assert.False(t, ok)
	assert.Empty(t, s.Targets())
}

func TestSelectOpponentPieceDeselects(t *testing.T) {
	s := NewSession()
	s.SelectSquare(chess.E7)
	_, ok := s.Selected()
	assert.False(t, ok)
	assert.Empty(t, s.Targets())
}

func TestSelectOwnPiece(t *testing.T) {
	s := NewSession()
	s.SelectSquare(chess.E2)
	sel, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, chess.E2, sel)
	assert.ElementsMatch(t, []chess.Square{chess.E3, chess.E4}, s.Targets())
}

func TestClearSelection(t *testing.T) {
	s := NewSession()
	s.SelectSquare(chess.E2)
	s.ClearSelection()
	_, ok := s.Selected()
	assert.False(t, ok)
	assert.Empty(t, s.Targets())
}

func TestSubmitRejectedChangesNothing(t *testing.T) {
	s := NewSession()
	s.SelectSquare(chess.E2)

	ok := s.TrySubmitMove(chess.E2, chess.E5)
	assert.False(t, ok)

	sel, selOk := s.Selected()
	require.True(t, selOk, "rejected submit must keep the selection")
	assert.Equal(t, chess.E2, sel)
	assert.ElementsMatch(t, []chess.Square{chess.E3, chess.E4}, s.Targets())
	assert.Equal(t, startFEN, s.FEN())
	assert.Empty(t, s.History())
	assert.Equal(t, "White to move", s.Status())
	_, _, lastOk := s.LastMove()
	assert.False(t, lastOk)
}

func TestSubmitAccepted(t *testing.T) {
	s := NewSession()
	s.SelectSquare(chess.E2)

	ok := s.TrySubmitMove(chess.E2, chess.E4)
	require.True(t, ok)

	from, to, lastOk := s.LastMove()
	require.True(t, lastOk)
	assert.Equal(t, chess.E2, from)
	assert.Equal(t, chess.E4, to)
	_, selOk := s.Selected()
	assert.False(t, selOk)
	assert.Empty(t, s.Targets())
	assert.Equal(t, afterE4FEN, s.FEN())
	assert.Equal(t, []string{"e4"}, s.History())
	assert.Equal(t, "Black to move", s.Status())
}

func TestAutoQueenPromotion(t *testing.T) {
	s, err := NewSessionFromFEN(promotionFEN)
	require.NoError(t, err)

	ok := s.TrySubmitMove(chess.A7, chess.A8)
	require.True(t, ok, "a pawn reaching the back rank promotes without a prompt")
	require.Len(t, s.History(), 1)
	assert.Equal(t, "a8=Q", s.History()[0])
}

func TestClickToMove(t *testing.T) {
	s := NewSession()
	s.HandleClick(chess.E2)
	sel, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, chess.E2, sel)

	s.HandleClick(chess.E4)
	assert.Equal(t, afterE4FEN, s.FEN())
	_, ok = s.Selected()
	assert.False(t, ok)
}

func TestClickReselectsOnRejection(t *testing.T) {
	s := NewSession()
	s.HandleClick(chess.E2)
	// d1 is not reachable from e2; the click falls through to a reselection
	s.HandleClick(chess.D1)
	sel, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, chess.D1, sel)
}

func TestClickEmptySquareDeselects(t *testing.T) {
	s := NewSession()
	s.HandleClick(chess.E2)
	s.HandleClick(chess.A5)
	_, ok := s.Selected()
	assert.False(t, ok)
	assert.Empty(t, s.Targets())
	assert.Equal(t, startFEN, s.FEN())
}

func TestDragBeginOnlyGrabsOwnPieces(t *testing.T) {
	s := NewSession()
	s.HandleDragBegin(chess.E2)
	sel, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, chess.E2, sel)

	// pressing the destination must not wipe the pending selection
	s.HandleDragBegin(chess.E4)
	sel, ok = s.Selected()
	require.True(t, ok)
	assert.Equal(t, chess.E2, sel)

	s.HandleDragBegin(chess.E7)
	sel, ok = s.Selected()
	require.True(t, ok)
	assert.Equal(t, chess.E2, sel)
}

func TestDrop(t *testing.T) {
	s := NewSession()
	s.HandleDragBegin(chess.E2)
	assert.True(t, s.HandleDrop(chess.E2, chess.E4))
	assert.Equal(t, afterE4FEN, s.FEN())

	assert.False(t, s.HandleDrop(chess.D2, chess.D4), "dragging the side not to move is rejected")
	assert.Equal(t, afterE4FEN, s.FEN())
}

func TestUndoFreshGameIsNoop(t *testing.T) {
	s := NewSession()
	assert.False(t, s.Undo())
	assert.Equal(t, startFEN, s.FEN())
	assert.Equal(t, "White to move", s.Status())
	assert.Empty(t, s.History())
}

func TestMoveUndoScenario(t *testing.T) {
	s := NewSession()

	require.True(t, s.TrySubmitMove(chess.E2, chess.E4))
	assert.Equal(t, "Black to move", s.Status())
	assert.Len(t, s.History(), 1)

	require.True(t, s.TrySubmitMove(chess.E7, chess.E5))
	assert.Equal(t, "White to move", s.Status())
	assert.Len(t, s.History(), 2)

	require.True(t, s.Undo())
	assert.Len(t, s.History(), 1)
	assert.Equal(t, "Black to move", s.Status())
	assert.Equal(t, afterE4FEN, s.FEN())
	_, _, ok := s.LastMove()
	assert.False(t, ok, "undo clears the last-move highlight")
}

func TestRepeatedUndoReturnsToInitial(t *testing.T) {
	s := NewSession()
	moves := [][2]chess.Square{
		{chess.E2, chess.E4}, {chess.E7, chess.E5},
		{chess.G1, chess.F3}, {chess.B8, chess.C6},
	}
	for _, m := range moves {
		require.True(t, s.TrySubmitMove(m[0], m[1]))
	}
	for s.Undo() {
	}
	assert.Equal(t, startFEN, s.FEN())
	assert.Empty(t, s.History())
	assert.Equal(t, "White to move", s.Status())
}

func TestNewGameResetsEverything(t *testing.T) {
	s := NewSession()
	require.True(t, s.TrySubmitMove(chess.E2, chess.E4))
	s.SelectSquare(chess.D7)

	s.NewGame()
	assert.Equal(t, startFEN, s.FEN())
	assert.Empty(t, s.History())
	assert.Equal(t, "White to move", s.Status())
	_, _, ok := s.LastMove()
	assert.False(t, ok)
	_, selOk := s.Selected()
	assert.False(t, selOk)
}

func TestFoolsMateStatus(t *testing.T) {
	s := NewSession()
	for _, m := range [][2]chess.Square{
		{chess.F2, chess.F3},
		{chess.E7, chess.E5},
		{chess.G2, chess.G4},
		{chess.D8, chess.H4},
	} {
		require.True(t, s.TrySubmitMove(m[0], m[1]))
	}
	assert.Equal(t, "Checkmate — Black wins", s.Status())
}

func TestHighlightsCompose(t *testing.T) {
	s := NewSession()
	require.True(t, s.TrySubmitMove(chess.E2, chess.E4))
	require.True(t, s.TrySubmitMove(chess.D7, chess.D5))

	s.SelectSquare(chess.E4)
	hl := s.Highlights()
	assert.Equal(t, HighlightSelected, hl[chess.E4]&HighlightSelected)
	// d5 is both a capture target and the last move's destination
	assert.Equal(t, HighlightTarget|HighlightLastTo, hl[chess.D5]&(HighlightTarget|HighlightLastTo))
	assert.Equal(t, HighlightLastFrom, hl[chess.D7]&HighlightLastFrom)
}

func TestFENRootCheckStatus(t *testing.T) {
	s, err := NewSessionFromFEN("4k3/8/8/8/8/8/4Q3/4K3 b - - 0 1")
	require.NoError(t, err)
	assert.Equal(t, "Black is in check", s.Status())
	hl := s.Highlights()
	assert.Equal(t, HighlightCheck, hl[chess.E8]&HighlightCheck)
}

func TestHighlightsCheck(t *testing.T) {
	s := NewSession()
	require.True(t, s.TrySubmitMove(chess.E2, chess.E4))
	require.True(t, s.TrySubmitMove(chess.F7, chess.F5))
	require.True(t, s.TrySubmitMove(chess.D1, chess.H5))

	assert.Equal(t, "Black is in check", s.Status())
	hl := s.Highlights()
	assert.Equal(t, HighlightCheck, hl[chess.E8]&HighlightCheck)
}
