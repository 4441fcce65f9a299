// Package game holds the coordination layer between the UI and the rules
// engine: selection state, move submission, status text, and the paired move
// history. It has no rendering and no chess logic of its own.
package game

import (
	petname "github.com/dustinkirkland/golang-petname"
	"github.com/notnil/chess"

	"github.com/lewismcgrogan/LewisChessGame/pkg/engine"
)

// Highlight marks the display roles a square can play. The kinds are
// independent bits so one square can carry several at once.
type Highlight uint8

const (
	HighlightSelected Highlight = 1 << iota
	HighlightTarget
	HighlightLastFrom
	HighlightLastTo
	HighlightCheck
)

// Session is the single owner of a game and the transient UI state around
// it. All fields are derived from the engine after every mutation; nothing
// is hand-maintained across moves. Not safe for concurrent use.
type Session struct {
	eng  *engine.Engine
	name string

	selected chess.Square
	targets  []chess.Square
	lastFrom chess.Square
	lastTo   chess.Square

	fen     string
	pgn     string
	history []string
	status  string
}

// NewSession starts a session with a fresh game and a generated name.
func NewSession() *Session {
	s := &Session{
		name:     petname.Generate(2, "-"),
		eng:      engine.New(),
		selected: chess.NoSquare,
		lastFrom: chess.NoSquare,
		lastTo:   chess.NoSquare,
	}
	s.eng.SetTag("Event", s.name)
	s.sync()
	return s
}

// NewSessionFromFEN starts a session at an arbitrary position.
func NewSessionFromFEN(fen string) (*Session, error) {
	eng, err := engine.FromFEN(fen)
	if err != nil {
		return nil, err
	}
	s := &Session{
		name:     petname.Generate(2, "-"),
		eng:      eng,
		selected: chess.NoSquare,
		lastFrom: chess.NoSquare,
		lastTo:   chess.NoSquare,
	}
	s.eng.SetTag("Event", s.name)
	s.sync()
	return s, nil
}

// Name returns the session's generated name.
func (s *Session) Name() string { return s.name }

// FEN returns the current position.
func (s *Session) FEN() string { return s.fen }

// PGN returns the game's movetext.
func (s *Session) PGN() string { return s.pgn }

// Status returns the human-readable game status.
func (s *Session) Status() string { return s.status }

// History returns the algebraic notation of every applied move.
func (s *Session) History() []string { return s.history }

// Selected returns the selected square, ok=false when nothing is selected.
func (s *Session) Selected() (chess.Square, bool) {
	return s.selected, s.selected != chess.NoSquare
}

// Targets returns the legal destinations of the selected piece.
func (s *Session) Targets() []chess.Square { return s.targets }

// LastMove returns the most recently applied move's squares, ok=false when
// no move has been applied since the last new game or undo.
func (s *Session) LastMove() (from, to chess.Square, ok bool) {
	return s.lastFrom, s.lastTo, s.lastFrom != chess.NoSquare
}

// SelectSquare selects sq when it holds a piece of the side to move and
// records that piece's legal destinations. Clicking an empty square or an
// opponent piece deselects; that is normal interaction, not an error.
func (s *Session) SelectSquare(sq chess.Square) {
	p := s.eng.PieceAt(sq)
	if p == chess.NoPiece || p.Color() != s.eng.Turn() {
		s.ClearSelection()
		return
	}
	s.selected = sq
	s.targets = s.eng.MovesFrom(sq)
}

// ClearSelection empties the selection and its legal targets.
func (s *Session) ClearSelection() {
	s.selected = chess.NoSquare
	s.targets = nil
}

// TrySubmitMove submits from->to to the engine, promoting to a queen when a
// pawn reaches its back rank. On rejection nothing changes and false is
// returned. On acceptance the last move is recorded, the selection is
// cleared, and every derived field is re-synced before returning.
func (s *Session) TrySubmitMove(from, to chess.Square) bool {
	promo := chess.NoPieceType
	if p := s.eng.PieceAt(from); p.Type() == chess.Pawn {
		if (p.Color() == chess.White && to.Rank() == chess.Rank8) ||
			(p.Color() == chess.Black && to.Rank() == chess.Rank1) {
			promo = chess.Queen
		}
	}
	if _, ok := s.eng.Move(from, to, promo); !ok {
		return false
	}
	s.lastFrom, s.lastTo = from, to
	s.ClearSelection()
	s.sync()
	return true
}

// HandleClick implements click-click moving: with a selection in place the
// click is first tried as a move and, if illegal, retried as a fresh
// selection. Without a selection it is a plain selection attempt.
func (s *Session) HandleClick(sq chess.Square) {
	if sel, ok := s.Selected(); ok {
		if s.TrySubmitMove(sel, sq) {
			return
		}
	}
	s.SelectSquare(sq)
}

// HandleDragBegin mirrors a drag start onto the selection so the dragged
// piece's legal targets light up. A press on an empty or opponent square is
// left alone: in a terminal a click arrives as press plus release on the
// same square, and the press must not wipe the selection the release is
// about to move from.
func (s *Session) HandleDragBegin(sq chess.Square) {
	if p := s.eng.PieceAt(sq); p != chess.NoPiece && p.Color() == s.eng.Turn() {
		s.SelectSquare(sq)
	}
}

// HandleDrop submits a drag-and-drop move, independent of click state.
func (s *Session) HandleDrop(from, to chess.Square) bool {
	return s.TrySubmitMove(from, to)
}

// NewGame discards the game wholesale and starts over at the initial
// position under the same session name.
func (s *Session) NewGame() {
	s.eng = engine.New()
	s.eng.SetTag("Event", s.name)
	s.lastFrom, s.lastTo = chess.NoSquare, chess.NoSquare
	s.ClearSelection()
	s.sync()
}

// Undo retracts the last move. With an empty history nothing changes and
// false is returned.
func (s *Session) Undo() bool {
	if _, ok := s.eng.Undo(); !ok {
		return false
	}
	s.lastFrom, s.lastTo = chess.NoSquare, chess.NoSquare
	s.ClearSelection()
	s.sync()
	return true
}

// HistoryPairs returns the move history grouped into display rows.
func (s *Session) HistoryPairs() []MovePair {
	return Pairs(s.history)
}

// Highlights derives the per-square display roles from the current state.
// Recomputed on every call; never cached.
func (s *Session) Highlights() map[chess.Square]Highlight {
	hl := make(map[chess.Square]Highlight)
	if s.lastFrom != chess.NoSquare {
		hl[s.lastFrom] |= HighlightLastFrom
		hl[s.lastTo] |= HighlightLastTo
	}
	if s.selected != chess.NoSquare {
		hl[s.selected] |= HighlightSelected
	}
	for _, sq := range s.targets {
		hl[sq] |= HighlightTarget
	}
	if s.eng.InCheck() {
		king := chess.WhiteKing
		if s.eng.Turn() == chess.Black {
			king = chess.BlackKing
		}
		for sq := chess.A1; sq <= chess.H8; sq++ {
			if s.eng.PieceAt(sq) == king {
				hl[sq] |= HighlightCheck
				break
			}
		}
	}
	return hl
}

// sync re-derives every display field from the engine. Full re-derivation
// after each mutation keeps the mirrored fields from drifting; nothing is
// patched incrementally.
func (s *Session) sync() {
	s.fen = s.eng.FEN()
	s.pgn = s.eng.PGN()
	s.history = s.eng.SANHistory()
	s.status = StatusText(s.eng)
}
