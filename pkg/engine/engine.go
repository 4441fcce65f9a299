// Package engine wraps the external chess rules engine behind the small
// surface the UI needs. All legality, terminal-state detection, and notation
// generation is delegated to github.com/notnil/chess; nothing in this package
// implements chess rules.
package engine

import (
	"strings"

	"github.com/notnil/chess"
)

// Engine owns a single mutable game. It is not safe for concurrent use; the
// UI guarantees a single owner on a single goroutine.
type Engine struct {
	game      *chess.Game
	start     string // root FEN, empty for the standard start
	rootCheck bool   // side to move in the root position is in check
	tags      map[string]string
}

// New returns an engine at the standard initial position.
func New() *Engine {
	return &Engine{
		game: chess.NewGame(),
		tags: make(map[string]string),
	}
}

// FromFEN returns an engine at the position described by fen.
func FromFEN(fen string) (*Engine, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, err
	}
	game := chess.NewGame(opt)
	return &Engine{
		game:      game,
		start:     fen,
		rootCheck: positionInCheck(game.Position()),
		tags:      make(map[string]string),
	}, nil
}

// positionInCheck reports whether the side to move in pos is in check. The
// library exports no positional check predicate, so the turn is handed to
// the opponent and the position is checked for a reply landing on the king:
// such a reply exists exactly when the king is attacked.
func positionInCheck(pos *chess.Position) bool {
	king := chess.WhiteKing
	if pos.Turn() == chess.Black {
		king = chess.BlackKing
	}
	kingSq := chess.NoSquare
	for sq := chess.A1; sq <= chess.H8; sq++ {
		if pos.Board().Piece(sq) == king {
			kingSq = sq
			break
		}
	}
	if kingSq == chess.NoSquare {
		return false
	}

	fields := strings.Fields(pos.String())
	if len(fields) < 4 {
		return false
	}
	if fields[1] == "w" {
		fields[1] = "b"
	} else {
		fields[1] = "w"
	}
	// the en passant square belongs to the side that just lost the turn
	fields[3] = "-"
	opt, err := chess.FEN(strings.Join(fields, " "))
	if err != nil {
		return false
	}
	for _, m := range chess.NewGame(opt).ValidMoves() {
		if m.S2() == kingSq {
			return true
		}
	}
	return false
}

// rootGame returns a fresh game at the engine's root position.
func (e *Engine) rootGame() (*chess.Game, error) {
	if e.start == "" {
		return chess.NewGame(), nil
	}
	opt, err := chess.FEN(e.start)
	if err != nil {
		return nil, err
	}
	return chess.NewGame(opt), nil
}

// SetTag records a PGN tag pair, surviving undo rebuilds.
func (e *Engine) SetTag(key, value string) {
	e.tags[key] = value
	e.game.AddTagPair(key, value)
}

// FEN returns the current position in Forsyth-Edwards notation.
func (e *Engine) FEN() string {
	return e.game.Position().String()
}

// PGN returns the game's movetext, tag pairs included when set.
func (e *Engine) PGN() string {
	return strings.TrimSpace(e.game.String())
}

// Turn returns the side to move.
func (e *Engine) Turn() chess.Color {
	return e.game.Position().Turn()
}

// PieceAt returns the piece on sq, chess.NoPiece when empty.
func (e *Engine) PieceAt(sq chess.Square) chess.Piece {
	return e.game.Position().Board().Piece(sq)
}

// MovesFrom returns the destination squares of every legal move whose origin
// is sq. The four promotion choices collapse to one destination entry.
func (e *Engine) MovesFrom(sq chess.Square) []chess.Square {
	var dsts []chess.Square
	seen := make(map[chess.Square]bool)
	for _, m := range e.game.ValidMoves() {
		if m.S1() != sq || seen[m.S2()] {
			continue
		}
		seen[m.S2()] = true
		dsts = append(dsts, m.S2())
	}
	return dsts
}

// Move applies the move from->to if the engine deems it legal; promo must be
// chess.NoPieceType for non-promoting moves. Returns the applied move, or
// (nil, false) when the move is illegal. An illegal move leaves the game
// untouched.
func (e *Engine) Move(from, to chess.Square, promo chess.PieceType) (*chess.Move, bool) {
	for _, m := range e.game.ValidMoves() {
		if m.S1() != from || m.S2() != to || m.Promo() != promo {
			continue
		}
		if err := e.game.Move(m); err != nil {
			return nil, false
		}
		return m, true
	}
	return nil, false
}

// Undo retracts the last applied move. The underlying library has no
// takeback, so the game is rebuilt by replaying the remaining prefix.
// Returns (nil, false) when the history is empty, leaving the game untouched.
func (e *Engine) Undo() (*chess.Move, bool) {
	moves := e.game.Moves()
	if len(moves) == 0 {
		return nil, false
	}
	undone := moves[len(moves)-1]
	game, err := e.rootGame()
	if err != nil {
		return nil, false
	}
	for _, m := range moves[:len(moves)-1] {
		if err := game.Move(m); err != nil {
			return nil, false
		}
	}
	for k, v := range e.tags {
		game.AddTagPair(k, v)
	}
	e.game = game
	return undone, true
}

// Moves returns the applied moves in order.
func (e *Engine) Moves() []*chess.Move {
	return e.game.Moves()
}

// SANHistory returns the algebraic notation of every applied move, in order.
func (e *Engine) SANHistory() []string {
	moves := e.game.Moves()
	positions := e.game.Positions()
	sans := make([]string, 0, len(moves))
	for i, m := range moves {
		sans = append(sans, chess.AlgebraicNotation{}.Encode(positions[i], m))
	}
	return sans
}

// InCheck reports whether the side to move is in check. Past the root any
// check was produced by the last applied move, so its move tag is
// authoritative; at the root the answer was computed when the position was
// loaded, since a FEN may describe a check with no move behind it.
func (e *Engine) InCheck() bool {
	moves := e.game.Moves()
	if len(moves) == 0 {
		return e.rootCheck
	}
	return moves[len(moves)-1].HasTag(chess.Check)
}

// IsCheckmate reports whether the side to move is checkmated.
func (e *Engine) IsCheckmate() bool {
	return e.game.Position().Status() == chess.Checkmate
}

// IsStalemate reports whether the side to move is stalemated.
func (e *Engine) IsStalemate() bool {
	return e.game.Position().Status() == chess.Stalemate
}

// IsThreefoldRepetition reports whether the current position has occurred at
// least three times. The game does not auto-terminate on it; this mirrors the
// claimable-draw rule.
func (e *Engine) IsThreefoldRepetition() bool {
	for _, method := range e.game.EligibleDraws() {
		if method == chess.ThreefoldRepetition {
			return true
		}
	}
	return false
}

// IsInsufficientMaterial reports whether the game ended for lack of mating
// material.
func (e *Engine) IsInsufficientMaterial() bool {
	return e.game.Method() == chess.InsufficientMaterial
}

// IsDraw reports whether the game has concluded drawn, by any method.
func (e *Engine) IsDraw() bool {
	return e.game.Outcome() == chess.Draw
}

// GameOver reports whether the game has concluded.
func (e *Engine) GameOver() bool {
	return e.game.Outcome() != chess.NoOutcome
}
