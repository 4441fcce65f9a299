package game

import (
	"fmt"

	"github.com/notnil/chess"

	"github.com/lewismcgrogan/LewisChessGame/pkg/engine"
)

// StatusText maps the engine's terminal and check predicates to one status
// line. The checks run in strict priority order, first match wins. On
// checkmate the winner is the side not to move: the mating move has already
// been applied, so the side to move is the loser.
func StatusText(e *engine.Engine) string {
	switch {
	case e.IsCheckmate():
		winner := chess.White
		if e.Turn() == chess.White {
			winner = chess.Black
		}
		return fmt.Sprintf("Checkmate — %s wins", winner.Name())
	case e.IsStalemate():
		return "Stalemate"
	case e.IsThreefoldRepetition():
		return "Draw — threefold repetition"
	case e.IsInsufficientMaterial():
		return "Draw — insufficient material"
	case e.IsDraw():
		return "Draw"
	case e.InCheck():
		return fmt.Sprintf("%s is in check", e.Turn().Name())
	default:
		return fmt.Sprintf("%s to move", e.Turn().Name())
	}
}
