package gui

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/notnil/chess"
	"github.com/rivo/tview"

	"github.com/lewismcgrogan/LewisChessGame/pkg/game"
)

const (
	numOfSquaresInRow = 8
	squareWidth       = 2 // terminal cells per square, two to look square

	// BoardWidth and BoardHeight are the fixed dimensions of the widget in
	// terminal cells, rank and file labels included.
	BoardWidth  = squareWidth*numOfSquaresInRow + 2
	BoardHeight = numOfSquaresInRow + 1
)

// targetMarker overlays legal destinations without replacing the square's
// background or piece.
const targetMarker = '·'

// Board is a tview primitive that draws a chess position and reports square
// interaction. It renders whatever position it was last given; it holds no
// game state of its own.
type Board struct {
	*tview.Box

	pos        *chess.Position
	highlights map[chess.Square]game.Highlight
	glyphs     map[chess.Piece]rune
	theme      Theme

	pressed chess.Square

	onClick     func(sq chess.Square)
	onDragBegin func(sq chess.Square)
	onDrop      func(from, to chess.Square) bool
}

// NewBoard returns a board at the standard initial position.
func NewBoard(theme Theme) *Board {
	return &Board{
		Box:     tview.NewBox(),
		pos:     chess.NewGame().Position(),
		glyphs:  DefaultGlyphs(),
		theme:   theme,
		pressed: chess.NoSquare,
	}
}

// DefaultGlyphs maps the twelve piece codes to the unicode chess symbols.
func DefaultGlyphs() map[chess.Piece]rune {
	glyphs := make(map[chess.Piece]rune, 12)
	for _, p := range []chess.Piece{
		chess.WhiteKing, chess.WhiteQueen, chess.WhiteRook,
		chess.WhiteBishop, chess.WhiteKnight, chess.WhitePawn,
		chess.BlackKing, chess.BlackQueen, chess.BlackRook,
		chess.BlackBishop, chess.BlackKnight, chess.BlackPawn,
	} {
		r, _ := utf8.DecodeRuneInString(p.String())
		glyphs[p] = r
	}
	return glyphs
}

// SetGlyphs overrides the glyph of individual pieces. Pieces missing from
// the map keep their current glyph.
func (b *Board) SetGlyphs(glyphs map[chess.Piece]rune) *Board {
	for p, r := range glyphs {
		b.glyphs[p] = r
	}
	return b
}

// SetPositionFEN replaces the rendered position.
func (b *Board) SetPositionFEN(fen string) error {
	opt, err := chess.FEN(fen)
	if err != nil {
		return err
	}
	b.pos = chess.NewGame(opt).Position()
	return nil
}

// SetHighlights replaces the per-square style overrides.
func (b *Board) SetHighlights(hl map[chess.Square]game.Highlight) *Board {
	b.highlights = hl
	return b
}

// SetClickFunc sets the callback invoked with the clicked square.
func (b *Board) SetClickFunc(f func(sq chess.Square)) *Board {
	b.onClick = f
	return b
}

// SetDragBeginFunc sets the callback invoked with the drag-origin square.
func (b *Board) SetDragBeginFunc(f func(sq chess.Square)) *Board {
	b.onDragBegin = f
	return b
}

// SetDropFunc sets the callback invoked with (source, target) on drop.
func (b *Board) SetDropFunc(f func(from, to chess.Square) bool) *Board {
	b.onDrop = f
	return b
}

// squareBg composes the square's background: the checker base first, then
// the last-move tints, then selection, then check. Later roles win because
// they carry more information.
func (b *Board) squareBg(sq chess.Square) tcell.Color {
	bg := b.theme.SquareLight
	if (int(sq.File())+int(sq.Rank()))%2 == 0 {
		bg = b.theme.SquareDark
	}
	hl := b.highlights[sq]
	if hl&game.HighlightLastFrom != 0 {
		bg = b.theme.SquareLastFrom
	}
	if hl&game.HighlightLastTo != 0 {
		bg = b.theme.SquareLastTo
	}
	if hl&game.HighlightSelected != 0 {
		bg = b.theme.SquareSelected
	}
	if hl&game.HighlightCheck != 0 {
		bg = b.theme.SquareCheck
	}
	return bg
}

// drawSquare draws one square: the piece glyph in the first cell and, when
// the square is a legal target, the overlay marker in the second.
func (b *Board) drawSquare(screen tcell.Screen, x, y int, sq chess.Square) {
	bg := b.squareBg(sq)
	blank := tcell.StyleDefault.Background(bg)

	p := b.pos.Board().Piece(sq)
	if p == chess.NoPiece {
		screen.SetContent(x, y, ' ', nil, blank)
	} else {
		fg := b.theme.White
		if p.Color() == chess.Black {
			fg = b.theme.Black
		}
		screen.SetContent(x, y, b.glyphs[p], nil, blank.Foreground(fg))
	}

	if b.highlights[sq]&game.HighlightTarget != 0 {
		screen.SetContent(x+1, y, targetMarker, nil, blank.Foreground(b.theme.SquareTarget))
	} else {
		screen.SetContent(x+1, y, ' ', nil, blank)
	}
}

// Draw renders the board, white side down, with rank and file labels.
func (b *Board) Draw(screen tcell.Screen) {
	b.Box.Draw(screen)
	x0, y0, _, _ := b.GetInnerRect()

	rankStyle := tcell.StyleDefault.Foreground(b.theme.Rank)
	var r chess.Rank
	for r = 7; r >= 0; r-- {
		y := y0 + 7 - int(r)
		rank, _ := utf8.DecodeRuneInString(r.String())
		screen.SetContent(x0, y, rank, nil, rankStyle)
		for f := 0; f < numOfSquaresInRow; f++ {
			sq := chess.Square(int(r)*8 + f)
			b.drawSquare(screen, x0+2+f*squareWidth, y, sq)
		}
	}

	fileStyle := tcell.StyleDefault.Foreground(b.theme.File)
	files := "a b c d e f g h"
	x := x0 + 2
	for _, c := range files {
		screen.SetContent(x, y0+8, c, nil, fileStyle)
		x++
	}
}

// squareAt maps screen coordinates to a square, chess.NoSquare when the
// coordinates fall outside the 8x8 grid.
func (b *Board) squareAt(x, y int) chess.Square {
	x0, y0, _, _ := b.GetInnerRect()
	rx, ry := x-x0-2, y-y0
	if rx < 0 || rx >= numOfSquaresInRow*squareWidth || ry < 0 || ry >= numOfSquaresInRow {
		return chess.NoSquare
	}
	f := rx / squareWidth
	r := 7 - ry
	return chess.Square(r*8 + f)
}

// MouseHandler implements click and press-drag-release interaction. A press
// reports a drag begin; releasing on the same square is a click, releasing
// elsewhere is a drop.
func (b *Board) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return b.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (bool, tview.Primitive) {
		x, y := event.Position()
		if !b.InRect(x, y) {
			return false, nil
		}

		switch action {
		case tview.MouseLeftDown:
			sq := b.squareAt(x, y)
			if sq == chess.NoSquare {
				return true, nil
			}
			b.pressed = sq
			if b.onDragBegin != nil {
				b.onDragBegin(sq)
			}
			setFocus(b)
			return true, b

		case tview.MouseLeftUp:
			sq := b.squareAt(x, y)
			pressed := b.pressed
			b.pressed = chess.NoSquare
			if pressed == chess.NoSquare || sq == chess.NoSquare {
				return true, nil
			}
			if sq == pressed {
				if b.onClick != nil {
					b.onClick(sq)
				}
			} else if b.onDrop != nil {
				b.onDrop(pressed, sq)
			}
			return true, nil
		}
		return true, nil
	})
}
