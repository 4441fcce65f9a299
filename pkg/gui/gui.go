// Package gui is the terminal front end: the board widget, the status and
// move-history views, and the tview application wiring them to a game
// session.
package gui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
	"github.com/notnil/chess"
	"github.com/rivo/tview"

	"github.com/lewismcgrogan/LewisChessGame/pkg/game"
)

const moveBoxRows = 10

// GUI owns the tview application and keeps every view in sync with the
// session. All session mutations happen inside tview event handlers, on the
// event goroutine; the clock ticker only queues redraws.
type GUI struct {
	App     *tview.Application
	session *game.Session

	board  *Board
	status *tview.TextView
	clock  *Clock
	clockV *tview.TextView
	moves  *tview.Table

	quit chan struct{}
}

// New builds the full UI around an existing session.
func New(session *game.Session, theme Theme) *GUI {
	g := &GUI{
		App:     tview.NewApplication(),
		session: session,
		clock:   NewClock(),
		quit:    make(chan struct{}),
	}

	g.board = NewBoard(theme).
		SetClickFunc(func(sq chess.Square) {
			g.session.HandleClick(sq)
			g.refresh()
		}).
		SetDragBeginFunc(func(sq chess.Square) {
			g.session.HandleDragBegin(sq)
			g.refresh()
		}).
		SetDropFunc(func(from, to chess.Square) bool {
			ok := g.session.HandleDrop(from, to)
			g.refresh()
			return ok
		})

	g.status = tview.NewTextView()
	g.status.SetTextColor(theme.Status)

	g.clockV = tview.NewTextView()
	g.clockV.SetTextColor(theme.Clock)

	title := tview.NewTextView()
	title.SetTextColor(theme.Label)
	title.SetText(fmt.Sprintf("chessgame · %s", session.Name()))

	g.moves = tview.NewTable()
	g.moves.SetBorder(true)
	g.moves.SetTitle(" Moves ")

	newBtn := tview.NewButton("New Game").SetSelectedFunc(g.newGame)
	undoBtn := tview.NewButton("Undo").SetSelectedFunc(g.undo)
	pgnBtn := tview.NewButton("Copy PGN").SetSelectedFunc(func() {
		copyText(g.session.PGN())
	})
	fenBtn := tview.NewButton("Copy FEN").SetSelectedFunc(func() {
		copyText(g.session.FEN())
	})

	buttons := tview.NewGrid().
		SetColumns(12, 12, 12, 12).
		SetRows(1).
		AddItem(newBtn, 0, 0, 1, 1, 0, 0, false).
		AddItem(undoBtn, 0, 1, 1, 1, 0, 0, false).
		AddItem(pgnBtn, 0, 2, 1, 1, 0, 0, false).
		AddItem(fenBtn, 0, 3, 1, 1, 0, 0, false)

	left := tview.NewGrid().
		SetRows(1, 1, BoardHeight, 1, 1, 1).
		SetColumns(BoardWidth).
		AddItem(title, 0, 0, 1, 1, 0, 0, false).
		AddItem(g.status, 1, 0, 1, 1, 0, 0, false).
		AddItem(g.board, 2, 0, 1, 1, 0, 0, true).
		AddItem(g.clockV, 4, 0, 1, 1, 0, 0, false)

	layout := tview.NewGrid().
		SetRows(-1, BoardHeight+6, -1).
		SetColumns(-1, BoardWidth+2, 25, -1).
		AddItem(left, 1, 1, 1, 1, 0, 0, true).
		AddItem(g.moves, 1, 2, 1, 1, 0, 0, false).
		AddItem(buttons, 2, 1, 1, 2, 0, 0, false)

	g.App.SetRoot(layout, true).EnableMouse(true)
	g.App.SetInputCapture(g.handleKey)

	g.refresh()
	return g
}

func (g *GUI) handleKey(event *tcell.EventKey) *tcell.EventKey {
	if event.Key() == tcell.KeyEscape || event.Key() == tcell.KeyCtrlC {
		g.Stop()
		return nil
	}
	switch event.Rune() {
	case 'n':
		g.newGame()
	case 'u':
		g.undo()
	case 'p':
		copyText(g.session.PGN())
	case 'f':
		copyText(g.session.FEN())
	case 'q':
		g.Stop()
	default:
		return event
	}
	return nil
}

func (g *GUI) newGame() {
	g.session.NewGame()
	g.clock.Reset()
	g.refresh()
}

func (g *GUI) undo() {
	g.session.Undo()
	g.refresh()
}

// refresh pushes the session's derived fields into every view. The session
// re-syncs them atomically on each mutation, so a single refresh can never
// show a fresh position next to a stale status.
func (g *GUI) refresh() {
	// the FEN comes straight from the engine, it cannot fail to parse
	_ = g.board.SetPositionFEN(g.session.FEN())
	g.board.SetHighlights(g.session.Highlights())
	g.status.SetText(g.session.Status())
	g.clockV.SetText(g.clock.String())

	g.moves.Clear()
	pairs := g.session.HistoryPairs()
	for i, pair := range pairs {
		g.moves.SetCell(i, 0, tview.NewTableCell(fmt.Sprintf("%d.", pair.Number)))
		g.moves.SetCell(i, 1, tview.NewTableCell(fmt.Sprintf("%-7s", pair.White)))
		g.moves.SetCell(i, 2, tview.NewTableCell(fmt.Sprintf("%-7s", pair.Black)))
	}
	if len(pairs) > moveBoxRows {
		g.moves.SetOffset(len(pairs)-moveBoxRows, 0)
	}
}

// Run starts the clock ticker and blocks in the tview event loop.
func (g *GUI) Run() error {
	go func() {
		tick := time.NewTicker(time.Second)
		defer tick.Stop()
		for {
			select {
			case <-tick.C:
				g.App.QueueUpdateDraw(func() {
					g.clockV.SetText(g.clock.String())
				})
			case <-g.quit:
				return
			}
		}
	}()
	return g.App.Run()
}

// Stop tears the UI down.
func (g *GUI) Stop() {
	close(g.quit)
	g.App.Stop()
}

// copyText is a best-effort asynchronous clipboard write. Failure changes
// nothing visible and is not surfaced.
func copyText(text string) {
	go func() {
		_ = clipboard.WriteAll(text)
	}()
}
