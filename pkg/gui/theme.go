package gui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Terminal safe color palette is available here
// Themes should be limited to the colors defined in this reference
// https://upload.wikimedia.org/wikipedia/commons/1/15/Xterm_256color_chart.svg

// Theme is used for dynamically coloring the UI
type Theme struct {
	Name           string      `json:"name"`
	SquareDark     tcell.Color `json:"squareDark"`
	SquareLight    tcell.Color `json:"squareLight"`
	SquareSelected tcell.Color `json:"squareSelected"`
	SquareTarget   tcell.Color `json:"squareTarget"`
	SquareLastFrom tcell.Color `json:"squareLastFrom"`
	SquareLastTo   tcell.Color `json:"squareLastTo"`
	SquareCheck    tcell.Color `json:"squareCheck"`
	White          tcell.Color `json:"white"`
	Black          tcell.Color `json:"black"`
	Rank           tcell.Color `json:"rank"`
	File           tcell.Color `json:"file"`
	Status         tcell.Color `json:"status"`
	Label          tcell.Color `json:"label"`
	MoveBox        tcell.Color `json:"moveBox"`
	Clock          tcell.Color `json:"clock"`
}

// ThemeHex is the JSON hex form of Theme
type ThemeHex struct {
	Name           string `json:"name"`
	SquareDark     string `json:"squareDark"`
	SquareLight    string `json:"squareLight"`
	SquareSelected string `json:"squareSelected"`
	SquareTarget   string `json:"squareTarget"`
	SquareLastFrom string `json:"squareLastFrom"`
	SquareLastTo   string `json:"squareLastTo"`
	SquareCheck    string `json:"squareCheck"`
	White          string `json:"white"`
	Black          string `json:"black"`
	Rank           string `json:"rank"`
	File           string `json:"file"`
	Status         string `json:"status"`
	Label          string `json:"label"`
	MoveBox        string `json:"moveBox"`
	Clock          string `json:"clock"`
}

// fmtHex returns a one character hex for the ColorDefault
// and otherwise it returns a standard hex. This is useful
// because it allows ColorDefault to be imported from the config
// and parsed properly rather than being interpreted as black
func fmtHex(v int32) string {
	if v == -1 {
		return "#0"
	}
	return fmt.Sprintf("#%06x", v)
}

// Hex converts a Theme to a ThemeHex
func (t Theme) Hex() ThemeHex {
	return ThemeHex{
		t.Name,
		fmtHex(t.SquareDark.Hex()),
		fmtHex(t.SquareLight.Hex()),
		fmtHex(t.SquareSelected.Hex()),
		fmtHex(t.SquareTarget.Hex()),
		fmtHex(t.SquareLastFrom.Hex()),
		fmtHex(t.SquareLastTo.Hex()),
		fmtHex(t.SquareCheck.Hex()),
		fmtHex(t.White.Hex()),
		fmtHex(t.Black.Hex()),
		fmtHex(t.Rank.Hex()),
		fmtHex(t.File.Hex()),
		fmtHex(t.Status.Hex()),
		fmtHex(t.Label.Hex()),
		fmtHex(t.MoveBox.Hex()),
		fmtHex(t.Clock.Hex()),
	}
}

// Theme converts a ThemeHex to a Theme
func (t ThemeHex) Theme() Theme {
	return Theme{
		t.Name,
		tcell.GetColor(t.SquareDark),
		tcell.GetColor(t.SquareLight),
		tcell.GetColor(t.SquareSelected),
		tcell.GetColor(t.SquareTarget),
		tcell.GetColor(t.SquareLastFrom),
		tcell.GetColor(t.SquareLastTo),
		tcell.GetColor(t.SquareCheck),
		tcell.GetColor(t.White),
		tcell.GetColor(t.Black),
		tcell.GetColor(t.Rank),
		tcell.GetColor(t.File),
		tcell.GetColor(t.Status),
		tcell.GetColor(t.Label),
		tcell.GetColor(t.MoveBox),
		tcell.GetColor(t.Clock),
	}
}

// ImportThemes returns a converted Theme from a slice of ThemeHex
// entities if its name matches the want argument
func ImportThemes(want string, themes []ThemeHex) (Theme, error) {
	for _, t := range themes {
		if t.Name == want {
			return t.Theme(), nil
		}
	}
	return Theme{}, errors.New("theme: no theme found")
}

// ThemeBasic is the default theme
var ThemeBasic = Theme{
	"basic",            // Name
	tcell.Color188,     // SquareDark
	tcell.Color230,     // SquareLight
	tcell.Color117,     // SquareSelected
	tcell.Color151,     // SquareTarget
	tcell.Color228,     // SquareLastFrom
	tcell.Color226,     // SquareLastTo
	tcell.Color218,     // SquareCheck
	tcell.Color232,     // White
	tcell.Color232,     // Black
	tcell.Color247,     // Rank
	tcell.Color247,     // File
	tcell.Color160,     // Status
	tcell.Color247,     // Label
	tcell.ColorDefault, // MoveBox
	tcell.Color247,     // Clock
}
