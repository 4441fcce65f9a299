package game

// MovePair is one display row of the move table: a full-move number and the
// white and black half-moves. Black is empty on an unfinished final row.
type MovePair struct {
	Number int
	White  string
	Black  string
}

// Pairs chunks a linear move list into (white, black) rows two at a time.
// Row i holds half-moves 2i and 2i+1. No reordering, no filtering.
func Pairs(sans []string) []MovePair {
	pairs := make([]MovePair, 0, (len(sans)+1)/2)
	for i := 0; i < len(sans); i += 2 {
		pair := MovePair{Number: i/2 + 1, White: sans[i]}
		if i+1 < len(sans) {
			pair.Black = sans[i+1]
		}
		pairs = append(pairs, pair)
	}
	return pairs
}
