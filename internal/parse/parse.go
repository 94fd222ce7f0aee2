package parse

import "github.com/lox/pokerequity/internal/deck"

// Inputs parses a full solve request: the board string and one descriptor
// per player. It enforces the player-count and deck-capacity invariants and
// the cross-player duplicate-card check that only makes sense once every
// descriptor has been parsed.
func Inputs(playerDescriptors []string, boardStr string) ([]deck.Card, []PlayerInput, error) {
	if len(playerDescriptors) < 2 {
		return nil, nil, errHand("need at least 2 players, got %d", len(playerDescriptors))
	}

	board, err := Board(boardStr)
	if err != nil {
		return nil, nil, err
	}

	if 2*len(playerDescriptors)+len(board) > deck.Size {
		return nil, nil, errHand("2*%d players + %d board cards exceeds the 52-card deck", len(playerDescriptors), len(board))
	}

	inputs := make([]PlayerInput, len(playerDescriptors))
	for i, descriptor := range playerDescriptors {
		input, err := Player(descriptor, board)
		if err != nil {
			return nil, nil, err
		}
		inputs[i] = input
	}

	known := make(map[deck.Card]bool, len(board))
	for _, c := range board {
		known[c] = true
	}
	for _, in := range inputs {
		var cards []deck.Card
		switch in.Kind {
		case Exact:
			cards = []deck.Card{in.C1, in.C2}
		case Partial:
			cards = []deck.Card{in.C1}
		}
		for _, c := range cards {
			if known[c] {
				return nil, nil, errHand("duplicate known card %v across players and board", c)
			}
			known[c] = true
		}
	}

	return board, inputs, nil
}
