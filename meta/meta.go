// meta/meta.go
package meta

// BOARD_SIZE is the number of columns and rows of the square board.
const BOARD_SIZE = 7

// MAX_LIFE_POINTS is the starting and maximum life points of a player.
const MAX_LIFE_POINTS = 8000

// MAX_BOARD_COUNT is the number of non-king units a player may have on the board.
const MAX_BOARD_COUNT = 5

// MAX_DECK_SIZE is the nominal deck capacity shown by the state command.
const MAX_DECK_SIZE = 40

// HAND_LIMIT is the hand size at which yielding requires a discard.
const HAND_LIMIT = 5

// INITIAL_HAND_SIZE is the number of cards each player draws before the first turn.
const INITIAL_HAND_SIZE = 4

// KING_NAME is the name every king unit carries.
const KING_NAME = "Farmer King"

// MAX_TURNS caps self-play games that would otherwise stall.
const MAX_TURNS = 300
