package redis

import (
	"fmt"

	"github.com/mcoot/puzzlebox/internal/model"
)

// Key prefix for all puzzlebox data
const keyPrefix = "puzzlebox"

func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

func registeredPlayerKey(playerID model.PlayerID) string {
	return fmt.Sprintf("%s:registered_player:%s", keyPrefix, playerID)
}

// usernameIndexKey maps a username to its player ID
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, username)
}

func minefieldKey(id model.MinefieldID) string {
	return fmt.Sprintf("%s:minefield:%s", keyPrefix, id)
}

func puzzleRecordKey(playerID model.PlayerID, index int) string {
	return fmt.Sprintf("%s:puzzle:%s:%d", keyPrefix, playerID, index)
}

func currentPuzzleKey(playerID model.PlayerID) string {
	return fmt.Sprintf("%s:puzzle_current:%s", keyPrefix, playerID)
}

func ticTacToeKey(id model.TicTacToeID) string {
	return fmt.Sprintf("%s:tictactoe:%s", keyPrefix, id)
}

// phrasesKey holds the catalog as one JSON array; order is the puzzle index
func phrasesKey() string {
	return fmt.Sprintf("%s:phrases", keyPrefix)
}
