package lesson

import "strings"

// GameKind identifies the mini-game a strategy drives. Strategies that
// are not game-backed (hot chair, cooperative learning, question banks)
// carry KindNone and only get the report and flashcard views.
type GameKind string

const (
	KindNone        GameKind = "none"
	KindTicTacToe   GameKind = "tictactoe"
	KindConnectFour GameKind = "connect4"
	KindMemory      GameKind = "memory"
	KindBalloon     GameKind = "balloon"
)

// kindMarkers maps name substrings (Arabic and English, as the model
// emits them) to game kinds. Checked in order; first match wins.
var kindMarkers = []struct {
	marker string
	kind   GameKind
}{
	{"أربعة", KindConnectFour},
	{"Four", KindConnectFour},
	{"الذاكرة", KindMemory},
	{"Memory", KindMemory},
	{"البالون", KindBalloon},
	{"Balloon", KindBalloon},
	{"إكس", KindTicTacToe},
	{"X", KindTicTacToe},
}

// DetectGameKind derives the game kind from a generated strategy name.
// It runs exactly once, when the strategy is created; everything
// downstream dispatches on the resulting tag instead of re-matching
// strings.
func DetectGameKind(name string) GameKind {
	for _, m := range kindMarkers {
		if strings.Contains(name, m.marker) {
			return m.kind
		}
	}
	return KindNone
}
