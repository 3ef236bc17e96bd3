package lesson

import "testing"

func TestDetectGameKind(t *testing.T) {
	tests := []struct {
		name string
		want GameKind
	}{
		{"لعبة إكس أو التعليمية", KindTicTacToe},
		{"Tic Tac Toe X Challenge", KindTicTacToe},
		{"توصيل أربعة", KindConnectFour},
		{"Connect Four Quiz", KindConnectFour},
		{"تحدي الذاكرة", KindMemory},
		{"Memory Match", KindMemory},
		{"قذف البالون", KindBalloon},
		{"Balloon Toss", KindBalloon},
		{"الكرسي الساخن", KindNone},
		{"بنك الأسئلة", KindNone},
		{"", KindNone},
	}

	for _, tt := range tests {
		if got := DetectGameKind(tt.name); got != tt.want {
			t.Errorf("DetectGameKind(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

// Connect-four markers are checked before the X marker so a name that
// mentions both resolves to connect-four.
func TestDetectGameKindMarkerPrecedence(t *testing.T) {
	if got := DetectGameKind("توصيل أربعة X"); got != KindConnectFour {
		t.Errorf("kind = %q, want %q", got, KindConnectFour)
	}
}
