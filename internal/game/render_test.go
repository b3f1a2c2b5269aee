package game

import (
	"reflect"
	"testing"
)

func TestRenderRow(t *testing.T) {
	tests := []struct {
		guess, answer string
		want          string
	}{
		{"apple", "crane", "(A) P P L [E]"},
		{"crane", "crane", "[C] [R] [A] [N] [E]"},
		{"jumpy", "crane", "J U M P Y"},
	}
	for _, tt := range tests {
		row := GuessRow{Guess: tt.guess, Marks: Evaluate(tt.guess, tt.answer)}
		if got := RenderRow(row); got != tt.want {
			t.Errorf("RenderRow(%s vs %s) = %q, want %q", tt.guess, tt.answer, got, tt.want)
		}
	}
}

func TestRenderBoard(t *testing.T) {
	s := newTestSession(t, "crane")
	for _, g := range []string{"apple", "slate"} {
		if _, err := s.TakeTurn(g); err != nil {
			t.Fatal(err)
		}
	}
	want := []string{"(A) P P L [E]", "S L [A] T [E]"}
	if got := s.RenderBoard(); !reflect.DeepEqual(got, want) {
		t.Errorf("RenderBoard() = %q, want %q", got, want)
	}
}
