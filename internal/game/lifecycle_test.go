package game

import (
	"bytes"
	"go/format"
	"os"
	"testing"
)

func TestLifecycleTransitions(t *testing.T) {
	tests := []struct {
		name string
		send func(*lifecycle)
		want State
	}{
		{"win", func(l *lifecycle) { l.win(3) }, StateWon},
		{"lose", func(l *lifecycle) { l.lose(MaxTurns) }, StateLost},
		{"win is final", func(l *lifecycle) { l.win(1); l.lose(2) }, StateWon},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := newLifecycle("test")
			if err != nil {
				t.Fatalf("newLifecycle: %v", err)
			}
			if l.state() != StateInProgress || l.done() {
				t.Fatalf("initial state = %s, done = %v", l.state(), l.done())
			}
			tt.send(l)
			if l.state() != tt.want || !l.done() {
				t.Errorf("state = %s, done = %v; want %s, true", l.state(), l.done(), tt.want)
			}
		})
	}
}

func TestLifecycleSourceIsGofmtClean(t *testing.T) {
	src, err := os.ReadFile("lifecycle.go")
	if err != nil {
		t.Fatal(err)
	}
	out, err := format.Source(src)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(src, out) {
		t.Error("lifecycle.go is not gofmt-formatted")
	}
}
