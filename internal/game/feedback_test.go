package game

import (
	"reflect"
	"testing"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name   string
		guess  string
		answer string
		want   []Mark
	}{
		{
			name:   "same word is all exact",
			guess:  "crane",
			answer: "crane",
			want:   []Mark{MarkExact, MarkExact, MarkExact, MarkExact, MarkExact},
		},
		{
			name:   "apple against crane",
			guess:  "apple",
			answer: "crane",
			want:   []Mark{MarkPresent, MarkAbsent, MarkAbsent, MarkAbsent, MarkExact},
		},
		{
			name:   "duplicates are not consumed",
			guess:  "eexxx",
			answer: "level",
			want:   []Mark{MarkPresent, MarkExact, MarkAbsent, MarkAbsent, MarkAbsent},
		},
		{
			name:   "nothing in common",
			guess:  "jumpy",
			answer: "crane",
			want:   []Mark{MarkAbsent, MarkAbsent, MarkAbsent, MarkAbsent, MarkAbsent},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.guess, tt.answer)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Evaluate(%q, %q) = %v, want %v", tt.guess, tt.answer, got, tt.want)
			}
		})
	}
}

func TestEvaluateDuplicateLettersBothPresent(t *testing.T) {
	// One e in the answer, two off-position e's in the guess.
	got := Evaluate("xeexx", "abcde")
	want := []Mark{MarkAbsent, MarkPresent, MarkPresent, MarkAbsent, MarkAbsent}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestEvaluateStrict(t *testing.T) {
	tests := []struct {
		guess, answer string
		want          []Mark
	}{
		{"crane", "crane", []Mark{MarkExact, MarkExact, MarkExact, MarkExact, MarkExact}},
		{"apple", "crane", []Mark{MarkPresent, MarkAbsent, MarkAbsent, MarkAbsent, MarkExact}},
		// answer has a single e left after the exact match; the second e is absent.
		{"xeexx", "abcde", []Mark{MarkAbsent, MarkPresent, MarkAbsent, MarkAbsent, MarkAbsent}},
		{"eexxx", "level", []Mark{MarkPresent, MarkExact, MarkAbsent, MarkAbsent, MarkAbsent}},
		{"speed", "abide", []Mark{MarkAbsent, MarkAbsent, MarkPresent, MarkAbsent, MarkPresent}},
	}
	for _, tt := range tests {
		t.Run(tt.guess+"/"+tt.answer, func(t *testing.T) {
			got := EvaluateStrict(tt.guess, tt.answer)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("EvaluateStrict(%q, %q) = %v, want %v", tt.guess, tt.answer, got, tt.want)
			}
		})
	}
}
