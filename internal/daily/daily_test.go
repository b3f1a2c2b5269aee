package daily

import (
	"testing"
	"time"
)

func TestDateKeyUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	ts := time.Date(2026, 3, 2, 5, 0, 0, 0, loc) // 2026-03-01 19:00 UTC
	if got := DateKey(ts); got != "2026-03-01" {
		t.Errorf("DateKey() = %q, want 2026-03-01", got)
	}
}

func TestWordIndexDeterministic(t *testing.T) {
	day := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
	later := time.Date(2026, 10, 19, 23, 59, 0, 0, time.UTC)

	a := WordIndex(day, "salt", 100)
	if b := WordIndex(later, "salt", 100); a != b {
		t.Errorf("same date gave %d and %d", a, b)
	}
	if a < 0 || a >= 100 {
		t.Errorf("index %d out of range", a)
	}
	if WordIndex(day, "salt", 0) != 0 {
		t.Error("empty list should give index 0")
	}
}

func TestWordIndexVariesWithSaltAndDate(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	seen := map[int]bool{}
	for i := 0; i < 30; i++ {
		seen[WordIndex(base.AddDate(0, 0, i), "salt", 1000)] = true
	}
	if len(seen) < 10 {
		t.Errorf("only %d distinct indexes over 30 days", len(seen))
	}
}

func TestAnswer(t *testing.T) {
	answers := []string{"crane", "apple", "slate"}
	day := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	got := Answer(answers, day, "salt")
	if got != answers[WordIndex(day, "salt", len(answers))] {
		t.Errorf("Answer() = %q", got)
	}
	if Answer(nil, day, "salt") != "" {
		t.Error("Answer(nil) should be empty")
	}
}

func TestAnswerKnownDays(t *testing.T) {
	answers := []string{"crane", "apple", "level", "slate", "pious", "jumpy", "brick"}
	tests := []struct {
		day  string
		salt string
		want string
	}{
		{"2026-10-19", "salt", "apple"},
		{"2026-10-20", "salt", "level"},
		{"2026-10-21", "salt", "slate"},
		{"2026-01-01", "local_dev_salt", "apple"},
	}
	for _, tt := range tests {
		day, err := time.Parse(time.DateOnly, tt.day)
		if err != nil {
			t.Fatal(err)
		}
		if got := Answer(answers, day.Add(15*time.Hour), tt.salt); got != tt.want {
			t.Errorf("Answer(%s, %q) = %q, want %q", tt.day, tt.salt, got, tt.want)
		}
	}
}

func TestWordIndexKnownValues(t *testing.T) {
	day := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	if got := WordIndex(day, "salt", 2309); got != 1959 {
		t.Errorf("WordIndex = %d, want 1959", got)
	}
	if got := WordIndex(day.AddDate(0, 0, 1), "salt", 1000); got != 535 {
		t.Errorf("WordIndex = %d, want 535", got)
	}
}
