package game

import "strings"

// Token renders a single letter by its mark:
// Exact → "[A]", Present → "(A)", Absent → "A".
func Token(letter byte, m Mark) string {
	l := strings.ToUpper(string(letter))
	switch m {
	case MarkExact:
		return "[" + l + "]"
	case MarkPresent:
		return "(" + l + ")"
	default:
		return l
	}
}

// RenderRow joins the tokens of a row with single spaces,
// e.g. "apple" against "crane" renders as "(A) P P L [E]".
func RenderRow(r GuessRow) string {
	parts := make([]string, len(r.Marks))
	for i, m := range r.Marks {
		parts[i] = Token(r.Guess[i], m)
	}
	return strings.Join(parts, " ")
}
