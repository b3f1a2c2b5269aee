package game

import "strings"

// Evaluator computes per-letter marks for a guess against an answer.
// Both inputs are normalized and of equal length.
type Evaluator func(guess, answer string) []Mark

// Evaluate marks each guess letter by position and simple membership:
// a letter that is not an exact match is Present whenever it occurs anywhere
// in the answer. Occurrences are not consumed, so answer "level" against
// guess "eexxx" yields Present for both e's.
func Evaluate(guess, answer string) []Mark {
	res := make([]Mark, len(guess))
	for i := 0; i < len(guess); i++ {
		switch {
		case guess[i] == answer[i]:
			res[i] = MarkExact
		case strings.IndexByte(answer, guess[i]) >= 0:
			res[i] = MarkPresent
		default:
			res[i] = MarkAbsent
		}
	}
	return res
}

// EvaluateStrict implements the standard two-pass Wordle scoring.
//
// Pass 1:
//   - Mark exact matches.
//   - Count remaining (non-exact) answer letters.
//
// Pass 2:
//   - For each non-exact guess letter: if there is remaining count for that
//     letter, mark Present and decrement the count; otherwise mark Absent.
func EvaluateStrict(guess, answer string) []Mark {
	n := len(guess)
	res := make([]Mark, n)

	var counts [256]int
	for i := 0; i < n; i++ {
		if guess[i] == answer[i] {
			res[i] = MarkExact
		} else {
			counts[answer[i]]++
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == MarkExact {
			continue
		}
		if c := guess[i]; counts[c] > 0 {
			res[i] = MarkPresent
			counts[c]--
		} else {
			res[i] = MarkAbsent
		}
	}
	return res
}
