// Package daily picks a deterministic answer for each UTC date.
//
// The pick is HMAC-SHA256(salt, "YYYY-MM-DD"), first 8 bytes big-endian,
// modulo the number of answers. The same salt and answer list give every
// player the same word for a given day.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey formats t as the UTC calendar day, e.g. "2026-10-19".
func DateKey(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}

// WordIndex returns the day's index into a list of n answers (0 when n <= 0).
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	mac := hmac.New(sha256.New, []byte(salt))
	mac.Write([]byte(DateKey(date)))
	return int(binary.BigEndian.Uint64(mac.Sum(nil)) % uint64(n))
}

// Answer returns the answer of the day, or "" when answers is empty.
func Answer(answers []string, date time.Time, salt string) string {
	if len(answers) == 0 {
		return ""
	}
	return answers[WordIndex(date, salt, len(answers))]
}
