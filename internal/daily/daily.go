// internal/daily/daily.go
//
// Deterministic word choice for "word of the day" play.
// The index for a date is HMAC-SHA256(salt, YYYY-MM-DD) modulo the list
// length, so everyone sharing a salt gets the same word per tier per day.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % n.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// Picker implements game.Picker with the day's index.
type Picker struct {
	Salt string
	Date time.Time
}

// NewPicker returns a Picker for today.
func NewPicker(salt string) Picker {
	return Picker{Salt: salt, Date: time.Now()}
}

func (p Picker) Intn(n int) int { return WordIndex(p.Date, p.Salt, n) }
