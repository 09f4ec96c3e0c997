// Package anonid generates the opaque applicant identifiers that link the
// anonymized and contact views of a record.
package anonid

import (
	"crypto/rand"
	"encoding/binary"
	"strconv"
	"strings"
	"time"
)

// Crockford-style alphabet, no I/L/O/U, so tokens survive being read aloud.
const alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

const randomChars = 8 // 8 chars * 5 bits = 40 bits of entropy

// Generate returns a fresh applicant identifier of the form
// APP-<millis base36>-<random base32>, uppercase. The identifier carries no
// information derived from the applicant. Uniqueness is not guaranteed here;
// the store's unique index is authoritative and callers retry on collision.
func Generate() string {
	var b strings.Builder
	b.WriteString("APP-")
	b.WriteString(strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36)))
	b.WriteByte('-')
	b.WriteString(randomToken(randomChars))
	return b.String()
}

// Normalize maps caller-supplied identifiers to the canonical uppercase form
// used by the store.
func Normalize(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

func randomToken(n int) string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	v := binary.BigEndian.Uint64(buf)

	out := make([]byte, n)
	for i := range out {
		out[i] = alphabet[v&31]
		v >>= 5
	}
	return string(out)
}
