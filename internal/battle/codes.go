package battle

import "math/rand"

// codeAlphabet omits easily-confused characters (I, O, 0, 1).
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const (
	codePrefix = "NBA-"
	codeLength = 4
)

// newCode produces a human-shareable battle code like "NBA-K7QX". Uniqueness
// is enforced by the caller retrying against the store on collision.
func newCode() string {
	buf := make([]byte, codeLength)
	for i := range buf {
		buf[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
	}
	return codePrefix + string(buf)
}
