package battle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCode(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := newCode()
		assert.Len(t, code, 8)
		assert.True(t, strings.HasPrefix(code, "NBA-"))
		for _, r := range code[4:] {
			assert.Contains(t, codeAlphabet, string(r), "code %q", code)
		}
		// The alphabet drops lookalike characters.
		assert.NotContains(t, code[4:], "O")
		assert.NotContains(t, code[4:], "0")
		assert.NotContains(t, code[4:], "I")
		assert.NotContains(t, code[4:], "1")
	}
}
