// internal/code/code.go
//
// Secret code generation for the game engine.
//
// Responsibilities:
//   - Define Code, the ordered digit sequence shared by secrets and guesses.
//   - Draw random secrets under the configured length and digit range.
//
// Randomness comes from crypto/rand; each digit is an independent uniform
// draw over the closed range, so repeated digits are possible and expected.

package code

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"codebreaker/internal/config"
)

// Code is an ordered sequence of digits. A generated secret and a parsed
// guess are both Codes of the configured length.
type Code []int

// Generate draws a random Code of the given length with every digit in
// [lo, hi]. Returns an error wrapping config.ErrInvalidConfiguration for a
// non-positive length or an empty range; valid inputs cannot fail.
func Generate(length, lo, hi int) (Code, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: code length must be positive, got %d", config.ErrInvalidConfiguration, length)
	}
	if lo > hi {
		return nil, fmt.Errorf("%w: digit range [%d,%d] is empty", config.ErrInvalidConfiguration, lo, hi)
	}
	span := big.NewInt(int64(hi - lo + 1))
	c := make(Code, length)
	for i := range c {
		nBig, err := rand.Int(rand.Reader, span)
		if err != nil {
			return nil, fmt.Errorf("code: reading entropy: %w", err)
		}
		c[i] = lo + int(nBig.Int64())
	}
	return c, nil
}

// Equal reports whether two codes match element-wise.
func (c Code) Equal(other Code) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if c[i] != other[i] {
			return false
		}
	}
	return true
}

// String renders the digits concatenated, e.g. Code{1,2,3,4} → "1234".
// Used when revealing the secret after a lost round.
func (c Code) String() string {
	var b strings.Builder
	for _, d := range c {
		b.WriteString(strconv.Itoa(d))
	}
	return b.String()
}
