package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"codebreaker/internal/game"
)

func TestRenderHint(t *testing.T) {
	cases := []struct {
		name string
		hint game.Hint
		want string
	}{
		{"no matches", game.Hint{}, ""},
		{"exact only", game.Hint{Exact: 3}, "+++"},
		{"partial only", game.Hint{Partial: 2}, "--"},
		{"exact before partial", game.Hint{Exact: 2, Partial: 1}, "++-"},
		{"full board", game.Hint{Exact: 1, Partial: 3}, "+---"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, renderHint(tc.hint, false))
		})
	}
}

func TestStyledPlainWhenColorOff(t *testing.T) {
	assert.Equal(t, "hello", styled(bannerStyle, "hello", false))
}
