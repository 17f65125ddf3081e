package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/stdscope/internal/model"
)

type stubRewriter struct {
	strategy m.Strategy
	suffix   string
}

func (s stubRewriter) Strategy() m.Strategy { return s.strategy }

func (s stubRewriter) Rewrite(text string) (m.Rewrite, error) {
	return m.Rewrite{Text: text + s.suffix}, nil
}

func TestDefaultRewriters(t *testing.T) {
	registry := NewRegistry(DefaultRewriters()...)

	for _, strategy := range []m.Strategy{m.StrategyAggressive, m.StrategyCleanup, m.StrategyIntroduce} {
		rw, err := registry.Lookup(strategy)
		require.NoError(t, err)
		assert.Equal(t, strategy, rw.Strategy())
	}
}

func TestRegistry_LaterEntriesWin(t *testing.T) {
	registry := NewRegistry(
		stubRewriter{strategy: "x", suffix: "1"},
		stubRewriter{strategy: "x", suffix: "2"},
	)

	rw, err := registry.Lookup("x")
	require.NoError(t, err)

	out, err := rw.Rewrite("a")
	require.NoError(t, err)
	assert.Equal(t, "a2", out.Text)
}

func TestRegistry_Unknown(t *testing.T) {
	_, err := NewRegistry().Lookup("missing")
	assert.EqualError(t, err, "unsupported strategy: missing")
}
