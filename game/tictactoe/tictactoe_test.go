package tictactoe

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/seehuhn/mt19937"
	"github.com/stretchr/testify/require"

	"gametree/game"
	"gametree/searcher"
)

func TestNew(t *testing.T) {
	state := New()

	require.Equal(t, X, state.Player())
	require.False(t, state.Terminal())
	require.Len(t, state.LegalActions(), Size*Size)
}

func TestLegalActions(t *testing.T) {
	t.Run("walks the board row by row", func(t *testing.T) {
		actions := New().LegalActions()

		require.Equal(t, game.Action(Action{Player: X, Row: 0, Col: 0}), actions[0])
		require.Equal(t, game.Action(Action{Player: X, Row: 2, Col: 2}), actions[len(actions)-1])
	})

	t.Run("claimed cells disappear and the turn passes", func(t *testing.T) {
		actions := New().Place(1, 1).LegalActions()

		require.Len(t, actions, Size*Size-1)
		require.NotContains(t, actions, game.Action(Action{Player: O, Row: 1, Col: 1}))
		for _, action := range actions {
			require.Equal(t, O, action.(Action).Player, "Every action must be O's")
		}
	})
}

func TestPlay(t *testing.T) {
	t.Run("claiming never touches the original position", func(t *testing.T) {
		before := New()

		after := before.Place(0, 0)

		require.Zero(t, before.At(0, 0), "The original board must stay empty")
		require.Equal(t, X, after.At(0, 0))
		require.Equal(t, O, after.Player())
	})

	t.Run("rejects taken cells", func(t *testing.T) {
		state := New().Place(1, 1)

		require.Panics(t, func() {
			state.Play(Action{Player: O, Row: 1, Col: 1})
		})
	})

	t.Run("rejects claims out of turn", func(t *testing.T) {
		require.Panics(t, func() {
			New().Play(Action{Player: O, Row: 0, Col: 0})
		}, "X moves first")
	})

	t.Run("rejects cells outside the board", func(t *testing.T) {
		require.Panics(t, func() {
			New().Play(Action{Player: X, Row: Size, Col: 0})
		})
	})

	t.Run("rejects foreign actions", func(t *testing.T) {
		require.Panics(t, func() {
			New().Play(strayAction{})
		})
	})
}

type strayAction struct{}

func (strayAction) String() string { return "stray" }

func TestTerminalAndReward(t *testing.T) {
	t.Run("a complete X row scores plus one", func(t *testing.T) {
		state := New().
			Place(0, 0).Place(1, 0).
			Place(0, 1).Place(1, 1).
			Place(0, 2)

		require.True(t, state.Terminal())
		require.InDelta(t, 1.0, state.Reward(), 1e-9)
	})

	t.Run("a complete O column scores minus one", func(t *testing.T) {
		state := New().
			Place(0, 0).Place(0, 1).
			Place(2, 2).Place(1, 1).
			Place(1, 0).Place(2, 1)

		require.True(t, state.Terminal())
		require.InDelta(t, -1.0, state.Reward(), 1e-9)
	})

	t.Run("a diagonal wins too", func(t *testing.T) {
		state := New().
			Place(0, 0).Place(0, 1).
			Place(1, 1).Place(0, 2).
			Place(2, 2)

		require.True(t, state.Terminal())
		require.InDelta(t, 1.0, state.Reward(), 1e-9)
	})

	t.Run("a full board without a line is a draw", func(t *testing.T) {
		state := New().
			Place(0, 0).Place(0, 1).
			Place(0, 2).Place(1, 1).
			Place(1, 0).Place(1, 2).
			Place(2, 1).Place(2, 0).
			Place(2, 2)

		require.True(t, state.Terminal())
		require.Zero(t, state.Reward())
		require.Empty(t, state.LegalActions())
	})

	t.Run("an open position scores zero", func(t *testing.T) {
		state := New().Place(0, 0).Place(1, 1)

		require.False(t, state.Terminal())
		require.Zero(t, state.Reward())
	})
}

func TestString(t *testing.T) {
	state := New().Place(0, 0).Place(1, 1).Place(2, 2)

	expected := strings.Join([]string{
		"X..",
		".O.",
		"..X",
	}, "\n")
	require.Equal(t, expected, state.String())
}

func TestSearchFindsTheWinningClaim(t *testing.T) {
	// X holds two cells of the top row against O's two on the middle row.
	// Claiming (0,2) wins on the spot, so that child's mean reward stays at
	// exactly one for the whole search.
	state := New().
		Place(0, 0).Place(1, 0).
		Place(0, 1).Place(1, 1)

	tree := searcher.New(state,
		searcher.WithSamples(800),
		searcher.WithRand(rand.New(mt19937.New())))

	actions, _ := tree.SearchActions(context.Background(), 1)

	winning := Action{Player: X, Row: 0, Col: 2}
	require.Equal(t, []game.Action{winning}, actions, "The search must complete the top row")
	require.InDelta(t, 1.0, tree.Root().Children()[winning].Mean(), 1e-9)
}
