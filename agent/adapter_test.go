package agent

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type gameState struct {
	Board string
	Turn  int
}

func boardOf(s gameState) (string, error) {
	return s.Board, nil
}

func TestAdapt_NilArguments(t *testing.T) {
	t.Run("nil inner agent", func(t *testing.T) {
		_, err := Adapt[gameState, string, int](nil, boardOf)
		require.ErrorIs(t, err, ErrNilAgent)
	})

	t.Run("nil conversion", func(t *testing.T) {
		inner := NewFixed[string, int](7)
		_, err := Adapt[gameState, string, int](inner, nil)
		require.ErrorIs(t, err, ErrNilConversion)
	})
}

func TestAdapter_ActMatchesDirectCall(t *testing.T) {
	// For all states s, adapter.Act(s) must equal inner.Act(convert(s)).
	convert := func(s gameState) (int, error) {
		return len(s.Board), nil
	}

	direct := &countingAgent{}
	wrapped := &countingAgent{}

	adapted, err := Adapt(wrapped, convert)
	require.NoError(t, err)

	for _, s := range []gameState{
		{Board: ""},
		{Board: "xo"},
		{Board: "xoxoxoxo", Turn: 4},
	} {
		obs, err := convert(s)
		require.NoError(t, err)

		want, err := direct.Act(obs)
		require.NoError(t, err)

		got, err := adapted.Act(s)
		require.NoError(t, err)
		assert.Equal(t, want, got, "state %+v", s)
	}
}

func TestAdapter_RecordConvertsBothStates(t *testing.T) {
	var converted []string
	convert := func(s gameState) (string, error) {
		converted = append(converted, s.Board)
		return s.Board, nil
	}

	inner := &recordingAgent{}
	adapted, err := Adapt(inner, convert)
	require.NoError(t, err)

	err = adapted.Record(gameState{Board: "before"}, 3, 1.5, gameState{Board: "after"})
	require.NoError(t, err)

	// One conversion call per argument, state then next.
	assert.Equal(t, []string{"before", "after"}, converted)
	require.Len(t, inner.transitions, 1)
	assert.Equal(t, transition{state: "before", action: 3, reward: 1.5, next: "after"}, inner.transitions[0])
}

func TestAdapter_DelegatesModeAndReset(t *testing.T) {
	inner := &countingAgent{}
	adapted, err := Adapt(inner, func(s gameState) (int, error) { return s.Turn, nil })
	require.NoError(t, err)

	// Mode reflects the inner agent in both directions.
	adapted.TrainingMode()
	assert.Equal(t, Training, inner.Mode())
	assert.Equal(t, Training, adapted.Mode())

	inner.TestMode()
	assert.Equal(t, Test, adapted.Mode())

	adapted.Reset()
	assert.Equal(t, 1, inner.resets)
}

func TestAdapter_ConversionFailurePropagates(t *testing.T) {
	convErr := errors.New("board not parseable")
	convert := func(s gameState) (int, error) {
		if s.Board == "bad" {
			return 0, convErr
		}
		return s.Turn, nil
	}

	inner := &countingAgent{}
	adapted, err := Adapt(inner, convert)
	require.NoError(t, err)

	t.Run("act", func(t *testing.T) {
		_, err := adapted.Act(gameState{Board: "bad"})
		assert.Same(t, convErr, err, "failure must propagate unmodified")
		assert.Zero(t, inner.acts, "inner agent must not be reached")
	})

	t.Run("record failing state", func(t *testing.T) {
		err := adapted.Record(gameState{Board: "bad"}, 0, 0, gameState{})
		assert.Same(t, convErr, err)
		assert.Zero(t, inner.records)
	})

	t.Run("record failing next state", func(t *testing.T) {
		err := adapted.Record(gameState{}, 0, 0, gameState{Board: "bad"})
		assert.Same(t, convErr, err)
		assert.Zero(t, inner.records)
	})
}

func TestAdapter_Chaining(t *testing.T) {
	// string -> int -> bool, two adapters deep.
	inner, err := NewFunc(func(even bool) (string, error) {
		if even {
			return "even", nil
		}
		return "odd", nil
	})
	require.NoError(t, err)

	mid, err := Adapt(inner, func(n int) (bool, error) {
		return n%2 == 0, nil
	})
	require.NoError(t, err)

	outer, err := Adapt[string](mid, strconv.Atoi)
	require.NoError(t, err)

	got, err := outer.Act("12")
	require.NoError(t, err)
	assert.Equal(t, "even", got)

	got, err = outer.Act("7")
	require.NoError(t, err)
	assert.Equal(t, "odd", got)

	_, err = outer.Act("not a number")
	assert.Error(t, err, "parse failure must propagate through both adapters")

	outer.TrainingMode()
	assert.Equal(t, Training, inner.Mode())
}

// recordingAgent captures transitions verbatim for inspection.
type transition struct {
	state  string
	action int
	reward float64
	next   string
}

type recordingAgent struct {
	Base

	transitions []transition
}

func (r *recordingAgent) Act(obs string) (int, error) {
	return len(obs), nil
}

func (r *recordingAgent) Record(state string, action int, reward float64, next string) error {
	r.transitions = append(r.transitions, transition{state, action, reward, next})
	return nil
}

func (r *recordingAgent) Reset() {
	r.transitions = nil
}
