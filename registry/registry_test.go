package registry

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyrl/agentkit"
	"github.com/polyrl/agentkit/agent"
)

func fixedFactory(choice int) Factory[string, int] {
	return func() (agent.Agent[string, int], error) {
		return agent.NewFixed[string, int](choice), nil
	}
}

func TestRegistry_RegisterAndBuild(t *testing.T) {
	r := New[string, int]()

	require.NoError(t, r.Register("always-seven", fixedFactory(7)))

	built, err := r.Build("always-seven")
	require.NoError(t, err)

	got, err := built.Act("anything")
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

func TestRegistry_BuildReturnsFreshInstances(t *testing.T) {
	r := New[string, int]()

	require.NoError(t, r.Register("rotor", func() (agent.Agent[string, int], error) {
		return agent.NewCycle[string, int]([]int{1, 2, 3})
	}))

	first, err := r.Build("rotor")
	require.NoError(t, err)
	second, err := r.Build("rotor")
	require.NoError(t, err)

	// Advancing one instance must not move the other.
	got, err := first.Act("")
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	got, err = second.Act("")
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestRegistry_RegisterValidation(t *testing.T) {
	r := New[string, int]()

	tests := []struct {
		name    string
		key     string
		factory Factory[string, int]
		wantErr error
	}{
		{
			name:    "empty name",
			key:     "",
			factory: fixedFactory(1),
			wantErr: ErrEmptyName,
		},
		{
			name:    "nil factory",
			key:     "nil-factory",
			factory: nil,
			wantErr: ErrNilFactory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := r.Register(tt.key, tt.factory)
			require.ErrorIs(t, err, tt.wantErr)

			var structured *agentkit.Error
			require.True(t, errors.As(err, &structured))
			assert.Equal(t, agentkit.KindValidation, structured.Kind)
		})
	}
}

func TestRegistry_DuplicateRegistration(t *testing.T) {
	r := New[string, int]()

	require.NoError(t, r.Register("dup", fixedFactory(1)))

	err := r.Register("dup", fixedFactory(2))
	require.ErrorIs(t, err, ErrAlreadyRegistered)

	// The original registration survives.
	built, err := r.Build("dup")
	require.NoError(t, err)
	got, err := built.Act("")
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestRegistry_BuildUnknownName(t *testing.T) {
	r := New[string, int]()

	_, err := r.Build("missing")
	require.ErrorIs(t, err, ErrNotRegistered)

	var structured *agentkit.Error
	require.True(t, errors.As(err, &structured))
	assert.Equal(t, agentkit.KindNotFound, structured.Kind)
	assert.Equal(t, "missing", structured.Context["name"])
}

func TestRegistry_NamesSorted(t *testing.T) {
	r := New[string, int]()

	for _, name := range []string{"zulu", "alpha", "mike"} {
		require.NoError(t, r.Register(name, fixedFactory(0)))
	}

	assert.Equal(t, []string{"alpha", "mike", "zulu"}, r.Names())
	assert.Equal(t, 3, r.Len())
}

func TestRegistry_Clear(t *testing.T) {
	r := New[string, int]()

	require.NoError(t, r.Register("gone", fixedFactory(0)))
	r.Clear()

	assert.Zero(t, r.Len())
	_, err := r.Build("gone")
	require.ErrorIs(t, err, ErrNotRegistered)
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := New[string, int]()
	require.NoError(t, r.Register("shared", fixedFactory(5)))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if _, err := r.Build("shared"); err != nil {
					t.Error(err)
					return
				}
				r.Names()
			}
		}()
	}
	wg.Wait()
}
