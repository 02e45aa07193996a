package montecarlo_test

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/aev3/algos-percolation/montecarlo"
	"github.com/aev3/algos-percolation/percolation"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Trial Tests
//----------------------------------------------------------------------------//

// TestTrial_Percolates runs a seeded trial and checks the invariants of a
// finished run: the grid percolated and the open fraction is a sane
// probability strictly above zero.
func TestTrial_Percolates(t *testing.T) {
	res, err := montecarlo.Trial(20, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	require.Equal(t, 20, res.N)
	require.True(t, res.Percolated)
	require.Greater(t, res.Opened, 0)
	require.LessOrEqual(t, res.Opened, 20*20)
	require.Greater(t, res.Threshold, 0.0)
	require.LessOrEqual(t, res.Threshold, 1.0)
	require.InDelta(t, float64(res.Opened)/400.0, res.Threshold, 1e-12)
}

// TestTrial_Deterministic checks that equal seeds reproduce the exact same
// trial outcome.
func TestTrial_Deterministic(t *testing.T) {
	a, err := montecarlo.Trial(15, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	b, err := montecarlo.Trial(15, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	require.Equal(t, a.Opened, b.Opened)
	require.Equal(t, a.Threshold, b.Threshold)
}

// TestTrial_SingleSite covers n=1: the first open percolates, so exactly
// one site opens and the threshold is 1.
func TestTrial_SingleSite(t *testing.T) {
	res, err := montecarlo.Trial(1, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Equal(t, 1, res.Opened)
	require.Equal(t, 1.0, res.Threshold)
	require.True(t, res.Percolated)
}

// TestTrial_Errors verifies nil-rng rejection and dimension propagation.
func TestTrial_Errors(t *testing.T) {
	if _, err := montecarlo.Trial(5, nil); !errors.Is(err, montecarlo.ErrNilRand) {
		t.Errorf("Trial(5, nil) error = %v; want ErrNilRand", err)
	}
	if _, err := montecarlo.Trial(0, rand.New(rand.NewSource(1))); !errors.Is(err, percolation.ErrInvalidDimension) {
		t.Errorf("Trial(0, rng) error = %v; want ErrInvalidDimension", err)
	}
}

//----------------------------------------------------------------------------//
// Replay Tests
//----------------------------------------------------------------------------//

// TestReplay_Scenario feeds the classic left-column stream and checks the
// resulting grid and snapshot.
func TestReplay_Scenario(t *testing.T) {
	const stream = `3
1 1
2 1
3 1
`
	grid, res, err := montecarlo.Replay(strings.NewReader(stream))
	require.NoError(t, err)

	require.Equal(t, 3, res.N)
	require.Equal(t, 3, res.Opened)
	require.True(t, res.Percolated)
	require.InDelta(t, 3.0/9.0, res.Threshold, 1e-12)

	// The returned grid stays queryable.
	full, err := grid.IsFull(3, 1)
	require.NoError(t, err)
	require.True(t, full)
	open, err := grid.IsOpen(2, 2)
	require.NoError(t, err)
	require.False(t, open)
}

// TestReplay_DuplicateSites checks that repeated pairs do not inflate the
// open count.
func TestReplay_DuplicateSites(t *testing.T) {
	_, res, err := montecarlo.Replay(strings.NewReader("2 1 1 1 1 1 1"))
	require.NoError(t, err)
	require.Equal(t, 1, res.Opened)
	require.False(t, res.Percolated)
}

// TestReplay_Errors tables the malformed-stream and propagation cases.
func TestReplay_Errors(t *testing.T) {
	cases := []struct {
		name   string
		stream string
		err    error
	}{
		{"Empty", "", montecarlo.ErrBadInput},
		{"NonIntegerDimension", "three", montecarlo.ErrBadInput},
		{"NonIntegerCoordinate", "3 1 x", montecarlo.ErrBadInput},
		{"DanglingRow", "3 1 1 2", montecarlo.ErrBadInput},
		{"BadDimension", "0 1 1", percolation.ErrInvalidDimension},
		{"CoordinateOverflow", "2 3 1", percolation.ErrCoordinateRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := montecarlo.Replay(strings.NewReader(tc.stream))
			if !errors.Is(err, tc.err) {
				t.Errorf("Replay(%q) error = %v; want %v", tc.stream, err, tc.err)
			}
		})
	}
}
