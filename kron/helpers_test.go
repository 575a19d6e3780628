// SPDX-License-Identifier: MIT
package kron_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/ttkron/matrix"
	"github.com/katalvlaran/ttkron/tt"
	"github.com/stretchr/testify/require"
)

const (
	rtol = 1e-9
	atol = 1e-10
)

func dense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

func train(t testing.TB, factors ...matrix.Matrix) *tt.TensorTrain {
	t.Helper()
	tr, err := tt.FromKronecker(factors...)
	require.NoError(t, err)

	return tr
}

func full(t testing.TB, tr *tt.TensorTrain) *matrix.Dense {
	t.Helper()
	f, err := tr.Full()
	require.NoError(t, err)

	return f
}

func factor(t testing.TB, tr *tt.TensorTrain, i int) *matrix.Dense {
	t.Helper()
	c, err := tr.Core(i)
	require.NoError(t, err)
	s, err := c.Slice(0, 0)
	require.NoError(t, err)

	return s
}

func requireClose(t testing.TB, want, got matrix.Matrix) {
	t.Helper()
	ok, err := matrix.AllClose(want, got, rtol, atol)
	require.NoError(t, err)
	require.True(t, ok, "want\n%v\ngot\n%v", want, got)
}

// spdFrom returns B·Bᵀ + n·I for the n×n matrix B filled row-major from vals.
func spdFrom(t testing.TB, n int, vals []float64) *matrix.Dense {
	t.Helper()
	b, err := matrix.NewDenseFrom(n, n, vals)
	require.NoError(t, err)
	bt, err := matrix.Transpose(b)
	require.NoError(t, err)
	s, err := matrix.Mul(b, bt)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		v, err := s.At(i, i)
		require.NoError(t, err)
		require.NoError(t, s.Set(i, i, v+float64(n)))
	}

	return s
}

func randSPD(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, n*n)
	for i := range vals {
		vals[i] = rng.Float64()*2 - 1
	}

	return spdFrom(t, n, vals)
}

// rank2 is a valid TT matrix that is not a Kronecker product.
func rank2(t testing.TB) *tt.TensorTrain {
	t.Helper()
	g0, err := tt.NewCore(1, 2, 2, 2, make([]float64, 8))
	require.NoError(t, err)
	g1, err := tt.NewCore(2, 2, 2, 1, make([]float64, 8))
	require.NoError(t, err)
	tr, err := tt.New([]*tt.Core{g0, g1}, tt.Shape{Rows: []int{2, 2}, Cols: []int{2, 2}}, []int{1, 2, 1})
	require.NoError(t, err)

	return tr
}

func vector(t testing.TB) *tt.TensorTrain {
	t.Helper()
	g, err := tt.NewCore(1, 3, 1, 1, []float64{1, 2, 3})
	require.NoError(t, err)
	tr, err := tt.New([]*tt.Core{g}, tt.Shape{Rows: []int{3}}, []int{1, 1})
	require.NoError(t, err)

	return tr
}
