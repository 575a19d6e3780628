// SPDX-License-Identifier: MIT
package kron_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/ttkron/kron"
	"github.com/katalvlaran/ttkron/matrix"
	"github.com/katalvlaran/ttkron/tt"
	"github.com/stretchr/testify/require"
)

func TestIsKronecker(t *testing.T) {
	a := dense(t, [][]float64{{1, 2}, {3, 4}})
	rect := dense(t, [][]float64{{1, 2, 3}})

	require.False(t, kron.IsKronecker(nil))
	require.False(t, kron.IsKronecker(vector(t)))
	require.False(t, kron.IsKronecker(rank2(t)))
	require.True(t, kron.IsKronecker(train(t, a)))
	require.True(t, kron.IsKronecker(train(t, a, a, a)))
	// Squareness is a separate precondition.
	require.True(t, kron.IsKronecker(train(t, a, rect)))
}

// operations lists every public operation behind the shared precondition gate.
var operations = map[string]func(*tt.TensorTrain, ...kron.Option) error{
	"Determinant": func(t *tt.TensorTrain, o ...kron.Option) error {
		_, err := kron.Determinant(t, o...)
		return err
	},
	"LogDeterminant": func(t *tt.TensorTrain, o ...kron.Option) error {
		_, err := kron.LogDeterminant(t, o...)
		return err
	},
	"Inverse": func(t *tt.TensorTrain, o ...kron.Option) error {
		_, err := kron.Inverse(t, o...)
		return err
	},
	"Cholesky": func(t *tt.TensorTrain, o ...kron.Option) error {
		_, err := kron.Cholesky(t, o...)
		return err
	},
}

func TestStructuralFailures(t *testing.T) {
	sq := dense(t, [][]float64{{2, 0}, {0, 3}})
	rect := dense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	inputs := []struct {
		name  string
		train *tt.TensorTrain
		cause error
	}{
		{"nil", nil, kron.ErrNilTrain},
		{"vector", vector(t), kron.ErrNotKronecker},
		{"rank 2", rank2(t), kron.ErrNotKronecker},
		{"non-square last", train(t, sq, rect), kron.ErrNonSquareCore},
		{"non-square only", train(t, rect), kron.ErrNonSquareCore},
	}
	for opName, op := range operations {
		for _, in := range inputs {
			t.Run(opName+"/"+in.name, func(t *testing.T) {
				err := op(in.train)
				require.ErrorIs(t, err, kron.ErrStructure)
				require.ErrorIs(t, err, in.cause)
				require.Contains(t, err.Error(), opName)

				var ce *kron.CoreError
				require.False(t, errors.As(err, &ce), "structural errors carry no core")
			})
		}
	}
}

func TestStructuralCheckedBeforeNumeric(t *testing.T) {
	// Core 0 would fail every numeric primitive; core 1 is not square.
	singular := dense(t, [][]float64{{1, 1}, {1, 1}})
	rect := dense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	tr := train(t, singular, rect)

	for name, op := range operations {
		t.Run(name, func(t *testing.T) {
			err := op(tr, kron.WithParallel(2))
			require.ErrorIs(t, err, kron.ErrNonSquareCore)
			require.NotErrorIs(t, err, matrix.ErrSingular)
			require.NotErrorIs(t, err, matrix.ErrNotPositiveDefinite)
			require.NotErrorIs(t, err, kron.ErrNonPositiveDeterminant)
		})
	}
}

func TestOptions_Panic(t *testing.T) {
	require.Panics(t, func() { kron.WithParallel(0) })
	require.Panics(t, func() { kron.WithParallel(-3) })
	require.Panics(t, func() { kron.WithSymmetryTolerance(-1) })
	require.NotPanics(t, func() { kron.WithSymmetryTolerance(0) })
	require.NotPanics(t, func() { kron.WithParallel(1) })
}

func TestCoreError(t *testing.T) {
	err := &kron.CoreError{Op: "Inverse", Core: 2, Err: matrix.ErrSingular}
	require.Equal(t, "Inverse: core 2: "+matrix.ErrSingular.Error(), err.Error())
	require.ErrorIs(t, err, matrix.ErrSingular)
}
