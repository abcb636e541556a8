package scope

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingResource records the order of lifecycle calls.
type recordingResource struct {
	calls    []string
	enterErr error
}

func (r *recordingResource) Enter() error {
	r.calls = append(r.calls, "enter")

	return r.enterErr
}

func (r *recordingResource) Exit() {
	r.calls = append(r.calls, "exit")
}

// recordingContextResource records lifecycle calls of the context variant.
type recordingContextResource struct {
	calls    []string
	enterErr error
	exitErr  error
}

func (r *recordingContextResource) Enter(_ context.Context) error {
	r.calls = append(r.calls, "enter")

	return r.enterErr
}

func (r *recordingContextResource) Exit(_ context.Context) error {
	r.calls = append(r.calls, "exit")

	return r.exitErr
}

// TestWith tests the With function's ordering and error propagation.
func TestWith(t *testing.T) {
	t.Parallel()

	res := &recordingResource{}

	err := With(res, func(r *recordingResource) error {
		r.calls = append(r.calls, "body")

		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"enter", "body", "exit"}, res.calls)
}

// TestWithEnterFailure tests that the body never runs when Enter fails.
func TestWithEnterFailure(t *testing.T) {
	t.Parallel()

	enterErr := errors.New("busy")
	res := &recordingResource{enterErr: enterErr}

	err := With(res, func(r *recordingResource) error {
		r.calls = append(r.calls, "body")

		return nil
	})

	require.ErrorIs(t, err, enterErr)
	assert.Equal(t, []string{"enter"}, res.calls)
}

// TestWithBodyError tests that body errors are returned after Exit runs.
func TestWithBodyError(t *testing.T) {
	t.Parallel()

	bodyErr := errors.New("boom")
	res := &recordingResource{}

	err := With(res, func(*recordingResource) error {
		return bodyErr
	})

	require.ErrorIs(t, err, bodyErr)
	assert.Equal(t, []string{"enter", "exit"}, res.calls)
}

// TestWithPanicStillExits tests that Exit runs when the body panics.
func TestWithPanicStillExits(t *testing.T) {
	t.Parallel()

	res := &recordingResource{}

	assert.Panics(t, func() {
		_ = With(res, func(*recordingResource) error {
			panic("kaboom")
		})
	})

	assert.Equal(t, []string{"enter", "exit"}, res.calls)
}

// TestWithContext tests the context variant's ordering and error joining.
func TestWithContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		t.Parallel()

		res := &recordingContextResource{}

		err := WithContext(ctx, res, func(_ context.Context, r *recordingContextResource) error {
			r.calls = append(r.calls, "body")

			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"enter", "body", "exit"}, res.calls)
	})

	t.Run("joins body and exit errors", func(t *testing.T) {
		t.Parallel()

		bodyErr := errors.New("body failed")
		exitErr := errors.New("teardown failed")
		res := &recordingContextResource{exitErr: exitErr}

		err := WithContext(ctx, res, func(context.Context, *recordingContextResource) error {
			return bodyErr
		})

		require.ErrorIs(t, err, bodyErr)
		require.ErrorIs(t, err, exitErr)
	})

	t.Run("enter failure skips body and exit", func(t *testing.T) {
		t.Parallel()

		enterErr := errors.New("no capacity")
		res := &recordingContextResource{enterErr: enterErr}

		err := WithContext(ctx, res, func(context.Context, *recordingContextResource) error {
			t.Fatal("body must not run")

			return nil
		})

		require.ErrorIs(t, err, enterErr)
		assert.Equal(t, []string{"enter"}, res.calls)
	})
}
