package hugoup

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTask = errors.New("task failed")

func TestHarness_Execute(t *testing.T) {
	var order []string
	record := func(name string, err error) Task {
		return func(_ context.Context) error {
			order = append(order, name)
			return err
		}
	}

	h := New(
		WithPreExecFunc(record("pre", nil)),
		WithPostExecFunc(record("post", nil)),
	)

	err := h.Execute(context.Background(), record("first", nil), record("second", nil))
	require.NoError(t, err)
	assert.Equal(t, []string{"pre", "first", "second", "post"}, order)
}

func TestHarness_ExecuteJoinsErrors(t *testing.T) {
	other := errors.New("other failure")
	ran := 0

	err := New().Execute(context.Background(),
		func(_ context.Context) error { ran++; return errTask },
		func(_ context.Context) error { ran++; return other },
	)

	assert.ErrorIs(t, err, errTask)
	assert.ErrorIs(t, err, other)
	assert.Equal(t, 2, ran)
}

func TestHarness_StopOnError(t *testing.T) {
	ran := 0

	err := New(WithStopOnError()).Execute(context.Background(),
		func(_ context.Context) error { ran++; return errTask },
		func(_ context.Context) error { ran++; return nil },
	)

	assert.ErrorIs(t, err, errTask)
	assert.Equal(t, 1, ran)
}

func TestHarness_PreExecHookFailure(t *testing.T) {
	ran := false

	err := New(WithPreExecFunc(func(_ context.Context) error { return errTask })).
		Execute(context.Background(), func(_ context.Context) error { ran = true; return nil })

	assert.ErrorIs(t, err, errTask)
	assert.False(t, ran)
}
