package framework

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunnerWaitAggregatesErrors(t *testing.T) {
	errA := errors.New("a failed")
	errB := errors.New("b failed")
	err := NewRunner().Go(
		RunFunc(func(context.Context) error { return errA }),
		NamedRun("b", RunFunc(func(context.Context) error { return errB })),
		RunFunc(func(context.Context) error { return nil }),
		RunFunc(func(context.Context) error { return context.Canceled }),
	).Wait()
	require.Error(t, err)
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
	var agg *AggregatedError
	require.ErrorAs(t, err, &agg)
	assert.Len(t, agg.Errors, 2)
}

func TestRunnerStopOnExit(t *testing.T) {
	r := NewRunner().StopOnExit()
	r.Go(
		RunFunc(func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		}),
		RunFunc(func(context.Context) error { return nil }),
	)
	done := make(chan error, 1)
	go func() { done <- r.Wait() }()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("runner did not stop")
	}
}

func TestNamedRun(t *testing.T) {
	r := NamedRun("ui", RunFunc(func(context.Context) error { return nil }))
	named, ok := r.(Named)
	require.True(t, ok)
	assert.Equal(t, "ui", named.Name())
}

func TestRunWithContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	stop := make(chan struct{})
	cancelled := false
	go cancel()
	err := RunWithContextCancel(ctx, func() {
		cancelled = true
		close(stop)
	}, func() error {
		<-stop
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, cancelled)

	err = RunWithContextCancel(context.Background(), nil, func() error { return errors.New("done") })
	assert.EqualError(t, err, "done")
}

func TestAggregatedError(t *testing.T) {
	var errs AggregatedError
	assert.NoError(t, errs.Add(nil).Aggregate())
	errs.Add(errors.New("one"))
	assert.EqualError(t, errs.Aggregate(), "one")
	errs.Add(errors.New("two"))
	assert.EqualError(t, errs.Aggregate(), "Multiple errors:\none\ntwo")
}
