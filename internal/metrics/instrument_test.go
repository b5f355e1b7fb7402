package metrics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-obs-kit/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSinkLogger returns a logger whose only output is the given collector.
func newSinkLogger(c *Collector) *logger.Logger {
	l := logger.NewLoggerWithSink("instrument-test", c)
	l.Logger = l.Output(c)
	return l
}

func TestInstrument_EmitsOnSuccess(t *testing.T) {
	c := NewCollector(0)
	l := newSinkLogger(c)

	called := false
	op := Instrument(l, "op_time", func(ctx context.Context) error {
		called = true
		time.Sleep(time.Millisecond)
		return nil
	})

	require.NoError(t, op(context.Background()))
	assert.True(t, called)

	samples := c.Snapshot()["op_time"]
	require.Len(t, samples, 1)
	assert.Greater(t, samples[0].Value, float64(0), "recorded value is elapsed seconds")
}

func TestInstrument_EmitsOnFailureAndPropagatesError(t *testing.T) {
	c := NewCollector(0)
	l := newSinkLogger(c)

	wantErr := errors.New("boom")
	op := Instrument(l, "op_time", func(ctx context.Context) error {
		return wantErr
	})

	err := op(context.Background())
	assert.ErrorIs(t, err, wantErr, "failure must propagate unaltered")

	require.Len(t, c.Snapshot()["op_time"], 1, "sample is emitted on failure too")
}

func TestInstrument_EmitsOnPanic(t *testing.T) {
	c := NewCollector(0)
	l := newSinkLogger(c)

	op := Instrument(l, "op_time", func(ctx context.Context) error {
		panic("boom")
	})

	assert.Panics(t, func() { _ = op(context.Background()) })
	require.Len(t, c.Snapshot()["op_time"], 1, "sample is emitted before the panic propagates")
}

func TestInstrument_EachCallRecordsOneSample(t *testing.T) {
	c := NewCollector(0)
	l := newSinkLogger(c)

	op := Instrument(l, "op_time", func(ctx context.Context) error { return nil })
	for i := 0; i < 5; i++ {
		require.NoError(t, op(context.Background()))
	}

	assert.Len(t, c.Snapshot()["op_time"], 5)
}

func TestInstrument_ContextIsPassedThrough(t *testing.T) {
	c := NewCollector(0)
	l := newSinkLogger(c)

	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "marker")

	op := Instrument(l, "op_time", func(inner context.Context) error {
		assert.Equal(t, "marker", inner.Value(ctxKey{}))
		return nil
	})

	require.NoError(t, op(ctx))
}
