package dispatch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogDispatcher(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	dispatcher := NewLogDispatcher(zap.New(core).Sugar())

	err := dispatcher.Dispatch(context.Background(), "Jane: 010-1234-5678")
	assert.Nil(t, err)

	count, last := dispatcher.Sent()
	assert.Equal(t, 1, count)
	assert.Equal(t, "Jane: 010-1234-5678", last)

	entries := logs.FilterMessage("Emergency alert dispatched").All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "Jane: 010-1234-5678", entries[0].ContextMap()["summary"])
	}
}

func TestLogDispatcherWithCancelledContext(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	dispatcher := NewLogDispatcher(zap.New(core).Sugar())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := dispatcher.Dispatch(ctx, "Jane: 010-1234-5678")
	assert.ErrorIs(t, err, context.Canceled)

	count, _ := dispatcher.Sent()
	assert.Equal(t, 0, count)
	assert.Equal(t, 0, logs.Len())
}
