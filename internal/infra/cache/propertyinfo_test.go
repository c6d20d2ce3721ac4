package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGate struct {
	allowed bool
	err     error
	calls   int
}

func (f *fakeGate) IsSelfServeAllowed(_ context.Context, _ string) (bool, error) {
	f.calls++
	return f.allowed, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestCache_HitSkipsGate(t *testing.T) {
	gate := &fakeGate{allowed: true}
	cache, err := NewPropertyInfoCache(gate, 8, time.Minute, nopLogger{})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		allowed, err := cache.IsSelfServeAllowed(context.Background(), "prop-1")
		require.NoError(t, err)
		assert.True(t, allowed)
	}

	assert.Equal(t, 1, gate.calls)
}

func TestCache_DistinctProperties(t *testing.T) {
	gate := &fakeGate{allowed: true}
	cache, err := NewPropertyInfoCache(gate, 8, time.Minute, nopLogger{})
	require.NoError(t, err)

	_, _ = cache.IsSelfServeAllowed(context.Background(), "prop-1")
	_, _ = cache.IsSelfServeAllowed(context.Background(), "prop-2")

	assert.Equal(t, 2, gate.calls)
}

func TestCache_ExpiredEntryRefetched(t *testing.T) {
	gate := &fakeGate{allowed: true}
	cache, err := NewPropertyInfoCache(gate, 8, time.Nanosecond, nopLogger{})
	require.NoError(t, err)

	_, _ = cache.IsSelfServeAllowed(context.Background(), "prop-1")
	time.Sleep(time.Millisecond)
	_, _ = cache.IsSelfServeAllowed(context.Background(), "prop-1")

	assert.Equal(t, 2, gate.calls)
}

// Сбой шлюза не кэшируется: следующий запрос снова идет к шлюзу
func TestCache_FailureNotCached(t *testing.T) {
	gate := &fakeGate{err: errors.New("connection refused")}
	cache, err := NewPropertyInfoCache(gate, 8, time.Minute, nopLogger{})
	require.NoError(t, err)

	_, err1 := cache.IsSelfServeAllowed(context.Background(), "prop-1")
	assert.Error(t, err1)

	gate.err = nil
	gate.allowed = true

	allowed, err2 := cache.IsSelfServeAllowed(context.Background(), "prop-1")
	require.NoError(t, err2)
	assert.True(t, allowed)
	assert.Equal(t, 2, gate.calls)
}

func TestCache_DisallowedCachedToo(t *testing.T) {
	gate := &fakeGate{allowed: false}
	cache, err := NewPropertyInfoCache(gate, 8, time.Minute, nopLogger{})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		allowed, err := cache.IsSelfServeAllowed(context.Background(), "prop-1")
		require.NoError(t, err)
		assert.False(t, allowed)
	}

	assert.Equal(t, 1, gate.calls)
}
