package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryGatewayBasicOperations(t *testing.T) {
	gateway := NewMemoryGateway()
	ctx := context.Background()

	_, ok, err := gateway.Get(ctx, "k")
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, gateway.Set(ctx, "k", "first"))
	assert.NoError(t, gateway.Set(ctx, "k", "second"))

	value, ok, err := gateway.Get(ctx, "k")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "second", value)
}

func TestMemoryGatewayFailWrites(t *testing.T) {
	gateway := NewMemoryGateway()
	ctx := context.Background()

	assert.NoError(t, gateway.Set(ctx, "k", "kept"))

	boom := errors.New("boom")
	gateway.FailWrites(boom)

	err := gateway.Set(ctx, "k", "lost")
	assert.ErrorIs(t, err, boom)

	value, ok, _ := gateway.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, "kept", value, "a failed write leaves the old value in place")

	gateway.FailWrites(nil)
	assert.NoError(t, gateway.Set(ctx, "k", "recovered"))
	value, _, _ = gateway.Get(ctx, "k")
	assert.Equal(t, "recovered", value)
}
