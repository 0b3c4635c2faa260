package utils

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionIDContext(t *testing.T) {
	_, ok := GetActionIDFromContext(context.Background())
	assert.False(t, ok)

	ctx := WithActionID(context.Background(), "a-1")
	id, ok := GetActionIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "a-1", id)

	wrongType := context.WithValue(context.Background(), ActionIDCtxKey, 42)
	_, ok = GetActionIDFromContext(wrongType)
	assert.False(t, ok)
}

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	first, second := g.Generate(), g.Generate()

	parsed, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.NotEqual(t, first, second)
}
