package context

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_Roundtrip(t *testing.T) {
	m := NewManager()

	ctx := m.SetUserEmailToContext(context.Background(), "a@b.com")

	email, ok := m.GetUserEmailFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "a@b.com", email)
}

func TestManager_Missing(t *testing.T) {
	m := NewManager()

	_, ok := m.GetUserEmailFromContext(context.Background())
	assert.False(t, ok)
}

func TestManager_EmptyEmail(t *testing.T) {
	m := NewManager()

	ctx := m.SetUserEmailToContext(context.Background(), "")
	_, ok := m.GetUserEmailFromContext(ctx)
	assert.False(t, ok)
}
