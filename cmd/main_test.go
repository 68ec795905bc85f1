package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricewatch/pricewatch-server/internal/config"
)

func TestNewStores_Dynamo(t *testing.T) {
	cfg := &config.Config{
		Backend: config.BackendDynamo,
		Dynamo: config.Dynamo{
			Table:    "UserProducts",
			Region:   "us-east-1",
			Endpoint: "http://localhost:8000",
		},
	}

	userStore, productStore, cleanup, err := newStores(context.Background(), cfg)
	require.NoError(t, err)
	assert.NotNil(t, userStore)
	assert.NotNil(t, productStore)
	require.NotNil(t, cleanup)
	assert.NoError(t, cleanup())
}

func TestNewStores_UnknownBackend(t *testing.T) {
	cfg := &config.Config{Backend: "mysql"}

	_, _, _, err := newStores(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown storage backend")
}
