package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpoListFilterSoftDelete(t *testing.T) {
	client, stub := newStubClient(t)
	repo := NewExpoRepository(client)

	_, _, err := repo.List(context.Background(), ExpoFilter{})
	require.NoError(t, err)
	assert.Contains(t, stub.lastQuery.Get("filter"), `"is_deleted"`)

	_, _, err = repo.List(context.Background(), ExpoFilter{IncludeDeleted: true})
	require.NoError(t, err)
	assert.NotContains(t, stub.lastQuery.Get("filter"), "is_deleted")
}
