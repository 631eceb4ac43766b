package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKontakListFilterSoftDelete(t *testing.T) {
	client, stub := newStubClient(t)
	repo := NewKontakRepository(client)

	_, err := repo.List(context.Background(), "", false)
	require.NoError(t, err)
	assert.Contains(t, stub.lastQuery.Get("filter"), `"is_deleted"`)

	_, err = repo.List(context.Background(), "unread", true)
	require.NoError(t, err)
	filter := stub.lastQuery.Get("filter")
	assert.NotContains(t, filter, "is_deleted")
	assert.Contains(t, filter, "unread")
}
