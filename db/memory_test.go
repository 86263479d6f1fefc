package db

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type room struct {
	Number   string `bson:"classroomnumber"`
	Capacity string `bson:"classcapacity"`
}

func TestMemoryStoreSaveAndFind(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	id, err := store.Save(ctx, "classrooms", room{Number: "101", Capacity: "30"})
	require.NoError(t, err)
	assert.Len(t, id, 24)

	document, err := store.FindByID(ctx, "classrooms", id)
	require.NoError(t, err)
	assert.Equal(t, "101", document.Lookup("classroomnumber").StringValue())
	assert.Equal(t, id, document.Lookup("_id").ObjectID().Hex())

	var decoded room
	require.NoError(t, bson.Unmarshal(document, &decoded))
	assert.Equal(t, room{Number: "101", Capacity: "30"}, decoded)
}

func TestMemoryStoreNoDeduplication(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	first, err := store.Save(ctx, "classrooms", room{Number: "101"})
	require.NoError(t, err)
	second, err := store.Save(ctx, "classrooms", room{Number: "101"})
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Equal(t, 2, store.Count("classrooms"))
}

func TestMemoryStoreFailWith(t *testing.T) {
	store := NewMemoryStore()
	failure := errors.New("network down")
	store.FailWith(failure)

	_, err := store.Save(context.Background(), "classrooms", room{Number: "101"})
	assert.ErrorIs(t, err, failure)
	assert.Equal(t, 0, store.Count("classrooms"))
}

func TestMemoryStoreFindPaging(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	for _, number := range []string{"1", "2", "3", "4"} {
		_, err := store.Save(ctx, "classrooms", room{Number: number})
		require.NoError(t, err)
	}

	documents, err := store.Find(ctx, "classrooms", 1, 2)
	require.NoError(t, err)
	require.Len(t, documents, 2)
	assert.Equal(t, "2", documents[0].Lookup("classroomnumber").StringValue())
	assert.Equal(t, "3", documents[1].Lookup("classroomnumber").StringValue())

	empty, err := store.Find(ctx, "unknown", 0, 0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	id, err := store.Save(ctx, "classrooms", room{Number: "101"})
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, "classrooms", id))
	_, err = store.FindByID(ctx, "classrooms", id)
	assert.ErrorIs(t, err, ErrNoDocument)
	assert.ErrorIs(t, store.Delete(ctx, "classrooms", id), ErrNoDocument)
	assert.ErrorIs(t, store.Delete(ctx, "classrooms", "nope"), ErrInvalidID)
}

func TestMemoryStoreCancelledContext(t *testing.T) {
	store := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Save(ctx, "classrooms", room{Number: "101"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, store.Count("classrooms"))
}
