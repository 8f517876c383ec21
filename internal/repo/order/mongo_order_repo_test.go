package order_repo

import (
	"context"
	"testing"

	"lessonstore/internal/controller/apperror"
	"lessonstore/internal/domain/order"
	"lessonstore/pkg/mongodb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMongoOrderRepo_StoreNotReady(t *testing.T) {
	t.Parallel()

	store, err := mongodb.New("mongodb://localhost:27017", "lessonStoreTest")
	require.NoError(t, err)

	repo := NewMongoOrderRepo(store)

	err = repo.Insert(context.Background(), order.Order{Name: "Jane", Phone: "1"})
	assert.ErrorIs(t, err, apperror.ErrStoreUnavailable)
}
