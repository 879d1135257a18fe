package sqlite

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/complete/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})

	return store
}

func TestNewStore_CreatesDatabase(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(dir, "ledger.db"), store.Path())
	_, err = os.Stat(store.Path())
	assert.NoError(t, err)
}

func TestNewStore_ReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewStore(dir)
	require.NoError(t, err)
	err = store.QuantityStore().Save(ctx, domain.Quantity{ID: "q-1", Name: "box", Value: domain.New(5, 0)})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Migrations must not re-run on an existing database.
	reopened, err := NewStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	q, err := reopened.QuantityStore().Get(ctx, "q-1")
	require.NoError(t, err)
	assert.Equal(t, domain.New(5, 0), q.Value)
}

func TestQuantityStore_SaveAndGet(t *testing.T) {
	store := setupTestStore(t).QuantityStore()
	ctx := context.Background()
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	err := store.Save(ctx, domain.Quantity{
		ID:        "q-1",
		Name:      "crate",
		Value:     domain.NewWithAbsorbed(1, -2, 3.5, -4.25),
		CreatedAt: created,
		UpdatedAt: created,
	})
	require.NoError(t, err)

	q, err := store.Get(ctx, "q-1")
	require.NoError(t, err)
	assert.Equal(t, "q-1", q.ID)
	assert.Equal(t, "crate", q.Name)
	assert.Equal(t, domain.NewWithAbsorbed(1, -2, 3.5, -4.25), q.Value)
	assert.True(t, created.Equal(q.CreatedAt))
}

func TestQuantityStore_Save_Update(t *testing.T) {
	store := setupTestStore(t).QuantityStore()
	ctx := context.Background()

	q := domain.Quantity{ID: "q-1", Name: "box", Value: domain.New(5, 0)}
	require.NoError(t, store.Save(ctx, q))

	q.Value = q.Value.Scale(0)
	require.NoError(t, store.Save(ctx, q))

	got, err := store.Get(ctx, "q-1")
	require.NoError(t, err)
	assert.Equal(t, "5.0u", got.Value.String())
}

func TestQuantityStore_Save_NaNRoundTrips(t *testing.T) {
	store := setupTestStore(t).QuantityStore()
	ctx := context.Background()

	err := store.Save(ctx, domain.Quantity{ID: "q-1", Name: "odd", Value: domain.New(math.NaN(), math.Inf(1))})
	require.NoError(t, err)

	got, err := store.Get(ctx, "q-1")
	require.NoError(t, err)
	re, im, _, _ := got.Value.Parts()
	assert.True(t, math.IsNaN(re))
	assert.True(t, math.IsInf(im, 1))
}

func TestQuantityStore_Get_NotFound(t *testing.T) {
	store := setupTestStore(t).QuantityStore()

	_, err := store.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestQuantityStore_Delete(t *testing.T) {
	store := setupTestStore(t).QuantityStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.Quantity{ID: "q-1", Name: "box"}))
	require.NoError(t, store.Delete(ctx, "q-1"))

	_, err := store.Get(ctx, "q-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Deleting a missing quantity is not an error.
	assert.NoError(t, store.Delete(ctx, "q-1"))
}

func TestQuantityStore_List_Ordered(t *testing.T) {
	store := setupTestStore(t).QuantityStore()
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, store.Save(ctx, domain.Quantity{ID: "c", Name: "crate", CreatedAt: base.Add(time.Minute)}))
	require.NoError(t, store.Save(ctx, domain.Quantity{ID: "b", Name: "box", CreatedAt: base}))
	require.NoError(t, store.Save(ctx, domain.Quantity{ID: "a", Name: "apple", CreatedAt: base}))

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "apple", list[0].Name)
	assert.Equal(t, "box", list[1].Name)
	assert.Equal(t, "crate", list[2].Name)
}

func TestQuantityStore_List_Empty(t *testing.T) {
	store := setupTestStore(t).QuantityStore()

	list, err := store.List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, list)
}
