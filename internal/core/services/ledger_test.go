package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/complete/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/complete/internal/core/domain"
)

func newTestLedger() *LedgerService {
	service := NewLedgerService(memory.NewQuantityStore())
	tick := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	service.now = func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}
	return service
}

func TestNewLedgerService(t *testing.T) {
	service := NewLedgerService(memory.NewQuantityStore())

	require.NotNil(t, service)
	assert.NotNil(t, service.store)
	assert.NotNil(t, service.now)
}

func TestLedgerService_Record_Success(t *testing.T) {
	service := newTestLedger()
	ctx := context.Background()

	q, err := service.Record(ctx, "box", domain.New(5, 0))

	require.NoError(t, err)
	assert.NotEmpty(t, q.ID)
	assert.Equal(t, "box", q.Name)
	assert.Equal(t, domain.New(5, 0), q.Value)
	assert.Equal(t, q.CreatedAt, q.UpdatedAt)

	stored, err := service.Get(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, q.Value, stored.Value)
}

func TestLedgerService_Record_UniqueIDs(t *testing.T) {
	service := newTestLedger()
	ctx := context.Background()

	a, err := service.Record(ctx, "a", domain.New(1, 0))
	require.NoError(t, err)
	b, err := service.Record(ctx, "a", domain.New(1, 0))
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestLedgerService_Record_EmptyName(t *testing.T) {
	_, err := newTestLedger().Record(context.Background(), "", domain.New(1, 0))

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLedgerService_NilStore(t *testing.T) {
	service := NewLedgerService(nil)
	ctx := context.Background()

	_, err := service.Record(ctx, "box", domain.New(1, 0))
	assert.ErrorIs(t, err, domain.ErrNotImplemented)

	_, err = service.Get(ctx, "id")
	assert.ErrorIs(t, err, domain.ErrNotImplemented)

	_, err = service.List(ctx)
	assert.ErrorIs(t, err, domain.ErrNotImplemented)

	assert.ErrorIs(t, service.Remove(ctx, "id"), domain.ErrNotImplemented)

	_, err = service.Scale(ctx, "id", 2)
	assert.ErrorIs(t, err, domain.ErrNotImplemented)

	_, err = service.Combine(ctx, "total", "id")
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
}

func TestLedgerService_List(t *testing.T) {
	service := newTestLedger()
	ctx := context.Background()

	_, err := service.Record(ctx, "box", domain.New(5, 0))
	require.NoError(t, err)
	_, err = service.Record(ctx, "crate", domain.New(3, 0))
	require.NoError(t, err)

	list, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "box", list[0].Name)
	assert.Equal(t, "crate", list[1].Name)
}

func TestLedgerService_Remove(t *testing.T) {
	service := newTestLedger()
	ctx := context.Background()

	q, err := service.Record(ctx, "box", domain.New(5, 0))
	require.NoError(t, err)

	require.NoError(t, service.Remove(ctx, q.ID))

	_, err = service.Get(ctx, q.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLedgerService_Remove_NotFound(t *testing.T) {
	err := newTestLedger().Remove(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLedgerService_Scale(t *testing.T) {
	service := newTestLedger()
	ctx := context.Background()

	q, err := service.Record(ctx, "z", domain.NewWithAbsorbed(3, 4, 1, 1))
	require.NoError(t, err)

	scaled, err := service.Scale(ctx, q.ID, 2)

	require.NoError(t, err)
	assert.Equal(t, domain.NewWithAbsorbed(6, 8, 1, 1), scaled.Value)
	assert.True(t, scaled.UpdatedAt.After(scaled.CreatedAt))
}

func TestLedgerService_Vanish(t *testing.T) {
	service := newTestLedger()
	ctx := context.Background()

	q, err := service.Record(ctx, "box", domain.New(5, 0))
	require.NoError(t, err)

	vanished, err := service.Vanish(ctx, q.ID)

	require.NoError(t, err)
	assert.Equal(t, "5.0u", vanished.Value.String())
	assert.True(t, vanished.IsVanished())

	stored, err := service.Get(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, vanished.Value, stored.Value)
}

func TestLedgerService_Recover(t *testing.T) {
	service := newTestLedger()
	ctx := context.Background()

	q, err := service.Record(ctx, "z", domain.NewWithAbsorbed(0, 0, 3, 4))
	require.NoError(t, err)

	recovered, err := service.Recover(ctx, q.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.New(3, 4), recovered.Value)
}

func TestLedgerService_Recover_NotVanished(t *testing.T) {
	service := newTestLedger()
	ctx := context.Background()

	q, err := service.Record(ctx, "z", domain.New(3, 4))
	require.NoError(t, err)

	_, err = service.Recover(ctx, q.ID)
	assert.ErrorIs(t, err, domain.ErrDivisionByZero)

	// A failed operation leaves the stored value untouched.
	stored, err := service.Get(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.New(3, 4), stored.Value)
}

func TestLedgerService_Divide(t *testing.T) {
	service := newTestLedger()
	ctx := context.Background()

	q, err := service.Record(ctx, "z", domain.NewWithAbsorbed(2, 4, 6, 8))
	require.NoError(t, err)

	divided, err := service.Divide(ctx, q.ID, 2)

	require.NoError(t, err)
	assert.Equal(t, domain.NewWithAbsorbed(1, 2, 3, 4), divided.Value)
}

func TestLedgerService_Scale_NotFound(t *testing.T) {
	_, err := newTestLedger().Scale(context.Background(), "missing", 0)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLedgerService_Combine_VanishingSummation(t *testing.T) {
	service := newTestLedger()
	ctx := context.Background()

	box, err := service.Record(ctx, "box", domain.New(5, 0))
	require.NoError(t, err)
	crate, err := service.Record(ctx, "crate", domain.New(3, 0))
	require.NoError(t, err)

	_, err = service.Vanish(ctx, box.ID)
	require.NoError(t, err)
	_, err = service.Vanish(ctx, crate.ID)
	require.NoError(t, err)

	total, err := service.Combine(ctx, "total", box.ID, crate.ID)
	require.NoError(t, err)
	assert.Equal(t, "8.0u", total.Value.String())

	recovered, err := service.Recover(ctx, total.ID)
	require.NoError(t, err)
	assert.Equal(t, "8.0", recovered.Value.String())
}

func TestLedgerService_Combine_SumsAllFields(t *testing.T) {
	service := newTestLedger()
	ctx := context.Background()

	a, err := service.Record(ctx, "a", domain.NewWithAbsorbed(1, 2, 3, 4))
	require.NoError(t, err)
	b, err := service.Record(ctx, "b", domain.NewWithAbsorbed(10, 20, 30, 40))
	require.NoError(t, err)

	total, err := service.Combine(ctx, "total", a.ID, b.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.NewWithAbsorbed(11, 22, 33, 44), total.Value)
}

func TestLedgerService_Combine_NoIDs(t *testing.T) {
	_, err := newTestLedger().Combine(context.Background(), "total")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLedgerService_Combine_MissingID(t *testing.T) {
	service := newTestLedger()
	ctx := context.Background()

	a, err := service.Record(ctx, "a", domain.New(1, 0))
	require.NoError(t, err)

	_, err = service.Combine(ctx, "total", a.ID, "missing")

	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
