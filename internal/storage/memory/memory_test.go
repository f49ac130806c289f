package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
)

func TestStore(t *testing.T) {
	store := New()
	defer store.Close()

	ctx := context.Background()

	t.Run("CreateLedger generates ID and CreatedAt", func(t *testing.T) {
		l := &models.Ledger{Name: "Trip", People: []string{"Alice", "Bob"}}
		require.NoError(t, store.CreateLedger(ctx, l))

		assert.NotEmpty(t, l.ID)
		assert.NotZero(t, l.CreatedAt)

		t.Logf("Created ledger: ID=%s, Name=%s", l.ID, l.Name)
	})

	t.Run("CreateLedger rejects a taken ID", func(t *testing.T) {
		l := &models.Ledger{ID: "fixed", Name: "One"}
		require.NoError(t, store.CreateLedger(ctx, l))
		assert.Error(t, store.CreateLedger(ctx, &models.Ledger{ID: "fixed"}))
	})

	t.Run("GetLedger returns an independent copy", func(t *testing.T) {
		original := &models.Ledger{
			Name:   "Flat",
			People: []string{"Carol"},
			Expenses: []models.Expense{
				{ID: 1, Description: "Rent", Amount: decimal.NewFromInt(900), PaidBy: "Carol", SplitBetween: []string{"Carol"}},
			},
		}
		require.NoError(t, store.CreateLedger(ctx, original))

		// mutating the caller's value does not leak into the store
		original.People[0] = "Mallory"

		got, err := store.GetLedger(ctx, original.ID)
		require.NoError(t, err)
		assert.Equal(t, "Flat", got.Name)
		assert.Equal(t, []string{"Carol"}, got.People)
		require.Len(t, got.Expenses, 1)

		got.Expenses[0].SplitBetween[0] = "Mallory"
		again, err := store.GetLedger(ctx, original.ID)
		require.NoError(t, err)
		assert.Equal(t, "Carol", again.Expenses[0].SplitBetween[0])
	})

	t.Run("GetLedger on a missing ID", func(t *testing.T) {
		_, err := store.GetLedger(ctx, "nope")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("UpdateLedger stores the result", func(t *testing.T) {
		l := &models.Ledger{Name: "Club"}
		require.NoError(t, store.CreateLedger(ctx, l))

		updated, err := store.UpdateLedger(ctx, l.ID, func(cur models.Ledger) (models.Ledger, error) {
			cur.People = append(cur.People, "Dave")
			cur.ID = "hijack"
			return cur, nil
		})
		require.NoError(t, err)
		assert.Equal(t, l.ID, updated.ID, "ID cannot be changed")
		assert.Equal(t, []string{"Dave"}, updated.People)

		got, err := store.GetLedger(ctx, l.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"Dave"}, got.People)
	})

	t.Run("UpdateLedger keeps the old value on error", func(t *testing.T) {
		l := &models.Ledger{Name: "Band", People: []string{"Erin"}}
		require.NoError(t, store.CreateLedger(ctx, l))

		boom := errors.New("boom")
		_, err := store.UpdateLedger(ctx, l.ID, func(cur models.Ledger) (models.Ledger, error) {
			cur.People = nil
			return cur, boom
		})
		assert.ErrorIs(t, err, boom)

		got, err := store.GetLedger(ctx, l.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"Erin"}, got.People)
	})

	t.Run("UpdateLedger on a missing ID", func(t *testing.T) {
		_, err := store.UpdateLedger(ctx, "nope", func(cur models.Ledger) (models.Ledger, error) { return cur, nil })
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("DeleteLedger", func(t *testing.T) {
		l := &models.Ledger{Name: "Gone"}
		require.NoError(t, store.CreateLedger(ctx, l))
		require.NoError(t, store.DeleteLedger(ctx, l.ID))

		_, err := store.GetLedger(ctx, l.ID)
		assert.ErrorIs(t, err, storage.ErrNotFound)
		assert.ErrorIs(t, store.DeleteLedger(ctx, l.ID), storage.ErrNotFound)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := store.GetLedger(cctx, "any")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestStore_ListLedgersOrder(t *testing.T) {
	store := New()
	ctx := context.Background()

	for i, id := range []string{"c", "a", "b"} {
		require.NoError(t, store.CreateLedger(ctx, &models.Ledger{ID: id, CreatedAt: int64(100 - i)}))
	}

	ledgers, err := store.ListLedgers(ctx)
	require.NoError(t, err)
	require.Len(t, ledgers, 3)
	assert.Equal(t, "b", ledgers[0].ID)
	assert.Equal(t, "a", ledgers[1].ID)
	assert.Equal(t, "c", ledgers[2].ID)
}

func TestStore_ConcurrentUpdates(t *testing.T) {
	store := New()
	ctx := context.Background()
	l := &models.Ledger{Name: "Busy"}
	require.NoError(t, store.CreateLedger(ctx, l))

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.UpdateLedger(ctx, l.ID, func(cur models.Ledger) (models.Ledger, error) {
				cur.People = append(cur.People, "x")
				return cur, nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := store.GetLedger(ctx, l.ID)
	require.NoError(t, err)
	assert.Len(t, got.People, 50)
}
