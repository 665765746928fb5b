package tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/mamdani/pkg/domain"
	"github.com/aretw0/mamdani/pkg/ports"
)

func sampleRecord() *domain.Record {
	rec := domain.NewRecord("irrigation", map[string]float64{"humidity": 65, "temperature": 33})
	rec.Stages = []domain.StageOutcome{{
		Stage:      "spray",
		InputA:     65,
		InputB:     33,
		Membership: domain.Membership{"Moyenne": 0.625, "Longue": 0.375},
		Crisp:      17.113590263691684,
	}}
	rec.Output = "spray"
	rec.Crisp = 17.113590263691684
	return rec
}

// RecordStoreContractTest is a reusable test suite that verifies if an adapter complies with ports.RecordStore.
func RecordStoreContractTest(t *testing.T, store ports.RecordStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("Save and Load", func(t *testing.T) {
		rec := sampleRecord()
		require.NoError(t, store.Save(ctx, rec), "Save should not return error")

		loaded, err := store.Load(ctx, rec.ID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, rec.ID, loaded.ID)
		assert.Equal(t, rec.Pipeline, loaded.Pipeline)
		assert.Equal(t, rec.Inputs, loaded.Inputs)
		assert.Equal(t, rec.Stages, loaded.Stages)
		assert.Equal(t, rec.Crisp, loaded.Crisp)
		assert.True(t, rec.CreatedAt.Equal(loaded.CreatedAt), "CreatedAt should survive a round trip")
	})

	t.Run("Load Isolation", func(t *testing.T) {
		rec := sampleRecord()
		require.NoError(t, store.Save(ctx, rec))
		rec.Inputs["humidity"] = 0

		loaded, err := store.Load(ctx, rec.ID)
		require.NoError(t, err)
		assert.Equal(t, 65.0, loaded.Inputs["humidity"], "Store must not alias caller memory")
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-record")
		assert.ErrorIs(t, err, domain.ErrRecordNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		rec := sampleRecord()
		require.NoError(t, store.Save(ctx, rec))
		require.NoError(t, store.Delete(ctx, rec.ID), "Delete should not return error")

		_, err := store.Load(ctx, rec.ID)
		assert.ErrorIs(t, err, domain.ErrRecordNotFound, "Load after Delete should return ErrRecordNotFound")
		assert.NoError(t, store.Delete(ctx, rec.ID), "Deleting twice should be a no-op")
	})

	t.Run("List", func(t *testing.T) {
		first, second := sampleRecord(), sampleRecord()
		require.NoError(t, store.Save(ctx, first))
		require.NoError(t, store.Save(ctx, second))
		defer func() {
			_ = store.Delete(ctx, first.ID)
			_ = store.Delete(ctx, second.ID)
		}()

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, first.ID)
		assert.Contains(t, ids, second.ID)
	})
}
