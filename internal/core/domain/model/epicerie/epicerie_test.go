package epicerie_test

import (
	"testing"

	"epicerie/internal/core/domain/model/epicerie"
	"epicerie/internal/core/domain/model/kernel"
	"epicerie/internal/core/domain/model/livreur"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustID(t *testing.T, v int64) kernel.ID {
	t.Helper()
	id, err := kernel.NewID(v)
	require.NoError(t, err)
	return id
}

func poolLivreur(t *testing.T, id int64, name string) *livreur.Livreur {
	t.Helper()
	identity, err := livreur.ConfirmedIdentity(mustID(t, id))
	require.NoError(t, err)
	l, err := livreur.NewLivreur(identity, name, "", true, nil)
	require.NoError(t, err)
	return l
}

func TestRestoreEpicerie(t *testing.T) {
	t.Run("with pool", func(t *testing.T) {
		e, err := epicerie.RestoreEpicerie(mustID(t, 200), "Chez Fatima",
			[]*livreur.Livreur{poolLivreur(t, 5, "Hassan")})
		require.NoError(t, err)

		assert.Len(t, e.Pool(), 1)
		require.NoError(t, e.Validate())
	})

	t.Run("empty pool is valid", func(t *testing.T) {
		e, err := epicerie.RestoreEpicerie(mustID(t, 200), "Chez Fatima", nil)
		require.NoError(t, err)
		assert.Empty(t, e.Pool())
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		_, err := epicerie.RestoreEpicerie(mustID(t, 200), "", nil)
		require.ErrorIs(t, err, epicerie.ErrNameIsRequired)
	})
}

func TestRestorePoolProjection(t *testing.T) {
	e, err := epicerie.RestorePoolProjection(mustID(t, 200),
		[]*livreur.Livreur{poolLivreur(t, 5, "Hassan")})
	require.NoError(t, err)

	assert.Empty(t, e.Name())
	assert.Len(t, e.Pool(), 1)
	require.NoError(t, e.Validate())
}

func TestEpicerie_PoolContains(t *testing.T) {
	e, err := epicerie.RestoreEpicerie(mustID(t, 200), "Chez Fatima",
		[]*livreur.Livreur{poolLivreur(t, 5, "Hassan")})
	require.NoError(t, err)

	inPool, err := livreur.ConfirmedIdentity(mustID(t, 5))
	require.NoError(t, err)
	notInPool, err := livreur.ConfirmedIdentity(mustID(t, 3))
	require.NoError(t, err)

	assert.True(t, e.PoolContains(inPool))
	assert.False(t, e.PoolContains(notInPool))

	t.Run("fallback identity with same id matches", func(t *testing.T) {
		fallback, err := livreur.FallbackIdentity(mustID(t, 5))
		require.NoError(t, err)
		assert.True(t, e.PoolContains(fallback))
	})
}

func TestEpicerie_AddToPool(t *testing.T) {
	t.Run("adds a confirmed livreur", func(t *testing.T) {
		e, err := epicerie.RestoreEpicerie(mustID(t, 200), "Chez Fatima", nil)
		require.NoError(t, err)

		require.NoError(t, e.AddToPool(poolLivreur(t, 5, "Hassan")))
		assert.Len(t, e.Pool(), 1)
	})

	t.Run("rejects duplicates", func(t *testing.T) {
		e, err := epicerie.RestoreEpicerie(mustID(t, 200), "Chez Fatima",
			[]*livreur.Livreur{poolLivreur(t, 5, "Hassan")})
		require.NoError(t, err)

		err = e.AddToPool(poolLivreur(t, 5, "Hassan again"))
		require.ErrorIs(t, err, epicerie.ErrLivreurAlreadyInPool)
	})

	t.Run("rejects synthesized identities", func(t *testing.T) {
		e, err := epicerie.RestoreEpicerie(mustID(t, 200), "Chez Fatima", nil)
		require.NoError(t, err)

		ghost, err := livreur.NewLivreur(livreur.SynthesizedIdentity(), "Sans id", "", true, nil)
		require.NoError(t, err)
		require.Error(t, e.AddToPool(ghost))
		assert.Empty(t, e.Pool())
	})
}

func TestEpicerie_RemoveFromPool(t *testing.T) {
	e, err := epicerie.RestoreEpicerie(mustID(t, 200), "Chez Fatima",
		[]*livreur.Livreur{poolLivreur(t, 5, "Hassan")})
	require.NoError(t, err)

	identity, err := livreur.ConfirmedIdentity(mustID(t, 5))
	require.NoError(t, err)

	require.NoError(t, e.RemoveFromPool(identity))
	assert.Empty(t, e.Pool())

	require.ErrorIs(t, e.RemoveFromPool(identity), epicerie.ErrLivreurNotInPool)
}

func TestEpicerie_ZeroValueFailsValidation(t *testing.T) {
	var e epicerie.Epicerie
	require.ErrorIs(t, e.Validate(), epicerie.ErrEpicerieIsNotConstructed)
}
