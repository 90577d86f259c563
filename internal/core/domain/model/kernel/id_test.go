package kernel_test

import (
	"testing"

	"epicerie/internal/core/domain/model/kernel"
	"epicerie/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	t.Run("positive value", func(t *testing.T) {
		id, err := kernel.NewID(42)
		require.NoError(t, err)
		assert.Equal(t, int64(42), id.Value())
		assert.Equal(t, "42", id.String())
		require.NoError(t, id.Validate())
	})

	t.Run("zero value is rejected", func(t *testing.T) {
		_, err := kernel.NewID(0)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("negative value is rejected", func(t *testing.T) {
		_, err := kernel.NewID(-5)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestParseID(t *testing.T) {
	t.Run("decimal string", func(t *testing.T) {
		id, err := kernel.ParseID("7")
		require.NoError(t, err)
		assert.Equal(t, int64(7), id.Value())
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		_, err := kernel.ParseID("seven")
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("non-positive is rejected", func(t *testing.T) {
		_, err := kernel.ParseID("0")
		require.Error(t, err)
	})
}

func TestID_Validate(t *testing.T) {
	t.Run("zero value ID is not constructed", func(t *testing.T) {
		var id kernel.ID
		require.ErrorIs(t, id.Validate(), errs.ErrValueIsRequired)
	})
}

func TestID_IsEqual(t *testing.T) {
	a, _ := kernel.NewID(5)
	b, _ := kernel.NewID(5)
	c, _ := kernel.NewID(9)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    kernel.Role
		wantErr bool
	}{
		{"CLIENT", kernel.RoleClient, false},
		{"EPICIER", kernel.RoleEpicier, false},
		{"LIVREUR", kernel.RoleLivreur, false},
		{"ADMIN", kernel.RoleUnknown, true},
		{"", kernel.RoleUnknown, true},
	}

	for _, tt := range tests {
		t.Run("parse_"+tt.in, func(t *testing.T) {
			role, err := kernel.ParseRole(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, role)
		})
	}
}

func TestRole_Validate(t *testing.T) {
	require.NoError(t, kernel.RoleEpicier.Validate())
	require.Error(t, kernel.RoleUnknown.Validate())
	require.Error(t, kernel.Role(99).Validate())
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "LIVREUR", kernel.RoleLivreur.String())
	assert.Equal(t, "UNKNOWN", kernel.RoleUnknown.String())
	assert.Equal(t, "UNKNOWN", kernel.Role(99).String())
}
