package bearer_test

import (
	"context"
	"testing"

	"epicerie/internal/pkg/bearer"
	"epicerie/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	ctx := bearer.WithToken(context.Background(), "abc.def.ghi")

	token, err := bearer.TokenFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)
}

func TestTokenFromContext_Missing(t *testing.T) {
	_, err := bearer.TokenFromContext(context.Background())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestTokenFromContext_Empty(t *testing.T) {
	ctx := bearer.WithToken(context.Background(), "")
	_, err := bearer.TokenFromContext(ctx)
	require.Error(t, err)
}
