package errorutil

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainError(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))

	conflict := NewConflict("taken", map[string]any{"name": "ana"})
	wrapped := fmt.Errorf("add player: %w", conflict)
	got := ToDomainError(wrapped)
	require.NotNil(t, got)
	assert.Equal(t, "CONFLICT", got.Code)
	assert.Equal(t, http.StatusConflict, got.HTTPStatus)

	boom := errors.New("boom")
	internal := ToDomainError(boom)
	assert.Equal(t, "INTERNAL_ERROR", internal.Code)
	assert.ErrorIs(t, internal, boom)
	assert.Equal(t, "internal server error: boom", internal.Error())
}

func TestConstructors(t *testing.T) {
	nf := ToDomainError(NewNotFound("player", nil))
	assert.Equal(t, "player not found", nf.Message)
	assert.NotNil(t, nf.Details)

	shuffle := ToDomainError(NewNothingToShuffle(1))
	assert.Equal(t, "NOTHING_TO_SHUFFLE", shuffle.Code)
	assert.Equal(t, 1, shuffle.Details["groups"])

	assert.Equal(t, http.StatusBadRequest, ToDomainError(NewValidationError("bad", nil)).HTTPStatus)
	assert.Equal(t, http.StatusUnauthorized, ToDomainError(NewUnauthorized("no")).HTTPStatus)
	assert.NoError(t, MapError(nil))
}
