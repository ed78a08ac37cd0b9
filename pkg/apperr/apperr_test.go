package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsKind(t *testing.T) {
	err := NotFound("order", 42)
	assert.True(t, IsKind(err, KindNotFound))
	assert.False(t, IsKind(err, KindConflict))
	assert.False(t, IsKind(errors.New("plain"), KindNotFound))
}

func TestKindOfWrapped(t *testing.T) {
	err := fmt.Errorf("placing order: %w", Conflict("order", 7, "illegal transition"))
	assert.Equal(t, KindConflict, KindOf(err))
	assert.Equal(t, KindInternal, KindOf(errors.New("db down")))
}

func TestErrorDetail(t *testing.T) {
	err := Validation("order_item", "quantity", "quantity must be at least 1, got %d", 0)
	assert.Equal(t, "order_item", err.Entity)
	assert.Equal(t, "quantity", err.Field)
	assert.Contains(t, err.Error(), "quantity must be at least 1")
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := Internal(cause)
	assert.ErrorIs(t, err, cause)
}
