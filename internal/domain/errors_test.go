package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStorageFailure(t *testing.T) {
	dbErr := errors.New("connection reset")

	wrapped := StorageFailure(dbErr)
	assert.ErrorIs(t, wrapped, ErrStorageFailure)
	assert.ErrorIs(t, wrapped, dbErr)

	known := fmt.Errorf("debit: %w", ErrInsufficientFunds)
	assert.Equal(t, known, StorageFailure(known))
	assert.NotErrorIs(t, StorageFailure(known), ErrStorageFailure)

	assert.NoError(t, StorageFailure(nil))
}
