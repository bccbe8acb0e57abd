package errors_test

import (
	"fmt"
	"testing"

	apperrors "bookmark-manager-backend/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestSentinelMatching(t *testing.T) {
	wrapped := fmt.Errorf("lookup failed: %w", apperrors.ErrBookmarkNotFound)

	assert.ErrorIs(t, wrapped, apperrors.ErrBookmarkNotFound)
	assert.NotErrorIs(t, wrapped, apperrors.ErrTagNotFound)
	assert.True(t, apperrors.IsNotFound(wrapped))
	assert.False(t, apperrors.IsAlreadyExists(wrapped))
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "bookmark not found", apperrors.ErrBookmarkNotFound.Error())
	assert.Equal(t, "bookmark already exists with this name or url", apperrors.ErrBookmarkExists.Error())
	assert.Equal(t, "tag already exists with this name", apperrors.ErrTagExists.Error())
	assert.Equal(t, "validation error: limit - page size is not in the allowed set", apperrors.ErrInvalidPageSize.Error())
	assert.Equal(t, "authentication required", apperrors.ErrAuthRequired.Error())
}

func TestCategoryHelpers(t *testing.T) {
	assert.True(t, apperrors.IsAlreadyExists(apperrors.ErrUserExists))
	assert.True(t, apperrors.IsValidation(apperrors.ErrInvalidSortKey))
	assert.True(t, apperrors.IsAuthentication(apperrors.ErrInvalidCredentials))
	assert.False(t, apperrors.IsNotFound(apperrors.ErrInvalidCredentials))
	assert.False(t, apperrors.IsNotFound(nil))
}

func TestConstructors(t *testing.T) {
	err := apperrors.NewNotFoundError("session")
	assert.Equal(t, "session not found", err.Error())
	assert.True(t, apperrors.IsNotFound(err))

	err = apperrors.NewAlreadyExistsError("session", "")
	assert.Equal(t, "session already exists", err.Error())

	err = apperrors.NewValidationError("", "bad payload")
	assert.Equal(t, "validation error: bad payload", err.Error())
	assert.True(t, apperrors.IsValidation(err))

	err = apperrors.NewAuthenticationError("token expired")
	assert.True(t, apperrors.IsAuthentication(err))
}
