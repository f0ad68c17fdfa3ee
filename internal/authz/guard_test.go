package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/taskdeck-dev/taskdeck/internal/models"
)

func TestAuthorizeOwner(t *testing.T) {
	card := &models.Card{UserID: 7}

	assert.NoError(t, Authorize(7, card))
}

func TestAuthorizeOwnershipMismatch(t *testing.T) {
	card := &models.Card{UserID: 7}

	assert.ErrorIs(t, Authorize(8, card), ErrUnauthorized)
}

func TestAuthorizeNilResource(t *testing.T) {
	assert.ErrorIs(t, Authorize(7, nil), ErrNotFound)
}

func TestAuthorizeComment(t *testing.T) {
	comment := &models.Comment{UserID: 3, CardID: 9}

	assert.NoError(t, Authorize(3, comment))
	assert.ErrorIs(t, Authorize(9, comment), ErrUnauthorized)
}
