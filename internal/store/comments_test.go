package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentStoreCreate(t *testing.T) {
	conn := newTestDB(t)
	owner := createTestUser(t, conn, "ann@x.com")
	cards := NewCardStore(conn)
	comments := NewCommentStore(conn)

	card, err := cards.Create(owner.ID, NewCard{Title: "Write tests"})
	require.NoError(t, err)

	comment, err := comments.Create(card.ID, owner.ID, "looks good")
	require.NoError(t, err)

	assert.Equal(t, card.ID, comment.CardID)
	assert.Equal(t, owner.ID, comment.UserID)
	assert.Equal(t, owner.ID, comment.User.ID)
	assert.Equal(t, "looks good", comment.Message)
}

func TestCommentStoreCreateMissingCard(t *testing.T) {
	conn := newTestDB(t)
	owner := createTestUser(t, conn, "ann@x.com")
	comments := NewCommentStore(conn)

	_, err := comments.Create(9999, owner.ID, "orphan")
	assert.ErrorIs(t, err, ErrCardNotFound)
}

func TestCommentStoreListByOwnerScoped(t *testing.T) {
	conn := newTestDB(t)
	ann := createTestUser(t, conn, "ann@x.com")
	bob := createTestUser(t, conn, "bob@x.com")
	cards := NewCardStore(conn)
	comments := NewCommentStore(conn)

	annCard, err := cards.Create(ann.ID, NewCard{Title: "Anns card"})
	require.NoError(t, err)
	bobCard, err := cards.Create(bob.ID, NewCard{Title: "Bobs card"})
	require.NoError(t, err)

	_, err = comments.Create(annCard.ID, ann.ID, "from ann")
	require.NoError(t, err)
	_, err = comments.Create(bobCard.ID, bob.ID, "from bob")
	require.NoError(t, err)

	annComments, err := comments.ListByOwner(ann.ID)
	require.NoError(t, err)
	require.Len(t, annComments, 1)
	assert.Equal(t, "from ann", annComments[0].Message)
}

func TestCommentStoreDelete(t *testing.T) {
	conn := newTestDB(t)
	owner := createTestUser(t, conn, "ann@x.com")
	cards := NewCardStore(conn)
	comments := NewCommentStore(conn)

	card, err := cards.Create(owner.ID, NewCard{Title: "Write tests"})
	require.NoError(t, err)

	comment, err := comments.Create(card.ID, owner.ID, "temporary")
	require.NoError(t, err)

	require.NoError(t, comments.Delete(comment))

	_, err = comments.GetByID(comment.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting the comment leaves its card alone.
	_, err = cards.GetByID(card.ID)
	require.NoError(t, err)
}
