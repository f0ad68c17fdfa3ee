package store

import (
	"errors"

	"github.com/taskdeck-dev/taskdeck/internal/models"
	"gorm.io/gorm"
)

type CommentStore struct {
	db *gorm.DB
}

func NewCommentStore(db *gorm.DB) *CommentStore {
	return &CommentStore{db: db}
}

func (s *CommentStore) ListByOwner(ownerID uint) ([]models.Comment, error) {
	var comments []models.Comment

	if err := s.db.Preload("User").Where("user_id = ?", ownerID).Find(&comments).Error; err != nil {
		return nil, err
	}

	return comments, nil
}

func (s *CommentStore) GetByID(id uint) (*models.Comment, error) {
	var comment models.Comment

	if err := s.db.Preload("User").First(&comment, id).Error; err != nil {
		return nil, translate(err)
	}

	return &comment, nil
}

// Create attaches a new comment to the card identified by cardID. The parent
// card must exist; comments are immutable once created, there is no update.
func (s *CommentStore) Create(cardID, authorID uint, message string) (*models.Comment, error) {
	var card models.Card

	if err := s.db.First(&card, cardID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}

	comment := models.Comment{
		Message: message,
		CardID:  cardID,
		UserID:  authorID,
	}

	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}

	if err := s.db.Preload("User").First(&comment, comment.ID).Error; err != nil {
		return nil, translate(err)
	}

	return &comment, nil
}

func (s *CommentStore) Delete(comment *models.Comment) error {
	return s.db.Delete(comment).Error
}
