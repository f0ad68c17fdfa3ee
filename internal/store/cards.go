package store

import (
	"time"

	"github.com/taskdeck-dev/taskdeck/internal/models"
	"gorm.io/gorm"
)

type CardStore struct {
	db *gorm.DB
}

func NewCardStore(db *gorm.DB) *CardStore {
	return &CardStore{db: db}
}

// NewCard carries the validated fields for card creation. Date is optional;
// when nil the card is dated with the current day.
type NewCard struct {
	Title       string
	Description string
	Status      string
	Priority    string
	Date        *time.Time
}

// CardPatch is a tri-state partial update: a nil field was absent from the
// payload and leaves the stored value untouched, a non-nil field is applied
// even when it points at an empty string.
type CardPatch struct {
	Title       *string
	Description *string
	Status      *string
	Priority    *string
	Date        *time.Time
}

func (s *CardStore) ListByOwner(ownerID uint) ([]models.Card, error) {
	var cards []models.Card

	if err := s.db.Preload("User").Where("user_id = ?", ownerID).Find(&cards).Error; err != nil {
		return nil, err
	}

	return cards, nil
}

func (s *CardStore) GetByID(id uint) (*models.Card, error) {
	var card models.Card

	if err := s.db.Preload("User").First(&card, id).Error; err != nil {
		return nil, translate(err)
	}

	return &card, nil
}

func (s *CardStore) Create(ownerID uint, fields NewCard) (*models.Card, error) {
	date := today()
	if fields.Date != nil {
		date = *fields.Date
	}

	card := models.Card{
		Title:       fields.Title,
		Description: fields.Description,
		Status:      fields.Status,
		Priority:    fields.Priority,
		Date:        date,
		UserID:      ownerID,
	}

	if err := s.db.Create(&card).Error; err != nil {
		return nil, err
	}

	if err := s.db.Preload("User").First(&card, card.ID).Error; err != nil {
		return nil, translate(err)
	}

	return &card, nil
}

// Update applies the non-nil fields of patch to card and persists it. The
// caller is expected to have validated the patch and authorized the actor.
func (s *CardStore) Update(card *models.Card, patch CardPatch) error {
	if patch.Title != nil {
		card.Title = *patch.Title
	}
	if patch.Description != nil {
		card.Description = *patch.Description
	}
	if patch.Status != nil {
		card.Status = *patch.Status
	}
	if patch.Priority != nil {
		card.Priority = *patch.Priority
	}
	if patch.Date != nil {
		card.Date = *patch.Date
	}

	return s.db.Save(card).Error
}

// Delete removes the card together with every comment attached to it. Both
// deletes run in one transaction so a failure can never leave orphaned
// comments behind.
func (s *CardStore) Delete(card *models.Card) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("card_id = ?", card.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}

		return tx.Delete(card).Error
	})
}

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
