package models

import (
	"time"

	"gorm.io/gorm"
)

type Card struct {
	gorm.Model

	Title       string `gorm:"not null"`
	Description string
	Status      string
	Priority    string
	Date        time.Time `gorm:"type:date;not null"`
	UserID      uint      `gorm:"not null;index"`

	// Relationships
	User     User      `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Comments []Comment `gorm:"foreignKey:CardID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

// OwnerID satisfies authz.Resource.
func (c *Card) OwnerID() uint { return c.UserID }
