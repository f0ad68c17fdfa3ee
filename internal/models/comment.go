package models

import "gorm.io/gorm"

type Comment struct {
	gorm.Model

	Message string `gorm:"not null"`
	CardID  uint   `gorm:"not null;index"`
	UserID  uint   `gorm:"not null;index"`

	// Relationships
	Card Card `gorm:"foreignKey:CardID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

// OwnerID satisfies authz.Resource.
func (c *Comment) OwnerID() uint { return c.UserID }
