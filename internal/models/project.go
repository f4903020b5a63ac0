package models

import "time"

type Project struct {
	ID          uint    `gorm:"primarykey"`
	AreaID      uint    `gorm:"not null;index"`
	Icon        *string `gorm:"type:varchar(20)"`
	Name        string  `gorm:"not null"`
	Description *string `gorm:"type:varchar(1000)"`
	Pinned      bool    `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Relationships
	Area        Area                `gorm:"foreignKey:AreaID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	NextActions []ProjectNextAction `gorm:"foreignKey:ProjectID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
