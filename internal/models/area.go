package models

import "time"

type Area struct {
	ID          uint    `gorm:"primarykey"`
	UserID      uint    `gorm:"not null;index"`
	Name        string  `gorm:"not null"`
	Description *string `gorm:"type:varchar(1000)"`
	Color       *string `gorm:"type:varchar(7)"` // hex #rrggbb
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Relationships
	User         User          `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Projects     []Project     `gorm:"foreignKey:AreaID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	OneShotTasks []OneShotTask `gorm:"foreignKey:AreaID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}
