package models

import "time"

// OneShotTask belongs to a user directly. The area link is an optional
// tag (nil = unassigned) and is not an ownership edge: deleting the area
// nulls the link instead of deleting the task.
type OneShotTask struct {
	ID        uint   `gorm:"primarykey"`
	UserID    uint   `gorm:"not null;index"`
	AreaID    *uint  `gorm:"index"`
	Title     string `gorm:"type:varchar(500);not null"`
	Done      bool   `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships
	User User  `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Area *Area `gorm:"foreignKey:AreaID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}
