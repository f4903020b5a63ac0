package models

import "time"

// ProjectNextAction is a single GTD step inside a project. Listing order
// is insertion order, so the autoincrement id is the sort key.
type ProjectNextAction struct {
	ID        uint   `gorm:"primarykey"`
	ProjectID uint   `gorm:"not null;index"`
	Title     string `gorm:"type:varchar(500);not null"`
	Done      bool   `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships
	Project Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
