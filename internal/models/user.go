package models

import "time"

// User is the root of every ownership chain. No soft deletes: removing a
// user must fire the relational cascade over the whole subtree.
type User struct {
	ID           uint    `gorm:"primarykey"`
	Email        string  `gorm:"uniqueIndex;not null"`
	PasswordHash string  `gorm:"not null"`
	FullName     *string `gorm:"type:varchar(255)"`
	CreatedAt    time.Time

	// Relationships
	Areas        []Area        `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	OneShotTasks []OneShotTask `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
