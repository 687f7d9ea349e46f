package model

import "time"

// User represents a registered student.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:200;not null"`
	Name         string    `json:"nome" gorm:"size:100;not null"`
	PasswordHash string    `json:"-" gorm:"size:100;not null"` // Never expose in JSON
	CreatedAt    time.Time `json:"data_cadastro"`
}
