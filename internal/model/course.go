package model

import "time"

// Course is an offering students can enroll in, identified by a short code.
type Course struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	Code      string    `json:"codigo" gorm:"uniqueIndex;size:10;not null"`
	Name      string    `json:"nome" gorm:"uniqueIndex;size:100;not null"`
	CreatedAt time.Time `json:"-"`
}
