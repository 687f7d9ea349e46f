package model

import "time"

// Enrollment links a user to a course. The same pair may appear more than once.
type Enrollment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"usuario_id" gorm:"not null;index"`
	CourseID  uint      `json:"curso_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"data_inscricao"`

	// Relations
	User   User   `json:"-" gorm:"foreignKey:UserID"`
	Course Course `json:"-" gorm:"foreignKey:CourseID"`
}
