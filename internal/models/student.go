package models

import "time"

// Student is a pupil on the roster.
type Student struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Gender    string    `gorm:"size:20;not null" json:"gender"`
	Age       int       `gorm:"not null" json:"age"`
	ClassID   uint      `gorm:"not null" json:"class_id"`
	Class     Class     `gorm:"foreignKey:ClassID" json:"class"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StudentUser is the login identity of a student. It shares its primary key
// with the student row it belongs to.
type StudentUser struct {
	StudentID    uint      `gorm:"primaryKey" json:"student_id"`
	Student      Student   `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"-"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
