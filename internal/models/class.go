package models

// Class is a school class a student belongs to. The application never
// creates, edits or deletes classes; they arrive with the seed data.
type Class struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`
}
