package models

import "time"

// User is one stored quiz result: who took the quiz, the skin type they were
// classified as, and the weight breakdown (JSON-encoded) that produced it.
type User struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"size:255;not null" json:"name"`
	SkinType        string    `gorm:"size:20;not null;index" json:"skin_type"`
	Characteristics string    `gorm:"type:text;not null" json:"characteristics"`
	CreatedAt       time.Time `json:"created_at"`
}
