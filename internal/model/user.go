package model

import "time"

// User is keyed by its case-sensitive username.
type User struct {
	Username     string `gorm:"primaryKey;size:64"`
	PasswordHash string `gorm:"size:255;not null"`
	CreatedAt    time.Time
}
