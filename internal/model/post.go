package model

import "time"

type Post struct {
	ID      uint64    `gorm:"primaryKey;autoIncrement"`
	Author  string    `gorm:"size:64;not null;index"`
	Body    string    `gorm:"type:text;not null"`
	Created time.Time `gorm:"not null;index"`

	User User `gorm:"foreignKey:Author;references:Username;constraint:OnDelete:CASCADE"`
}
