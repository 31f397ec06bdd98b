package model

import "time"

type Comment struct {
	ID      uint64    `gorm:"primaryKey;autoIncrement"`
	PostID  uint64    `gorm:"not null;index"`
	Author  string    `gorm:"size:64;not null;index"`
	Body    string    `gorm:"type:text;not null"`
	Created time.Time `gorm:"not null"`

	Post Post `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	User User `gorm:"foreignKey:Author;references:Username;constraint:OnDelete:CASCADE"`
}
