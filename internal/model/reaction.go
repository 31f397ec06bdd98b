package model

// MaxEmojiLen is the byte width of the emoji column.
const MaxEmojiLen = 32

// Reaction is unique per (post, author, emoji); the triple is the primary key.
type Reaction struct {
	PostID uint64 `gorm:"primaryKey;autoIncrement:false"`
	Author string `gorm:"primaryKey;size:64;index"`
	Emoji  string `gorm:"primaryKey;size:32"`

	Post Post `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	User User `gorm:"foreignKey:Author;references:Username;constraint:OnDelete:CASCADE"`
}

// ReactionCount is one (post, emoji) group of the reactions table.
type ReactionCount struct {
	PostID uint64
	Emoji  string
	Count  int64
}
