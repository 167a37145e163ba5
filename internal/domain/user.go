package domain

import "time"

// User is an account in the users collection. Records are immutable after
// registration except for out-of-scope password resets.
type User struct {
	ID           string    `gorm:"column:id;primaryKey" json:"id"`
	Email        string    `gorm:"column:email;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"column:password_hash" json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"-"`
}

func (User) TableName() string { return "users" }
