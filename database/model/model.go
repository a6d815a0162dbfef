// Package model defines the persisted records of gopress.
package model

// User is a registered author. PasswordHash holds a bcrypt digest; the
// plaintext password never reaches the store.
type User struct {
	Id           int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string `json:"name" gorm:"not null"`
	Email        string `json:"email" gorm:"not null"`
	Username     string `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"column:password;not null"`
}

// Article is a published piece. Author carries the username of the user
// who created it and never changes after creation.
type Article struct {
	Id     int    `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	Title  string `json:"title" form:"title" gorm:"not null"`
	Body   string `json:"body" form:"body" gorm:"not null"`
	Author string `json:"author" gorm:"not null"`
}
