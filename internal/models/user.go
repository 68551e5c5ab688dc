package models

import (
	"golang.org/x/crypto/bcrypt"
)

// User represents a registered account. Passwords are stored as bcrypt
// hashes and never serialized.
type User struct {
	BaseModel
	Username string `gorm:"uniqueIndex;size:80;not null" json:"username"`
	Password string `gorm:"size:200;not null" json:"-"`

	// Relations (not always preloaded)
	Reviews []Review `gorm:"foreignKey:UserID" json:"-"`
}

// UserSanitized represents the user data that is safe to send in API responses.
type UserSanitized struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// SetPassword hashes a password and sets it on the user
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword compares a password with the user's hashed password
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// Sanitize creates a UserSanitized struct from a User model, excluding sensitive data.
func (u *User) Sanitize() UserSanitized {
	return UserSanitized{
		ID:       u.ID,
		Username: u.Username,
	}
}
