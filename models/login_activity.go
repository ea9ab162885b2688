package models

import (
	"time"

	"gorm.io/gorm"
)

// LoginActivity is an append-only record of a successful login.
// Username is a snapshot taken at login time.
type LoginActivity struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"user"`
	Username   string    `gorm:"not null;type:varchar(150)" json:"username"`
	LoggedInAt time.Time `gorm:"not null;index;<-:create" json:"logged_in_at"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (LoginActivity) TableName() string {
	return "login_activities"
}

func (a *LoginActivity) BeforeCreate(tx *gorm.DB) error {
	a.LoggedInAt = tx.NowFunc()
	return nil
}

// LoginActivityResponse represents the login activity data returned in API responses
type LoginActivityResponse struct {
	ID         uint   `json:"id"`
	User       uint   `json:"user"`
	Username   string `json:"username"`
	LoggedInAt string `json:"logged_in_at"`
}

// ToResponse converts a LoginActivity model to a LoginActivityResponse
func (a *LoginActivity) ToResponse() *LoginActivityResponse {
	return &LoginActivityResponse{
		ID:         a.ID,
		User:       a.UserID,
		Username:   a.Username,
		LoggedInAt: a.LoggedInAt.Format(time.RFC3339),
	}
}
