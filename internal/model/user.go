// Package model defines database models
package model

import "time"

type User struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username       string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email          string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	HashedPassword string    `gorm:"not null" json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	IsVerified     bool      `gorm:"default:false" json:"is_verified"`
	AvatarURL      *string   `json:"avatar_url"`

	Contacts []Contact `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
