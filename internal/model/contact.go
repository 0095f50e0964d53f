package model

import "time"

// Contact email and phone are unique across every user, not just per
// owner. The database constraints are the authoritative guard, the
// service-level existence check is only a fast path.
type Contact struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:50;not null" json:"name"`
	Surname   string    `gorm:"size:50;not null" json:"surname"`
	Email     string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone     string    `gorm:"size:20;uniqueIndex;not null" json:"phone"`
	Birthday  time.Time `gorm:"not null" json:"birthday"`
	Info      string    `gorm:"size:500" json:"info,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
}
