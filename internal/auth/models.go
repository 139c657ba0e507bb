package auth

import "time"

// Session is one issued admin login. Immutable once created; rows are removed
// on logout or lazily when validation finds them expired.
type Session struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"not null" json:"username"`
	Role      string    `gorm:"not null" json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
}

func (Session) TableName() string { return "admin_sessions" }
