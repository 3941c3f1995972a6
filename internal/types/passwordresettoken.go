package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PasswordResetToken is a one-shot token mailed to the user; consumed (and
// deleted) by the reset endpoint.
type PasswordResetToken struct {
	gorm.Model
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"index;not null"`
	User      *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID"`
	Token     string    `gorm:"uniqueIndex;not null;column:token" json:"-"`
	ExpiresAt time.Time `gorm:"column:expires_at" json:"expires_at"`
	CreatedAt time.Time `gorm:"not null;default:now()"`
}

func (PasswordResetToken) TableName() string {
	return "password_reset_token"
}
