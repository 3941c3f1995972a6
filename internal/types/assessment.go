package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Assessment is the durable artifact of one completed sitting: the two
// finalized score sets, keyed by factor letter. Never mutated after create.
type Assessment struct {
	gorm.Model
	ID            uuid.UUID         `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID        uuid.UUID         `gorm:"index;not null" json:"user_id"`
	User          *User             `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`
	DiscResults   datatypes.JSONMap `gorm:"not null;column:disc_results" json:"disc_results"`
	ValuesResults datatypes.JSONMap `gorm:"not null;column:values_results" json:"values_results"`
	CreatedAt     time.Time         `gorm:"not null;default:now();index" json:"created_at"`
}

func (Assessment) TableName() string {
	return "assessment"
}
