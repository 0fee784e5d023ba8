package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/pact-recycling/pact/internal/shared/constants"
)

// MemberModel represents the database persistence model for members.
// This is the anti-corruption layer between domain and database.
type MemberModel struct {
	ID            uint   `gorm:"primarykey"`
	Name          string `gorm:"not null;size:255"`
	TierSlug      string `gorm:"not null;size:32;index:idx_members_tier"`
	StartDate     time.Time
	Programs      string  `gorm:"not null;size:64"`
	BoxUnits      float64 `gorm:"not null;default:0"`
	MailbackUnits float64 `gorm:"not null;default:0"`
	ObsoleteUnits float64 `gorm:"not null;default:0"`
	Version       int     `gorm:"not null;default:1"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (MemberModel) TableName() string {
	return constants.TableMembers
}

// BeforeCreate hook for GORM
func (m *MemberModel) BeforeCreate(tx *gorm.DB) error {
	if m.Version == 0 {
		m.Version = 1
	}
	return nil
}

// BeforeUpdate hook for GORM
func (m *MemberModel) BeforeUpdate(tx *gorm.DB) error {
	// Increment version for optimistic locking
	tx.Statement.SetColumn("version", m.Version+1)
	return nil
}
