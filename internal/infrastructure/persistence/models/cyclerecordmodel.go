package models

import (
	"time"

	"github.com/pact-recycling/pact/internal/shared/constants"
)

// CycleRecordModel persists a member's closed commitment cycles.
type CycleRecordModel struct {
	ID         uint   `gorm:"primarykey"`
	MemberID   uint   `gorm:"not null;index:idx_cycle_records_member"`
	Label      string `gorm:"not null;size:64"`
	Commitment int    `gorm:"not null"`
	Collected  int    `gorm:"not null"`
	Status     string `gorm:"not null;size:32"`
	SortOrder  int    `gorm:"not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName specifies the table name for GORM
func (CycleRecordModel) TableName() string {
	return constants.TableCycleRecords
}
