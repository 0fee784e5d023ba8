package migration

import (
	"github.com/pact-recycling/pact/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.MemberModel{},
		&models.CycleRecordModel{},
	}
}
