package usecases

import (
	"context"

	"github.com/pact-recycling/pact/internal/application/membership/dto"
	"github.com/pact-recycling/pact/internal/domain/membership"
)

type ListTiersUseCase struct {
	catalog *membership.Catalog
}

func NewListTiersUseCase(catalog *membership.Catalog) *ListTiersUseCase {
	return &ListTiersUseCase{catalog: catalog}
}

func (uc *ListTiersUseCase) Execute(ctx context.Context) []*dto.TierDTO {
	tiers := uc.catalog.All()
	out := make([]*dto.TierDTO, len(tiers))
	for i, tier := range tiers {
		out[i] = dto.ToTierDTO(tier)
	}
	return out
}
