package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/pact-recycling/pact/internal/domain/membership"
	"github.com/pact-recycling/pact/internal/infrastructure/persistence/models"
	"github.com/pact-recycling/pact/internal/shared/logger"
)

type MemberRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewMemberRepository(db *gorm.DB, logger logger.Interface) membership.Repository {
	return &MemberRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *MemberRepositoryImpl) Create(ctx context.Context, member *membership.Member) error {
	model := r.toModel(member)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model).Error; err != nil {
			return err
		}
		return r.saveHistory(tx, model.ID, member.History())
	})
	if err != nil {
		r.logger.Errorw("failed to create member", "error", err, "name", member.Name())
		return fmt.Errorf("failed to create member: %w", err)
	}

	if err := member.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("member created", "member_id", model.ID, "name", member.Name())
	return nil
}

func (r *MemberRepositoryImpl) GetByID(ctx context.Context, id uint) (*membership.Member, error) {
	var model models.MemberModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get member by ID", "error", err, "member_id", id)
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	history, err := r.loadHistory(ctx, []uint{model.ID})
	if err != nil {
		return nil, err
	}

	return r.toEntity(&model, history[model.ID])
}

func (r *MemberRepositoryImpl) List(ctx context.Context) ([]*membership.Member, error) {
	var memberModels []*models.MemberModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&memberModels).Error; err != nil {
		r.logger.Errorw("failed to list members", "error", err)
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	ids := make([]uint, len(memberModels))
	for i, m := range memberModels {
		ids[i] = m.ID
	}

	history, err := r.loadHistory(ctx, ids)
	if err != nil {
		return nil, err
	}

	members := make([]*membership.Member, 0, len(memberModels))
	for _, model := range memberModels {
		member, err := r.toEntity(model, history[model.ID])
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	return members, nil
}

func (r *MemberRepositoryImpl) Update(ctx context.Context, member *membership.Member) error {
	model := r.toModel(member)

	result := r.db.WithContext(ctx).Model(&models.MemberModel{}).
		Where("id = ?", member.ID()).
		Updates(map[string]interface{}{
			"name":           model.Name,
			"tier_slug":      model.TierSlug,
			"start_date":     model.StartDate,
			"programs":       model.Programs,
			"box_units":      model.BoxUnits,
			"mailback_units": model.MailbackUnits,
			"obsolete_units": model.ObsoleteUnits,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update member", "error", result.Error, "member_id", member.ID())
		return fmt.Errorf("failed to update member: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("member %d not found", member.ID())
	}

	return nil
}

func (r *MemberRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.MemberModel{}).Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count members", "error", err)
		return 0, fmt.Errorf("failed to count members: %w", err)
	}
	return count, nil
}

func (r *MemberRepositoryImpl) saveHistory(tx *gorm.DB, memberID uint, cycles []membership.HistoricalCycle) error {
	if len(cycles) == 0 {
		return nil
	}

	records := make([]models.CycleRecordModel, len(cycles))
	for i, c := range cycles {
		records[i] = models.CycleRecordModel{
			MemberID:   memberID,
			Label:      c.Label(),
			Commitment: c.Commitment(),
			Collected:  c.Collected(),
			Status:     c.Status(),
			SortOrder:  i,
		}
	}

	return tx.Create(&records).Error
}

func (r *MemberRepositoryImpl) loadHistory(ctx context.Context, memberIDs []uint) (map[uint][]membership.HistoricalCycle, error) {
	out := make(map[uint][]membership.HistoricalCycle, len(memberIDs))
	if len(memberIDs) == 0 {
		return out, nil
	}

	var records []models.CycleRecordModel
	if err := r.db.WithContext(ctx).
		Where("member_id IN ?", memberIDs).
		Order("member_id ASC, sort_order ASC").
		Find(&records).Error; err != nil {
		r.logger.Errorw("failed to load cycle records", "error", err)
		return nil, fmt.Errorf("failed to load cycle records: %w", err)
	}

	for _, rec := range records {
		cycle, err := membership.NewHistoricalCycle(rec.Label, rec.Commitment, rec.Collected, rec.Status)
		if err != nil {
			return nil, fmt.Errorf("invalid cycle record %d: %w", rec.ID, err)
		}
		out[rec.MemberID] = append(out[rec.MemberID], cycle)
	}

	return out, nil
}

func (r *MemberRepositoryImpl) toModel(member *membership.Member) *models.MemberModel {
	return &models.MemberModel{
		ID:            member.ID(),
		Name:          member.Name(),
		TierSlug:      member.Tier().String(),
		StartDate:     member.StartDate(),
		Programs:      member.Enrollment().Key(),
		BoxUnits:      member.ProcessedUnits(membership.ProgramBox),
		MailbackUnits: member.ProcessedUnits(membership.ProgramMailback),
		ObsoleteUnits: member.ProcessedUnits(membership.ProgramObsolete),
		Version:       member.Version(),
		CreatedAt:     member.CreatedAt(),
		UpdatedAt:     member.UpdatedAt(),
	}
}

func (r *MemberRepositoryImpl) toEntity(model *models.MemberModel, history []membership.HistoricalCycle) (*membership.Member, error) {
	names := strings.Split(model.Programs, "+")
	programs := make([]membership.ProgramType, len(names))
	for i, name := range names {
		programs[i] = membership.ProgramType(name)
	}

	enrollment, err := membership.NewEnrollmentSet(programs)
	if err != nil {
		return nil, fmt.Errorf("member %d has invalid enrollment %q: %w", model.ID, model.Programs, err)
	}

	processed := map[membership.ProgramType]float64{
		membership.ProgramBox:      model.BoxUnits,
		membership.ProgramMailback: model.MailbackUnits,
		membership.ProgramObsolete: model.ObsoleteUnits,
	}

	return membership.ReconstructMember(
		model.ID,
		model.Name,
		membership.TierSlug(model.TierSlug),
		model.StartDate,
		enrollment,
		processed,
		history,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
