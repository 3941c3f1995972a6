package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hlifeacademy/dna-backend/internal/logger"
	"github.com/hlifeacademy/dna-backend/internal/types"
)

type AssessmentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, assessments []*types.Assessment) ([]*types.Assessment, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, assessmentIDs []uuid.UUID) ([]*types.Assessment, error)
	ListByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.Assessment, error)
	LatestByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.Assessment, error)
	CountByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) (int64, error)
}

type assessmentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAssessmentRepo(db *gorm.DB, baseLog *logger.Logger) AssessmentRepo {
	repoLog := baseLog.With("repo", "AssessmentRepo")
	return &assessmentRepo{db: db, log: repoLog}
}

func (ar *assessmentRepo) Create(ctx context.Context, tx *gorm.DB, assessments []*types.Assessment) ([]*types.Assessment, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	if len(assessments) == 0 {
		return []*types.Assessment{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&assessments).Error; err != nil {
		return nil, err
	}

	return assessments, nil
}

func (ar *assessmentRepo) GetByIDs(ctx context.Context, tx *gorm.DB, assessmentIDs []uuid.UUID) ([]*types.Assessment, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	var results []*types.Assessment

	if len(assessmentIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", assessmentIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}

	return results, nil
}

// ListByUserIDs returns assessments newest first.
func (ar *assessmentRepo) ListByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.Assessment, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	var results []*types.Assessment

	if len(userIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}

	return results, nil
}

// LatestByUserIDs returns at most one assessment per user, the newest.
func (ar *assessmentRepo) LatestByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.Assessment, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	var results []*types.Assessment

	if len(userIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Where(`created_at = (
			SELECT MAX(a2.created_at) FROM assessment a2
			WHERE a2.user_id = assessment.user_id AND a2.deleted_at IS NULL
		)`).
		Find(&results).Error; err != nil {
		return nil, err
	}

	return results, nil
}

func (ar *assessmentRepo) CountByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	var count int64

	if len(userIDs) == 0 {
		return 0, nil
	}

	if err := transaction.WithContext(ctx).
		Model(&types.Assessment{}).
		Where("user_id IN ?", userIDs).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}
