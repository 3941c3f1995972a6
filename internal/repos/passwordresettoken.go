package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hlifeacademy/dna-backend/internal/logger"
	"github.com/hlifeacademy/dna-backend/internal/types"
)

type PasswordResetTokenRepo interface {
	Create(ctx context.Context, tx *gorm.DB, tokens []*types.PasswordResetToken) ([]*types.PasswordResetToken, error)
	GetByTokens(ctx context.Context, tx *gorm.DB, rawTokens []string) ([]*types.PasswordResetToken, error)
	FullDeleteByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) error
}

type passwordResetTokenRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPasswordResetTokenRepo(db *gorm.DB, baseLog *logger.Logger) PasswordResetTokenRepo {
	repoLog := baseLog.With("repo", "PasswordResetTokenRepo")
	return &passwordResetTokenRepo{db: db, log: repoLog}
}

func (prtr *passwordResetTokenRepo) Create(ctx context.Context, tx *gorm.DB, tokens []*types.PasswordResetToken) ([]*types.PasswordResetToken, error) {
	transaction := tx
	if transaction == nil {
		transaction = prtr.db
	}

	if len(tokens) == 0 {
		return []*types.PasswordResetToken{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&tokens).Error; err != nil {
		return nil, err
	}

	return tokens, nil
}

func (prtr *passwordResetTokenRepo) GetByTokens(ctx context.Context, tx *gorm.DB, rawTokens []string) ([]*types.PasswordResetToken, error) {
	transaction := tx
	if transaction == nil {
		transaction = prtr.db
	}

	var results []*types.PasswordResetToken

	if len(rawTokens) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("token IN ?", rawTokens).
		Find(&results).Error; err != nil {
		return nil, err
	}

	return results, nil
}

func (prtr *passwordResetTokenRepo) FullDeleteByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = prtr.db
	}

	if len(userIDs) == 0 {
		return nil
	}

	if err := transaction.WithContext(ctx).
		Unscoped().
		Where("user_id IN ?", userIDs).
		Delete(&types.PasswordResetToken{}).Error; err != nil {
		return err
	}

	return nil
}
