package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hlifeacademy/dna-backend/internal/logger"
	"github.com/hlifeacademy/dna-backend/internal/normalization"
	"github.com/hlifeacademy/dna-backend/internal/repos"
	"github.com/hlifeacademy/dna-backend/internal/requestdata"
	"github.com/hlifeacademy/dna-backend/internal/types"
)

// ProfileUpdate carries a partial profile edit; nil fields are untouched.
type ProfileUpdate struct {
	FullName    *string `json:"full_name"`
	Phone       *string `json:"phone"`
	Gender      *string `json:"gender"`
	BirthDate   *string `json:"birth_date"`
	AvatarColor *string `json:"avatar_color"`
}

type UserService interface {
	GetMe(ctx context.Context) (*types.User, error)
	UpdateProfile(ctx context.Context, update ProfileUpdate) (*types.User, error)
	UploadAvatarImage(ctx context.Context, raw []byte) (*types.User, error)
}

type userService struct {
	db            *gorm.DB
	log           *logger.Logger
	userRepo      repos.UserRepo
	avatarService AvatarService
}

func NewUserService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo, avatarService AvatarService) UserService {
	serviceLog := log.With("service", "UserService")
	return &userService{
		db:            db,
		log:           serviceLog,
		userRepo:      userRepo,
		avatarService: avatarService,
	}
}

func (us *userService) currentUserID(ctx context.Context) (uuid.UUID, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		us.log.Warn("Request data not set in context")
		return uuid.Nil, fmt.Errorf("request data not set in context")
	}
	if rd.UserID == uuid.Nil {
		us.log.Warn("User id not set in request data")
		return uuid.Nil, fmt.Errorf("user id not set in request data")
	}
	return rd.UserID, nil
}

func (us *userService) getUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.User, error) {
	found, err := us.userRepo.GetByIDs(ctx, tx, []uuid.UUID{userID})
	if err != nil {
		return nil, fmt.Errorf("error fetching user: %w", err)
	}
	if len(found) == 0 || found[0] == nil {
		return nil, fmt.Errorf("user does not exist")
	}
	return found[0], nil
}

func (us *userService) GetMe(ctx context.Context) (*types.User, error) {
	userID, err := us.currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	return us.getUser(ctx, nil, userID)
}

func (us *userService) UpdateProfile(ctx context.Context, update ProfileUpdate) (*types.User, error) {
	userID, err := us.currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if update.FullName != nil {
		name := normalization.ParseDisplayString(*update.FullName)
		if name == "" {
			return nil, fmt.Errorf("Full name cannot be empty")
		}
		fields["full_name"] = name
	}
	if update.Phone != nil {
		fields["phone"] = strings.TrimSpace(*update.Phone)
	}
	if update.Gender != nil {
		fields["gender"] = normalization.ParseInputString(*update.Gender)
	}
	if update.BirthDate != nil {
		birthDate := strings.TrimSpace(*update.BirthDate)
		if birthDate != "" {
			if _, pErr := time.Parse("2006-01-02", birthDate); pErr != nil {
				return nil, fmt.Errorf("Birth date must be in YYYY-MM-DD format")
			}
		}
		fields["birth_date"] = birthDate
	}
	if update.AvatarColor != nil {
		n := normalizeHex(*update.AvatarColor)
		if n == "" {
			return nil, fmt.Errorf("Invalid avatar color")
		}
		fields["avatar_color"] = n
	}

	var updated *types.User
	err = us.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if uErr := us.userRepo.UpdateFields(ctx, tx, userID, fields); uErr != nil {
			return fmt.Errorf("Failed to update profile: %w", uErr)
		}
		u, gErr := us.getUser(ctx, tx, userID)
		if gErr != nil {
			return gErr
		}
		// A palette change means the generated avatar is stale.
		if _, colorChanged := fields["avatar_color"]; colorChanged && us.avatarService != nil && u.AvatarBucketKey != "" {
			if aErr := us.avatarService.CreateAndUploadUserAvatar(ctx, tx, u); aErr != nil {
				us.log.Warn("Failed to regenerate avatar after color change", "error", aErr)
			} else if uErr := us.userRepo.UpdateFields(ctx, tx, userID, map[string]interface{}{
				"avatar_bucket_key": u.AvatarBucketKey,
				"avatar_url":        u.AvatarURL,
			}); uErr != nil {
				return fmt.Errorf("Failed to persist regenerated avatar: %w", uErr)
			}
		}
		updated = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (us *userService) UploadAvatarImage(ctx context.Context, raw []byte) (*types.User, error) {
	userID, err := us.currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("Empty image upload")
	}
	if us.avatarService == nil {
		return nil, fmt.Errorf("Avatar uploads are not configured")
	}

	var updated *types.User
	err = us.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		u, gErr := us.getUser(ctx, tx, userID)
		if gErr != nil {
			return gErr
		}
		if aErr := us.avatarService.CreateAndUploadUserAvatarFromImage(ctx, tx, u, raw); aErr != nil {
			return fmt.Errorf("Failed to process avatar upload: %w", aErr)
		}
		if uErr := us.userRepo.UpdateFields(ctx, tx, userID, map[string]interface{}{
			"avatar_bucket_key": u.AvatarBucketKey,
			"avatar_url":        u.AvatarURL,
		}); uErr != nil {
			return fmt.Errorf("Failed to persist avatar: %w", uErr)
		}
		updated = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
