package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/hlifeacademy/dna-backend/internal/logger"
	"github.com/hlifeacademy/dna-backend/internal/normalization"
	"github.com/hlifeacademy/dna-backend/internal/repos"
	"github.com/hlifeacademy/dna-backend/internal/requestdata"
	"github.com/hlifeacademy/dna-backend/internal/types"
	"github.com/hlifeacademy/dna-backend/internal/utils"
)

const resetTokenTTL = time.Hour

type JWTClaims struct {
	jwt.RegisteredClaims
}

type AuthService interface {
	RegisterUser(ctx context.Context, user *types.User) error
	LoginUser(ctx context.Context, email, password string) (string, string, error)
	RefreshUser(ctx context.Context) (string, string, error)
	LogoutUser(ctx context.Context) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, rawToken, newPassword string) error
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
	GetAccessTTL() time.Duration
}

type authService struct {
	db            *gorm.DB
	log           *logger.Logger
	userRepo      repos.UserRepo
	userTokenRepo repos.UserTokenRepo
	resetRepo     repos.PasswordResetTokenRepo
	avatarService AvatarService
	mailerService MailerService
	jwtSecretKey  string
	appBaseURL    string
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewAuthService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo repos.UserRepo,
	userTokenRepo repos.UserTokenRepo,
	resetRepo repos.PasswordResetTokenRepo,
	avatarService AvatarService,
	mailerService MailerService,
	jwtSecretKey string,
	appBaseURL string,
	accessTTL time.Duration,
	refreshTTL time.Duration,
) AuthService {
	serviceLog := log.With("service", "AuthService")
	return &authService{
		db:            db,
		log:           serviceLog,
		userRepo:      userRepo,
		userTokenRepo: userTokenRepo,
		resetRepo:     resetRepo,
		avatarService: avatarService,
		mailerService: mailerService,
		jwtSecretKey:  jwtSecretKey,
		appBaseURL:    appBaseURL,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

func (as *authService) RegisterUser(ctx context.Context, user *types.User) error {
	utils.NormalizeUserFields(ctx, user)
	if vErr := utils.InputValidation(ctx, "registration", as.userRepo, as.log, user, "", ""); vErr != nil {
		return vErr
	}
	if hErr := utils.HashPassword(ctx, as.log, user); hErr != nil {
		return hErr
	}
	return as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user.ID = uuid.New()
		if as.avatarService != nil {
			if ucaErr := as.avatarService.CreateAndUploadUserAvatar(ctx, tx, user); ucaErr != nil {
				// Avatar generation must not block account creation.
				as.log.Warn("Failed to create and upload user avatar", "error", ucaErr)
			}
		}
		if _, ucErr := as.userRepo.Create(ctx, tx, []*types.User{user}); ucErr != nil {
			return fmt.Errorf("Failed to create user in postgres: %w", ucErr)
		}
		return nil
	})
}

func (as *authService) LoginUser(ctx context.Context, email, password string) (string, string, error) {
	email = normalization.ParseInputString(email)

	if vErr := utils.InputValidation(ctx, "login", as.userRepo, as.log, nil, email, password); vErr != nil {
		return "", "", vErr
	}

	users, usErr := as.userRepo.GetByEmails(ctx, nil, []string{email})
	if usErr != nil {
		return "", "", fmt.Errorf("Error retrieving user by email: %w", usErr)
	}
	if len(users) == 0 {
		return "", "", fmt.Errorf("Invalid email or password")
	}

	user := users[0]
	if hErr := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); hErr != nil {
		return "", "", fmt.Errorf("Invalid email or password")
	}

	var accessToken string
	var refreshToken string
	if err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		foundTokens, ftErr := as.userTokenRepo.GetByUserIDs(ctx, tx, []uuid.UUID{user.ID})
		if ftErr != nil {
			return fmt.Errorf("Failed to check user tokens: %w", ftErr)
		}
		var staleIDs []uuid.UUID
		for _, tok := range foundTokens {
			if tok.ExpiresAt.Before(time.Now()) {
				staleIDs = append(staleIDs, tok.ID)
			}
		}
		if len(staleIDs) > 0 {
			if dtErr := as.userTokenRepo.FullDeleteByIDs(ctx, tx, staleIDs); dtErr != nil {
				return fmt.Errorf("Failed to delete expired user tokens: %w", dtErr)
			}
		}
		tok, genErr := as.generateAccessToken(user)
		if genErr != nil {
			return fmt.Errorf("Generate access token error: %w", genErr)
		}
		accessToken = tok
		refreshToken = uuid.New().String()
		userToken := types.UserToken{
			ID:           uuid.New(),
			UserID:       user.ID,
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
			ExpiresAt:    time.Now().Add(as.refreshTTL),
		}
		if _, ctErr := as.userTokenRepo.Create(ctx, tx, []*types.UserToken{&userToken}); ctErr != nil {
			as.log.Warn("Create User Token Error", "error", ctErr)
			return fmt.Errorf("Create User Token Error: %w", ctErr)
		}
		return nil
	}); err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

func (as *authService) RefreshUser(ctx context.Context) (string, string, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		as.log.Warn("No request data found in context")
		return "", "", fmt.Errorf("No request data found in context")
	}
	if rd.RefreshToken == "" {
		as.log.Warn("RefreshToken not found in request data")
		return "", "", fmt.Errorf("RefreshToken not found in request data")
	}

	var accessToken string
	var newRefreshTokenStr string
	err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		foundTokens, ftErr := as.userTokenRepo.GetByRefreshTokens(ctx, tx, []string{rd.RefreshToken})
		if ftErr != nil {
			as.log.Warn("Error fetching refresh token", "error", ftErr)
			return fmt.Errorf("Error fetching refresh token: %w", ftErr)
		}
		if len(foundTokens) == 0 {
			return fmt.Errorf("Unknown refresh token")
		}
		existingToken := foundTokens[0]
		if existingToken.ExpiresAt.Before(time.Now()) {
			if dtErr := as.userTokenRepo.FullDeleteByIDs(ctx, tx, []uuid.UUID{existingToken.ID}); dtErr != nil {
				as.log.Warn("Refresh token expired, error deleting", "error", dtErr)
				return fmt.Errorf("Refresh token expired, error deleting: %w", dtErr)
			}
			as.log.Warn("Refresh token expired, cannot proceed")
			return fmt.Errorf("Refresh token expired")
		}
		users, uErr := as.userRepo.GetByIDs(ctx, tx, []uuid.UUID{existingToken.UserID})
		if uErr != nil {
			as.log.Warn("Failed to load user for refresh", "error", uErr)
			return fmt.Errorf("Failed to load user for refresh: %w", uErr)
		}
		if len(users) == 0 {
			as.log.Warn("No user found for the given refresh token")
			return fmt.Errorf("No user found for the given refresh token")
		}
		user := users[0]
		tok, genErr := as.generateAccessToken(user)
		if genErr != nil {
			as.log.Warn("Failed to generate new access token", "error", genErr)
			return fmt.Errorf("Failed to generate new access token: %w", genErr)
		}
		accessToken = tok
		newRefreshTokenStr = uuid.New().String()
		newUserToken := types.UserToken{
			ID:           uuid.New(),
			UserID:       user.ID,
			AccessToken:  tok,
			RefreshToken: newRefreshTokenStr,
			ExpiresAt:    time.Now().Add(as.refreshTTL),
		}
		if _, cErr := as.userTokenRepo.Create(ctx, tx, []*types.UserToken{&newUserToken}); cErr != nil {
			as.log.Warn("Failed to create new user token", "error", cErr)
			return fmt.Errorf("Failed to create new user token: %w", cErr)
		}
		if dErr := as.userTokenRepo.FullDeleteByIDs(ctx, tx, []uuid.UUID{existingToken.ID}); dErr != nil {
			as.log.Warn("Failed to remove old refresh token", "error", dErr)
			return fmt.Errorf("Failed to remove old refresh token: %w", dErr)
		}
		return nil
	})
	if err != nil {
		return "", "", err
	}
	return accessToken, newRefreshTokenStr, nil
}

func (as *authService) LogoutUser(ctx context.Context) error {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		as.log.Warn("No request data found in context")
		return fmt.Errorf("No request data found in context")
	}
	if rd.TokenString == "" {
		as.log.Warn("TokenString in request data empty")
		return fmt.Errorf("TokenString in request data empty")
	}
	return as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		foundTokens, ftErr := as.userTokenRepo.GetByAccessTokens(ctx, tx, []string{rd.TokenString})
		if ftErr != nil {
			as.log.Warn("Error finding user token from token string", "error", ftErr)
			return fmt.Errorf("Error finding user token from token string: %w", ftErr)
		}
		if len(foundTokens) == 0 {
			return nil
		}
		if tdErr := as.userTokenRepo.FullDeleteByIDs(ctx, tx, []uuid.UUID{foundTokens[0].ID}); tdErr != nil {
			as.log.Warn("Error deleting user token", "error", tdErr)
			return fmt.Errorf("Error deleting user token: %w", tdErr)
		}
		return nil
	})
}

// ForgotPassword always reports success to the caller so the endpoint does
// not leak which emails have accounts.
func (as *authService) ForgotPassword(ctx context.Context, email string) error {
	email = normalization.ParseInputString(email)
	if email == "" {
		return fmt.Errorf("Email is required")
	}
	users, usErr := as.userRepo.GetByEmails(ctx, nil, []string{email})
	if usErr != nil {
		return fmt.Errorf("Error retrieving user by email: %w", usErr)
	}
	if len(users) == 0 {
		as.log.Info("Password reset requested for unknown email", "email", email)
		return nil
	}
	user := users[0]

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return fmt.Errorf("Failed to generate reset token: %w", err)
	}
	rawToken := hex.EncodeToString(raw)

	err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if dErr := as.resetRepo.FullDeleteByUserIDs(ctx, tx, []uuid.UUID{user.ID}); dErr != nil {
			return fmt.Errorf("Failed to clear previous reset tokens: %w", dErr)
		}
		resetToken := types.PasswordResetToken{
			ID:        uuid.New(),
			UserID:    user.ID,
			Token:     rawToken,
			ExpiresAt: time.Now().Add(resetTokenTTL),
		}
		if _, cErr := as.resetRepo.Create(ctx, tx, []*types.PasswordResetToken{&resetToken}); cErr != nil {
			return fmt.Errorf("Failed to create reset token: %w", cErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", as.appBaseURL, rawToken)
	if mErr := as.mailerService.SendPasswordReset(user.Email, resetLink); mErr != nil {
		as.log.Error("Failed to deliver password reset email", "error", mErr)
	}
	return nil
}

func (as *authService) ResetPassword(ctx context.Context, rawToken, newPassword string) error {
	if rawToken == "" {
		return fmt.Errorf("Reset token is required")
	}
	if vErr := utils.ValidatePassword(newPassword); vErr != nil {
		return vErr
	}
	return as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tokens, ftErr := as.resetRepo.GetByTokens(ctx, tx, []string{rawToken})
		if ftErr != nil {
			return fmt.Errorf("Error fetching reset token: %w", ftErr)
		}
		if len(tokens) == 0 {
			return fmt.Errorf("Invalid or expired reset token")
		}
		resetToken := tokens[0]
		if resetToken.ExpiresAt.Before(time.Now()) {
			_ = as.resetRepo.FullDeleteByUserIDs(ctx, tx, []uuid.UUID{resetToken.UserID})
			return fmt.Errorf("Invalid or expired reset token")
		}

		hashed, hErr := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if hErr != nil {
			return fmt.Errorf("Failed to hash password")
		}
		if uErr := as.userRepo.UpdateFields(ctx, tx, resetToken.UserID, map[string]interface{}{
			"password": string(hashed),
		}); uErr != nil {
			return fmt.Errorf("Failed to update password: %w", uErr)
		}
		if dErr := as.resetRepo.FullDeleteByUserIDs(ctx, tx, []uuid.UUID{resetToken.UserID}); dErr != nil {
			return fmt.Errorf("Failed to consume reset token: %w", dErr)
		}
		// Password change invalidates every live session.
		if dErr := as.userTokenRepo.FullDeleteByUserIDs(ctx, tx, []uuid.UUID{resetToken.UserID}); dErr != nil {
			return fmt.Errorf("Failed to revoke sessions: %w", dErr)
		}
		return nil
	})
}

func (as *authService) generateAccessToken(user *types.User) (string, error) {
	claims := JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(as.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(as.jwtSecretKey))
}

func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	if tokenString == "" {
		return ctx, nil
	}
	parsedToken, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(as.jwtSecretKey), nil
	})
	if err != nil {
		return ctx, fmt.Errorf("Failed to parse token: %w", err)
	}
	claims, ok := parsedToken.Claims.(*JWTClaims)
	if !ok || !parsedToken.Valid {
		return ctx, fmt.Errorf("Invalid or expired JWT token")
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, fmt.Errorf("Invalid user id in token: %w", err)
	}
	var refreshTokenStr string
	foundTokens, ftErr := as.userTokenRepo.GetByAccessTokens(ctx, nil, []string{tokenString})
	if ftErr != nil {
		as.log.Warn("Error fetching user token by access token", "error", ftErr)
		return ctx, fmt.Errorf("Failed to fetch user token by access token: %w", ftErr)
	}
	if len(foundTokens) > 0 {
		refreshTokenStr = foundTokens[0].RefreshToken
	}
	rd := &requestdata.RequestData{
		TokenString:  tokenString,
		RefreshToken: refreshTokenStr,
		UserID:       userID,
	}
	return requestdata.WithRequestData(ctx, rd), nil
}

func (as *authService) GetAccessTTL() time.Duration {
	return as.accessTTL
}
