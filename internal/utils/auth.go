package utils

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/hlifeacademy/dna-backend/internal/logger"
	"github.com/hlifeacademy/dna-backend/internal/normalization"
	"github.com/hlifeacademy/dna-backend/internal/repos"
	"github.com/hlifeacademy/dna-backend/internal/types"
)

func InputValidation(ctx context.Context, ffor string, userRepo repos.UserRepo, log *logger.Logger, user *types.User, email, password string) error {
	validatedFor := normalization.ParseInputString(ffor)
	if validatedFor == "" {
		return fmt.Errorf("For string is nil, needs to be login or registration")
	}
	switch validatedFor {
	case "registration":
		if err := handleRegisterInputValidation(ctx, userRepo, log, user); err != nil {
			return err
		}
	case "login":
		if err := handleLoginInputValidation(ctx, log, email, password); err != nil {
			return err
		}
	}
	return nil
}

func handleRegisterInputValidation(ctx context.Context, userRepo repos.UserRepo, log *logger.Logger, user *types.User) error {
	if user == nil {
		return fmt.Errorf("No user given, cannot proceed with registration")
	}
	if user.Email == "" {
		return fmt.Errorf("An email is required to register")
	}
	emailExists, err := userRepo.EmailExists(ctx, nil, user.Email)
	if err != nil {
		return fmt.Errorf("Failed to check user email")
	}
	if emailExists {
		return fmt.Errorf("Email is already in use")
	}
	if err := ValidatePassword(user.Password); err != nil {
		return err
	}
	if user.FullName == "" {
		return fmt.Errorf("A full name is required to register")
	}
	if user.Phone == "" {
		return fmt.Errorf("A phone number is required to register")
	}
	if user.Gender == "" {
		return fmt.Errorf("A gender is required to register")
	}
	if user.BirthDate == "" {
		return fmt.Errorf("A birth date is required to register")
	}
	if _, err := time.Parse("2006-01-02", user.BirthDate); err != nil {
		return fmt.Errorf("Birth date must be in YYYY-MM-DD format")
	}
	return nil
}

func handleLoginInputValidation(ctx context.Context, log *logger.Logger, email, password string) error {
	if email == "" {
		return fmt.Errorf("Email is required to login")
	}
	if password == "" {
		return fmt.Errorf("Password is required to login")
	}
	return nil
}

// ValidatePassword enforces the account password policy: at least eight
// characters, one uppercase letter and one special character.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("Password must be at least 8 characters long")
	}
	hasUpper := false
	hasSpecial := false
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			hasSpecial = true
		}
	}
	if !hasUpper {
		return fmt.Errorf("Password must contain at least one uppercase letter")
	}
	if !hasSpecial {
		return fmt.Errorf("Password must contain at least one special character")
	}
	return nil
}

func HashPassword(ctx context.Context, log *logger.Logger, user *types.User) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("Failed to hash password")
	}
	user.Password = string(hashedPassword)
	return nil
}

func NormalizeUserFields(ctx context.Context, user *types.User) {
	user.Email = normalization.ParseInputString(user.Email)
	user.FullName = normalization.ParseDisplayString(user.FullName)
	user.Phone = strings.TrimSpace(user.Phone)
	user.Gender = normalization.ParseInputString(user.Gender)
	user.BirthDate = strings.TrimSpace(user.BirthDate)
}
