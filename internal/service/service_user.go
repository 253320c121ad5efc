package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-fin-tracker/internal/config"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/store"
	"github.com/MKhiriev/go-fin-tracker/internal/utils"
	"github.com/MKhiriev/go-fin-tracker/internal/validators"
	"github.com/MKhiriev/go-fin-tracker/models"
)

type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	hashCost       int
	logger         *logger.Logger
}

// NewUserService constructs the profile settings service.
func NewUserService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validators.NewUserValidator(),
		hashCost:       cfg.PasswordHashCost,
		logger:         logger,
	}
}

func (s *userService) GetProfile(ctx context.Context) (models.User, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return models.User{}, err
	}

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("error getting profile: %w", err)
	}
	return user, nil
}

// UpdateName stores the trimmed name; it must keep at least two characters.
func (s *userService) UpdateName(ctx context.Context, change models.NameChange) (models.User, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return models.User{}, err
	}
	if err = s.validator.Validate(ctx, change); err != nil {
		return models.User{}, err
	}

	user, err := s.userRepository.UpdateName(ctx, userID, strings.TrimSpace(change.Name))
	if err != nil {
		return models.User{}, fmt.Errorf("error updating name: %w", err)
	}
	return user, nil
}

// ChangePassword verifies the current password before replacing the hash.
// A mismatch yields [ErrWrongPassword] and writes nothing.
func (s *userService) ChangePassword(ctx context.Context, change models.PasswordChange) error {
	log := logger.FromContext(ctx)

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}
	if err = s.validator.Validate(ctx, change); err != nil {
		return err
	}

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("error getting user: %w", err)
	}

	if !utils.VerifyPassword(change.CurrentPassword, user.PasswordHash) {
		log.Info().Int64("user_id", userID).Msg("password change rejected: wrong current password")
		return ErrWrongPassword
	}

	hash, err := utils.HashPassword(change.NewPassword, s.hashCost)
	if err != nil {
		log.Err(err).Str("func", "*userService.ChangePassword").Msg("error hashing password")
		return fmt.Errorf("error hashing password: %w", err)
	}

	if err = s.userRepository.UpdatePasswordHash(ctx, userID, hash); err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}
	return nil
}
