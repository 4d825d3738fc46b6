package services

import (
	"context"

	"go.uber.org/zap"

	"agrorent-api/internal/dto"
	"agrorent-api/internal/entities"
	"agrorent-api/internal/repositories"
)

type UserServiceInterface interface {
	Profile(ctx context.Context, userID string) (*entities.User, error)
	UpdateProfile(ctx context.Context, userID string, patch dto.UpdateProfileDTO) (*entities.User, error)
}

type UserService struct {
	userRepo repositories.UserRepositoryInterface
	logger   *zap.Logger
}

func NewUserService(userRepo repositories.UserRepositoryInterface, logger *zap.Logger) UserServiceInterface {
	return &UserService{userRepo: userRepo, logger: logger}
}

func (s *UserService) Profile(ctx context.Context, userID string) (*entities.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, patch dto.UpdateProfileDTO) (*entities.User, error) {
	user, err := s.userRepo.UpdateProfile(ctx, userID, patch)
	if err != nil {
		return nil, err
	}
	s.logger.Info("perfil atualizado", zap.String("userID", user.ID))
	return user, nil
}
