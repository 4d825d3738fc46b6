package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"agrorent-api/internal/dto"
	"agrorent-api/internal/entities"
	"agrorent-api/internal/repositories"
	"agrorent-api/pkg/config"
	apperrors "agrorent-api/pkg/errors"
	"agrorent-api/pkg/service"
	"agrorent-api/pkg/utils"
)

type AuthServiceInterface interface {
	Register(ctx context.Context, payload dto.RegisterDTO) (string, error)
	Login(ctx context.Context, payload dto.LoginDTO) (string, error)
}

type AuthService struct {
	userRepo  repositories.UserRepositoryInterface
	cacheRepo repositories.CacheRepositoryInterface
	jwtSvc    service.JWTService
	cfg       *config.AuthConfig
	logger    *zap.Logger
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	jwtSvc service.JWTService,
	cfg *config.AuthConfig,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepo:  userRepo,
		cacheRepo: cacheRepo,
		jwtSvc:    jwtSvc,
		cfg:       cfg,
		logger:    logger,
	}
}

// Register creates an account and issues the first access token. Duplicate
// email/CPF are pre-checked; a concurrent insert racing past the pre-check
// surfaces as the same 409 via the repository's constraint mapping.
func (s *AuthService) Register(ctx context.Context, payload dto.RegisterDTO) (string, error) {
	if !utils.IsValidCPF(payload.CPF) {
		return "", apperrors.ErrInvalidCPF
	}
	cpf := utils.OnlyDigits(payload.CPF)

	if _, err := s.userRepo.FindByEmail(ctx, payload.Email); err == nil {
		return "", apperrors.ErrEmailTaken
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return "", err
	}

	if _, err := s.userRepo.FindByCPF(ctx, cpf); err == nil {
		return "", apperrors.ErrCPFTaken
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return "", err
	}

	hash, err := utils.HashPassword(payload.Password)
	if err != nil {
		return "", err
	}

	user, err := s.userRepo.Create(ctx, &entities.User{
		FullName:     payload.FullName,
		Email:        payload.Email,
		CPF:          cpf,
		Phone:        null.StringFromPtr(payload.Phone),
		PasswordHash: hash,
	})
	if err != nil {
		return "", err
	}

	s.logger.Info("usuário registrado", zap.String("userID", user.ID))
	return s.jwtSvc.GenerateToken(user.ID, user.Email)
}

// Login verifies credentials under a per-email attempt counter. The same
// error covers unknown email and wrong password.
func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (string, error) {
	attemptsKey := fmt.Sprintf("login_attempts:%s", strings.ToLower(payload.Email))

	attemptsStr, _ := s.cacheRepo.Get(ctx, attemptsKey)
	if attempts, _ := strconv.Atoi(attemptsStr); attempts >= s.cfg.MaxLoginAttempts {
		s.logger.Warn("login bloqueado por excesso de tentativas", zap.String("email", payload.Email))
		return "", apperrors.NewTooManyRequestsError(
			fmt.Sprintf("muitas tentativas de login; tente novamente em %.0f minutos", s.cfg.LockoutDuration.Minutes()),
		)
	}

	user, err := s.userRepo.FindByEmail(ctx, payload.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.recordFailedAttempt(ctx, attemptsKey)
			return "", apperrors.ErrInvalidCredentials
		}
		return "", err
	}

	if err := utils.ComparePasswords(user.PasswordHash, payload.Password); err != nil {
		s.recordFailedAttempt(ctx, attemptsKey)
		return "", apperrors.ErrInvalidCredentials
	}

	if err := s.cacheRepo.Del(ctx, attemptsKey); err != nil {
		s.logger.Warn("não foi possível limpar contador de tentativas", zap.Error(err))
	}

	return s.jwtSvc.GenerateToken(user.ID, user.Email)
}

func (s *AuthService) recordFailedAttempt(ctx context.Context, key string) {
	if _, err := s.cacheRepo.Incr(ctx, key); err != nil {
		s.logger.Warn("não foi possível registrar tentativa de login", zap.Error(err))
		return
	}
	if _, err := s.cacheRepo.Expire(ctx, key, s.cfg.LockoutDuration); err != nil {
		s.logger.Warn("não foi possível definir TTL do contador", zap.Error(err))
	}
}
